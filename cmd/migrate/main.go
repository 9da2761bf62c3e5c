package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/env"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/logger"
)

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

func main() {
	env.SetupEnvFile()
	logger.Setup()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]

	user := env.GetEnv("DB_USER", "propertipro")
	host := env.GetEnv("DB_HOST", "db")
	port := env.GetEnv("DB_PORT", "3306")
	name := env.GetEnv("DB_NAME", "propertipro_db")
	dbURL := fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		user, env.GetEnv("DB_PASSWORD", "propertipro"), host, port, name)

	slog.Info("[Migrate] connecting", "user", user, "host", host, "port", port, "db", name)

	m, err := migrate.New("file://"+env.GetEnv("MIGRATIONS_PATH", "migrations"), dbURL)
	if err != nil {
		fatal("[Migrate] init failed", "error", err)
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			slog.Warn("[Migrate] close failed", "source_error", sourceErr, "db_error", dbErr)
		}
	}()

	switch command {
	case "up":
		err := m.Up()
		switch {
		case errors.Is(err, migrate.ErrNoChange):
			slog.Info("[Migrate] no change, database is up to date")
		case err != nil:
			fatal("[Migrate] up failed", "error", err)
		default:
			slog.Info("[Migrate] migrations applied")
		}

	case "down":
		if err := m.Steps(-1); err != nil {
			fatal("[Migrate] rollback failed", "error", err)
		}
		slog.Info("[Migrate] rolled back the last migration")

	case "goto":
		if len(os.Args) < 3 {
			fatal("[Migrate] goto needs a version number")
		}
		version, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			fatal("[Migrate] invalid version", "version", os.Args[2], "error", err)
		}
		err = m.Migrate(uint(version))
		switch {
		case errors.Is(err, migrate.ErrNoChange):
			slog.Info("[Migrate] no change", "version", version)
		case err != nil:
			fatal("[Migrate] goto failed", "version", version, "error", err)
		default:
			slog.Info("[Migrate] migrated", "version", version)
		}

	case "status":
		version, dirty, err := m.Version()
		switch {
		case errors.Is(err, migrate.ErrNilVersion):
			slog.Info("[Migrate] no migrations applied yet")
		case err != nil:
			fatal("[Migrate] reading version failed", "error", err)
		default:
			slog.Info("[Migrate] current version", "version", version, "dirty", dirty)
		}

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate [command]")
	fmt.Println("Commands:")
	fmt.Println("  up     - apply all pending migrations")
	fmt.Println("  down   - roll back the last migration")
	fmt.Println("  goto N - migrate to version N")
	fmt.Println("  status - show the current version")
}
