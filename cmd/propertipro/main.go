package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/PropertiPro/app/controllers"
	"github.com/ManuelReschke/PropertiPro/app/repository"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/auth"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/cache"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/database"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/env"
	applog "github.com/ManuelReschke/PropertiPro/internal/pkg/logger"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/router"
	"github.com/ManuelReschke/PropertiPro/views"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	slog.Error("[Server] stopped", "error", err)
	os.Exit(1)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	applog.Setup()
	if err := auth.CheckSecret(env.AppSecret()); err != nil {
		panic("APP_SECRET: " + err.Error())
	}
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/propertipro to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		ErrorHandler: controllers.ErrorHandler,
		// ten images of 10 MiB plus the form
		BodyLimit:    110 << 20,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	// ignore favicon requests
	app.Use(favicon.New())

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "change-me"),
		},
	}), monitor.New(monitor.Config{Title: "Properti Pro Metrics"}))

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	specPath := basePath + "public/docs/v1/openapi.yml"
	app.Use(swagger.New(swagger.Config{
		BasePath: "/docs/api/",
		FilePath: specPath,
		Path:     "v1",
		Title:    "Properti Pro API",
	}))

	// ROUTER
	router.InstallRouter(app, specPath)

	return app
}
