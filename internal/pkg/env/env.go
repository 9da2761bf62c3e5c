package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

var Env map[string]string

func GetEnv(key, def string) string {
	// First check our loaded Env map
	if val, ok := Env[key]; ok {
		return val
	}
	// Fallback to OS environment variables (for Docker/tests)
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func SetupEnvFile() {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/propertipro to project root
		"../../../.env", // Fallback for deeper nesting
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			return
		}
	}

	// containers usually ship without a .env and configure everything via OS env
	Env = map[string]string{}
	slog.Warn("[Env] no .env file found, using OS environment only")
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}

// AppURL returns the public base URL used in outgoing links (e.g. reset mails).
func AppURL() string {
	return GetEnv("APP_URL", "http://localhost:4000")
}

// AppSecret returns the key used to sign reset tokens
func AppSecret() []byte {
	return []byte(GetEnv("APP_SECRET", ""))
}
