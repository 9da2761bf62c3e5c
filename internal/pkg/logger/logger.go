package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/env"
)

// Setup installs the process wide slog logger. Development gets colourised
// tint output, everything else JSON lines.
func Setup() *slog.Logger {
	l := New(os.Stderr, env.IsDev())
	slog.SetDefault(l)
	return l
}

func New(w io.Writer, dev bool) *slog.Logger {
	level := slog.LevelInfo
	if env.GetEnv("LOG_LEVEL", "") == "debug" {
		level = slog.LevelDebug
	}

	if dev {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
