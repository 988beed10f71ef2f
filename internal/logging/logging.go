package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sweeper/internal/config"
)

func level(cfg *config.Config) logrus.Level {
	if cfg.Development() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// New builds the application logger. With a log file configured, entries go
// to that file as JSON through a rotating hook and out is left to the game;
// otherwise they are written to out as text.
func New(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(level(cfg))
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development()})
	log.SetOutput(out)

	if cfg.Log.File == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      level(cfg),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)

	return log, nil
}

// Adopt points a package-level logger at the application logger's output,
// level, formatter and hooks.
func Adopt(dst, src *logrus.Logger) {
	dst.SetOutput(src.Out)
	dst.SetLevel(src.GetLevel())
	dst.SetFormatter(src.Formatter)
	dst.ReplaceHooks(src.Hooks)
}
