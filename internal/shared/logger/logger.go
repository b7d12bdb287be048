// Package logger configures the process-wide slog logger. Terminal output
// goes through tint with colors, everything else falls back to JSON or
// plain text, and source locations are attached per level.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"atgs/internal/shared/config"
)

var (
	root    *slog.Logger
	rootLvl *slog.LevelVar
)

// Init builds the root logger from config and installs it as the slog
// default. Callers that log before Init get a sane terminal logger from
// Get.
func Init(cfg *config.LoggerConfig) error {
	rootLvl = new(slog.LevelVar)
	rootLvl.Set(parseLevel(cfg.Level))

	out, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	root = slog.New(buildHandler(cfg.Format, out, rootLvl))
	slog.SetDefault(root)
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	}
}

func buildHandler(format string, out io.Writer, lvl *slog.LevelVar) slog.Handler {
	// Source location on warn and error only, everywhere when debugging.
	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if lvl.Level() == slog.LevelDebug {
		sourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	if format == "json" {
		base := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})
		return NewLevelSourceHandler(base, sourceLevels...)
	}

	base := tint.NewHandler(out, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(out),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
	return NewLevelSourceHandler(base, sourceLevels...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Get returns the root logger, initializing a default terminal logger on
// first use if Init has not run yet.
func Get() *slog.Logger {
	if root == nil {
		rootLvl = new(slog.LevelVar)
		root = slog.New(buildHandler("", os.Stdout, rootLvl))
		slog.SetDefault(root)
	}
	return root
}

// SetLevel changes the root logger level at runtime.
func SetLevel(level slog.Level) {
	if rootLvl != nil {
		rootLvl.Set(level)
	}
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}
