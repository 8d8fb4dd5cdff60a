package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joshuarp/image-derivative-api/internal/shared/config"
)

func NewJSONLogger(cfg config.ConfigProvider) *slog.Logger {
	return newJSONLogger(os.Stdout, cfg.GetString("log.level"), cfg.GetBool("log.add_source"))
}

func newJSONLogger(w io.Writer, level string, addSource bool) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			}
			return attr
		},
	})

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
