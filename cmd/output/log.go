package output

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/sysregs/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/viper"
)

var logger = slog.New(slog.DiscardHandler)

// Returns the logger configured by [SetupLogger], a discard logger before that
func Logger() *slog.Logger {
	return logger
}

func parseLevel(level string) (slog.Level, error) {
	var result slog.Level

	if err := result.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return result, utils.MakeError(ErrInvalidSetting, "log level '%v': %v", level, err)
	}

	return result, nil
}

// Configures the logger from the log.level and log.file settings. Records are written as text to
// stderr and, if log.file is set, as json lines to that file. The returned closer closes the log file
func SetupLogger(stderr io.Writer) (io.Closer, error) {
	level, err := parseLevel(viper.GetString("log.level"))
	if err != nil {
		return nil, err
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}

	var file io.Closer = nopCloser{}

	if path := viper.GetString("log.file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}

		// The file gets everything, stderr only what the level lets through
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		file = f
	}

	logger = slog.New(slogmulti.Fanout(handlers...))
	slog.SetDefault(logger)

	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
