package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/chronos-tachyon/huffpack/internal/config"
	"github.com/rs/zerolog"
)

// New builds the logger described by the logger.* settings.  With
// logger.prettier it writes human-readable lines, otherwise JSON.
func New(conf *config.Conf, out io.Writer) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = conf.String("logger.time-format", time.RFC3339)

	level, err := zerolog.ParseLevel(conf.String("logger.level", "info"))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse logger.level: %w", err)
	}

	if conf.Bool("logger.prettier", true) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
