package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const verboseEnv = "DEBOUNCE_DEMO_VERBOSE"

// setupLogging returns a console logger writing to w. Wall clock timestamps are
// left out, each event carries the simulated instant in its "at" field.
func setupLogging(w io.Writer, verbose, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose || os.Getenv(verboseEnv) != "" {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:         w,
		NoColor:     noColor,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FieldsOrder: []string{"click", "at", "remaining"},
	}

	logger := zerolog.New(writer).Level(level)
	logger.Debug().Str("env", verboseEnv).Msg("running in verbose mode")

	return logger
}
