package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a human-readable console logger on stderr. An unknown level
// falls back to info and is reported.
func Init(level string) {
	initTo(os.Stderr, level)
}

func initTo(w io.Writer, level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if err != nil {
			log.Warn().Str("level", level).Msg("unknown log level, using info")
		}
		return
	}
	zerolog.SetGlobalLevel(lvl)
}
