package output

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger(verbose bool) {
	SetLogOutput(os.Stderr, verbose)
}

func SetLogOutput(w io.Writer, verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    !IsTerminal(w),
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}
