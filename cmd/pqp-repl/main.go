// Command pqp-repl is a thin CLI front-end over the causal-inference
// engine: it loads a graph and a causal query from a YAML config file,
// runs identification (and, optionally, estimation against an inline
// dataset), and prints the result.
//
// The engine itself (symbols, algebra, cgraph, identify, estimand,
// dataset, estimate, ledger) does no I/O and no logging; this command
// is the one place in the module that does either.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the single process-wide logger, created once in main() at info
// level; the --verbose persistent flag raises the global level to debug.
var log zerolog.Logger

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
		With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("pqp-repl failed")
		os.Exit(1)
	}
}
