package main

import "github.com/rs/zerolog"

// zerologSetDebug raises the global logging level to debug; invoked from
// the root command's PersistentPreRun when --verbose is set.
func zerologSetDebug() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
