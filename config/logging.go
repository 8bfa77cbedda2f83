package config

import (
	"io"
	"log"
	"os"
)

// InitLogging configures the standard logger. Diagnostics go to stderr
// when verbose and are discarded otherwise, keeping stdout for the dialogue.
func InitLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
