package testx

import (
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

// Logging enable logging if stdout terminal is a tty.
func Logging() {
	log.SetFlags(log.Lshortfile | log.Ldate | log.LUTC)
	log.SetOutput(os.Stderr)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		return
	}
}
