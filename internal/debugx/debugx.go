// Package debugx provides logging statements that only emit when debug
// logging is enabled via the environment.
package debugx

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

func enabled() bool {
	b, err := strconv.ParseBool(os.Getenv("DENOFUNC_LOGS_DEBUG"))
	return err == nil && b
}

func Println(args ...interface{}) {
	if !enabled() {
		return
	}

	log.Output(2, fmt.Sprintln(args...))
}

func Printf(format string, args ...interface{}) {
	if !enabled() {
		return
	}

	log.Output(2, fmt.Sprintf(format, args...))
}
