package osx

import (
	"log"
	"os"
)

func Getwd(fallback string) string {
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	} else {
		log.Println(err)
	}

	return fallback
}

// ExecutableSuffix returns the executable file suffix for the given
// operating system family.
func ExecutableSuffix(goos string) string {
	if goos == "windows" {
		return ".exe"
	}

	return ""
}
