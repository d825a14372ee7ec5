package cmderrors

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/logrusorgru/aurora"
)

func Sprint(err error) string {
	type NotificationError interface {
		Notification()
	}

	type ShortError interface {
		UserFriendly()
	}

	var (
		nErr NotificationError
		sErr ShortError
	)

	if errors.As(err, &nErr) {
		return fmt.Sprint(err)
	}

	if errors.As(err, &sErr) {
		return fmt.Sprint(aurora.NewAurora(true).Red("ERROR"), err)
	}

	return fmt.Sprintf("%T - [%+v]", err, err)
}

// Code maps an error to the process exit code, surfacing the exit code
// of a failed generator subprocess unchanged.
func Code(err error) int {
	var (
		exit *exec.ExitError
	)

	if errors.As(err, &exit) && exit.ExitCode() > 0 {
		return exit.ExitCode()
	}

	return 1
}
