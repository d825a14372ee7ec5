// Package errorsx provides utility functions for errors
package errorsx

import (
	"log"

	"github.com/pkg/errors"
)

func New(msg string) error {
	return errors.New(msg)
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Wrap an error with a message, nil errors remain nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf an error with a formatted message, nil errors remain nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Compact returns the first non-nil error from the set.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Zero discards the error returning the (possibly zero) value.
func Zero[T any](v T, _ error) T {
	return v
}

// Ignore returns nil when err matches any of the provided errors.
func Ignore(err error, ignore ...error) error {
	for _, i := range ignore {
		if errors.Is(err, i) {
			return nil
		}
	}

	return err
}

// Log the error if non-nil. used for best effort operations whose
// failures are deliberately discarded.
func Log(err error) {
	if err == nil {
		return
	}

	log.Output(2, err.Error())
}

// MaybeLog logs the error if non-nil and returns it unchanged.
func MaybeLog(err error) error {
	if err != nil {
		log.Output(2, err.Error())
	}

	return err
}
