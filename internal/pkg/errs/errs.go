package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin wrappers over cockroachdb/errors so callers get stack traces and
// errors.Is-compatible marks without importing the library everywhere.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to markErr so errors.Is(err, markErr) reports true while
// the original cause stays in the chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
