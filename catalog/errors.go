package catalog

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFound is returned for unknown apps, platforms, versions and kinds.
type NotFound struct {
	Message string
}

func (e *NotFound) Error() string {
	return e.Message
}

func notFoundf(format string, args ...interface{}) error {
	return &NotFound{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether the cause of err is a NotFound.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFound)
	return ok
}

// InvalidVersion is returned when a version filter is not major.minor.patch.
type InvalidVersion struct {
	Version string
	Err     error
}

func (e *InvalidVersion) Error() string {
	return fmt.Sprintf("Invalid version: %s", e.Version)
}

func (e *InvalidVersion) Unwrap() error {
	return e.Err
}
