package config

import (
	"fmt"
	"strings"
)

// Error lists every problem found in a configuration.
type Error struct {
	Problems []string
}

func newError(field, format string, args ...interface{}) *Error {
	return &Error{Problems: []string{field + ": " + fmt.Sprintf(format, args...)}}
}

func (e *Error) add(field, format string, args ...interface{}) {
	e.Problems = append(e.Problems, field+": "+fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}

func (e *Error) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
