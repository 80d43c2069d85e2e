package integrate

import (
	"fmt"

	md "github.com/rmera/mdforce"
)

// stepError is this package's md.Error: the numerical failures Simulate
// detects report through it, and a logger's failure comes back as that
// logger's own md.Error, so callers can type-assert to md.Error
// regardless of which package produced the failure.
type stepError struct {
	message string
	kind    md.Kind
	deco    []string
}

func newError(kind md.Kind, format string, args ...interface{}) stepError {
	return stepError{message: fmt.Sprintf(format, args...), kind: kind}
}

func (e stepError) Error() string {
	return fmt.Sprintf("mdforce/integrate: %s error: %s", e.kind, e.message)
}

func (e stepError) Decorate(deco string) []string {
	if deco != "" {
		e.deco = append(e.deco, deco)
	}
	return e.deco
}

func (e stepError) Kind() md.Kind { return e.kind }
