package mdlog

import (
	"fmt"

	md "github.com/rmera/mdforce"
)

// sinkError is mdlog's md.Error: every failure here is a Resource kind,
// since a logger's only way to fail is its sink (a file, a plot render)
// misbehaving, never the simulation state itself.
type sinkError struct {
	message string
	deco    []string
}

func newResourceError(cause error) sinkError {
	return sinkError{message: cause.Error()}
}

func (e sinkError) Error() string {
	return fmt.Sprintf("mdforce/mdlog: resource error: %s", e.message)
}

func (e sinkError) Decorate(deco string) []string {
	if deco != "" {
		e.deco = append(e.deco, deco)
	}
	return e.deco
}

func (e sinkError) Kind() md.Kind { return md.Resource }
