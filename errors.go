/*
 * errors.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 */

package md

import "fmt"

// Error is the interface every package in mdforce implements for its own
// failure modes. Decorate lets a caller up the stack add a breadcrumb
// without changing the error's type or wrapping it in something new; it
// returns the accumulated breadcrumb trail. Passing the empty string just
// retrieves the current trail.
type Error interface {
	error
	Decorate(string) []string
	Kind() Kind
}

// Kind classifies an Error: a Validation error is fatal at construction
// time, a Numerical error aborts the current Simulate call, and a
// Resource error is a failure in an external sink (a logger's file,
// say).
type Kind uint8

const (
	Validation Kind = iota
	Numerical
	Resource
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Numerical:
		return "numerical"
	case Resource:
		return "resource"
	default:
		return "unknown"
	}
}

// SystemError is the concrete Error used by the md package.
type SystemError struct {
	message string
	kind    Kind
	deco    []string
}

func newError(kind Kind, message string) SystemError {
	return SystemError{message: message, kind: kind}
}

func (e SystemError) Error() string {
	return fmt.Sprintf("mdforce: %s error: %s", e.kind, e.message)
}

// Decorate appends a breadcrumb and returns the trail so far. Note the
// value receiver: deco is a slice, itself a pointer to backing storage, so
// the append is visible to the caller that holds the original value too,
// same as rmera/gochem's xtc.Error.Decorate.
func (e SystemError) Decorate(deco string) []string {
	if deco != "" {
		e.deco = append(e.deco, deco)
	}
	return e.deco
}

func (e SystemError) Kind() Kind { return e.kind }
