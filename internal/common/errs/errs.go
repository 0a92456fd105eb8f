// Released under an MIT license. See LICENSE.

// Package errs declares the error kinds an abc computation can produce.
//
// Every fallible operation in abc returns a value or exactly one of
// these kinds. Time and Space are expected, recoverable outcomes; Bug
// means the store they came from should no longer be trusted.
package errs

import (
	"errors"
	"fmt"
)

// Space is returned when a store-wide resource bound would be exceeded.
type Space struct {
	What  string
	Limit int
}

func (e Space) Error() string {
	return fmt.Sprintf("out of space: %s would exceed the bound of %d terms", e.What, e.Limit)
}

// Time is returned when the effort quota runs out before a normal form
// is reached.
type Time struct {
	Quota int
}

func (e Time) Error() string {
	return fmt.Sprintf("out of time: no normal form after %d steps", e.Quota)
}

// Type is returned when a rewrite rule or accessor is applied to a term
// of an incompatible shape.
type Type struct {
	What string
	Want string
	Got  string
}

func (e Type) Error() string {
	return fmt.Sprintf("type mismatch: %s wants %s, got %s", e.What, e.Want, e.Got)
}

// Assert is returned when a caller-specified invariant check fails.
type Assert struct {
	What string
}

func (e Assert) Error() string {
	return "assertion failed: " + e.What
}

// Syntax is returned for malformed textual input, including invalid
// variable names.
type Syntax struct {
	What string
}

func (e Syntax) Error() string {
	return "syntax error: " + e.What
}

// Stub is returned when an intentionally unimplemented feature is
// reached.
type Stub struct {
	What string
}

func (e Stub) Error() string {
	return "not implemented: " + e.What
}

// Bug is returned when an internal invariant is violated. After a Bug
// the engine that produced it is unreliable.
type Bug struct {
	What string
}

func (e Bug) Error() string {
	return "internal error: " + e.What
}

// IsSpace returns true if err is a Space error.
func IsSpace(err error) bool { var e Space; return errors.As(err, &e) }

// IsTime returns true if err is a Time error.
func IsTime(err error) bool { var e Time; return errors.As(err, &e) }

// IsType returns true if err is a Type error.
func IsType(err error) bool { var e Type; return errors.As(err, &e) }

// IsAssert returns true if err is an Assert error.
func IsAssert(err error) bool { var e Assert; return errors.As(err, &e) }

// IsSyntax returns true if err is a Syntax error.
func IsSyntax(err error) bool { var e Syntax; return errors.As(err, &e) }

// IsStub returns true if err is a Stub error.
func IsStub(err error) bool { var e Stub; return errors.As(err, &e) }

// IsBug returns true if err is a Bug error.
func IsBug(err error) bool { var e Bug; return errors.As(err, &e) }
