// Copyright (C) 2024  chronolib contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chronolib

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the taxonomy of errors the core surfaces. It is the
// closed set described in the error handling design: every failure a
// calendar system, chronology, or the nengo resolver can raise maps to
// exactly one of these.
type Kind int

const (
	// OutOfRange is raised when a numeric value lies outside a
	// declared range (year, cycle, day-of-month, and so on).
	OutOfRange Kind = iota
	// InvalidDate is raised when fields together don't form a legal
	// date, e.g. a leap-flag East Asian month in a non-leap year.
	InvalidDate
	// InvalidEra is raised when an era value is unknown to the
	// calendar, or changing era is disallowed.
	InvalidEra
	// Overflow is raised when arithmetic would exceed a documented
	// arithmetic limit or the representable range.
	Overflow
	// Ambivalent is raised when a request cannot be unambiguously
	// satisfied, e.g. a cyclic year that maps to two Gregorian years
	// within a bounded dynasty window.
	Ambivalent
	// InitFailed is raised when a required data asset is missing or
	// corrupt, or configuration is malformed, at module load.
	InitFailed
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "OutOfRange"
	case InvalidDate:
		return "InvalidDate"
	case InvalidEra:
		return "InvalidEra"
	case Overflow:
		return "Overflow"
	case Ambivalent:
		return "Ambivalent"
	case InitFailed:
		return "InitFailed"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned across the core's API
// boundary. It carries the offending Kind, a human-readable message,
// and an optional cause wrapped with github.com/pkg/errors so callers
// that want a stack trace (errors.Wrapf) can still get one.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, so errors.Is/errors.As
// chain through an *Error the way the standard library expects.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error of the same Kind, allowing
// callers to write errors.Is(err, chronolib.KindSentinel(chronolib.OutOfRange)) style
// checks via the Kind sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// NewError constructs a new *Error of the given kind with a formatted
// message and no cause.
func NewError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// WrapError constructs a new *Error of the given kind, wrapping cause
// with github.com/pkg/errors so a stack trace survives for diagnostics.
func WrapError(k Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    k,
		Message: fmt.Sprintf(format, args...),
		cause:   errors.Wrapf(cause, "chronolib"),
	}
}

// KindSentinel returns a zero-message *Error of the given kind,
// suitable for use with errors.Is(err, chronolib.KindSentinel(chronolib.OutOfRange)).
func KindSentinel(k Kind) *Error { return &Error{Kind: k} }
