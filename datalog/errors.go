// Copyright 2026 The allwpilib Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datalog

import "fmt"

// Kind classifies the errors the datalog core can surface. An
// out-of-range kind is intentionally absent: a read past the end of the
// log returns a zero-value successful result, not an error.
type Kind int

const (
	// IoError is an OS-level failure (open, truncate, map).
	IoError Kind = iota
	// WrongFormat means the header is missing, malformed, has wrong
	// field types, or fails a requested check.
	WrongFormat
	// ReadOnly means mutation was attempted on a read-only log.
	ReadOnly
	// MonotonicViolation means ts <= lastTimestamp with checking enabled.
	MonotonicViolation
)

func (k Kind) String() string {
	switch k {
	case IoError:
		return "IoError"
	case WrongFormat:
		return "WrongFormat"
	case ReadOnly:
		return "ReadOnly"
	case MonotonicViolation:
		return "MonotonicViolation"
	default:
		return "Unknown"
	}
}

// Error is the typed error the datalog core returns: a small sentinel
// error extended with a comparable Kind so callers can branch with
// errors.As instead of matching on error strings, with a single type
// covering every failure case the core surfaces.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("datalog: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("datalog: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}
