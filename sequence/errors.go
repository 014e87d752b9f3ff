// SPDX-License-Identifier: MIT
// Package: sequence
//
// errors.go — sentinel errors and the typed not-found error.
//
// Error policy:
//   • Sentinels are package-level and never carry formatted parameters.
//   • Context (paths, raw arguments) is attached with %w at the call site.
//   • Callers branch with errors.Is / errors.As, never on message text.

package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates the size identifier is not a positive base-10
// integer once digit separators are removed.
var ErrInvalidSize = errors.New("sequence: invalid size identifier")

// ErrDataNotFound indicates there is no data for the requested size: the
// file does not exist or cannot be read.
var ErrDataNotFound = errors.New("sequence: data not found")

// ErrMalformedData indicates the data exists but is not exactly one JSON
// array of integers.
var ErrMalformedData = errors.New("sequence: malformed data")

// ErrBadSize indicates a negative length was requested from a generator.
var ErrBadSize = errors.New("sequence: invalid length")

// NotFoundError carries the resolved path of missing data.
// It matches ErrDataNotFound under errors.Is.
type NotFoundError struct {
	// Path is the file that was looked up.
	Path string
	// N is the size identifier the path was derived from.
	N int
	// Err is the underlying filesystem error, if any.
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", ErrDataNotFound, e.Path)
	}

	return fmt.Sprintf("%v: %s: %v", ErrDataNotFound, e.Path, e.Err)
}

// Is reports ErrDataNotFound as a match.
func (e *NotFoundError) Is(target error) bool { return target == ErrDataNotFound }

// Unwrap exposes the filesystem error (e.g. fs.ErrNotExist, fs.ErrPermission).
func (e *NotFoundError) Unwrap() error { return e.Err }
