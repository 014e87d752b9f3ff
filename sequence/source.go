package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// DefaultDir is the conventional data directory, relative to the working directory.
const DefaultDir = "data"

// Source resolves a size identifier to a sequence.
type Source interface {
	// Load returns the sequence registered for n, or an error matching
	// ErrDataNotFound or ErrMalformedData.
	Load(n int) ([]int, error)
}

// Compile-time checks.
var (
	_ Source = Dir("")
	_ Source = Memory(nil)
)

// ParseSize converts a command-line size identifier into a positive int.
// Underscore digit separators are ignored, so "10_000" parses as 10000.
//
// Errors: ErrInvalidSize (wrapped with the raw argument).
func ParseSize(arg string) (int, error) {
	digits := strings.ReplaceAll(arg, "_", "")
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, arg)
	}

	return n, nil
}

// FileName returns the conventional file name for size n: "sequence_<n>.json".
func FileName(n int) string {
	return "sequence_" + strconv.Itoa(n) + ".json"
}

// Path joins dir and FileName(n).
func Path(dir string, n int) string {
	return filepath.Join(dir, FileName(n))
}

// Dir is a Source backed by a directory of sequence_<n>.json files.
type Dir string

// Load reads and decodes Path(d, n).
//
// Errors:
//   - *NotFoundError (ErrDataNotFound) when the file is missing or unreadable.
//   - ErrMalformedData wrapped with the path when decoding fails.
func (d Dir) Load(n int) ([]int, error) {
	path := Path(string(d), n)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, N: n, Err: err}
	}

	seq, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return seq, nil
}

// Decode parses raw as exactly one JSON array of integers.
// An empty array decodes to an empty, non-nil slice.
//
// Errors: ErrMalformedData, wrapped with the decoder message when available.
func Decode(raw []byte) ([]int, error) {
	// Unmarshal rejects anything but whitespace after the top-level value.
	var seq []int
	if err := gojson.Unmarshal(raw, &seq); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	// "null" decodes without error but leaves seq nil.
	if seq == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedData)
	}

	return seq, nil
}

// Memory is a Source backed by an in-memory map from size to sequence.
type Memory map[int][]int

// Load returns a copy of m[n].
// Errors: ErrDataNotFound (wrapped with n) when n is absent.
func (m Memory) Load(n int) ([]int, error) {
	seq, ok := m[n]
	if !ok {
		return nil, fmt.Errorf("%w: size %d", ErrDataNotFound, n)
	}
	out := make([]int, len(seq))
	copy(out, seq)

	return out, nil
}
