// Package sequence resolves integer sequences for the LIS entry points and
// builds deterministic in-memory fixtures for tests and benchmarks.
//
// What:
//
//   - Source: one operation, Load(n), mapping a size identifier to a
//     sequence or an error. Dir reads "<dir>/sequence_<n>.json"; Memory
//     serves a fixed map.
//   - ParseSize: turns a command-line identifier such as "10_000" into 10000.
//   - Increasing, Decreasing, Random: reproducible fixture generators.
//
// File format:
//
//	A single JSON array of integers, e.g. [3, 1, 4, 1, 5]. Anything else
//	(null, an object, floats, strings, trailing data) is malformed.
//
// Errors:
//
//   - ErrInvalidSize    identifier is not a positive integer
//   - ErrDataNotFound   no data for the identifier (see NotFoundError)
//   - ErrMalformedData  data exists but is not a JSON array of integers
//   - ErrBadSize        negative fixture length
//
// Sources never retry, never fall back to another location and never
// synthesize data: a missing file must be generated out of band.
package sequence
