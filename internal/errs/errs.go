// Package errs declares the sentinel errors shared by the encoding
// sub-packages and re-exported by the root package, so that a caller using
// errors.Is on the root package's error variables also matches the error
// returned from deep inside a value or level decoder.
package errs

import "errors"

var (
	// ErrInvalidHeader is returned when a decoder encounters a structurally
	// impossible header: a bit width above 64, a negative length, a
	// valuesPerMiniBlock that isn't a multiple of 8, and similar.
	ErrInvalidHeader = errors.New("parquet: invalid header")

	// ErrUnsupportedEncoding is returned when a page requests an encoding
	// outside the enumerated set this module implements.
	ErrUnsupportedEncoding = errors.New("parquet: unsupported encoding")

	// ErrTypeMismatch is returned when an encoding is requested for a
	// physical type it does not support, e.g. DELTA_BINARY_PACKED on
	// BYTE_ARRAY.
	ErrTypeMismatch = errors.New("parquet: encoding does not support this physical type")

	// ErrDictIndexOutOfRange is returned by the RLE/bit-packed hybrid's
	// dictionary-indirected batch decode when a decoded index addresses a
	// position outside the dictionary.
	ErrDictIndexOutOfRange = errors.New("parquet: dictionary index out of range")
)
