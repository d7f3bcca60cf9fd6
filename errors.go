package parquet

import (
	"errors"

	"github.com/colbuf/parquet/internal/errs"
)

// Sentinel errors returned by the column-decoding pipeline. All are
// recoverable only by discarding the ColumnReader that produced them; none
// leave output slices partially overwritten beyond what was already
// written before the failing step.
var (
	// ErrDuplicateDictionary is returned when a column chunk carries a
	// second dictionary page.
	ErrDuplicateDictionary = errors.New("parquet: column chunk has more than one dictionary page")

	// ErrMissingDictionary is returned when a data page requests
	// RLE_DICTIONARY but no dictionary page was seen.
	ErrMissingDictionary = errors.New("parquet: data page uses dictionary encoding but no dictionary was set")

	// ErrLevelMismatch is returned when a step decodes unequal counts of
	// definition and repetition levels.
	ErrLevelMismatch = errors.New("parquet: definition and repetition level counts disagree")

	// ErrUnsupportedEncoding is returned when a page's encoding is outside
	// the set this package implements.
	ErrUnsupportedEncoding = errs.ErrUnsupportedEncoding

	// ErrInvalidHeader is returned for a structurally impossible page or
	// stream header: an out-of-range bit width, a negative length, etc.
	ErrInvalidHeader = errs.ErrInvalidHeader

	// ErrTypeMismatch is returned when an encoding is requested for a
	// physical type it does not support.
	ErrTypeMismatch = errs.ErrTypeMismatch

	// ErrDictIndexOutOfRange is returned when the RLE/bit-packed hybrid
	// produces a dictionary index beyond the bound dictionary's length.
	ErrDictIndexOutOfRange = errs.ErrDictIndexOutOfRange
)
