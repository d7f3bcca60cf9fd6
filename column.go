// Package parquet implements the column-level decoding pipeline: given a
// PageSource producing the pages of a single column chunk and a
// ColumnDescriptor describing that column's physical layout, a
// ColumnReader decodes the chunk's definition levels, repetition levels,
// and physical values as three aligned streams.
//
// File footer and page header parsing, page-body decompression, and
// row assembly all sit outside this package; they are the caller's
// responsibility and feed it only through PageSource and ColumnDescriptor.
package parquet

import "github.com/colbuf/parquet/format"

// ColumnDescriptor describes the physical layout of one column, as the
// caller's schema/footer layer would derive it. It is immutable for the
// life of a ColumnReader.
type ColumnDescriptor struct {
	// PhysicalType is the column's on-disk value type.
	PhysicalType format.Type

	// TypeLength is the fixed length, in bytes, of each value. It is
	// meaningful only when PhysicalType is FixedLenByteArray.
	TypeLength int

	// MaxDefinitionLevel is the maximum definition level a value in this
	// column can carry. Zero means the column is required and
	// non-repeated: every data page value is present.
	MaxDefinitionLevel int

	// MaxRepetitionLevel is the maximum repetition level a value in this
	// column can carry. Zero means the column is not repeated.
	MaxRepetitionLevel int
}
