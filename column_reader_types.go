package parquet

import (
	"fmt"

	"github.com/colbuf/parquet/deprecated"
	"github.com/colbuf/parquet/encoding/delta"
	"github.com/colbuf/parquet/encoding/plain"
	"github.com/colbuf/parquet/encoding/rle"
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// unsupportedEncoding reports why a physical-type's decoder factory
// couldn't build a value decoder for enc: ErrUnsupportedEncoding when enc
// isn't one of the format's enumerated encodings at all, ErrTypeMismatch
// when it is a real encoding but this physical type's value decoders don't
// implement it (e.g. DELTA_BINARY_PACKED, which only INT32 and INT64
// support).
func unsupportedEncoding(physicalType format.Type, enc format.Encoding) error {
	if !enc.IsValid() {
		return fmt.Errorf("parquet: %s: %w", enc, ErrUnsupportedEncoding)
	}
	return fmt.Errorf("parquet: %s encoding does not support %s columns: %w", enc, physicalType, ErrTypeMismatch)
}

// NewBooleanColumnReader returns a ColumnReader for a BOOLEAN column.
func NewBooleanColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[bool] {
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[bool], error) {
			switch enc {
			case format.Plain:
				return plain.NewBooleanDecoder(), nil
			case format.RLE:
				return rle.NewBoolDecoder(), nil
			default:
				return nil, unsupportedEncoding(format.Boolean, enc)
			}
		},
		func() valueDecoder[bool] { return plain.NewBooleanDecoder() },
	)
}

// NewInt32ColumnReader returns a ColumnReader for an INT32 column.
func NewInt32ColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[int32] {
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[int32], error) {
			switch enc {
			case format.Plain:
				return plain.NewInt32Decoder(), nil
			case format.DeltaBinaryPacked:
				return delta.NewBinaryPackedDecoder[int32](), nil
			default:
				return nil, unsupportedEncoding(format.Int32, enc)
			}
		},
		func() valueDecoder[int32] { return plain.NewInt32Decoder() },
	)
}

// NewInt64ColumnReader returns a ColumnReader for an INT64 column.
func NewInt64ColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[int64] {
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[int64], error) {
			switch enc {
			case format.Plain:
				return plain.NewInt64Decoder(), nil
			case format.DeltaBinaryPacked:
				return delta.NewBinaryPackedDecoder[int64](), nil
			default:
				return nil, unsupportedEncoding(format.Int64, enc)
			}
		},
		func() valueDecoder[int64] { return plain.NewInt64Decoder() },
	)
}

// NewInt96ColumnReader returns a ColumnReader for the deprecated INT96
// column type.
func NewInt96ColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[deprecated.Int96] {
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[deprecated.Int96], error) {
			switch enc {
			case format.Plain:
				return plain.NewInt96Decoder(), nil
			default:
				return nil, unsupportedEncoding(format.Int96, enc)
			}
		},
		func() valueDecoder[deprecated.Int96] { return plain.NewInt96Decoder() },
	)
}

// NewFloatColumnReader returns a ColumnReader for a FLOAT column.
func NewFloatColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[float32] {
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[float32], error) {
			switch enc {
			case format.Plain:
				return plain.NewFloatDecoder(), nil
			default:
				return nil, unsupportedEncoding(format.Float, enc)
			}
		},
		func() valueDecoder[float32] { return plain.NewFloatDecoder() },
	)
}

// NewDoubleColumnReader returns a ColumnReader for a DOUBLE column.
func NewDoubleColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[float64] {
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[float64], error) {
			switch enc {
			case format.Plain:
				return plain.NewDoubleDecoder(), nil
			default:
				return nil, unsupportedEncoding(format.Double, enc)
			}
		},
		func() valueDecoder[float64] { return plain.NewDoubleDecoder() },
	)
}

// NewByteArrayColumnReader returns a ColumnReader for a BYTE_ARRAY column.
func NewByteArrayColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[buffer.ByteArray] {
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[buffer.ByteArray], error) {
			switch enc {
			case format.Plain:
				return plain.NewByteArrayDecoder(), nil
			case format.DeltaLengthByteArray:
				return delta.NewLengthByteArrayDecoder(), nil
			case format.DeltaByteArray:
				return delta.NewByteArrayDecoder(), nil
			default:
				return nil, unsupportedEncoding(format.ByteArray, enc)
			}
		},
		func() valueDecoder[buffer.ByteArray] { return plain.NewByteArrayDecoder() },
	)
}

// NewFixedLenByteArrayColumnReader returns a ColumnReader for a
// FIXED_LEN_BYTE_ARRAY column. descr.TypeLength must be set.
func NewFixedLenByteArrayColumnReader(descr ColumnDescriptor, src PageSource) *ColumnReader[buffer.ByteArray] {
	length := descr.TypeLength
	return newColumnReader(descr, src,
		func(enc format.Encoding) (valueDecoder[buffer.ByteArray], error) {
			switch enc {
			case format.Plain:
				return plain.NewFixedLenByteArrayDecoder(length), nil
			case format.DeltaLengthByteArray:
				return delta.NewLengthByteArrayDecoder(), nil
			case format.DeltaByteArray:
				return delta.NewByteArrayDecoder(), nil
			default:
				return nil, unsupportedEncoding(format.FixedLenByteArray, enc)
			}
		},
		func() valueDecoder[buffer.ByteArray] { return plain.NewFixedLenByteArrayDecoder(length) },
	)
}
