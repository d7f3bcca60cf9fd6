// Package plain implements the PLAIN encoding: the simplest and only
// encoding every physical type supports, values packed back to back with
// no framing beyond the per-type rules in this file.
package plain

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/colbuf/parquet/deprecated"
	"github.com/colbuf/parquet/encoding/rle"
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// FixedDecoder decodes a PLAIN stream of fixed-width values, memcpy'd
// little-endian from the page buffer. It is generic over the decoded Go
// type so that INT32, INT64, FLOAT and DOUBLE — which differ only in
// element size and byte interpretation — share one implementation instead
// of four copies of the same cursor arithmetic.
type FixedDecoder[T any] struct {
	buf       buffer.Buffer
	pos       int
	numValues int
	size      int
	decode    func([]byte) T
}

// NewFixedDecoder returns a FixedDecoder reading size-byte elements
// converted by decode.
func NewFixedDecoder[T any](size int, decode func([]byte) T) *FixedDecoder[T] {
	return &FixedDecoder[T]{size: size, decode: decode}
}

// SetData binds buf and the page's declared value count. numValues is the
// page's total row count, not necessarily the number of physically present
// values for an optional column (some of those rows may be null and
// contribute no bytes here), so the only length check happens per call in
// Decode, against what is actually about to be read.
func (d *FixedDecoder[T]) SetData(buf buffer.Buffer, numValues int) error {
	d.buf, d.pos, d.numValues = buf, 0, numValues
	return nil
}

func (d *FixedDecoder[T]) Decode(out []T) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	data := d.buf.Bytes()
	need := n * d.size
	if d.pos+need > len(data) {
		return 0, fmt.Errorf("plain: %w", io.ErrUnexpectedEOF)
	}
	for i := 0; i < n; i++ {
		out[i] = d.decode(data[d.pos : d.pos+d.size])
		d.pos += d.size
	}
	d.numValues -= n
	return n, nil
}

func (d *FixedDecoder[T]) ValuesLeft() int           { return d.numValues }
func (d *FixedDecoder[T]) Encoding() format.Encoding { return format.Plain }

// NewInt32Decoder returns a PLAIN decoder for INT32 columns.
func NewInt32Decoder() *FixedDecoder[int32] {
	return NewFixedDecoder(4, func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) })
}

// NewInt64Decoder returns a PLAIN decoder for INT64 columns.
func NewInt64Decoder() *FixedDecoder[int64] {
	return NewFixedDecoder(8, func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) })
}

// NewFloatDecoder returns a PLAIN decoder for FLOAT columns.
func NewFloatDecoder() *FixedDecoder[float32] {
	return NewFixedDecoder(4, func(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) })
}

// NewDoubleDecoder returns a PLAIN decoder for DOUBLE columns.
func NewDoubleDecoder() *FixedDecoder[float64] {
	return NewFixedDecoder(8, func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) })
}

// NewInt96Decoder returns a PLAIN decoder for the deprecated INT96
// physical type: three little-endian 32-bit words per value.
func NewInt96Decoder() *FixedDecoder[deprecated.Int96] {
	return NewFixedDecoder(12, func(b []byte) deprecated.Int96 {
		return deprecated.Int96{
			binary.LittleEndian.Uint32(b[0:4]),
			binary.LittleEndian.Uint32(b[4:8]),
			binary.LittleEndian.Uint32(b[8:12]),
		}
	})
}

// BooleanDecoder decodes PLAIN-encoded BOOLEAN values: a raw bit stream,
// one bit per value, 1 meaning true, with no length framing.
type BooleanDecoder struct {
	br        rle.BitReader
	numValues int
}

// NewBooleanDecoder returns an unbound BooleanDecoder.
func NewBooleanDecoder() *BooleanDecoder {
	return &BooleanDecoder{}
}

func (d *BooleanDecoder) SetData(buf buffer.Buffer, numValues int) error {
	d.br.Reset(buf)
	d.numValues = numValues
	return nil
}

func (d *BooleanDecoder) Decode(out []bool) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	for i := 0; i < n; i++ {
		v, ok := d.br.GetValue(1)
		if !ok {
			return i, fmt.Errorf("plain: %w", io.ErrUnexpectedEOF)
		}
		out[i] = v != 0
	}
	d.numValues -= n
	return n, nil
}

func (d *BooleanDecoder) ValuesLeft() int           { return d.numValues }
func (d *BooleanDecoder) Encoding() format.Encoding { return format.Plain }

// ByteArrayDecoder decodes PLAIN-encoded BYTE_ARRAY values: each value is
// a 4-byte little-endian length followed by that many bytes. Decoded
// values are zero-copy sub-ranges of the page buffer.
type ByteArrayDecoder struct {
	buf       buffer.Buffer
	pos       int
	numValues int
}

// NewByteArrayDecoder returns an unbound ByteArrayDecoder.
func NewByteArrayDecoder() *ByteArrayDecoder {
	return &ByteArrayDecoder{}
}

func (d *ByteArrayDecoder) SetData(buf buffer.Buffer, numValues int) error {
	d.buf, d.pos, d.numValues = buf, 0, numValues
	return nil
}

func (d *ByteArrayDecoder) Decode(out []buffer.ByteArray) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	data := d.buf.Bytes()
	for i := 0; i < n; i++ {
		if d.pos+4 > len(data) {
			return i, fmt.Errorf("plain: byte array length: %w", io.ErrUnexpectedEOF)
		}
		length := int(binary.LittleEndian.Uint32(data[d.pos : d.pos+4]))
		d.pos += 4
		if length < 0 || d.pos+length > len(data) {
			return i, fmt.Errorf("plain: byte array of length %d: %w", length, io.ErrUnexpectedEOF)
		}
		out[i] = d.buf.SliceByteArray(d.pos, length)
		d.pos += length
	}
	d.numValues -= n
	return n, nil
}

func (d *ByteArrayDecoder) ValuesLeft() int           { return d.numValues }
func (d *ByteArrayDecoder) Encoding() format.Encoding { return format.Plain }

// FixedLenByteArrayDecoder decodes PLAIN-encoded FIXED_LEN_BYTE_ARRAY
// values: each value is exactly Length bytes, no per-value framing.
type FixedLenByteArrayDecoder struct {
	buf       buffer.Buffer
	pos       int
	numValues int
	Length    int
}

// NewFixedLenByteArrayDecoder returns an unbound decoder for values of the
// given fixed length.
func NewFixedLenByteArrayDecoder(length int) *FixedLenByteArrayDecoder {
	return &FixedLenByteArrayDecoder{Length: length}
}

// SetData binds buf and the page's declared value count; see FixedDecoder's
// SetData for why no eager length check happens here.
func (d *FixedLenByteArrayDecoder) SetData(buf buffer.Buffer, numValues int) error {
	d.buf, d.pos, d.numValues = buf, 0, numValues
	return nil
}

func (d *FixedLenByteArrayDecoder) Decode(out []buffer.ByteArray) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	need := n * d.Length
	if d.pos+need > d.buf.Len() {
		return 0, fmt.Errorf("plain: %w", io.ErrUnexpectedEOF)
	}
	for i := 0; i < n; i++ {
		out[i] = d.buf.SliceByteArray(d.pos, d.Length)
		d.pos += d.Length
	}
	d.numValues -= n
	return n, nil
}

func (d *FixedLenByteArrayDecoder) ValuesLeft() int           { return d.numValues }
func (d *FixedLenByteArrayDecoder) Encoding() format.Encoding { return format.Plain }
