package delta

import (
	"fmt"
	"io"

	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// LengthByteArrayDecoder decodes DELTA_LENGTH_BYTE_ARRAY: a
// DELTA_BINARY_PACKED stream of value lengths followed, with no
// additional framing, by the concatenated raw value bytes.
type LengthByteArrayDecoder struct {
	lengths   []int32
	idx       int
	data      buffer.Buffer
	pos       int
	numValues int
}

// NewLengthByteArrayDecoder returns an unbound LengthByteArrayDecoder.
func NewLengthByteArrayDecoder() *LengthByteArrayDecoder {
	return &LengthByteArrayDecoder{}
}

func (d *LengthByteArrayDecoder) SetData(buf buffer.Buffer, numValues int) error {
	lenDec := NewBinaryPackedDecoder[int32]()
	if err := lenDec.SetData(buf, numValues); err != nil {
		return fmt.Errorf("delta length byte array: lengths: %w", err)
	}
	lengths := make([]int32, numValues)
	n, err := lenDec.Decode(lengths)
	if err != nil {
		return fmt.Errorf("delta length byte array: lengths: %w", err)
	}
	if n != numValues {
		return fmt.Errorf("delta length byte array: decoded %d of %d lengths: %w", n, numValues, io.ErrUnexpectedEOF)
	}

	d.lengths = lengths
	d.idx = 0
	d.data = buf.From(lenDec.Offset())
	d.pos = 0
	d.numValues = numValues
	return nil
}

func (d *LengthByteArrayDecoder) Decode(out []buffer.ByteArray) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	for i := 0; i < n; i++ {
		length := int(d.lengths[d.idx])
		if length < 0 || d.pos+length > d.data.Len() {
			return i, fmt.Errorf("delta length byte array: value of length %d: %w", length, io.ErrUnexpectedEOF)
		}
		out[i] = d.data.SliceByteArray(d.pos, length)
		d.pos += length
		d.idx++
	}
	d.numValues -= n
	return n, nil
}

func (d *LengthByteArrayDecoder) ValuesLeft() int { return d.numValues }

func (d *LengthByteArrayDecoder) Encoding() format.Encoding { return format.DeltaLengthByteArray }
