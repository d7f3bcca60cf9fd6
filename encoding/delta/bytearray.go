package delta

import (
	"fmt"
	"io"

	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// ByteArrayDecoder decodes DELTA_BYTE_ARRAY: a DELTA_BINARY_PACKED stream
// of prefix lengths (how many leading bytes each value shares with its
// predecessor), followed by a DELTA_LENGTH_BYTE_ARRAY stream of the
// non-shared suffixes. Reconstructing a value requires the previous
// value's bytes, so — unlike every other decoder in this module — output
// values here are freshly allocated rather than zero-copy slices of the
// page buffer.
type ByteArrayDecoder struct {
	prefixLengths []int32
	idx           int
	suffixDecoder *LengthByteArrayDecoder
	previousValue []byte
	numValues     int
}

// NewByteArrayDecoder returns an unbound ByteArrayDecoder.
func NewByteArrayDecoder() *ByteArrayDecoder {
	return &ByteArrayDecoder{}
}

func (d *ByteArrayDecoder) SetData(buf buffer.Buffer, numValues int) error {
	prefixDec := NewBinaryPackedDecoder[int32]()
	if err := prefixDec.SetData(buf, numValues); err != nil {
		return fmt.Errorf("delta byte array: prefix lengths: %w", err)
	}
	prefixLengths := make([]int32, numValues)
	n, err := prefixDec.Decode(prefixLengths)
	if err != nil {
		return fmt.Errorf("delta byte array: prefix lengths: %w", err)
	}
	if n != numValues {
		return fmt.Errorf("delta byte array: decoded %d of %d prefix lengths: %w", n, numValues, io.ErrUnexpectedEOF)
	}

	suffixDecoder := NewLengthByteArrayDecoder()
	if err := suffixDecoder.SetData(buf.From(prefixDec.Offset()), numValues); err != nil {
		return fmt.Errorf("delta byte array: suffixes: %w", err)
	}

	d.prefixLengths = prefixLengths
	d.idx = 0
	d.suffixDecoder = suffixDecoder
	d.previousValue = nil
	d.numValues = numValues
	return nil
}

func (d *ByteArrayDecoder) Decode(out []buffer.ByteArray) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	suffix := make([]buffer.ByteArray, 1)
	for i := 0; i < n; i++ {
		if _, err := d.suffixDecoder.Decode(suffix); err != nil {
			return i, fmt.Errorf("delta byte array: suffix: %w", err)
		}

		prefixLen := int(d.prefixLengths[d.idx])
		if prefixLen < 0 || prefixLen > len(d.previousValue) {
			return i, fmt.Errorf("delta byte array: prefix length %d exceeds previous value of %d bytes: %w",
				prefixLen, len(d.previousValue), io.ErrUnexpectedEOF)
		}

		result := make([]byte, 0, prefixLen+suffix[0].Len())
		result = append(result, d.previousValue[:prefixLen]...)
		result = append(result, suffix[0].Bytes()...)

		out[i] = buffer.NewByteArray(result)
		d.previousValue = result
		d.idx++
	}
	d.numValues -= n
	return n, nil
}

func (d *ByteArrayDecoder) ValuesLeft() int { return d.numValues }

func (d *ByteArrayDecoder) Encoding() format.Encoding { return format.DeltaByteArray }
