package rle

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// BoolDecoder implements the RLE value encoding for BOOLEAN columns: a
// 4-byte little-endian length prefix followed by an RLE/bit-packed stream
// of width 1. It is never used for anything but BOOL; parquet does not
// define an RLE value encoding for other physical types.
type BoolDecoder struct {
	hybrid    HybridDecoder
	numValues int
}

// NewBoolDecoder returns an unbound BoolDecoder.
func NewBoolDecoder() *BoolDecoder {
	return &BoolDecoder{}
}

func (d *BoolDecoder) SetData(buf buffer.Buffer, numValues int) error {
	if buf.Len() < 4 {
		return fmt.Errorf("rle bool: length prefix: %w", io.ErrUnexpectedEOF)
	}
	length := int(binary.LittleEndian.Uint32(buf.Bytes()[:4]))
	if length < 0 || 4+length > buf.Len() {
		return fmt.Errorf("rle bool: length %d exceeds buffer of %d bytes", length, buf.Len())
	}
	d.hybrid.SetData(buf.Slice(4, length), 1)
	d.numValues = numValues
	return nil
}

func (d *BoolDecoder) Decode(out []bool) (int, error) {
	if len(out) > d.numValues {
		out = out[:d.numValues]
	}
	raw := make([]int32, len(out))
	n, err := d.hybrid.GetBatch(raw)
	for i := 0; i < n; i++ {
		out[i] = raw[i] != 0
	}
	d.numValues -= n
	return n, err
}

func (d *BoolDecoder) ValuesLeft() int { return d.numValues }

func (d *BoolDecoder) Encoding() format.Encoding { return format.RLE }
