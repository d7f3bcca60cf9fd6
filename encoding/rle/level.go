package rle

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/colbuf/parquet/internal/bits"
	"github.com/colbuf/parquet/internal/buffer"
	"github.com/colbuf/parquet/format"
)

// LevelDecoder decodes a definition or repetition level stream. The wire
// encoding is either RLE (the only one data page v1 writers still produce)
// or the deprecated raw BIT_PACKED form; both are exposed through the same
// Get method so callers never need to know which one a page used.
type LevelDecoder struct {
	hybrid   *HybridDecoder // set when encoding == format.RLE
	bitPack  *BitReader     // set when encoding == format.BitPacked
	bitWidth uint
}

// NewLevelDecoder returns an unbound LevelDecoder.
func NewLevelDecoder() *LevelDecoder {
	return &LevelDecoder{}
}

// SetData binds the decoder to buf and returns the number of bytes of buf
// it consumed, so the caller can advance past the level block to whatever
// follows it (another level block, or the value block).
//
// maxLevel is the column's maxDef or maxRep, used to derive the bit width.
// numValues is the data page's declared value count; it is only consulted
// for the legacy BIT_PACKED encoding, which — unlike RLE — carries no
// length prefix of its own and instead packs exactly numValues levels,
// padded to a byte boundary.
func (d *LevelDecoder) SetData(enc format.Encoding, buf buffer.Buffer, maxLevel int, numValues int) (int, error) {
	d.bitWidth = bits.Width(maxLevel)

	switch enc {
	case format.RLE:
		if buf.Len() < 4 {
			return 0, fmt.Errorf("rle: level block length prefix: %w", io.ErrUnexpectedEOF)
		}
		length := int(binary.LittleEndian.Uint32(buf.Bytes()[:4]))
		if length < 0 || 4+length > buf.Len() {
			return 0, fmt.Errorf("rle: level block length %d exceeds buffer of %d bytes", length, buf.Len())
		}
		if d.hybrid == nil {
			d.hybrid = NewHybridDecoder()
		}
		d.hybrid.SetData(buf.Slice(4, length), d.bitWidth)
		d.bitPack = nil
		return 4 + length, nil

	case format.BitPacked:
		totalBits := numValues * int(d.bitWidth)
		byteLen := bits.ByteCount(uint(totalBits))
		if byteLen > buf.Len() {
			return 0, fmt.Errorf("bit-packed levels: %w", io.ErrUnexpectedEOF)
		}
		if d.bitPack == nil {
			d.bitPack = &BitReader{}
		}
		d.bitPack.Reset(buf.Slice(0, byteLen))
		d.hybrid = nil
		return byteLen, nil

	default:
		return 0, fmt.Errorf("level encoding %s: %w", enc, errUnsupportedLevelEncoding)
	}
}

var errUnsupportedLevelEncoding = fmt.Errorf("level streams only support RLE and BIT_PACKED")

// Get decodes up to len(out) levels, every one of them guaranteed to be in
// [0, maxLevel] by construction of the bit width, and returns the count
// actually produced.
func (d *LevelDecoder) Get(out []int16) (int, error) {
	switch {
	case d.hybrid != nil:
		raw := make([]int32, len(out))
		n, err := d.hybrid.GetBatch(raw)
		for i := 0; i < n; i++ {
			out[i] = int16(raw[i])
		}
		return n, err
	case d.bitPack != nil:
		n := 0
		for n < len(out) {
			v, ok := d.bitPack.GetValue(d.bitWidth)
			if !ok {
				break
			}
			out[n] = int16(v)
			n++
		}
		return n, nil
	default:
		return 0, fmt.Errorf("rle: level decoder has no data bound")
	}
}
