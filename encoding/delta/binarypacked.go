// Package delta implements the DELTA_BINARY_PACKED, DELTA_LENGTH_BYTE_ARRAY
// and DELTA_BYTE_ARRAY encodings: the format's three "frame of reference"
// codecs, all layered on top of RLE's bit reader and VLQ helpers.
package delta

import (
	"fmt"
	"io"

	"github.com/colbuf/parquet/encoding/rle"
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
	"github.com/colbuf/parquet/internal/errs"
)

// Integer is the set of physical types DELTA_BINARY_PACKED supports:
// INT32 and INT64.
type Integer interface {
	~int32 | ~int64
}

// BinaryPackedDecoder decodes a DELTA_BINARY_PACKED stream: a header
// giving block layout and the first value, followed by one or more
// blocks, each a zig-zag min-delta and one bit-packed mini-block per
// width entry. Deltas are always computed in 64-bit arithmetic and
// truncated to T on store, matching the wrap-around addition the format
// requires.
type BinaryPackedDecoder[T Integer] struct {
	br rle.BitReader

	blockSize          int
	numMiniBlocks      int
	valuesPerMiniBlock int
	numValues          int

	firstValue     int64
	firstValueRead bool
	current        int64

	minDelta     int64
	widths       []byte
	miniBlockIdx int
	deltas       []int64
	idxInMini    int
}

// NewBinaryPackedDecoder returns an unbound BinaryPackedDecoder.
func NewBinaryPackedDecoder[T Integer]() *BinaryPackedDecoder[T] {
	return &BinaryPackedDecoder[T]{}
}

func (d *BinaryPackedDecoder[T]) SetData(buf buffer.Buffer, _ int) error {
	d.br.Reset(buf)

	blockSize, ok := d.br.GetVlqInt()
	if !ok || blockSize <= 0 || blockSize%128 != 0 {
		return fmt.Errorf("delta: block size: %w", errs.ErrInvalidHeader)
	}
	numMiniBlocks, ok := d.br.GetVlqInt()
	if !ok || numMiniBlocks <= 0 || blockSize%numMiniBlocks != 0 {
		return fmt.Errorf("delta: mini-block count: %w", errs.ErrInvalidHeader)
	}
	totalValues, ok := d.br.GetVlqInt()
	if !ok || totalValues < 0 {
		return fmt.Errorf("delta: value count: %w", errs.ErrInvalidHeader)
	}
	firstValue, ok := d.br.GetZigZagVlqInt()
	if !ok {
		return fmt.Errorf("delta: first value: %w", io.ErrUnexpectedEOF)
	}

	valuesPerMiniBlock := blockSize / numMiniBlocks
	if valuesPerMiniBlock%8 != 0 {
		return fmt.Errorf("delta: %d values per mini-block is not a multiple of 8: %w", valuesPerMiniBlock, errs.ErrInvalidHeader)
	}

	d.blockSize = int(blockSize)
	d.numMiniBlocks = int(numMiniBlocks)
	d.valuesPerMiniBlock = int(valuesPerMiniBlock)
	d.numValues = int(totalValues)
	d.firstValue = firstValue
	d.firstValueRead = false
	d.widths = nil
	d.miniBlockIdx = d.numMiniBlocks
	d.deltas = nil
	d.idxInMini = 0
	return nil
}

func (d *BinaryPackedDecoder[T]) Decode(out []T) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	for i := 0; i < n; i++ {
		if !d.firstValueRead {
			d.current = d.firstValue
			d.firstValueRead = true
		} else {
			if d.idxInMini >= len(d.deltas) {
				if err := d.loadMiniBlock(); err != nil {
					return i, err
				}
			}
			d.current += d.minDelta + d.deltas[d.idxInMini]
			d.idxInMini++
		}
		out[i] = T(d.current)
	}
	d.numValues -= n
	return n, nil
}

// loadMiniBlock advances to the next mini-block's width, reading a new
// block header first if the current block's mini-blocks are exhausted,
// then decodes that mini-block's full batch of deltas in one pass —
// mirroring the reference decoder, which always materializes a whole
// mini-block even if only a few of its values end up consumed.
func (d *BinaryPackedDecoder[T]) loadMiniBlock() error {
	d.miniBlockIdx++
	if d.widths == nil || d.miniBlockIdx >= len(d.widths) {
		if err := d.initBlock(); err != nil {
			return err
		}
	}

	width := uint(d.widths[d.miniBlockIdx])
	deltas := make([]int64, d.valuesPerMiniBlock)
	for k := range deltas {
		v, ok := d.br.GetValue(width)
		if !ok {
			return fmt.Errorf("delta: mini-block value: %w", io.ErrUnexpectedEOF)
		}
		deltas[k] = int64(v)
	}
	d.deltas = deltas
	d.idxInMini = 0
	return nil
}

func (d *BinaryPackedDecoder[T]) initBlock() error {
	minDelta, ok := d.br.GetZigZagVlqInt()
	if !ok {
		return fmt.Errorf("delta: min delta: %w", io.ErrUnexpectedEOF)
	}
	widths := make([]byte, d.numMiniBlocks)
	for i := range widths {
		v, ok := d.br.GetAligned(1)
		if !ok {
			return fmt.Errorf("delta: mini-block width: %w", io.ErrUnexpectedEOF)
		}
		if v > 64 {
			return fmt.Errorf("delta: mini-block width %d: %w", v, errs.ErrInvalidHeader)
		}
		widths[i] = byte(v)
	}
	d.minDelta = minDelta
	d.widths = widths
	d.miniBlockIdx = 0
	return nil
}

// Offset returns the bit reader's current byte cursor, used by
// DELTA_LENGTH_BYTE_ARRAY and DELTA_BYTE_ARRAY to find where their
// length stream ends and their raw byte payload begins.
func (d *BinaryPackedDecoder[T]) Offset() int { return d.br.ByteOffset() }

func (d *BinaryPackedDecoder[T]) ValuesLeft() int { return d.numValues }

func (d *BinaryPackedDecoder[T]) Encoding() format.Encoding { return format.DeltaBinaryPacked }
