package rle

import (
	"fmt"
	"io"

	"github.com/colbuf/parquet/internal/bits"
	"github.com/colbuf/parquet/internal/buffer"
	"github.com/colbuf/parquet/internal/errs"
)

// HybridDecoder decodes the RLE/bit-packed hybrid run sequence described in
// the package doc: a stream of VLQ-prefixed runs, each either a bit-packed
// group of 8-value chunks or a run-length-encoded repeated value, all at a
// single bit width fixed for the lifetime of the decoder.
type HybridDecoder struct {
	br       BitReader
	bitWidth uint

	runRemaining int    // values left to produce from the current run
	runPacked    bool   // current run is bit-packed, not RLE
	rleValue     uint64 // repeated value, when !runPacked
}

// NewHybridDecoder returns a HybridDecoder with no data bound yet.
func NewHybridDecoder() *HybridDecoder {
	return &HybridDecoder{}
}

// SetData resets the decoder to read from the start of buf, using bitWidth
// bits per value.
func (d *HybridDecoder) SetData(buf buffer.Buffer, bitWidth uint) {
	d.br.Reset(buf)
	d.bitWidth = bitWidth
	d.runRemaining = 0
}

// ByteOffset reports how many bytes of the bound buffer have been consumed,
// rounded up to the next byte boundary.
func (d *HybridDecoder) ByteOffset() int {
	return d.br.ByteOffset()
}

// GetBatch fills out with up to len(out) decoded W-bit integers and
// returns the count actually produced. Running out of runs before out is
// full is not an error; it simply means the page has no more values.
func (d *HybridDecoder) GetBatch(out []int32) (int, error) {
	n := 0
	for n < len(out) {
		if d.runRemaining == 0 {
			ok, err := d.nextRun()
			if err != nil {
				return n, err
			}
			if !ok {
				break
			}
			continue
		}

		if d.runPacked {
			v, ok := d.br.GetValue(d.bitWidth)
			if !ok {
				return n, fmt.Errorf("rle: reading bit-packed value: %w", io.ErrUnexpectedEOF)
			}
			out[n] = int32(v)
		} else {
			out[n] = int32(d.rleValue)
		}

		d.runRemaining--
		n++
	}
	return n, nil
}

// nextRun parses the next run header, leaving the decoder positioned to
// produce runRemaining more values. It reports (false, nil) when the
// buffer holds nothing more than trailing padding.
func (d *HybridDecoder) nextRun() (bool, error) {
	header, ok := d.br.GetVlqInt()
	if !ok {
		return false, nil
	}

	count := int(header >> 1)
	if count < 0 {
		return false, fmt.Errorf("rle: %w: negative run length", errs.ErrInvalidHeader)
	}

	if header&1 == 0 {
		d.runPacked = false
		d.runRemaining = count
		if count == 0 {
			return true, nil
		}
		if d.bitWidth == 0 {
			d.rleValue = 0
			return true, nil
		}
		v, ok := d.br.GetAligned(bits.ByteCount(d.bitWidth))
		if !ok {
			return false, fmt.Errorf("rle: reading run-length value for %d repetitions: %w", count, io.ErrUnexpectedEOF)
		}
		d.rleValue = v
	} else {
		d.runPacked = true
		d.runRemaining = count * 8
	}
	return true, nil
}

// GetBatchWithDict fills out with up to len(out) values looked up from
// dict by the indices this decoder produces. An index outside the
// dictionary's bounds fails with ErrDictIndexOutOfRange.
//
// This cannot be a HybridDecoder method because Go forbids generic
// methods.
func GetBatchWithDict[T any](d *HybridDecoder, dict []T, out []T) (int, error) {
	idx := make([]int32, len(out))
	n, err := d.GetBatch(idx)
	for i := 0; i < n; i++ {
		j := idx[i]
		if j < 0 || int(j) >= len(dict) {
			return i, errs.ErrDictIndexOutOfRange
		}
		out[i] = dict[j]
	}
	return n, err
}
