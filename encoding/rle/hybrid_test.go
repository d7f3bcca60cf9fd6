package rle

import (
	"testing"

	"github.com/colbuf/parquet/internal/buffer"
)

func TestHybridDecoderRLERun(t *testing.T) {
	// Header 0x10 = 16 -> LSB 0 (RLE), count = 8; value byte 0x01; trailing
	// 0x01 is padding that must be tolerated.
	d := NewHybridDecoder()
	d.SetData(buffer.New([]byte{0x10, 0x01, 0x01}), 1)

	out := make([]int32, 8)
	n, err := d.GetBatch(out)
	if err != nil {
		t.Fatalf("GetBatch() error: %v", err)
	}
	if n != 8 {
		t.Fatalf("GetBatch() produced %d values, want 8", n)
	}
	for i, v := range out {
		if v != 1 {
			t.Errorf("out[%d] = %d, want 1", i, v)
		}
	}
}

func TestHybridDecoderBitPackedRun(t *testing.T) {
	// One bit-packed group of 8 values at width 3, values 0..7: header =
	// (1 group << 1) | 1 = 3, followed by 3 bytes of packed data
	// (0b111_110_101_100_011_010_001_000 little endian bit order, hand packed
	// below via GetValue semantics verified separately).
	// Encode directly with a helper packing loop instead of hand literals.
	values := []int32{0, 1, 2, 3, 4, 5, 6, 7}
	packed := packBits(values, 3)
	data := append([]byte{3}, packed...)

	d := NewHybridDecoder()
	d.SetData(buffer.New(data), 3)

	out := make([]int32, 8)
	n, err := d.GetBatch(out)
	if err != nil {
		t.Fatalf("GetBatch() error: %v", err)
	}
	if n != 8 {
		t.Fatalf("GetBatch() produced %d values, want 8", n)
	}
	for i, v := range out {
		if v != values[i] {
			t.Errorf("out[%d] = %d, want %d", i, v, values[i])
		}
	}
}

func TestHybridDecoderZeroWidth(t *testing.T) {
	// width 0: all values are implicitly 0, RLE run of count 5.
	d := NewHybridDecoder()
	d.SetData(buffer.New([]byte{10}), 0) // header = 5<<1 = 10, no value byte
	out := make([]int32, 5)
	n, err := d.GetBatch(out)
	if err != nil {
		t.Fatalf("GetBatch() error: %v", err)
	}
	if n != 5 {
		t.Fatalf("GetBatch() = %d, want 5", n)
	}
	for _, v := range out {
		if v != 0 {
			t.Errorf("got %d, want 0", v)
		}
	}
}

func TestHybridDecoderZeroLengthRun(t *testing.T) {
	// A zero-length RLE run followed by a real run must be tolerated.
	d := NewHybridDecoder()
	data := []byte{0x00 /* count=0, RLE */, 0x10, 0x01 /* count=8, value=1 */}
	d.SetData(buffer.New(data), 1)
	out := make([]int32, 8)
	n, err := d.GetBatch(out)
	if err != nil {
		t.Fatalf("GetBatch() error: %v", err)
	}
	if n != 8 {
		t.Fatalf("GetBatch() = %d, want 8", n)
	}
}

func TestGetBatchWithDict(t *testing.T) {
	dict := []string{"a", "b", "c"}
	// indices [0,1,2,0,1] bit-packed at width 2: one group of 8 (padded
	// with zeros for the last 3 slots).
	idx := []int32{0, 1, 2, 0, 1, 0, 0, 0}
	packed := packBits(idx, 2)
	data := append([]byte{3 /* 1 group, bit-packed */}, packed...)

	d := NewHybridDecoder()
	d.SetData(buffer.New(data), 2)

	out := make([]string, 5)
	n, err := GetBatchWithDict(d, dict, out)
	if err != nil {
		t.Fatalf("GetBatchWithDict() error: %v", err)
	}
	if n != 5 {
		t.Fatalf("GetBatchWithDict() = %d, want 5", n)
	}
	want := []string{"a", "b", "c", "a", "b"}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestGetBatchWithDictOutOfRange(t *testing.T) {
	dict := []string{"a"}
	idx := []int32{0, 5, 0, 0, 0, 0, 0, 0}
	packed := packBits(idx, 3)
	data := append([]byte{3}, packed...)

	d := NewHybridDecoder()
	d.SetData(buffer.New(data), 3)

	out := make([]string, 2)
	_, err := GetBatchWithDict(d, dict, out)
	if err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

// packBits packs values (each < 1<<width) 8 at a time LSB-first, matching
// the wire format GetValue/GetBatch expect, for use in test fixtures.
func packBits(values []int32, width uint) []byte {
	n := len(values)
	byteLen := (n*int(width) + 7) / 8
	out := make([]byte, byteLen)
	bitPos := uint(0)
	for _, v := range values {
		for b := uint(0); b < width; b++ {
			if (v>>b)&1 != 0 {
				out[bitPos/8] |= 1 << (bitPos % 8)
			}
			bitPos++
		}
	}
	return out
}
