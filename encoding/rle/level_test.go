package rle

import (
	"testing"

	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

func TestLevelDecoderRLE(t *testing.T) {
	// levels [1,0,1,1,0], maxLevel=1 -> bitWidth=1. Encode as one bit-packed
	// group of 8 (padded), length-prefixed.
	packed := packBits([]int32{1, 0, 1, 1, 0, 0, 0, 0}, 1)
	payload := append([]byte{3}, packed...) // header byte: 1 group, bit-packed
	var lenPrefix [4]byte
	lenPrefix[0] = byte(len(payload))
	buf := append(lenPrefix[:], payload...)

	d := NewLevelDecoder()
	consumed, err := d.SetData(format.RLE, buffer.New(buf), 1, 5)
	if err != nil {
		t.Fatalf("SetData() error: %v", err)
	}
	if consumed != len(buf) {
		t.Fatalf("SetData() consumed %d bytes, want %d", consumed, len(buf))
	}

	out := make([]int16, 5)
	n, err := d.Get(out)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if n != 5 {
		t.Fatalf("Get() produced %d levels, want 5", n)
	}
	want := []int16{1, 0, 1, 1, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestLevelDecoderBounds(t *testing.T) {
	// maxLevel=3 means bitWidth=2 (ceil(log2(4))=2); every decoded level
	// must land in [0,3].
	packed := packBits([]int32{3, 2, 1, 0, 0, 0, 0, 0}, 2)
	payload := append([]byte{3}, packed...)
	var lenPrefix [4]byte
	lenPrefix[0] = byte(len(payload))
	buf := append(lenPrefix[:], payload...)

	d := NewLevelDecoder()
	if _, err := d.SetData(format.RLE, buffer.New(buf), 3, 4); err != nil {
		t.Fatalf("SetData() error: %v", err)
	}
	out := make([]int16, 4)
	n, err := d.Get(out)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	for i := 0; i < n; i++ {
		if out[i] < 0 || out[i] > 3 {
			t.Errorf("out[%d] = %d out of bounds [0,3]", i, out[i])
		}
	}
}
