package rle

import (
	"testing"

	"github.com/colbuf/parquet/internal/buffer"
)

func TestBitReaderGetValue(t *testing.T) {
	// 0b1010_1100 0b0000_0011 little-endian bit order: width-3 values are
	// 0b100, 0b101, 0b110, 0b001... read LSB-first from byte 0.
	buf := buffer.New([]byte{0xAC, 0x03})
	r := NewBitReader(buf)

	v, ok := r.GetValue(3)
	if !ok || v != 0b100 {
		t.Fatalf("first value = %v, %v, want 0b100, true", v, ok)
	}
	v, ok = r.GetValue(3)
	if !ok || v != 0b101 {
		t.Fatalf("second value = %v, %v, want 0b101, true", v, ok)
	}
}

func TestBitReaderGetValueUnderflow(t *testing.T) {
	r := NewBitReader(buffer.New([]byte{0xFF}))
	if _, ok := r.GetValue(64); ok {
		t.Fatal("expected underflow")
	}
}

func TestBitReaderGetAligned(t *testing.T) {
	r := NewBitReader(buffer.New([]byte{0x2A, 0x00, 0x00, 0x00}))
	v, ok := r.GetAligned(4)
	if !ok || v != 42 {
		t.Fatalf("GetAligned(4) = %v, %v, want 42, true", v, ok)
	}
}

func TestBitReaderVlq(t *testing.T) {
	// 300 encoded as VLQ: 0xAC, 0x02
	r := NewBitReader(buffer.New([]byte{0xAC, 0x02}))
	v, ok := r.GetVlqInt()
	if !ok || v != 300 {
		t.Fatalf("GetVlqInt() = %v, %v, want 300, true", v, ok)
	}
}

func TestBitReaderZigZagVlq(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, -1},
		{[]byte{0x02}, 1},
		{[]byte{0x03}, -2},
	}
	for _, c := range cases {
		r := NewBitReader(buffer.New(c.bytes))
		v, ok := r.GetZigZagVlqInt()
		if !ok || v != c.want {
			t.Errorf("GetZigZagVlqInt(%v) = %v, %v, want %v, true", c.bytes, v, ok, c.want)
		}
	}
}

func TestBitReaderByteOffset(t *testing.T) {
	r := NewBitReader(buffer.New([]byte{0xFF, 0xFF}))
	r.GetValue(3)
	if off := r.ByteOffset(); off != 1 {
		t.Fatalf("ByteOffset() after partial byte = %d, want 1", off)
	}
	r.GetValue(5)
	if off := r.ByteOffset(); off != 1 {
		t.Fatalf("ByteOffset() after completing byte 0 = %d, want 1", off)
	}
}

func TestGetBatch(t *testing.T) {
	r := NewBitReader(buffer.New([]byte{0xAC, 0x03}))
	out := make([]int32, 4)
	n := GetBatch(r, out, 3)
	if n != 4 {
		t.Fatalf("GetBatch() decoded %d values, want 4", n)
	}
}
