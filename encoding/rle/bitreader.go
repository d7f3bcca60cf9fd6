// Package rle implements the RLE/bit-packed hybrid encoding used for
// dictionary-indexed data pages, boolean RLE values, and definition/
// repetition level streams.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#run-length-encoding--bit-packing-hybrid-rle--3
package rle

import (
	"github.com/colbuf/parquet/internal/bits"
	"github.com/colbuf/parquet/internal/buffer"
)

// BitReader is a cursor over a Buffer that reads unaligned sequences of
// bits, little-endian within each byte (the LSB of buf[0] is bit 0). It
// never mutates the Buffer it was given; all state lives in the cursor.
type BitReader struct {
	buf     buffer.Buffer
	byteOff int  // index of the byte currently being consumed
	bitOff  uint // number of bits of buf[byteOff] already consumed, in [0,8)
}

// NewBitReader returns a BitReader positioned at the start of buf.
func NewBitReader(buf buffer.Buffer) *BitReader {
	r := &BitReader{}
	r.Reset(buf)
	return r
}

// Reset repositions r at the start of buf.
func (r *BitReader) Reset(buf buffer.Buffer) {
	r.buf = buf
	r.byteOff = 0
	r.bitOff = 0
}

// ByteOffset returns the current read cursor rounded up to the next byte
// boundary: the offset, from the start of the buffer passed to Reset, of
// the first byte not yet (fully) consumed.
func (r *BitReader) ByteOffset() int {
	if r.bitOff == 0 {
		return r.byteOff
	}
	return r.byteOff + 1
}

// bytesLeft reports how many whole bytes remain starting at byteOff,
// including a partially consumed one.
func (r *BitReader) bytesLeft() int {
	return r.buf.Len() - r.byteOff
}

// GetValue reads an unsigned integer of the given bit width, width in
// [0,64], LSB-first. It reports false if the buffer is exhausted before
// width bits could be read.
func (r *BitReader) GetValue(width uint) (uint64, bool) {
	if width == 0 {
		return 0, true
	}
	if width > 64 {
		return 0, false
	}

	data := r.buf.Bytes()
	byteOff, bitOff := r.byteOff, r.bitOff
	var value uint64
	shift := uint(0)
	remaining := width

	for remaining > 0 {
		if byteOff >= len(data) {
			return 0, false
		}
		avail := 8 - bitOff
		take := avail
		if take > remaining {
			take = remaining
		}
		chunk := (uint64(data[byteOff]) >> bitOff) & bits.Mask(take)
		value |= chunk << shift
		shift += take
		bitOff += take
		remaining -= take
		if bitOff == 8 {
			bitOff = 0
			byteOff++
		}
	}

	r.byteOff, r.bitOff = byteOff, bitOff
	return value, true
}

// GetAligned advances to the next byte boundary (if not already on one)
// and reads the following n bytes as a little-endian unsigned integer.
// n must be in [0,8].
func (r *BitReader) GetAligned(n int) (uint64, bool) {
	if r.bitOff != 0 {
		r.byteOff++
		r.bitOff = 0
	}
	if n == 0 {
		return 0, true
	}
	data := r.buf.Bytes()
	if r.byteOff+n > len(data) {
		return 0, false
	}
	var value uint64
	for i := 0; i < n; i++ {
		value |= uint64(data[r.byteOff+i]) << (8 * uint(i))
	}
	r.byteOff += n
	return value, true
}

// getVlqUint reads a base-128, LSB-first varint: the continuation bit is
// the MSB of each byte. Always byte-aligned, as every VLQ header in the
// formats this package decodes occurs only at byte boundaries.
func (r *BitReader) getVlqUint() (uint64, bool) {
	var value uint64
	shift := uint(0)
	for {
		b, ok := r.GetAligned(1)
		if !ok {
			return 0, false
		}
		value |= (b & 0x7f) << shift
		if b&0x80 == 0 {
			return value, true
		}
		shift += 7
		if shift >= 64 {
			return 0, false
		}
	}
}

// GetVlqInt reads a base-128 LSB-first varint and returns it as a signed
// integer (the raw unsigned bit pattern, not zig-zag decoded).
func (r *BitReader) GetVlqInt() (int64, bool) {
	u, ok := r.getVlqUint()
	return int64(u), ok
}

// GetZigZagVlqInt reads a VLQ integer and undoes the zig-zag mapping,
// recovering the original signed value.
func (r *BitReader) GetZigZagVlqInt() (int64, bool) {
	u, ok := r.getVlqUint()
	if !ok {
		return 0, false
	}
	return int64(u>>1) ^ -int64(u&1), true
}

// Word is the set of integer types GetBatch can decode into.
type Word interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// GetBatch fills out with up to len(out) values of the given bit width,
// returning the number actually produced. It stops, without error, at the
// first value it cannot fully read.
//
// GetBatch cannot be a method because Go does not allow generic methods;
// it is a free function taking the reader explicitly instead.
func GetBatch[T Word](r *BitReader, out []T, width uint) int {
	n := 0
	for n < len(out) {
		v, ok := r.GetValue(width)
		if !ok {
			break
		}
		out[n] = T(v)
		n++
	}
	return n
}
