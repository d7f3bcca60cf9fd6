// Package bits provides small bit-arithmetic helpers shared by the RLE and
// DELTA decoders. Unlike the vectorized, unsafe whole-buffer routines a
// columnar decoder typically reaches for over large arrays, these operate
// one value or one run at a time against a cursor, which is the shape the
// hybrid RLE/bit-packed codec and the delta codecs need.
package bits

// ByteCount returns the number of bytes required to hold count bits,
// rounding up.
func ByteCount(count uint) int {
	return int((count + 7) / 8)
}

// mask63 holds precomputed (1<<w)-1 masks for w in [0, 63], avoiding a
// shift-and-subtract at every value extraction in BitReader.GetValue's loop.
var mask63 [64]uint64

func init() {
	for w := range mask63 {
		mask63[w] = 1<<uint(w) - 1
	}
}

// Mask returns a mask with the low width bits set. width must be in [0, 63].
func Mask(width uint) uint64 {
	return mask63[width]
}

// Width returns the number of bits needed to represent every integer in
// [0, maxValue], i.e. ceil(log2(maxValue+1)). This is how the RLE/bit-packed
// hybrid derives the width of a definition or repetition level stream from
// the column's maxDef/maxRep.
func Width(maxValue int) uint {
	w := uint(0)
	for (int64(1) << w) <= int64(maxValue) {
		w++
	}
	return w
}
