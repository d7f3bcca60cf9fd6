package deprecated

import "math/big"

// Int96 is an implementation of the deprecated INT96 parquet type. It is
// carried only for the physical-type switch in the value decoders and for
// converting legacy timestamp columns; statistics and comparator helpers
// that the original type offered are not needed here since row-level
// min/max computation is outside the column-decoding core.
type Int96 [3]uint32

// Negative returns true if i is a negative value.
func (i Int96) Negative() bool {
	return (i[2] >> 31) != 0
}

// Less returns true if i < j.
//
// The method implements a signed comparison between the two operands.
func (i Int96) Less(j Int96) bool {
	if i.Negative() {
		if !j.Negative() {
			return true
		}
	} else {
		if j.Negative() {
			return false
		}
	}
	for k := 2; k >= 0; k-- {
		a, b := i[k], j[k]
		switch {
		case a < b:
			return true
		case a > b:
			return false
		}
	}
	return false
}

// Int converts i to a big.Int representation.
func (i Int96) Int() *big.Int {
	z := new(big.Int)
	z.Or(z, big.NewInt(int64(int32(i[2]))))
	z.Lsh(z, 32)
	z.Or(z, big.NewInt(int64(i[1])))
	z.Lsh(z, 32)
	z.Or(z, big.NewInt(int64(i[0])))
	return z
}

// String returns a string representation of i.
func (i Int96) String() string {
	return i.Int().String()
}

const (
	julianDayOfUnixEpoch = 2440588
	millisPerDay         = 86400000
	nanosPerMilli        = 1000000
)

// ToMillis interprets i as a Julian-day timestamp — the legacy encoding
// parquet uses for INT96 columns storing instants — and converts it to
// milliseconds since the Unix epoch. i[2] holds the Julian day number, and
// i[1]:i[0] holds nanoseconds within that day as a 64 bit unsigned integer
// split across the two low words.
func (i Int96) ToMillis() int64 {
	daysSinceEpoch := int64(i[2]) - julianDayOfUnixEpoch
	nanos := int64(i[1])<<32 | int64(i[0])
	return daysSinceEpoch*millisPerDay + nanos/nanosPerMilli
}
