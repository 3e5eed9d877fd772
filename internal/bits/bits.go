package bits

import "math/bits"

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a positive power of two n.
func Log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// Of returns the length-bit binary expansion of num, most significant
// bit first. Of(5, 4) = [0 1 0 1].
func Of(num, length int) []uint8 {
	out := make([]uint8, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = uint8(num & 1)
		num >>= 1
	}
	return out
}

// Gray returns the Gray code of x.
func Gray(x int) int {
	return x ^ (x >> 1)
}

// GrayDiffIndex returns the index, counted from the most significant of
// length bits, of the single bit in which the Gray codes of a and b differ.
// a and b must be Gray-adjacent.
func GrayDiffIndex(a, b, length int) int {
	diff := Gray(a) ^ Gray(b)
	return length - 1 - Log2(diff)
}
