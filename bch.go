package qrsymbol

// Generator polynomials and XOR mask for the format and version information
// BCH codes.
const (
	FormatInfoPoly  = 0x537  // BCH(15,5)
	FormatInfoMask  = 0x5412 // XORed into the 15-bit format string
	VersionInfoPoly = 0x1f25 // BCH(18,6)
)

// BCH computes the BCH error-correction remainder of value for the given
// generator polynomial: value is shifted up by the polynomial degree and
// reduced modulo poly over GF(2).
func BCH(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}

// FormatInfoBits returns the complete masked 15-bit format information
// string for a level and mask pattern: 5 data bits (2 level + 3 mask), a
// 10-bit BCH(15,5) remainder, XORed with FormatInfoMask.
func FormatInfoBits(level Level, mask int) int {
	data := (level.Bits() << 3) | mask
	return ((data << 10) | BCH(data, FormatInfoPoly)) ^ FormatInfoMask
}

// VersionInfoBits returns the complete 18-bit version information string for
// a version number: 6 data bits and a 12-bit BCH(18,6) remainder. Only
// versions 7 and up carry version information.
func VersionInfoBits(version int) int {
	return (version << 12) | BCH(version, VersionInfoPoly)
}
