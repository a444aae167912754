package qrsymbol

// ECI values for the character set designators the encoder and decoder
// understand. Zero is a valid assignment (Cp437) in the standard, but this
// package treats 0 as "no designator"; content defaulting to ISO-8859-1 or
// UTF-8 needs no ECI segment.
const (
	ECINone     = 0
	ECIISO88591 = 1
	ECIShiftJIS = 20
	ECIUTF8     = 26
	ECIGB18030  = 29
)

var eciCharsets = map[int]string{
	ECIISO88591: "ISO-8859-1",
	ECIShiftJIS: "Shift_JIS",
	ECIUTF8:     "UTF-8",
	ECIGB18030:  "GB18030",
}

// ECICharsetName returns the charset name for an ECI value, or "" if the
// value has no mapping in this package.
func ECICharsetName(value int) string {
	return eciCharsets[value]
}

// ValidECI reports whether value is inside the range of assignable ECI
// designators.
func ValidECI(value int) bool {
	return value > 0 && value < 1000000
}
