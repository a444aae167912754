package qrsymbol

// Mode represents a QR code data encoding mode. The constant values are the
// 4-bit mode indicators written to the bitstream.
type Mode int

const (
	ModeTerminator   Mode = 0x00
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
	ModeECI          Mode = 0x07
	ModeKanji        Mode = 0x08
)

// characterCountBits contains [v1-9, v10-26, v27-40] indicator widths.
var characterCountBits = map[Mode][3]int{
	ModeTerminator:   {0, 0, 0},
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
	ModeECI:          {0, 0, 0},
	ModeKanji:        {8, 10, 12},
}

// ModeForBits returns the Mode for the given 4-bit indicator value.
func ModeForBits(bits int) (Mode, error) {
	switch bits {
	case 0x0:
		return ModeTerminator, nil
	case 0x1:
		return ModeNumeric, nil
	case 0x2:
		return ModeAlphanumeric, nil
	case 0x4:
		return ModeByte, nil
	case 0x7:
		return ModeECI, nil
	case 0x8:
		return ModeKanji, nil
	}
	return 0, ErrMode
}

// CharacterCountBits returns the width of the character count indicator for
// this mode at the given version. The width depends on the version class
// (1-9, 10-26, 27-40).
func (m Mode) CharacterCountBits(version int) int {
	var offset int
	switch {
	case version <= 9:
		offset = 0
	case version <= 26:
		offset = 1
	default:
		offset = 2
	}
	return characterCountBits[m][offset]
}

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeTerminator:
		return "TERMINATOR"
	case ModeNumeric:
		return "NUMERIC"
	case ModeAlphanumeric:
		return "ALPHANUMERIC"
	case ModeByte:
		return "BYTE"
	case ModeECI:
		return "ECI"
	case ModeKanji:
		return "KANJI"
	}
	return "UNKNOWN"
}
