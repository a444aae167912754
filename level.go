// Package qrsymbol models ISO/IEC 18004 ("Model 2") QR symbols: error
// correction levels, encoding modes, version capacity tables, data mask
// formulas, and the final module matrix. The encode pipeline lives in the
// encoder subpackage; a verification decoder lives in the decoder subpackage.
package qrsymbol

// Level represents the four QR code error correction levels.
type Level int

const (
	LevelL Level = iota // ~7% recoverable
	LevelM              // ~15% recoverable
	LevelQ              // ~25% recoverable
	LevelH              // ~30% recoverable
)

// Bits returns the 2-bit encoding of this level used in format information.
func (l Level) Bits() int {
	switch l {
	case LevelL:
		return 0x01
	case LevelM:
		return 0x00
	case LevelQ:
		return 0x03
	case LevelH:
		return 0x02
	}
	return 0
}

// Ordinal returns the ordinal position (L=0, M=1, Q=2, H=3).
func (l Level) Ordinal() int {
	return int(l)
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return "?"
}

// LevelForBits returns the Level for the given 2-bit format info value.
func LevelForBits(bits int) (Level, error) {
	// FOR_BITS = {M, L, H, Q}
	switch bits {
	case 0:
		return LevelM, nil
	case 1:
		return LevelL, nil
	case 2:
		return LevelH, nil
	case 3:
		return LevelQ, nil
	}
	return 0, ErrLevel
}
