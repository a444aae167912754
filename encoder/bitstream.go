package encoder

import (
	"fmt"

	"github.com/symbolkit/qrsymbol"
	"github.com/symbolkit/qrsymbol/bitfield"
)

// buildBitstream serializes the segment sequence for the given version:
// per segment a 4-bit mode indicator, a character count indicator whose
// width depends on the version class, and the mode's payload bits; then a
// terminator and pad bytes up to the exact data codeword capacity.
func buildBitstream(segments []Segment, version *qrsymbol.Version, level qrsymbol.Level) (*bitfield.BitArray, error) {
	bits := bitfield.NewBitArray(0)
	for _, s := range segments {
		if s.Mode == qrsymbol.ModeECI {
			appendECI(s.ECIValue, bits)
			continue
		}
		bits.AppendBits(uint32(s.Mode.Bits()), 4)
		bits.AppendBits(uint32(s.NumChars), s.Mode.CharacterCountBits(version.Number))
		switch s.Mode {
		case qrsymbol.ModeNumeric:
			appendNumeric(s.Data, bits)
		case qrsymbol.ModeAlphanumeric:
			appendAlphanumeric(s.Data, bits)
		case qrsymbol.ModeByte:
			appendBytes(s.Data, bits)
		case qrsymbol.ModeKanji:
			appendKanji(s.Data, bits)
		default:
			return nil, qrsymbol.ErrMode
		}
	}
	if err := terminateBits(version.DataCodewords(level), bits); err != nil {
		return nil, err
	}
	return bits, nil
}

// appendECI writes an ECI designator: 4-bit mode indicator followed by the
// value in the standard's 1, 2, or 3 byte variable-width form.
func appendECI(value int, bits *bitfield.BitArray) {
	bits.AppendBits(uint32(qrsymbol.ModeECI.Bits()), 4)
	switch {
	case value < 1<<7:
		bits.AppendBits(uint32(value), 8)
	case value < 1<<14:
		bits.AppendBits(uint32(0x8000|value), 16)
	default:
		bits.AppendBits(uint32(0xC00000|value), 24)
	}
}

// appendNumeric packs digits in groups of three into 10 bits, with a final
// group of two in 7 bits or one in 4 bits.
func appendNumeric(data []byte, bits *bitfield.BitArray) {
	i := 0
	for i < len(data) {
		num1 := int(data[i] - '0')
		switch {
		case i+2 < len(data):
			num2 := int(data[i+1] - '0')
			num3 := int(data[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		case i+1 < len(data):
			num2 := int(data[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		default:
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
}

// appendAlphanumeric packs character pairs into 11 bits, an odd leftover
// into 6 bits. Characters were validated during analysis.
func appendAlphanumeric(data []byte, bits *bitfield.BitArray) {
	i := 0
	for i < len(data) {
		code1 := alphanumericCode(int(data[i]))
		if i+1 < len(data) {
			code2 := alphanumericCode(int(data[i+1]))
			bits.AppendBits(uint32(code1*45+code2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(code1), 6)
			i++
		}
	}
}

func appendBytes(data []byte, bits *bitfield.BitArray) {
	for _, b := range data {
		bits.AppendBits(uint32(b), 8)
	}
}

// appendKanji packs each Shift JIS double-byte character into 13 bits. The
// subtraction base depends on which of the two Shift JIS lead byte ranges
// the character falls in.
func appendKanji(data []byte, bits *bitfield.BitArray) {
	for i := 0; i+1 < len(data); i += 2 {
		value := int(data[i])<<8 | int(data[i+1])
		if value >= 0xE040 {
			value -= 0xC140
		} else {
			value -= 0x8140
		}
		encoded := (value>>8)*0xC0 + (value & 0xFF)
		bits.AppendBits(uint32(encoded), 13)
	}
}

// terminateBits appends the terminator (up to 4 zero bits), pads to a byte
// boundary, then fills with alternating 0xEC/0x11 bytes until bits holds
// exactly numDataBytes bytes.
func terminateBits(numDataBytes int, bits *bitfield.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: %d data bits exceed %d-bit capacity",
			qrsymbol.ErrCapacity, bits.Size(), capacity)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}
