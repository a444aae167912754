package decoder

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/japanese"

	"github.com/symbolkit/qrsymbol"
	"github.com/symbolkit/qrsymbol/bitfield"
)

const alphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// decodeBitstream parses the data codeword stream back into text: a loop of
// (mode indicator, character count, payload) groups until the terminator or
// the stream runs out of whole indicators.
func decodeBitstream(data []byte, version *qrsymbol.Version) (string, error) {
	bs := bitfield.NewBitSource(data)
	var result strings.Builder
	currentECI := qrsymbol.ECINone

	for {
		mode := qrsymbol.ModeTerminator
		if bs.Available() >= 4 {
			modeBits, err := bs.ReadBits(4)
			if err != nil {
				return "", ErrFormat
			}
			mode, err = qrsymbol.ModeForBits(modeBits)
			if err != nil {
				return "", ErrFormat
			}
		}
		if mode == qrsymbol.ModeTerminator {
			break
		}

		if mode == qrsymbol.ModeECI {
			value, err := parseECIValue(bs)
			if err != nil {
				return "", err
			}
			currentECI = value
			continue
		}

		count, err := bs.ReadBits(mode.CharacterCountBits(version.Number))
		if err != nil {
			return "", ErrFormat
		}
		switch mode {
		case qrsymbol.ModeNumeric:
			err = decodeNumericSegment(bs, &result, count)
		case qrsymbol.ModeAlphanumeric:
			err = decodeAlphanumericSegment(bs, &result, count)
		case qrsymbol.ModeByte:
			err = decodeByteSegment(bs, &result, count, currentECI)
		case qrsymbol.ModeKanji:
			err = decodeKanjiSegment(bs, &result, count)
		default:
			err = ErrFormat
		}
		if err != nil {
			return "", err
		}
	}

	return result.String(), nil
}

func decodeNumericSegment(bs *bitfield.BitSource, result *strings.Builder, count int) error {
	for count >= 3 {
		if bs.Available() < 10 {
			return ErrFormat
		}
		threeDigits, _ := bs.ReadBits(10)
		if threeDigits >= 1000 {
			return ErrFormat
		}
		fmt.Fprintf(result, "%03d", threeDigits)
		count -= 3
	}
	if count == 2 {
		if bs.Available() < 7 {
			return ErrFormat
		}
		twoDigits, _ := bs.ReadBits(7)
		if twoDigits >= 100 {
			return ErrFormat
		}
		fmt.Fprintf(result, "%02d", twoDigits)
	} else if count == 1 {
		if bs.Available() < 4 {
			return ErrFormat
		}
		digit, _ := bs.ReadBits(4)
		if digit >= 10 {
			return ErrFormat
		}
		fmt.Fprintf(result, "%d", digit)
	}
	return nil
}

func decodeAlphanumericSegment(bs *bitfield.BitSource, result *strings.Builder, count int) error {
	for count > 1 {
		if bs.Available() < 11 {
			return ErrFormat
		}
		pair, _ := bs.ReadBits(11)
		if pair/45 >= 45 {
			return ErrFormat
		}
		result.WriteByte(alphanumericChars[pair/45])
		result.WriteByte(alphanumericChars[pair%45])
		count -= 2
	}
	if count == 1 {
		if bs.Available() < 6 {
			return ErrFormat
		}
		value, _ := bs.ReadBits(6)
		if value >= 45 {
			return ErrFormat
		}
		result.WriteByte(alphanumericChars[value])
	}
	return nil
}

// decodeByteSegment reads count raw bytes. Bytes are passed through
// verbatim unless a Shift JIS ECI designator is in effect; the encoder side
// emits UTF-8 so passthrough reproduces the original text.
func decodeByteSegment(bs *bitfield.BitSource, result *strings.Builder, count, currentECI int) error {
	if 8*count > bs.Available() {
		return ErrFormat
	}
	raw := make([]byte, count)
	for i := range raw {
		value, _ := bs.ReadBits(8)
		raw[i] = byte(value)
	}
	if currentECI == qrsymbol.ECIShiftJIS {
		return writeShiftJIS(result, raw)
	}
	result.Write(raw)
	return nil
}

// decodeKanjiSegment unpacks 13-bit characters back into Shift JIS byte
// pairs and transforms them to UTF-8.
func decodeKanjiSegment(bs *bitfield.BitSource, result *strings.Builder, count int) error {
	if 13*count > bs.Available() {
		return ErrFormat
	}
	raw := make([]byte, 0, 2*count)
	for ; count > 0; count-- {
		packed, _ := bs.ReadBits(13)
		assembled := (packed/0xC0)<<8 | packed%0xC0
		if assembled < 0x1F00 {
			assembled += 0x8140
		} else {
			assembled += 0xC140
		}
		raw = append(raw, byte(assembled>>8), byte(assembled))
	}
	return writeShiftJIS(result, raw)
}

func writeShiftJIS(result *strings.Builder, raw []byte) error {
	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	if err != nil {
		return ErrFormat
	}
	result.Write(decoded)
	return nil
}

// parseECIValue reads the 1, 2, or 3 byte variable-width ECI designator.
func parseECIValue(bs *bitfield.BitSource) (int, error) {
	firstByte, err := bs.ReadBits(8)
	if err != nil {
		return 0, ErrFormat
	}
	if firstByte&0x80 == 0 {
		return firstByte & 0x7F, nil
	}
	if firstByte&0xC0 == 0x80 {
		secondByte, err := bs.ReadBits(8)
		if err != nil {
			return 0, ErrFormat
		}
		return (firstByte&0x3F)<<8 | secondByte, nil
	}
	if firstByte&0xE0 == 0xC0 {
		rest, err := bs.ReadBits(16)
		if err != nil {
			return 0, ErrFormat
		}
		return (firstByte&0x1F)<<16 | rest, nil
	}
	return 0, ErrFormat
}
