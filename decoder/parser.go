package decoder

import (
	"math/bits"

	"github.com/symbolkit/qrsymbol"
)

// formatInfoEntry pairs a masked 15-bit format string with the level and
// mask it encodes.
type formatInfoEntry struct {
	bits  int
	level qrsymbol.Level
	mask  int
}

// formatInfoLookup holds all 32 valid masked format strings, derived from
// the same BCH construction the encoder writes.
var formatInfoLookup = buildFormatInfoLookup()

func buildFormatInfoLookup() [32]formatInfoEntry {
	var table [32]formatInfoEntry
	i := 0
	for levelBits := 0; levelBits < 4; levelBits++ {
		level, _ := qrsymbol.LevelForBits(levelBits)
		for mask := 0; mask < 8; mask++ {
			table[i] = formatInfoEntry{
				bits:  qrsymbol.FormatInfoBits(level, mask),
				level: level,
				mask:  mask,
			}
			i++
		}
	}
	return table
}

// decodeFormatInfo recovers (level, mask) from the two format info strips,
// tolerating up to 3 flipped bits against the nearest valid codeword.
func decodeFormatInfo(formatBits1, formatBits2 int) (qrsymbol.Level, int, error) {
	bestDifference := 32
	var best formatInfoEntry
	for _, entry := range formatInfoLookup {
		if entry.bits == formatBits1 || entry.bits == formatBits2 {
			return entry.level, entry.mask, nil
		}
		diff := bits.OnesCount(uint(formatBits1 ^ entry.bits))
		if diff < bestDifference {
			best = entry
			bestDifference = diff
		}
		if formatBits1 != formatBits2 {
			diff = bits.OnesCount(uint(formatBits2 ^ entry.bits))
			if diff < bestDifference {
				best = entry
				bestDifference = diff
			}
		}
	}
	if bestDifference <= 3 {
		return best.level, best.mask, nil
	}
	return 0, 0, ErrFormat
}

// decodeVersionInfo recovers a version number from an 18-bit version info
// block, tolerating up to 3 flipped bits.
func decodeVersionInfo(versionBits int) (int, error) {
	bestDifference := 32
	bestVersion := 0
	for number := 7; number <= 40; number++ {
		target := qrsymbol.VersionInfoBits(number)
		if target == versionBits {
			return number, nil
		}
		diff := bits.OnesCount(uint(versionBits ^ target))
		if diff < bestDifference {
			bestVersion = number
			bestDifference = diff
		}
	}
	if bestDifference <= 3 {
		return bestVersion, nil
	}
	return 0, ErrFormat
}

// matrixParser extracts format info, version info, and the raw codeword
// stream from a module matrix. It works on a private copy so the caller's
// matrix is never mutated.
type matrixParser struct {
	matrix *qrsymbol.Matrix
	side   int
}

func newMatrixParser(m *qrsymbol.Matrix) (*matrixParser, error) {
	side := m.Side()
	if side < 21 || side&0x03 != 1 {
		return nil, ErrFormat
	}
	return &matrixParser{matrix: m.Clone(), side: side}, nil
}

func (p *matrixParser) copyBit(x, y, acc int) int {
	if p.matrix.Get(x, y) {
		return (acc << 1) | 1
	}
	return acc << 1
}

// readFormatInfo reads both 15-bit format strips and decodes them.
func (p *matrixParser) readFormatInfo() (qrsymbol.Level, int, error) {
	// Strip around the top-left finder pattern.
	formatBits1 := 0
	for i := 0; i < 6; i++ {
		formatBits1 = p.copyBit(i, 8, formatBits1)
	}
	formatBits1 = p.copyBit(7, 8, formatBits1)
	formatBits1 = p.copyBit(8, 8, formatBits1)
	formatBits1 = p.copyBit(8, 7, formatBits1)
	for j := 5; j >= 0; j-- {
		formatBits1 = p.copyBit(8, j, formatBits1)
	}

	// Split strip next to the top-right and bottom-left finder patterns.
	formatBits2 := 0
	for j := p.side - 1; j >= p.side-7; j-- {
		formatBits2 = p.copyBit(8, j, formatBits2)
	}
	for i := p.side - 8; i < p.side; i++ {
		formatBits2 = p.copyBit(i, 8, formatBits2)
	}

	return decodeFormatInfo(formatBits1, formatBits2)
}

// readVersion determines the symbol version. For small symbols the side
// length alone decides; larger symbols carry redundant version info blocks
// which must agree with the side length.
func (p *matrixParser) readVersion() (*qrsymbol.Version, error) {
	provisional := (p.side - 17) / 4
	if provisional <= 6 {
		return qrsymbol.VersionForNumber(provisional)
	}

	// Top-right block, 3 wide by 6 tall.
	versionBits := 0
	for j := 5; j >= 0; j-- {
		for i := p.side - 9; i >= p.side-11; i-- {
			versionBits = p.copyBit(i, j, versionBits)
		}
	}
	if number, err := decodeVersionInfo(versionBits); err == nil && qrsymbol.SideLength(number) == p.side {
		return qrsymbol.VersionForNumber(number)
	}

	// Bottom-left block, 6 wide by 3 tall.
	versionBits = 0
	for i := 5; i >= 0; i-- {
		for j := p.side - 9; j >= p.side-11; j-- {
			versionBits = p.copyBit(i, j, versionBits)
		}
	}
	if number, err := decodeVersionInfo(versionBits); err == nil && qrsymbol.SideLength(number) == p.side {
		return qrsymbol.VersionForNumber(number)
	}
	return nil, ErrFormat
}

// unmask XORs the data mask back out of the whole matrix. Function modules
// are flipped too, but readCodewords never visits them.
func (p *matrixParser) unmask(mask int) {
	maskFunc := qrsymbol.DataMasks[mask]
	for y := 0; y < p.side; y++ {
		for x := 0; x < p.side; x++ {
			if maskFunc(y, x) {
				p.matrix.Flip(x, y)
			}
		}
	}
}

// readCodewords walks the zigzag placement order in reverse of the encoder,
// collecting 8 bits per codeword and skipping function pattern modules.
func (p *matrixParser) readCodewords(version *qrsymbol.Version, mask int) ([]byte, error) {
	p.unmask(mask)
	functionPattern := version.FunctionPattern()

	result := make([]byte, 0, version.TotalCodewords)
	currentByte := 0
	bitsRead := 0
	readingUp := true
	for j := p.side - 1; j > 0; j -= 2 {
		if j == 6 {
			j--
		}
		for count := 0; count < p.side; count++ {
			i := count
			if readingUp {
				i = p.side - 1 - count
			}
			for col := 0; col < 2; col++ {
				if functionPattern.Get(j-col, i) {
					continue
				}
				bitsRead++
				currentByte <<= 1
				if p.matrix.Get(j-col, i) {
					currentByte |= 1
				}
				if bitsRead == 8 {
					result = append(result, byte(currentByte))
					bitsRead = 0
					currentByte = 0
				}
			}
		}
		readingUp = !readingUp
	}

	if len(result) != version.TotalCodewords {
		return nil, ErrFormat
	}
	return result, nil
}
