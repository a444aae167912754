package encoder

import "github.com/symbolkit/qrsymbol"

// emptyCell marks a module not yet assigned by any pattern or data bit.
const emptyCell = 0xFF

// grid is the working module matrix during construction: a flat byte arena
// indexed by row*side+col, holding 1 (dark), 0 (light), or emptyCell.
type grid struct {
	side  int
	cells []byte
}

func newGrid(side int) *grid {
	g := &grid{side: side, cells: make([]byte, side*side)}
	g.clear()
	return g
}

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = emptyCell
	}
}

func (g *grid) get(x, y int) byte        { return g.cells[y*g.side+x] }
func (g *grid) set(x, y int, value byte) { g.cells[y*g.side+x] = value }

func (g *grid) setBool(x, y int, dark bool) {
	if dark {
		g.cells[y*g.side+x] = 1
	} else {
		g.cells[y*g.side+x] = 0
	}
}

// toMatrix converts the fully built grid into the public Matrix form. Every
// cell has a definite value once data placement has run.
func (g *grid) toMatrix() *qrsymbol.Matrix {
	m := qrsymbol.NewMatrix(g.side)
	for y := 0; y < g.side; y++ {
		for x := 0; x < g.side; x++ {
			if g.get(x, y) == 1 {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// buildGrid assembles one complete symbol candidate: function patterns,
// format info for the given mask, version info when required, and the
// codeword stream masked and placed in zigzag order.
func buildGrid(codewords []byte, level qrsymbol.Level, version *qrsymbol.Version, mask int, g *grid) {
	g.clear()
	embedBasicPatterns(version, g)
	embedFormatInfo(level, mask, g)
	maybeEmbedVersionInfo(version, g)
	embedDataBits(codewords, mask, g)
}

var finderPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

var alignmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// embedBasicPatterns stamps the three finder patterns with separators, the
// alignment patterns, the timing patterns, and the dark module.
func embedBasicPatterns(version *qrsymbol.Version, g *grid) {
	embedFinderPattern(0, 0, g)
	embedFinderPattern(g.side-7, 0, g)
	embedFinderPattern(0, g.side-7, g)

	embedHorizontalSeparator(0, 7, g)
	embedHorizontalSeparator(g.side-8, 7, g)
	embedHorizontalSeparator(0, g.side-8, g)

	embedVerticalSeparator(7, 0, g)
	embedVerticalSeparator(g.side-8, 0, g)
	embedVerticalSeparator(7, g.side-7, g)

	if version.Number >= 2 {
		embedAlignmentPatterns(version, g)
	}

	embedTimingPatterns(g)

	// Dark module.
	g.set(8, g.side-8, 1)
}

func embedFinderPattern(xStart, yStart int, g *grid) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			g.set(xStart+x, yStart+y, finderPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, g *grid) {
	for x := 0; x < 8; x++ {
		if xStart+x < g.side {
			g.set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, g *grid) {
	for y := 0; y < 7; y++ {
		if yStart+y < g.side {
			g.set(xStart, yStart+y, 0)
		}
	}
}

// embedAlignmentPatterns stamps a 5x5 pattern at every pair of center
// coordinates, skipping centers already occupied by a finder pattern.
func embedAlignmentPatterns(version *qrsymbol.Version, g *grid) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			if g.get(cx, cy) != emptyCell {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					g.set(cx-2+x, cy-2+y, alignmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(g *grid) {
	for i := 8; i < g.side-8; i++ {
		bit := byte((i + 1) % 2)
		if g.get(i, 6) == emptyCell {
			g.set(i, 6, bit)
		}
		if g.get(6, i) == emptyCell {
			g.set(6, i, bit)
		}
	}
}

// embedDataBits places the codeword stream most-significant-bit-first in the
// standard zigzag: two-column strips from the right edge, alternating upward
// and downward, skipping the vertical timing column and any module already
// assigned. Cells past the end of the stream receive light modules. The mask
// is applied during placement.
func embedDataBits(codewords []byte, mask int, g *grid) {
	bitIndex := 0
	numBits := 8 * len(codewords)
	maskFunc := qrsymbol.DataMasks[mask]

	for j := g.side - 1; j > 0; j -= 2 {
		if j == 6 {
			j-- // vertical timing column
		}
		upward := (((g.side - 1 - j) / 2) & 1) == 0
		for count := 0; count < g.side; count++ {
			i := count
			if upward {
				i = g.side - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if g.get(x, i) != emptyCell {
					continue
				}
				bit := false
				if bitIndex < numBits {
					bit = codewords[bitIndex/8]&(1<<uint(7-bitIndex%8)) != 0
					bitIndex++
				}
				if maskFunc(i, x) {
					bit = !bit
				}
				g.setBool(x, i, bit)
			}
		}
	}
}
