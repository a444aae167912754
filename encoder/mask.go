package encoder

import (
	"math"

	"github.com/symbolkit/qrsymbol"
)

const numMaskPatterns = 8

// chooseMask builds a complete candidate symbol for each of the 8 mask
// patterns and returns the pattern with the lowest total penalty. The first
// pattern wins ties.
func chooseMask(codewords []byte, level qrsymbol.Level, version *qrsymbol.Version, g *grid) int {
	minPenalty := math.MaxInt32
	best := 0
	for pattern := 0; pattern < numMaskPatterns; pattern++ {
		buildGrid(codewords, level, version, pattern, g)
		if penalty := maskPenalty(g); penalty < minPenalty {
			minPenalty = penalty
			best = pattern
		}
	}
	return best
}

func maskPenalty(g *grid) int {
	return penaltyRule1(g) + penaltyRule2(g) + penaltyRule3(g) + penaltyRule4(g)
}

// penaltyRule1 penalizes runs of 5 or more same-colored modules in rows and
// columns: 3 points per run plus 1 per module beyond 5.
func penaltyRule1(g *grid) int {
	return penaltyRule1Direction(g, true) + penaltyRule1Direction(g, false)
}

func penaltyRule1Direction(g *grid, horizontal bool) int {
	penalty := 0
	for i := 0; i < g.side; i++ {
		numSameCells := 0
		prev := byte(emptyCell)
		for j := 0; j < g.side; j++ {
			var cell byte
			if horizontal {
				cell = g.get(j, i)
			} else {
				cell = g.get(i, j)
			}
			if cell == prev {
				numSameCells++
			} else {
				if numSameCells >= 5 {
					penalty += 3 + (numSameCells - 5)
				}
				numSameCells = 1
				prev = cell
			}
		}
		if numSameCells >= 5 {
			penalty += 3 + (numSameCells - 5)
		}
	}
	return penalty
}

// penaltyRule2 penalizes 2x2 blocks of uniform color, 3 points each.
// Overlapping blocks all count.
func penaltyRule2(g *grid) int {
	penalty := 0
	for y := 0; y < g.side-1; y++ {
		for x := 0; x < g.side-1; x++ {
			value := g.get(x, y)
			if value == g.get(x+1, y) && value == g.get(x, y+1) && value == g.get(x+1, y+1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// penaltyRule3 penalizes finder-pattern-like 1:1:3:1:1 dark/light sequences
// with 4 light modules on at least one side, 40 points each, scanning both
// rows and columns.
func penaltyRule3(g *grid) int {
	penalty := 0
	for y := 0; y < g.side; y++ {
		for x := 0; x < g.side; x++ {
			if x+6 < g.side &&
				g.get(x, y) == 1 && g.get(x+1, y) == 0 &&
				g.get(x+2, y) == 1 && g.get(x+3, y) == 1 &&
				g.get(x+4, y) == 1 && g.get(x+5, y) == 0 &&
				g.get(x+6, y) == 1 {
				leadingLight := x+10 < g.side &&
					g.get(x+7, y) == 0 && g.get(x+8, y) == 0 &&
					g.get(x+9, y) == 0 && g.get(x+10, y) == 0
				trailingLight := x >= 4 &&
					g.get(x-1, y) == 0 && g.get(x-2, y) == 0 &&
					g.get(x-3, y) == 0 && g.get(x-4, y) == 0
				if leadingLight || trailingLight {
					penalty += 40
				}
			}
			if y+6 < g.side &&
				g.get(x, y) == 1 && g.get(x, y+1) == 0 &&
				g.get(x, y+2) == 1 && g.get(x, y+3) == 1 &&
				g.get(x, y+4) == 1 && g.get(x, y+5) == 0 &&
				g.get(x, y+6) == 1 {
				leadingLight := y+10 < g.side &&
					g.get(x, y+7) == 0 && g.get(x, y+8) == 0 &&
					g.get(x, y+9) == 0 && g.get(x, y+10) == 0
				trailingLight := y >= 4 &&
					g.get(x, y-1) == 0 && g.get(x, y-2) == 0 &&
					g.get(x, y-3) == 0 && g.get(x, y-4) == 0
				if leadingLight || trailingLight {
					penalty += 40
				}
			}
		}
	}
	return penalty
}

// penaltyRule4 penalizes deviation of the dark module share from 50%:
// 10 points for every full 5% step.
func penaltyRule4(g *grid) int {
	numDark := 0
	for _, cell := range g.cells {
		if cell == 1 {
			numDark++
		}
	}
	total := g.side * g.side
	fivePercentSteps := abs(numDark*2-total) * 10 / total
	return fivePercentSteps * 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
