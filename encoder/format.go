package encoder

import "github.com/symbolkit/qrsymbol"

// formatInfoCoordinates lists the strip around the top-left finder pattern,
// bit 0 first. The second strip is split between the top-right and
// bottom-left finder patterns.
var formatInfoCoordinates = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// embedFormatInfo writes the masked 15-bit format information string into
// both of its reserved strips.
func embedFormatInfo(level qrsymbol.Level, mask int, g *grid) {
	formatBits := qrsymbol.FormatInfoBits(level, mask)
	for i := 0; i < 15; i++ {
		bit := byte((formatBits >> uint(i)) & 1)
		coord := formatInfoCoordinates[i]
		g.set(coord[0], coord[1], bit)

		if i < 8 {
			g.set(g.side-1-i, 8, bit)
		} else {
			g.set(8, g.side-7+(i-8), bit)
		}
	}
}

// maybeEmbedVersionInfo writes the 18-bit version information string into
// its two reserved 6x3 blocks. Versions below 7 carry no version info.
func maybeEmbedVersionInfo(version *qrsymbol.Version, g *grid) {
	if version.Number < 7 {
		return
	}
	versionBits := qrsymbol.VersionInfoBits(version.Number)
	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := byte((versionBits >> uint(bitIndex)) & 1)
			bitIndex++
			g.set(i, g.side-11+j, bit) // bottom-left block
			g.set(g.side-11+j, i, bit) // top-right block
		}
	}
}
