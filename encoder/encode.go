// Package encoder implements the QR code symbol encoding pipeline: segment
// analysis, version selection, bitstream assembly, Reed-Solomon block error
// correction, matrix construction, and mask selection.
package encoder

import (
	"fmt"

	"github.com/symbolkit/qrsymbol"
)

// Options carries the optional encoding parameters. The zero value means
// fully automatic behavior.
type Options struct {
	// Mode forces a single encoding mode for the whole content instead of
	// automatic segment analysis. Content outside the forced mode's
	// character set fails with an UnsupportedError. Zero means automatic.
	Mode qrsymbol.Mode

	// ECI prepends an Extended Channel Interpretation designator segment.
	// Zero means no designator.
	ECI int

	// UTF8BOM prepends the UTF-8 ECI designator and a byte order mark to
	// the content, for readers that would otherwise assume ISO-8859-1.
	UTF8BOM bool

	// Version fixes the symbol version (1-40) instead of choosing the
	// smallest that fits. Zero means automatic.
	Version int

	// MaskPattern fixes the data mask (0-7), bypassing penalty scoring.
	// Nil means automatic selection.
	MaskPattern *int
}

const utf8BOM = "\xEF\xBB\xBF"

// Encode encodes content into a QR symbol at the given error correction
// level. A nil opts encodes with fully automatic mode, version, and mask
// selection. All parameter validation happens before any matrix is built;
// on error no partial result is returned.
func Encode(content string, level qrsymbol.Level, opts *Options) (*qrsymbol.Symbol, error) {
	if opts == nil {
		opts = &Options{}
	}
	if level < qrsymbol.LevelL || level > qrsymbol.LevelH {
		return nil, qrsymbol.ErrLevel
	}
	if opts.MaskPattern != nil && (*opts.MaskPattern < 0 || *opts.MaskPattern >= numMaskPatterns) {
		return nil, qrsymbol.ErrMask
	}

	eci := opts.ECI
	if opts.UTF8BOM {
		eci = qrsymbol.ECIUTF8
		content = utf8BOM + content
	}
	if eci != 0 && !qrsymbol.ValidECI(eci) {
		return nil, fmt.Errorf("%w: ECI value %d", qrsymbol.ErrUnsupported, eci)
	}

	segments, err := analyze(content, opts.Mode)
	if err != nil {
		return nil, err
	}
	if eci != 0 {
		segments = append([]Segment{eciSegment(eci)}, segments...)
	}

	var version *qrsymbol.Version
	if opts.Version != 0 {
		version, err = qrsymbol.VersionForNumber(opts.Version)
		if err != nil {
			return nil, err
		}
		if err := checkVersion(segments, level, version); err != nil {
			return nil, err
		}
	} else {
		version, err = chooseVersion(segments, level)
		if err != nil {
			return nil, err
		}
	}

	bits, err := buildBitstream(segments, version, level)
	if err != nil {
		return nil, err
	}
	codewords, err := assembleBlocks(bits, version, level)
	if err != nil {
		return nil, err
	}

	g := newGrid(version.SideLength())
	mask := 0
	if opts.MaskPattern != nil {
		mask = *opts.MaskPattern
	} else {
		mask = chooseMask(codewords, level, version, g)
	}
	buildGrid(codewords, level, version, mask, g)

	return &qrsymbol.Symbol{
		Matrix:  g.toMatrix(),
		Version: version.Number,
		Level:   level,
		Mask:    mask,
	}, nil
}
