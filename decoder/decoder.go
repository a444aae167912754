// Package decoder implements a verification decoder for QR symbol matrices:
// it reads format and version information, reverses the data mask and
// codeword interleaving, corrects errors per block, and parses the bitstream
// back into text. It consumes the abstract module matrix directly; locating
// a symbol inside an image is out of scope.
package decoder

import (
	"errors"

	"github.com/symbolkit/qrsymbol"
	"github.com/symbolkit/qrsymbol/gf256"
)

var (
	// ErrFormat is returned when the matrix structure or bitstream is not a
	// well-formed QR symbol.
	ErrFormat = errors.New("qrsymbol/decoder: malformed symbol")

	// ErrChecksum is returned when a block holds more errors than its
	// parity codewords can correct.
	ErrChecksum = errors.New("qrsymbol/decoder: error correction failed")
)

// Result is a decoded symbol: the recovered text plus the symbol parameters
// read back from the matrix.
type Result struct {
	Text            string
	Version         int
	Level           qrsymbol.Level
	Mask            int
	ErrorsCorrected int
}

// Decode decodes a module matrix. The matrix is not modified; all work
// happens on an internal copy.
func Decode(m *qrsymbol.Matrix) (*Result, error) {
	parser, err := newMatrixParser(m)
	if err != nil {
		return nil, err
	}
	version, err := parser.readVersion()
	if err != nil {
		return nil, err
	}
	level, mask, err := parser.readFormatInfo()
	if err != nil {
		return nil, err
	}
	rawCodewords, err := parser.readCodewords(version, mask)
	if err != nil {
		return nil, err
	}

	blocks := deinterleaveBlocks(rawCodewords, version, level)
	data := make([]byte, 0, version.DataCodewords(level))
	errorsCorrected := 0
	for _, block := range blocks {
		corrected, err := gf256.RSDecode(block.codewords, len(block.codewords)-block.numDataCodewords)
		if err != nil {
			return nil, ErrChecksum
		}
		errorsCorrected += corrected
		data = append(data, block.codewords[:block.numDataCodewords]...)
	}

	text, err := decodeBitstream(data, version)
	if err != nil {
		return nil, err
	}
	return &Result{
		Text:            text,
		Version:         version.Number,
		Level:           level,
		Mask:            mask,
		ErrorsCorrected: errorsCorrected,
	}, nil
}
