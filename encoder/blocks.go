package encoder

import (
	"fmt"

	"github.com/symbolkit/qrsymbol"
	"github.com/symbolkit/qrsymbol/bitfield"
	"github.com/symbolkit/qrsymbol/gf256"
)

// assembleBlocks splits the data codewords into error-correction blocks per
// the version's block table, computes the Reed-Solomon parity codewords for
// each block, and interleaves data then parity codewords across blocks into
// the final placement stream.
func assembleBlocks(bits *bitfield.BitArray, version *qrsymbol.Version, level qrsymbol.Level) ([]byte, error) {
	ecb := version.ECBlocksForLevel(level)
	if bits.SizeInBytes() != ecb.TotalDataCodewords() {
		return nil, fmt.Errorf("%w: %d data codewords, table expects %d",
			qrsymbol.ErrCapacity, bits.SizeInBytes(), ecb.TotalDataCodewords())
	}

	type blockPair struct {
		data []byte
		ec   []byte
	}
	blocks := make([]blockPair, 0, ecb.NumBlocks())
	maxDataBytes := 0
	offset := 0
	for _, spec := range ecb.Blocks {
		for i := 0; i < spec.Count; i++ {
			data := make([]byte, spec.DataCodewords)
			bits.ToBytes(8*offset, data, 0, spec.DataCodewords)
			offset += spec.DataCodewords
			blocks = append(blocks, blockPair{
				data: data,
				ec:   gf256.RSEncode(data, ecb.ECCodewordsPerBlock),
			})
			if spec.DataCodewords > maxDataBytes {
				maxDataBytes = spec.DataCodewords
			}
		}
	}

	result := make([]byte, 0, version.TotalCodewords)
	for i := 0; i < maxDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.data) {
				result = append(result, block.data[i])
			}
		}
	}
	for i := 0; i < ecb.ECCodewordsPerBlock; i++ {
		for _, block := range blocks {
			result = append(result, block.ec[i])
		}
	}

	if len(result) != version.TotalCodewords {
		return nil, fmt.Errorf("%w: interleaved %d codewords, symbol holds %d",
			qrsymbol.ErrCapacity, len(result), version.TotalCodewords)
	}
	return result, nil
}
