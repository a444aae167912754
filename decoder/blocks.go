package decoder

import "github.com/symbolkit/qrsymbol"

// dataBlock holds one de-interleaved error-correction block: data codewords
// followed by parity codewords.
type dataBlock struct {
	numDataCodewords int
	codewords        []byte
}

// deinterleaveBlocks undoes the encoder's codeword interleaving, separating
// the raw stream back into per-block codeword sequences. Longer blocks (one
// extra data codeword) always sort after shorter ones in the block table.
func deinterleaveBlocks(rawCodewords []byte, version *qrsymbol.Version, level qrsymbol.Level) []dataBlock {
	ecb := version.ECBlocksForLevel(level)

	result := make([]dataBlock, 0, ecb.NumBlocks())
	for _, spec := range ecb.Blocks {
		for i := 0; i < spec.Count; i++ {
			result = append(result, dataBlock{
				numDataCodewords: spec.DataCodewords,
				codewords:        make([]byte, spec.DataCodewords+ecb.ECCodewordsPerBlock),
			})
		}
	}

	longerBlocksStartAt := len(result)
	for longerBlocksStartAt > 0 &&
		len(result[longerBlocksStartAt-1].codewords) != len(result[0].codewords) {
		longerBlocksStartAt--
	}
	shorterDataCodewords := len(result[0].codewords) - ecb.ECCodewordsPerBlock

	offset := 0
	for i := 0; i < shorterDataCodewords; i++ {
		for j := range result {
			result[j].codewords[i] = rawCodewords[offset]
			offset++
		}
	}
	// The extra data codeword of each longer block.
	for j := longerBlocksStartAt; j < len(result); j++ {
		result[j].codewords[shorterDataCodewords] = rawCodewords[offset]
		offset++
	}
	// Parity codewords, all blocks carry the same number.
	max := len(result[0].codewords)
	for i := shorterDataCodewords; i < max; i++ {
		for j := range result {
			iOffset := i
			if j >= longerBlocksStartAt {
				iOffset = i + 1
			}
			result[j].codewords[iOffset] = rawCodewords[offset]
			offset++
		}
	}

	return result
}
