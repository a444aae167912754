package bitfield

import "errors"

// ErrOutOfBits is returned when a read extends past the end of the source.
var ErrOutOfBits = errors.New("bitfield: read past end of source")

// BitSource reads bits from a byte sequence where the number of bits read is
// not necessarily a multiple of 8. Bits are read from the first byte first,
// from most-significant to least-significant.
type BitSource struct {
	bytes      []byte
	byteOffset int
	bitOffset  int
}

// NewBitSource creates a new BitSource over the given bytes.
func NewBitSource(bytes []byte) *BitSource {
	return &BitSource{bytes: bytes}
}

// Available returns the number of bits that can still be read.
func (bs *BitSource) Available() int {
	return 8*(len(bs.bytes)-bs.byteOffset) - bs.bitOffset
}

// ReadBits reads numBits bits and returns them as the least-significant bits
// of an int.
func (bs *BitSource) ReadBits(numBits int) (int, error) {
	if numBits < 1 || numBits > 32 || numBits > bs.Available() {
		return 0, ErrOutOfBits
	}

	result := 0

	// Remainder of the current byte first.
	if bs.bitOffset > 0 {
		bitsLeft := 8 - bs.bitOffset
		toRead := numBits
		if toRead > bitsLeft {
			toRead = bitsLeft
		}
		bitsToNotRead := bitsLeft - toRead
		mask := (0xFF >> uint(8-toRead)) << uint(bitsToNotRead)
		result = (int(bs.bytes[bs.byteOffset]) & mask) >> uint(bitsToNotRead)
		numBits -= toRead
		bs.bitOffset += toRead
		if bs.bitOffset == 8 {
			bs.bitOffset = 0
			bs.byteOffset++
		}
	}

	// Whole bytes.
	for numBits >= 8 {
		result = (result << 8) | int(bs.bytes[bs.byteOffset])
		bs.byteOffset++
		numBits -= 8
	}

	// A final partial byte.
	if numBits > 0 {
		bitsToNotRead := 8 - numBits
		mask := (0xFF >> uint(bitsToNotRead)) << uint(bitsToNotRead)
		result = (result << uint(numBits)) | ((int(bs.bytes[bs.byteOffset]) & mask) >> uint(bitsToNotRead))
		bs.bitOffset += numBits
	}

	return result, nil
}
