// Package bitfield provides the bit-level buffers used to assemble and read
// QR code bitstreams.
package bitfield

import "strings"

const loadFactor = 0.75

// BitArray is an append-oriented array of bits backed by uint32 words.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with the given initial size in bits.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: make([]uint32, (size+31)/32),
		size: size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (ba *BitArray) SizeInBytes() int {
	return (ba.size + 7) / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := make([]uint32, (int(float64(newSize)/loadFactor)+31)/32)
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1f))) != 0
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1f)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitfield: numBits must be between 0 and 32")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1f)
		}
		nextSize++
	}
	ba.size = nextSize
}

// ToBytes packs numBytes bytes starting at bitOffset into array at offset,
// most-significant bit of each byte first.
func (ba *BitArray) ToBytes(bitOffset int, array []byte, offset, numBytes int) {
	for i := 0; i < numBytes; i++ {
		theByte := byte(0)
		for j := 0; j < 8; j++ {
			if ba.Get(bitOffset) {
				theByte |= 1 << uint(7-j)
			}
			bitOffset++
		}
		array[offset+i] = theByte
	}
}

// Bytes packs the whole array into a fresh byte slice, zero-padded to a byte
// boundary.
func (ba *BitArray) Bytes() []byte {
	out := make([]byte, ba.SizeInBytes())
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// String returns a string representation using 'X' for set and '.' for
// unset, in groups of eight.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/8 + 1)
	for i := 0; i < ba.size; i++ {
		if i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
