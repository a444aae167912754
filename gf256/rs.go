package gf256

import "sync"

// maxPrecomputedGenerator covers every EC-codewords-per-block value used by
// the QR code capacity tables.
const maxPrecomputedGenerator = 30

var (
	generatorsOnce sync.Once
	generators     [maxPrecomputedGenerator + 1]poly
)

// generatorPoly returns the Reed-Solomon generator polynomial of the given
// degree: the product of (x - alpha^i) for i in 0..degree-1.
func generatorPoly(degree int) poly {
	generatorsOnce.Do(func() {
		generators[0] = poly{1}
		for d := 1; d <= maxPrecomputedGenerator; d++ {
			generators[d] = generators[d-1].mul(poly{1, Exp(d - 1)})
		}
	})
	if degree <= maxPrecomputedGenerator {
		return generators[degree]
	}
	g := generators[maxPrecomputedGenerator]
	for d := maxPrecomputedGenerator + 1; d <= degree; d++ {
		g = g.mul(poly{1, Exp(d - 1)})
	}
	return g
}

// RSEncode returns ecCount parity codewords for data such that the
// concatenation data++parity, read as polynomial coefficients, is divisible
// by the degree-ecCount generator polynomial. data is not modified.
func RSEncode(data []byte, ecCount int) []byte {
	if ecCount <= 0 {
		panic("gf256: no error correction codewords requested")
	}
	gen := generatorPoly(ecCount)

	// Polynomial long division; only the remainder is kept.
	remainder := make([]byte, ecCount)
	for _, d := range data {
		factor := d ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[ecCount-1] = 0
		if factor == 0 {
			continue
		}
		for i := 1; i < len(gen); i++ {
			remainder[i-1] ^= Mul(gen[i], factor)
		}
	}
	return remainder
}
