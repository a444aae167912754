package gf256

// poly is a polynomial with GF(256) coefficients, ordered from highest to
// lowest degree. The zero polynomial is represented as []byte{0}. Values are
// immutable once created.
type poly []byte

// newPoly normalizes coefficients by stripping leading zero terms.
func newPoly(coefficients []byte) poly {
	if len(coefficients) == 0 {
		panic("gf256: empty coefficients")
	}
	firstNonZero := 0
	for firstNonZero < len(coefficients)-1 && coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	return poly(coefficients[firstNonZero:])
}

// monomial returns coefficient * x^degree.
func monomial(degree int, coefficient byte) poly {
	if coefficient == 0 {
		return poly{0}
	}
	p := make(poly, degree+1)
	p[0] = coefficient
	return p
}

func (p poly) degree() int {
	return len(p) - 1
}

func (p poly) isZero() bool {
	return p[0] == 0
}

// coefficient returns the coefficient of x^degree.
func (p poly) coefficient(degree int) byte {
	return p[len(p)-1-degree]
}

// evaluateAt evaluates the polynomial at a by Horner's method.
func (p poly) evaluateAt(a byte) byte {
	if a == 0 {
		return p.coefficient(0)
	}
	if a == 1 {
		var result byte
		for _, c := range p {
			result ^= c
		}
		return result
	}
	result := p[0]
	for _, c := range p[1:] {
		result = Mul(a, result) ^ c
	}
	return result
}

// add returns p+other (XOR of aligned coefficients).
func (p poly) add(other poly) poly {
	if p.isZero() {
		return other
	}
	if other.isZero() {
		return p
	}
	smaller, larger := p, other
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	sum := make(poly, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = smaller[i-diff] ^ larger[i]
	}
	return newPoly(sum)
}

// mul returns p*other.
func (p poly) mul(other poly) poly {
	if p.isZero() || other.isZero() {
		return poly{0}
	}
	product := make(poly, len(p)+len(other)-1)
	for i, ac := range p {
		for j, bc := range other {
			product[i+j] ^= Mul(ac, bc)
		}
	}
	return newPoly(product)
}

// mulScalar returns p*scalar.
func (p poly) mulScalar(scalar byte) poly {
	if scalar == 0 {
		return poly{0}
	}
	if scalar == 1 {
		return p
	}
	product := make(poly, len(p))
	for i, c := range p {
		product[i] = Mul(c, scalar)
	}
	return product
}

// mulMonomial returns p * coefficient*x^degree.
func (p poly) mulMonomial(degree int, coefficient byte) poly {
	if coefficient == 0 {
		return poly{0}
	}
	product := make(poly, len(p)+degree)
	for i, c := range p {
		product[i] = Mul(c, coefficient)
	}
	return newPoly(product)
}
