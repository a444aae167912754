package gf256

import "errors"

// ErrCorrupt indicates more errors than the Reed-Solomon code can correct.
var ErrCorrupt = errors.New("gf256: too many errors to correct")

// RSDecode corrects up to ecCount/2 codeword errors in received in place and
// returns the number of errors corrected. received holds data codewords
// followed by ecCount parity codewords.
func RSDecode(received []byte, ecCount int) (int, error) {
	p := newPoly(received)
	syndromes := make([]byte, ecCount)
	noError := true
	for i := 0; i < ecCount; i++ {
		eval := p.evaluateAt(Exp(i))
		syndromes[ecCount-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	sigma, omega, err := runEuclidean(monomial(ecCount, 1), newPoly(syndromes), ecCount)
	if err != nil {
		return 0, err
	}
	locations, err := findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	magnitudes := findErrorMagnitudes(omega, locations)
	for i, loc := range locations {
		position := len(received) - 1 - Log(loc)
		if position < 0 {
			return 0, ErrCorrupt
		}
		received[position] ^= magnitudes[i]
	}
	return len(locations), nil
}

// runEuclidean runs the extended Euclidean algorithm to produce the error
// locator polynomial sigma and error evaluator polynomial omega.
func runEuclidean(a, b poly, r int) (sigma, omega poly, err error) {
	if a.degree() < b.degree() {
		a, b = b, a
	}

	rLast, rCur := a, b
	tLast, tCur := poly{0}, poly{1}

	for 2*rCur.degree() >= r {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = rCur, tCur

		if rLast.isZero() {
			return nil, nil, ErrCorrupt
		}
		rCur = rLastLast
		q := poly{0}
		denomLeading := rLast.coefficient(rLast.degree())
		dltInverse := Inv(denomLeading)
		for rCur.degree() >= rLast.degree() && !rCur.isZero() {
			degreeDiff := rCur.degree() - rLast.degree()
			scale := Mul(rCur.coefficient(rCur.degree()), dltInverse)
			q = q.add(monomial(degreeDiff, scale))
			rCur = rCur.add(rLast.mulMonomial(degreeDiff, scale))
		}

		tCur = q.mul(tLast).add(tLastLast)

		if rCur.degree() >= rLast.degree() {
			return nil, nil, ErrCorrupt
		}
	}

	sigmaTildeAtZero := tCur.coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrCorrupt
	}

	inverse := Inv(sigmaTildeAtZero)
	return tCur.mulScalar(inverse), rCur.mulScalar(inverse), nil
}

// findErrorLocations runs a Chien search over the field for roots of the
// error locator polynomial.
func findErrorLocations(locator poly) ([]byte, error) {
	numErrors := locator.degree()
	if numErrors == 1 {
		return []byte{locator.coefficient(1)}, nil
	}
	result := make([]byte, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if locator.evaluateAt(byte(i)) == 0 {
			result = append(result, Inv(byte(i)))
		}
	}
	if len(result) != numErrors {
		return nil, ErrCorrupt
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's formula at each error location.
func findErrorMagnitudes(evaluator poly, locations []byte) []byte {
	result := make([]byte, len(locations))
	for i, loc := range locations {
		xiInverse := Inv(loc)
		denominator := byte(1)
		for j, other := range locations {
			if i == j {
				continue
			}
			denominator = Mul(denominator, Mul(other, xiInverse)^1)
		}
		result[i] = Mul(evaluator.evaluateAt(xiInverse), Inv(denominator))
	}
	return result
}
