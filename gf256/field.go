// Package gf256 implements arithmetic over GF(2^8) with the QR code
// primitive polynomial x^8+x^4+x^3+x^2+1 (0x11D), plus Reed-Solomon encoding
// and decoding over that field.
package gf256

// polynomial is the field modulus.
const polynomial = 0x11d

var (
	expTable [256]byte
	logTable [256]byte
)

func init() {
	x := 1
	for i := 0; i < 256; i++ {
		expTable[i] = byte(x)
		x <<= 1
		if x >= 256 {
			x ^= polynomial
		}
	}
	for i := 0; i < 255; i++ {
		logTable[expTable[i]] = byte(i)
	}
}

// Exp returns alpha^n where alpha = 0x02 is the primitive element. n may be
// any non-negative integer.
func Exp(n int) byte {
	return expTable[n%255]
}

// Log returns the discrete logarithm of a. Log(0) panics: zero has no
// logarithm.
func Log(a byte) int {
	if a == 0 {
		panic("gf256: log(0)")
	}
	return int(logTable[a])
}

// Mul returns a*b in the field.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(int(logTable[a])+int(logTable[b]))%255]
}

// Div returns a/b in the field. Div by zero panics.
func Div(a, b byte) byte {
	if b == 0 {
		panic("gf256: division by zero")
	}
	if a == 0 {
		return 0
	}
	return expTable[(int(logTable[a])-int(logTable[b])+255)%255]
}

// Inv returns the multiplicative inverse of a. Inv(0) panics.
func Inv(a byte) byte {
	if a == 0 {
		panic("gf256: inverse(0)")
	}
	return expTable[255-int(logTable[a])]
}

// Add returns a+b, which in GF(2^n) is XOR and identical to subtraction.
func Add(a, b byte) byte {
	return a ^ b
}
