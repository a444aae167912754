package gf256

import "testing"

func TestFieldBasics(t *testing.T) {
	// a * inverse(a) == 1
	for a := 1; a < 256; a++ {
		if got := Mul(byte(a), Inv(byte(a))); got != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, got)
		}
	}
	// a ^ a == 0
	if Add(42, 42) != 0 {
		t.Error("a+a should be 0")
	}
	// multiply by zero
	if Mul(0, 100) != 0 || Mul(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
	// alpha^0 == 1, alpha^1 == 2
	if Exp(0) != 1 || Exp(1) != 2 {
		t.Errorf("Exp(0)=%d Exp(1)=%d, want 1 2", Exp(0), Exp(1))
	}
	// exp and log are inverse maps
	for n := 0; n < 255; n++ {
		if Log(Exp(n)) != n {
			t.Errorf("Log(Exp(%d)) = %d", n, Log(Exp(n)))
		}
	}
	// division inverts multiplication
	for a := 1; a < 256; a += 7 {
		for b := 1; b < 256; b += 11 {
			if Div(Mul(byte(a), byte(b)), byte(b)) != byte(a) {
				t.Fatalf("Div(Mul(%d,%d),%d) != %d", a, b, b, a)
			}
		}
	}
}

func TestGeneratorDivisibility(t *testing.T) {
	// data++parity must evaluate to zero at every generator root.
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x01, 0x23}
	for _, ecCount := range []int{7, 10, 13, 17, 30} {
		parity := RSEncode(data, ecCount)
		if len(parity) != ecCount {
			t.Fatalf("ecCount=%d: got %d parity codewords", ecCount, len(parity))
		}
		codeword := newPoly(append(append([]byte{}, data...), parity...))
		for i := 0; i < ecCount; i++ {
			if got := codeword.evaluateAt(Exp(i)); got != 0 {
				t.Errorf("ecCount=%d: codeword(alpha^%d) = %d, want 0", ecCount, i, got)
			}
		}
	}
}

func TestRSEncodeKnownVector(t *testing.T) {
	// Version 1-M "HELLO WORLD": 16 data codewords, 10 EC codewords. The
	// expected parity bytes are published in the standard's worked examples.
	data := []byte{
		0x20, 0x5B, 0x0B, 0x78, 0xD1, 0x72, 0xDC, 0x4D,
		0x43, 0x40, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
	}
	want := []byte{0xC4, 0x23, 0x27, 0x77, 0xEB, 0xD7, 0xE7, 0xE2, 0x5D, 0x17}
	got := RSEncode(data, 10)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parity = %x, want %x", got, want)
		}
	}
}

func TestRSDecodeCorrectsErrors(t *testing.T) {
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i + 1)
	}
	ecCount := 7
	parity := RSEncode(data, ecCount)

	received := append(append([]byte{}, data...), parity...)
	received[0] = 0
	received[3] = 200
	received[6] = 100

	corrected, err := RSDecode(received, ecCount)
	if err != nil {
		t.Fatalf("RSDecode failed: %v", err)
	}
	if corrected != 3 {
		t.Errorf("corrected = %d, want 3", corrected)
	}
	for i := range data {
		if received[i] != data[i] {
			t.Errorf("after correction, data[%d] = %d, want %d", i, received[i], data[i])
		}
	}
}

func TestRSDecodeNoErrors(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	parity := RSEncode(data, 4)
	received := append(append([]byte{}, data...), parity...)
	corrected, err := RSDecode(received, 4)
	if err != nil {
		t.Fatalf("RSDecode failed: %v", err)
	}
	if corrected != 0 {
		t.Errorf("corrected = %d, want 0", corrected)
	}
}

func TestRSDecodeHalfECCapacity(t *testing.T) {
	// Corrupting floor(ecCount/2) codewords in one block must still recover.
	data := make([]byte, 19)
	for i := range data {
		data[i] = byte(i * 13)
	}
	ecCount := 17
	parity := RSEncode(data, ecCount)
	received := append(append([]byte{}, data...), parity...)
	for i := 0; i < ecCount/2; i++ {
		received[i*2] ^= byte(0x5A + i)
	}
	corrected, err := RSDecode(received, ecCount)
	if err != nil {
		t.Fatalf("RSDecode failed: %v", err)
	}
	if corrected != ecCount/2 {
		t.Errorf("corrected = %d, want %d", corrected, ecCount/2)
	}
	for i := range data {
		if received[i] != data[i] {
			t.Fatalf("data[%d] not recovered", i)
		}
	}
}

func TestRSDecodeTooManyErrors(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	parity := RSEncode(data, 4)
	received := append(append([]byte{}, data...), parity...)
	received[0] = 0
	received[1] = 0
	received[2] = 0 // 3 errors, capacity is 2
	if _, err := RSDecode(received, 4); err == nil {
		t.Error("expected error for too many errors")
	}
}
