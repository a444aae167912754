package qrsymbol

import "testing"

func TestFormatInfoBitsKnownValues(t *testing.T) {
	tests := []struct {
		level Level
		mask  int
		want  int
	}{
		{LevelM, 0, 0x5412},
		{LevelM, 7, 0x4AA0},
		{LevelL, 0, 0x77C4},
		{LevelL, 1, 0x72F3},
		{LevelH, 7, 0x083B},
		{LevelQ, 7, 0x2BED},
	}
	for _, tt := range tests {
		if got := FormatInfoBits(tt.level, tt.mask); got != tt.want {
			t.Errorf("FormatInfoBits(%v, %d) = %#04x, want %#04x", tt.level, tt.mask, got, tt.want)
		}
	}
}

func TestVersionInfoBitsKnownValues(t *testing.T) {
	tests := []struct {
		version int
		want    int
	}{
		{7, 0x07C94},
		{8, 0x085BC},
		{40, 0x28C69},
	}
	for _, tt := range tests {
		if got := VersionInfoBits(tt.version); got != tt.want {
			t.Errorf("VersionInfoBits(%d) = %#05x, want %#05x", tt.version, got, tt.want)
		}
	}
}

func TestBCHFormatRemainder(t *testing.T) {
	// Worked example from the standard: data 00101 has remainder 0011011100.
	if got := BCH(0x05, FormatInfoPoly); got != 0x0DC {
		t.Errorf("BCH(0x05, FormatInfoPoly) = %#x, want 0x0DC", got)
	}
	// Degree bound: the remainder always fits below the polynomial's MSB.
	for value := 0; value < 32; value++ {
		if got := BCH(value, FormatInfoPoly); got >= 1<<10 {
			t.Errorf("BCH(%d, FormatInfoPoly) = %#x exceeds 10 bits", value, got)
		}
	}
	for value := 1; value <= 40; value++ {
		if got := BCH(value, VersionInfoPoly); got >= 1<<12 {
			t.Errorf("BCH(%d, VersionInfoPoly) = %#x exceeds 12 bits", value, got)
		}
	}
}
