package qrsymbol

import (
	"errors"
	"testing"
)

func TestSideLength(t *testing.T) {
	for v := 1; v <= 40; v++ {
		want := 21 + 4*(v-1)
		if got := SideLength(v); got != want {
			t.Errorf("SideLength(%d) = %d, want %d", v, got, want)
		}
		version, err := VersionForNumber(v)
		if err != nil {
			t.Fatalf("VersionForNumber(%d): %v", v, err)
		}
		if version.SideLength() != want {
			t.Errorf("version %d: SideLength() = %d, want %d", v, version.SideLength(), want)
		}
	}
}

func TestVersionForNumberRange(t *testing.T) {
	for _, number := range []int{-1, 0, 41, 100} {
		_, err := VersionForNumber(number)
		if !errors.Is(err, ErrVersion) {
			t.Errorf("VersionForNumber(%d): got %v, want ErrVersion", number, err)
		}
		var verr *VersionError
		if !errors.As(err, &verr) || verr.Requested != number {
			t.Errorf("VersionForNumber(%d): error does not carry requested number", number)
		}
	}
	for v := 1; v <= 40; v++ {
		version, err := VersionForNumber(v)
		if err != nil || version.Number != v {
			t.Errorf("VersionForNumber(%d) = %v, %v", v, version, err)
		}
	}
}

func TestVersionForSideLength(t *testing.T) {
	for v := 1; v <= 40; v++ {
		version, err := VersionForSideLength(SideLength(v))
		if err != nil {
			t.Fatalf("VersionForSideLength(%d): %v", SideLength(v), err)
		}
		if version.Number != v {
			t.Errorf("VersionForSideLength(%d) = version %d, want %d", SideLength(v), version.Number, v)
		}
	}
	if _, err := VersionForSideLength(20); !errors.Is(err, ErrVersion) {
		t.Error("side 20 should be rejected")
	}
	if _, err := VersionForSideLength(19); !errors.Is(err, ErrVersion) {
		t.Error("side 19 should be rejected")
	}
}

func TestVersionTableConsistency(t *testing.T) {
	levels := []Level{LevelL, LevelM, LevelQ, LevelH}
	for v := 1; v <= 40; v++ {
		version, _ := VersionForNumber(v)
		for _, level := range levels {
			ecb := version.ECBlocksForLevel(level)
			if got := ecb.TotalDataCodewords() + ecb.TotalECCodewords(); got != version.TotalCodewords {
				t.Errorf("version %d level %v: data+ec = %d, total = %d",
					v, level, got, version.TotalCodewords)
			}
			if version.DataCodewords(level) != ecb.TotalDataCodewords() {
				t.Errorf("version %d level %v: DataCodewords mismatch", v, level)
			}
			// At most two block sizes, larger exactly one codeword bigger.
			if len(ecb.Blocks) == 2 && ecb.Blocks[1].DataCodewords != ecb.Blocks[0].DataCodewords+1 {
				t.Errorf("version %d level %v: block sizes %d and %d",
					v, level, ecb.Blocks[0].DataCodewords, ecb.Blocks[1].DataCodewords)
			}
			if len(ecb.Blocks) > 2 {
				t.Errorf("version %d level %v: %d block size classes", v, level, len(ecb.Blocks))
			}
		}
	}
}

func TestCapacityNonDecreasing(t *testing.T) {
	for _, level := range []Level{LevelL, LevelM, LevelQ, LevelH} {
		prev := 0
		for v := 1; v <= 40; v++ {
			version, _ := VersionForNumber(v)
			capacity := version.DataCodewords(level)
			if capacity < prev {
				t.Errorf("level %v: capacity drops from %d to %d at version %d", level, prev, capacity, v)
			}
			prev = capacity
		}
	}
}

// Data modules left unmarked by the function pattern must hold exactly the
// symbol's codewords, plus at most 7 remainder bits.
func TestFunctionPatternDataCapacity(t *testing.T) {
	for v := 1; v <= 40; v++ {
		version, _ := VersionForNumber(v)
		pattern := version.FunctionPattern()
		side := pattern.Side()
		dataModules := 0
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				if !pattern.Get(x, y) {
					dataModules++
				}
			}
		}
		codewordBits := 8 * version.TotalCodewords
		if dataModules < codewordBits || dataModules >= codewordBits+8 {
			t.Errorf("version %d: %d data modules for %d codeword bits", v, dataModules, codewordBits)
		}
	}
}

func TestLevelBitsRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelL, LevelM, LevelQ, LevelH} {
		got, err := LevelForBits(level.Bits())
		if err != nil || got != level {
			t.Errorf("LevelForBits(%v.Bits()) = %v, %v", level, got, err)
		}
	}
	if _, err := LevelForBits(4); !errors.Is(err, ErrLevel) {
		t.Error("LevelForBits(4) should fail")
	}
}

func TestModeCharacterCountBits(t *testing.T) {
	tests := []struct {
		mode    Mode
		version int
		want    int
	}{
		{ModeNumeric, 1, 10},
		{ModeNumeric, 9, 10},
		{ModeNumeric, 10, 12},
		{ModeNumeric, 26, 12},
		{ModeNumeric, 27, 14},
		{ModeNumeric, 40, 14},
		{ModeAlphanumeric, 1, 9},
		{ModeAlphanumeric, 15, 11},
		{ModeAlphanumeric, 30, 13},
		{ModeByte, 5, 8},
		{ModeByte, 20, 16},
		{ModeByte, 40, 16},
		{ModeKanji, 1, 8},
		{ModeKanji, 10, 10},
		{ModeKanji, 27, 12},
	}
	for _, tt := range tests {
		if got := tt.mode.CharacterCountBits(tt.version); got != tt.want {
			t.Errorf("%v.CharacterCountBits(%d) = %d, want %d", tt.mode, tt.version, got, tt.want)
		}
	}
}

func TestModeForBitsRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeTerminator, ModeNumeric, ModeAlphanumeric, ModeByte, ModeECI, ModeKanji} {
		got, err := ModeForBits(mode.Bits())
		if err != nil || got != mode {
			t.Errorf("ModeForBits(%v.Bits()) = %v, %v", mode, got, err)
		}
	}
	if _, err := ModeForBits(0x6); !errors.Is(err, ErrMode) {
		t.Error("ModeForBits(0x6) should fail")
	}
}
