package encoder

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/symbolkit/qrsymbol"
)

func mustEncode(t *testing.T, content string, level qrsymbol.Level, opts *Options) *qrsymbol.Symbol {
	t.Helper()
	symbol, err := Encode(content, level, opts)
	if err != nil {
		t.Fatalf("Encode(%q, %v): %v", content, level, err)
	}
	return symbol
}

func TestEncodeHelloWorld(t *testing.T) {
	symbol := mustEncode(t, "HELLO WORLD", qrsymbol.LevelM, nil)
	if symbol.Version != 1 {
		t.Errorf("version = %d, want 1", symbol.Version)
	}
	if symbol.Matrix.Side() != 21 {
		t.Errorf("side = %d, want 21", symbol.Matrix.Side())
	}
	if symbol.Level != qrsymbol.LevelM {
		t.Errorf("level = %v, want M", symbol.Level)
	}
	if symbol.Mask < 0 || symbol.Mask > 7 {
		t.Errorf("mask = %d, want 0-7", symbol.Mask)
	}
}

func TestEncodeCapacityExceeded(t *testing.T) {
	content := strings.Repeat("x", 3000)
	_, err := Encode(content, qrsymbol.LevelH, nil)
	if !errors.Is(err, qrsymbol.ErrCapacity) {
		t.Fatalf("got %v, want ErrCapacity", err)
	}
	var cerr *qrsymbol.CapacityError
	if !errors.As(err, &cerr) {
		t.Fatal("error should be a CapacityError")
	}
	if cerr.Version != 40 {
		t.Errorf("CapacityError.Version = %d, want 40", cerr.Version)
	}
	if cerr.Level != qrsymbol.LevelH {
		t.Errorf("CapacityError.Level = %v, want H", cerr.Level)
	}
	if cerr.MaxBytes != 1276 {
		t.Errorf("CapacityError.MaxBytes = %d, want 1276", cerr.MaxBytes)
	}
}

func TestEncodeFixedVersionPadsUp(t *testing.T) {
	// "A" fits version 1 easily; a fixed version 2 must still be honored.
	symbol := mustEncode(t, "A", qrsymbol.LevelL, &Options{Version: 2})
	if symbol.Version != 2 {
		t.Errorf("version = %d, want 2", symbol.Version)
	}
	if symbol.Matrix.Side() != 25 {
		t.Errorf("side = %d, want 25", symbol.Matrix.Side())
	}
}

func TestEncodeFixedVersionTooSmall(t *testing.T) {
	// 50 bytes exceed version 1-L (19 data codewords).
	_, err := Encode(strings.Repeat("\x01", 50), qrsymbol.LevelL, &Options{Version: 1})
	var cerr *qrsymbol.CapacityError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want CapacityError", err)
	}
	if cerr.Version != 1 {
		t.Errorf("CapacityError.Version = %d, want 1", cerr.Version)
	}
	if cerr.MaxBytes != 19 {
		t.Errorf("CapacityError.MaxBytes = %d, want 19", cerr.MaxBytes)
	}
}

func TestEncodeEmptyString(t *testing.T) {
	symbol := mustEncode(t, "", qrsymbol.LevelQ, nil)
	if symbol.Version != 1 {
		t.Errorf("version = %d, want 1", symbol.Version)
	}
}

func TestEncodeInvalidParameters(t *testing.T) {
	if _, err := Encode("x", qrsymbol.Level(9), nil); !errors.Is(err, qrsymbol.ErrLevel) {
		t.Errorf("bad level: got %v, want ErrLevel", err)
	}
	if _, err := Encode("x", qrsymbol.LevelL, &Options{Version: 41}); !errors.Is(err, qrsymbol.ErrVersion) {
		t.Errorf("bad version: got %v, want ErrVersion", err)
	}
	bad := 8
	if _, err := Encode("x", qrsymbol.LevelL, &Options{MaskPattern: &bad}); !errors.Is(err, qrsymbol.ErrMask) {
		t.Errorf("bad mask: got %v, want ErrMask", err)
	}
	if _, err := Encode("x", qrsymbol.LevelL, &Options{ECI: 1000000}); !errors.Is(err, qrsymbol.ErrUnsupported) {
		t.Errorf("bad ECI: got %v, want ErrUnsupported", err)
	}
}

func TestEncodeForcedModeValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mode    qrsymbol.Mode
		wantErr bool
	}{
		{"numeric ok", "0123456789", qrsymbol.ModeNumeric, false},
		{"numeric with letter", "12a4", qrsymbol.ModeNumeric, true},
		{"alphanumeric ok", "HELLO WORLD $1/2", qrsymbol.ModeAlphanumeric, false},
		{"alphanumeric lowercase", "hello", qrsymbol.ModeAlphanumeric, true},
		{"byte anything", "héllo\x00", qrsymbol.ModeByte, false},
		{"kanji ok", "漢字", qrsymbol.ModeKanji, false},
		{"kanji ascii", "abc", qrsymbol.ModeKanji, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.content, qrsymbol.LevelM, &Options{Mode: tt.mode})
			if tt.wantErr {
				if !errors.Is(err, qrsymbol.ErrUnsupported) {
					t.Errorf("got %v, want ErrUnsupported", err)
				}
				var uerr *qrsymbol.UnsupportedError
				if !errors.As(err, &uerr) || uerr.Mode != tt.mode {
					t.Errorf("error should carry the forced mode %v", tt.mode)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEncodeForcedMask(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		m := mask
		symbol := mustEncode(t, "FORCED MASK", qrsymbol.LevelM, &Options{MaskPattern: &m})
		if symbol.Mask != mask {
			t.Errorf("mask = %d, want %d", symbol.Mask, mask)
		}
	}
}

func TestEncodeDeterminism(t *testing.T) {
	a := mustEncode(t, "DETERMINISTIC INPUT 123", qrsymbol.LevelQ, nil)
	b := mustEncode(t, "DETERMINISTIC INPUT 123", qrsymbol.LevelQ, nil)
	if !a.Matrix.Equals(b.Matrix) {
		t.Error("identical inputs must produce identical matrices")
	}
	if a.Version != b.Version || a.Mask != b.Mask {
		t.Errorf("metadata differs: %+v vs %+v", a, b)
	}
}

func TestEncodeCapacityMonotonicity(t *testing.T) {
	content := strings.Repeat("CAPACITY", 8)
	auto := mustEncode(t, content, qrsymbol.LevelM, nil)
	for v := auto.Version; v <= 40; v++ {
		if _, err := Encode(content, qrsymbol.LevelM, &Options{Version: v}); err != nil {
			t.Errorf("version %d should hold content that fits version %d: %v", v, auto.Version, err)
		}
	}
}

func TestAnalyzeGreedyRuns(t *testing.T) {
	segments, err := analyze("ABC123def", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		mode qrsymbol.Mode
		data string
	}{
		{qrsymbol.ModeAlphanumeric, "ABC"},
		{qrsymbol.ModeNumeric, "123"},
		{qrsymbol.ModeByte, "def"},
	}
	if len(segments) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segments), len(want))
	}
	for i, w := range want {
		if segments[i].Mode != w.mode || string(segments[i].Data) != w.data {
			t.Errorf("segment %d = {%v %q}, want {%v %q}",
				i, segments[i].Mode, segments[i].Data, w.mode, w.data)
		}
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	segments, err := analyze("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0].Mode != qrsymbol.ModeByte || segments[0].NumChars != 0 {
		t.Errorf("empty input should give one zero-length byte segment, got %+v", segments)
	}
}

func TestNumericPayloadBits(t *testing.T) {
	// 10 bits per full group of 3 digits, 7 bits for a 2-digit remainder.
	segments, err := analyze("12345670", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0].Mode != qrsymbol.ModeNumeric {
		t.Fatalf("expected one numeric segment, got %+v", segments)
	}
	if got := payloadBits(segments[0]); got != 27 {
		t.Errorf("payloadBits = %d, want 27", got)
	}
	if got := totalBits(segments, 1); got != 4+10+27 {
		t.Errorf("totalBits = %d, want %d", got, 4+10+27)
	}
}

func TestBuildBitstreamNumericKnownVector(t *testing.T) {
	// "12345670" at version 1: 0001 0000001000 0001111011 0111001000 1000110
	// then terminator and pads.
	segments, _ := analyze("12345670", 0)
	version, _ := qrsymbol.VersionForNumber(1)
	bits, err := buildBitstream(segments, version, qrsymbol.LevelM)
	if err != nil {
		t.Fatal(err)
	}
	if bits.SizeInBytes() != 16 {
		t.Fatalf("data codewords = %d, want 16", bits.SizeInBytes())
	}
	want := []byte{0x10, 0x20, 0x7B, 0x72, 0x23, 0x00, 0xEC, 0x11}
	got := bits.Bytes()[:len(want)]
	if !bytes.Equal(got, want) {
		t.Errorf("bitstream = %x, want %x", got, want)
	}
}

func TestTerminatePadding(t *testing.T) {
	segments, _ := analyze("", 0)
	version, _ := qrsymbol.VersionForNumber(1)
	bits, err := buildBitstream(segments, version, qrsymbol.LevelL)
	if err != nil {
		t.Fatal(err)
	}
	got := bits.Bytes()
	if len(got) != 19 {
		t.Fatalf("data codewords = %d, want 19", len(got))
	}
	// Mode Byte (0100), count 0 (8 bits), terminator (0000), then pads.
	if got[0] != 0x40 || got[1] != 0x00 {
		t.Errorf("header bytes = %x, want 4000", got[:2])
	}
	for i := 2; i < len(got); i++ {
		want := byte(0xEC)
		if (i-2)%2 == 1 {
			want = 0x11
		}
		if got[i] != want {
			t.Errorf("pad byte %d = %#02x, want %#02x", i, got[i], want)
		}
	}
}

func TestChooseVersionBoundary(t *testing.T) {
	// Version 1-L holds 19 data codewords: 17 content bytes in byte mode.
	fits, _ := analyze(strings.Repeat("\x01", 17), 0)
	version, err := chooseVersion(fits, qrsymbol.LevelL)
	if err != nil || version.Number != 1 {
		t.Errorf("17 bytes: version %v, err %v; want 1", version, err)
	}
	over, _ := analyze(strings.Repeat("\x01", 18), 0)
	version, err = chooseVersion(over, qrsymbol.LevelL)
	if err != nil || version.Number != 2 {
		t.Errorf("18 bytes: version %v, err %v; want 2", version, err)
	}
}

func TestMaskOptimality(t *testing.T) {
	segments, err := analyze("MASK OPTIMALITY 42", 0)
	if err != nil {
		t.Fatal(err)
	}
	level := qrsymbol.LevelM
	version, err := chooseVersion(segments, level)
	if err != nil {
		t.Fatal(err)
	}
	bits, err := buildBitstream(segments, version, level)
	if err != nil {
		t.Fatal(err)
	}
	codewords, err := assembleBlocks(bits, version, level)
	if err != nil {
		t.Fatal(err)
	}

	g := newGrid(version.SideLength())
	chosen := chooseMask(codewords, level, version, g)

	buildGrid(codewords, level, version, chosen, g)
	chosenPenalty := maskPenalty(g)
	for pattern := 0; pattern < 8; pattern++ {
		buildGrid(codewords, level, version, pattern, g)
		if penalty := maskPenalty(g); penalty < chosenPenalty {
			t.Errorf("mask %d has penalty %d, below chosen mask %d at %d",
				pattern, penalty, chosen, chosenPenalty)
		}
	}
}

func TestEncodeFinderPatterns(t *testing.T) {
	symbol := mustEncode(t, "FINDER", qrsymbol.LevelL, nil)
	m := symbol.Matrix
	side := m.Side()
	corners := [][2]int{{0, 0}, {side - 7, 0}, {0, side - 7}}
	for _, corner := range corners {
		// Center 3x3 of each finder pattern is dark.
		for dy := 2; dy <= 4; dy++ {
			for dx := 2; dx <= 4; dx++ {
				if !m.Get(corner[0]+dx, corner[1]+dy) {
					t.Errorf("finder core at (%d,%d) offset (%d,%d) should be dark",
						corner[0], corner[1], dx, dy)
				}
			}
		}
		// Ring inside the border is light.
		if m.Get(corner[0]+1, corner[1]+1) {
			t.Errorf("finder ring at (%d,%d) should be light", corner[0]+1, corner[1]+1)
		}
	}
	// Dark module.
	if !m.Get(8, side-8) {
		t.Error("dark module missing")
	}
	// Timing pattern alternates along row 6.
	for x := 8; x < side-8; x++ {
		want := (x+1)%2 == 1
		if m.Get(x, 6) != want {
			t.Errorf("timing module (%d,6) = %v, want %v", x, m.Get(x, 6), want)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	content := strings.Repeat("https://example.com/path?q=benchmark&n=", 4)
	for i := 0; i < b.N; i++ {
		if _, err := Encode(content, qrsymbol.LevelM, nil); err != nil {
			b.Fatal(err)
		}
	}
}
