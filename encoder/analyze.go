package encoder

import (
	"golang.org/x/text/encoding/japanese"

	"github.com/symbolkit/qrsymbol"
)

// Segment is one run of content encoded in a single mode. For ModeKanji,
// Data holds the Shift JIS bytes and NumChars the double-byte character
// count; for every other mode Data holds raw bytes and NumChars equals
// len(Data). An ECI segment carries the designator in ECIValue and no data.
type Segment struct {
	Mode     qrsymbol.Mode
	Data     []byte
	NumChars int
	ECIValue int
}

// alphanumericTable maps ASCII values to their alphanumeric codes, -1 for
// characters outside the 45-character set.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// alphanumericCode returns the alphanumeric code for a character, or -1.
func alphanumericCode(c int) int {
	if c >= 0 && c < 128 {
		return alphanumericTable[c]
	}
	return -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// analyze splits content into encoding segments. When forced is nonzero the
// whole content becomes a single segment of that mode, after validating that
// every character belongs to the mode's character set. Otherwise runs of
// digits become Numeric, runs from the alphanumeric set become Alphanumeric,
// and everything else becomes Byte; each byte lands in the cheapest mode
// that can hold it, with no lookahead.
func analyze(content string, forced qrsymbol.Mode) ([]Segment, error) {
	if forced != 0 {
		return forcedSegment(content, forced)
	}

	if len(content) == 0 {
		return []Segment{{Mode: qrsymbol.ModeByte}}, nil
	}

	classOf := func(c byte) qrsymbol.Mode {
		switch {
		case isDigit(c):
			return qrsymbol.ModeNumeric
		case alphanumericCode(int(c)) != -1:
			return qrsymbol.ModeAlphanumeric
		default:
			return qrsymbol.ModeByte
		}
	}

	var segments []Segment
	start := 0
	current := classOf(content[0])
	for i := 1; i < len(content); i++ {
		class := classOf(content[i])
		if class == current {
			continue
		}
		segments = append(segments, newSegment(current, content[start:i]))
		start, current = i, class
	}
	segments = append(segments, newSegment(current, content[start:]))
	return segments, nil
}

func newSegment(mode qrsymbol.Mode, data string) Segment {
	return Segment{Mode: mode, Data: []byte(data), NumChars: len(data)}
}

// forcedSegment validates content against a caller-forced mode and returns
// it as a single segment.
func forcedSegment(content string, mode qrsymbol.Mode) ([]Segment, error) {
	switch mode {
	case qrsymbol.ModeNumeric:
		for _, r := range content {
			if r < '0' || r > '9' {
				return nil, &qrsymbol.UnsupportedError{Mode: mode, Rune: r}
			}
		}
	case qrsymbol.ModeAlphanumeric:
		for _, r := range content {
			if alphanumericCode(int(r)) == -1 {
				return nil, &qrsymbol.UnsupportedError{Mode: mode, Rune: r}
			}
		}
	case qrsymbol.ModeByte:
		// Any byte sequence is valid.
	case qrsymbol.ModeKanji:
		return kanjiSegment(content)
	default:
		return nil, qrsymbol.ErrMode
	}
	return []Segment{newSegment(mode, content)}, nil
}

// kanjiSegment transforms UTF-8 content to Shift JIS and verifies every
// character lands in the double-byte ranges Kanji mode can pack.
func kanjiSegment(content string) ([]Segment, error) {
	enc := japanese.ShiftJIS.NewEncoder()
	data := make([]byte, 0, 2*len(content)/3)
	buf := make([]byte, 4)
	for _, r := range content {
		nDst, _, err := enc.Transform(buf, []byte(string(r)), true)
		enc.Reset()
		if err != nil || nDst != 2 {
			return nil, &qrsymbol.UnsupportedError{Mode: qrsymbol.ModeKanji, Rune: r}
		}
		value := int(buf[0])<<8 | int(buf[1])
		if !(value >= 0x8140 && value <= 0x9FFC) && !(value >= 0xE040 && value <= 0xEBBF) {
			return nil, &qrsymbol.UnsupportedError{Mode: qrsymbol.ModeKanji, Rune: r}
		}
		data = append(data, buf[0], buf[1])
	}
	return []Segment{{Mode: qrsymbol.ModeKanji, Data: data, NumChars: len(data) / 2}}, nil
}

// eciSegment returns the designator segment prepended before data segments.
func eciSegment(value int) Segment {
	return Segment{Mode: qrsymbol.ModeECI, ECIValue: value}
}

// payloadBits returns the encoded payload length of a segment in bits,
// excluding the mode and character count indicators.
func payloadBits(s Segment) int {
	switch s.Mode {
	case qrsymbol.ModeNumeric:
		bits := 10 * (s.NumChars / 3)
		switch s.NumChars % 3 {
		case 1:
			bits += 4
		case 2:
			bits += 7
		}
		return bits
	case qrsymbol.ModeAlphanumeric:
		return 11*(s.NumChars/2) + 6*(s.NumChars%2)
	case qrsymbol.ModeByte:
		return 8 * s.NumChars
	case qrsymbol.ModeKanji:
		return 13 * s.NumChars
	case qrsymbol.ModeECI:
		switch {
		case s.ECIValue < 1<<7:
			return 8
		case s.ECIValue < 1<<14:
			return 16
		default:
			return 24
		}
	}
	return 0
}

// headerBits returns the mode indicator plus character count indicator width
// for a segment at the given version. ECI segments carry no count.
func headerBits(s Segment, version int) int {
	if s.Mode == qrsymbol.ModeECI {
		return 4
	}
	return 4 + s.Mode.CharacterCountBits(version)
}

// totalBits returns the full encoded length of the segment sequence at the
// given version, before terminator and padding.
func totalBits(segments []Segment, version int) int {
	total := 0
	for _, s := range segments {
		total += headerBits(s, version) + payloadBits(s)
	}
	return total
}

// dominantMode returns the mode carrying the most payload bits, for error
// reporting. ECI segments never dominate.
func dominantMode(segments []Segment) qrsymbol.Mode {
	mode := qrsymbol.ModeByte
	best := -1
	for _, s := range segments {
		if s.Mode == qrsymbol.ModeECI {
			continue
		}
		if bits := payloadBits(s); bits > best {
			best = bits
			mode = s.Mode
		}
	}
	return mode
}

// chooseVersion scans versions 1-40 ascending and returns the smallest whose
// data capacity at the given level holds the segment sequence. The character
// count indicator widths are recomputed per version class on each step.
func chooseVersion(segments []Segment, level qrsymbol.Level) (*qrsymbol.Version, error) {
	for number := 1; number <= 40; number++ {
		version, _ := qrsymbol.VersionForNumber(number)
		if totalBits(segments, number) <= version.DataCodewords(level)*8 {
			return version, nil
		}
	}
	max, _ := qrsymbol.VersionForNumber(40)
	return nil, &qrsymbol.CapacityError{
		Level:    level,
		Mode:     dominantMode(segments),
		Version:  40,
		MaxBytes: max.DataCodewords(level),
	}
}

// checkVersion validates that the segment sequence fits a caller-requested
// version at the given level.
func checkVersion(segments []Segment, level qrsymbol.Level, version *qrsymbol.Version) error {
	if totalBits(segments, version.Number) > version.DataCodewords(level)*8 {
		return &qrsymbol.CapacityError{
			Level:    level,
			Mode:     dominantMode(segments),
			Version:  version.Number,
			MaxBytes: version.DataCodewords(level),
		}
	}
	return nil
}
