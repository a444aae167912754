package qrsymbol

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when content exceeds the codeword capacity of
	// the chosen (or largest) symbol version at the requested level.
	ErrCapacity = errors.New("qrsymbol: content exceeds symbol capacity")

	// ErrVersion is returned for a requested version outside 1-40.
	ErrVersion = errors.New("qrsymbol: invalid version number")

	// ErrUnsupported is returned when content contains characters outside
	// the character set of a caller-forced encoding mode.
	ErrUnsupported = errors.New("qrsymbol: character not encodable in mode")

	// ErrLevel is returned for an invalid error correction level value.
	ErrLevel = errors.New("qrsymbol: invalid error correction level")

	// ErrMode is returned for an invalid mode indicator value.
	ErrMode = errors.New("qrsymbol: invalid mode")

	// ErrMask is returned for a forced mask pattern outside 0-7.
	ErrMask = errors.New("qrsymbol: invalid mask pattern")

	// ErrPack is returned for a malformed packed symbol stream.
	ErrPack = errors.New("qrsymbol: malformed packed symbol")
)

// CapacityError reports that content does not fit a symbol. Version is the
// requested version, or 40 when automatic selection exhausted all versions.
// MaxBytes is the data codeword capacity of that version at Level.
type CapacityError struct {
	Level    Level
	Mode     Mode
	Version  int
	MaxBytes int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: level %v, mode %v, version %d holds at most %d bytes",
		ErrCapacity, e.Level, e.Mode, e.Version, e.MaxBytes)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// VersionError reports a caller-supplied version outside 1-40.
type VersionError struct {
	Requested int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%v: %d (want 1-40)", ErrVersion, e.Requested)
}

func (e *VersionError) Unwrap() error { return ErrVersion }

// UnsupportedError reports a character that the forced mode cannot encode.
type UnsupportedError struct {
	Mode Mode
	Rune rune
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %q in mode %v", ErrUnsupported, e.Rune, e.Mode)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
