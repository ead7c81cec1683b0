package fwversion

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/fwver/pkg/fwerrors"
)

const (
	// MaxMinor is the largest minor version that fits the encoding.
	MaxMinor = 99

	base = MaxMinor + 1
)

// Version is a firmware version in its numeric form, plus the "major.minor"
// text it was built from when there was one.
type Version struct {
	// Text is the literal "major.minor" input. It is empty when the version
	// was given as a number.
	Text    string
	Numeric int
}

// FromParts builds a [Version] from a major and minor version. The text form
// keeps the inputs as written, so "09" and "05" give "09.05" and 905.
func FromParts(major, minor string) (Version, error) {
	var merr error

	maj, err := parseComponent("major", major)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	minr, err := parseComponent("minor", minor)
	if err != nil {
		merr = multierror.Append(merr, err)
	} else if minr > MaxMinor {
		merr = multierror.Append(merr, fmt.Errorf("%w: %d is greater than %d", fwerrors.ErrMinorOutOfRange, minr, MaxMinor))
	}

	if merr == nil && maj > (math.MaxInt-MaxMinor)/base {
		merr = multierror.Append(merr, fmt.Errorf("%w major %q: %w", fwerrors.ErrParseVersion, major, strconv.ErrRange))
	}

	if merr != nil {
		return Version{}, merr
	}

	return Version{
		Text:    major + "." + minor,
		Numeric: Encode(maj, minr),
	}, nil
}

// FromNumeric builds a [Version] from an already encoded number.
func FromNumeric(version string) (Version, error) {
	n, err := parseComponent("version", version)
	if err != nil {
		return Version{}, err
	}

	return Version{Numeric: n}, nil
}

// Parse reads a "major.minor" string, as stored in firmware metadata.
func Parse(s string) (Version, error) {
	major, minor, found := strings.Cut(s, ".")
	if !found {
		return Version{}, fmt.Errorf("%w %q: expected major.minor", fwerrors.ErrParseVersion, s)
	}

	return FromParts(major, minor)
}

// Encode returns the numeric form of a major/minor pair.
func Encode(major, minor int) int {
	return major*base + minor
}

// Decode splits a numeric version into its major and minor parts.
func Decode(n int) (int, int) {
	return n / base, n % base
}

// HasText reports whether the version was built from a major/minor pair.
func (v Version) HasText() bool {
	return v.Text != ""
}

// Display returns the text form when present, otherwise the decoded
// numeric form (905 displays as "9.5").
func (v Version) Display() string {
	if v.HasText() {
		return v.Text
	}

	major, minor := Decode(v.Numeric)

	return fmt.Sprintf("%d.%d", major, minor)
}

func parseComponent(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %s %q: %w", fwerrors.ErrParseVersion, name, s, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d", fwerrors.ErrNegativeVersion, name, n)
	}

	return n, nil
}
