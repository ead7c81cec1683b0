// Package cppconst rewrites an integer constant declared in C or C++ source,
// such as
//
//	const int FIRMWARE_VERSION = 914;
//
// Only the digits are replaced; everything else in the source is kept byte
// for byte.
package cppconst

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/iancoleman/strcase"

	"github.com/macropower/fwver/pkg/fwerrors"
)

// DefaultIdentifier is the constant rewritten when no other name is given.
const DefaultIdentifier = "FIRMWARE_VERSION"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Patcher finds and rewrites `const int <Identifier> = <digits>;`.
type Patcher struct {
	re         *regexp.Regexp
	identifier string
}

// New returns a [Patcher] for the given constant name. Names that are not
// valid C identifiers, like "firmware-version", are converted to
// SCREAMING_SNAKE_CASE first.
func New(identifier string) (*Patcher, error) {
	if identifier == "" {
		identifier = DefaultIdentifier
	}

	ident := identifier
	if !identRe.MatchString(ident) {
		ident = strcase.ToScreamingSnake(ident)
	}

	if !identRe.MatchString(ident) {
		return nil, fmt.Errorf("%w: %q", fwerrors.ErrInvalidIdentifier, identifier)
	}

	return &Patcher{
		identifier: ident,
		re:         regexp.MustCompile(`(const\s+int\s+` + regexp.QuoteMeta(ident) + `\s*=\s*)(\d+);`),
	}, nil
}

// Identifier returns the constant name the patcher matches.
func (p *Patcher) Identifier() string {
	return p.identifier
}

// Patch replaces the value of every matching declaration with n, and returns
// the patched source along with the number of replacements. When nothing
// matches, the source is returned unchanged.
func (p *Patcher) Patch(src []byte, n int) ([]byte, int) {
	count := p.Count(src)
	if count == 0 {
		return src, 0
	}

	return p.re.ReplaceAll(src, []byte("${1}"+strconv.Itoa(n)+";")), count
}

// Count returns the number of matching declarations in src.
func (p *Patcher) Count(src []byte) int {
	return len(p.re.FindAllIndex(src, -1))
}

// Find returns the value of the first matching declaration.
func (p *Patcher) Find(src []byte) (int, bool, error) {
	m := p.re.FindSubmatch(src)
	if m == nil {
		return 0, false, nil
	}

	n, err := strconv.Atoi(string(m[2]))
	if err != nil {
		return 0, true, fmt.Errorf("%w: %s value %q: %w", fwerrors.ErrInvalidFormat, p.identifier, m[2], err)
	}

	return n, true, nil
}
