package updater

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/macropower/fwver/pkg/cppconst"
	"github.com/macropower/fwver/pkg/fileutil"
	"github.com/macropower/fwver/pkg/fwerrors"
	"github.com/macropower/fwver/pkg/fwversion"
	"github.com/macropower/fwver/pkg/metadata"
)

const (
	DefaultMetadataFile = "firmware.json"
	DefaultSourceFile   = "src/main.cpp"
)

type Updater struct {
	patcher      *cppconst.Patcher
	MetadataFile string
	SourceFile   string
	Identifier   string
	Strict       bool
	DryRun       bool
}

type Opts func(*Updater)

// WithIdentifier sets the name of the source constant to rewrite.
func WithIdentifier(identifier string) Opts {
	return func(u *Updater) {
		u.Identifier = identifier
	}
}

// WithStrict makes a source file without the version constant an error.
func WithStrict(strict bool) Opts {
	return func(u *Updater) {
		u.Strict = strict
	}
}

// WithDryRun computes all changes without writing any file.
func WithDryRun(dryRun bool) Opts {
	return func(u *Updater) {
		u.DryRun = dryRun
	}
}

func New(metadataFile, sourceFile string, opts ...Opts) (*Updater, error) {
	u := &Updater{
		MetadataFile: metadataFile,
		SourceFile:   sourceFile,
		Identifier:   cppconst.DefaultIdentifier,
	}
	for _, opt := range opts {
		opt(u)
	}

	p, err := cppconst.New(u.Identifier)
	if err != nil {
		return nil, fmt.Errorf("source constant: %w", err)
	}

	u.patcher = p

	return u, nil
}

// Result describes a completed (or, in dry run mode, planned) update.
type Result struct {
	MetadataFile    string
	SourceFile      string
	Constant        string
	Version         fwversion.Version
	Replacements    int
	MetadataChanged bool
	SourceChanged   bool
	DryRun          bool
}

// SetVersion updates both files from a major and minor version. The metadata
// gets both the numeric version and the "major.minor" string.
func (u *Updater) SetVersion(major, minor string) (*Result, error) {
	v, err := fwversion.FromParts(major, minor)
	if err != nil {
		return nil, err
	}

	return u.Apply(v)
}

// SetNumericVersion updates both files from an encoded version number. Any
// existing version string in the metadata is left as it is.
func (u *Updater) SetNumericVersion(version string) (*Result, error) {
	v, err := fwversion.FromNumeric(version)
	if err != nil {
		return nil, err
	}

	return u.Apply(v)
}

// Apply writes v to the metadata document and the source constant.
func (u *Updater) Apply(v fwversion.Version) (*Result, error) {
	slog.Debug("loading metadata", slog.String("path", u.MetadataFile))

	metaBefore, err := fileutil.ReadFile(u.MetadataFile)
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}

	doc, err := metadata.Parse(metaBefore)
	if err != nil {
		return nil, fmt.Errorf("load metadata %q: %w", u.MetadataFile, err)
	}

	slog.Debug("loading source", slog.String("path", u.SourceFile))

	src, err := fileutil.ReadFile(u.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	if err := doc.SetVersion(v); err != nil {
		return nil, fmt.Errorf("update metadata: %w", err)
	}

	metaAfter, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("render metadata: %w", err)
	}

	patched, n := u.patcher.Patch(src, v.Numeric)
	if n == 0 {
		if u.Strict {
			return nil, fmt.Errorf("%w: %s in %q", fwerrors.ErrPatternNotFound, u.patcher.Identifier(), u.SourceFile)
		}

		slog.Warn("version constant not found, source left unchanged",
			slog.String("constant", u.patcher.Identifier()),
			slog.String("path", u.SourceFile),
		)
	} else if n > 1 {
		slog.Warn("version constant declared more than once, all declarations updated",
			slog.String("constant", u.patcher.Identifier()),
			slog.String("path", u.SourceFile),
			slog.Int("count", n),
		)
	}

	res := &Result{
		MetadataFile:    u.MetadataFile,
		SourceFile:      u.SourceFile,
		Constant:        u.patcher.Identifier(),
		Version:         v,
		Replacements:    n,
		MetadataChanged: !bytes.Equal(metaBefore, metaAfter),
		SourceChanged:   !bytes.Equal(src, patched),
		DryRun:          u.DryRun,
	}

	if u.DryRun {
		slog.Info("dry run, no files written")

		return res, nil
	}

	if err := fileutil.WriteFile(u.MetadataFile, metaAfter); err != nil {
		return nil, fmt.Errorf("store metadata: %w", err)
	}

	slog.Debug("wrote metadata", slog.String("path", u.MetadataFile), slog.Int("version", v.Numeric))

	if err := fileutil.WriteFile(u.SourceFile, patched); err != nil {
		return nil, fmt.Errorf("store source: %w", err)
	}

	slog.Debug("wrote source", slog.String("path", u.SourceFile), slog.Int("replacements", n))

	return res, nil
}
