package updater

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/fwver/pkg/fileutil"
	"github.com/macropower/fwver/pkg/fwerrors"
	"github.com/macropower/fwver/pkg/fwversion"
	"github.com/macropower/fwver/pkg/metadata"
)

// State is the version currently recorded in the metadata document and the
// source file. Missing values are nil.
type State struct {
	MetadataVersion       *int    `json:"metadata_version,omitempty"`
	MetadataVersionString *string `json:"metadata_version_string,omitempty"`
	SourceVersion         *int    `json:"source_version,omitempty"`
	MetadataFile          string  `json:"metadata_file"`
	SourceFile            string  `json:"source_file"`
	Constant              string  `json:"constant"`
	Display               string  `json:"display,omitempty"`
	InSync                bool    `json:"in_sync"`
}

// Inspect reads both files without modifying them.
func (u *Updater) Inspect() (*State, error) {
	doc, err := metadata.Load(u.MetadataFile)
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}

	src, err := fileutil.ReadFile(u.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	s := &State{
		MetadataFile: u.MetadataFile,
		SourceFile:   u.SourceFile,
		Constant:     u.patcher.Identifier(),
	}

	if n, ok, err := doc.Version(); err != nil {
		return nil, fmt.Errorf("%q: %w", u.MetadataFile, err)
	} else if ok {
		s.MetadataVersion = &n
	}

	if str, ok, err := doc.VersionString(); err != nil {
		return nil, fmt.Errorf("%q: %w", u.MetadataFile, err)
	} else if ok {
		s.MetadataVersionString = &str
	}

	if n, ok, err := u.patcher.Find(src); err != nil {
		return nil, fmt.Errorf("%q: %w", u.SourceFile, err)
	} else if ok {
		s.SourceVersion = &n
	}

	switch {
	case s.MetadataVersionString != nil:
		s.Display = *s.MetadataVersionString
	case s.MetadataVersion != nil:
		s.Display = fwversion.Version{Numeric: *s.MetadataVersion}.Display()
	case s.SourceVersion != nil:
		s.Display = fwversion.Version{Numeric: *s.SourceVersion}.Display()
	}

	s.InSync = s.Check() == nil

	return s, nil
}

// Check returns an error describing every disagreement between the metadata
// document and the source file.
func (s *State) Check() error {
	var merr error

	if s.MetadataVersion == nil {
		merr = multierror.Append(merr, fmt.Errorf("%w: %q has no %q field",
			fwerrors.ErrVersionMismatch, s.MetadataFile, metadata.VersionField))
	}

	if s.SourceVersion == nil {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s in %q",
			fwerrors.ErrPatternNotFound, s.Constant, s.SourceFile))
	}

	if s.MetadataVersion != nil && s.SourceVersion != nil && *s.MetadataVersion != *s.SourceVersion {
		merr = multierror.Append(merr, fmt.Errorf("%w: %q has %d, %q has %d",
			fwerrors.ErrVersionMismatch, s.MetadataFile, *s.MetadataVersion, s.SourceFile, *s.SourceVersion))
	}

	if s.MetadataVersionString != nil && s.MetadataVersion != nil {
		v, err := fwversion.Parse(*s.MetadataVersionString)
		switch {
		case err != nil:
			merr = multierror.Append(merr, fmt.Errorf("%w: %q %s: %w",
				fwerrors.ErrVersionMismatch, s.MetadataFile, metadata.VersionStringField, err))
		case v.Numeric != *s.MetadataVersion:
			merr = multierror.Append(merr, fmt.Errorf("%w: %q %s %q encodes %d, not %d",
				fwerrors.ErrVersionMismatch, s.MetadataFile, metadata.VersionStringField,
				*s.MetadataVersionString, v.Numeric, *s.MetadataVersion))
		}
	}

	return merr
}
