package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/macropower/fwver/pkg/fileutil"
	"github.com/macropower/fwver/pkg/fwerrors"
	"github.com/macropower/fwver/pkg/fwversion"
)

const (
	// VersionField holds the numeric firmware version.
	VersionField = "version"

	// VersionStringField holds the "major.minor" firmware version.
	VersionStringField = "version_string"

	indent = "  "
)

var errNotObject = errors.New("document is not a JSON object")

// Document is a firmware metadata document.
type Document struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// Load reads and parses the metadata document at path.
func Load(path string) (*Document, error) {
	data, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return doc, nil
}

// Parse parses a metadata document. The document must be a JSON object.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: malformed JSON", fwerrors.ErrInvalidFormat)
	}

	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w: %w", fwerrors.ErrInvalidFormat, errNotObject)
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, fields); err != nil {
		return nil, fmt.Errorf("%w: %w", fwerrors.ErrInvalidFormat, err)
	}

	return &Document{fields: fields}, nil
}

// SetVersion writes the numeric version, and the version string when v was
// built from a major/minor pair. An existing version string is otherwise
// left as it is.
func (d *Document) SetVersion(v fwversion.Version) error {
	if err := d.set(VersionField, v.Numeric); err != nil {
		return err
	}

	if v.HasText() {
		return d.set(VersionStringField, v.Text)
	}

	return nil
}

// Version returns the numeric version, if the field is present.
func (d *Document) Version() (int, bool, error) {
	var n int

	ok, err := d.get(VersionField, &n)

	return n, ok, err
}

// VersionString returns the "major.minor" version, if the field is present.
func (d *Document) VersionString() (string, bool, error) {
	var s string

	ok, err := d.get(VersionStringField, &s)

	return s, ok, err
}

// Keys returns the top-level field names in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.fields.Len())
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Bytes renders the document with two-space indentation and a trailing
// newline. Field order and field values other than the ones set through
// [Document.SetVersion] are kept as they were parsed.
func (d *Document) Bytes() ([]byte, error) {
	var compact bytes.Buffer

	compact.WriteByte('{')

	for pair, first := d.fields.Oldest(), true; pair != nil; pair, first = pair.Next(), false {
		if !first {
			compact.WriteByte(',')
		}

		key, err := marshal(pair.Key)
		if err != nil {
			return nil, err
		}

		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(pair.Value)
	}

	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("%w: %w", fwerrors.ErrInvalidFormat, err)
	}

	out.WriteByte('\n')

	return out.Bytes(), nil
}

// Store writes the document to path, replacing its contents.
func (d *Document) Store(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("render %q: %w", path, err)
	}

	return fileutil.WriteFile(path, data)
}

func (d *Document) set(key string, value any) error {
	raw, err := marshal(value)
	if err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}

	d.fields.Set(key, raw)

	return nil
}

func (d *Document) get(key string, dst any) (bool, error) {
	raw, ok := d.fields.Get(key)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("%w: field %q: %w", fwerrors.ErrInvalidFormat, key, err)
	}

	return true, nil
}

// marshal encodes v without HTML escaping, matching what a plain JSON
// writer would produce for firmware metadata.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
