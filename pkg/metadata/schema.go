package metadata

import (
	"github.com/invopop/jsonschema"
)

// Record describes the metadata fields managed by fwver. Other fields may be
// present and are preserved.
type Record struct {
	// Version is the numeric firmware version, major*100 + minor.
	Version int `json:"version" jsonschema:"title=Firmware version,minimum=0"`

	// VersionString is the human-readable major.minor version.
	VersionString string `json:"version_string,omitempty" jsonschema:"title=Firmware version string,pattern=^[0-9]+[.][0-9]+$"`
}

// Schema returns the JSON schema of a firmware metadata document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	s := r.Reflect(&Record{})
	s.Title = "Firmware metadata"
	s.Description = "Firmware metadata document, usually firmware.json."

	return s
}
