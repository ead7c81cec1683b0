package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/macropower/fwver/pkg/fwerrors"
)

func TestShowCmd(t *testing.T) {
	dir := newProject(t, `{"version": 914, "version_string": "9.14"}`,
		"const int FIRMWARE_VERSION = 914;\n")

	t.Run("text", func(t *testing.T) {
		stdout, _, err := execute(t, "show", "-C", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "version:   9.14\n")
		assert.Contains(t, stdout, "version=914 version_string=9.14\n")
		assert.Contains(t, stdout, "FIRMWARE_VERSION=914\n")
		assert.Contains(t, stdout, "status:    in sync\n")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "show", "-C", dir, "-o", "json")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.InDelta(t, 914, got["metadata_version"], 0)
		assert.InDelta(t, 914, got["source_version"], 0)
		assert.Equal(t, "9.14", got["metadata_version_string"])
		assert.Equal(t, true, got["in_sync"])
	})

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := execute(t, "show", "-C", dir, "--output", "yaml")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, "FIRMWARE_VERSION", got["constant"])
		assert.Equal(t, "9.14", got["display"])
	})

	t.Run("unknown output", func(t *testing.T) {
		_, _, err := execute(t, "show", "-C", dir, "-o", "xml")
		require.ErrorIs(t, err, fwerrors.ErrInvalidArguments)
	})
}

func TestShowCmdMissing(t *testing.T) {
	dir := newProject(t, `{"name": "sensor"}`, "void setup() {}\n")

	stdout, _, err := execute(t, "show", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "version:   -\n")
	assert.Contains(t, stdout, "FIRMWARE_VERSION=-\n")
	assert.Contains(t, stdout, "status:    out of sync\n")
}

func TestCheckCmd(t *testing.T) {
	dir := newProject(t, testMetadata, testSource)

	stdout, _, err := execute(t, "check", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "agree on version 0.3")

	_, _, err = execute(t, "set-numeric", "7", "-C", dir, "--source_file", "missing.cpp")
	require.ErrorIs(t, err, fwerrors.ErrReadFile)

	dir = newProject(t, `{"version": 914}`, testSource)

	_, _, err = execute(t, "check", "-C", dir)
	require.ErrorIs(t, err, fwerrors.ErrVersionMismatch)

	_, _, err = execute(t, "set", "9", "14", "-C", dir)
	require.NoError(t, err)

	_, _, err = execute(t, "check", "-C", dir)
	require.NoError(t, err)
}

func TestSchemaCmd(t *testing.T) {
	stdout, _, err := execute(t, "schema", "-C", t.TempDir())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "Firmware metadata", got["title"])
	assert.Contains(t, stdout, `"version_string"`)
}
