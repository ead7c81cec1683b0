package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/fwver/internal/cli"
	"github.com/macropower/fwver/pkg/fwerrors"
)

const (
	testMetadata = `{
  "name": "sensor",
  "version": 3
}`

	testSource = `#include <Arduino.h>

const int FIRMWARE_VERSION = 3;

void setup() {}
`
)

// newProject writes a firmware project into a temporary directory and
// returns its path.
func newProject(t *testing.T, meta, src string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))

	if meta != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "firmware.json"), []byte(meta), 0o600))
	}

	if src != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.cpp"), []byte(src), 0o600))
	}

	return dir
}

func readProject(t *testing.T, dir string) (string, string) {
	t.Helper()

	meta, err := os.ReadFile(filepath.Join(dir, "firmware.json"))
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "src", "main.cpp"))
	require.NoError(t, err)

	return string(meta), string(src)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_fwver", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCmdArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr   error
		logLevel  string
		logFormat string
	}{
		"default config": {
			logLevel:  "warn",
			logFormat: "text",
		},
		"json format": {
			logLevel:  "info",
			logFormat: "json",
		},
		"logfmt format": {
			logLevel:  "debug",
			logFormat: "logfmt",
		},
		"invalid log level": {
			logLevel:  "invalid",
			logFormat: "text",
			wantErr:   cli.ErrLogHandlerFailed,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "invalid",
			wantErr:   cli.ErrLogHandlerFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := execute(t,
				"--log_level", tc.logLevel,
				"--log_format", tc.logFormat,
				"--dir", t.TempDir(),
				"version",
			)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	dir := newProject(t, testMetadata, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "firmware.ino"),
		[]byte("const int APP_VERSION = 1;\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fwver.yaml"),
		[]byte("source_file: firmware.ino\nconstant: APP_VERSION\nstrict: true\n"), 0o600))

	_, _, err := execute(t, "set", "2", "7", "-C", dir)
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "firmware.ino"))
	require.NoError(t, err)
	assert.Equal(t, "const int APP_VERSION = 207;\n", string(src))

	// Flags take precedence over the config file.
	_, _, err = execute(t, "set", "2", "8", "-C", dir, "--constant", "OTHER_VERSION")
	require.ErrorIs(t, err, fwerrors.ErrPatternNotFound)
}

func TestExplicitConfigFile(t *testing.T) {
	dir := newProject(t, testMetadata, testSource)

	cfg := filepath.Join(t.TempDir(), "fwver.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("dry_run: true\n"), 0o600))

	stdout, _, err := execute(t, "set", "9", "14", "-C", dir, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Would update")

	meta, src := readProject(t, dir)
	assert.Equal(t, testMetadata, meta)
	assert.Equal(t, testSource, src)

	_, _, err = execute(t, "set", "9", "14", "-C", dir, "--config", filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, fwerrors.ErrInvalidArguments)
}

func TestGitRoot(t *testing.T) {
	dir := newProject(t, testMetadata, testSource)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref: refs/heads/main\n"), 0o600))

	_, _, err := execute(t, "set", "3", "1", "-C", filepath.Join(dir, "src"), "--git_root")
	require.NoError(t, err)

	_, src := readProject(t, dir)
	assert.Contains(t, src, "const int FIRMWARE_VERSION = 301;")
}
