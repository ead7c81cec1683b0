package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/fwver/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		want charmlog.Level
	}{
		"debug":   {want: charmlog.DebugLevel},
		"trace":   {want: charmlog.DebugLevel},
		"INFO":    {want: charmlog.InfoLevel},
		"warn":    {want: charmlog.WarnLevel},
		"warning": {want: charmlog.WarnLevel},
		"error":   {want: charmlog.ErrorLevel},
		"invalid": {err: log.ErrInvalidLevel},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(name)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "info", "json")
		require.NoError(t, err)

		logger := slog.New(h)
		logger.Debug("hidden")
		logger.Info("wrote metadata", slog.Int("version", 914))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "wrote metadata", got["msg"])
		assert.Contains(t, got, "version")
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "warn", "text")
		require.NoError(t, err)

		logger := slog.New(h)
		logger.Info("hidden")
		logger.Warn("version constant not found")

		assert.Contains(t, buf.String(), "version constant not found")
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandler(&bytes.Buffer{}, "warn", "xml")
		require.ErrorIs(t, err, log.ErrInvalidFormat)
	})
}
