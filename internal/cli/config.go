package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/macropower/fwver/pkg/fwerrors"
	"github.com/macropower/fwver/pkg/paths"
	"github.com/macropower/fwver/pkg/updater"
)

const (
	keyLogLevel     = "log_level"
	keyLogFormat    = "log_format"
	keyDir          = "dir"
	keyGitRoot      = "git_root"
	keyMetadataFile = "metadata_file"
	keySourceFile   = "source_file"
	keyConstant     = "constant"
	keyStrict       = "strict"
	keyDryRun       = "dry_run"
	keyConfig       = "config"

	configName = ".fwver"
)

// Config is the resolved configuration for a single invocation. Values come
// from flags, then FWVER_* environment variables, then the config file.
type Config struct {
	Dir          string
	MetadataFile string
	SourceFile   string
	Constant     string
	GitRoot      bool
	Strict       bool
	DryRun       bool
}

// LoadConfig reads the configuration bound to v.
func LoadConfig(v *viper.Viper) (*Config, error) {
	c := &Config{
		Dir:          v.GetString(keyDir),
		GitRoot:      v.GetBool(keyGitRoot),
		MetadataFile: v.GetString(keyMetadataFile),
		SourceFile:   v.GetString(keySourceFile),
		Constant:     v.GetString(keyConstant),
		Strict:       v.GetBool(keyStrict),
		DryRun:       v.GetBool(keyDryRun),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.MetadataFile == "" {
		return fmt.Errorf("%w: %s cannot be empty", fwerrors.ErrInvalidArguments, keyMetadataFile)
	}

	if c.SourceFile == "" {
		return fmt.Errorf("%w: %s cannot be empty", fwerrors.ErrInvalidArguments, keySourceFile)
	}

	return nil
}

// NewUpdater returns an [updater.Updater] for the configured project.
func (c *Config) NewUpdater() (*updater.Updater, error) {
	dir, err := paths.ResolveDir(c.Dir, c.GitRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory: %w", err)
	}

	slog.Debug("resolved project directory", slog.String("path", dir))

	u, err := updater.New(
		paths.Join(dir, c.MetadataFile),
		paths.Join(dir, c.SourceFile),
		updater.WithIdentifier(c.Constant),
		updater.WithStrict(c.Strict),
		updater.WithDryRun(c.DryRun),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fwerrors.ErrInvalidArguments, err)
	}

	return u, nil
}

func readConfigFile(v *viper.Viper) error {
	if f := v.GetString(keyConfig); f != "" {
		v.SetConfigFile(f)
	} else {
		dir, err := paths.ResolveDir(v.GetString(keyDir), v.GetBool(keyGitRoot))
		if err != nil {
			return fmt.Errorf("resolve project directory: %w", err)
		}

		v.SetConfigName(configName)
		v.AddConfigPath(dir)
	}

	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: read config: %w", fwerrors.ErrInvalidArguments, err)
	}

	return nil
}
