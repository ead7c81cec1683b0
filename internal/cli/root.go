package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/macropower/fwver/pkg/cppconst"
	"github.com/macropower/fwver/pkg/log"
	"github.com/macropower/fwver/pkg/updater"
)

const envPrefix = "FWVER"

var ErrLogHandlerFailed = errors.New("log handler failed")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	flags := cmd.PersistentFlags()
	flags.String(keyLogLevel, "warn", "Set the log level (debug, info, warn, error)")
	flags.String(keyLogFormat, "text", "Set the log format (text, logfmt, json)")
	flags.StringP(keyDir, "C", ".", "Project directory the firmware files are relative to")
	flags.Bool(keyGitRoot, false, "Use the enclosing git repository root as the project directory")
	flags.String(keyMetadataFile, updater.DefaultMetadataFile, "Firmware metadata JSON file")
	flags.String(keySourceFile, updater.DefaultSourceFile, "Source file declaring the version constant")
	flags.String(keyConstant, cppconst.DefaultIdentifier, "Name of the version constant in the source file")
	flags.Bool(keyStrict, false, "Fail when the version constant is not found in the source file")
	flags.Bool(keyDryRun, false, "Show what would change without writing any file")
	flags.String(keyConfig, "", "Config file (default is .fwver.yaml in the project directory)")

	if err := cmd.MarkPersistentFlagDirname(keyDir); err != nil {
		panic(err)
	}

	if err := cmd.MarkPersistentFlagFilename(keyConfig, "yaml", "yml", "json", "toml"); err != nil {
		panic(err)
	}

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandler(
			cc.ErrOrStderr(),
			v.GetString(keyLogLevel),
			v.GetString(keyLogFormat),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		if err := readConfigFile(v); err != nil {
			return err
		}

		slog.Debug("ready to go", slog.String("config", v.ConfigFileUsed()))

		return nil
	}

	cmd.AddCommand(NewSetCmd(v))
	cmd.AddCommand(NewSetNumericCmd(v))
	cmd.AddCommand(NewShowCmd(v))
	cmd.AddCommand(NewCheckCmd(v))
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
