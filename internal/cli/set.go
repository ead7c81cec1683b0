package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/macropower/fwver/pkg/fwerrors"
	"github.com/macropower/fwver/pkg/fwversion"
	"github.com/macropower/fwver/pkg/updater"
)

const (
	setDesc = `Set the firmware version from a major and minor version.

The numeric version is major*100 + minor, so the minor version must be between
0 and 99. The metadata file receives both "version" and "version_string", and
the version constant in the source file is set to the numeric version.
`
	setExample = `  # Set version 9.14 (numeric 914)
  fwver set 9 14

  # Preview the change without writing
  fwver set 9 14 --dry_run

  # Use a project in another directory
  fwver set 1 5 -C ./firmware
`

	setNumericDesc = `Set the numeric firmware version directly.

Only "version" is written to the metadata file; an existing "version_string"
is left as it is. The version constant in the source file is set to the same
number.
`
	setNumericExample = `  # Set numeric version 914
  fwver set-numeric 914
`
)

// NewSetCmd returns the set command.
func NewSetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "set <major_version> <minor_version>",
		Short:   "Set the firmware version from a major and minor version",
		Long:    setDesc,
		Example: setExample,
		Args:    exactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			fv, err := fwversion.FromParts(args[0], args[1])
			if err != nil {
				return fmt.Errorf("invalid version: %w", err)
			}

			return runSet(cc, v, fv)
		},
	}
}

// NewSetNumericCmd returns the set-numeric command.
func NewSetNumericCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "set-numeric <version>",
		Short:   "Set the numeric firmware version directly",
		Long:    setNumericDesc,
		Example: setNumericExample,
		Args:    exactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			fv, err := fwversion.FromNumeric(args[0])
			if err != nil {
				return fmt.Errorf("invalid version: %w", err)
			}

			return runSet(cc, v, fv)
		},
	}
}

func runSet(cc *cobra.Command, v *viper.Viper, fv fwversion.Version) error {
	cfg, err := LoadConfig(v)
	if err != nil {
		return err
	}

	u, err := cfg.NewUpdater()
	if err != nil {
		return err
	}

	p := newPrinter(cc.OutOrStdout())
	p.line(infoMark, "Setting version to %s (numeric: %d)", fv.Display(), fv.Numeric)

	res, err := u.Apply(fv)
	if err != nil {
		return err
	}

	printResult(p, res)

	return nil
}

func printResult(p *printer, res *updater.Result) {
	meta, src := relPath(res.MetadataFile), relPath(res.SourceFile)

	if res.Replacements == 0 {
		p.line(warnMark, "%s not found in %s, source left unchanged", res.Constant, src)
	}

	if res.DryRun {
		p.line(infoMark, "Would update %s and %s with version %s", meta, src, res.Version.Display())

		return
	}

	p.line(checkMark, "Updated %s and %s with version %s", meta, src, res.Version.Display())
}

// exactArgs is [cobra.ExactArgs], but prints usage on failure even though
// the root command silences it.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cc *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}

		cc.PrintErrln(cc.UsageString())

		return fmt.Errorf("%w: %s accepts %d arg(s), received %d",
			fwerrors.ErrInvalidArguments, cc.CommandPath(), n, len(args))
	}
}
