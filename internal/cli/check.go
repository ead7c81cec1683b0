package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCheckCmd returns the check command.
func NewCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the metadata file and source file agree on the version",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}

			u, err := cfg.NewUpdater()
			if err != nil {
				return err
			}

			state, err := u.Inspect()
			if err != nil {
				return err
			}

			if err := state.Check(); err != nil {
				return err
			}

			newPrinter(cc.OutOrStdout()).line(checkMark, "%s and %s agree on version %s",
				relPath(state.MetadataFile), relPath(state.SourceFile), state.Display)

			return nil
		},
	}
}
