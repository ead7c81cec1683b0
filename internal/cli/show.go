package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/macropower/fwver/pkg/fwerrors"
	"github.com/macropower/fwver/pkg/updater"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewShowCmd returns the show command.
func NewShowCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the firmware version recorded in the project",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			output, err := cc.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("%w: %w", fwerrors.ErrInvalidArguments, err)
			}

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

			return writeState(cc, state, output)
		},
	}

	cmd.Flags().StringP("output", "o", outputText, "Output format (text, json, yaml)")

	return cmd
}

func writeState(cc *cobra.Command, state *updater.State, output string) error {
	w := cc.OutOrStdout()

	switch output {
	case outputJSON:
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}

		fmt.Fprintln(w, string(data))
	case outputYAML:
		data, err := yaml.Marshal(state)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}

		fmt.Fprint(w, string(data))
	case outputText:
		status := "in sync"
		if !state.InSync {
			status = "out of sync"
		}

		fmt.Fprintf(w, "version:   %s\n", orDash(state.Display))
		fmt.Fprintf(w, "metadata:  %s version=%s version_string=%s\n",
			relPath(state.MetadataFile), intOrDash(state.MetadataVersion), strOrDash(state.MetadataVersionString))
		fmt.Fprintf(w, "source:    %s %s=%s\n",
			relPath(state.SourceFile), state.Constant, intOrDash(state.SourceVersion))
		fmt.Fprintf(w, "status:    %s\n", status)
	default:
		return fmt.Errorf("%w: unknown output format %q", fwerrors.ErrInvalidArguments, output)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func intOrDash(n *int) string {
	if n == nil {
		return "-"
	}

	return strconv.Itoa(*n)
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}

	return orDash(*s)
}
