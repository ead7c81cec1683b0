package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/fwver/pkg/metadata"
)

// NewSchemaCmd returns the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the firmware metadata file",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(metadata.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			fmt.Fprintln(cc.OutOrStdout(), string(data))

			return nil
		},
	}
}
