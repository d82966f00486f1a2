package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

func newKindsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List directory sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.asJSON {
				return writeJSON(cmd.OutOrStdout(), domain.Kinds)
			}
			rows := make([][]string, 0, len(domain.Kinds))
			for _, k := range domain.Kinds {
				rows = append(rows, []string{string(k), fmt.Sprint(len(catalog.Default().All(k)))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"kind", "records"}, rows))
			return nil
		},
	}
}
