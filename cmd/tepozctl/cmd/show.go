package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tepoz_directory/internal/domain"
)

func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			v, err := o.queries.GetBusiness(cmd.Context(), kind, args[1], o.locale())
			if err != nil {
				return fmt.Errorf("%s/%s: %w", kind, args[1], err)
			}
			if o.asJSON {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderDetail(v))
			return nil
		},
	}
}
