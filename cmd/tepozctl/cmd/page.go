package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tepoz_directory/internal/content"
)

func newPageCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:       "page <slug>",
		Short:     "Print an informational page",
		Long:      "Print one of the static pages: " + strings.Join(content.Slugs(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: content.Slugs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := content.Get(args[0], o.locale())
			if err != nil {
				return fmt.Errorf("page %q: %w", args[0], err)
			}
			if o.asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPage(p))
			return nil
		},
	}
}
