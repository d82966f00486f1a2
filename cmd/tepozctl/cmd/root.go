package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"tepoz_directory/internal/app"
	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

type options struct {
	lang    string
	asJSON  bool
	queries *app.QueryService
}

func (o *options) locale() domain.Locale { return domain.ParseLocale(o.lang) }

func newRootCmd() *cobra.Command {
	o := &options{queries: app.NewQueryService(catalog.Default(), nil, time.Minute)}

	root := &cobra.Command{
		Use:           "tepozctl",
		Short:         "tepozctl: browse the Tepoztlán directory",
		Long:          "List, filter and inspect cafés, restaurants, stays and attractions in Spanish or English.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&o.lang, "lang", string(domain.DefaultLocale), "display language (es|en)")
	root.PersistentFlags().BoolVar(&o.asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(newKindsCmd(o))
	root.AddCommand(newListCmd(o))
	root.AddCommand(newShowCmd(o))
	root.AddCommand(newPageCmd(o))
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
