package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/mikrus-labs/mikrus/internal/config"
	"github.com/mikrus-labs/mikrus/internal/templates"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := templates.Default(appFs, config.TemplatesDir()).List()
			if err != nil {
				return fmt.Errorf("listing templates: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEXTENSION\tSOURCE\tDESCRIPTION")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Key, t.Extension, t.Source, t.Description)
			}
			return w.Flush()
		},
	}
}
