package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mikrus-labs/mikrus/internal/branding"
	"github.com/mikrus-labs/mikrus/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionCmd(build buildinfo.Info) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			info := build.WithLocalCommit()

			if short {
				fmt.Fprintln(out, info.Version)
				return nil
			}

			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", branding.CLIName(), info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	cmd.MarkFlagsMutuallyExclusive("short", "json")
	return cmd
}
