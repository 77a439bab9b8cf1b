package cli

import (
	"fmt"
	"strings"

	"github.com/mikrus-labs/mikrus/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write mikrus configuration stored at ~/.mikrus/config.yaml.

Known keys: ` + strings.Join(config.Keys(), ", ") + `.
Every key can also be set through the environment, e.g. MIKRUS_API_URL.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if err := config.Set(key, value); err != nil {
					return fmt.Errorf("setting config key %q: %w", key, err)
				}
				printSuccess(cmd.OutOrStdout(), "Set %s = %s", key, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !config.IsKnownKey(args[0]) {
					return fmt.Errorf("unknown config key %q (known keys: %v)", args[0], config.Keys())
				}
				fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
				return nil
			},
		},
	)
	return cmd
}
