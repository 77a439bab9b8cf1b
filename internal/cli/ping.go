package cli

import (
	"fmt"
	"time"

	"github.com/mikrus-labs/mikrus/internal/config"
	"github.com/mikrus-labs/mikrus/internal/logging"
	"github.com/mikrus-labs/mikrus/internal/probe"
	"github.com/spf13/cobra"
)

func newPingCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the mikr.us API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := probe.New(config.APIURL(),
				probe.WithTimeout(timeout),
				probe.WithLogger(logging.FromContext(ctx)))

			status := p.Check(ctx)
			if !status.Reachable {
				return fmt.Errorf("API at %s is not reachable", status.Endpoint)
			}
			printSuccess(cmd.OutOrStdout(), "API at %s is reachable (HTTP %d, %s)",
				status.Endpoint, status.StatusCode, status.Latency.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", probe.DefaultTimeout, "Give up after this long")
	return cmd
}
