package cli

import (
	"github.com/mikrus-labs/mikrus/internal/branding"
	"github.com/mikrus-labs/mikrus/internal/buildinfo"
	"github.com/mikrus-labs/mikrus/internal/config"
	"github.com/mikrus-labs/mikrus/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs backs the file writer and the user template directory.
var appFs afero.Fs = afero.NewOsFs()

type globalOptions struct {
	verbose    bool
	configPath string
}

func newRootCmd(build buildinfo.Info) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds source files from templates for projects
hosted on the mikr.us platform and checks that the platform API is reachable.`,
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(opts.configPath); err != nil {
				return err
			}

			level := config.LogLevel()
			if opts.verbose {
				level = "debug"
			}
			logger := logging.New(config.LogFormat(), level, cmd.ErrOrStderr())
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	cmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")

	cmd.AddCommand(
		newGenerateCmd(build),
		newTemplatesCmd(),
		newPingCmd(),
		newVersionCmd(build),
		newConfigCmd(),
	)
	return cmd
}

// Execute runs the root command with build info injected via ldflags. Any
// error is printed once, to stderr, before it is returned.
func Execute(version, commit, date string) error {
	return execute(newRootCmd(buildinfo.Resolve(version, commit, date)))
}

func execute(root *cobra.Command) error {
	if err := root.Execute(); err != nil {
		printFailure(root.ErrOrStderr(), err)
		return err
	}
	return nil
}
