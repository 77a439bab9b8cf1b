package cli

import (
	"strings"

	"github.com/mikrus-labs/mikrus/internal/buildinfo"
	"github.com/mikrus-labs/mikrus/internal/config"
	"github.com/mikrus-labs/mikrus/internal/logging"
	"github.com/mikrus-labs/mikrus/internal/scaffold"
	"github.com/mikrus-labs/mikrus/internal/templates"
	"github.com/mikrus-labs/mikrus/internal/validate"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	output   string
	template string
	dryRun   bool
	force    bool
}

func newGenerateCmd(build buildinfo.Info) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate <name>",
		Aliases: []string{"g"},
		Short:   "Generate a file from a template",
		Long: `Generate renders a template for <name> and writes it to
<output>/<name>-model<extension>, e.g. models/user-model.ts.

The name may only contain letters, numbers, hyphens, and underscores.
The built-in templates also use it for type names such as <name>Model, so a
name with a hyphen or a leading digit gives a valid file that will not
compile until the types are renamed.`,
		Example: `  mikrus generate user
  mikrus g order --template go-model --output internal/models
  mikrus g user --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts, build)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Directory to write the generated file to")
	cmd.Flags().StringVarP(&opts.template, "template", "t", config.DefaultTemplate, "Template to render")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Render without writing and print the target path")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions, build buildinfo.Info) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	// A missing argument is reported by the validator, not by cobra.
	var raw *string
	if len(args) > 0 {
		raw = &args[0]
	}
	id, err := validate.Validate(raw)
	if err != nil {
		return &securityError{err: err}
	}

	if !isSymbolSafe(id) {
		logger.Warn("name is not a valid type name; generated symbols will need renaming", "name", id.String())
	}

	output := opts.output
	if !cmd.Flags().Changed("output") {
		output = config.OutputDir()
	}
	templateKey := opts.template
	if !cmd.Flags().Changed("template") {
		templateKey = config.TemplateKey()
	}

	cliVersion, err := build.SemVer()
	if err != nil {
		logger.Debug("skipping template version checks", "version", build.Version, "reason", err)
	}

	outcome, err := scaffold.Generate(ctx, scaffold.Request{
		Identifier:  id,
		TemplateKey: templateKey,
		OutputDir:   output,
	}, scaffold.Options{
		Store:      templates.Default(appFs, config.TemplatesDir()),
		Writer:     scaffold.NewFSWriter(appFs),
		DryRun:     opts.dryRun,
		Force:      opts.force,
		CLIVersion: cliVersion,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if !outcome.Written {
		printSuccess(cmd.OutOrStdout(), "Dry run: would generate file at %s", outcome.TargetPath)
		return nil
	}
	printSuccess(cmd.OutOrStdout(), "Generated file at %s", outcome.TargetPath)
	return nil
}

// isSymbolSafe reports whether id can prefix a Go or TypeScript type name.
func isSymbolSafe(id validate.Identifier) bool {
	s := id.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	return !strings.Contains(s, "-")
}
