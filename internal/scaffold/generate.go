package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"
	"github.com/mikrus-labs/mikrus/internal/logging"
	"github.com/mikrus-labs/mikrus/internal/templates"
)

// ErrIncompatibleTemplate is returned when a template's min_version excludes
// the running CLI.
var ErrIncompatibleTemplate = errors.New("template requires a newer mikrus")

// Options configures Generate.
type Options struct {
	Store      templates.Store
	Writer     Writer
	DryRun     bool
	Force      bool
	CLIVersion *semver.Version // nil for development builds
	Logger     *slog.Logger
}

// Outcome is what Generate did.
type Outcome struct {
	Result
	Template templates.Template
	Written  bool
}

// Generate looks up the template, renders it for req.Identifier, and writes
// the result unless opts.DryRun is set. Nothing is written when any earlier
// step fails, and an existing target is only replaced with opts.Force.
func Generate(ctx context.Context, req Request, opts Options) (*Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	if req.Identifier == "" {
		return nil, fmt.Errorf("generate: identifier is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("generate: no template store configured")
	}

	tmpl, err := opts.Store.Lookup(req.TemplateKey)
	if err != nil {
		return nil, err
	}

	ok, err := tmpl.Supports(opts.CLIVersion)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: template %q needs %s, running %s",
			ErrIncompatibleTemplate, tmpl.Key, tmpl.MinVersion, opts.CLIVersion)
	}

	outcome := &Outcome{
		Result:   Render(req.Identifier, tmpl, req.OutputDir),
		Template: tmpl,
	}
	logger.Debug("rendered template",
		"template", tmpl.Key,
		"source", tmpl.Source,
		"target", outcome.TargetPath,
		"bytes", len(outcome.Content))

	if opts.DryRun {
		return outcome, nil
	}
	if opts.Writer == nil {
		return nil, fmt.Errorf("generate: no writer configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := opts.Writer.EnsureDir(req.OutputDir); err != nil {
		return nil, err
	}

	if !opts.Force {
		exists, err := opts.Writer.Exists(outcome.TargetPath)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &IOError{Op: "writing", Path: outcome.TargetPath, Err: errExists}
		}
	}

	if err := opts.Writer.WriteFile(outcome.TargetPath, outcome.Content); err != nil {
		return nil, err
	}
	outcome.Written = true
	logger.Debug("wrote file", "path", outcome.TargetPath)

	return outcome, nil
}
