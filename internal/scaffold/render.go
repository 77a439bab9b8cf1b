package scaffold

import (
	"strings"

	"github.com/mikrus-labs/mikrus/internal/templates"
	"github.com/mikrus-labs/mikrus/internal/validate"
)

const (
	// Placeholder is replaced by the identifier everywhere in a template body.
	Placeholder = "{{name}}"

	// Suffix follows the identifier in every generated file name. Templates
	// choose only the extension.
	Suffix = "-model"
)

// Request describes one generate invocation after validation.
type Request struct {
	Identifier  validate.Identifier
	TemplateKey string
	OutputDir   string
}

// Result is the rendered file and where it should be written.
type Result struct {
	TargetPath string
	Content    string
}

// Render produces the target path and content for id. It never touches the
// filesystem.
func Render(id validate.Identifier, tmpl templates.Template, outputDir string) Result {
	return Result{
		TargetPath: TargetPath(outputDir, id, tmpl.Extension),
		Content:    RenderBody(id, tmpl.Body),
	}
}

// RenderBody replaces every occurrence of Placeholder in body with id. The
// replacement is literal and single-pass, so an identifier can never
// introduce a new placeholder.
func RenderBody(id validate.Identifier, body string) string {
	return strings.ReplaceAll(body, Placeholder, string(id))
}

// TargetPath returns outputDir/<id>-model<ext>. The separator is a literal
// "/", giving the same path on every platform.
func TargetPath(outputDir string, id validate.Identifier, ext string) string {
	return outputDir + "/" + string(id) + Suffix + ext
}
