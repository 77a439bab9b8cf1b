package templates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	manifestFile = "template.yaml"
	bodyFile     = "body.tmpl"

	// SourceBuiltin marks templates loaded from the embedded sets.
	SourceBuiltin = "builtin"
)

// ErrUnknownTemplate is returned when no store holds the requested key.
var ErrUnknownTemplate = errors.New("unknown template")

// Manifest is the parsed template.yaml of a template set.
type Manifest struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Extension   string `yaml:"extension" json:"extension"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	MinVersion  string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// Template is a loaded template set, ready to render.
type Template struct {
	Key         string
	Description string
	Extension   string
	Version     string
	MinVersion  string
	Body        string
	Source      string
}

func newTemplate(m *Manifest, body []byte, source string) Template {
	return Template{
		Key:         m.Name,
		Description: m.Description,
		Extension:   m.Extension,
		Version:     m.Version,
		MinVersion:  m.MinVersion,
		Body:        string(body),
		Source:      source,
	}
}

// Supports reports whether the template can be used by a CLI at version v.
// A nil v (development build) and an empty MinVersion always pass.
func (t Template) Supports(v *semver.Version) (bool, error) {
	if v == nil || strings.TrimSpace(t.MinVersion) == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(t.MinVersion)
	if err != nil {
		return false, fmt.Errorf("template %q: parsing min_version %q: %w", t.Key, t.MinVersion, err)
	}
	return c.Check(v), nil
}

// Store looks up template sets by key.
type Store interface {
	Lookup(key string) (Template, error)
	List() ([]Template, error)
}

// ManifestError reports a template.yaml that failed schema validation.
type ManifestError struct {
	Source string
	Key    string
	Issues []Issue
}

func (e *ManifestError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("template %q in %s has an invalid manifest: %s", e.Key, e.Source, strings.Join(msgs, "; "))
}
