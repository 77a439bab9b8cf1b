package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/mikrus-labs/mikrus/internal/validate"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

//go:embed sets
var embeddedSets embed.FS

// FSStore reads template sets from the top level of an fs.FS.
type FSStore struct {
	fsys   fs.FS
	source string
}

// NewEmbedded returns the store of built-in template sets.
func NewEmbedded() *FSStore {
	sub, err := fs.Sub(embeddedSets, "sets")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(fmt.Sprintf("templates: embedded sets: %v", err))
	}
	return &FSStore{fsys: sub, source: SourceBuiltin}
}

// NewDir returns a store reading template sets from dir on afs. Access is
// confined to dir.
func NewDir(afs afero.Fs, dir string) *FSStore {
	return &FSStore{
		fsys:   afero.NewIOFS(afero.NewBasePathFs(afs, dir)),
		source: dir,
	}
}

// Lookup loads the template set named key.
func (s *FSStore) Lookup(key string) (Template, error) {
	// Keys become directory names, so they go through the same rules as
	// user-supplied identifiers.
	id, err := validate.ValidateString(key)
	if err != nil || string(id) != key {
		return Template{}, fmt.Errorf("%w %q", ErrUnknownTemplate, key)
	}

	manifestData, err := fs.ReadFile(s.fsys, path.Join(key, manifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Template{}, fmt.Errorf("%w %q", ErrUnknownTemplate, key)
	}
	if err != nil {
		return Template{}, fmt.Errorf("reading template %q manifest from %s: %w", key, s.source, err)
	}

	issues, err := CheckManifest(manifestData)
	if err != nil {
		return Template{}, fmt.Errorf("validating template %q manifest from %s: %w", key, s.source, err)
	}
	if len(issues) > 0 {
		return Template{}, &ManifestError{Source: s.source, Key: key, Issues: issues}
	}

	var m Manifest
	if err := yaml.Unmarshal(manifestData, &m); err != nil {
		return Template{}, fmt.Errorf("parsing template %q manifest from %s: %w", key, s.source, err)
	}
	if m.Name != key {
		return Template{}, fmt.Errorf("template directory %q in %s declares name %q", key, s.source, m.Name)
	}

	body, err := fs.ReadFile(s.fsys, path.Join(key, bodyFile))
	if err != nil {
		return Template{}, fmt.Errorf("reading template %q body from %s: %w", key, s.source, err)
	}

	return newTemplate(&m, body, s.source), nil
}

// List returns every template set in the store, sorted by key. Directories
// without a template.yaml are skipped.
func (s *FSStore) List() ([]Template, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", s.source, err)
	}

	var out []Template
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t, err := s.Lookup(entry.Name())
		if errors.Is(err, ErrUnknownTemplate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Layered searches several stores in order; earlier stores shadow later
// ones.
type Layered []Store

// Lookup returns the template from the first store that has key.
func (l Layered) Lookup(key string) (Template, error) {
	for _, s := range l {
		t, err := s.Lookup(key)
		if errors.Is(err, ErrUnknownTemplate) {
			continue
		}
		return t, err
	}
	return Template{}, fmt.Errorf("%w %q", ErrUnknownTemplate, key)
}

// List merges the templates of all stores, sorted by key.
func (l Layered) List() ([]Template, error) {
	seen := make(map[string]bool)
	var out []Template
	for _, s := range l {
		ts, err := s.List()
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			if seen[t.Key] {
				continue
			}
			seen[t.Key] = true
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Default returns the store used by the CLI: the user directory (when set)
// layered over the built-in sets.
func Default(afs afero.Fs, userDir string) Store {
	if userDir == "" {
		return Layered{NewEmbedded()}
	}
	return Layered{NewDir(afs, userDir), NewEmbedded()}
}
