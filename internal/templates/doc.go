// Package templates is the template store behind `mikrus generate`. Each
// template set is a directory holding a template.yaml manifest and a
// body.tmpl file. Built-in sets are embedded in the binary; users can add or
// shadow sets with a directory configured through templates_dir. Manifests
// are validated against an embedded JSON Schema before use.
package templates
