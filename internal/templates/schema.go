package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "template.schema.json"

//go:embed schema/template.schema.json
var schemaJSON []byte

var printer = message.NewPrinter(language.English)

// Issue is one schema violation in a template.yaml.
type Issue struct {
	Field   string // JSON pointer into the manifest, "" for the document root
	Rule    string // failing schema keyword, e.g. "pattern"
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

var manifestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return s, nil
})

// CheckManifest validates raw template.yaml bytes against the embedded
// schema. It returns no issues for a valid manifest. The error is reserved
// for YAML that cannot be parsed at all.
func CheckManifest(data []byte) ([]Issue, error) {
	schema, err := manifestSchema()
	if err != nil {
		return nil, fmt.Errorf("loading template schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// The validator wants JSON-native values, so take the YAML through JSON.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting manifest to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding manifest JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	issues := leafIssues(ve)
	if len(issues) == 0 {
		issues = []Issue{{Message: ve.Error()}}
	}
	return issues, nil
}

// leafIssues flattens the error tree, keeping only errors without causes.
func leafIssues(root *jsonschema.ValidationError) []Issue {
	var out []Issue
	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(ve.Causes) > 0 {
			for i := len(ve.Causes) - 1; i >= 0; i-- {
				stack = append(stack, ve.Causes[i])
			}
			continue
		}
		if ve.ErrorKind == nil {
			continue
		}

		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 || kw[len(kw)-1] == "$ref" {
			continue
		}

		var field string
		if len(ve.InstanceLocation) > 0 {
			field = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		out = append(out, Issue{
			Field:   field,
			Rule:    kw[len(kw)-1],
			Message: ve.ErrorKind.LocalizedString(printer),
		})
	}
	return out
}
