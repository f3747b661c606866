package pipeline

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes one exported pipeline definition. Data Factory exports
// JSON; YAML copies of the same shape are also accepted, detected by
// attempting JSON first.
type Parser struct {
	// Filename is used for error messages and format detection. Optional.
	Filename string

	// Contents is the raw document.
	Contents []byte
}

// Parse decodes the document and checks the fields every pipeline export
// must carry. Malformed input is reported as a *ParseError, an absent
// required key as a *MissingFieldError. There is no recovery on any path.
func (p Parser) Parse() (*Document, error) {
	contents := p.Contents

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(contents, &raw); err != nil {
		if strings.EqualFold(filepath.Ext(p.Filename), ".json") {
			return nil, &ParseError{Filename: p.Filename, Err: err}
		}

		// Not JSON and not explicitly named as such: try YAML,
		// round-tripped through JSON so the same decoding rules apply.
		jsonContents, yamlErr := yamlToJSON(contents)
		if yamlErr != nil {
			return nil, &ParseError{Filename: p.Filename, Err: err}
		}
		contents = jsonContents

		if err := json.Unmarshal(contents, &raw); err != nil {
			return nil, &ParseError{Filename: p.Filename, Err: err}
		}
	}

	if err := checkRequired(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(contents, &doc); err != nil {
		return nil, &ParseError{Filename: p.Filename, Err: err}
	}

	for i, act := range doc.Properties.Activities {
		if act.Name == "" {
			return nil, &MissingFieldError{Path: fmt.Sprintf("properties.activities[%d].name", i)}
		}
		if act.Type == "" {
			return nil, &MissingFieldError{Path: fmt.Sprintf("properties.activities[%d].type", i)}
		}
	}

	return &doc, nil
}

func checkRequired(raw map[string]json.RawMessage) error {
	if _, ok := raw["name"]; !ok {
		return &MissingFieldError{Path: "name"}
	}

	propsRaw, ok := raw["properties"]
	if !ok {
		return &MissingFieldError{Path: "properties"}
	}

	var props map[string]json.RawMessage
	if err := json.Unmarshal(propsRaw, &props); err != nil {
		return &ParseError{Err: fmt.Errorf("decoding properties: %w", err)}
	}
	if _, ok := props["activities"]; !ok {
		return &MissingFieldError{Path: "properties.activities"}
	}

	return nil
}

// yamlToJSON converts a YAML document to its JSON equivalent.
func yamlToJSON(contents []byte) ([]byte, error) {
	var parsed any
	if err := yaml.Unmarshal(contents, &parsed); err != nil {
		return nil, err
	}
	return json.Marshal(parsed)
}
