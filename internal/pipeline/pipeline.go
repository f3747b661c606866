// Package pipeline models Azure Data Factory pipeline documents: the JSON
// (or YAML) files exported for each pipeline by the service.
package pipeline

import "encoding/json"

// Document is the root object of an exported pipeline definition. It is
// built once by a Parser and read-only thereafter.
type Document struct {
	Name       string     `json:"name"`
	Properties Properties `json:"properties"`
}

type Properties struct {
	Description string     `json:"description,omitempty"`
	Activities  []Activity `json:"activities"`
}

// Activity is one processing step of a pipeline. Activities appear in the
// document in declaration order, and that order is preserved.
type Activity struct {
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Description    string         `json:"description,omitempty"`
	TypeProperties TypeProperties `json:"typeProperties,omitempty"`
	DependsOn      []Dependency   `json:"dependsOn"`
}

type TypeProperties struct {
	Source *Source `json:"source,omitempty"`
}

// Dependency links an activity to an upstream activity it runs after.
type Dependency struct {
	Activity             string   `json:"activity"`
	DependencyConditions []string `json:"dependencyConditions"`
}

// sourceQueryFields maps a recognized copy-source kind to the name of the
// field that holds its query text. Sources of any other kind have no
// extractable query.
var sourceQueryFields = map[string]string{
	"SqlServerSource": "sqlReaderQuery",
	"OracleSource":    "oracleReaderQuery",
}

// Source describes the data source of a copy activity. The name of its
// query field depends on the source kind, so the raw fields are kept and
// resolved through sourceQueryFields on demand.
type Source struct {
	Type string

	fields map[string]json.RawMessage
}

func (s *Source) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	s.fields = fields
	if typeRaw, ok := fields["type"]; ok {
		if err := json.Unmarshal(typeRaw, &s.Type); err != nil {
			return err
		}
	}

	return nil
}

// Query returns the source's query value for recognized source kinds.
// An unrecognized kind yields (nil, nil); a recognized kind whose query
// field is absent yields a MissingFieldError.
func (s *Source) Query() (*Expression, error) {
	fieldName, ok := sourceQueryFields[s.Type]
	if !ok {
		return nil, nil
	}

	raw, ok := s.fields[fieldName]
	if !ok {
		return nil, &MissingFieldError{Path: "typeProperties.source." + fieldName}
	}

	var expr Expression
	if err := json.Unmarshal(raw, &expr); err != nil {
		return nil, err
	}
	return &expr, nil
}
