package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

// documentSchema describes the shape of an exported pipeline document. It
// covers the fields this tool reads; exports carry plenty of other keys and
// those are deliberately left unconstrained.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "properties"],
	"properties": {
		"name": { "type": "string", "minLength": 1 },
		"properties": {
			"type": "object",
			"required": ["activities"],
			"properties": {
				"description": { "type": "string" },
				"activities": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["name", "type", "dependsOn"],
						"properties": {
							"name": { "type": "string", "minLength": 1 },
							"type": { "type": "string", "minLength": 1 },
							"description": { "type": "string" },
							"dependsOn": {
								"type": "array",
								"items": {
									"type": "object",
									"required": ["activity", "dependencyConditions"],
									"properties": {
										"activity": { "type": "string" },
										"dependencyConditions": {
											"type": "array",
											"minItems": 1,
											"items": { "type": "string" }
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
}`

// ValidateBytes checks a pipeline document against the document schema and
// returns a message per violation. A well-formed, schema-conforming document
// returns (nil, nil). Malformed JSON is returned as a *ParseError.
func ValidateBytes(ctx context.Context, contents []byte) ([]string, error) {
	schema := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(documentSchema), schema); err != nil {
		return nil, fmt.Errorf("loading document schema: %w", err)
	}

	keyErrors, err := schema.ValidateBytes(ctx, contents)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	messages := make([]string, 0, len(keyErrors))
	for _, keyError := range keyErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", keyError.PropertyPath, keyError.Message))
	}

	if len(messages) == 0 {
		return nil, nil
	}
	return messages, nil
}
