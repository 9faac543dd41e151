package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// MaxArchitectureTextLength is the largest accepted document, in characters.
const MaxArchitectureTextLength = 100000

const reviewRequestSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["architectureText"],
  "properties": {
    "architectureText": { "type": "string", "minLength": 1, "maxLength": 100000 },
    "repoUrl": { "type": "string", "format": "uri" },
    "model": { "type": "string" }
  }
}`

var reviewRequestSchema = mustSchema(reviewRequestSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compiling request schema: %v", err))
	}
	return s
}

// ReviewRequest is a validated POST /api/reviews body. Empty optional
// fields are normalized to "".
type ReviewRequest struct {
	ArchitectureText string `json:"architectureText"`
	RepoURL          string `json:"repoUrl,omitempty"`
	Model            string `json:"model,omitempty"`
}

// FieldError describes one rejected field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError lists every problem found in a request body.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		if d.Path == "" {
			parts = append(parts, d.Message)
			continue
		}
		parts = append(parts, d.Path+": "+d.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// optionalFields are dropped when sent as empty strings.
var optionalFields = []string{"repoUrl", "model"}

// DecodeReviewRequest parses and validates a request body. Any failure,
// malformed JSON included, is a *ValidationError.
func DecodeReviewRequest(body []byte) (ReviewRequest, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ReviewRequest{}, &ValidationError{Details: []FieldError{{Message: "Invalid JSON body: " + err.Error()}}}
	}

	if obj, ok := doc.(map[string]any); ok {
		for _, f := range optionalFields {
			if s, ok := obj[f].(string); ok && s == "" {
				delete(obj, f)
			}
		}
	}

	result, err := reviewRequestSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return ReviewRequest{}, &ValidationError{Details: []FieldError{{Message: err.Error()}}}
	}
	if !result.Valid() {
		details := make([]FieldError, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, fieldError(desc))
		}
		return ReviewRequest{}, &ValidationError{Details: details}
	}

	obj := doc.(map[string]any)
	req := ReviewRequest{ArchitectureText: obj["architectureText"].(string)}
	req.RepoURL, _ = obj["repoUrl"].(string)
	req.Model, _ = obj["model"].(string)
	return req, nil
}

func fieldError(desc gojsonschema.ResultError) FieldError {
	path := desc.Field()
	if desc.Type() == "required" {
		if p, ok := desc.Details()["property"].(string); ok {
			path = p
		}
	}
	if path == "(root)" {
		path = ""
	}

	msg := desc.Description()
	switch {
	case path == "architectureText" && (desc.Type() == "required" || desc.Type() == "string_gte"):
		msg = "Architecture text is required"
	case path == "architectureText" && desc.Type() == "string_lte":
		msg = "Architecture text is too large (max 100KB)"
	case path == "repoUrl" && desc.Type() == "format":
		msg = "Invalid repository URL"
	}
	return FieldError{Path: path, Message: msg}
}
