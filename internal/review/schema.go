package review

import (
	"log/slog"

	"github.com/xeipuuv/gojsonschema"
)

const modelSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["context", "components"],
  "properties": {
    "context": { "type": "string" },
    "components": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "type"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "name": { "type": "string" },
          "type": { "enum": ["service", "db", "queue", "cache", "frontend", "job", "external-api"] },
          "description": { "type": "string" }
        }
      }
    }
  }
}`

const issuesSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "category", "severity"],
    "properties": {
      "id": { "type": "string" },
      "title": { "type": "string", "minLength": 1 },
      "category": { "enum": ["scalability", "reliability", "security", "data", "observability", "devex"] },
      "severity": { "enum": ["low", "medium", "high"] },
      "effortEstimate": { "enum": ["S", "M", "L", ""] }
    }
  }
}`

const reportSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary", "fullReportMarkdown"],
  "properties": {
    "summary": { "type": "string", "minLength": 1 },
    "recommendationsOverview": { "type": "string" },
    "fullReportMarkdown": { "type": "string", "minLength": 1 }
  }
}`

var (
	modelSchemaLoader  = gojsonschema.NewStringLoader(modelSchemaJSON)
	issuesSchemaLoader = gojsonschema.NewStringLoader(issuesSchemaJSON)
	reportSchemaLoader = gojsonschema.NewStringLoader(reportSchemaJSON)
)

// schemaViolations checks a decoded stage payload against its expected
// shape. The result is informational: model output that decodes is always
// accepted.
func schemaViolations(schema gojsonschema.JSONLoader, v any) ([]string, error) {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(v))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	out := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		out = append(out, desc.String())
	}
	return out, nil
}

func logSchemaViolations(logger *slog.Logger, stage Stage, schema gojsonschema.JSONLoader, v any) {
	violations, err := schemaViolations(schema, v)
	if err != nil {
		logger.Warn("schema check failed", "stage", stage, "error", err)
		return
	}
	for _, msg := range violations {
		logger.Warn("stage payload does not match schema", "stage", stage, "violation", msg)
	}
}
