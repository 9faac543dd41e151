package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dshills/archon/internal/providers"
)

const extractionSystemPrompt = `You are an expert software architect. Your task is to analyze architecture documents and extract a structured model.

Extract the following from the provided architecture document:
- Overall context and purpose
- All components (services, databases, queues, caches, frontends, jobs, external APIs)
- For each component: name, type, description, tech stack, data stored, and dependencies (sync vs async)
- Cross-cutting concerns (logging, monitoring, auth, resilience)

CRITICAL: You MUST respond with ONLY a valid JSON object. Do NOT include any explanatory text, markdown formatting, or code fences. Start your response with { and end with }.

The JSON object must have this exact structure:
{
  "context": "Overall context and purpose",
  "components": [
    {
      "id": "kebab-case-id",
      "name": "Human readable name",
      "type": "service|db|queue|cache|frontend|job|external-api",
      "description": "What the component does",
      "techStack": ["optional", "technologies"],
      "dataStored": ["optional", "data kinds"],
      "syncDependencies": ["ids of components called synchronously"],
      "asyncDependencies": ["ids of components reached through queues or events"]
    }
  ],
  "crossCuttingConcerns": {
    "logging": "optional",
    "monitoring": "optional",
    "auth": "optional",
    "resilience": "optional"
  }
}

Use kebab-case for component IDs (e.g., "user-service", "postgres-db").`

const issueSystemPromptHeader = `You are an expert software architect performing architecture reviews.

Analyze the provided architecture model and detect potential issues across these categories:
`

// categoryHints describe each issue category to the model.
var categoryHints = map[Category]string{
	CategoryScalability:   "bottlenecks, single points of failure, scaling limitations",
	CategoryReliability:   "fault tolerance, retry logic, circuit breakers, data consistency",
	CategorySecurity:      "authentication gaps, authorization, data encryption, secrets management",
	CategoryData:          "data modeling issues, migration risks, backup/recovery gaps",
	CategoryObservability: "logging, monitoring, tracing, alerting gaps",
	CategoryDevEx:         "development workflow issues, testing gaps, deployment complexity",
}

const issueSystemPromptFooter = `
CRITICAL: You MUST respond with ONLY a valid JSON array. Do NOT include any explanatory text, markdown formatting, or code fences. Start your response with [ and end with ].

Each issue must have this exact structure:
{
  "id": "short-unique-id",
  "title": "Short descriptive title",
  "description": "What is wrong and why it matters",
  "category": "scalability|reliability|security|data|observability|devex",
  "severity": "low|medium|high",
  "componentsInvolved": ["component ids"],
  "recommendation": "How to fix it",
  "effortEstimate": "S|M|L"
}

Return an array of issues as valid JSON. If no issues found, return empty array [].`

const reportSystemPrompt = `You are an expert software architect writing architecture review reports.

Generate a comprehensive Markdown report with:
1. Executive Summary (2-3 paragraphs)
2. Architecture Overview (brief description of components and flow)
3. Key Findings (grouped by severity: high, medium, low)
4. Recommendations Overview (prioritized action items)
5. Detailed Issue Analysis (each issue with context and remediation steps)

The report should be professional, actionable, and developer-friendly.

CRITICAL: You MUST respond with ONLY a valid JSON object. Do NOT include any explanatory text, markdown formatting, or code fences. Start your response with { and end with }.

Return a JSON object with:
{
  "summary": "2-3 sentence executive summary",
  "recommendationsOverview": "Prioritized recommendations as a string",
  "fullReportMarkdown": "Complete Markdown report"
}`

// BuildExtractionPrompt asks for an ArchitectureModel of the parsed input.
func BuildExtractionPrompt(in ArchitectureInput) []providers.Message {
	var b strings.Builder

	b.WriteString("Architecture Document:\n\n")
	b.WriteString(in.RawText)
	b.WriteString("\n\n")

	if len(in.Sections) > 0 {
		b.WriteString("\nSections found:\n")
		for i, s := range in.Sections {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "## %s\n%s", s.Title, s.Content)
		}
		b.WriteString("\n")
	}

	if len(in.Diagrams) > 0 {
		b.WriteString("\nDiagrams found:\n")
		for i, d := range in.Diagrams {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "Type: %s\n```\n%s\n```", d.Type, d.Raw)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nPlease extract the architecture model as JSON.")

	return []providers.Message{
		{Role: providers.RoleSystem, Content: extractionSystemPrompt},
		{Role: providers.RoleUser, Content: b.String()},
	}
}

// BuildIssueDetectionPrompt asks for the issues of a model. The code profile
// is optional.
func BuildIssueDetectionPrompt(model ArchitectureModel, profile *CodeProfile) []providers.Message {
	var sys strings.Builder
	sys.WriteString(issueSystemPromptHeader)
	for _, c := range Categories {
		fmt.Fprintf(&sys, "- %s: %s\n", c, categoryHints[c])
	}
	sys.WriteString(issueSystemPromptFooter)

	var b strings.Builder
	b.WriteString("Architecture Model:\n")
	b.WriteString(indentJSON(model))
	b.WriteString("\n\n")
	if profile != nil {
		b.WriteString("Code Profile:\n")
		b.WriteString(indentJSON(profile))
		b.WriteString("\n\n")
	}
	b.WriteString("Please analyze and return detected issues as JSON array.")

	return []providers.Message{
		{Role: providers.RoleSystem, Content: sys.String()},
		{Role: providers.RoleUser, Content: b.String()},
	}
}

// BuildReportGenerationPrompt asks for the narrative report.
func BuildReportGenerationPrompt(model ArchitectureModel, issues []ArchitectureIssue) []providers.Message {
	if issues == nil {
		issues = []ArchitectureIssue{}
	}

	var b strings.Builder
	b.WriteString("Architecture Model:\n")
	b.WriteString(indentJSON(model))
	b.WriteString("\n\nDetected Issues:\n")
	b.WriteString(indentJSON(issues))
	b.WriteString("\n\nPlease generate the architecture review report as JSON.")

	return []providers.Message{
		{Role: providers.RoleSystem, Content: reportSystemPrompt},
		{Role: providers.RoleUser, Content: b.String()},
	}
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
