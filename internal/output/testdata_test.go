package output

import "github.com/dshills/archon/internal/review"

func sampleReview() *review.ArchitectureReview {
	return &review.ArchitectureReview{
		ID:      "9b2f6c1e-5d43-4a61-8f0e-2f6a3c7b1d20",
		Summary: "A three-tier checkout system with a single shared database.",
		ArchitectureModel: review.ArchitectureModel{
			Context: "E-commerce checkout",
			Components: []review.Component{
				{ID: "api", Name: "API", Type: review.ComponentService, SyncDependencies: []string{"db"}, AsyncDependencies: []string{}},
				{ID: "db", Name: "Postgres", Type: review.ComponentDB, SyncDependencies: []string{}, AsyncDependencies: []string{}},
			},
		},
		Issues: []review.ArchitectureIssue{
			{
				ID: "issue-1", Title: "Single database", Description: "The API depends on one Postgres instance.",
				Category: review.CategoryReliability, Severity: review.SeverityHigh,
				ComponentsInvolved: []string{"api", "db"}, Recommendation: "Add a replica.", EffortEstimate: review.EffortMedium,
			},
			{
				ID: "issue-2", Title: "No tracing", Description: "Requests are not traced.",
				Category: review.CategoryObservability, Severity: review.SeverityLow,
				ComponentsInvolved: []string{}, Recommendation: "Add OpenTelemetry.", EffortEstimate: review.EffortSmall,
			},
		},
		RecommendationsOverview: "Remove the single points of failure first.",
		FullReportMarkdown:      "# Architecture Review\n\nDetails here.",
		CreatedAt:               "2026-01-02T03:04:05.000Z",
	}
}
