package review

import (
	"encoding/json"
	"testing"
)

func TestSeverityRank(t *testing.T) {
	tests := []struct {
		severity Severity
		want     int
	}{
		{SeverityLow, 1},
		{SeverityMedium, 2},
		{SeverityHigh, 3},
		{Severity("critical"), 0},
	}
	for _, tt := range tests {
		got := SeverityRank(tt.severity)
		if got != tt.want {
			t.Errorf("SeverityRank(%q) = %d, want %d", tt.severity, got, tt.want)
		}
	}
}

func TestCountSeverities(t *testing.T) {
	issues := []ArchitectureIssue{
		{Severity: SeverityHigh},
		{Severity: SeverityMedium},
		{Severity: SeverityMedium},
		{Severity: SeverityLow},
		{Severity: "bogus"},
	}

	c := CountSeverities(issues)

	if c.High != 1 {
		t.Errorf("High count = %d, want 1", c.High)
	}
	if c.Medium != 2 {
		t.Errorf("Medium count = %d, want 2", c.Medium)
	}
	if c.Low != 1 {
		t.Errorf("Low count = %d, want 1", c.Low)
	}
}

func TestArchitectureModel_DanglingDependenciesTolerated(t *testing.T) {
	raw := `{
		"context": "shop",
		"components": [
			{"id": "api", "name": "API", "type": "service", "description": "edge",
			 "syncDependencies": ["ghost-db"], "asyncDependencies": []}
		],
		"crossCuttingConcerns": {}
	}`
	var m ArchitectureModel
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got := m.ComponentIDs(); len(got) != 1 || got[0] != "api" {
		t.Errorf("ComponentIDs() = %v, want [api]", got)
	}
	if m.Components[0].SyncDependencies[0] != "ghost-db" {
		t.Errorf("dangling dependency should be kept verbatim, got %v", m.Components[0].SyncDependencies)
	}
}

func TestArchitectureReview_JSONFieldNames(t *testing.T) {
	r := ArchitectureReview{ID: "r1", CreatedAt: "2026-01-02T03:04:05.000Z", Issues: []ArchitectureIssue{}}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	for _, key := range []string{"id", "summary", "architectureModel", "issues", "recommendationsOverview", "fullReportMarkdown", "createdAt"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing JSON key %q", key)
		}
	}
}
