package review

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Category represents the architectural concern an issue belongs to.
type Category string

const (
	CategoryScalability   Category = "scalability"
	CategoryReliability   Category = "reliability"
	CategorySecurity      Category = "security"
	CategoryData          Category = "data"
	CategoryObservability Category = "observability"
	CategoryDevEx         Category = "devex"
)

// Categories lists every issue category in prompt order.
var Categories = []Category{
	CategoryScalability,
	CategoryReliability,
	CategorySecurity,
	CategoryData,
	CategoryObservability,
	CategoryDevEx,
}

// Effort is a coarse remediation estimate: S=days, M=weeks, L=months.
type Effort string

const (
	EffortSmall  Effort = "S"
	EffortMedium Effort = "M"
	EffortLarge  Effort = "L"
)

// ComponentType classifies an extracted component.
type ComponentType string

const (
	ComponentService     ComponentType = "service"
	ComponentDB          ComponentType = "db"
	ComponentQueue       ComponentType = "queue"
	ComponentCache       ComponentType = "cache"
	ComponentFrontend    ComponentType = "frontend"
	ComponentJob         ComponentType = "job"
	ComponentExternalAPI ComponentType = "external-api"
)

// DiagramType identifies the notation of a fenced diagram block.
type DiagramType string

const (
	DiagramMermaid  DiagramType = "mermaid"
	DiagramPlantUML DiagramType = "plantuml"
	DiagramUnknown  DiagramType = "unknown"
)

// Section is a heading-delimited block of the input document.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Diagram is a recognised fenced diagram block. Unknown diagrams are never kept.
type Diagram struct {
	Type DiagramType `json:"type"`
	Raw  string      `json:"raw"`
}

// ArchitectureInput is the parsed form of a submitted document.
type ArchitectureInput struct {
	RawText  string    `json:"rawText"`
	Sections []Section `json:"sections"`
	Diagrams []Diagram `json:"diagrams"`
}

// Component is one element of the extracted architecture.
//
// SyncDependencies and AsyncDependencies hold other components' ids. They are
// model output and are not checked against the component set; dangling ids
// are expected and must be tolerated by consumers.
type Component struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Type              ComponentType `json:"type"`
	Description       string        `json:"description"`
	TechStack         []string      `json:"techStack,omitempty"`
	DataStored        []string      `json:"dataStored,omitempty"`
	SyncDependencies  []string      `json:"syncDependencies"`
	AsyncDependencies []string      `json:"asyncDependencies"`
}

// CrossCuttingConcerns records optional notes on system-wide concerns.
type CrossCuttingConcerns struct {
	Logging    string `json:"logging,omitempty"`
	Monitoring string `json:"monitoring,omitempty"`
	Auth       string `json:"auth,omitempty"`
	Resilience string `json:"resilience,omitempty"`
}

// ArchitectureModel is the structured extraction produced by the first stage.
type ArchitectureModel struct {
	Context              string               `json:"context"`
	Components           []Component          `json:"components"`
	CrossCuttingConcerns CrossCuttingConcerns `json:"crossCuttingConcerns"`
}

// ComponentIDs returns the ids of all components in document order.
func (m ArchitectureModel) ComponentIDs() []string {
	ids := make([]string, 0, len(m.Components))
	for _, c := range m.Components {
		ids = append(ids, c.ID)
	}
	return ids
}

// fillEmptyLists replaces nil lists with empty ones so they encode as [].
func (m *ArchitectureModel) fillEmptyLists() {
	if m.Components == nil {
		m.Components = []Component{}
	}
	for i := range m.Components {
		c := &m.Components[i]
		if c.SyncDependencies == nil {
			c.SyncDependencies = []string{}
		}
		if c.AsyncDependencies == nil {
			c.AsyncDependencies = []string{}
		}
	}
}

// ArchitectureIssue is a detected architectural risk.
//
// ComponentsInvolved is best effort: ids may not exist in the model.
type ArchitectureIssue struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           Category `json:"category"`
	Severity           Severity `json:"severity"`
	ComponentsInvolved []string `json:"componentsInvolved"`
	Recommendation     string   `json:"recommendation"`
	EffortEstimate     Effort   `json:"effortEstimate"`
}

func fillEmptyIssueLists(issues []ArchitectureIssue) {
	for i := range issues {
		if issues[i].ComponentsInvolved == nil {
			issues[i].ComponentsInvolved = []string{}
		}
	}
}

// CodeProfile summarises a code repository. Nothing produces one yet; it is
// accepted by the issue detection prompt so repository analysis can feed it.
type CodeProfile struct {
	Languages            []string `json:"languages"`
	Frameworks           []string `json:"frameworks"`
	ServiceCountEstimate int      `json:"serviceCountEstimate"`
	InfraHints           []string `json:"infraHints"`
	Notes                []string `json:"notes"`
}

// Report is the narrative output of the final stage.
type Report struct {
	Summary                 string `json:"summary"`
	RecommendationsOverview string `json:"recommendationsOverview"`
	FullReportMarkdown      string `json:"fullReportMarkdown"`
}

// ArchitectureReview is the immutable record of one successful pipeline run.
type ArchitectureReview struct {
	ID                      string              `json:"id"`
	Summary                 string              `json:"summary"`
	ArchitectureModel       ArchitectureModel   `json:"architectureModel"`
	Issues                  []ArchitectureIssue `json:"issues"`
	RecommendationsOverview string              `json:"recommendationsOverview"`
	FullReportMarkdown      string              `json:"fullReportMarkdown"`
	CreatedAt               string              `json:"createdAt"`
}

// SeverityCounts holds counts by severity level.
type SeverityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// CountSeverities tallies issues by severity. Unknown severities are ignored.
func CountSeverities(issues []ArchitectureIssue) SeverityCounts {
	var c SeverityCounts
	for _, is := range issues {
		switch is.Severity {
		case SeverityLow:
			c.Low++
		case SeverityMedium:
			c.Medium++
		case SeverityHigh:
			c.High++
		}
	}
	return c
}
