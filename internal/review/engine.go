package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/archon/internal/normalize"
	"github.com/dshills/archon/internal/providers"
	"github.com/dshills/archon/internal/redact"
)

// TimeLayout is the createdAt format: ISO-8601 UTC with milliseconds.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Per-stage completion settings.
var (
	extractOptions = providers.Options{Temperature: providers.Temperature(0.3), MaxTokens: 4096}
	detectOptions  = providers.Options{Temperature: providers.Temperature(0.5), MaxTokens: 4096}
	reportOptions  = providers.Options{Temperature: providers.Temperature(0.7), MaxTokens: 8192}
)

// Decode context labels carried by normalize.ParseError.
const (
	contextModel  = "ArchitectureModel"
	contextIssues = "ArchitectureIssues"
	contextReport = "Report"
)

// Saver persists a finished review.
type Saver interface {
	Save(ArchitectureReview) error
}

// Options tunes a single run.
type Options struct {
	// Model overrides the completion model for this run only.
	Model string
	// CodeProfile is passed to issue detection when present.
	CodeProfile *CodeProfile
}

// Engine runs the extract, detect and report stages and stores the result.
// An Engine holds no per-run state and is safe for concurrent use.
type Engine struct {
	completer providers.Completer
	factory   *providers.Factory
	store     Saver
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	redact    bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFactory enables per-run model overrides built by f.
func WithFactory(f providers.Factory) EngineOption {
	return func(e *Engine) { e.factory = &f }
}

func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock replaces time.Now for createdAt stamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator replaces the review id source.
func WithIDGenerator(newID func() string) EngineOption {
	return func(e *Engine) { e.newID = newID }
}

// WithRedaction controls secret redaction of prompt text. It is on by
// default.
func WithRedaction(on bool) EngineOption {
	return func(e *Engine) { e.redact = on }
}

// NewEngine returns an engine that completes with c and saves into store.
func NewEngine(c providers.Completer, store Saver, opts ...EngineOption) *Engine {
	e := &Engine{
		completer: c,
		store:     store,
		logger:    slog.Default(),
		now:       time.Now,
		newID:     uuid.NewString,
		redact:    true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Review runs the full pipeline for in. Any stage failure aborts the run,
// nothing is stored, and the error is a *StageError.
func (e *Engine) Review(ctx context.Context, in ArchitectureInput, opts Options) (ArchitectureReview, error) {
	c, err := e.completerFor(opts.Model)
	if err != nil {
		return ArchitectureReview{}, err
	}

	runID := e.newID()
	p, err := NewPipeline(runID)
	if err != nil {
		return ArchitectureReview{}, err
	}
	log := e.logger.With("run", runID, "model", c.Name())
	start := time.Now()

	fail := func(stage Stage, err error) (ArchitectureReview, error) {
		state := p.Current()
		_ = p.Fail()
		log.Warn("review pipeline failed", "stage", stage, "state", state, "error", err)
		return ArchitectureReview{}, &StageError{Stage: stage, State: state, Err: err}
	}

	prompted := in
	if e.redact {
		var n int
		prompted, n = redactInput(in)
		if n > 0 {
			log.Debug("redacted secrets from prompt", "count", n)
		}
	}

	model, err := e.extract(ctx, c, prompted, log)
	if err != nil {
		return fail(StageExtract, err)
	}
	if err := p.Advance(EventExtracted); err != nil {
		return fail(StageExtract, err)
	}

	issues, err := e.detect(ctx, c, model, opts.CodeProfile, log)
	if err != nil {
		return fail(StageDetect, err)
	}
	if err := p.Advance(EventDetected); err != nil {
		return fail(StageDetect, err)
	}

	report, err := e.report(ctx, c, model, issues, log)
	if err != nil {
		return fail(StageReport, err)
	}
	if err := p.Advance(EventReported); err != nil {
		return fail(StageReport, err)
	}

	r := ArchitectureReview{
		ID:                      runID,
		Summary:                 report.Summary,
		ArchitectureModel:       model,
		Issues:                  issues,
		RecommendationsOverview: report.RecommendationsOverview,
		FullReportMarkdown:      report.FullReportMarkdown,
		CreatedAt:               e.now().UTC().Format(TimeLayout),
	}
	if err := e.store.Save(r); err != nil {
		return fail(StageStore, err)
	}
	if err := p.Advance(EventStored); err != nil {
		return fail(StageStore, err)
	}

	log.Info("review completed",
		"issues", len(issues),
		"components", len(model.Components),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return r, nil
}

// completerFor returns the completer for one run. An override builds a fresh
// completer and never touches the engine's default.
func (e *Engine) completerFor(model string) (providers.Completer, error) {
	if model == "" {
		if e.completer == nil {
			return nil, errors.New("no completion provider configured")
		}
		return e.completer, nil
	}
	if e.factory == nil {
		return nil, fmt.Errorf("model override %q: no provider factory configured", model)
	}
	c, err := e.factory.New(model)
	if err != nil {
		return nil, fmt.Errorf("creating provider for model %q: %w", model, err)
	}
	return c, nil
}

func (e *Engine) extract(ctx context.Context, c providers.Completer, in ArchitectureInput, log *slog.Logger) (ArchitectureModel, error) {
	text, err := complete(ctx, c, BuildExtractionPrompt(in), extractOptions, StageExtract, log)
	if err != nil {
		return ArchitectureModel{}, err
	}
	model, err := normalize.Decode[ArchitectureModel](text, contextModel)
	if err != nil {
		return ArchitectureModel{}, err
	}
	logSchemaViolations(log, StageExtract, modelSchemaLoader, model)
	model.fillEmptyLists()
	return model, nil
}

func (e *Engine) detect(ctx context.Context, c providers.Completer, model ArchitectureModel, profile *CodeProfile, log *slog.Logger) ([]ArchitectureIssue, error) {
	text, err := complete(ctx, c, BuildIssueDetectionPrompt(model, profile), detectOptions, StageDetect, log)
	if err != nil {
		return nil, err
	}
	issues, err := normalize.Decode[[]ArchitectureIssue](text, contextIssues)
	if err != nil {
		return nil, err
	}
	// A bare null reply decodes to nil. Reviews always carry an issues array,
	// so it is stored as an empty list and logged.
	if issues == nil {
		log.Debug("issue detection returned null, recording no issues", "stage", StageDetect)
		issues = []ArchitectureIssue{}
	}
	logSchemaViolations(log, StageDetect, issuesSchemaLoader, issues)
	fillEmptyIssueLists(issues)
	return issues, nil
}

func (e *Engine) report(ctx context.Context, c providers.Completer, model ArchitectureModel, issues []ArchitectureIssue, log *slog.Logger) (Report, error) {
	text, err := complete(ctx, c, BuildReportGenerationPrompt(model, issues), reportOptions, StageReport, log)
	if err != nil {
		return Report{}, err
	}
	report, err := normalize.Decode[Report](text, contextReport)
	if err != nil {
		return Report{}, err
	}
	logSchemaViolations(log, StageReport, reportSchemaLoader, report)
	return report, nil
}

func complete(ctx context.Context, c providers.Completer, msgs []providers.Message, opts providers.Options, stage Stage, log *slog.Logger) (string, error) {
	start := time.Now()
	text, err := c.Complete(ctx, msgs, opts)
	if err != nil {
		return "", err
	}
	log.Debug("stage completed", "stage", stage, "elapsed_ms", time.Since(start).Milliseconds(), "bytes", len(text))
	return text, nil
}

// redactInput returns a copy of in with secrets scrubbed from every text
// field and the number of replacements made.
func redactInput(in ArchitectureInput) (ArchitectureInput, int) {
	out := ArchitectureInput{
		Sections: make([]Section, len(in.Sections)),
		Diagrams: make([]Diagram, len(in.Diagrams)),
	}
	var total, n int
	out.RawText, total = redact.SecretsCount(in.RawText)
	for i, s := range in.Sections {
		out.Sections[i].Title = redact.Secrets(s.Title)
		out.Sections[i].Content, n = redact.SecretsCount(s.Content)
		total += n
	}
	for i, d := range in.Diagrams {
		out.Diagrams[i].Type = d.Type
		out.Diagrams[i].Raw, n = redact.SecretsCount(d.Raw)
		total += n
	}
	return out, total
}
