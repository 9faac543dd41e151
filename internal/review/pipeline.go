package review

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Pipeline states. These stay untyped string constants for statekit.StateID.
const (
	StateParsed          = "parsed"
	StateModelExtracted  = "model_extracted"
	StateIssuesDetected  = "issues_detected"
	StateReportGenerated = "report_generated"
	StateStored          = "stored"
	StateFailed          = "failed"
)

// Pipeline events.
const (
	EventExtracted = "extracted"
	EventDetected  = "detected"
	EventReported  = "reported"
	EventStored    = "stored"
	EventFail      = "fail"
)

type pipelineContext struct {
	RunID string
}

// Pipeline tracks one review run through its stages. States only move
// forward; Stored and Failed accept no further events.
type Pipeline struct {
	runID       string
	interpreter *statekit.Interpreter[pipelineContext]
}

// NewPipeline returns a pipeline in the Parsed state.
func NewPipeline(runID string) (*Pipeline, error) {
	builder := statekit.NewMachine[pipelineContext]("review-pipeline").
		WithInitial(statekit.StateID(StateParsed)).
		WithContext(pipelineContext{RunID: runID})

	builder.State(StateParsed).
		On(EventExtracted).Target(StateModelExtracted).
		On(EventFail).Target(StateFailed).
		Done()

	builder.State(StateModelExtracted).
		On(EventDetected).Target(StateIssuesDetected).
		On(EventFail).Target(StateFailed).
		Done()

	builder.State(StateIssuesDetected).
		On(EventReported).Target(StateReportGenerated).
		On(EventFail).Target(StateFailed).
		Done()

	builder.State(StateReportGenerated).
		On(EventStored).Target(StateStored).
		On(EventFail).Target(StateFailed).
		Done()

	builder.State(StateStored).Done()
	builder.State(StateFailed).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building pipeline state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Pipeline{runID: runID, interpreter: interpreter}, nil
}

// Advance sends event and reports an error when it does not move the
// pipeline.
func (p *Pipeline) Advance(event string) error {
	before := p.Current()
	p.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if p.Current() != before {
		return nil
	}
	return fmt.Errorf("pipeline %s: event %q is not allowed in state %q", p.runID, event, before)
}

// Fail moves a running pipeline to Failed.
func (p *Pipeline) Fail() error {
	return p.Advance(EventFail)
}

func (p *Pipeline) Current() string {
	return string(p.interpreter.State().Value)
}

// Done reports whether the pipeline reached a terminal state.
func (p *Pipeline) Done() bool {
	s := p.Current()
	return s == StateStored || s == StateFailed
}
