package review

import "fmt"

// Stage names a pipeline step that can fail.
type Stage string

const (
	StageExtract Stage = "extract"
	StageDetect  Stage = "detect"
	StageReport  Stage = "report"
	StageStore   Stage = "store"
)

// StageError wraps the failure that aborted a run with the stage it happened
// in.
type StageError struct {
	Stage Stage
	// State is the pipeline state the run was in when it failed.
	State string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
