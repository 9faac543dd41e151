package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_HappyPath(t *testing.T) {
	p, err := NewPipeline("run-1")
	require.NoError(t, err)
	assert.Equal(t, StateParsed, p.Current())

	steps := []struct{ event, want string }{
		{EventExtracted, StateModelExtracted},
		{EventDetected, StateIssuesDetected},
		{EventReported, StateReportGenerated},
		{EventStored, StateStored},
	}
	for _, s := range steps {
		require.NoError(t, p.Advance(s.event))
		assert.Equal(t, s.want, p.Current())
	}
	assert.True(t, p.Done())
}

func TestPipeline_NoSkippingOrRevisiting(t *testing.T) {
	p, err := NewPipeline("run-2")
	require.NoError(t, err)

	assert.Error(t, p.Advance(EventDetected), "cannot skip extraction")
	assert.Equal(t, StateParsed, p.Current())

	require.NoError(t, p.Advance(EventExtracted))
	assert.Error(t, p.Advance(EventExtracted), "cannot revisit a stage")
	assert.Equal(t, StateModelExtracted, p.Current())
}

func TestPipeline_FailIsTerminal(t *testing.T) {
	p, err := NewPipeline("run-3")
	require.NoError(t, err)
	require.NoError(t, p.Advance(EventExtracted))
	require.NoError(t, p.Fail())
	assert.Equal(t, StateFailed, p.Current())
	assert.True(t, p.Done())

	assert.Error(t, p.Advance(EventDetected))
	assert.Error(t, p.Fail())
}

func TestPipeline_StoredIsTerminal(t *testing.T) {
	p, err := NewPipeline("run-4")
	require.NoError(t, err)
	for _, e := range []string{EventExtracted, EventDetected, EventReported, EventStored} {
		require.NoError(t, p.Advance(e))
	}
	assert.Error(t, p.Fail())
	assert.Equal(t, StateStored, p.Current())
}
