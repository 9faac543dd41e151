package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/archon/internal/review"
)

func sampleReview(id string) review.ArchitectureReview {
	return review.ArchitectureReview{
		ID:      id,
		Summary: "summary " + id,
		ArchitectureModel: review.ArchitectureModel{
			Context: "ctx",
			Components: []review.Component{
				{ID: "api", Name: "API", Type: review.ComponentService, SyncDependencies: []string{"db"}, AsyncDependencies: []string{}},
			},
			CrossCuttingConcerns: review.CrossCuttingConcerns{Auth: "oidc"},
		},
		Issues: []review.ArchitectureIssue{
			{ID: "i1", Title: "SPOF", Category: review.CategoryReliability, Severity: review.SeverityHigh, ComponentsInvolved: []string{"db"}, EffortEstimate: review.EffortMedium},
		},
		RecommendationsOverview: "add a replica",
		FullReportMarkdown:      "# Report",
		CreatedAt:               "2026-01-02T03:04:05.000Z",
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	r := sampleReview("abc")
	require.NoError(t, m.Save(r))

	got, ok := m.FindByID("abc")
	require.True(t, ok)
	assert.Equal(t, r, got)
}

func TestMemory_UnknownID(t *testing.T) {
	m := NewMemory()
	got, ok := m.FindByID("missing")
	assert.False(t, ok)
	assert.Equal(t, review.ArchitectureReview{}, got)
}

func TestMemory_EmptyID(t *testing.T) {
	m := NewMemory()
	assert.ErrorIs(t, m.Save(review.ArchitectureReview{}), ErrEmptyID)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_FindAllInsertionOrder(t *testing.T) {
	m := NewMemory()
	assert.NotNil(t, m.FindAll())
	assert.Empty(t, m.FindAll())

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, m.Save(sampleReview(id)))
	}
	updated := sampleReview("a")
	updated.Summary = "changed"
	require.NoError(t, m.Save(updated))

	all := m.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "changed", all[1].Summary)
	assert.Equal(t, "b", all[2].ID)
}

func TestMemory_Concurrent(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := fmt.Sprintf("r-%d", i)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Save(sampleReview(id)))
		}()
		go func() {
			defer wg.Done()
			m.FindByID(id)
			_ = m.FindAll()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
	assert.Len(t, m.FindAll(), 50)
}
