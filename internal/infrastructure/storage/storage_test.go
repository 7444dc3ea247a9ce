package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func makeRun(t *testing.T, createdAt time.Time, mismatches int) *RunRecord {
	t.Helper()
	overall := reconcile.StatusMatch
	if mismatches > 0 {
		overall = reconcile.StatusMismatch
	}
	report := &reconcile.Report{
		Comparisons: []reconcile.FieldComparison{
			{Field: reconcile.FieldAmount, FormValue: "12.00", ExtractedValue: "12.00", Status: reconcile.StatusMatch},
		},
		MismatchCount: mismatches,
		Overall:       overall,
	}
	run := &RunRecord{
		ID:        uuid.NewString(),
		CreatedAt: createdAt,
		Timezone:  "America/Chicago",
	}
	require.NoError(t, run.SetReport(report))
	return run
}

func TestStorage_SaveAndGetRun(t *testing.T) {
	s := newTestStorage(t)
	run := makeRun(t, time.Now().UTC(), 0)

	require.NoError(t, s.SaveRun(run))

	got, err := s.GetRun(run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "America/Chicago", got.Timezone)
	assert.Equal(t, string(reconcile.StatusMatch), got.Overall)

	report, err := got.Report()
	require.NoError(t, err)
	require.Len(t, report.Comparisons, 1)
	assert.Equal(t, reconcile.FieldAmount, report.Comparisons[0].Field)
}

func TestStorage_GetRun_Missing(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.GetRun("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_ListRuns_NewestFirst(t *testing.T) {
	s := newTestStorage(t)
	base := time.Now().UTC()

	oldest := makeRun(t, base.Add(-2*time.Hour), 0)
	middle := makeRun(t, base.Add(-time.Hour), 1)
	newest := makeRun(t, base, 0)
	for _, run := range []*RunRecord{oldest, middle, newest} {
		require.NoError(t, s.SaveRun(run))
	}

	runs, total, err := s.ListRuns(RunFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, runs, 3)
	assert.Equal(t, newest.ID, runs[0].ID)
	assert.Equal(t, oldest.ID, runs[2].ID)
}

func TestStorage_ListRuns_FilterAndPaginate(t *testing.T) {
	s := newTestStorage(t)
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.SaveRun(makeRun(t, base.Add(time.Duration(i)*time.Minute), i%2)))
	}

	runs, total, err := s.ListRuns(RunFilters{Overall: string(reconcile.StatusMismatch)})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, runs, 2)

	runs, total, err = s.ListRuns(RunFilters{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, runs, 1)
}

func TestMockRepository_ListRuns_NegativeOffset(t *testing.T) {
	repo := NewMockRepository()
	require.NoError(t, repo.SaveRun(makeRun(t, time.Now().UTC(), 0)))

	// A negative offset lists from the start, same as the SQLite path.
	runs, total, err := repo.ListRuns(RunFilters{Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, runs, 1)
}

func TestStorage_GetStats(t *testing.T) {
	s := newTestStorage(t)
	base := time.Now().UTC()
	require.NoError(t, s.SaveRun(makeRun(t, base, 0)))
	require.NoError(t, s.SaveRun(makeRun(t, base.Add(time.Minute), 2)))

	stats, err := s.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRuns)
	assert.Equal(t, 1, stats.CleanRuns)
	assert.Equal(t, 1, stats.MismatchRuns)
	assert.Equal(t, 2, stats.FieldsChecked)
}

func TestStorage_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.SaveRun(makeRun(t, time.Now().UTC(), 0)))
	require.NoError(t, first.Close())

	// Reopening must not re-run applied migrations or lose data.
	second, err := NewStorage(path)
	require.NoError(t, err)
	defer second.Close()

	_, total, err := second.ListRuns(RunFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
