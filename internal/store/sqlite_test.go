package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjf-simulator/internal/core"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleSimulation() ([]core.Process, core.SimulationResult) {
	processes := []core.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 3},
		{ID: "P2", ArrivalTime: 10, BurstTime: 2},
	}
	result := core.SimulationResult{
		Timeline: []core.TimelineSlot{
			{ID: "P1", Start: 0, End: 3},
			{ID: core.IdleID, Start: 3, End: 10},
			{ID: "P2", Start: 10, End: 12},
		},
		Details: []core.ProcessResult{
			{ID: "P1", ArrivalTime: 0, BurstTime: 3, StartTime: 0, CompletionTime: 3, TurnaroundTime: 3},
			{ID: "P2", ArrivalTime: 10, BurstTime: 2, StartTime: 10, CompletionTime: 12, TurnaroundTime: 2},
		},
		AvgTurnaroundTime: 2.5,
		CPUUtilization:    5.0 / 12.0 * 100,
	}
	return processes, result
}

func TestSQLiteStore_SaveGet(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	processes, result := sampleSimulation()

	id, err := st.Save(ctx, processes, result)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "sim_"))

	record, err := st.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, processes, record.Processes)
	assert.Equal(t, result, record.Result)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	st := testStore(t)

	_, err := st.Get(context.Background(), "sim_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_List(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	processes, result := sampleSimulation()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		st.now = func() time.Time { return at }
		id, err := st.Save(ctx, processes, result)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	summaries, err := st.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, ids[2], summaries[0].ID)
	assert.Equal(t, ids[1], summaries[1].ID)
	assert.Equal(t, 2, summaries[0].ProcessCount)
	assert.Equal(t, 2.5, summaries[0].AvgTurnaroundTime)
	assert.Equal(t, result.CPUUtilization, summaries[0].CpuUtilization)
	assert.True(t, base.Add(2*time.Minute).Equal(summaries[0].CreatedAt))
}

func TestSQLiteStore_ListEmpty(t *testing.T) {
	st := testStore(t)

	summaries, err := st.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries)
}
