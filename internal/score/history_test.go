package score

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	h, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, h.Len())

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, h.Append(Record{RunID: "a", BaseLevel: 2, TimeAlive: 90, RecordedAt: at}))
	require.NoError(t, h.Append(Record{RunID: "b", BaseLevel: 1, TimeAlive: 30, RecordedAt: at}))

	reloaded, err := Load(path)
	require.NoError(t, err)
	records := reloaded.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].RunID)
	assert.Equal(t, uint64(30), records[1].TimeAlive)
	assert.True(t, at.Equal(records[0].RecordedAt))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".scores-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestHistory_Best(t *testing.T) {
	h, err := Load("")
	require.NoError(t, err)
	for _, rec := range []Record{
		{RunID: "slow", BaseLevel: 1, TimeAlive: 200},
		{RunID: "high", BaseLevel: 4, TimeAlive: 50},
		{RunID: "mid-long", BaseLevel: 3, TimeAlive: 120},
		{RunID: "mid-short", BaseLevel: 3, TimeAlive: 60},
	} {
		require.NoError(t, h.Append(rec))
	}

	best := h.Best(3)
	require.Len(t, best, 3)
	assert.Equal(t, "high", best[0].RunID)
	assert.Equal(t, "mid-long", best[1].RunID)
	assert.Equal(t, "mid-short", best[2].RunID)
	assert.Len(t, h.Best(10), 4)
	assert.Equal(t, "slow", h.Records()[0].RunID, "insertion order is kept")
}

func TestHistory_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	h, err := Load(path)
	assert.Error(t, err)
	require.NotNil(t, h)
	assert.Zero(t, h.Len())
}
