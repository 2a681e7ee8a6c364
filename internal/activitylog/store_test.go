package activitylog

import (
	"path/filepath"
	"testing"
	"time"

	"rewardshq/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	store, err := Open(filepath.Join(t.TempDir(), "data", "activity.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SummaryPerFeature(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []types.ClaimRecord{
		{Feature: "task", ItemID: "t1", StatusCode: 200, Success: true},
		{Feature: "task", ItemID: "t2", StatusCode: 400},
		{Feature: "achievement", ItemID: "a1/3", StatusCode: 201, Success: true},
		{Feature: "achievement", ItemID: "a1/7", StatusCode: 200},
		{Feature: "spin", StatusCode: 200, Success: true},
	}
	for i, record := range records {
		record.Account = 1
		record.Time = start.Add(time.Duration(i) * time.Minute)
		store.Record(record)
	}

	summary, err := store.Summary()
	require.NoError(t, err)
	assert.Equal(t, []FeatureSummary{
		{Feature: "achievement", Attempts: 2, Successes: 1},
		{Feature: "spin", Attempts: 1, Successes: 1},
		{Feature: "task", Attempts: 2, Successes: 1},
	}, summary)
}

func TestStore_RecentNewestFirst(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		store.Record(types.ClaimRecord{
			SessionID: "s",
			Account:   i + 1,
			Feature:   "referral",
			ItemID:    string(rune('a' + i)),
			Success:   true,
			Time:      start.Add(time.Duration(i) * time.Second),
		})
	}

	recent, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "e", recent[0].ItemID)
	assert.Equal(t, 5, recent[0].Account)
	assert.Equal(t, "d", recent[1].ItemID)
	assert.True(t, recent[0].Time.Equal(start.Add(4*time.Second)))
}

func TestStore_EmptySummary(t *testing.T) {
	store := openTestStore(t)
	summary, err := store.Summary()
	require.NoError(t, err)
	assert.Empty(t, summary)
}
