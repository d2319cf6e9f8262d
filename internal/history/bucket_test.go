package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

func at(t time.Time) int64 { return t.UnixMilli() }

func TestGroupByTime_Empty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, GroupByTime(nil, time.Now()))
}

func TestGroupByTime_Buckets(t *testing.T) {
	t.Parallel()

	// Fixed "now": 2026-03-10 15:00 local.
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	entries := []domain.SearchHistoryEntry{
		{Query: "today-morning", Timestamp: at(midnight.Add(8 * time.Hour))},
		{Query: "yesterday", Timestamp: at(midnight.Add(-10 * time.Hour))},
		{Query: "three-days-ago", Timestamp: at(midnight.Add(-3 * 24 * time.Hour))},
		{Query: "last-month", Timestamp: at(midnight.Add(-30 * 24 * time.Hour))},
		{Query: "today-noon", Timestamp: at(midnight.Add(12 * time.Hour))},
	}

	groups := GroupByTime(entries, now)
	require.Len(t, groups, 4)

	assert.Equal(t, BucketToday, groups[0].Bucket)
	assert.Equal(t, BucketYesterday, groups[1].Bucket)
	assert.Equal(t, BucketThisWeek, groups[2].Bucket)
	assert.Equal(t, BucketEarlier, groups[3].Bucket)

	// Within Today, sorted descending by timestamp.
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "today-noon", groups[0].Entries[0].Query)
	assert.Equal(t, "today-morning", groups[0].Entries[1].Query)
}

func TestGroupByTime_EmptyBucketsOmitted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	entries := []domain.SearchHistoryEntry{
		{Query: "only-today", Timestamp: at(now)},
	}

	groups := GroupByTime(entries, now)
	require.Len(t, groups, 1)
	assert.Equal(t, BucketToday, groups[0].Bucket)
}

func TestGroupByTime_TotalPartition(t *testing.T) {
	t.Parallel()

	now := time.Now()
	var entries []domain.SearchHistoryEntry
	for i := 0; i < 50; i++ {
		entries = append(entries, domain.SearchHistoryEntry{
			Query:     string(rune('a' + i%26)),
			Timestamp: now.UnixMilli() - int64(i)*13*60*60*1000, // spread over weeks
		})
	}

	groups := GroupByTime(entries, now)

	total := 0
	seen := map[int64]int{}
	for _, g := range groups {
		total += len(g.Entries)
		for _, e := range g.Entries {
			seen[e.Timestamp]++
		}
	}
	assert.Equal(t, len(entries), total, "union of buckets equals input")
	for ts, n := range seen {
		assert.Equalf(t, countWithTimestamp(entries, ts), n, "timestamp %d appears in exactly one bucket per occurrence", ts)
	}
}

func countWithTimestamp(entries []domain.SearchHistoryEntry, ts int64) int {
	n := 0
	for _, e := range entries {
		if e.Timestamp == ts {
			n++
		}
	}
	return n
}

func TestGroupByTime_StableForEqualTimestamps(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ts := now.UnixMilli()
	entries := []domain.SearchHistoryEntry{
		{Query: "first", Timestamp: ts},
		{Query: "second", Timestamp: ts},
		{Query: "third", Timestamp: ts},
	}

	groups := GroupByTime(entries, now)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Entries, 3)
	assert.Equal(t, "first", groups[0].Entries[0].Query)
	assert.Equal(t, "second", groups[0].Entries[1].Query)
	assert.Equal(t, "third", groups[0].Entries[2].Query)
}
