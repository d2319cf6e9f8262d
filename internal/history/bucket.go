package history

import (
	"sort"
	"time"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// TimeBucket is a display label for a slice of history.
type TimeBucket string

const (
	BucketToday     TimeBucket = "Today"
	BucketYesterday TimeBucket = "Yesterday"
	BucketThisWeek  TimeBucket = "This Week"
	BucketEarlier   TimeBucket = "Earlier"
)

const dayMillis = 24 * 60 * 60 * 1000

// GroupedHistory pairs a bucket label with the entries falling in it.
type GroupedHistory struct {
	Bucket  TimeBucket                 `json:"bucket"`
	Entries []domain.SearchHistoryEntry `json:"entries"`
}

// GroupByTime partitions entries into {Today, Yesterday, This Week, Earlier}
// buckets relative to now, using local midnight boundaries. Entries are sorted
// descending by timestamp (stable, so equal timestamps keep their relative
// order); buckets are emitted in fixed order with empty buckets omitted.
//
// The grouping is a total, disjoint partition: every input entry lands in
// exactly one bucket.
func GroupByTime(entries []domain.SearchHistoryEntry, now time.Time) []GroupedHistory {
	if len(entries) == 0 {
		return nil
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today := midnight.UnixMilli()
	yesterday := today - dayMillis
	weekStart := today - 7*dayMillis

	sorted := make([]domain.SearchHistoryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})

	byBucket := map[TimeBucket][]domain.SearchHistoryEntry{}
	for _, e := range sorted {
		var b TimeBucket
		switch {
		case e.Timestamp >= today:
			b = BucketToday
		case e.Timestamp >= yesterday:
			b = BucketYesterday
		case e.Timestamp >= weekStart:
			b = BucketThisWeek
		default:
			b = BucketEarlier
		}
		byBucket[b] = append(byBucket[b], e)
	}

	var out []GroupedHistory
	for _, b := range []TimeBucket{BucketToday, BucketYesterday, BucketThisWeek, BucketEarlier} {
		if group, ok := byBucket[b]; ok {
			out = append(out, GroupedHistory{Bucket: b, Entries: group})
		}
	}
	return out
}
