// Package cluster groups flat keyword result lists into named clusters for
// display. Grouping is stable: insertion order is preserved within each group
// and groups iterate in order of first occurrence.
package cluster

import (
	"math"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// Default labels applied when a record carries no grouping tag.
const (
	DefaultClusterLabel = "General Intelligence"
	DefaultIntentLabel  = "Mixed"
)

// KeyFunc extracts the grouping label from a result.
type KeyFunc func(domain.KeywordResult) string

// ByCluster groups on the cluster tag, falling back to DefaultClusterLabel.
func ByCluster(r domain.KeywordResult) string {
	if r.Cluster == nil || *r.Cluster == "" {
		return DefaultClusterLabel
	}
	return *r.Cluster
}

// ByIntent groups on the intent tag, falling back to DefaultIntentLabel.
func ByIntent(r domain.KeywordResult) string {
	if r.Intent == "" {
		return DefaultIntentLabel
	}
	return string(r.Intent)
}

// Group is one named cluster of results.
type Group struct {
	Label   string                 `json:"label"`
	Results []domain.KeywordResult `json:"results"`
}

// GroupBy partitions results into labeled groups using keyFn. The returned
// slice keeps first-occurrence group order; each group's Results keep input
// order.
func GroupBy(results []domain.KeywordResult, keyFn KeyFunc) []Group {
	if len(results) == 0 {
		return nil
	}

	index := map[string]int{}
	var groups []Group
	for _, r := range results {
		label := keyFn(r)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	return groups
}

// Summary holds the per-group header figures shown above each cluster.
type Summary struct {
	Count           int `json:"count"`
	TotalVolume     int `json:"total_volume"`
	MeanCompetition int `json:"mean_competition"` // rounded to nearest integer
}

// Summarize computes the header summary for one group.
func Summarize(g Group) Summary {
	s := Summary{Count: len(g.Results)}
	if s.Count == 0 {
		return s
	}

	compSum := 0
	for _, r := range g.Results {
		s.TotalVolume += r.SearchVolume
		compSum += r.CompetitionScore
	}
	s.MeanCompetition = int(math.Round(float64(compSum) / float64(s.Count)))
	return s
}
