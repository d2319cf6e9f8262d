package domain

// SearchHistoryEntry records one past search together with its cached result
// set, allowing offline drill-down. Entries are never mutated after creation.
//
// Results may be empty when the entry was restored from a lightweight history
// reference; consumers must re-fetch before rendering drill-down in that case.
type SearchHistoryEntry struct {
	Query       string          `json:"query"`
	Mode        SearchMode      `json:"mode"`
	Timestamp   int64           `json:"timestamp"` // epoch milliseconds
	ResultCount int             `json:"result_count"`
	Results     []KeywordResult `json:"results,omitempty"`
}

// Key identifies the (query, mode) pair a history entry is deduplicated by.
func (e SearchHistoryEntry) Key() string {
	return e.Query + "\x00" + string(e.Mode)
}
