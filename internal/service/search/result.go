package search

import "github.com/ranklens/ranklens-backend/internal/domain"

// SearchResult is returned by the Search operation.
type SearchResult struct {
	Results    []domain.KeywordResult
	Fallback   bool
	Generation uint64
	Balance    int
}

// BulkResult is returned by the BulkSearch operation.
type BulkResult struct {
	Results   []domain.KeywordResult // union across lines, deduplicated by keyword
	Requested int
	Succeeded int
	Balance   int
}
