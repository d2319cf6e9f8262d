package domain

import "time"

// KeywordResult is one AI-generated keyword intelligence record.
// Within one result set a record is uniquely identified by its Keyword text
// (case-sensitive, as produced by the generator).
//
// JSON tags match the shape the UI consumes and the shape persisted in the
// local snapshot store.
type KeywordResult struct {
	Keyword          string         `json:"keyword"`
	SearchVolume     int            `json:"search_volume"`
	CompetitionScore int            `json:"competition_score"` // 0–100
	CPCValue         float64        `json:"cpc_value"`
	Intent           IntentType     `json:"intent_type"`
	Trend            TrendDirection `json:"trend_direction"`
	Strategy         *string        `json:"strategy,omitempty"`
	Cluster          *string        `json:"cluster,omitempty"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`

	// Fallback marks a record produced from the canned substitute payload
	// rather than live generator output.
	Fallback bool `json:"fallback,omitempty"`
}

// ResultSet is an ordered collection of keyword results tagged with the
// generation counter it was produced under.
type ResultSet struct {
	Generation uint64          `json:"generation"`
	Results    []KeywordResult `json:"results"`
	Fallback   bool            `json:"fallback,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
