// Package export renders a keyword result set as a CSV or JSON text blob for
// download. Field order is fixed: keyword, searchVolume, competitionScore,
// cpcValue, intentType, trendDirection, strategy, cluster.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

var csvHeader = []string{
	"keyword", "searchVolume", "competitionScore", "cpcValue",
	"intentType", "trendDirection", "strategy", "cluster",
}

// CSV renders results as an RFC 4180 CSV document with a header row.
func CSV(results []domain.KeywordResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		record := []string{
			r.Keyword,
			strconv.Itoa(r.SearchVolume),
			strconv.Itoa(r.CompetitionScore),
			strconv.FormatFloat(r.CPCValue, 'f', -1, 64),
			string(r.Intent),
			string(r.Trend),
			deref(r.Strategy),
			deref(r.Cluster),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %q: %w", r.Keyword, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// jsonRow mirrors the CSV column order for the JSON export.
type jsonRow struct {
	Keyword          string  `json:"keyword"`
	SearchVolume     int     `json:"searchVolume"`
	CompetitionScore int     `json:"competitionScore"`
	CPCValue         float64 `json:"cpcValue"`
	IntentType       string  `json:"intentType"`
	TrendDirection   string  `json:"trendDirection"`
	Strategy         string  `json:"strategy"`
	Cluster          string  `json:"cluster"`
}

// JSON renders results as an indented JSON array.
func JSON(results []domain.KeywordResult) ([]byte, error) {
	rows := make([]jsonRow, len(results))
	for i, r := range results {
		rows[i] = jsonRow{
			Keyword:          r.Keyword,
			SearchVolume:     r.SearchVolume,
			CompetitionScore: r.CompetitionScore,
			CPCValue:         r.CPCValue,
			IntentType:       string(r.Intent),
			TrendDirection:   string(r.Trend),
			Strategy:         deref(r.Strategy),
			Cluster:          deref(r.Cluster),
		}
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json export: %w", err)
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
