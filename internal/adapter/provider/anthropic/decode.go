package anthropic

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// wireResult mirrors the schema the prompt asks for, with loose types so a
// sloppy response still decodes.
type wireResult struct {
	Keyword          string      `json:"keyword"`
	SearchVolume     json.Number `json:"search_volume"`
	CompetitionScore json.Number `json:"competition_score"`
	CPCValue         json.Number `json:"cpc_value"`
	IntentType       string      `json:"intent_type"`
	TrendDirection   string      `json:"trend_direction"`
	Strategy         *string     `json:"strategy"`
	Cluster          *string     `json:"cluster"`
}

// decodeResults extracts the first JSON array from response text and decodes
// it permissively: invalid enums default, scores clamp, empty keywords drop.
func decodeResults(text string) ([]domain.KeywordResult, error) {
	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var wire []wireResult
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}

	out := make([]domain.KeywordResult, 0, len(wire))
	for _, w := range wire {
		keyword := strings.TrimSpace(w.Keyword)
		if keyword == "" {
			continue
		}
		out = append(out, domain.KeywordResult{
			Keyword:          keyword,
			SearchVolume:     clampInt(numToFloat(w.SearchVolume), 0, math.MaxInt32),
			CompetitionScore: clampInt(numToFloat(w.CompetitionScore), 0, 100),
			CPCValue:         math.Max(0, numToFloat(w.CPCValue)),
			Intent:           parseIntent(w.IntentType),
			Trend:            parseTrend(w.TrendDirection),
			Strategy:         nonEmpty(w.Strategy),
			Cluster:          nonEmpty(w.Cluster),
		})
	}
	return out, nil
}

// extractJSONArray finds the first complete JSON array in a string.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	raw := s[start : end+1]
	if !json.Valid([]byte(raw)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return raw, nil
}

func numToFloat(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

func clampInt(f float64, lo, hi int) int {
	v := int(math.Round(f))
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func parseIntent(s string) domain.IntentType {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.IntentInformational
	}
	it := domain.IntentType(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
	if !it.IsValid() {
		return domain.IntentInformational
	}
	return it
}

func parseTrend(s string) domain.TrendDirection {
	td := domain.TrendDirection(strings.ToLower(strings.TrimSpace(s)))
	if !td.IsValid() {
		return domain.TrendNeutral
	}
	return td
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
