package anthropic

import (
	"fmt"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// modeInstructions steers the record mix per search mode.
var modeInstructions = map[domain.SearchMode]string{
	domain.SearchModeWeb: `Focus on organic web search: a mix of informational, commercial and
transactional keywords a content marketer would target with articles and landing pages.`,
	domain.SearchModeVideo: `Focus on video platforms (YouTube, TikTok, Shorts): viral and
entertainment intent, tutorial and "how to" angles, hook-friendly phrasings.`,
	domain.SearchModeCompetitor: `The subject describes a competitor's page. Produce keywords the
competitor likely ranks for, plus adjacent gaps worth attacking.`,
}

// buildPrompt creates the generation prompt for a single query.
func buildPrompt(subject string, mode domain.SearchMode, n int) string {
	return fmt.Sprintf(`You are a senior SEO strategist with access to keyword research data.

Subject: %q
%s

Produce exactly %d keyword intelligence records as a JSON array matching this schema:
[
  {
    "keyword": "<keyword phrase>",
    "search_volume": <monthly searches, integer>,
    "competition_score": <0-100 integer>,
    "cpc_value": <USD cost per click, number>,
    "intent_type": "<Informational|Commercial|Transactional|Navigational|Viral|Entertainment>",
    "trend_direction": "<up|down|neutral>",
    "strategy": "<one-sentence content strategy for this keyword>",
    "cluster": "<short topical cluster label>"
  }
]

Rules:
- Realistic, internally consistent numbers (high volume rarely pairs with low competition)
- Group related keywords under shared cluster labels
- Each strategy must be actionable, not generic filler
- Output ONLY the JSON array, no markdown, no explanations`, subject, modeInstructions[mode], n)
}
