package anthropic

import (
	"fmt"
	"hash/fnv"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// fallbackTemplate is one canned record shape derived from the query.
type fallbackTemplate struct {
	pattern string
	intent  domain.IntentType
	trend   domain.TrendDirection
	volume  int
	comp    int
	cpc     float64
	cluster string
}

var fallbackTemplates = map[domain.SearchMode][]fallbackTemplate{
	domain.SearchModeWeb: {
		{"%s", domain.IntentInformational, domain.TrendNeutral, 2400, 45, 1.10, "Core"},
		{"best %s", domain.IntentCommercial, domain.TrendUp, 1900, 62, 2.40, "Comparison"},
		{"%s guide", domain.IntentInformational, domain.TrendUp, 880, 38, 0.90, "Education"},
		{"buy %s", domain.IntentTransactional, domain.TrendNeutral, 720, 71, 3.10, "Purchase"},
		{"%s vs alternatives", domain.IntentCommercial, domain.TrendNeutral, 390, 55, 1.80, "Comparison"},
		{"%s pricing", domain.IntentTransactional, domain.TrendDown, 310, 48, 2.20, "Purchase"},
	},
	domain.SearchModeVideo: {
		{"%s tutorial", domain.IntentInformational, domain.TrendUp, 3100, 42, 0.60, "Tutorials"},
		{"%s in 60 seconds", domain.IntentViral, domain.TrendUp, 1500, 33, 0.40, "Shorts"},
		{"%s reaction", domain.IntentEntertainment, domain.TrendNeutral, 950, 29, 0.30, "Entertainment"},
		{"how to %s", domain.IntentInformational, domain.TrendUp, 2700, 51, 0.70, "Tutorials"},
		{"%s challenge", domain.IntentViral, domain.TrendUp, 640, 25, 0.35, "Shorts"},
	},
	domain.SearchModeCompetitor: {
		{"%s alternatives", domain.IntentCommercial, domain.TrendUp, 1300, 58, 2.70, "Competitive"},
		{"%s review", domain.IntentCommercial, domain.TrendNeutral, 990, 47, 1.90, "Competitive"},
		{"sites like %s", domain.IntentNavigational, domain.TrendNeutral, 560, 36, 1.20, "Competitive"},
		{"%s vs us", domain.IntentCommercial, domain.TrendUp, 240, 44, 2.10, "Positioning"},
	},
}

// Fallback returns the canned substitute payload for a query. The same
// query and mode always produce the same records, and every record is
// marked Fallback.
func Fallback(query string, mode domain.SearchMode) []domain.KeywordResult {
	templates, ok := fallbackTemplates[mode]
	if !ok {
		templates = fallbackTemplates[domain.SearchModeWeb]
	}

	// Small deterministic jitter so different queries do not
	// report identical numbers.
	h := fnv.New32a()
	h.Write([]byte(query))
	jitter := int(h.Sum32() % 97)

	out := make([]domain.KeywordResult, 0, len(templates))
	for _, tpl := range templates {
		strategy := fmt.Sprintf("Target %q with dedicated content once live data is available.",
			fmt.Sprintf(tpl.pattern, query))
		cluster := tpl.cluster
		out = append(out, domain.KeywordResult{
			Keyword:          fmt.Sprintf(tpl.pattern, query),
			SearchVolume:     tpl.volume + jitter,
			CompetitionScore: tpl.comp,
			CPCValue:         tpl.cpc,
			Intent:           tpl.intent,
			Trend:            tpl.trend,
			Strategy:         &strategy,
			Cluster:          &cluster,
			Fallback:         true,
		})
	}
	return out
}
