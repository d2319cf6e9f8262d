package export

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

func ptr(s string) *string { return &s }

func sample() []domain.KeywordResult {
	return []domain.KeywordResult{
		{
			Keyword:          "best seo tools",
			SearchVolume:     12400,
			CompetitionScore: 67,
			CPCValue:         3.75,
			Intent:           domain.IntentCommercial,
			Trend:            domain.TrendUp,
			Strategy:         ptr("Target comparison posts, \"top 10\" lists"),
			Cluster:          ptr("Tooling"),
		},
		{
			Keyword:          "what is seo",
			SearchVolume:     90500,
			CompetitionScore: 21,
			CPCValue:         0.4,
			Intent:           domain.IntentInformational,
			Trend:            domain.TrendNeutral,
		},
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	in := sample()
	out, err := CSV(in)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + 2 rows")

	assert.Equal(t, []string{
		"keyword", "searchVolume", "competitionScore", "cpcValue",
		"intentType", "trendDirection", "strategy", "cluster",
	}, records[0])

	for i, r := range in {
		row := records[i+1]
		assert.Equal(t, r.Keyword, row[0])

		vol, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		assert.Equal(t, r.SearchVolume, vol)

		comp, err := strconv.Atoi(row[2])
		require.NoError(t, err)
		assert.Equal(t, r.CompetitionScore, comp)

		cpc, err := strconv.ParseFloat(row[3], 64)
		require.NoError(t, err)
		assert.Equal(t, r.CPCValue, cpc)
	}
}

func TestCSV_QuotedFields(t *testing.T) {
	t.Parallel()

	in := []domain.KeywordResult{{
		Keyword:  "phrase, with comma",
		Strategy: ptr("multi\nline"),
	}}

	out, err := CSV(in)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "phrase, with comma", records[1][0])
	assert.Equal(t, "multi\nline", records[1][6])
}

func TestCSV_EmptyResultSet(t *testing.T) {
	t.Parallel()

	out, err := CSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestJSON_FieldOrderAndValues(t *testing.T) {
	t.Parallel()

	out, err := JSON(sample())
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(out, &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "best seo tools", rows[0]["keyword"])
	assert.EqualValues(t, 12400, rows[0]["searchVolume"])
	assert.Equal(t, "Commercial", rows[0]["intentType"])
	assert.Equal(t, "", rows[1]["strategy"], "absent strategy exports as empty string")

	// Key order in the emitted document matches the CSV column order.
	text := string(out)
	assert.Less(t, strings.Index(text, `"keyword"`), strings.Index(text, `"searchVolume"`))
	assert.Less(t, strings.Index(text, `"searchVolume"`), strings.Index(text, `"competitionScore"`))
}
