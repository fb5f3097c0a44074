package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultParams(t *testing.T) {
	params := NewDefaultParams()

	if params.ExcellentScore <= params.GoodScore || params.GoodScore <= params.ModerateScore {
		t.Errorf("compatibility thresholds must be strictly descending, got %d/%d/%d",
			params.ExcellentScore, params.GoodScore, params.ModerateScore)
	}
	if params.BestDayScore <= params.ChallengeDayScore {
		t.Errorf("BestDayScore should be above ChallengeDayScore, got %d and %d",
			params.BestDayScore, params.ChallengeDayScore)
	}
	assert.Equal(t, 5, params.LuckyDatesLimit)
	assert.Equal(t, 10, params.BiorhythmCriticalBand)
}

func TestNewParams(t *testing.T) {
	params := NewParams(ParamsConfig{
		GoodScore:       65,
		LuckyDatesLimit: 3,
	})

	defaults := NewDefaultParams()
	assert.Equal(t, 65, params.GoodScore)
	assert.Equal(t, 3, params.LuckyDatesLimit)
	assert.Equal(t, defaults.ExcellentScore, params.ExcellentScore, "zero values keep defaults")
	assert.Equal(t, defaults.BestDayScore, params.BestDayScore, "zero values keep defaults")
	assert.Equal(t, defaults.BiorhythmCriticalBand, params.BiorhythmCriticalBand, "zero values keep defaults")
}

func TestParamsCompatibilityLevel(t *testing.T) {
	params := NewDefaultParams()

	tests := []struct {
		score    int
		expected CompatibilityLevel
	}{
		{100, LevelExcellent},
		{85, LevelExcellent},
		{84, LevelGood},
		{70, LevelGood},
		{69, LevelModerate},
		{55, LevelModerate},
		{54, LevelChallenging},
		{0, LevelChallenging},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, params.CompatibilityLevel(tc.score), "score %d", tc.score)
	}
}
