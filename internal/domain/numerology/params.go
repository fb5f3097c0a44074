package numerology

// Params defines the tunable thresholds of the engine. Every numerology rule
// itself is fixed; only classification cut-offs and list sizes vary.
type Params struct {
	// Compatibility level thresholds (score ≥ threshold)
	ExcellentScore int
	GoodScore      int
	ModerateScore  int

	// Calendar selection
	LuckyDatesLimit   int
	BestDayScore      int
	ChallengeDayScore int

	// Biorhythm values with magnitude below this percent are "critical"
	BiorhythmCriticalBand int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the defaults.
type ParamsConfig struct {
	ExcellentScore int
	GoodScore      int
	ModerateScore  int

	LuckyDatesLimit   int
	BestDayScore      int
	ChallengeDayScore int

	BiorhythmCriticalBand int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		ExcellentScore: 85,
		GoodScore:      70,
		ModerateScore:  55,

		LuckyDatesLimit:   5,
		BestDayScore:      80,
		ChallengeDayScore: 50,

		BiorhythmCriticalBand: 10,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.ExcellentScore > 0 {
		params.ExcellentScore = config.ExcellentScore
	}
	if config.GoodScore > 0 {
		params.GoodScore = config.GoodScore
	}
	if config.ModerateScore > 0 {
		params.ModerateScore = config.ModerateScore
	}

	if config.LuckyDatesLimit > 0 {
		params.LuckyDatesLimit = config.LuckyDatesLimit
	}
	if config.BestDayScore > 0 {
		params.BestDayScore = config.BestDayScore
	}
	if config.ChallengeDayScore > 0 {
		params.ChallengeDayScore = config.ChallengeDayScore
	}

	if config.BiorhythmCriticalBand > 0 {
		params.BiorhythmCriticalBand = config.BiorhythmCriticalBand
	}

	return params
}

// CompatibilityLevel buckets a score using the configured thresholds.
func (p *Params) CompatibilityLevel(score int) CompatibilityLevel {
	switch {
	case score >= p.ExcellentScore:
		return LevelExcellent
	case score >= p.GoodScore:
		return LevelGood
	case score >= p.ModerateScore:
		return LevelModerate
	default:
		return LevelChallenging
	}
}
