package numerology

import (
	"github.com/phrazzld/numera/internal/domain"
)

// Engine defines the numerology operations that depend on tunable parameters.
// Every method is pure: the same inputs always give the same output.
type Engine interface {
	// Profile composes every record for one person as of a reference date
	Profile(in ProfileInput, asOf domain.Date) (*Profile, error)

	// Compatibility scores two people by their birth dates
	Compatibility(a, b domain.BirthDate) (CompatibilityResult, error)

	// Daily returns the forecast of one day
	Daily(birth domain.BirthDate, asOf domain.Date) (DailyForecast, error)

	// Monthly returns the forecast of one calendar month
	Monthly(birth domain.BirthDate, year, month int) (MonthlyForecast, error)

	// Yearly returns the forecast of one calendar year
	Yearly(birth domain.BirthDate, year int) (YearlyForecast, error)

	// LuckyDates ranks the best days of a month
	LuckyDates(birth domain.BirthDate, year, month int) ([]LuckyDate, error)
}

// ProfileInput identifies the person a profile is computed for.
type ProfileInput struct {
	Name      string
	BirthDate domain.BirthDate
}

// Profile is the complete numerological portrait of one person.
type Profile struct {
	Name      string      `json:"name"`
	BirthDate domain.Date `json:"birth_date"`
	AsOf      domain.Date `json:"as_of"`
	Age       int         `json:"age"`

	LifePath        LifePath      `json:"life_path"`
	LifePathMeaning Meaning       `json:"life_path_meaning"`
	Birthday        ReducedNumber `json:"birthday"`
	NameNumbers     NameNumbers   `json:"name_numbers"`
	Maturity        Maturity      `json:"maturity"`
	Power           ReducedNumber `json:"power"`

	Matrix     Psychomatrix      `json:"matrix"`
	CellLevels map[int]CellLevel `json:"cell_levels"`
	Lines      Lines             `json:"lines"`

	KarmicLessons     []int           `json:"karmic_lessons"`
	NameKarmicLessons []int           `json:"name_karmic_lessons"`
	HiddenPassions    []HiddenPassion `json:"hidden_passions"`
	KarmicDebts       []KarmicDebt    `json:"karmic_debts"`

	Cycles          PersonalCycle   `json:"cycles"`
	Pinnacles       []Pinnacle      `json:"pinnacles"`
	Challenges      []Challenge     `json:"challenges"`
	TransitionAges  []TransitionAge `json:"transition_ages"`
	CurrentPinnacle int             `json:"current_pinnacle"`

	DestinyGraph  []GraphPoint     `json:"destiny_graph"`
	Biorhythms    BiorhythmReading `json:"biorhythms"`
	LuckyElements Elements         `json:"lucky_elements"`
	Planetary     PlanetaryInfo    `json:"planetary"`
	Tarot         TarotCard        `json:"tarot"`

	BirthdayMeaning       NumberMeaning          `json:"birthday_meaning"`
	NameMeanings          []NameNumberMeaning    `json:"name_meanings"`
	CellMeanings          []CellMeaning          `json:"cell_meanings"`
	LineMeanings          []LineMeaning          `json:"line_meanings"`
	KarmicLessonMeanings  []LessonMeaning        `json:"karmic_lesson_meanings"`
	HiddenPassionMeanings []NumberMeaning        `json:"hidden_passion_meanings"`
	Health                []HealthRecommendation `json:"health"`
	Development           []DevelopmentAdvice    `json:"development"`
	Love                  LoveAdvice             `json:"love"`
	Finance               FinancialProfile       `json:"finance"`
	SoulMission           string                 `json:"soul_mission"`
}

// defaultEngine is the standard implementation of the Engine interface
type defaultEngine struct {
	params *Params
}

// NewDefaultEngine creates a new engine with default parameters
func NewDefaultEngine() Engine {
	return &defaultEngine{
		params: NewDefaultParams(),
	}
}

// NewEngineWithParams creates a new engine with custom parameters
func NewEngineWithParams(params *Params) Engine {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultEngine{
		params: params,
	}
}

// Profile implements the Engine interface. The name is validated before any
// computation so no partial profile is ever returned.
func (e *defaultEngine) Profile(in ProfileInput, asOf domain.Date) (*Profile, error) {
	if err := checkBirth(in.BirthDate); err != nil {
		return nil, err
	}
	nm, err := MapName(in.Name)
	if err != nil {
		return nil, err
	}
	cycles, err := PersonalCycles(in.BirthDate, asOf)
	if err != nil {
		return nil, err
	}
	bio, err := Biorhythms(in.BirthDate, asOf, e.params)
	if err != nil {
		return nil, err
	}

	birth := in.BirthDate
	lp := CalculateLifePath(birth)
	names := NameNumbersFromMap(nm)
	matrix := BuildMatrix(birth)
	pinnacles := Pinnacles(birth, lp)
	age := AgeOn(birth, asOf)

	current := 0
	if p, ok := CurrentPinnacle(pinnacles, age); ok {
		current = p.Index
	}
	lines := BuildLines(matrix)
	lessons := KarmicLessons(matrix)
	passions := HiddenPassions(nm)
	birthday := BirthdayNumber(birth)

	cellLevels := make(map[int]CellLevel, 9)
	for d := 1; d <= 9; d++ {
		cellLevels[d] = CellStrength(matrix.Count(d))
	}

	return &Profile{
		Name:      in.Name,
		BirthDate: birth.Date,
		AsOf:      asOf,
		Age:       age,

		LifePath:        lp,
		LifePathMeaning: LifePathMeaning(lp.Number),
		Birthday:        birthday,
		NameNumbers:     names,
		Maturity:        MaturityNumber(birth, lp, names.Expression),
		Power:           PowerNumber(lp, names.Expression),

		Matrix:     matrix,
		CellLevels: cellLevels,
		Lines:      lines,

		KarmicLessons:     lessons,
		NameKarmicLessons: NameKarmicLessons(nm),
		HiddenPassions:    passions,
		KarmicDebts:       append(DateKarmicDebts(birth), nameKarmicDebts(nm)...),

		Cycles:          cycles,
		Pinnacles:       pinnacles,
		Challenges:      Challenges(birth, lp),
		TransitionAges:  TransitionAges(birth, lp),
		CurrentPinnacle: current,

		DestinyGraph:  DestinyGraph(birth),
		Biorhythms:    bio,
		LuckyElements: LuckyElements(lp),
		Planetary:     Planetary(lp),
		Tarot:         Tarot(lp),

		BirthdayMeaning:       BirthdayNumberReading(birthday),
		NameMeanings:          NameNumberReadings(names),
		CellMeanings:          CellReadings(matrix),
		LineMeanings:          LineReadings(lines),
		KarmicLessonMeanings:  KarmicLessonReadings(lessons),
		HiddenPassionMeanings: HiddenPassionReadings(passions),
		Health:                HealthAnalysis(matrix),
		Development:           DevelopmentAdviceFor(matrix, lp),
		Love:                  LoveAdviceFor(lp),
		Finance:               FinancialProfileFor(lp, matrix),
		SoulMission:           SoulMission(lp, names.Expression, names.SoulUrge),
	}, nil
}

// Compatibility implements the Engine interface
func (e *defaultEngine) Compatibility(a, b domain.BirthDate) (CompatibilityResult, error) {
	if err := checkBirth(a); err != nil {
		return CompatibilityResult{}, err
	}
	if err := checkBirth(b); err != nil {
		return CompatibilityResult{}, err
	}
	return Compatibility(a, b, e.params), nil
}

// Daily implements the Engine interface
func (e *defaultEngine) Daily(birth domain.BirthDate, asOf domain.Date) (DailyForecast, error) {
	if err := checkBirth(birth); err != nil {
		return DailyForecast{}, err
	}
	return Daily(birth, asOf)
}

// Monthly implements the Engine interface
func (e *defaultEngine) Monthly(birth domain.BirthDate, year, month int) (MonthlyForecast, error) {
	if err := checkBirth(birth); err != nil {
		return MonthlyForecast{}, err
	}
	return Monthly(birth, year, month, e.params)
}

// Yearly implements the Engine interface
func (e *defaultEngine) Yearly(birth domain.BirthDate, year int) (YearlyForecast, error) {
	if err := checkBirth(birth); err != nil {
		return YearlyForecast{}, err
	}
	return Yearly(birth, year)
}

// LuckyDates implements the Engine interface
func (e *defaultEngine) LuckyDates(birth domain.BirthDate, year, month int) ([]LuckyDate, error) {
	if err := checkBirth(birth); err != nil {
		return nil, err
	}
	return LuckyDates(birth, year, month, e.params)
}

// checkBirth rejects birth dates that are missing, not calendar days or
// earlier than domain.MinBirthYear. BirthDate literals skip the constructor
// checks, so they are repeated here.
func checkBirth(birth domain.BirthDate) error {
	if birth.IsZero() {
		return domain.NewValidationError("birth_date", "is required", domain.ErrInvalidDate)
	}
	if err := birth.Validate(); err != nil {
		return domain.NewValidationError("birth_date", "is not a calendar date", err)
	}
	if birth.Year < domain.MinBirthYear {
		return domain.NewValidationError("birth_date", "is before the supported range", domain.ErrInvalidDate)
	}
	return nil
}
