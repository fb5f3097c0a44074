package numerology

import (
	"math"

	"github.com/phrazzld/numera/internal/domain"
)

// Biorhythm cycle lengths in days.
const (
	physicalCycle     = 23
	emotionalCycle    = 28
	intellectualCycle = 33
)

// destinyStep is the number of years between two points of the destiny graph.
const destinyStep = 12

// Maturity is the number that comes into force in the second half of life.
type Maturity struct {
	Number         ReducedNumber `json:"number"`
	ActivationAge  int           `json:"activation_age"`
	ActivationYear int           `json:"activation_year"`
}

// MaturityNumber reduces life path plus expression with master preservation.
// It activates at the end of the first pinnacle.
func MaturityNumber(birth domain.BirthDate, lp LifePath, expression ReducedNumber) Maturity {
	age := FirstPinnacleEnd(lp)
	return Maturity{
		Number:         Reduce(lp.Number.Value + expression.Value),
		ActivationAge:  age,
		ActivationYear: birth.Year + age,
	}
}

// PowerNumber combines the roots of life path and expression into a single digit.
func PowerNumber(lp LifePath, expression ReducedNumber) ReducedNumber {
	return ReduceFull(lp.Number.Root() + expression.Root())
}

// GraphPoint is one point of the destiny graph.
type GraphPoint struct {
	Age   int `json:"age"`
	Year  int `json:"year"`
	Value int `json:"value"`
}

// DestinyGraph multiplies DDMM by YYYY and plots each digit of the product at
// twelve-year steps starting at birth.
func DestinyGraph(birth domain.BirthDate) []GraphPoint {
	product := (birth.Day*100 + birth.Month) * birth.Year
	digits := digitsOf(product)
	points := make([]GraphPoint, 0, len(digits))
	for i, d := range digits {
		age := i * destinyStep
		points = append(points, GraphPoint{Age: age, Year: birth.Year + age, Value: d})
	}
	return points
}

// BiorhythmPhase classifies one biorhythm value.
type BiorhythmPhase string

// Biorhythm phases.
const (
	PhaseHigh     BiorhythmPhase = "high"
	PhaseLow      BiorhythmPhase = "low"
	PhaseCritical BiorhythmPhase = "critical"
)

// BiorhythmValue is one cycle as a percentage in -100..100.
type BiorhythmValue struct {
	Value int            `json:"value"`
	Phase BiorhythmPhase `json:"phase"`
}

// BiorhythmReading is the state of the three classic cycles on one day.
type BiorhythmReading struct {
	Date         domain.Date    `json:"date"`
	DaysLived    int            `json:"days_lived"`
	Physical     BiorhythmValue `json:"physical"`
	Emotional    BiorhythmValue `json:"emotional"`
	Intellectual BiorhythmValue `json:"intellectual"`
	Overall      int            `json:"overall"`
}

// Biorhythms evaluates the physical (23 days), emotional (28) and intellectual
// (33) sine cycles for the days lived up to asOf.
func Biorhythms(birth domain.BirthDate, asOf domain.Date, params *Params) (BiorhythmReading, error) {
	if params == nil {
		params = NewDefaultParams()
	}
	if err := domain.CheckAsOf(birth, asOf); err != nil {
		return BiorhythmReading{}, err
	}

	days := asOf.DaysSince(birth.Date)
	band := params.BiorhythmCriticalBand
	physical := biorhythm(days, physicalCycle, band)
	emotional := biorhythm(days, emotionalCycle, band)
	intellectual := biorhythm(days, intellectualCycle, band)

	sum := float64(physical.Value + emotional.Value + intellectual.Value)
	return BiorhythmReading{
		Date:         asOf,
		DaysLived:    days,
		Physical:     physical,
		Emotional:    emotional,
		Intellectual: intellectual,
		Overall:      int(math.Round(sum / 3)),
	}, nil
}

func biorhythm(days, period, band int) BiorhythmValue {
	v := int(math.Round(100 * math.Sin(2*math.Pi*float64(days)/float64(period))))
	phase := PhaseLow
	switch {
	case absInt(v) < band:
		phase = PhaseCritical
	case v > 0:
		phase = PhaseHigh
	}
	return BiorhythmValue{Value: v, Phase: phase}
}
