package numerology

import "github.com/phrazzld/numera/internal/domain"

// pinnacleBase minus the life path root gives the age at which the first
// pinnacle ends. Later pinnacles last pinnacleSpan years; the fourth never ends.
const (
	pinnacleBase = 36
	pinnacleSpan = 9
)

// Period is an age range. The last period of a life has no end age.
type Period struct {
	StartAge  int  `json:"start_age"`
	EndAge    int  `json:"end_age,omitempty"`
	OpenEnded bool `json:"open_ended,omitempty"`
	StartYear int  `json:"start_year"`
}

// Contains reports whether age falls within the period.
func (p Period) Contains(age int) bool {
	if age < p.StartAge {
		return false
	}
	return p.OpenEnded || age <= p.EndAge
}

// Pinnacle is one of the four major life periods.
type Pinnacle struct {
	Index  int           `json:"index"`
	Number ReducedNumber `json:"number"`
	Period
}

// Challenge is the obstacle number attached to a life period.
type Challenge struct {
	Index  int  `json:"index"`
	Number int  `json:"number"`
	Main   bool `json:"main,omitempty"`
	Period
}

// TransitionAge marks the age at which a new pinnacle begins.
type TransitionAge struct {
	Age      int           `json:"age"`
	Year     int           `json:"year"`
	Pinnacle int           `json:"pinnacle"`
	Number   ReducedNumber `json:"number"`
}

// FirstPinnacleEnd is the last age covered by the first pinnacle: 36 minus the
// root of the life path number.
func FirstPinnacleEnd(lp LifePath) int {
	return pinnacleBase - lp.Number.Root()
}

// periods returns the four age ranges shared by pinnacles and challenges.
func periods(birth domain.BirthDate, lp LifePath) [4]Period {
	end := FirstPinnacleEnd(lp)
	var out [4]Period
	start := 0
	for i := range out {
		p := Period{StartAge: start, StartYear: birth.Year + start}
		if i == 0 {
			p.EndAge = end
		} else if i < len(out)-1 {
			p.EndAge = start + pinnacleSpan - 1
		} else {
			p.OpenEnded = true
		}
		out[i] = p
		start = p.EndAge + 1
	}
	return out
}

// reducedComponents returns month, day and year each fully reduced to 1..9.
func reducedComponents(birth domain.BirthDate) (int, int, int) {
	return ReduceFull(birth.Month).Value, ReduceFull(birth.Day).Value, ReduceFull(birth.Year).Value
}

// Pinnacles computes the four pinnacles from the fully reduced month m, day d
// and year y: m+d, d+y, the first two combined, and m+y, each reduced with
// master preservation.
func Pinnacles(birth domain.BirthDate, lp LifePath) []Pinnacle {
	m, d, y := reducedComponents(birth)
	p1 := Reduce(m + d)
	p2 := Reduce(d + y)
	p3 := Reduce(p1.Root() + p2.Root())
	p4 := Reduce(m + y)

	ranges := periods(birth, lp)
	numbers := [4]ReducedNumber{p1, p2, p3, p4}
	out := make([]Pinnacle, 4)
	for i := range out {
		out[i] = Pinnacle{Index: i + 1, Number: numbers[i], Period: ranges[i]}
	}
	return out
}

// Challenges computes the four challenge numbers as absolute differences of
// the same reduced components: |m−d|, |d−y|, |m−y|, and last the main
// challenge |c1−c2|. The values are 0..8 and are not reduced further.
func Challenges(birth domain.BirthDate, lp LifePath) []Challenge {
	m, d, y := reducedComponents(birth)
	c1 := absInt(m - d)
	c2 := absInt(d - y)
	c3 := absInt(m - y)
	c4 := absInt(c1 - c2)

	ranges := periods(birth, lp)
	numbers := [4]int{c1, c2, c3, c4}
	out := make([]Challenge, 4)
	for i := range out {
		out[i] = Challenge{Index: i + 1, Number: numbers[i], Main: i == len(out)-1, Period: ranges[i]}
	}
	return out
}

// TransitionAges lists the ages at which pinnacles two, three and four begin.
func TransitionAges(birth domain.BirthDate, lp LifePath) []TransitionAge {
	pinnacles := Pinnacles(birth, lp)
	out := make([]TransitionAge, 0, len(pinnacles)-1)
	for _, p := range pinnacles[1:] {
		out = append(out, TransitionAge{
			Age:      p.StartAge,
			Year:     p.StartYear,
			Pinnacle: p.Index,
			Number:   p.Number,
		})
	}
	return out
}

// CurrentPinnacle returns the pinnacle covering age. Negative ages fall in the first.
func CurrentPinnacle(pinnacles []Pinnacle, age int) (Pinnacle, bool) {
	if len(pinnacles) == 0 {
		return Pinnacle{}, false
	}
	if age < 0 {
		return pinnacles[0], true
	}
	for _, p := range pinnacles {
		if p.Contains(age) {
			return p, true
		}
	}
	return Pinnacle{}, false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
