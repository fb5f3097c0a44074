package numerology

import "github.com/phrazzld/numera/internal/domain"

// LifePath is the Life Path Number together with the component reductions it
// was combined from.
type LifePath struct {
	Number ReducedNumber `json:"number"`
	Day    ReducedNumber `json:"day"`
	Month  ReducedNumber `json:"month"`
	Year   ReducedNumber `json:"year"`
	// BirthSum is Day.Value + Month.Value + Year.Value before the final reduction.
	BirthSum int `json:"birth_sum"`
}

// CalculateLifePath reduces day, month and year separately, keeping master
// numbers in each, then reduces their sum, again keeping masters.
//
// A flat digit sum of the whole date can disagree on master numbers
// (1991-09-09: flat 38 → 11, components 9+9+2 = 20 → 2). Everything in this
// package uses the component-wise rule.
func CalculateLifePath(birth domain.BirthDate) LifePath {
	day := Reduce(birth.Day)
	month := Reduce(birth.Month)
	year := Reduce(birth.Year)
	sum := day.Value + month.Value + year.Value

	return LifePath{
		Number:   Reduce(sum),
		Day:      day,
		Month:    month,
		Year:     year,
		BirthSum: sum,
	}
}

// BirthdayNumber is the birth day reduced with master preservation.
func BirthdayNumber(birth domain.BirthDate) ReducedNumber {
	return Reduce(birth.Day)
}

// dateDigitSum adds every digit of DD, MM and YYYY.
func dateDigitSum(d domain.Date) int {
	return digitSum(d.Day) + digitSum(d.Month) + digitSum(d.Year)
}
