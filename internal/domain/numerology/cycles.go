package numerology

import "github.com/phrazzld/numera/internal/domain"

// PersonalCycle holds the personal year, month and day for one reference date.
type PersonalCycle struct {
	AsOf  domain.Date   `json:"as_of"`
	Year  ReducedNumber `json:"year"`
	Month ReducedNumber `json:"month"`
	Day   ReducedNumber `json:"day"`
}

// PersonalYear reduces birth month + birth day + the reference year fully.
func PersonalYear(birth domain.BirthDate, asOfYear int) ReducedNumber {
	return ReduceFull(birth.Month + birth.Day + asOfYear)
}

// PersonalMonth reduces the personal year plus the reference month fully.
func PersonalMonth(birth domain.BirthDate, asOfYear, asOfMonth int) ReducedNumber {
	return ReduceFull(PersonalYear(birth, asOfYear).Value + asOfMonth)
}

// PersonalDay reduces the personal month plus the reference day fully.
func PersonalDay(birth domain.BirthDate, asOf domain.Date) ReducedNumber {
	return ReduceFull(PersonalMonth(birth, asOf.Year, asOf.Month).Value + asOf.Day)
}

// PersonalCycles computes the personal year, month and day as of asOf.
// asOf must not precede the birth date.
func PersonalCycles(birth domain.BirthDate, asOf domain.Date) (PersonalCycle, error) {
	if err := domain.CheckAsOf(birth, asOf); err != nil {
		return PersonalCycle{}, err
	}
	return PersonalCycle{
		AsOf:  asOf,
		Year:  PersonalYear(birth, asOf.Year),
		Month: PersonalMonth(birth, asOf.Year, asOf.Month),
		Day:   PersonalDay(birth, asOf),
	}, nil
}

// AgeOn returns the age in whole years on asOf. It is negative when asOf
// precedes the birth date.
func AgeOn(birth domain.BirthDate, asOf domain.Date) int {
	age := asOf.Year - birth.Year
	if asOf.Month < birth.Month || (asOf.Month == birth.Month && asOf.Day < birth.Day) {
		age--
	}
	return age
}
