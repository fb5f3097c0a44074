package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the wire format for every date the application accepts or returns.
const ISODateLayout = "2006-01-02"

// MinBirthYear is the earliest year accepted for a birth date.
const MinBirthYear = 1900

// Date is a civil calendar date without time of day or location.
// The zero value is not a valid date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate creates a Date and verifies it names a real calendar day.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Validate reports whether d names a real calendar day in years 1..9999.
// Dates built as literals bypass NewDate, so consumers call this instead.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("month %d out of range: %w", d.Month, ErrInvalidDate)
	}
	if d.Year < 1 || d.Year > 9999 {
		return fmt.Errorf("year %d out of range: %w", d.Year, ErrInvalidDate)
	}
	if d.Day < 1 || d.Day > DaysIn(d.Year, d.Month) {
		return fmt.Errorf("day %d out of range for %04d-%02d: %w", d.Day, d.Year, d.Month, ErrInvalidDate)
	}
	return nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%q is not a YYYY-MM-DD date: %w", s, ErrInvalidDate)
	}
	return DateOf(t), nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// secondsPerDay is exact for UTC midnights, which have no leap seconds in Unix time.
const secondsPerDay = 24 * 60 * 60

// DaysSince returns the number of whole days from o to d (negative if d is earlier).
// It counts Unix seconds rather than using time.Duration, which overflows
// after about 292 years.
func (d Date) DaysSince(o Date) int {
	return int((d.Time().Unix() - o.Time().Unix()) / secondsPerDay)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// MarshalText encodes the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD date.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// BirthDate is a Date that has been checked against the supported range
// 1900-01-01..today. Construct it with NewBirthDate or ParseBirthDate.
type BirthDate struct {
	Date
}

// NewBirthDate validates the components against the calendar and against today.
func NewBirthDate(year, month, day int, today Date) (BirthDate, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return BirthDate{}, NewValidationError("birth_date", "is not a calendar date", err)
	}
	return checkBirthRange(d, today)
}

// ParseBirthDate parses a YYYY-MM-DD birth date and checks its range.
func ParseBirthDate(s string, today Date) (BirthDate, error) {
	d, err := ParseDate(s)
	if err != nil {
		return BirthDate{}, NewValidationError("birth_date", "must be formatted as YYYY-MM-DD", err)
	}
	return checkBirthRange(d, today)
}

// MustBirthDate is NewBirthDate for literals in tests and tables; it panics on error.
func MustBirthDate(year, month, day int) BirthDate {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	if d.Year < MinBirthYear {
		panic(fmt.Sprintf("birth year %d before %d", d.Year, MinBirthYear))
	}
	return BirthDate{Date: d}
}

func checkBirthRange(d Date, today Date) (BirthDate, error) {
	if d.Year < MinBirthYear {
		return BirthDate{}, NewValidationError(
			"birth_date",
			fmt.Sprintf("must not be earlier than %d-01-01", MinBirthYear),
			ErrInvalidDate,
		)
	}
	if !today.IsZero() && d.After(today) {
		return BirthDate{}, NewValidationError("birth_date", "must not be in the future", ErrInvalidDate)
	}
	return BirthDate{Date: d}, nil
}

// ParseAsOfDate parses a YYYY-MM-DD reference date and checks it is not before birth.
func ParseAsOfDate(s string, birth BirthDate) (Date, error) {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, NewValidationError("as_of", "must be formatted as YYYY-MM-DD", ErrInvalidAsOfDate)
	}
	if err := CheckAsOf(birth, d); err != nil {
		return Date{}, err
	}
	return d, nil
}

// CheckAsOf rejects reference dates that are not calendar days or that
// precede the birth date.
func CheckAsOf(birth BirthDate, asOf Date) error {
	if asOf.IsZero() {
		return NewValidationError("as_of", "is required", ErrInvalidAsOfDate)
	}
	if asOf.Validate() != nil {
		return NewValidationError("as_of", "is not a calendar date", ErrInvalidAsOfDate)
	}
	if asOf.Before(birth.Date) {
		return NewValidationError("as_of", "must not precede the birth date", ErrInvalidAsOfDate)
	}
	return nil
}

var (
	flexibleDMY    = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	flexibleDigits = regexp.MustCompile(`^(\d{2})(\d{2})(\d{4})$`)
	flexibleISO    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// ParseFlexibleDate accepts the date spellings people type into a chat box:
// YYYY-MM-DD, DD.MM.YYYY, DD/MM/YYYY, DD-MM-YYYY and DDMMYYYY. Surrounding
// whitespace is ignored; any other extra character rejects the input.
func ParseFlexibleDate(s string) (Date, error) {
	cleaned := strings.TrimSpace(s)

	var y, m, d string
	if match := flexibleISO.FindStringSubmatch(cleaned); match != nil {
		y, m, d = match[1], match[2], match[3]
	} else if match := flexibleDMY.FindStringSubmatch(cleaned); match != nil {
		d, m, y = match[1], match[2], match[3]
	} else if match := flexibleDigits.FindStringSubmatch(cleaned); match != nil {
		d, m, y = match[1], match[2], match[3]
	} else {
		return Date{}, fmt.Errorf("unrecognized date %q: %w", s, ErrInvalidDate)
	}

	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	return NewDate(year, month, day)
}

// ParseFlexibleBirthDate is ParseFlexibleDate followed by the birth range check.
func ParseFlexibleBirthDate(s string, today Date) (BirthDate, error) {
	d, err := ParseFlexibleDate(s)
	if err != nil {
		return BirthDate{}, NewValidationError("birth_date", "is not a recognized date", err)
	}
	return checkBirthRange(d, today)
}
