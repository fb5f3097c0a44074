package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = Date{Year: 2025, Month: 6, Day: 15}

func TestNewDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		y, m, d   int
		expectErr bool
	}{
		{"regular day", 1990, 3, 15, false},
		{"leap day in leap year", 2000, 2, 29, false},
		{"leap day in common year", 1900, 2, 29, true},
		{"month zero", 1990, 0, 10, true},
		{"month thirteen", 1990, 13, 10, true},
		{"day zero", 1990, 1, 0, true},
		{"april 31st", 1990, 4, 31, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDate(tc.y, tc.m, tc.d)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDate), "error should wrap ErrInvalidDate")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Date{Year: tc.y, Month: tc.m, Day: tc.d}, d)
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expected  Date
		expectErr bool
	}{
		{name: "valid", input: "1990-03-15", expected: Date{1990, 3, 15}},
		{name: "first supported day", input: "1900-01-01", expected: Date{1900, 1, 1}},
		{name: "today is allowed", input: "2025-06-15", expected: testToday},
		{name: "tomorrow is rejected", input: "2025-06-16", expectErr: true},
		{name: "before 1900", input: "1899-12-31", expectErr: true},
		{name: "wrong layout", input: "15.03.1990", expectErr: true},
		{name: "not a calendar day", input: "1990-02-30", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bd, err := ParseBirthDate(tc.input, testToday)
			if tc.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				assert.ErrorIs(t, err, ErrValidation)

				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "birth_date", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, bd.Date)
		})
	}
}

func TestParseFlexibleDate(t *testing.T) {
	t.Parallel()

	expected := Date{Year: 1990, Month: 3, Day: 15}
	inputs := []string{
		"1990-03-15",
		"15.03.1990",
		"15/03/1990",
		"15-03-1990",
		"15.3.1990",
		"15031990",
		" 15.03.1990\n",
	}
	for _, in := range inputs {
		d, err := ParseFlexibleDate(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, expected, d, "input %q", in)
	}

	for _, bad := range []string{
		"", "1990", "31.02.1990", "hello", "15.03.90",
		"abc2024-01-01xyz", "15.03.1990 г.", "born 15/03/1990", "15 03 1990",
	} {
		_, err := ParseFlexibleDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestParseFlexibleBirthDate_Range(t *testing.T) {
	t.Parallel()

	_, err := ParseFlexibleBirthDate("01.01.1899", testToday)
	assert.ErrorIs(t, err, ErrInvalidDate)

	bd, err := ParseFlexibleBirthDate("29112000", testToday)
	require.NoError(t, err)
	assert.Equal(t, Date{2000, 11, 29}, bd.Date)
}

func TestParseAsOfDate(t *testing.T) {
	t.Parallel()

	birth := MustBirthDate(1990, 3, 15)

	d, err := ParseAsOfDate("2024-01-01", birth)
	require.NoError(t, err)
	assert.Equal(t, Date{2024, 1, 1}, d)

	_, err = ParseAsOfDate("1990-03-14", birth)
	assert.ErrorIs(t, err, ErrInvalidAsOfDate)

	_, err = ParseAsOfDate("soon", birth)
	assert.ErrorIs(t, err, ErrInvalidAsOfDate)

	assert.NoError(t, CheckAsOf(birth, birth.Date), "the birth date itself is a valid reference date")
	assert.ErrorIs(t, CheckAsOf(birth, Date{}), ErrInvalidAsOfDate)
}

func TestCheckAsOf_CalendarDate(t *testing.T) {
	t.Parallel()

	birth := MustBirthDate(1990, 3, 15)
	for _, d := range []Date{{2024, 13, 45}, {2024, 2, 30}, {2023, 2, 29}, {10000, 1, 1}, {2024, 0, 1}} {
		err := CheckAsOf(birth, d)
		require.Error(t, err, "as-of %v", d)
		assert.ErrorIs(t, err, ErrInvalidAsOfDate)
		assert.ErrorIs(t, err, ErrValidation)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "as_of", ve.Field)
	}
	assert.NoError(t, CheckAsOf(birth, Date{2024, 2, 29}))
}

func TestDateValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Date{2000, 2, 29}.Validate())
	assert.NoError(t, Date{9999, 12, 31}.Validate())

	for _, d := range []Date{{}, {1990, 2, 30}, {1900, 2, 29}, {0, 1, 1}, {1990, 13, 1}, {1990, 4, 31}, {1990, 1, -1}} {
		assert.ErrorIs(t, d.Validate(), ErrInvalidDate, "date %v", d)
	}
}

func TestDateArithmetic(t *testing.T) {
	t.Parallel()

	a := Date{2024, 2, 28}
	b := a.AddDays(2)
	assert.Equal(t, Date{2024, 3, 1}, b)
	assert.Equal(t, 2, b.DaysSince(a))
	assert.Equal(t, -2, a.DaysSince(b))
	assert.Equal(t, 366, Date{2025, 1, 1}.DaysSince(Date{2024, 1, 1}))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, time.Thursday, Date{2024, 3, 7}.Weekday())
	assert.Equal(t, 29, DaysIn(2024, 2))
	assert.Equal(t, 31, DaysIn(2023, 12))
	assert.Equal(t, Date{2023, 5, 9}, DateOf(time.Date(2023, 5, 9, 23, 59, 0, 0, time.UTC)))
}

func TestDaysSince_Centuries(t *testing.T) {
	t.Parallel()

	birth := Date{1990, 3, 15}
	// 310 years with 75 leap days in between (2100, 2200 and 2300 are not leap years).
	assert.Equal(t, 310*365+75, Date{2300, 3, 15}.DaysSince(birth))
	assert.Equal(t, -(310*365 + 75), birth.DaysSince(Date{2300, 3, 15}))
	assert.Equal(t, 3652058, Date{9999, 12, 31}.DaysSince(Date{1, 1, 1}))
	assert.Equal(t, Date{2300, 3, 15}, birth.AddDays(310*365+75))
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	payload := struct {
		Birth BirthDate `json:"birth"`
		AsOf  Date      `json:"as_of"`
	}{
		Birth: MustBirthDate(1988, 11, 29),
		AsOf:  Date{2025, 1, 2},
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birth":"1988-11-29","as_of":"2025-01-02"}`, string(raw))

	var decoded struct {
		AsOf Date `json:"as_of"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"as_of":"2001-09-09"}`), &decoded))
	assert.Equal(t, Date{2001, 9, 9}, decoded.AsOf)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "must contain at least one letter", ErrInvalidName)
	assert.Equal(t, "name must contain at least one letter: invalid name", err.Error())
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrInvalidDate)

	bare := NewValidationError("name", "is required", nil)
	assert.Equal(t, "name is required", bare.Error())
}
