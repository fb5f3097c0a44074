package numerology

import (
	"fmt"
	"sort"
	"time"

	"github.com/phrazzld/numera/internal/domain"
)

// luckyHourSlots is indexed by (personal day − 1) mod 5.
var luckyHourSlots = [5]string{"09:00-11:00", "11:00-13:00", "14:00-16:00", "16:00-18:00", "19:00-21:00"}

// LuckyInfo is the favourable time, colour and activity of a day.
type LuckyInfo struct {
	Hours    string `json:"hours"`
	Color    string `json:"color"`
	Activity string `json:"activity"`
}

// DailyForecast is the horoscope record for one day.
type DailyForecast struct {
	Date        domain.Date   `json:"date"`
	PersonalDay ReducedNumber `json:"personal_day"`
	Theme       string        `json:"theme"`
	Energy      string        `json:"energy"`
	Morning     string        `json:"morning"`
	Afternoon   string        `json:"afternoon"`
	Evening     string        `json:"evening"`
	Opportunity string        `json:"opportunity"`
	Challenge   string        `json:"challenge"`
	Affirmation string        `json:"affirmation"`
	Lucky       LuckyInfo     `json:"lucky"`
}

// WeekFocus describes one stretch of a month.
type WeekFocus struct {
	Period      string        `json:"period"`
	StartDay    int           `json:"start_day"`
	EndDay      int           `json:"end_day"`
	PersonalDay ReducedNumber `json:"personal_day"`
	Focus       string        `json:"focus"`
}

// CalendarDay is a day of a month rated against the life path.
type CalendarDay struct {
	Day         int    `json:"day"`
	Weekday     string `json:"weekday"`
	PersonalDay int    `json:"personal_day"`
	Rating      int    `json:"rating"`
}

// MonthlyForecast is the horoscope record for one calendar month.
type MonthlyForecast struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	MonthName     string        `json:"month_name"`
	PersonalMonth ReducedNumber `json:"personal_month"`
	Theme         string        `json:"theme"`
	Energy        string        `json:"energy"`
	Summary       string        `json:"summary"`
	Advice        string        `json:"advice"`
	Weeks         []WeekFocus   `json:"weeks"`
	BestDays      []CalendarDay `json:"best_days"`
	ChallengeDays []CalendarDay `json:"challenge_days"`
}

// MonthTheme is the personal month of one month inside a yearly forecast.
type MonthTheme struct {
	Month         int           `json:"month"`
	MonthName     string        `json:"month_name"`
	PersonalMonth ReducedNumber `json:"personal_month"`
	Theme         string        `json:"theme"`
}

// YearlyForecast is the horoscope record for one calendar year.
type YearlyForecast struct {
	Year          int           `json:"year"`
	PersonalYear  ReducedNumber `json:"personal_year"`
	Theme         string        `json:"theme"`
	Energy        string        `json:"energy"`
	Overview      string        `json:"overview"`
	Quarters      []string      `json:"quarters"`
	Opportunities []string      `json:"opportunities"`
	Challenges    []string      `json:"challenges"`
	Months        []MonthTheme  `json:"months"`
}

// LuckyDate is a day of a month ranked by how well it suits the life path.
type LuckyDate struct {
	Date        domain.Date `json:"date"`
	Weekday     string      `json:"weekday"`
	PersonalDay int         `json:"personal_day"`
	Rating      int         `json:"rating"`
	Reason      string      `json:"reason"`
}

// Daily selects the record of the personal day of asOf.
func Daily(birth domain.BirthDate, asOf domain.Date) (DailyForecast, error) {
	if err := domain.CheckAsOf(birth, asOf); err != nil {
		return DailyForecast{}, err
	}

	pd := PersonalDay(birth, asOf)
	theme := CycleTheme(pd.Value)
	return DailyForecast{
		Date:        asOf,
		PersonalDay: pd,
		Theme:       theme.Title,
		Energy:      theme.Energy,
		Morning:     theme.Morning,
		Afternoon:   theme.Afternoon,
		Evening:     theme.Evening,
		Opportunity: theme.Opportunity,
		Challenge:   theme.Challenge,
		Affirmation: theme.Affirmation,
		Lucky: LuckyInfo{
			Hours:    LuckyHours(pd.Value),
			Color:    theme.LuckyColor,
			Activity: theme.LuckyActivity,
		},
	}, nil
}

// LuckyHours returns the favourable time slot for a personal day 1..9.
func LuckyHours(personalDay int) string {
	if personalDay < 1 {
		return ""
	}
	return luckyHourSlots[(personalDay-1)%len(luckyHourSlots)]
}

// Monthly builds the forecast of a calendar month: the personal month record,
// four week periods and the best and hardest days of the month.
func Monthly(birth domain.BirthDate, year, month int, params *Params) (MonthlyForecast, error) {
	if params == nil {
		params = NewDefaultParams()
	}
	if err := checkMonth(birth, year, month); err != nil {
		return MonthlyForecast{}, err
	}

	pm := PersonalMonth(birth, year, month)
	theme := CycleTheme(pm.Value)
	forecast := MonthlyForecast{
		Year:          year,
		Month:         month,
		MonthName:     time.Month(month).String(),
		PersonalMonth: pm,
		Theme:         theme.Title,
		Energy:        theme.Energy,
		Summary:       theme.MonthSummary,
		Advice:        theme.Advice,
		Weeks:         monthWeeks(birth, year, month),
		BestDays:      []CalendarDay{},
		ChallengeDays: []CalendarDay{},
	}

	for _, day := range rateMonth(birth, year, month) {
		switch {
		case day.Rating >= params.BestDayScore:
			forecast.BestDays = append(forecast.BestDays, day)
		case day.Rating < params.ChallengeDayScore:
			forecast.ChallengeDays = append(forecast.ChallengeDays, day)
		}
	}
	return forecast, nil
}

// Yearly builds the forecast of a calendar year with its twelve personal months.
func Yearly(birth domain.BirthDate, year int) (YearlyForecast, error) {
	if err := domain.CheckAsOf(birth, domain.Date{Year: year, Month: 12, Day: 31}); err != nil {
		return YearlyForecast{}, err
	}

	py := PersonalYear(birth, year)
	theme := CycleTheme(py.Value)
	forecast := YearlyForecast{
		Year:          year,
		PersonalYear:  py,
		Theme:         theme.Title,
		Energy:        theme.Energy,
		Overview:      theme.YearOverview,
		Opportunities: append([]string(nil), theme.Opportunities...),
		Challenges:    append([]string(nil), theme.Challenges...),
		Quarters:      make([]string, 0, 4),
		Months:        make([]MonthTheme, 0, 12),
	}

	for m := 1; m <= 12; m++ {
		pm := PersonalMonth(birth, year, m)
		forecast.Months = append(forecast.Months, MonthTheme{
			Month:         m,
			MonthName:     time.Month(m).String(),
			PersonalMonth: pm,
			Theme:         CycleTheme(pm.Value).Title,
		})
	}
	for q := 0; q < 4; q++ {
		first := forecast.Months[q*3]
		forecast.Quarters = append(forecast.Quarters, CycleTheme(first.PersonalMonth.Value).Focus)
	}
	return forecast, nil
}

// LuckyDates ranks the days of a month by the pair score of their personal
// day against the life path, best first, ties by date, truncated to
// params.LuckyDatesLimit.
func LuckyDates(birth domain.BirthDate, year, month int, params *Params) ([]LuckyDate, error) {
	if params == nil {
		params = NewDefaultParams()
	}
	if err := checkMonth(birth, year, month); err != nil {
		return nil, err
	}

	days := rateMonth(birth, year, month)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Rating > days[j].Rating
	})
	if len(days) > params.LuckyDatesLimit {
		days = days[:params.LuckyDatesLimit]
	}

	out := make([]LuckyDate, 0, len(days))
	for _, d := range days {
		out = append(out, LuckyDate{
			Date:        domain.Date{Year: year, Month: month, Day: d.Day},
			Weekday:     d.Weekday,
			PersonalDay: d.PersonalDay,
			Rating:      d.Rating,
			Reason:      CycleTheme(d.PersonalDay).Focus,
		})
	}
	return out, nil
}

// rateMonth rates every day of the month that is not before the birth date,
// in calendar order.
func rateMonth(birth domain.BirthDate, year, month int) []CalendarDay {
	root := CalculateLifePath(birth).Number.Root()
	n := domain.DaysIn(year, month)
	days := make([]CalendarDay, 0, n)
	for day := 1; day <= n; day++ {
		date := domain.Date{Year: year, Month: month, Day: day}
		if date.Before(birth.Date) {
			continue
		}
		pd := PersonalDay(birth, date).Value
		days = append(days, CalendarDay{
			Day:         day,
			Weekday:     date.Weekday().String(),
			PersonalDay: pd,
			Rating:      PairScore(pd, root),
		})
	}
	return days
}

// monthWeeks splits the month into 1–7, 8–14, 15–21 and 22–end, each focused
// by the personal day of its first day.
func monthWeeks(birth domain.BirthDate, year, month int) []WeekFocus {
	last := domain.DaysIn(year, month)
	starts := [4]int{1, 8, 15, 22}
	weeks := make([]WeekFocus, 0, len(starts))
	for i, start := range starts {
		end := start + 6
		if i == len(starts)-1 {
			end = last
		}
		pd := PersonalDay(birth, domain.Date{Year: year, Month: month, Day: start})
		weeks = append(weeks, WeekFocus{
			Period:      fmt.Sprintf("%d-%d", start, end),
			StartDay:    start,
			EndDay:      end,
			PersonalDay: pd,
			Focus:       CycleTheme(pd.Value).Focus,
		})
	}
	return weeks
}

// checkMonth validates a (year, month) reference: the month must exist and
// must not end before the birth date.
func checkMonth(birth domain.BirthDate, year, month int) error {
	if month < 1 || month > 12 {
		return domain.NewValidationError("month", "must be between 1 and 12", domain.ErrInvalidAsOfDate)
	}
	if year < 1 || year > 9999 {
		return domain.NewValidationError("year", "is out of range", domain.ErrInvalidAsOfDate)
	}
	return domain.CheckAsOf(birth, domain.Date{Year: year, Month: month, Day: domain.DaysIn(year, month)})
}
