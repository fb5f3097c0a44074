package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/numera/internal/domain/numerology"
	"github.com/phrazzld/numera/internal/service"
)

// PeriodCall records the arguments of a forecast call keyed by year and month.
type PeriodCall struct {
	BirthDate string
	Year      int
	Month     int
}

// MockNumerologyService implements service.NumerologyService for testing
type MockNumerologyService struct {
	// Custom behavior functions
	ProfileFn         func(ctx context.Context, req service.ProfileRequest) (*numerology.Profile, error)
	CompatibilityFn   func(ctx context.Context, birthA, birthB string) (numerology.CompatibilityResult, error)
	DailyForecastFn   func(ctx context.Context, birth, asOf string) (numerology.DailyForecast, error)
	MonthlyForecastFn func(ctx context.Context, birth string, year, month int) (numerology.MonthlyForecast, error)
	YearlyForecastFn  func(ctx context.Context, birth string, year int) (numerology.YearlyForecast, error)
	LuckyDatesFn      func(ctx context.Context, birth string, year, month int) ([]numerology.LuckyDate, error)

	// Default error returned when no function is set
	Err error

	// Call tracking for verification
	mu           sync.Mutex
	ProfileCalls []service.ProfileRequest
	CompatCalls  [][2]string
	DailyCalls   [][2]string
	MonthlyCalls []PeriodCall
	YearlyCalls  []PeriodCall
	LuckyCalls   []PeriodCall
	TotalCalls   int
	LastContext  context.Context
}

var _ service.NumerologyService = (*MockNumerologyService)(nil)

func (m *MockNumerologyService) track(ctx context.Context, record func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalCalls++
	m.LastContext = ctx
	record()
}

// Profile implements the service.NumerologyService interface
func (m *MockNumerologyService) Profile(ctx context.Context, req service.ProfileRequest) (*numerology.Profile, error) {
	m.track(ctx, func() { m.ProfileCalls = append(m.ProfileCalls, req) })

	if m.ProfileFn != nil {
		return m.ProfileFn(ctx, req)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &numerology.Profile{Name: req.Name}, nil
}

// Compatibility implements the service.NumerologyService interface
func (m *MockNumerologyService) Compatibility(
	ctx context.Context,
	birthA, birthB string,
) (numerology.CompatibilityResult, error) {
	m.track(ctx, func() { m.CompatCalls = append(m.CompatCalls, [2]string{birthA, birthB}) })

	if m.CompatibilityFn != nil {
		return m.CompatibilityFn(ctx, birthA, birthB)
	}
	return numerology.CompatibilityResult{}, m.Err
}

// DailyForecast implements the service.NumerologyService interface
func (m *MockNumerologyService) DailyForecast(
	ctx context.Context,
	birth, asOf string,
) (numerology.DailyForecast, error) {
	m.track(ctx, func() { m.DailyCalls = append(m.DailyCalls, [2]string{birth, asOf}) })

	if m.DailyForecastFn != nil {
		return m.DailyForecastFn(ctx, birth, asOf)
	}
	return numerology.DailyForecast{}, m.Err
}

// MonthlyForecast implements the service.NumerologyService interface
func (m *MockNumerologyService) MonthlyForecast(
	ctx context.Context,
	birth string,
	year, month int,
) (numerology.MonthlyForecast, error) {
	m.track(ctx, func() {
		m.MonthlyCalls = append(m.MonthlyCalls, PeriodCall{BirthDate: birth, Year: year, Month: month})
	})

	if m.MonthlyForecastFn != nil {
		return m.MonthlyForecastFn(ctx, birth, year, month)
	}
	return numerology.MonthlyForecast{Year: year, Month: month}, m.Err
}

// YearlyForecast implements the service.NumerologyService interface
func (m *MockNumerologyService) YearlyForecast(
	ctx context.Context,
	birth string,
	year int,
) (numerology.YearlyForecast, error) {
	m.track(ctx, func() {
		m.YearlyCalls = append(m.YearlyCalls, PeriodCall{BirthDate: birth, Year: year})
	})

	if m.YearlyForecastFn != nil {
		return m.YearlyForecastFn(ctx, birth, year)
	}
	return numerology.YearlyForecast{Year: year}, m.Err
}

// LuckyDates implements the service.NumerologyService interface
func (m *MockNumerologyService) LuckyDates(
	ctx context.Context,
	birth string,
	year, month int,
) ([]numerology.LuckyDate, error) {
	m.track(ctx, func() {
		m.LuckyCalls = append(m.LuckyCalls, PeriodCall{BirthDate: birth, Year: year, Month: month})
	})

	if m.LuckyDatesFn != nil {
		return m.LuckyDatesFn(ctx, birth, year, month)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return []numerology.LuckyDate{}, nil
}

// Calls returns the total number of calls made to the mock.
func (m *MockNumerologyService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.TotalCalls
}
