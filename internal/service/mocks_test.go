package service

import (
	"github.com/phrazzld/numera/internal/domain"
	"github.com/phrazzld/numera/internal/domain/numerology"
	"github.com/stretchr/testify/mock"
)

// MockEngine mocks the numerology.Engine interface
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Profile(in numerology.ProfileInput, asOf domain.Date) (*numerology.Profile, error) {
	args := m.Called(in, asOf)
	profile, _ := args.Get(0).(*numerology.Profile)
	return profile, args.Error(1)
}

func (m *MockEngine) Compatibility(a, b domain.BirthDate) (numerology.CompatibilityResult, error) {
	args := m.Called(a, b)
	return args.Get(0).(numerology.CompatibilityResult), args.Error(1)
}

func (m *MockEngine) Daily(birth domain.BirthDate, asOf domain.Date) (numerology.DailyForecast, error) {
	args := m.Called(birth, asOf)
	return args.Get(0).(numerology.DailyForecast), args.Error(1)
}

func (m *MockEngine) Monthly(birth domain.BirthDate, year, month int) (numerology.MonthlyForecast, error) {
	args := m.Called(birth, year, month)
	return args.Get(0).(numerology.MonthlyForecast), args.Error(1)
}

func (m *MockEngine) Yearly(birth domain.BirthDate, year int) (numerology.YearlyForecast, error) {
	args := m.Called(birth, year)
	return args.Get(0).(numerology.YearlyForecast), args.Error(1)
}

func (m *MockEngine) LuckyDates(birth domain.BirthDate, year, month int) ([]numerology.LuckyDate, error) {
	args := m.Called(birth, year, month)
	dates, _ := args.Get(0).([]numerology.LuckyDate)
	return dates, args.Error(1)
}
