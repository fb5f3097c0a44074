package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/numera/internal/domain/numerology"
	"github.com/phrazzld/numera/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockNumerologyService(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		m := &MockNumerologyService{}

		profile, err := m.Profile(ctx, service.ProfileRequest{Name: "Anna", BirthDate: "1990-03-15"})
		require.NoError(t, err)
		assert.Equal(t, "Anna", profile.Name)

		monthly, err := m.MonthlyForecast(ctx, "1990-03-15", 2025, 6)
		require.NoError(t, err)
		assert.Equal(t, 6, monthly.Month)

		dates, err := m.LuckyDates(ctx, "1990-03-15", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, dates)

		assert.Equal(t, 3, m.Calls())
		assert.Equal(t, []PeriodCall{{BirthDate: "1990-03-15"}}, m.LuckyCalls)
	})

	t.Run("custom functions", func(t *testing.T) {
		m := &MockNumerologyService{
			CompatibilityFn: func(ctx context.Context, a, b string) (numerology.CompatibilityResult, error) {
				return numerology.CompatibilityResult{Score: 90}, nil
			},
		}

		result, err := m.Compatibility(ctx, "1990-03-15", "1988-11-29")
		require.NoError(t, err)
		assert.Equal(t, 90, result.Score)
		assert.Equal(t, [][2]string{{"1990-03-15", "1988-11-29"}}, m.CompatCalls)
	})

	t.Run("default error", func(t *testing.T) {
		boom := errors.New("boom")
		m := &MockNumerologyService{Err: boom}

		_, err := m.Profile(ctx, service.ProfileRequest{})
		assert.ErrorIs(t, err, boom)
		_, err = m.DailyForecast(ctx, "1990-03-15", "")
		assert.ErrorIs(t, err, boom)
		_, err = m.YearlyForecast(ctx, "1990-03-15", 2025)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, ctx, m.LastContext)
	})
}
