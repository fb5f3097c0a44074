package numerology

import (
	"errors"
	"testing"

	"github.com/phrazzld/numera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaturityAndPower(t *testing.T) {
	t.Parallel()

	birth := domain.MustBirthDate(1990, 3, 15) // life path 1
	lp := CalculateLifePath(birth)
	expression := ReducedNumber{Value: 3} // "Anna"

	maturity := MaturityNumber(birth, lp, expression)
	assert.Equal(t, ReducedNumber{Value: 4}, maturity.Number)
	assert.Equal(t, 35, maturity.ActivationAge)
	assert.Equal(t, 2025, maturity.ActivationYear)

	assert.Equal(t, ReducedNumber{Value: 4}, PowerNumber(lp, expression))
}

func TestMaturity_KeepsMasterPowerDoesNot(t *testing.T) {
	t.Parallel()

	birth := domain.MustBirthDate(1988, 11, 29) // life path 3
	lp := CalculateLifePath(birth)
	expression := ReducedNumber{Value: 8}

	assert.Equal(t, ReducedNumber{Value: 11, IsMaster: true}, MaturityNumber(birth, lp, expression).Number)
	assert.Equal(t, ReducedNumber{Value: 2}, PowerNumber(lp, expression))
}

func TestDestinyGraph(t *testing.T) {
	t.Parallel()

	// 1503 * 1990 = 2990970
	points := DestinyGraph(domain.MustBirthDate(1990, 3, 15))
	require.Len(t, points, 7)

	values := make([]int, 0, len(points))
	for _, p := range points {
		values = append(values, p.Value)
	}
	assert.Equal(t, []int{2, 9, 9, 0, 9, 7, 0}, values)
	assert.Equal(t, GraphPoint{Age: 0, Year: 1990, Value: 2}, points[0])
	assert.Equal(t, GraphPoint{Age: 72, Year: 2062, Value: 0}, points[6])
}

func TestBiorhythms(t *testing.T) {
	t.Parallel()

	birth := domain.MustBirthDate(1990, 3, 15)

	t.Run("birth day is critical", func(t *testing.T) {
		reading, err := Biorhythms(birth, birth.Date, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, reading.DaysLived)
		assert.Equal(t, BiorhythmValue{Value: 0, Phase: PhaseCritical}, reading.Physical)
		assert.Equal(t, BiorhythmValue{Value: 0, Phase: PhaseCritical}, reading.Emotional)
		assert.Equal(t, BiorhythmValue{Value: 0, Phase: PhaseCritical}, reading.Intellectual)
		assert.Equal(t, 0, reading.Overall)
	})

	t.Run("quarter of the emotional cycle", func(t *testing.T) {
		reading, err := Biorhythms(birth, birth.AddDays(7), nil)
		require.NoError(t, err)
		assert.Equal(t, 7, reading.DaysLived)
		assert.Equal(t, BiorhythmValue{Value: 100, Phase: PhaseHigh}, reading.Emotional)
		assert.Equal(t, BiorhythmValue{Value: 94, Phase: PhaseHigh}, reading.Physical)
		assert.Equal(t, BiorhythmValue{Value: 97, Phase: PhaseHigh}, reading.Intellectual)
		assert.Equal(t, 97, reading.Overall)
	})

	t.Run("three quarters of the emotional cycle", func(t *testing.T) {
		reading, err := Biorhythms(birth, birth.AddDays(21), nil)
		require.NoError(t, err)
		assert.Equal(t, BiorhythmValue{Value: -100, Phase: PhaseLow}, reading.Emotional)
	})

	t.Run("values stay in range", func(t *testing.T) {
		for days := 0; days < 400; days++ {
			reading, err := Biorhythms(birth, birth.AddDays(days), nil)
			require.NoError(t, err)
			for _, v := range []BiorhythmValue{reading.Physical, reading.Emotional, reading.Intellectual} {
				require.GreaterOrEqual(t, v.Value, -100)
				require.LessOrEqual(t, v.Value, 100)
			}
		}
	})

	t.Run("centuries after birth", func(t *testing.T) {
		reading, err := Biorhythms(birth, domain.Date{Year: 2300, Month: 3, Day: 15}, nil)
		require.NoError(t, err)
		assert.Equal(t, 113225, reading.DaysLived)
		assert.Equal(t, BiorhythmValue{Value: -89, Phase: PhaseLow}, reading.Physical)
		assert.Equal(t, BiorhythmValue{Value: -100, Phase: PhaseLow}, reading.Emotional)
		assert.Equal(t, BiorhythmValue{Value: 37, Phase: PhaseHigh}, reading.Intellectual)
		assert.Equal(t, -51, reading.Overall)
	})

	t.Run("rejects an impossible as-of", func(t *testing.T) {
		_, err := Biorhythms(birth, domain.Date{Year: 2024, Month: 13, Day: 45}, nil)
		assert.True(t, errors.Is(err, domain.ErrInvalidAsOfDate))
	})

	t.Run("rejects as-of before birth", func(t *testing.T) {
		_, err := Biorhythms(birth, birth.AddDays(-1), nil)
		assert.True(t, errors.Is(err, domain.ErrInvalidAsOfDate))
	})
}
