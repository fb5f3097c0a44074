package numerology

import (
	"testing"

	"github.com/phrazzld/numera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("from a birth date", func(t *testing.T) {
		recs := HealthAnalysis(BuildMatrix(domain.MustBirthDate(1990, 3, 15)))
		require.Len(t, recs, 4)

		statuses := map[int]HealthStatus{}
		for _, r := range recs {
			statuses[r.Digit] = r.Status
			assert.NotEmpty(t, r.Area)
			assert.NotEmpty(t, r.Advice)
		}
		assert.Equal(t, map[int]HealthStatus{
			4: HealthAttention,
			2: HealthAttention,
			6: HealthAttention,
			9: HealthNormal,
		}, statuses)
	})

	t.Run("grades by cell count", func(t *testing.T) {
		m := Psychomatrix{Cells: map[int]int{4: 3, 2: 2, 6: 5, 9: 1}}
		recs := HealthAnalysis(m)
		assert.Equal(t, HealthStrong, recs[0].Status)
		assert.Equal(t, HealthNormal, recs[1].Status)
		assert.Equal(t, HealthStrong, recs[2].Status)
		assert.Equal(t, HealthAttention, recs[3].Status)
		assert.Equal(t, healthAreas[0].advice[HealthStrong], recs[0].Advice)
	})
}

func TestDevelopmentAdviceFor(t *testing.T) {
	t.Parallel()

	birth := domain.MustBirthDate(1990, 3, 15)
	advice := DevelopmentAdviceFor(BuildMatrix(birth), CalculateLifePath(birth))
	require.Len(t, advice, 6)

	var develop, use []int
	for _, a := range advice {
		switch a.Type {
		case AdviceDevelop:
			develop = append(develop, a.Digit)
		case AdviceUse:
			use = append(use, a.Digit)
		}
	}
	assert.Equal(t, []int{2, 4, 7, 8, 0}, develop, "absent cells, then the life path advice")
	assert.Equal(t, []int{1}, use)
	assert.Equal(t, "Character: "+cellTexts[0].strong, advice[0].Text)
	assert.Equal(t, "Listen before you lead; allies make the road shorter.", advice[5].Text)
}

func TestFinancialProfileFor(t *testing.T) {
	t.Parallel()

	birth := domain.MustBirthDate(1990, 3, 15)
	lp := CalculateLifePath(birth)

	profile := FinancialProfileFor(lp, BuildMatrix(birth))
	assert.Equal(t, "Bold investor", profile.Style)
	assert.Equal(t, []string{moneyLineAdditions[LineWeak]}, profile.Additions)

	strong := FinancialProfileFor(lp, Psychomatrix{Cells: map[int]int{4: 3, 5: 2, 6: 1, 7: 1}})
	require.Len(t, strong.Additions, 2)
	assert.Equal(t, moneyLineAdditions[LineStrong], strong.Additions[0])
	assert.Contains(t, strong.Additions[1], "Luck cell")

	bare := FinancialProfileFor(lp, Psychomatrix{Cells: map[int]int{7: 1}})
	require.Len(t, bare.Additions, 3)
	assert.Contains(t, bare.Additions[2], "No labor digits")

	empty := FinancialProfileFor(LifePath{}, Psychomatrix{})
	assert.Empty(t, empty.Style)
	assert.NotNil(t, empty.Additions)

	first := FinancialProfileFor(lp, BuildMatrix(birth))
	first.Additions[0] = "changed"
	assert.NotEqual(t, "changed", FinancialProfileFor(lp, BuildMatrix(birth)).Additions[0])
}

func TestLoveAdviceFor(t *testing.T) {
	t.Parallel()

	one := CalculateLifePath(domain.MustBirthDate(1990, 3, 15))
	advice := LoveAdviceFor(one)
	assert.Equal(t, "Passionate leader", advice.Style)
	assert.Equal(t, []int{3, 5}, advice.BestMatch)
	for _, n := range advice.BestMatch {
		assert.GreaterOrEqual(t, PairScore(1, n), compatibleScore)
	}

	master := CalculateLifePath(domain.MustBirthDate(1984, 2, 9)) // 33, root 6
	assert.Equal(t, "Caring homemaker", LoveAdviceFor(master).Style)
	assert.Equal(t, []int{2, 3, 4, 9}, LoveAdviceFor(master).BestMatch)

	assert.Equal(t, LoveAdvice{BestMatch: []int{}}, LoveAdviceFor(LifePath{}))
}

func TestCompatibleNumbers(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 9; n++ {
		matches := CompatibleNumbers(n)
		assert.NotEmpty(t, matches, "root %d", n)
		for _, m := range matches {
			assert.GreaterOrEqual(t, PairScore(n, m), compatibleScore)
			assert.Contains(t, CompatibleNumbers(m), n, "compatibility is symmetric")
		}
	}
	assert.Equal(t, CompatibleNumbers(4), CompatibleNumbers(22))
	assert.Empty(t, CompatibleNumbers(0))
}

func TestSoulMission(t *testing.T) {
	t.Parallel()

	birth := domain.MustBirthDate(1990, 3, 15)
	names, err := CalculateNameNumbers("Anna")
	require.NoError(t, err)

	mission := SoulMission(CalculateLifePath(birth), names.Expression, names.SoulUrge)
	assert.Equal(t, "Open new paths and show others they can be walked. "+
		"You fulfil it through self-expression and joy, moved by a longing for cooperation and sensitivity.", mission)

	assert.Equal(t, "Open new paths and show others they can be walked.",
		SoulMission(CalculateLifePath(birth), ReducedNumber{}, names.SoulUrge))
	assert.Empty(t, SoulMission(LifePath{}, names.Expression, names.SoulUrge))
}
