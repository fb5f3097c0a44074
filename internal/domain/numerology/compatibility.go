package numerology

import "github.com/phrazzld/numera/internal/domain"

// CompatibilityLevel buckets a compatibility score.
type CompatibilityLevel string

// Compatibility levels, best first.
const (
	LevelExcellent   CompatibilityLevel = "excellent"
	LevelGood        CompatibilityLevel = "good"
	LevelModerate    CompatibilityLevel = "moderate"
	LevelChallenging CompatibilityLevel = "challenging"
)

// sharedBirthdayBonus is added when both birthday numbers share a root.
const sharedBirthdayBonus = 5

// pairScores is the upper triangle of the symmetric 9×9 life path table:
// row i holds the scores of root i+1 against roots i+1..9.
var pairScores = [9][]int{
	{70, 60, 85, 55, 90, 65, 75, 60, 80},
	{75, 70, 85, 50, 90, 60, 85, 70},
	{75, 50, 85, 90, 55, 60, 90},
	{80, 45, 85, 85, 90, 55},
	{70, 50, 85, 60, 75},
	{80, 50, 75, 90},
	{75, 55, 80},
	{70, 65},
	{80},
}

// CompatibilityResult scores two people against each other.
type CompatibilityResult struct {
	Person1LifePath ReducedNumber      `json:"person1_life_path"`
	Person2LifePath ReducedNumber      `json:"person2_life_path"`
	Score           int                `json:"score"`
	Level           CompatibilityLevel `json:"level"`
	Summary         string             `json:"summary"`
	Strength        string             `json:"strength"`
	Challenge       string             `json:"challenge"`
	Tip             string             `json:"tip"`
}

// PairScore looks up the symmetric score of two numbers. Masters and other
// multi-digit values are compared by their root; 0 scores 0.
func PairScore(x, y int) int {
	a, b := ReduceFull(x).Value, ReduceFull(y).Value
	if a == 0 || b == 0 {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	return pairScores[a-1][b-a]
}

// Compatibility scores two birth dates. The score depends only on the
// unordered pair of life paths and birthday numbers, so swapping the
// arguments only swaps the person fields.
func Compatibility(a, b domain.BirthDate, params *Params) CompatibilityResult {
	if params == nil {
		params = NewDefaultParams()
	}

	lpA := CalculateLifePath(a)
	lpB := CalculateLifePath(b)

	score := PairScore(lpA.Number.Root(), lpB.Number.Root())
	if BirthdayNumber(a).Root() == BirthdayNumber(b).Root() {
		score += sharedBirthdayBonus
	}
	if score > 100 {
		score = 100
	}

	level := params.CompatibilityLevel(score)
	text := compatibilityTexts[level]
	return CompatibilityResult{
		Person1LifePath: lpA.Number,
		Person2LifePath: lpB.Number,
		Score:           score,
		Level:           level,
		Summary:         text.summary,
		Strength:        text.strength,
		Challenge:       text.challenge,
		Tip:             text.tip,
	}
}
