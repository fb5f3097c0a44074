package numerology

import "fmt"

// HealthStatus grades one health area.
type HealthStatus string

// Health statuses.
const (
	HealthStrong    HealthStatus = "strong"
	HealthNormal    HealthStatus = "normal"
	HealthAttention HealthStatus = "attention"
)

// HealthRecommendation grades one area of health from a matrix cell.
type HealthRecommendation struct {
	Area   string       `json:"area"`
	Digit  int          `json:"digit"`
	Status HealthStatus `json:"status"`
	Advice string       `json:"advice"`
}

type healthArea struct {
	area   string
	digit  int
	advice map[HealthStatus]string
}

var healthAreas = []healthArea{
	{"Physical health", 4, map[HealthStatus]string{
		HealthStrong:    "A sturdy body; keep it that way with regular exercise.",
		HealthNormal:    "Balanced health; consistent sleep keeps it stable.",
		HealthAttention: "Schedule check-ups and build a daily movement habit.",
	}},
	{"Vitality", 2, map[HealthStatus]string{
		HealthStrong:    "High energy reserves; share them without burning out.",
		HealthNormal:    "Enough energy when rest and work are balanced.",
		HealthAttention: "Guard your energy: limit draining contacts and rest often.",
	}},
	{"Endurance", 6, map[HealthStatus]string{
		HealthStrong:    "Great stamina for physical work and sport.",
		HealthNormal:    "Moderate stamina that grows with training.",
		HealthAttention: "Increase loads gradually and avoid long strain.",
	}},
	{"Mind and memory", 9, map[HealthStatus]string{
		HealthStrong:    "A clear mind; give it demanding problems.",
		HealthNormal:    "Good concentration supported by routine.",
		HealthAttention: "Train memory with reading, puzzles and regular breaks.",
	}},
}

func healthStatus(level CellLevel) HealthStatus {
	switch level {
	case CellStrong, CellExcess:
		return HealthStrong
	case CellNormal:
		return HealthNormal
	default:
		return HealthAttention
	}
}

// HealthAnalysis grades physical health (cell 4), vitality (2), endurance (6)
// and mind (9): three or more digits is strong, two normal, fewer needs attention.
func HealthAnalysis(m Psychomatrix) []HealthRecommendation {
	out := make([]HealthRecommendation, 0, len(healthAreas))
	for _, a := range healthAreas {
		status := healthStatus(CellStrength(m.Count(a.digit)))
		out = append(out, HealthRecommendation{
			Area:   a.area,
			Digit:  a.digit,
			Status: status,
			Advice: a.advice[status],
		})
	}
	return out
}

// AdviceType separates qualities to develop from qualities to use.
type AdviceType string

// Advice types.
const (
	AdviceDevelop AdviceType = "develop"
	AdviceUse     AdviceType = "use"
)

// DevelopmentAdvice is one recommendation for personal growth.
type DevelopmentAdvice struct {
	Type  AdviceType `json:"type"`
	Digit int        `json:"digit,omitempty"`
	Text  string     `json:"text"`
}

// DevelopmentAdviceFor recommends developing every absent cell and using every
// strong or excessive one, in digit order, followed by the life path advice.
func DevelopmentAdviceFor(m Psychomatrix, lp LifePath) []DevelopmentAdvice {
	out := []DevelopmentAdvice{}
	for d := 1; d <= 9; d++ {
		reading := CellReading(d, m.Count(d))
		switch reading.Level {
		case CellAbsent:
			out = append(out, DevelopmentAdvice{
				Type:  AdviceDevelop,
				Digit: d,
				Text:  fmt.Sprintf("%s: %s", reading.Label, reading.Text),
			})
		case CellStrong, CellExcess:
			out = append(out, DevelopmentAdvice{
				Type:  AdviceUse,
				Digit: d,
				Text:  fmt.Sprintf("%s: %s", reading.Label, reading.Text),
			})
		}
	}
	if advice := LifePathMeaning(lp.Number).Advice; advice != "" {
		out = append(out, DevelopmentAdvice{Type: AdviceDevelop, Text: advice})
	}
	return out
}

// FinancialProfile describes the relationship with money.
type FinancialProfile struct {
	Style     string   `json:"style"`
	Strength  string   `json:"strength"`
	Weakness  string   `json:"weakness"`
	Advice    string   `json:"advice"`
	Additions []string `json:"additions"`
}

var financialStyles = [9]FinancialProfile{
	{Style: "Bold investor", Strength: "Spots opportunities before others do.",
		Weakness: "Takes risks without a safety net.", Advice: "Keep a reserve before every new venture."},
	{Style: "Careful partner", Strength: "Saves steadily and negotiates fairly.",
		Weakness: "Lets others decide about shared money.", Advice: "Take part in every financial decision that affects you."},
	{Style: "Generous spender", Strength: "Earns through creativity and contacts.",
		Weakness: "Spends on impulse.", Advice: "Automate savings on payday."},
	{Style: "Reliable saver", Strength: "Builds wealth slowly and safely.",
		Weakness: "Misses opportunities out of caution.", Advice: "Set aside a small share for calculated risks."},
	{Style: "Flexible earner", Strength: "Finds income in many places.",
		Weakness: "Irregular income and spending.", Advice: "Smooth out income with a monthly budget."},
	{Style: "Family provider", Strength: "Manages the household budget responsibly.",
		Weakness: "Spends on others before yourself.", Advice: "Pay yourself first, then support others."},
	{Style: "Thoughtful analyst", Strength: "Studies before investing.",
		Weakness: "Distrusts money and undervalues your work.", Advice: "Charge what your expertise is worth."},
	{Style: "Natural magnate", Strength: "Thinks in large sums and long horizons.",
		Weakness: "Ties self-worth to net worth.", Advice: "Diversify and keep money a tool, not a goal."},
	{Style: "Idealistic giver", Strength: "Attracts resources for meaningful causes.",
		Weakness: "Gives away more than you can afford.", Advice: "Decide a giving budget in advance."},
}

var moneyLineAdditions = map[LineLevel]string{
	LineWeak:     "Weak money line: income grows through partnerships and new skills.",
	LineBalanced: "Balanced money line: steady work brings steady income.",
	LineStrong:   "Strong money line: a natural talent for earning.",
}

// FinancialProfileFor picks the money style of the life path root and adds
// notes from the money line (cells 4, 5, 6), the luck cell 7 and the labor cell 6.
func FinancialProfileFor(lp LifePath, m Psychomatrix) FinancialProfile {
	root := lp.Number.Root()
	if root < 1 || root > 9 {
		return FinancialProfile{Additions: []string{}}
	}
	p := financialStyles[root-1]

	cells, _ := LineCells(LineCol2)
	money := m.Count(cells[0]) + m.Count(cells[1]) + m.Count(cells[2])
	additions := []string{moneyLineAdditions[LineStrength(money)]}
	if m.Count(7) > 0 {
		additions = append(additions, "Luck cell present: unexpected gains are likely; do not count on them.")
	}
	if m.Count(6) == 0 {
		additions = append(additions, "No labor digits: earn with your head rather than routine work.")
	}
	p.Additions = additions
	return p
}

// LoveAdvice describes how a life path loves.
type LoveAdvice struct {
	Style      string `json:"style"`
	Gives      string `json:"gives"`
	Needs      string `json:"needs"`
	Challenges string `json:"challenges"`
	Tips       string `json:"tips"`
	BestMatch  []int  `json:"best_match"`
}

var loveStyles = [9]LoveAdvice{
	{Style: "Passionate leader", Gives: "Protection and direction.", Needs: "Admiration and room to act.",
		Challenges: "Wanting the last word.", Tips: "Let your partner lead sometimes."},
	{Style: "Devoted partner", Gives: "Tenderness and attention.", Needs: "Security and reassurance.",
		Challenges: "Losing yourself in the relationship.", Tips: "Keep friends and interests of your own."},
	{Style: "Playful romantic", Gives: "Fun, compliments and surprises.", Needs: "An audience and lightness.",
		Challenges: "Avoiding serious talks.", Tips: "Say the difficult things kindly but clearly."},
	{Style: "Loyal rock", Gives: "Stability and reliability.", Needs: "Trust and predictability.",
		Challenges: "Showing feelings.", Tips: "Say it, do not just show it through deeds."},
	{Style: "Free spirit", Gives: "Adventure and new experiences.", Needs: "Freedom and variety.",
		Challenges: "Commitment.", Tips: "Share adventures instead of escaping alone."},
	{Style: "Caring homemaker", Gives: "Warmth, comfort and care.", Needs: "Gratitude and harmony.",
		Challenges: "Controlling through care.", Tips: "Accept your partner as they are."},
	{Style: "Deep soul", Gives: "Understanding and depth.", Needs: "Space and intellectual connection.",
		Challenges: "Emotional distance.", Tips: "Let your partner into your inner world."},
	{Style: "Strong provider", Gives: "Material security and ambition.", Needs: "Respect and loyalty.",
		Challenges: "Putting work before love.", Tips: "Plan time together like an important meeting."},
	{Style: "Universal lover", Gives: "Compassion and acceptance.", Needs: "Shared ideals.",
		Challenges: "Loving humanity more than one person.", Tips: "Give your partner the priority you give to causes."},
}

// LoveAdviceFor returns the love style of the life path root with the roots
// it matches best.
func LoveAdviceFor(lp LifePath) LoveAdvice {
	root := lp.Number.Root()
	if root < 1 || root > 9 {
		return LoveAdvice{BestMatch: []int{}}
	}
	a := loveStyles[root-1]
	a.BestMatch = CompatibleNumbers(root)
	return a
}

// SoulMission combines the life path mission with the expression and soul urge
// traits into one statement.
func SoulMission(lp LifePath, expression, soulUrge ReducedNumber) string {
	mission := LifePathMeaning(lp.Number).Mission
	if mission == "" {
		return ""
	}
	expr, okExpr := traitOf(expression)
	soul, okSoul := traitOf(soulUrge)
	if !okExpr || !okSoul {
		return mission
	}
	return fmt.Sprintf("%s You fulfil it through %s, moved by a longing for %s.", mission, expr.phrase, soul.phrase)
}
