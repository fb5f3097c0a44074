package numerology

// Static reference data. Nothing here is mutated after package init; every
// exported accessor hands out copies of the slices it returns.

type letter struct {
	value int
	vowel bool
}

var latinLetters = map[rune]letter{
	'A': {1, true}, 'B': {2, false}, 'C': {3, false}, 'D': {4, false}, 'E': {5, true},
	'F': {6, false}, 'G': {7, false}, 'H': {8, false}, 'I': {9, true},
	'J': {1, false}, 'K': {2, false}, 'L': {3, false}, 'M': {4, false}, 'N': {5, false},
	'O': {6, true}, 'P': {7, false}, 'Q': {8, false}, 'R': {9, false},
	'S': {1, false}, 'T': {2, false}, 'U': {3, true}, 'V': {4, false}, 'W': {5, false},
	'X': {6, false}, 'Y': {7, false}, 'Z': {8, false},
}

var cyrillicLetters = map[rune]letter{
	'А': {1, true}, 'Б': {2, false}, 'В': {3, false}, 'Г': {4, false}, 'Д': {5, false},
	'Е': {6, true}, 'Ё': {7, true}, 'Ж': {8, false}, 'З': {9, false},
	'И': {1, true}, 'Й': {2, false}, 'К': {3, false}, 'Л': {4, false}, 'М': {5, false},
	'Н': {6, false}, 'О': {7, true}, 'П': {8, false}, 'Р': {9, false},
	'С': {1, false}, 'Т': {2, false}, 'У': {3, true}, 'Ф': {4, false}, 'Х': {5, false},
	'Ц': {6, false}, 'Ч': {7, false}, 'Ш': {8, false}, 'Щ': {9, false},
	'Ъ': {1, false}, 'Ы': {2, true}, 'Ь': {3, false}, 'Э': {4, true}, 'Ю': {5, true},
	'Я': {6, true},
}

type compatibilityText struct {
	summary   string
	strength  string
	challenge string
	tip       string
}

var compatibilityTexts = map[CompatibilityLevel]compatibilityText{
	LevelExcellent: {
		summary:   "A natural match: your rhythms support each other.",
		strength:  "Shared direction and easy understanding.",
		challenge: "Comfort can turn into taking each other for granted.",
		tip:       "Keep setting goals together so the harmony has somewhere to go.",
	},
	LevelGood: {
		summary:   "A solid match with plenty of common ground.",
		strength:  "Complementary talents that cover each other's gaps.",
		challenge: "Different paces in decisions.",
		tip:       "Agree early on who leads in which area.",
	},
	LevelModerate: {
		summary:   "A workable match that grows with effort.",
		strength:  "Each partner brings something the other lacks.",
		challenge: "Priorities pull in different directions.",
		tip:       "Talk about expectations openly and often.",
	},
	LevelChallenging: {
		summary:   "A demanding match that teaches both partners.",
		strength:  "Strong lessons in patience and acceptance.",
		challenge: "Frequent friction over values and habits.",
		tip:       "Respect the differences instead of trying to erase them.",
	},
}

// Theme is the reference record of a cycle number (personal year, month or day).
type Theme struct {
	Number        int      `json:"number"`
	Title         string   `json:"title"`
	Energy        string   `json:"energy"`
	Focus         string   `json:"focus"`
	Advice        string   `json:"advice"`
	Morning       string   `json:"morning"`
	Afternoon     string   `json:"afternoon"`
	Evening       string   `json:"evening"`
	Opportunity   string   `json:"opportunity"`
	Challenge     string   `json:"challenge"`
	Affirmation   string   `json:"affirmation"`
	LuckyColor    string   `json:"lucky_color"`
	LuckyActivity string   `json:"lucky_activity"`
	MonthSummary  string   `json:"month_summary"`
	YearOverview  string   `json:"year_overview"`
	Opportunities []string `json:"opportunities"`
	Challenges    []string `json:"challenges"`
}

var cycleThemes = [9]Theme{
	{
		Number: 1, Title: "New beginnings", Energy: "initiative", Focus: "start what matters",
		Advice:    "Take the first step yourself instead of waiting for permission.",
		Morning:   "Plan one bold move.", Afternoon: "Act on it without hesitation.", Evening: "Review what you started.",
		Opportunity: "Launching a project", Challenge: "Impatience",
		Affirmation: "I lead my own way.", LuckyColor: "red", LuckyActivity: "starting something new",
		MonthSummary:  "A month to plant seeds and claim your direction.",
		YearOverview:  "The first year of a new nine-year cycle: choices made now set the tone for years.",
		Opportunities: []string{"new projects", "leadership roles", "independence"},
		Challenges:    []string{"impatience", "going it alone"},
	},
	{
		Number: 2, Title: "Partnership", Energy: "cooperation", Focus: "work with others",
		Advice:    "Listen more than you speak and let things ripen.",
		Morning:   "Reach out to a partner.", Afternoon: "Negotiate and refine details.", Evening: "Spend quiet time with someone close.",
		Opportunity: "Agreements and alliances", Challenge: "Oversensitivity",
		Affirmation: "I grow through connection.", LuckyColor: "orange", LuckyActivity: "a heartfelt conversation",
		MonthSummary:  "A month of patience, diplomacy and small steady progress.",
		YearOverview:  "A slower year of alliances, waiting and nurturing what began last year.",
		Opportunities: []string{"partnerships", "mediation", "emotional closeness"},
		Challenges:    []string{"indecision", "dependency"},
	},
	{
		Number: 3, Title: "Self-expression", Energy: "creativity", Focus: "express and share",
		Advice:    "Say it, write it, show it; visibility brings luck now.",
		Morning:   "Create something.", Afternoon: "Share your ideas.", Evening: "Meet friends.",
		Opportunity: "Creative work and socializing", Challenge: "Scattered energy",
		Affirmation: "My voice matters.", LuckyColor: "yellow", LuckyActivity: "creative play",
		MonthSummary:  "A bright, social month that rewards creativity.",
		YearOverview:  "A year of expansion, visibility and joy in expression.",
		Opportunities: []string{"creative projects", "networking", "travel"},
		Challenges:    []string{"scattered focus", "overspending"},
	},
	{
		Number: 4, Title: "Foundation", Energy: "discipline", Focus: "build and organize",
		Advice:    "Steady work now becomes lasting structure.",
		Morning:   "Handle the hardest task first.", Afternoon: "Put things in order.", Evening: "Rest and recover.",
		Opportunity: "Solid progress on long tasks", Challenge: "Rigidity",
		Affirmation: "I build step by step.", LuckyColor: "green", LuckyActivity: "organizing your space",
		MonthSummary:  "A working month: routines, paperwork and foundations.",
		YearOverview:  "A year of effort and structure that pays off for the rest of the cycle.",
		Opportunities: []string{"career foundations", "health routines", "property"},
		Challenges:    []string{"fatigue", "stubbornness"},
	},
	{
		Number: 5, Title: "Change", Energy: "freedom", Focus: "embrace change",
		Advice:    "Say yes to the unexpected but keep your footing.",
		Morning:   "Try a new approach.", Afternoon: "Move, travel, meet new people.", Evening: "Do something spontaneous.",
		Opportunity: "Travel and new experiences", Challenge: "Restlessness",
		Affirmation: "I welcome change.", LuckyColor: "turquoise", LuckyActivity: "a short trip",
		MonthSummary:  "A lively month of movement and surprises.",
		YearOverview:  "A turning-point year of change, travel and freedom.",
		Opportunities: []string{"travel", "career change", "learning"},
		Challenges:    []string{"restlessness", "impulsive decisions"},
	},
	{
		Number: 6, Title: "Responsibility", Energy: "harmony", Focus: "care for home and family",
		Advice:    "Serve the people close to you without losing yourself.",
		Morning:   "Tend to home matters.", Afternoon: "Help someone who needs you.", Evening: "Share a meal with family.",
		Opportunity: "Deepening relationships", Challenge: "Overcommitment",
		Affirmation: "I give and receive love.", LuckyColor: "blue", LuckyActivity: "cooking for others",
		MonthSummary:  "A warm month centred on home, family and obligations.",
		YearOverview:  "A year of love, duty and domestic decisions.",
		Opportunities: []string{"marriage or commitment", "home improvement", "community"},
		Challenges:    []string{"perfectionism", "carrying others' burdens"},
	},
	{
		Number: 7, Title: "Reflection", Energy: "insight", Focus: "study and reflect",
		Advice:    "Slow down and trust what you learn in silence.",
		Morning:   "Read or study.", Afternoon: "Analyse before you decide.", Evening: "Meditate or walk alone.",
		Opportunity: "Research and inner growth", Challenge: "Isolation",
		Affirmation: "I trust my inner wisdom.", LuckyColor: "violet", LuckyActivity: "time in nature",
		MonthSummary:  "A quiet month for analysis, rest and spiritual work.",
		YearOverview:  "A year of introspection, study and refining your purpose.",
		Opportunities: []string{"education", "spiritual practice", "specialization"},
		Challenges:    []string{"loneliness", "overthinking"},
	},
	{
		Number: 8, Title: "Achievement", Energy: "power", Focus: "pursue results",
		Advice:    "Think big and manage resources with care.",
		Morning:   "Tackle finances.", Afternoon: "Negotiate and decide.", Evening: "Plan the next milestone.",
		Opportunity: "Money and recognition", Challenge: "Control",
		Affirmation: "I attract abundance.", LuckyColor: "gold", LuckyActivity: "an important meeting",
		MonthSummary:  "A productive month for business, money and authority.",
		YearOverview:  "A harvest year of ambition, material gain and recognition.",
		Opportunities: []string{"promotion", "investment", "business growth"},
		Challenges:    []string{"workaholism", "power struggles"},
	},
	{
		Number: 9, Title: "Completion", Energy: "release", Focus: "finish and let go",
		Advice:    "Close open loops to make room for what comes next.",
		Morning:   "Finish an old task.", Afternoon: "Give help generously.", Evening: "Clear out what you no longer need.",
		Opportunity: "Closure and generosity", Challenge: "Holding on",
		Affirmation: "I release with gratitude.", LuckyColor: "white", LuckyActivity: "decluttering",
		MonthSummary:  "A month of endings, forgiveness and preparation.",
		YearOverview:  "The last year of the cycle: complete, release and prepare for renewal.",
		Opportunities: []string{"completion", "charity", "forgiveness"},
		Challenges:    []string{"nostalgia", "fear of endings"},
	},
}

// CycleTheme returns the reference record of a cycle number; masters fall
// back to their root. The zero value is returned for 0.
func CycleTheme(n int) Theme {
	root := ReduceFull(n).Value
	if root == 0 {
		return Theme{}
	}
	t := cycleThemes[root-1]
	t.Opportunities = append([]string(nil), t.Opportunities...)
	t.Challenges = append([]string(nil), t.Challenges...)
	return t
}

// Meaning describes a life path number.
type Meaning struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Mission     string   `json:"mission"`
	Advice      string   `json:"advice"`
	Careers     []string `json:"careers"`

	// CompatibleNumbers are the life path roots that score at least
	// compatibleScore against this one.
	CompatibleNumbers []int `json:"compatible_numbers"`
}

var lifePathMeanings = map[int]Meaning{
	1: {Title: "The Leader", Description: "Independent, driven and original.",
		Keywords: []string{"independence", "ambition"}, Strengths: []string{"initiative", "courage"}, Weaknesses: []string{"stubbornness", "impatience"},
		Mission: "Open new paths and show others they can be walked.",
		Advice:  "Listen before you lead; allies make the road shorter.",
		Careers: []string{"entrepreneur", "manager", "inventor"}},
	2: {Title: "The Diplomat", Description: "Sensitive, cooperative and intuitive.",
		Keywords: []string{"harmony", "partnership"}, Strengths: []string{"tact", "empathy"}, Weaknesses: []string{"indecision", "dependency"},
		Mission: "Bring people together and keep the peace between them.",
		Advice:  "Say what you need out loud instead of waiting to be noticed.",
		Careers: []string{"mediator", "counselor", "diplomat"}},
	3: {Title: "The Communicator", Description: "Creative, expressive and sociable.",
		Keywords: []string{"creativity", "joy"}, Strengths: []string{"charm", "imagination"}, Weaknesses: []string{"superficiality", "scattered energy"},
		Mission: "Inspire others through words, art and optimism.",
		Advice:  "Finish one project before the next idea takes over.",
		Careers: []string{"writer", "designer", "performer"}},
	4: {Title: "The Builder", Description: "Practical, reliable and methodical.",
		Keywords: []string{"stability", "work"}, Strengths: []string{"discipline", "loyalty"}, Weaknesses: []string{"rigidity", "caution"},
		Mission: "Lay foundations that others can rely on for years.",
		Advice:  "Leave room in the plan for the unexpected.",
		Careers: []string{"engineer", "accountant", "architect"}},
	5: {Title: "The Adventurer", Description: "Curious, adaptable and free-spirited.",
		Keywords: []string{"freedom", "change"}, Strengths: []string{"versatility", "resourcefulness"}, Weaknesses: []string{"restlessness", "excess"},
		Mission: "Explore, experience and share what change can teach.",
		Advice:  "Choose a few commitments and let them anchor your freedom.",
		Careers: []string{"journalist", "travel guide", "sales"}},
	6: {Title: "The Nurturer", Description: "Responsible, caring and protective.",
		Keywords: []string{"family", "service"}, Strengths: []string{"compassion", "devotion"}, Weaknesses: []string{"perfectionism", "meddling"},
		Mission: "Care for family and community and make spaces feel like home.",
		Advice:  "Help when asked, and let others learn from their own mistakes.",
		Careers: []string{"teacher", "doctor", "interior designer"}},
	7: {Title: "The Seeker", Description: "Analytical, introspective and spiritual.",
		Keywords: []string{"wisdom", "solitude"}, Strengths: []string{"insight", "depth"}, Weaknesses: []string{"aloofness", "skepticism"},
		Mission: "Search for the truth beneath appearances and pass it on.",
		Advice:  "Share your conclusions; knowledge kept alone goes stale.",
		Careers: []string{"researcher", "analyst", "philosopher"}},
	8: {Title: "The Executive", Description: "Ambitious, capable and authoritative.",
		Keywords: []string{"power", "abundance"}, Strengths: []string{"management", "vision"}, Weaknesses: []string{"materialism", "control"},
		Mission: "Create abundance and use power to build lasting structures.",
		Advice:  "Measure success in people helped as well as money earned.",
		Careers: []string{"executive", "banker", "lawyer"}},
	9: {Title: "The Humanitarian", Description: "Generous, idealistic and wise.",
		Keywords: []string{"compassion", "completion"}, Strengths: []string{"tolerance", "generosity"}, Weaknesses: []string{"detachment", "martyrdom"},
		Mission: "Serve a cause larger than yourself and complete what others began.",
		Advice:  "Let go of the past so there is room for what comes next.",
		Careers: []string{"social worker", "artist", "healer"}},
	11: {Title: "The Intuitive", Description: "A master number of inspiration and heightened intuition.",
		Keywords: []string{"illumination", "intuition"}, Strengths: []string{"vision", "sensitivity"}, Weaknesses: []string{"nervous tension", "self-doubt"},
		Mission: "Light the way for others with insight and inspiration.",
		Advice:  "Ground your intuition in daily routine and rest.",
		Careers: []string{"spiritual teacher", "psychologist", "artist"}},
	22: {Title: "The Master Builder", Description: "A master number that turns great visions into reality.",
		Keywords: []string{"mastery", "construction"}, Strengths: []string{"practical vision", "endurance"}, Weaknesses: []string{"pressure", "overreach"},
		Mission: "Turn large visions into works that serve many people.",
		Advice:  "Delegate; no cathedral was built by one pair of hands.",
		Careers: []string{"founder", "urban planner", "statesman"}},
	33: {Title: "The Master Teacher", Description: "A master number of selfless service and guidance.",
		Keywords: []string{"healing", "teaching"}, Strengths: []string{"compassion", "inspiration"}, Weaknesses: []string{"self-sacrifice", "burden"},
		Mission: "Heal and teach through unconditional love.",
		Advice:  "Care for yourself with the devotion you give to others.",
		Careers: []string{"healer", "mentor", "humanitarian leader"}},
}

// compatibleScore is the pair score at or above which two life path roots
// count as compatible.
const compatibleScore = 85

// CompatibleNumbers lists the roots 1..9 whose pair score with n is at least
// compatibleScore, ascending.
func CompatibleNumbers(n int) []int {
	out := []int{}
	if ReduceFull(n).Value == 0 {
		return out
	}
	for other := 1; other <= 9; other++ {
		if PairScore(n, other) >= compatibleScore {
			out = append(out, other)
		}
	}
	return out
}

// LifePathMeaning describes a life path number. Master numbers have their own
// records.
func LifePathMeaning(n ReducedNumber) Meaning {
	m, ok := lifePathMeanings[n.Value]
	if !ok {
		m, ok = lifePathMeanings[n.Root()]
	}
	if !ok {
		return Meaning{}
	}
	m.Number = n.Value
	m.Keywords = append([]string(nil), m.Keywords...)
	m.Strengths = append([]string(nil), m.Strengths...)
	m.Weaknesses = append([]string(nil), m.Weaknesses...)
	m.Careers = append([]string(nil), m.Careers...)
	m.CompatibleNumbers = CompatibleNumbers(n.Root())
	return m
}

var pinnacleThemes = [9]string{
	"Independence and self-reliance",
	"Cooperation and patience",
	"Creativity and self-expression",
	"Hard work and building foundations",
	"Change, freedom and travel",
	"Family, home and responsibility",
	"Study, introspection and specialization",
	"Career, money and authority",
	"Service, compassion and completion",
}

var masterPinnacleThemes = map[int]string{
	11: "Spiritual insight and inspiring others",
	22: "Large-scale achievement and lasting works",
	33: "Teaching, healing and selfless service",
}

// PinnacleTheme describes a pinnacle number.
func PinnacleTheme(n int) string {
	if t, ok := masterPinnacleThemes[n]; ok {
		return t
	}
	root := ReduceFull(n).Value
	if root == 0 {
		return ""
	}
	return pinnacleThemes[root-1]
}

var challengeThemes = [9]string{
	"Choice: every path is open, and so is every weakness",
	"Self-assertion: stand up for yourself without domineering",
	"Sensitivity: do not let criticism paralyze you",
	"Self-expression: share feelings instead of hiding them",
	"Discipline: finish what you start",
	"Freedom: balance restlessness with commitment",
	"Responsibility: accept imperfection in yourself and others",
	"Faith: trust beyond what can be proven",
	"Materialism: hold money and power lightly",
}

// ChallengeTheme describes a challenge number 0..8.
func ChallengeTheme(n int) string {
	if n < 0 || n >= len(challengeThemes) {
		return ""
	}
	return challengeThemes[n]
}

var karmicDebtMeanings = map[int]string{
	13: "Laziness in a past life: success comes only through focused, honest work.",
	14: "Abuse of freedom in a past life: learn moderation and commitment.",
	16: "Vanity and broken bonds in a past life: humility rebuilds what ego destroyed.",
	19: "Abuse of power in a past life: learn to accept help and share control.",
}

// KarmicDebtMeaning describes a karmic debt number; empty for other numbers.
func KarmicDebtMeaning(n int) string {
	return karmicDebtMeanings[n]
}

// Elements are the lucky correspondences of a life path.
type Elements struct {
	Numbers []int    `json:"numbers"`
	Days    []string `json:"days"`
	Colors  []string `json:"colors"`
	Stones  []string `json:"stones"`
}

var luckyElements = [9]Elements{
	{Numbers: []int{1, 10, 19}, Days: []string{"Sunday"}, Colors: []string{"red", "gold"}, Stones: []string{"ruby"}},
	{Numbers: []int{2, 11, 20}, Days: []string{"Monday"}, Colors: []string{"orange", "silver"}, Stones: []string{"moonstone"}},
	{Numbers: []int{3, 12, 21}, Days: []string{"Thursday"}, Colors: []string{"yellow"}, Stones: []string{"citrine"}},
	{Numbers: []int{4, 13, 22}, Days: []string{"Saturday"}, Colors: []string{"green", "brown"}, Stones: []string{"emerald"}},
	{Numbers: []int{5, 14, 23}, Days: []string{"Wednesday"}, Colors: []string{"turquoise"}, Stones: []string{"aquamarine"}},
	{Numbers: []int{6, 15, 24}, Days: []string{"Friday"}, Colors: []string{"blue", "pink"}, Stones: []string{"sapphire"}},
	{Numbers: []int{7, 16, 25}, Days: []string{"Monday"}, Colors: []string{"violet"}, Stones: []string{"amethyst"}},
	{Numbers: []int{8, 17, 26}, Days: []string{"Saturday"}, Colors: []string{"black", "dark blue"}, Stones: []string{"onyx"}},
	{Numbers: []int{9, 18, 27}, Days: []string{"Tuesday"}, Colors: []string{"white", "crimson"}, Stones: []string{"garnet"}},
}

// LuckyElements returns the correspondences of the life path root.
func LuckyElements(lp LifePath) Elements {
	root := lp.Number.Root()
	if root < 1 || root > 9 {
		return Elements{Numbers: []int{}, Days: []string{}, Colors: []string{}, Stones: []string{}}
	}
	e := luckyElements[root-1]
	return Elements{
		Numbers: append([]int(nil), e.Numbers...),
		Days:    append([]string(nil), e.Days...),
		Colors:  append([]string(nil), e.Colors...),
		Stones:  append([]string(nil), e.Stones...),
	}
}

// PlanetaryInfo is the ruling planet of a life path.
type PlanetaryInfo struct {
	Planet  string `json:"planet"`
	Element string `json:"element"`
}

var planets = [9]PlanetaryInfo{
	{"Sun", "fire"}, {"Moon", "water"}, {"Jupiter", "fire"},
	{"Uranus", "air"}, {"Mercury", "air"}, {"Venus", "earth"},
	{"Neptune", "water"}, {"Saturn", "earth"}, {"Mars", "fire"},
}

// Planetary returns the ruling planet of the life path root.
func Planetary(lp LifePath) PlanetaryInfo {
	root := lp.Number.Root()
	if root < 1 || root > 9 {
		return PlanetaryInfo{}
	}
	return planets[root-1]
}

// TarotCard is the major arcanum matching a life path.
type TarotCard struct {
	Arcanum int    `json:"arcanum"`
	Name    string `json:"name"`
}

var tarotCards = map[int]TarotCard{
	1: {1, "The Magician"}, 2: {2, "The High Priestess"}, 3: {3, "The Empress"},
	4: {4, "The Emperor"}, 5: {5, "The Hierophant"}, 6: {6, "The Lovers"},
	7: {7, "The Chariot"}, 8: {8, "Strength"}, 9: {9, "The Hermit"},
	11: {11, "Justice"}, 22: {0, "The Fool"}, 33: {21, "The World"},
}

// Tarot returns the major arcanum of the life path; masters have their own cards.
func Tarot(lp LifePath) TarotCard {
	if c, ok := tarotCards[lp.Number.Value]; ok {
		return c
	}
	return tarotCards[lp.Number.Root()]
}
