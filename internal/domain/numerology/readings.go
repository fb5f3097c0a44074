package numerology

import "fmt"

// NumberMeaning is a short reading of a single number.
type NumberMeaning struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CellMeaning reads one psychomatrix cell at its current count.
type CellMeaning struct {
	Digit int       `json:"digit"`
	Count int       `json:"count"`
	Label string    `json:"label"`
	Level CellLevel `json:"level"`
	Title string    `json:"title"`
	Text  string    `json:"text"`
}

type cellText struct {
	label   string
	missing string
	present string
	strong  string
}

var cellTexts = [9]cellText{
	{"Character",
		"Willpower needs deliberate training; others can easily sway you.",
		"A steady will that holds its ground when it matters.",
		"A forceful, dominant character; soften it with patience."},
	{"Energy",
		"Energy runs low; sleep, movement and fresh air refill it.",
		"Enough energy for daily life and for other people.",
		"Abundant energy that can heal and charge those around you."},
	{"Interest",
		"Little pull toward exact sciences; learning needs a clear purpose.",
		"A healthy curiosity for how things work.",
		"A strong technical mind drawn to science and precision."},
	{"Health",
		"The body needs conscious care and regular check-ups.",
		"Average health that responds well to good habits.",
		"A robust constitution and quick recovery."},
	{"Logic",
		"Decisions come from feeling more than from reasoning.",
		"Sound judgment that balances logic and intuition.",
		"A sharp, predictive logic that sees outcomes early."},
	{"Labor",
		"Manual work feels like a burden; prefer intellectual tasks.",
		"Willing to work with your hands when it is needed.",
		"A love of craft and physical work; skilled hands."},
	{"Luck",
		"Success comes from effort rather than chance.",
		"Occasional lucky breaks reward honest work.",
		"Strong luck that opens doors, as long as it is not abused."},
	{"Duty",
		"Obligations feel heavy; promises need writing down.",
		"A reliable sense of duty toward family and work.",
		"A deep sense of responsibility that can turn into self-sacrifice."},
	{"Memory",
		"Memory needs training; notes and repetition help.",
		"Good memory and a clear mind.",
		"Exceptional memory and intellect; beware of arrogance."},
}

var cellLevelTitles = map[CellLevel]string{
	CellAbsent: "Undeveloped",
	CellWeak:   "Developing",
	CellNormal: "Balanced",
	CellStrong: "Pronounced",
	CellExcess: "Overflowing",
}

// CellReading reads cell digit 1..9 at count. Other digits give a zero value.
func CellReading(digit, count int) CellMeaning {
	if digit < 1 || digit > 9 {
		return CellMeaning{}
	}
	t := cellTexts[digit-1]
	level := CellStrength(count)
	text := t.present
	switch level {
	case CellAbsent:
		text = t.missing
	case CellStrong, CellExcess:
		text = t.strong
	}
	return CellMeaning{
		Digit: digit,
		Count: count,
		Label: t.label,
		Level: level,
		Title: cellLevelTitles[level],
		Text:  text,
	}
}

// CellReadings reads all nine cells of m in digit order.
func CellReadings(m Psychomatrix) []CellMeaning {
	out := make([]CellMeaning, 0, 9)
	for d := 1; d <= 9; d++ {
		out = append(out, CellReading(d, m.Count(d)))
	}
	return out
}

// LineMeaning reads one row, column or diagonal of the matrix.
type LineMeaning struct {
	Key   string    `json:"key"`
	Name  string    `json:"name"`
	Sum   int       `json:"sum"`
	Level LineLevel `json:"level"`
	Text  string    `json:"text"`
}

type lineText struct {
	name  string
	texts map[LineLevel]string
}

// lineOrder is the order lines appear in readings.
var lineOrder = []string{
	LineRow1, LineRow2, LineRow3,
	LineCol1, LineCol2, LineCol3,
	LineDiagMain, LineDiagAnti,
}

var lineTexts = map[string]lineText{
	LineRow1: {"Purpose", map[LineLevel]string{
		LineWeak:     "Goals shift often; short, concrete targets work best.",
		LineBalanced: "Clear goals pursued at a sustainable pace.",
		LineStrong:   "Relentless determination once a goal is set.",
	}},
	LineRow2: {"Family", map[LineLevel]string{
		LineWeak:     "Independence comes before family life for now.",
		LineBalanced: "Family matters and is given its due time.",
		LineStrong:   "Family is the center of life and its main motivation.",
	}},
	LineRow3: {"Habits", map[LineLevel]string{
		LineWeak:     "Flexible with routine and open to change.",
		LineBalanced: "Healthy habits that give life a steady rhythm.",
		LineStrong:   "Deeply attached to tradition and stability.",
	}},
	LineCol1: {"Self-esteem", map[LineLevel]string{
		LineWeak:     "Self-confidence needs support and recognition.",
		LineBalanced: "A realistic view of your own worth.",
		LineStrong:   "High self-esteem that inspires others, or overwhelms them.",
	}},
	LineCol2: {"Money", map[LineLevel]string{
		LineWeak:     "Money comes through others or through learning new skills.",
		LineBalanced: "Steady earning ability through consistent work.",
		LineStrong:   "A natural talent for earning and managing money.",
	}},
	LineCol3: {"Talent", map[LineLevel]string{
		LineWeak:     "Talents are hidden and show up with practice.",
		LineBalanced: "Clear abilities that grow with use.",
		LineStrong:   "Bright talent that asks to be expressed.",
	}},
	LineDiagMain: {"Spirituality", map[LineLevel]string{
		LineWeak:     "A practical, down-to-earth outlook.",
		LineBalanced: "Interest in the meaning behind events.",
		LineStrong:   "A strong spiritual drive and inner search.",
	}},
	LineDiagAnti: {"Temperament", map[LineLevel]string{
		LineWeak:     "A calm, reserved temperament.",
		LineBalanced: "A warm and balanced temperament.",
		LineStrong:   "A passionate, intense temperament.",
	}},
}

// LineReading reads the line key at sum. Unknown keys give a zero value.
func LineReading(key string, sum int) LineMeaning {
	t, ok := lineTexts[key]
	if !ok {
		return LineMeaning{}
	}
	level := LineStrength(sum)
	return LineMeaning{Key: key, Name: t.name, Sum: sum, Level: level, Text: t.texts[level]}
}

// LineReadings reads every line of l: rows, then columns, then diagonals.
func LineReadings(l Lines) []LineMeaning {
	out := make([]LineMeaning, 0, len(lineOrder))
	for _, key := range lineOrder {
		sum, ok := l.Rows[key]
		if !ok {
			sum, ok = l.Columns[key]
		}
		if !ok {
			sum = l.Diagonals[key]
		}
		out = append(out, LineReading(key, sum))
	}
	return out
}

// NameNumberKind names one of the three numbers derived from a name.
type NameNumberKind string

// Name number kinds.
const (
	KindExpression  NameNumberKind = "expression"
	KindSoulUrge    NameNumberKind = "soul_urge"
	KindPersonality NameNumberKind = "personality"
)

// NameNumberMeaning reads one name number.
type NameNumberMeaning struct {
	Kind NameNumberKind `json:"kind"`
	NumberMeaning
}

type numberTrait struct {
	title  string
	phrase string
}

var numberTraits = map[int]numberTrait{
	1:  {"Leadership", "independence and initiative"},
	2:  {"Partnership", "cooperation and sensitivity"},
	3:  {"Creativity", "self-expression and joy"},
	4:  {"Order", "structure and hard work"},
	5:  {"Freedom", "variety and adventure"},
	6:  {"Care", "responsibility and love"},
	7:  {"Wisdom", "analysis and inner truth"},
	8:  {"Power", "achievement and authority"},
	9:  {"Compassion", "service and generosity"},
	11: {"Inspiration", "intuition and spiritual insight"},
	22: {"Mastery", "building on a grand scale"},
	33: {"Devotion", "healing and teaching"},
}

var nameKindTemplates = map[NameNumberKind]string{
	KindExpression:  "Your talents express themselves through %s.",
	KindSoulUrge:    "At heart you long for %s.",
	KindPersonality: "Others first notice your %s.",
}

func traitOf(n ReducedNumber) (numberTrait, bool) {
	t, ok := numberTraits[n.Value]
	if !ok {
		t, ok = numberTraits[n.Root()]
	}
	return t, ok
}

// NameNumberReading reads a name number of the given kind. Masters keep their
// own reading; unknown kinds or a zero number give a zero value.
func NameNumberReading(kind NameNumberKind, n ReducedNumber) NameNumberMeaning {
	template, ok := nameKindTemplates[kind]
	if !ok {
		return NameNumberMeaning{}
	}
	t, ok := traitOf(n)
	if !ok {
		return NameNumberMeaning{}
	}
	return NameNumberMeaning{
		Kind: kind,
		NumberMeaning: NumberMeaning{
			Number:      n.Value,
			Title:       t.title,
			Description: fmt.Sprintf(template, t.phrase),
		},
	}
}

// NameNumberReadings reads expression, soul urge and personality in that order.
func NameNumberReadings(nn NameNumbers) []NameNumberMeaning {
	return []NameNumberMeaning{
		NameNumberReading(KindExpression, nn.Expression),
		NameNumberReading(KindSoulUrge, nn.SoulUrge),
		NameNumberReading(KindPersonality, nn.Personality),
	}
}

var birthdayMeanings = map[int]NumberMeaning{
	1:  {Title: "Born pioneer", Description: "A gift for starting things and standing on your own."},
	2:  {Title: "Born peacemaker", Description: "A gift for tact, partnership and quiet support."},
	3:  {Title: "Born storyteller", Description: "A gift for words, humor and lifting the mood."},
	4:  {Title: "Born organizer", Description: "A gift for order, method and patient effort."},
	5:  {Title: "Born explorer", Description: "A gift for adapting quickly and learning by doing."},
	6:  {Title: "Born guardian", Description: "A gift for caring, teaching and creating comfort."},
	7:  {Title: "Born thinker", Description: "A gift for analysis, research and reflection."},
	8:  {Title: "Born manager", Description: "A gift for handling money, people and large tasks."},
	9:  {Title: "Born idealist", Description: "A gift for empathy and seeing the bigger picture."},
	11: {Title: "Born visionary", Description: "A gift for intuition and inspiring others."},
	22: {Title: "Born architect", Description: "A gift for turning plans into lasting results."},
}

// BirthdayNumberReading reads a birthday number; 11 and 22 keep their own reading.
func BirthdayNumberReading(n ReducedNumber) NumberMeaning {
	m, ok := birthdayMeanings[n.Value]
	if !ok {
		m, ok = birthdayMeanings[n.Root()]
	}
	if !ok {
		return NumberMeaning{}
	}
	m.Number = n.Value
	return m
}

// LessonMeaning explains a karmic lesson and how to work on it.
type LessonMeaning struct {
	Number int    `json:"number"`
	Lesson string `json:"lesson"`
	How    string `json:"how"`
}

var karmicLessonMeanings = [9]LessonMeaning{
	{1, "Self-reliance", "Make decisions on your own and defend them calmly."},
	{2, "Patience and cooperation", "Practice listening and working as part of a team."},
	{3, "Self-expression", "Write, speak or create something every week."},
	{4, "Discipline", "Keep a schedule and finish what you begin."},
	{5, "Openness to change", "Try something new on purpose, especially when it feels uncomfortable."},
	{6, "Responsibility", "Take on commitments to family and community and honor them."},
	{7, "Trust and depth", "Spend time alone in study or reflection."},
	{8, "Handling money and power", "Learn to budget, negotiate and accept authority."},
	{9, "Compassion", "Help without expecting anything in return."},
}

// KarmicLessonReading explains lesson digit 1..9; other digits give a zero value.
func KarmicLessonReading(digit int) LessonMeaning {
	if digit < 1 || digit > 9 {
		return LessonMeaning{}
	}
	return karmicLessonMeanings[digit-1]
}

// KarmicLessonReadings explains each digit of lessons in order.
func KarmicLessonReadings(lessons []int) []LessonMeaning {
	out := make([]LessonMeaning, 0, len(lessons))
	for _, d := range lessons {
		out = append(out, KarmicLessonReading(d))
	}
	return out
}

var hiddenPassionMeanings = [9]NumberMeaning{
	{1, "Drive to lead", "A hidden urge to be first and to be in charge."},
	{2, "Need for closeness", "A hidden longing for partnership and harmony."},
	{3, "Urge to create", "A hidden passion for art, words and performance."},
	{4, "Love of order", "A hidden passion for structure and a job well done."},
	{5, "Thirst for freedom", "A hidden passion for travel, change and new sensations."},
	{6, "Call to care", "A hidden passion for home, family and helping others."},
	{7, "Search for truth", "A hidden passion for knowledge and the mysteries of life."},
	{8, "Hunger for success", "A hidden passion for achievement, status and wealth."},
	{9, "Wish to serve", "A hidden passion for ideals and humanitarian causes."},
}

// HiddenPassionReading explains hidden passion digit 1..9; other digits give a zero value.
func HiddenPassionReading(digit int) NumberMeaning {
	if digit < 1 || digit > 9 {
		return NumberMeaning{}
	}
	return hiddenPassionMeanings[digit-1]
}

// HiddenPassionReadings explains each hidden passion in order.
func HiddenPassionReadings(passions []HiddenPassion) []NumberMeaning {
	out := make([]NumberMeaning, 0, len(passions))
	for _, p := range passions {
		out = append(out, HiddenPassionReading(p.Number))
	}
	return out
}
