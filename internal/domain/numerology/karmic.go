package numerology

import (
	"sort"

	"github.com/phrazzld/numera/internal/domain"
)

// DebtSource names the total in which a karmic debt number appeared.
type DebtSource string

// Karmic debt sources.
const (
	DebtSourceDay          DebtSource = "day"
	DebtSourceYear         DebtSource = "year"
	DebtSourceDateDigitSum DebtSource = "date_digit_sum"
	DebtSourceLifePath     DebtSource = "life_path"
	DebtSourceExpression   DebtSource = "expression"
	DebtSourceSoulUrge     DebtSource = "soul_urge"
	DebtSourcePersonality  DebtSource = "personality"
)

// DebtCategory groups debt sources by the input they come from.
type DebtCategory string

// Karmic debt categories.
const (
	DebtCategoryDate DebtCategory = "date"
	DebtCategoryName DebtCategory = "name"
)

// KarmicDebt is one karmic debt number found in one source total.
type KarmicDebt struct {
	Number   int          `json:"number"`
	Source   DebtSource   `json:"source"`
	Category DebtCategory `json:"category"`
}

// HiddenPassion is a digit that dominates the letters of a name.
type HiddenPassion struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// KarmicLessons lists the digits 1..9 missing from the matrix, ascending.
func KarmicLessons(m Psychomatrix) []int {
	return missingDigits(m.Cells)
}

// NameKarmicLessons lists the digits 1..9 no letter of the name maps to.
func NameKarmicLessons(nm NameMap) []int {
	return missingDigits(tally(nm.Letters))
}

func missingDigits(cells map[int]int) []int {
	missing := []int{}
	for d := 1; d <= 9; d++ {
		if cells[d] == 0 {
			missing = append(missing, d)
		}
	}
	return missing
}

// HiddenPassions returns the digit or digits occurring most often among the
// letters of the name, ascending by digit.
func HiddenPassions(nm NameMap) []HiddenPassion {
	counts := tally(nm.Letters)
	best := 0
	for d := 1; d <= 9; d++ {
		if counts[d] > best {
			best = counts[d]
		}
	}

	passions := []HiddenPassion{}
	if best == 0 {
		return passions
	}
	for d := 1; d <= 9; d++ {
		if counts[d] == best {
			passions = append(passions, HiddenPassion{Number: d, Count: best})
		}
	}
	return passions
}

// KarmicDebts checks every raw total that feeds the life path, the matrix and
// the name numbers. A total whose reduction passes through 13, 14, 16 or 19
// yields one record. The same number found in several sources is reported
// once per source.
func KarmicDebts(birth domain.BirthDate, name string) ([]KarmicDebt, error) {
	nm, err := MapName(name)
	if err != nil {
		return nil, err
	}

	debts := DateKarmicDebts(birth)
	return append(debts, nameKarmicDebts(nm)...), nil
}

// DateKarmicDebts is the date half of KarmicDebts.
func DateKarmicDebts(birth domain.BirthDate) []KarmicDebt {
	lp := CalculateLifePath(birth)
	checks := []struct {
		source  DebtSource
		reduced ReducedNumber
	}{
		{DebtSourceDay, lp.Day},
		{DebtSourceYear, lp.Year},
		{DebtSourceDateDigitSum, Reduce(dateDigitSum(birth.Date))},
		{DebtSourceLifePath, lp.Number},
	}

	debts := []KarmicDebt{}
	for _, c := range checks {
		if c.reduced.HasKarmicDebt() {
			debts = append(debts, KarmicDebt{
				Number:   c.reduced.KarmicDebt,
				Source:   c.source,
				Category: DebtCategoryDate,
			})
		}
	}
	return debts
}

func nameKarmicDebts(nm NameMap) []KarmicDebt {
	numbers := NameNumbersFromMap(nm)
	checks := []struct {
		source  DebtSource
		reduced ReducedNumber
	}{
		{DebtSourceExpression, numbers.Expression},
		{DebtSourceSoulUrge, numbers.SoulUrge},
		{DebtSourcePersonality, numbers.Personality},
	}

	debts := []KarmicDebt{}
	for _, c := range checks {
		if c.reduced.HasKarmicDebt() {
			debts = append(debts, KarmicDebt{
				Number:   c.reduced.KarmicDebt,
				Source:   c.source,
				Category: DebtCategoryName,
			})
		}
	}
	return debts
}

// DebtNumbers returns the distinct debt numbers in debts, ascending.
func DebtNumbers(debts []KarmicDebt) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, d := range debts {
		if !seen[d.Number] {
			seen[d.Number] = true
			out = append(out, d.Number)
		}
	}
	sort.Ints(out)
	return out
}
