package numerology

import (
	"unicode"

	"github.com/phrazzld/numera/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NameMap is a name translated into Pythagorean digits.
type NameMap struct {
	Letters      []int `json:"letters"`
	Vowels       []int `json:"vowels"`
	Consonants   []int `json:"consonants"`
	TotalSum     int   `json:"total_sum"`
	VowelSum     int   `json:"vowel_sum"`
	ConsonantSum int   `json:"consonant_sum"`
}

// NameNumbers are the three numbers derived from a name.
type NameNumbers struct {
	// Expression reduces the sum of every letter.
	Expression ReducedNumber `json:"expression"`
	// SoulUrge reduces the sum of the vowels.
	SoulUrge ReducedNumber `json:"soul_urge"`
	// Personality reduces the sum of the consonants.
	Personality ReducedNumber `json:"personality"`
}

// MapName converts every letter of name to its digit. Spaces, punctuation and
// other non-letters are skipped. Latin letters carrying diacritics count as
// their base letter; Cyrillic letters use their own table.
func MapName(name string) (NameMap, error) {
	var nm NameMap
	for _, r := range name {
		value, vowel, ok := letterValue(r)
		if !ok {
			continue
		}
		nm.Letters = append(nm.Letters, value)
		nm.TotalSum += value
		if vowel {
			nm.Vowels = append(nm.Vowels, value)
			nm.VowelSum += value
		} else {
			nm.Consonants = append(nm.Consonants, value)
			nm.ConsonantSum += value
		}
	}

	if len(nm.Letters) == 0 {
		return NameMap{}, domain.NewValidationError("name", "must contain at least one letter", domain.ErrInvalidName)
	}
	return nm, nil
}

// CalculateNameNumbers maps name and reduces its three sums, preserving masters.
func CalculateNameNumbers(name string) (NameNumbers, error) {
	nm, err := MapName(name)
	if err != nil {
		return NameNumbers{}, err
	}
	return NameNumbersFromMap(nm), nil
}

// NameNumbersFromMap reduces the sums of an already mapped name.
// A name without vowels has a SoulUrge of 0, likewise for consonants.
func NameNumbersFromMap(nm NameMap) NameNumbers {
	return NameNumbers{
		Expression:  Reduce(nm.TotalSum),
		SoulUrge:    Reduce(nm.VowelSum),
		Personality: Reduce(nm.ConsonantSum),
	}
}

// letterValue resolves a rune to its digit and vowel flag.
func letterValue(r rune) (int, bool, bool) {
	upper := unicode.ToUpper(r)
	if l, ok := cyrillicLetters[upper]; ok {
		return l.value, l.vowel, true
	}
	if l, ok := latinLetters[upper]; ok {
		return l.value, l.vowel, true
	}
	if !unicode.IsLetter(r) {
		return 0, false, false
	}

	base := foldDiacritics(upper)
	if base == upper {
		return 0, false, false
	}
	if l, ok := latinLetters[base]; ok {
		return l.value, l.vowel, true
	}
	return 0, false, false
}

// foldDiacritics strips combining marks from r, returning r itself when the
// result is not exactly one rune.
func foldDiacritics(r rune) rune {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, string(r))
	if err != nil {
		return r
	}
	folded := []rune(out)
	if len(folded) != 1 {
		return r
	}
	return folded[0]
}
