package numerology

import "github.com/phrazzld/numera/internal/domain"

// Psychomatrix is the Pythagorean square: how often each digit 1..9 occurs in
// the extended digit sequence of a birth date.
type Psychomatrix struct {
	// Cells maps every digit 1..9 to its count; all nine keys are present.
	Cells map[int]int `json:"cells"`
	// Sequence is the extended digit sequence the cells were tallied from.
	Sequence []int `json:"sequence"`
}

// Count returns how many times digit occurs; 0 for digits outside 1..9.
func (m Psychomatrix) Count(digit int) int {
	return m.Cells[digit]
}

// Total returns the sum of all cell counts.
func (m Psychomatrix) Total() int {
	total := 0
	for d := 1; d <= 9; d++ {
		total += m.Cells[d]
	}
	return total
}

// Lines are sums of Psychomatrix cells along the rows, columns and diagonals
// of the square
//
//	1 4 7
//	2 5 8
//	3 6 9
type Lines struct {
	Rows      map[string]int `json:"rows"`
	Columns   map[string]int `json:"columns"`
	Diagonals map[string]int `json:"diagonals"`
}

// Line keys.
const (
	LineRow1     = "row1"
	LineRow2     = "row2"
	LineRow3     = "row3"
	LineCol1     = "col1"
	LineCol2     = "col2"
	LineCol3     = "col3"
	LineDiagMain = "diagMain"
	LineDiagAnti = "diagAnti"
)

// lineCells fixes which cells each line covers.
var lineCells = map[string][3]int{
	LineRow1:     {1, 4, 7},
	LineRow2:     {2, 5, 8},
	LineRow3:     {3, 6, 9},
	LineCol1:     {1, 2, 3},
	LineCol2:     {4, 5, 6},
	LineCol3:     {7, 8, 9},
	LineDiagMain: {1, 5, 9},
	LineDiagAnti: {3, 5, 7},
}

// LineCells returns the three digits that make up the line with the given key.
func LineCells(key string) ([3]int, bool) {
	cells, ok := lineCells[key]
	return cells, ok
}

// ExtendedSequence lists the digits of DD, MM and YYYY followed by the digits
// of four derived totals, each reduced with master preservation: the day digit
// sum, the month digit sum, the full date digit sum and the life path birth sum.
func ExtendedSequence(birth domain.BirthDate) []int {
	seq := make([]int, 0, 16)
	seq = append(seq, birth.Day/10, birth.Day%10)
	seq = append(seq, birth.Month/10, birth.Month%10)
	seq = append(seq, digitsOf(birth.Year)...)

	lp := CalculateLifePath(birth)
	derived := []int{
		Reduce(digitSum(birth.Day)).Value,
		Reduce(digitSum(birth.Month)).Value,
		Reduce(dateDigitSum(birth.Date)).Value,
		Reduce(lp.BirthSum).Value,
	}
	for _, v := range derived {
		seq = append(seq, digitsOf(v)...)
	}
	return seq
}

// BuildMatrix tallies the extended sequence of birth. Zeros are discarded.
func BuildMatrix(birth domain.BirthDate) Psychomatrix {
	seq := ExtendedSequence(birth)
	return Psychomatrix{
		Cells:    tally(seq),
		Sequence: seq,
	}
}

// tally counts digits 1..9; every key is present even when its count is 0.
func tally(digits []int) map[int]int {
	cells := make(map[int]int, 9)
	for d := 1; d <= 9; d++ {
		cells[d] = 0
	}
	for _, d := range digits {
		if d >= 1 && d <= 9 {
			cells[d]++
		}
	}
	return cells
}

// BuildLines sums the matrix cells along every row, column and diagonal.
func BuildLines(m Psychomatrix) Lines {
	lines := Lines{
		Rows:      make(map[string]int, 3),
		Columns:   make(map[string]int, 3),
		Diagonals: make(map[string]int, 2),
	}
	sum := func(key string) int {
		cells := lineCells[key]
		return m.Count(cells[0]) + m.Count(cells[1]) + m.Count(cells[2])
	}

	for _, key := range []string{LineRow1, LineRow2, LineRow3} {
		lines.Rows[key] = sum(key)
	}
	for _, key := range []string{LineCol1, LineCol2, LineCol3} {
		lines.Columns[key] = sum(key)
	}
	for _, key := range []string{LineDiagMain, LineDiagAnti} {
		lines.Diagonals[key] = sum(key)
	}
	return lines
}

// CellLevel classifies how strongly a digit is represented.
type CellLevel string

// Cell levels.
const (
	CellAbsent CellLevel = "absent"
	CellWeak   CellLevel = "weak"
	CellNormal CellLevel = "normal"
	CellStrong CellLevel = "strong"
	CellExcess CellLevel = "excess"
)

// CellStrength maps a cell count to its level: 0 absent, 1 weak, 2 normal,
// 3 strong, 4 and more excess.
func CellStrength(count int) CellLevel {
	switch {
	case count <= 0:
		return CellAbsent
	case count == 1:
		return CellWeak
	case count == 2:
		return CellNormal
	case count == 3:
		return CellStrong
	default:
		return CellExcess
	}
}

// LineLevel classifies a line sum.
type LineLevel string

// Line levels.
const (
	LineWeak     LineLevel = "weak"
	LineBalanced LineLevel = "balanced"
	LineStrong   LineLevel = "strong"
)

// LineStrength maps a line sum to weak (≤2), balanced (3..5) or strong (≥6).
func LineStrength(sum int) LineLevel {
	switch {
	case sum <= 2:
		return LineWeak
	case sum <= 5:
		return LineBalanced
	default:
		return LineStrong
	}
}
