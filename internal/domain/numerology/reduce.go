package numerology

// ReducedNumber is the result of reducing an integer by repeated digit sums.
type ReducedNumber struct {
	// Value is 1..9, or 11/22/33 when master preservation applied. 0 only for input 0.
	Value int `json:"value"`
	// IsMaster reports whether Value is a preserved master number.
	IsMaster bool `json:"is_master"`
	// KarmicDebt is the first of 13, 14, 16 or 19 met on the way down, 0 if none.
	KarmicDebt int `json:"karmic_debt,omitempty"`
}

// Root is the single digit the value collapses to: 11→2, 22→4, 33→6.
func (r ReducedNumber) Root() int {
	if r.Value > 9 {
		return digitSum(r.Value)
	}
	return r.Value
}

// HasKarmicDebt reports whether the reduction chain passed through a karmic number.
func (r ReducedNumber) HasKarmicDebt() bool {
	return r.KarmicDebt != 0
}

// Reduce sums the digits of n until a single digit remains, stopping early at
// 11, 22 or 33. Negative input is reduced by absolute value; 0 stays 0.
func Reduce(n int) ReducedNumber {
	return reduce(n, true)
}

// ReduceFull is Reduce without master preservation: the result is always 0..9.
func ReduceFull(n int) ReducedNumber {
	return reduce(n, false)
}

func reduce(n int, keepMaster bool) ReducedNumber {
	if n < 0 {
		n = -n
	}

	var debt int
	for n > 9 {
		if keepMaster && IsMasterNumber(n) {
			return ReducedNumber{Value: n, IsMaster: true, KarmicDebt: debt}
		}
		if debt == 0 && IsKarmicDebtNumber(n) {
			debt = n
		}
		n = digitSum(n)
	}

	return ReducedNumber{Value: n, KarmicDebt: debt}
}

// digitSum adds the decimal digits of a non-negative n once.
func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// digitsOf returns the decimal digits of a non-negative n, most significant first.
// digitsOf(0) is [0].
func digitsOf(n int) []int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []int{0}
	}
	var rev []int
	for n > 0 {
		rev = append(rev, n%10)
		n /= 10
	}
	out := make([]int, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}

// IsMasterNumber reports whether n is 11, 22 or 33.
// Master numbers survive reduction wherever master preservation applies.
func IsMasterNumber(n int) bool {
	switch n {
	case 11, 22, 33:
		return true
	}
	return false
}

// IsKarmicDebtNumber reports whether n is 13, 14, 16 or 19.
func IsKarmicDebtNumber(n int) bool {
	switch n {
	case 13, 14, 16, 19:
		return true
	}
	return false
}
