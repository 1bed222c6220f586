package indent

import "slices"

// findUnit reduces indentation levels to the greatest common divisor of every
// level change and every distinct non-zero level. It returns 0 when the
// levels carry no indentation signal.
func findUnit(levels []int) int {
	var distinct []int
	for _, level := range levels {
		if level > 0 {
			distinct = append(distinct, level)
		}
	}
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	if len(distinct) == 0 {
		return 0
	}

	var differences []int
	previous := 0
	for _, level := range levels {
		if level != previous {
			differences = append(differences, absDiff(level, previous))
		}
		previous = level
	}
	// Distinct levels capture the top level width even with a single transition.
	differences = append(differences, distinct...)

	result := differences[0]
	for _, diff := range differences[1:] {
		result = gcd(result, diff)
		// 1 can only come from mixed widths, but single space indentation is still valid.
		if result == 1 {
			break
		}
	}

	return result
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
