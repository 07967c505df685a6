package numeral_test

import "strings"

// symbolValues is the reference value of every Roman symbol.
var symbolValues = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// decodeRoman is a reference decoder used only to cross-check the encoder.
// A symbol followed by a larger one is subtracted, otherwise added; this
// reads both subtractive and additive output.
func decodeRoman(s string) int {
	total := 0
	for i := 0; i < len(s); i++ {
		v := symbolValues[s[i]]
		if i+1 < len(s) && symbolValues[s[i+1]] > v {
			total -= v
			continue
		}
		total += v
	}

	return total
}

// longestRun returns the length of the longest run of one repeated byte.
func longestRun(s string) int {
	best, run := 0, 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	return best
}

// onlyRomanSymbols reports whether s uses nothing but I, V, X, L, C, D, M.
func onlyRomanSymbols(s string) bool {
	return strings.Trim(s, "IVXLCDM") == ""
}
