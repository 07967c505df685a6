package numeral

import "fmt"

// symbols is the singleton symbol table every Range is built from.
var symbols = map[int]string{
	1:    "I",
	5:    "V",
	10:   "X",
	50:   "L",
	100:  "C",
	500:  "D",
	1000: "M",
}

// standardRanges is built once at package init and never written again.
var standardRanges = buildRanges()

// buildRanges derives the Range of every place from the symbol table.
// A missing multiple (5000, 10000) leaves its slot as NoSymbol.
func buildRanges() [Places]Range {
	var table [Places]Range
	unit := 1
	for p := 0; p < Places; p++ {
		table[p] = Range{
			Upper:  symbols[10*unit],
			Middle: symbols[5*unit],
			Lower:  symbols[unit],
		}
		unit *= 10
	}

	return table
}

// Ranges returns a copy of the standard range table, ones place first.
func Ranges() [Places]Range {
	return standardRanges
}

// RangeFor returns the standard Range of a decimal place (ones=1 … thousands=4).
func RangeFor(place int) (Range, error) {
	if place < 1 || place > Places {
		return Range{}, fmt.Errorf("%w: %d not in [1, %d]", ErrPlaceOutOfRange, place, Places)
	}

	return standardRanges[place-1], nil
}
