// Package numeral defines the range table types, options and sentinel errors
// for Roman numeral encoding.
package numeral

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the numeral package. Wrapped errors carry the
// offending value; match them with errors.Is.
var (
	// ErrOutOfRange is returned when a value falls outside the accepted bounds.
	ErrOutOfRange = errors.New("numeral: value out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("numeral: invalid option supplied")

	// ErrInvalidInterval is returned by ConvertRange when from > to.
	ErrInvalidInterval = errors.New("numeral: invalid interval")

	// ErrPlaceOutOfRange is returned when a decimal place outside 1..Places is requested.
	ErrPlaceOutOfRange = errors.New("numeral: place out of range")
)

const (
	// MinValue is the smallest value that has a Roman representation.
	MinValue = 1

	// MaxValue is the largest value expressible with M as the biggest symbol.
	MaxValue = 3999

	// Places is the number of decimal places covered by the range table.
	Places = 4
)

// NoSymbol marks a Range slot that has no Roman symbol (e.g. 10,000).
const NoSymbol = ""

// Range holds the three reference symbols of one decimal place.
//
//	place 1 (ones):      X  V  I
//	place 2 (tens):      C  L  X
//	place 3 (hundreds):  M  D  C
//	place 4 (thousands): -  -  M
type Range struct {
	Upper  string // 10 × place unit
	Middle string // 5 × place unit
	Lower  string // 1 × place unit, the atomic symbol
}

// Digit is one decimal digit paired with its place (ones=1 … thousands=4).
type Digit struct {
	Value int
	Place int
}

// Conversion pairs an input value with its Roman numeral.
type Conversion struct {
	Value   int    `json:"value" yaml:"value"`
	Numeral string `json:"numeral" yaml:"numeral"`
}

// Notation selects how digits are composed against their Range.
type Notation int

const (
	// Subtractive is the standard modern notation (IV, IX, XL, ...).
	Subtractive Notation = iota

	// Additive never places a smaller symbol before a larger one (IIII, VIIII).
	Additive
)

// String returns the lower-case name of the notation.
func (n Notation) String() string {
	switch n {
	case Subtractive:
		return "subtractive"
	case Additive:
		return "additive"
	default:
		return fmt.Sprintf("notation(%d)", int(n))
	}
}

// ParseNotation maps a notation name back to its Notation.
func ParseNotation(s string) (Notation, error) {
	switch s {
	case "subtractive", "":
		return Subtractive, nil
	case "additive":
		return Additive, nil
	default:
		return 0, fmt.Errorf("%w: unknown notation %q", ErrOptionViolation, s)
	}
}

// Option configures an Encoder via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by NewEncoder.
type Option func(*Options)

// Options holds the parameters of an Encoder.
type Options struct {
	// Notation picks subtractive or additive composition.
	Notation Notation

	// UpperBound is the largest accepted value, at most MaxValue.
	UpperBound int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with subtractive notation and the full
// [MinValue, MaxValue] interval.
func DefaultOptions() Options {
	return Options{
		Notation:   Subtractive,
		UpperBound: MaxValue,
	}
}

// WithNotation selects the notation used for every digit.
func WithNotation(n Notation) Option {
	return func(o *Options) {
		switch n {
		case Subtractive, Additive:
			o.Notation = n
		default:
			o.err = fmt.Errorf("%w: unknown notation %d", ErrOptionViolation, int(n))
		}
	}
}

// WithUpperBound tightens the largest accepted value.
//
//	MinValue <= n <= MaxValue: accept values up to n
//	otherwise: invalid option → ErrOptionViolation
func WithUpperBound(n int) Option {
	return func(o *Options) {
		if n < MinValue || n > MaxValue {
			o.err = fmt.Errorf("%w: upper bound %d not in [%d, %d]", ErrOptionViolation, n, MinValue, MaxValue)

			return
		}
		o.UpperBound = n
	}
}
