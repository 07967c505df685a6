package numeral

import "fmt"

// maxNumeralLen is the length of the longest supported output,
// MMMDCCCCLXXXXVIIII (3999, additive).
const maxNumeralLen = 18

// defaultEncoder backs the package-level Convert.
var defaultEncoder = newEncoder(DefaultOptions())

// Encoder converts integers to Roman numerals with a fixed range table and
// notation. It holds no mutable state and may be shared across goroutines.
type Encoder struct {
	table  [Places]Range
	opts   Options
	encode digitAppender
}

// NewEncoder builds an Encoder. Without options it uses subtractive notation
// over [MinValue, MaxValue].
//
// Errors:
//   - ErrOptionViolation if any Option is invalid.
func NewEncoder(opts ...Option) (*Encoder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return newEncoder(o), nil
}

func newEncoder(o Options) *Encoder {
	e := &Encoder{table: standardRanges, opts: o, encode: appendSubtractive}
	if o.Notation == Additive {
		e.encode = appendAdditive
	}

	return e
}

// Options returns the effective options of e.
func (e *Encoder) Options() Options {
	o := e.opts
	o.err = nil

	return o
}

// Range returns the Range e uses for a decimal place (ones=1 … thousands=4).
func (e *Encoder) Range(place int) (Range, error) {
	if place < 1 || place > Places {
		return Range{}, fmt.Errorf("%w: %d not in [1, %d]", ErrPlaceOutOfRange, place, Places)
	}

	return e.table[place-1], nil
}

// Convert returns the Roman numeral of value using the default Encoder.
//
// Errors:
//   - ErrOutOfRange if value is outside [MinValue, MaxValue].
func Convert(value int) (string, error) {
	return defaultEncoder.Convert(value)
}

// Convert returns the Roman numeral of value.
// Digits are encoded most significant place first into one buffer.
//
// Errors:
//   - ErrOutOfRange if value is outside [MinValue, UpperBound].
func (e *Encoder) Convert(value int) (string, error) {
	if err := e.validate(value); err != nil {
		return "", err
	}

	buf := make([]byte, 0, maxNumeralLen)
	for _, d := range Decompose(value) {
		buf = e.encode(buf, d.Value, e.table[d.Place-1])
	}

	return string(buf), nil
}

// ConvertAll converts every value in order and stops at the first failure.
// The returned error names the index of the offending value.
func (e *Encoder) ConvertAll(values ...int) ([]Conversion, error) {
	out := make([]Conversion, 0, len(values))
	for i, v := range values {
		s, err := e.Convert(v)
		if err != nil {
			return nil, fmt.Errorf("value #%d: %w", i, err)
		}
		out = append(out, Conversion{Value: v, Numeral: s})
	}

	return out, nil
}

// ConvertRange converts every value of the inclusive interval [from, to]
// in ascending order.
//
// Errors:
//   - ErrInvalidInterval if from > to.
//   - ErrOutOfRange if either endpoint is outside the accepted bounds.
func (e *Encoder) ConvertRange(from, to int) ([]Conversion, error) {
	if from > to {
		return nil, fmt.Errorf("%w: from %d > to %d", ErrInvalidInterval, from, to)
	}
	if err := e.validate(from); err != nil {
		return nil, err
	}
	if err := e.validate(to); err != nil {
		return nil, err
	}

	out := make([]Conversion, 0, to-from+1)
	for v := from; v <= to; v++ {
		s, _ := e.Convert(v) // bounds checked above
		out = append(out, Conversion{Value: v, Numeral: s})
	}

	return out, nil
}

// Decompose splits value into its decimal digits, most significant first.
// Only the places value actually reaches are emitted: 207 → (2,3) (0,2) (7,1).
// Values < 1 yield nil.
func Decompose(value int) []Digit {
	if value < 1 {
		return nil
	}

	places := 0
	for v := value; v > 0; v /= 10 {
		places++
	}

	digits := make([]Digit, places)
	for i := places - 1; i >= 0; i-- {
		digits[i] = Digit{Value: value % 10, Place: places - i}
		value /= 10
	}

	return digits
}

func (e *Encoder) validate(value int) error {
	if value < MinValue || value > e.opts.UpperBound {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, value, MinValue, e.opts.UpperBound)
	}

	return nil
}
