package numeral

// Reference points of every Range, in place units.
const (
	upperPoint  = 10
	middlePoint = 5
	lowerPoint  = 1
)

// EncodeDigit returns the subtractive Roman fragment for d × place unit,
// where r is the Range of that place.
//
// Algorithm:
//  1. d == 0 contributes nothing.
//  2. Compute the distances of d from 10, 5 and 1.
//  3. Pick the band of d and compose:
//     d in (8,9]: |10-d| × Lower, then Upper   (9 → IX)
//     d in (5,8]: Middle, then |5-d| × Lower   (7 → VII)
//     d in (3,5]: |5-d| × Lower, then Middle   (4 → IV, 5 → V)
//     d in [1,3]: Lower, then |1-d| × Lower    (3 → III)
//
// d must be in [0,9]; Convert never passes anything else.
func EncodeDigit(d int, r Range) string {
	return string(appendSubtractive(nil, d, r))
}

// EncodeDigitAdditive returns the additive Roman fragment for d × place unit:
// Middle followed by (d-5) × Lower when d >= 5, otherwise d × Lower.
func EncodeDigitAdditive(d int, r Range) string {
	return string(appendAdditive(nil, d, r))
}

// digitAppender appends the fragment of one digit to dst.
type digitAppender func(dst []byte, d int, r Range) []byte

func appendSubtractive(dst []byte, d int, r Range) []byte {
	if d == 0 {
		return dst
	}

	distUpper := abs(upperPoint - d)
	distMiddle := abs(middlePoint - d)
	distLower := abs(lowerPoint - d)

	switch {
	case d > 8:
		return subtractFrom(dst, r.Upper, r.Lower, distUpper)
	case d > 5:
		return addTo(dst, r.Middle, r.Lower, distMiddle)
	case d > 3:
		return subtractFrom(dst, r.Middle, r.Lower, distMiddle)
	default:
		return addTo(dst, r.Lower, r.Lower, distLower)
	}
}

func appendAdditive(dst []byte, d int, r Range) []byte {
	if d >= middlePoint {
		return addTo(dst, r.Middle, r.Lower, d-middlePoint)
	}

	return repeat(dst, r.Lower, d)
}

// subtractFrom places n atoms left of base.
func subtractFrom(dst []byte, base, atom string, n int) []byte {
	dst = repeat(dst, atom, n)

	return append(dst, base...)
}

// addTo places n atoms right of base.
func addTo(dst []byte, base, atom string, n int) []byte {
	dst = append(dst, base...)

	return repeat(dst, atom, n)
}

func repeat(dst []byte, atom string, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, atom...)
	}

	return dst
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
