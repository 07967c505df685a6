// Package numeral converts integers into classical Roman numerals using
// a digit-by-digit band encoder.
//
// What
//
//   - Convert a value in [MinValue, MaxValue] (1..3999) into its Roman form.
//   - Every decimal place (ones, tens, hundreds, thousands) is described by a
//     Range of three reference symbols: Upper (10×), Middle (5×), Lower (1×).
//   - Each digit is encoded independently against its Range and the fragments
//     are concatenated most significant place first.
//   - Two notations are supported:
//   - Subtractive (default): IV, IX, XL, XC, CD, CM.
//   - Additive: the older form without subtractive pairs (IIII, VIIII).
//
// Band selection
//
//	For a digit d in 1..9 the distances to the reference points 10, 5 and 1
//	pick one of four bands:
//
//	   d in (8,9]  lower × |10-d| before Upper        9 → IX
//	   d in (5,8]  Middle, then lower × |5-d|         7 → VII
//	   d in (3,5]  lower × |5-d| before Middle        4 → IV
//	   d in [1,3]  Lower, then lower × |1-d|          3 → III
//
//	The boundaries at 3/4, 5/6 and 8/9 guarantee that no symbol ever repeats
//	more than three times in a row.
//
// Concurrency
//
//	An Encoder is immutable once built. The package-level Convert shares a
//	single default Encoder and is safe for concurrent use without locking.
//
// Complexity
//
//   - Time:   O(1) (at most four digit encodings per value)
//   - Memory: O(1) (one pre-sized buffer per call)
//
// Usage
//
//	s, err := numeral.Convert(1990) // "MCMXC"
//	if errors.Is(err, numeral.ErrOutOfRange) {
//	    // value outside [1, 3999]
//	}
//
//	enc, err := numeral.NewEncoder(
//	    numeral.WithNotation(numeral.Additive),
//	    numeral.WithUpperBound(3000),
//	)
//	list, err := enc.ConvertRange(1, 12)
package numeral
