package numeral_test

import (
	"testing"

	"github.com/katalvlaran/roman/numeral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRanges_Table verifies the table built from the symbol set.
func TestRanges_Table(t *testing.T) {
	want := [numeral.Places]numeral.Range{
		{Upper: "X", Middle: "V", Lower: "I"},
		{Upper: "C", Middle: "L", Lower: "X"},
		{Upper: "M", Middle: "D", Lower: "C"},
		{Upper: numeral.NoSymbol, Middle: numeral.NoSymbol, Lower: "M"},
	}
	assert.Equal(t, want, numeral.Ranges())
}

// TestRanges_ReturnsCopy makes sure callers cannot alter the shared table.
func TestRanges_ReturnsCopy(t *testing.T) {
	table := numeral.Ranges()
	table[0].Lower = "Z"

	r, err := numeral.RangeFor(1)
	require.NoError(t, err)
	assert.Equal(t, "I", r.Lower)

	got, err := numeral.Convert(3)
	require.NoError(t, err)
	assert.Equal(t, "III", got)
}

// TestRangeFor_Errors rejects places outside 1..4.
func TestRangeFor_Errors(t *testing.T) {
	for _, p := range []int{0, -1, numeral.Places + 1} {
		_, err := numeral.RangeFor(p)
		assert.ErrorIs(t, err, numeral.ErrPlaceOutOfRange, "place %d", p)
	}

	enc, err := numeral.NewEncoder()
	require.NoError(t, err)
	_, err = enc.Range(5)
	assert.ErrorIs(t, err, numeral.ErrPlaceOutOfRange)

	r, err := enc.Range(3)
	require.NoError(t, err)
	assert.Equal(t, numeral.Range{Upper: "M", Middle: "D", Lower: "C"}, r)
}
