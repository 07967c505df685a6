package numeral_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/roman/numeral"
	"github.com/stretchr/testify/require"
)

// TestConvert_AllValues sweeps the whole domain and checks the symbol set,
// the three-repeat limit, determinism and a round trip through decodeRoman.
func TestConvert_AllValues(t *testing.T) {
	for n := numeral.MinValue; n <= numeral.MaxValue; n++ {
		got, err := numeral.Convert(n)
		require.NoError(t, err, "Convert(%d)", n)
		require.NotEmpty(t, got, "Convert(%d)", n)
		require.True(t, onlyRomanSymbols(got), "Convert(%d) = %q has foreign symbols", n, got)
		require.LessOrEqual(t, longestRun(got), 3, "Convert(%d) = %q repeats a symbol 4+ times", n, got)
		require.Equal(t, n, decodeRoman(got), "Convert(%d) = %q does not decode back", n, got)

		again, err := numeral.Convert(n)
		require.NoError(t, err)
		require.Equal(t, got, again, "Convert(%d) must be deterministic", n)
	}
}

// TestConvert_AllValuesAdditive checks the additive notation over the domain.
func TestConvert_AllValuesAdditive(t *testing.T) {
	enc, err := numeral.NewEncoder(numeral.WithNotation(numeral.Additive))
	require.NoError(t, err)

	for n := numeral.MinValue; n <= numeral.MaxValue; n++ {
		got, err := enc.Convert(n)
		require.NoError(t, err)
		require.True(t, onlyRomanSymbols(got), "additive %d = %q", n, got)
		require.LessOrEqual(t, longestRun(got), 4, "additive %d = %q", n, got)
		require.Equal(t, n, decodeRoman(got), "additive %d = %q", n, got)
	}
}

// TestConvert_Concurrent shares the default encoder across goroutines.
func TestConvert_Concurrent(t *testing.T) {
	want := make([]string, numeral.MaxValue+1)
	for n := numeral.MinValue; n <= numeral.MaxValue; n++ {
		want[n], _ = numeral.Convert(n)
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for n := numeral.MinValue + offset; n <= numeral.MaxValue; n += workers {
				got, err := numeral.Convert(n)
				if err != nil || got != want[n] {
					errs <- got
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for bad := range errs {
		t.Errorf("concurrent conversion diverged: %q", bad)
	}
}
