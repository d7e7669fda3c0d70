package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScalar(t *testing.T) {
	for text, expected := range map[string]float64{
		"10":     10,
		" 10 ":   10,
		"0":      0,
		"0.5":    0.5,
		"-1":     -1,
		"+2.25":  2.25,
		"1024.0": 1024,
	} {
		value, err := Parse(text)
		require.NoError(t, err, text)
		require.Equal(t, SCALAR, value.Type, text)
		require.True(t, value.Scalar.Equal(NewScalar(expected)), text)
	}
}

func TestParseTextFallback(t *testing.T) {
	// Anything that is not a plain decimal, a range list, or a set is text.
	for _, text := range []string{"abc", "1e3", "0x10", "inf", "nan", "1.2.3", "10mb", ""} {
		value, err := Parse(text)
		require.NoError(t, err, text)
		require.Equal(t, TEXT, value.Type, text)
	}
}

func TestParseRanges(t *testing.T) {
	value, err := Parse("[1-10, 20-30]")
	require.NoError(t, err)
	require.Equal(t, RANGES, value.Type)
	require.Equal(t, []Range{{Begin: 1, End: 10}, {Begin: 20, End: 30}}, value.Ranges)

	value, err = Parse("[]")
	require.NoError(t, err)
	require.Equal(t, RANGES, value.Type)
	require.Empty(t, value.Ranges)

	for _, text := range []string{"[1-10", "[1]", "[1-]", "[a-b]", "[10-1]"} {
		_, err := Parse(text)
		require.Error(t, err, text)
	}
}

func TestParseSet(t *testing.T) {
	value, err := Parse("{a, b, c}")
	require.NoError(t, err)
	require.Equal(t, SET, value.Type)
	require.Equal(t, []string{"a", "b", "c"}, value.Set)

	_, err = Parse("{a, b")
	require.Error(t, err)
}
