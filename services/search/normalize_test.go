package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitleCases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  nEw YORK  ", "New York"},
		{"paris", "Paris"},
		{"SOUTH   AFRICA", "South Africa"},
		{"beach\thouse", "Beach House"},
		{"200", "200"},
		{"a", "A"},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n  "} {
		_, err := Normalize(in)
		var emptyErr *EmptyQueryError
		assert.ErrorAs(t, err, &emptyErr, "input %q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  nEw YORK  ", "mountain view CABIN", "tokyo", "12 34", "São paulo"}
	for _, in := range inputs {
		once, err := Normalize(in)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizeCasingProperty(t *testing.T) {
	got, err := Normalize("  thE qUIck BROWN   fox ")
	require.NoError(t, err)

	words := strings.Split(got, " ")
	for _, w := range words {
		require.NotEmpty(t, w)
		first := []rune(w)[0]
		assert.Equal(t, strings.ToUpper(string(first)), string(first), "word %q", w)
		if len(w) > 1 {
			assert.Equal(t, strings.ToLower(w[1:]), w[1:], "word %q", w)
		}
	}
}
