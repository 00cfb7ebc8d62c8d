package textview

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(t *testing.T, v View, seps Separators, limit int, policy EmptyPolicy) []string {
	t.Helper()
	sp, err := v.Split(seps, limit, policy)
	require.NoError(t, err)
	return sp.Strings()
}

func TestSplitScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textview")
	defer teardown()
	//
	v := FromString("a,b,,c")
	assert.Equal(t, []string{"a", "b", "", "c"}, split(t, v, Runes(','), NoLimit, KeepEmpty))
	assert.Equal(t, []string{"a", "b", "c"}, split(t, v, Runes(','), NoLimit, OmitEmpty))
	assert.Equal(t, []string{"a", "b,,c"}, split(t, v, Runes(','), 2, KeepEmpty))
	assert.Equal(t, []string{"a", "b", "c"}, split(t, FromString("a<>b::c"), Strings("<>", "::"), NoLimit, KeepEmpty))
	assert.Equal(t, []string{"", "a", ""}, split(t, FromString(",a,"), Runes(','), NoLimit, KeepEmpty))
	assert.Equal(t, []string{"a"}, split(t, FromString(",a,"), Runes(','), NoLimit, OmitEmpty))
	assert.Equal(t, []string{""}, split(t, Empty, Runes(','), NoLimit, KeepEmpty))
	assert.Nil(t, split(t, Empty, Runes(','), NoLimit, OmitEmpty))
}

func TestSplitStaysInsideView(t *testing.T) {
	buf := ",x,a,b,y,"
	v := mustLen(t, buf, 3, 3) // "a,b"
	sp, err := v.SplitRune(',')
	require.NoError(t, err)
	c := sp.Cursor()
	first, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "a", first.String())
	assert.Equal(t, 3, first.Offset())
	second, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "b", second.String())
	assert.Equal(t, 5, second.Offset())
	_, ok = c.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, c.Count())
	s, _ := second.Buffer()
	assert.Equal(t, buf, s, "tokens share the buffer of the source view")
}

func TestSplitPartitionLaw(t *testing.T) {
	inputs := []string{"", ",", "a", "a,b", ",,a,,b,,", "a, b ,c"}
	for _, in := range inputs {
		toks := split(t, FromString(in), Runes(','), NoLimit, KeepEmpty)
		assert.Equal(t, in, strings.Join(toks, ","), "partition law for %q", in)
		assert.Equal(t, strings.Split(in, ","), toks, "agrees with strings.Split for %q", in)
	}
}

func TestSplitLimitLaw(t *testing.T) {
	in := "a,b,,c,d"
	for limit := 1; limit <= 6; limit++ {
		toks := split(t, FromString(in), Runes(','), limit, KeepEmpty)
		assert.Equal(t, strings.SplitN(in, ",", limit), toks, "limit %d", limit)
		assert.LessOrEqual(t, len(toks), limit)
	}
	assert.Empty(t, split(t, FromString(in), Runes(','), 0, KeepEmpty))
}

func TestSplitOmitEmptyLimit(t *testing.T) {
	v := FromString(",,a,,b,c,,")
	assert.Equal(t, []string{"a", "b,c,,"}, split(t, v, Runes(','), 2, OmitEmpty))
	assert.Equal(t, []string{",,a,,b,c,,"}, split(t, v, Runes(','), 1, OmitEmpty))
	toks := split(t, v, Runes(','), NoLimit, OmitEmpty)
	assert.Equal(t, []string{"a", "b", "c"}, toks)
	again := split(t, FromString(strings.Join(toks, ",")), Runes(','), NoLimit, OmitEmpty)
	assert.Equal(t, toks, again, "omitting empties is idempotent")
}

func TestSplitTieBreak(t *testing.T) {
	v := FromString("xaby")
	assert.Equal(t, []string{"x", "y"}, split(t, v, Strings("ab", "a"), NoLimit, KeepEmpty))
	assert.Equal(t, []string{"x", "by"}, split(t, v, Strings("a", "ab"), NoLimit, KeepEmpty))
}

func TestSplitStringSeparatorCache(t *testing.T) {
	v := FromString("--a-b--c")
	sp, err := v.Split(Strings("--", "-"), NoLimit, KeepEmpty)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a", "b", "c"}, sp.Strings())
	// separator at position 0 must be found again after a reset
	c := sp.Cursor()
	tok, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "", tok.String())
	tok, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, "a", tok.String())
	c.Reset()
	assert.Equal(t, 0, c.Count())
	var toks []string
	for tok, ok := c.Next(); ok; tok, ok = c.Next() {
		toks = append(toks, tok.String())
	}
	assert.Equal(t, []string{"", "a", "b", "c"}, toks)
	_, ok = c.Next()
	assert.False(t, ok, "an exhausted cursor stays exhausted")
}

func TestSplitWhiteSpace(t *testing.T) {
	v := FromString("alpha\tbeta　gamma  delta")
	assert.Equal(t, []string{"alpha", "beta", "gamma", "", "delta"}, split(t, v, WhiteSpace(), NoLimit, KeepEmpty))
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, split(t, v, Separators{}, NoLimit, OmitEmpty))
}

func TestSplitMultiByteRunes(t *testing.T) {
	v := FromString("a→b•c")
	assert.Equal(t, []string{"a", "b", "c"}, split(t, v, Runes('→', '•'), NoLimit, KeepEmpty))
}

func TestSplitEmptySeparatorSet(t *testing.T) {
	v := FromString("a,b")
	assert.Equal(t, []string{"a,b"}, split(t, v, Runes(), NoLimit, KeepEmpty))
	assert.Equal(t, []string{"a,b"}, split(t, v, Strings(), NoLimit, KeepEmpty))
	assert.Equal(t, []string{"a,b"}, split(t, v, Strings(""), NoLimit, KeepEmpty))
	assert.Nil(t, split(t, Empty, Strings(), NoLimit, OmitEmpty))
}

func TestSplitErrors(t *testing.T) {
	_, err := FromString("a").Split(Runes(','), -1, KeepEmpty)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = View{}.Split(Runes(','), -1, KeepEmpty)
	assert.ErrorIs(t, err, ErrInvalidState, "missing value is reported before a bad limit")
	_, err = View{}.SplitString(",")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSplitAllStopsEarly(t *testing.T) {
	sp, err := FromString("1 2 3 4").Split(WhiteSpace(), NoLimit, KeepEmpty)
	require.NoError(t, err)
	var seen []string
	for tok := range sp.All() {
		seen = append(seen, tok.String())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2"}, seen)
	assert.Equal(t, FromString("1 2 3 4").String(), sp.Source().String())
	assert.Len(t, sp.Strings(), 4, "every iteration starts afresh")
}

func TestSeparatorsString(t *testing.T) {
	assert.Equal(t, "whitespace", WhiteSpace().String())
	assert.Equal(t, `runes[',' ';']`, Runes(',', ';').String())
	assert.Equal(t, `strings["<>"]`, Strings("<>").String())
	assert.Equal(t, "OmitEmpty", OmitEmpty.String())
}

func TestSplitSeparatorTable(t *testing.T) {
	for _, c := range []struct {
		input  string
		seps   Separators
		limit  int
		policy EmptyPolicy
		want   []string
	}{
		{"1,2,,3", Strings(","), NoLimit, KeepEmpty, []string{"1", "2", "", "3"}},
		{"1,2,,3", Strings(","), NoLimit, OmitEmpty, []string{"1", "2", "3"}},
		{"a-b-c-d", Strings("-"), 2, KeepEmpty, []string{"a", "b-c-d"}},
		{"--a--", Strings("--"), NoLimit, KeepEmpty, []string{"", "a", ""}},
		{"--a--", Strings("--"), NoLimit, OmitEmpty, []string{"a"}},
		{",,a,,b,,c,d", Strings(","), 3, OmitEmpty, []string{"a", "b", "c,d"}},
		{"a<>b::c<>d", Strings("<>", "::"), 3, KeepEmpty, []string{"a", "b", "c<>d"}},
		{"<>::a", Strings("<>", "::"), 2, OmitEmpty, []string{"a"}},
		{"a::b", Strings("<>", "::"), 0, KeepEmpty, nil},
		{"  a  b ", WhiteSpace(), NoLimit, KeepEmpty, []string{"", "", "a", "", "b", ""}},
		{"  a  b ", WhiteSpace(), NoLimit, OmitEmpty, []string{"a", "b"}},
		{"  a  b ", WhiteSpace(), 2, OmitEmpty, []string{"a", "b "}},
	} {
		got := split(t, FromString(c.input), c.seps, c.limit, c.policy)
		assert.Equal(t, c.want, got, "%q split at %v, limit %d, %v", c.input, c.seps, c.limit, c.policy)
	}
}
