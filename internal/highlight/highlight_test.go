package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brackets(s string) string { return "[" + s + "]" }

func TestRangesCaseInsensitive(t *testing.T) {
	p := Compile("sig")
	ranges := p.Ranges("createSignal")
	require.Len(t, ranges, 1)
	assert.Equal(t, [2]int{6, 9}, ranges[0])
	assert.Equal(t, "create[Sig]nal", p.Mark("createSignal", brackets))
}

func TestMarkAllMatches(t *testing.T) {
	p := Compile("on")
	assert.Equal(t, "[on]Cleanup runs [on] ref[On]ce", p.Mark("onCleanup runs on refOnce", brackets))
}

func TestMarkNoMatch(t *testing.T) {
	p := Compile("zzz")
	assert.Equal(t, "createSignal", p.Mark("createSignal", brackets))
	assert.Nil(t, p.Ranges("createSignal"))
}

func TestEmptyQueryMarksNothing(t *testing.T) {
	for _, q := range []string{"", "   "} {
		p := Compile(q)
		assert.Equal(t, "createSignal", p.Mark("createSignal", brackets))
	}

	var nilPattern *Pattern
	assert.Equal(t, "text", nilPattern.Mark("text", brackets))
	assert.Equal(t, "", nilPattern.Query())
}

func TestMetacharactersAreLiteral(t *testing.T) {
	p := Compile("a.b (x)")
	assert.Equal(t, "[a.b] axb [(x)]", p.Mark("a.b axb (x)", brackets))
}

func TestMultipleTermsPreferLongest(t *testing.T) {
	p := Compile("create createSignal")
	assert.Equal(t, "[createSignal] and [create]Effect", p.Mark("createSignal and createEffect", brackets))
}

func TestSnippetCentersFirstMatch(t *testing.T) {
	text := strings.Repeat("lorem ", 30) + "needle" + strings.Repeat(" ipsum", 30)
	p := Compile("needle")

	s := p.Snippet(text, 40)
	assert.Contains(t, s, "needle")
	assert.True(t, strings.HasPrefix(s, "…"))
	assert.True(t, strings.HasSuffix(s, "…"))

	assert.Equal(t, "short text collapsed", Compile("").Snippet("short  text\ncollapsed", 80))
}

func TestStyleWrapsEverySegment(t *testing.T) {
	plain := func(s string) string { return "<" + s + ">" }
	p := Compile("sig")

	assert.Equal(t, "<create>[Sig]<nal>", p.Style("createSignal", plain, brackets))
	assert.Equal(t, "[sig]< >[Sig]", p.Style("sig Sig", plain, brackets))
	assert.Equal(t, "<effect>", p.Style("effect", plain, brackets))
	assert.Equal(t, "<createSignal>", Compile("").Style("createSignal", plain, brackets))
	assert.Equal(t, "create[Sig]nal", p.Style("createSignal", nil, brackets))
}
