// Package highlight marks query matches inside result text.
package highlight

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Marker wraps a matched substring for display
type Marker func(string) string

// StyleMarker renders matches with a lipgloss style
func StyleMarker(s lipgloss.Style) Marker {
	return func(text string) string {
		return s.Render(text)
	}
}

// Pattern is a case-insensitive matcher compiled from a search query.
// The zero value and a nil *Pattern match nothing.
type Pattern struct {
	query string
	re    *regexp.Regexp
}

// Compile builds the pattern for query. Terms separated by whitespace are
// alternated, longest first so overlapping terms prefer the wider match.
func Compile(query string) *Pattern {
	p := &Pattern{query: query}
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return p
	}

	quoted := make([]string, 0, len(terms))
	seen := make(map[string]bool)
	for _, t := range terms {
		k := strings.ToLower(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	sortByLenDesc(quoted)

	p.re = regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
	return p
}

// Query returns the query the pattern was compiled from
func (p *Pattern) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

// Ranges returns the byte offsets [start, end) of every non-overlapping match
func (p *Pattern) Ranges(text string) [][2]int {
	if p == nil || p.re == nil || text == "" {
		return nil
	}
	locs := p.re.FindAllStringIndex(text, -1)
	out := make([][2]int, 0, len(locs))
	for _, l := range locs {
		if l[1] > l[0] {
			out = append(out, [2]int{l[0], l[1]})
		}
	}
	return out
}

// Mark wraps every match in text with mark; unmatched text is returned as is
func (p *Pattern) Mark(text string, mark Marker) string {
	ranges := p.Ranges(text)
	if len(ranges) == 0 || mark == nil {
		return text
	}

	var b strings.Builder
	last := 0
	for _, r := range ranges {
		b.WriteString(text[last:r[0]])
		b.WriteString(mark(text[r[0]:r[1]]))
		last = r[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// Style renders matches with match and the text between them with plain.
// Each segment carries its full styling, so a match's reset never strips
// the surrounding text of its own style.
func (p *Pattern) Style(text string, plain, match Marker) string {
	if plain == nil {
		plain = func(s string) string { return s }
	}
	ranges := p.Ranges(text)
	if len(ranges) == 0 || match == nil {
		return plain(text)
	}

	var b strings.Builder
	last := 0
	for _, r := range ranges {
		if r[0] > last {
			b.WriteString(plain(text[last:r[0]]))
		}
		b.WriteString(match(text[r[0]:r[1]]))
		last = r[1]
	}
	if last < len(text) {
		b.WriteString(plain(text[last:]))
	}
	return b.String()
}

// Snippet trims text to about width bytes, centring the window on the first
// match so content highlights stay visible in a single line.
func (p *Pattern) Snippet(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	if width <= 0 || len(text) <= width {
		return text
	}
	start := 0
	if ranges := p.Ranges(text); len(ranges) > 0 && ranges[0][0] > width/3 {
		start = ranges[0][0] - width/3
	}
	end := start + width
	if end > len(text) {
		end = len(text)
		start = max(0, end-width)
	}
	start = runeStart(text, start)
	end = runeStart(text, end)

	out := text[start:end]
	if start > 0 {
		out = "…" + out
	}
	if end < len(text) {
		out += "…"
	}
	return out
}

func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !isRuneStart(s[i]) {
		i--
	}
	return i
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func sortByLenDesc(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && len(s[j]) > len(s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
