// internal/search/group.go
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Group is the hits sharing one section label
type Group struct {
	Label string
	Hits  []Hit
}

// Grouped is a result set clustered by section. Searched distinguishes an
// empty result from "no search performed".
type Grouped struct {
	Groups   []Group
	Searched bool
}

// SectionLabel turns a section key like "getting-started" into "Getting Started"
func SectionLabel(section string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	parts := strings.Split(section, "-")
	out := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, caser.String(p))
	}
	return strings.Join(out, " ")
}

// GroupHits clusters hits by section label. Sections appear in first-occurrence
// order and hits keep their relative order inside a section.
func GroupHits(hits []Hit) Grouped {
	g := Grouped{Searched: true}
	index := make(map[string]int)
	for _, h := range hits {
		label := SectionLabel(h.Section)
		i, ok := index[label]
		if !ok {
			i = len(g.Groups)
			index[label] = i
			g.Groups = append(g.Groups, Group{Label: label})
		}
		g.Groups[i].Hits = append(g.Groups[i].Hits, h)
	}
	return g
}

// Flatten concatenates all groups in order
func (g Grouped) Flatten() []Hit {
	var flat []Hit
	for _, grp := range g.Groups {
		flat = append(flat, grp.Hits...)
	}
	return flat
}

// Len returns the total number of hits across groups
func (g Grouped) Len() int {
	n := 0
	for _, grp := range g.Groups {
		n += len(grp.Hits)
	}
	return n
}
