package indexer

import (
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nhath/docseek/internal/search"
)

// Frontmatter is the YAML header of a document
type Frontmatter struct {
	Title   string `yaml:"title"`
	Section string `yaml:"section"`
	Draft   bool   `yaml:"draft"`
}

// SplitFrontmatter separates a leading "---" YAML block from the body. A
// missing or malformed block yields zero Frontmatter and the input unchanged.
func SplitFrontmatter(content string) (Frontmatter, string) {
	var fm Frontmatter
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return fm, content
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return fm, content
	}

	if err := yaml.Unmarshal([]byte(strings.TrimSpace(parts[1])), &fm); err != nil {
		return Frontmatter{}, content
	}
	return fm, strings.TrimPrefix(parts[2], "\n")
}

// ParseDocument turns a file at rel (slash separated, relative to the docs
// root) into a hit. Drafts and documents without any text are rejected.
func ParseDocument(rel, raw string) (search.Hit, bool) {
	fm, body := SplitFrontmatter(raw)
	if fm.Draft {
		return search.Hit{}, false
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		if m := firstH1.FindStringSubmatch(body); m != nil {
			title = strings.TrimSpace(emphasis.ReplaceAllString(m[1], ""))
		}
	}

	content := StripMarkup(body)
	if title == "" && content == "" {
		return search.Hit{}, false
	}

	route := RoutePath(rel)
	if title == "" {
		title = path.Base(route)
	}

	section := strings.TrimSpace(fm.Section)
	if section == "" {
		section = sectionFromPath(route)
	}

	return search.Hit{
		Title:   title,
		Content: content,
		Path:    route,
		Section: section,
	}, true
}

// RoutePath maps a docs file to its site route: the extension is dropped,
// route groups like "(basics)" vanish and index pages collapse onto their
// directory.
//
//	getting-started/index.mdx   -> /getting-started
//	reference/(basics)/foo.md   -> /reference/foo
//	index.md                    -> /
func RoutePath(rel string) string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))

	var segs []string
	for _, s := range strings.Split(rel, "/") {
		if s == "" || s == "." || (strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")) {
			continue
		}
		segs = append(segs, s)
	}
	if n := len(segs); n > 0 && segs[n-1] == "index" {
		segs = segs[:n-1]
	}
	return "/" + strings.Join(segs, "/")
}

func sectionFromPath(route string) string {
	trimmed := strings.TrimPrefix(route, "/")
	if trimmed == "" {
		return ""
	}
	if i := strings.Index(trimmed, "/"); i >= 0 {
		return trimmed[:i]
	}
	// top-level pages have no section of their own
	return ""
}

// StripMarkup reduces markdown/MDX to searchable prose. Fenced code is kept
// verbatim since identifiers in examples are common search terms.
func StripMarkup(body string) string {
	body = htmlComment.ReplaceAllString(body, "")

	var out []string
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if !inFence {
			line = importLine.ReplaceAllString(line, "")
			line = jsxTag.ReplaceAllString(line, "")
			line = mdLink.ReplaceAllString(line, "$1")
			line = headingMark.ReplaceAllString(line, "")
			line = emphasis.ReplaceAllString(line, "")
		}
		out = append(out, line)
	}
	return strings.Join(strings.Fields(strings.Join(out, " ")), " ")
}
