package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/docseek/internal/search"
)

// refreshPreview loads the active hit into the preview viewport when it
// changed since the last render.
func (m Model) refreshPreview() Model {
	if !m.showPreview {
		return m
	}
	hit, ok := m.ctrl.ActiveHit()
	if !ok {
		m.previewFor = ""
		m.preview.SetContent(HintStyle.Render("Nothing highlighted."))
		return m
	}
	if hit.Path == m.previewFor {
		return m
	}
	m.previewFor = hit.Path
	m.preview.Width = m.innerWidth()
	m.preview.SetContent(renderPreview(hit, m.innerWidth(), m.config.UI.PreviewStyle))
	m.preview.GotoTop()
	return m
}

// renderPreview formats a hit as markdown and colors it with chroma
func renderPreview(hit search.Hit, width int, style string) string {
	var src strings.Builder
	src.WriteString("# " + hit.Title + "\n\n")
	src.WriteString("`" + hit.Path + "`\n\n")
	src.WriteString(lipgloss.NewStyle().Width(width).Render(hit.Content))

	return highlightMarkdown(src.String(), style)
}

// highlightMarkdown returns src colored for a 256-color terminal, or src
// unchanged if chroma fails.
func highlightMarkdown(src, style string) string {
	var out strings.Builder
	if err := quick.Highlight(&out, src, "markdown", "terminal256", style); err != nil {
		return src
	}
	return strings.TrimRight(out.String(), "\n")
}
