package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/docseek/internal/controller"
	"github.com/nhath/docseek/internal/highlight"
)

const (
	dialogTop    = 2
	closeButton  = "✕"
	clearButton  = "clear"
	dialogChrome = 5 // header, input, two separators, footer
)

// bodyLine is one rendered line of the dialog body
type bodyLine struct {
	text   string
	hit    int // flattened hit index or -1
	action zoneAction
}

// layoutDialog renders the dialog and records where everything landed
func (m Model) layoutDialog() dialogLayout {
	inner := m.innerWidth()
	bodyHeight := m.bodyHeight()

	var lines []string
	var hitAt []int
	var zones []zone
	clip := lipgloss.NewStyle().MaxWidth(inner)
	add := func(text string, hit int) {
		// every entry must stay one screen line for hitAt to line up
		lines = append(lines, clip.Render(text))
		hitAt = append(hitAt, hit)
	}

	// Header
	title := DialogTitleStyle.Render(truncate(m.config.Site.Title, inner-4))
	add(joinEnds(title, ButtonStyle.Render(closeButton), inner), controller.None)
	zones = append(zones, zone{line: 0, x0: inner - lipgloss.Width(closeButton), x1: inner, action: zoneClose})

	// Input
	input := m.input
	input.Width = inner - 3 - len(clearButton) - 1
	left := PromptStyle.Render("›") + input.View()
	if input.Value() != "" {
		add(joinEnds(left, ButtonStyle.Render(clearButton), inner), controller.None)
		zones = append(zones, zone{line: 1, x0: inner - len(clearButton), x1: inner, action: zoneClear})
	} else {
		add(left, controller.None)
	}
	add(SeparatorStyle.Render(strings.Repeat("─", inner)), controller.None)

	// Body
	resultsHeight := bodyHeight
	previewHeight := 0
	if m.showPreview {
		previewHeight = bodyHeight / 2
		resultsHeight = bodyHeight - previewHeight - 1
	}
	for _, bl := range visibleLines(m.bodyLines(inner), m.ctrl.Active(), resultsHeight) {
		if bl.action != zoneNone {
			zones = append(zones, zone{line: len(lines), x0: 0, x1: inner, action: bl.action})
		}
		add(bl.text, bl.hit)
	}
	if m.showPreview {
		add(SeparatorStyle.Render(strings.Repeat("┄", inner)), controller.None)
		vp := m.preview
		vp.Width = inner
		vp.Height = previewHeight
		for _, pl := range strings.Split(vp.View(), "\n") {
			add(pl, controller.None)
		}
	}

	// Footer
	add(SeparatorStyle.Render(strings.Repeat("─", inner)), controller.None)
	add(joinEnds(m.footerHints(), m.footerStatus(), inner), controller.None)

	box := DialogStyle.Width(m.dialogWidth()).Render(strings.Join(lines, "\n"))
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x := (m.width - w) / 2
	if x < 0 {
		x = 0
	}
	return dialogLayout{box: box, x: x, y: dialogTop, w: w, h: h, hitAt: hitAt, zones: zones}
}

// bodyHeight is how many lines the results region may use
func (m Model) bodyHeight() int {
	h := m.height - dialogTop - 2 - 2 - dialogChrome // border and status bar margin
	if h < 3 {
		h = 3
	}
	return h
}

// bodyLines renders the results region without any windowing
func (m Model) bodyLines(inner int) []bodyLine {
	var out []bodyLine
	add := func(text string) { out = append(out, bodyLine{text: text, hit: controller.None}) }

	query := m.ctrl.Query()
	results := m.ctrl.Results()

	switch {
	case query == "" && !m.loading:
		add(HintStyle.Render("Type to search the documentation."))
		return out

	case m.loading && !results.Searched:
		add(HintStyle.Render("Searching…"))
		return out

	case m.ctrl.NoResults():
		add(ItemTitleStyle.Render(truncate(fmt.Sprintf("No results for %q", query), inner)))
		add("")
		add(HintStyle.Render("Missing something? Open an issue:"))
		for _, part := range chunk(m.ctrl.FeedbackLink(), inner) {
			out = append(out, bodyLine{text: LinkStyle.Render(part), hit: controller.None, action: zoneFeedback})
		}
		return out

	case !results.Searched:
		add(HintStyle.Render("No results yet."))
		return out
	}

	pattern := m.ctrl.Pattern()
	active := m.ctrl.Active()
	idx := 0
	for gi, g := range results.Groups {
		if gi > 0 {
			add("")
		}
		label := g.Label
		if label == "" {
			label = "Docs"
		}
		add(SectionStyle.Render(truncate(label, inner)))

		for _, hit := range g.Hits {
			isActive := idx == active
			marker := "  "
			if isActive {
				marker = "▸ "
			}

			titleStyle, titleMatch := ItemTitleStyle, TitleMatchStyle
			contentStyle, contentMatch := ItemContentStyle, ContentMatchStyle
			if isActive {
				titleStyle = titleStyle.Inherit(ActiveItemStyle)
				titleMatch = titleMatch.Inherit(ActiveItemStyle)
				contentStyle = contentStyle.Inherit(ActiveItemStyle)
				contentMatch = contentMatch.Inherit(ActiveItemStyle)
			}

			title := pattern.Style(truncate(hit.Title, inner-2),
				highlight.StyleMarker(titleStyle), highlight.StyleMarker(titleMatch))
			titleLine := marker + title
			if isActive {
				titleLine = ActiveItemStyle.Width(inner).Render(titleLine)
			}
			out = append(out, bodyLine{text: titleLine, hit: idx})

			if hit.Content != "" {
				snippet := pattern.Style(pattern.Snippet(hit.Content, inner-4),
					highlight.StyleMarker(contentStyle), highlight.StyleMarker(contentMatch))
				contentLine := "  " + snippet
				if isActive {
					contentLine = ActiveItemStyle.Width(inner).Render(contentLine)
				}
				out = append(out, bodyLine{text: contentLine, hit: idx})
			}
			idx++
		}
	}
	return out
}

// visibleLines windows lines to height, scrolled just far enough for the
// active hit to be fully on screen.
func visibleLines(lines []bodyLine, active, height int) []bodyLine {
	if len(lines) <= height {
		return lines
	}
	last := -1
	for i, l := range lines {
		if l.hit == active && active != controller.None {
			last = i
		}
	}
	offset := 0
	if last >= height {
		offset = last - height + 1
	}
	return lines[offset : offset+height]
}

func (m Model) footerHints() string {
	hint := func(key, desc string) string {
		return FooterKeyStyle.Render(key) + FooterStyle.Render(" "+desc)
	}
	return strings.Join([]string{
		hint("enter", "to select"),
		hint("↑↓", "to navigate"),
		hint("esc", "to close"),
	}, FooterStyle.Render("  "))
}

func (m Model) footerStatus() string {
	if m.loading {
		return m.spinner.View()
	}
	if n := m.ctrl.Results().Len(); n > 0 {
		return FooterStyle.Render(fmt.Sprintf("%d results", n))
	}
	return ""
}
