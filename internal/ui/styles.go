// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/docseek/internal/config"
)

var (
	// Colors (exported via getter functions below)
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	matchBg        lipgloss.Color

	bgPrimary   lipgloss.Color
	popupBg     lipgloss.Color
	borderColor lipgloss.Color
	selectedBg  lipgloss.Color

	// Styles
	StatusBarStyle     lipgloss.Style
	PageTitleStyle     lipgloss.Style
	TriggerStyle       lipgloss.Style
	HintStyle          lipgloss.Style
	DialogStyle        lipgloss.Style
	DialogTitleStyle   lipgloss.Style
	PromptStyle        lipgloss.Style
	ButtonStyle        lipgloss.Style
	SeparatorStyle     lipgloss.Style
	SectionStyle       lipgloss.Style
	ItemTitleStyle     lipgloss.Style
	ItemContentStyle   lipgloss.Style
	ActiveItemStyle    lipgloss.Style
	FooterStyle        lipgloss.Style
	FooterKeyStyle     lipgloss.Style
	LinkStyle          lipgloss.Style
	ErrorStyle         lipgloss.Style
	SystemMessageStyle lipgloss.Style
	PopupStyle         lipgloss.Style

	// Matched query terms
	TitleMatchStyle   lipgloss.Style
	ContentMatchStyle lipgloss.Style
)

// Color getter functions for use in components
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func BgPrimary() lipgloss.Color      { return bgPrimary }
func PopupBg() lipgloss.Color        { return popupBg }
func BorderColor() lipgloss.Color    { return borderColor }
func SelectedBg() lipgloss.Color     { return selectedBg }

// InitStyles initializes the global styles based on the provided configuration theme
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	matchBg = lipgloss.Color(theme.MatchBg)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	popupBg = lipgloss.Color(theme.PopupBg)
	borderColor = lipgloss.Color(theme.BorderColor)
	selectedBg = lipgloss.Color(theme.SelectedBg)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(selectedBg)

	PageTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor)

	TriggerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Foreground(textSecondary).
		Padding(0, 1)

	HintStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Background(popupBg).
		Padding(0, 1)

	DialogTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor)

	PromptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginRight(1)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(textFaint)

	SeparatorStyle = lipgloss.NewStyle().
		Foreground(borderColor)

	SectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(textSecondary)

	ItemTitleStyle = lipgloss.NewStyle().
		Foreground(textPrimary)

	ItemContentStyle = lipgloss.NewStyle().
		Foreground(textFaint)

	ActiveItemStyle = lipgloss.NewStyle().
		Background(selectedBg)

	FooterStyle = lipgloss.NewStyle().
		Foreground(textFaint)

	FooterKeyStyle = lipgloss.NewStyle().
		Foreground(textSecondary).
		Bold(true)

	LinkStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Underline(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	SystemMessageStyle = lipgloss.NewStyle().
		Foreground(highlightColor).
		Bold(true)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Padding(1, 2)

	// Titles get emphasis only, content gets a background
	TitleMatchStyle = lipgloss.NewStyle().Bold(true).Foreground(highlightColor)
	ContentMatchStyle = lipgloss.NewStyle().Background(matchBg).Foreground(highlightColor)
}
