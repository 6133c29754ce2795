package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nhath/docseek/internal/config"
	"github.com/nhath/docseek/internal/controller"
	"github.com/nhath/docseek/internal/highlight"
	"github.com/nhath/docseek/internal/search"
)

var flagQueryLimit int

var queryCmd = &cobra.Command{
	Use:   "query <term...>",
	Short: "Run a single search and print the grouped results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&flagQueryLimit, "limit", "n", 0, "Maximum number of hits (default: search.limit from config)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(settings, openKeyring)
	if err != nil {
		return err
	}
	client, closeClient, err := buildClient(cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	term := strings.TrimSpace(strings.Join(args, " "))
	if term == "" {
		return cmd.Help()
	}

	limit := cfg.Search.Limit
	if flagQueryLimit > 0 {
		limit = flagQueryLimit
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Search.Timeout())
	defer cancel()
	resp, err := client.Search(ctx, search.Params{
		Term:  term,
		Mode:  search.Mode(cfg.Search.Mode),
		Limit: limit,
	})
	if err != nil {
		return err
	}

	var hits []search.Hit
	if resp != nil {
		hits = resp.Hits
	}
	return printResults(cmd.OutOrStdout(), cfg, term, search.GroupHits(hits))
}

var (
	sectionHeading = lipgloss.NewStyle().Bold(true).Underline(true)
	pathStyle      = lipgloss.NewStyle().Faint(true)
	titleMark      = highlight.StyleMarker(lipgloss.NewStyle().Bold(true))
	contentMark    = highlight.StyleMarker(lipgloss.NewStyle().Reverse(true))
)

// printResults writes grouped hits with the term highlighted. Styles degrade
// to plain text when w is not a terminal.
func printResults(w io.Writer, cfg *config.Config, term string, grouped search.Grouped) error {
	if grouped.Len() == 0 {
		fmt.Fprintf(w, "No results for %q\n", term)
		fmt.Fprintf(w, "Missing something? Open an issue: %s\n", controller.FeedbackLink(cfg.Site.FeedbackURL, term))
		return nil
	}

	origin, err := cfg.OriginURL()
	if err != nil {
		return err
	}
	pattern := highlight.Compile(term)

	for i, g := range grouped.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		label := g.Label
		if label == "" {
			label = "Docs"
		}
		fmt.Fprintln(w, sectionHeading.Render(label))

		for _, hit := range g.Hits {
			link := hit.Path
			if ref, err := origin.Parse(hit.Path); err == nil {
				link = ref.String()
			}
			fmt.Fprintf(w, "  %s  %s\n", pattern.Mark(hit.Title, titleMark), pathStyle.Render(link))
			if hit.Content != "" {
				fmt.Fprintf(w, "    %s\n", pattern.Mark(pattern.Snippet(hit.Content, 76), contentMark))
			}
		}
	}
	return nil
}
