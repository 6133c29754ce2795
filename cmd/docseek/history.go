package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhath/docseek/internal/history"
)

var (
	flagHistoryLimit  int
	flagHistorySearch string
	flagHistoryAll    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent searches",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().StringVar(&flagHistorySearch, "search", "", "Only show queries containing this text")
	historyCmd.Flags().BoolVar(&flagHistoryAll, "all", false, "Show every selection instead of one row per query")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := history.NewStore()
	if err != nil {
		return fmt.Errorf("cannot open history: %w", err)
	}
	defer store.Close()

	var entries []history.Entry
	switch {
	case flagHistorySearch != "":
		entries, err = store.Search(flagHistorySearch, flagHistoryLimit)
	case flagHistoryAll:
		entries, err = store.List(flagHistoryLimit, 0)
	default:
		entries, err = store.Recent(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	printHistory(cmd.OutOrStdout(), entries)
	return nil
}

func printHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No searches recorded yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tQUERY\tHITS\tOPENED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			e.SearchedAt.Local().Format(time.DateTime),
			e.QueryPreview(40),
			e.HitCount,
			e.SelectedPath,
		)
	}
	tw.Flush()
}
