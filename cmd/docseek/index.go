package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhath/docseek/internal/indexer"
)

var (
	flagIndexExcludes    []string
	flagIndexLockTimeout time.Duration
)

var indexCmd = &cobra.Command{
	Use:   "index <dir>",
	Short: "Build the local search index from a markdown docs tree",
	Long: `Walks <dir> for .md and .mdx files and writes a fresh local index.
The previous index is replaced only once the new one is complete.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringSliceVar(&flagIndexExcludes, "exclude", nil, "Glob of file or directory names to skip (repeatable)")
	indexCmd.Flags().DurationVar(&flagIndexLockTimeout, "lock-timeout", 10*time.Second, "How long to wait for another build to finish")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(settings)
	if err != nil {
		return err
	}
	dest, err := indexPath(cfg)
	if err != nil {
		return err
	}

	res, err := indexer.Build(args[0], dest, indexer.Options{
		LockTimeout: flagIndexLockTimeout,
		Excludes:    flagIndexExcludes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d documents (%d skipped) into %s in %s\n",
		res.Indexed, res.Skipped, dest, res.Duration.Round(time.Millisecond))
	return nil
}
