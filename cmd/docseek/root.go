package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nhath/docseek/internal/config"
	"github.com/nhath/docseek/internal/controller"
	"github.com/nhath/docseek/internal/history"
	"github.com/nhath/docseek/internal/router"
	"github.com/nhath/docseek/internal/ui"
)

// settings layers flags over DOCSEEK_* environment variables
var settings = newSettings()

var rootCmd = &cobra.Command{
	Use:          "docseek",
	Short:        "Search documentation from the terminal",
	SilenceUsage: true,
	Long: `docseek opens a search dialog over a documentation site. Results come
from a hosted full-text index or from a local index built with 'docseek index'.`,
	RunE: runTUI,
}

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DOCSEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/docseek/config.toml)")
	rootCmd.PersistentFlags().String("backend", "", "Search backend: remote or local")
	rootCmd.PersistentFlags().String("endpoint", "", "Hosted search index URL")
	rootCmd.PersistentFlags().String("api-key", "", "Hosted search API key")
	rootCmd.PersistentFlags().String("index", "", "Local index path")

	rootCmd.Flags().Bool("debug", false, "Enable debug logging to debug.log")

	if err := settings.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("could not open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// The TUI owns the terminal
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(settings, openKeyring)
	if err != nil {
		return err
	}

	client, closeClient, err := buildClient(cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	historyStore, err := history.NewStore()
	if err != nil {
		log.Printf("history disabled: %v", err)
		historyStore = nil
	} else {
		defer historyStore.Close()
	}

	origin, err := cfg.OriginURL()
	if err != nil {
		return err
	}
	prefetcher := router.NewPrefetcher(&http.Client{}, 64, cfg.Site.PrefetchTimeout())
	nav := router.New(origin, router.BrowserOpener(cfg.Site.OpenCommand), prefetcher)

	model := ui.NewModel(ui.Deps{
		Config:  cfg,
		Client:  client,
		Router:  nav,
		History: historyStore,
		Window:  controller.NewWindow(),
	})
	defer model.Release()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	prefetcher.Wait()
	return nil
}

func openKeyring() (apiKeySource, error) {
	store, err := config.NewKeyringStore()
	if err != nil {
		return nil, err
	}
	return store, nil
}
