// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Backend names
const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// Config represents the application configuration
type Config struct {
	Search SearchConfig `toml:"search"`
	Site   SiteConfig   `toml:"site"`
	UI     UIConfig     `toml:"ui"`
	Theme  Theme        `toml:"theme_colors"`
	Keys   KeyMap       `toml:"keys"`
}

// SearchConfig selects and configures the search backend
type SearchConfig struct {
	Backend   string `toml:"backend"` // remote, local
	Endpoint  string `toml:"endpoint"`
	APIKey    string `toml:"api_key,omitempty"`
	Mode      string `toml:"mode"`
	Limit     int    `toml:"limit"`
	TimeoutMs int    `toml:"timeout_ms"`
	IndexPath string `toml:"index_path,omitempty"`
}

// SiteConfig describes the documentation site results point into
type SiteConfig struct {
	Title       string `toml:"title"`
	Origin      string `toml:"origin"`
	FeedbackURL string `toml:"feedback_url"`
	OpenCommand string `toml:"open_command,omitempty"`
	PrefetchMs  int    `toml:"prefetch_timeout_ms"`
}

// UIConfig holds dialog behaviour
type UIConfig struct {
	DebounceMs     int    `toml:"debounce_ms"`
	WrapNavigation bool   `toml:"wrap_navigation"`
	PreviewStyle   string `toml:"preview_style"`
	HistoryLimit   int    `toml:"history_limit"`
	DialogWidth    int    `toml:"dialog_width"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	MatchBg       string `toml:"match_bg"`
	SelectedBg    string `toml:"selected_bg"`
	BgPrimary     string `toml:"bg_primary"`
	PopupBg       string `toml:"popup_bg"`
	BorderColor   string `toml:"border_color"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Toggle  []string `toml:"toggle"`
	Close   []string `toml:"close"`
	Select  []string `toml:"select"`
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Focus   []string `toml:"focus"`
	Clear   []string `toml:"clear"`
	Preview []string `toml:"preview"`
	History []string `toml:"history"`
	Help    []string `toml:"help"`
	Quit    []string `toml:"quit"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Backend:   BackendRemote,
			Endpoint:  "",
			Mode:      "fulltext",
			Limit:     20,
			TimeoutMs: 5000,
		},
		Site: SiteConfig{
			Title:       "Solid Docs",
			Origin:      "https://docs.solidjs.com",
			FeedbackURL: "https://github.com/solidjs/solid-docs-next/issues/new",
			PrefetchMs:  3000,
		},
		UI: UIConfig{
			DebounceMs:     120,
			WrapNavigation: true,
			PreviewStyle:   "nord",
			HistoryLimit:   20,
			DialogWidth:    72,
		},
		Theme: Theme{
			// Nord Theme Defaults
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Error:         "#BF616A",
			Highlight:     "#ECEFF4",
			MatchBg:       "#5E81AC",
			SelectedBg:    "#3B4252",
			BgPrimary:     "#2E3440",
			PopupBg:       "#242933",
			BorderColor:   "#4C566A",
		},
		Keys: KeyMap{
			Toggle:  []string{"ctrl+k"},
			Close:   []string{"esc"},
			Select:  []string{"enter"},
			Up:      []string{"up"},
			Down:    []string{"down"},
			Focus:   []string{"tab", "shift+tab"},
			Clear:   []string{"ctrl+u"},
			Preview: []string{"ctrl+o"},
			History: []string{"ctrl+r"},
			Help:    []string{"?"},
			Quit:    []string{"ctrl+c", "q"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("docseek/config.toml")
}

// DefaultIndexPath returns the XDG data path of the local index
func DefaultIndexPath() (string, error) {
	return xdg.DataFile("docseek/index.bleve")
}

// Load loads the config from disk or creates default
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the config at path, writing defaults on first run
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.fillDefaults(md) {
		// Persist defaults so the user can see/edit them
		if err := cfg.SaveTo(path); err != nil {
			return &cfg, nil
		}
	}
	return &cfg, nil
}

// fillDefaults back-fills fields missing from older or partial config files
// and reports whether anything changed. md tells an absent key apart from
// one explicitly set to its zero value.
func (c *Config) fillDefaults(md toml.MetaData) bool {
	d := DefaultConfig()
	f := filler{}

	f.str(&c.Search.Backend, d.Search.Backend)
	f.str(&c.Search.Mode, d.Search.Mode)
	f.positive(&c.Search.Limit, d.Search.Limit)
	f.positive(&c.Search.TimeoutMs, d.Search.TimeoutMs)

	f.str(&c.Site.Title, d.Site.Title)
	f.str(&c.Site.Origin, d.Site.Origin)
	f.str(&c.Site.FeedbackURL, d.Site.FeedbackURL)
	f.positive(&c.Site.PrefetchMs, d.Site.PrefetchMs)

	// zero debounce is a valid choice, negative is not
	if !md.IsDefined("ui", "debounce_ms") || c.UI.DebounceMs < 0 {
		c.UI.DebounceMs = d.UI.DebounceMs
		f.updated = true
	}
	if !md.IsDefined("ui", "wrap_navigation") {
		c.UI.WrapNavigation = d.UI.WrapNavigation
		f.updated = true
	}
	f.str(&c.UI.PreviewStyle, d.UI.PreviewStyle)
	f.positive(&c.UI.HistoryLimit, d.UI.HistoryLimit)
	f.positive(&c.UI.DialogWidth, d.UI.DialogWidth)

	f.str(&c.Theme.TextPrimary, d.Theme.TextPrimary)
	f.str(&c.Theme.TextSecondary, d.Theme.TextSecondary)
	f.str(&c.Theme.TextFaint, d.Theme.TextFaint)
	f.str(&c.Theme.Accent, d.Theme.Accent)
	f.str(&c.Theme.Error, d.Theme.Error)
	f.str(&c.Theme.Highlight, d.Theme.Highlight)
	f.str(&c.Theme.MatchBg, d.Theme.MatchBg)
	f.str(&c.Theme.SelectedBg, d.Theme.SelectedBg)
	f.str(&c.Theme.BgPrimary, d.Theme.BgPrimary)
	f.str(&c.Theme.PopupBg, d.Theme.PopupBg)
	f.str(&c.Theme.BorderColor, d.Theme.BorderColor)

	f.keys(&c.Keys.Toggle, d.Keys.Toggle)
	f.keys(&c.Keys.Close, d.Keys.Close)
	f.keys(&c.Keys.Select, d.Keys.Select)
	f.keys(&c.Keys.Up, d.Keys.Up)
	f.keys(&c.Keys.Down, d.Keys.Down)
	f.keys(&c.Keys.Focus, d.Keys.Focus)
	f.keys(&c.Keys.Clear, d.Keys.Clear)
	f.keys(&c.Keys.Preview, d.Keys.Preview)
	f.keys(&c.Keys.History, d.Keys.History)
	f.keys(&c.Keys.Help, d.Keys.Help)
	f.keys(&c.Keys.Quit, d.Keys.Quit)

	return f.updated
}

// filler copies a default into each unset field and remembers if it did
type filler struct {
	updated bool
}

func (f *filler) str(dst *string, def string) {
	if *dst == "" {
		*dst = def
		f.updated = true
	}
}

func (f *filler) positive(dst *int, def int) {
	if *dst <= 0 {
		*dst = def
		f.updated = true
	}
}

func (f *filler) keys(dst *[]string, def []string) {
	if len(*dst) == 0 {
		*dst = append([]string(nil), def...)
		f.updated = true
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	// The file may hold an API key: owner read/write only
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Validate checks the values the program cannot run without
func (c *Config) Validate() error {
	switch c.Search.Backend {
	case BackendRemote:
		if c.Search.Endpoint == "" {
			return fmt.Errorf("search.endpoint is required for the remote backend (set it in the config file or DOCSEEK_ENDPOINT)")
		}
		if _, err := url.ParseRequestURI(c.Search.Endpoint); err != nil {
			return fmt.Errorf("invalid search.endpoint: %w", err)
		}
	case BackendLocal:
	default:
		return fmt.Errorf("unknown search.backend %q (want %q or %q)", c.Search.Backend, BackendRemote, BackendLocal)
	}
	if _, err := c.OriginURL(); err != nil {
		return err
	}
	return nil
}

// OriginURL parses the site origin
func (c *Config) OriginURL() (*url.URL, error) {
	u, err := url.Parse(c.Site.Origin)
	if err != nil {
		return nil, fmt.Errorf("invalid site.origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("site.origin must be an absolute URL, got %q", c.Site.Origin)
	}
	return u, nil
}

// Timeout returns the search request timeout
func (s SearchConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMs) * time.Millisecond
}

// Debounce returns the input coalescing delay
func (u UIConfig) Debounce() time.Duration {
	return time.Duration(u.DebounceMs) * time.Millisecond
}

// PrefetchTimeout returns the preload request timeout
func (s SiteConfig) PrefetchTimeout() time.Duration {
	return time.Duration(s.PrefetchMs) * time.Millisecond
}
