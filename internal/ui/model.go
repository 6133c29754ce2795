// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"

	"github.com/nhath/docseek/internal/config"
	"github.com/nhath/docseek/internal/controller"
	"github.com/nhath/docseek/internal/history"
	"github.com/nhath/docseek/internal/search"
)

// Deps are the collaborators the UI drives
type Deps struct {
	Config  *config.Config
	Client  search.Client
	Router  controller.Router
	History *history.Store // optional
	Window  *controller.Window
}

// Model is the root Bubble Tea model
type Model struct {
	// Core state
	width, height int
	config        *config.Config
	client        search.Client
	historyStore  *history.Store
	router        controller.Router
	window        *controller.Window
	ctrl          *controller.Controller
	release       func()

	// Components
	input   textinput.Model
	spinner spinner.Model
	preview viewport.Model

	// Preview pane
	showPreview bool
	previewFor  string // path rendered into the preview viewport

	// Popup state
	popupStack       *PopupStack
	showHelpPopup    bool
	showHistoryPopup bool
	historyEntries   []history.Entry
	historyTable     table.Model

	// Status
	loading   bool
	errorMsg  string
	statusMsg string

	// Debounce
	debounceID int
}

// NewModel creates the UI model and mounts the search shortcut on the window
func NewModel(deps Deps) Model {
	cfg := deps.Config
	InitStyles(cfg.Theme)

	origin, _ := cfg.OriginURL()
	ctrl := controller.New(controller.Options{
		Wrap:        cfg.UI.WrapNavigation,
		Origin:      origin,
		FeedbackURL: cfg.Site.FeedbackURL,
		ToggleKeys:  cfg.Keys.Toggle,
		Mode:        search.Mode(cfg.Search.Mode),
		Router:      deps.Router,
	})

	window := deps.Window
	if window == nil {
		window = controller.NewWindow()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search docs"
	ti.CharLimit = 256
	ti.PlaceholderStyle = HintStyle
	ti.TextStyle = ItemTitleStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SystemMessageStyle

	return Model{
		config:       cfg,
		client:       deps.Client,
		historyStore: deps.History,
		router:       deps.Router,
		window:       window,
		ctrl:         ctrl,
		release:      ctrl.Mount(window),
		input:        ti,
		spinner:      sp,
		preview:      viewport.New(cfg.UI.DialogWidth-4, 8),
		popupStack:   NewPopupStack(),
		historyTable: newHistoryTable(nil, cfg.UI.DialogWidth, cfg.Theme),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Release removes the global listeners registered by NewModel. Safe to call
// more than once.
func (m Model) Release() {
	if m.release != nil {
		m.release()
	}
}

// Controller exposes the search state machine
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}
