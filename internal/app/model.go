package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gojson "github.com/goccy/go-json"

	"stagehand/internal/assistant"
	"stagehand/internal/banner"
	"stagehand/internal/config"
	"stagehand/internal/datasets"
	"stagehand/internal/live"
	"stagehand/internal/logging"
	"stagehand/internal/store"
	"stagehand/internal/tour"
	"stagehand/internal/types"
)

const (
	chatPanelHeight      = 12
	minViewportWidth     = 40
	progressTickInterval = 250 * time.Millisecond
)

type uiMode int

const (
	uiModeChat uiMode = iota
	uiModePickArc
)

// screenCursor is the navigation sink shared between the tour controller
// and the model. Bubbletea copies the model on every update, so the active
// screen lives behind a pointer the navigator closure can write to.
type screenCursor struct {
	screen types.ScreenID
}

type Model struct {
	cfg     config.Config
	logger  logging.Logger
	dataset *datasets.Dataset
	keymap  *types.Keymap

	resolver   *assistant.Resolver
	dispatcher *live.Dispatcher
	tour       *tour.Controller
	banners    *banner.Manager
	sessions   store.SessionStore
	cursor     *screenCursor

	mode          uiMode
	picker        *ArcPicker
	activeBanners []banner.Banner
	transcript    []chatEntry
	viewport      viewport.Model
	input         textinput.Model
	loader        spinner.Model
	waiting       bool
	sendSeq       int
	lastReply     string
	status        string
	width         int
	height        int
}

func NewModel(cfg config.Config, logger logging.Logger) (Model, error) {
	templates, err := assistant.BuiltinStore()
	if err != nil {
		return Model{}, fmt.Errorf("load assistant templates: %w", err)
	}
	catalog, err := tour.BuiltinCatalog()
	if err != nil {
		return Model{}, fmt.Errorf("load tour catalog: %w", err)
	}
	storePath, err := cfg.StorePath()
	if err != nil {
		return Model{}, err
	}
	sessions, err := store.Open(cfg.StoreBackend(), storePath)
	if err != nil {
		return Model{}, fmt.Errorf("open session store: %w", err)
	}

	dataset := datasets.ForIndustry(cfg.Industry())
	cursor := &screenCursor{screen: types.ScreenOverview}
	controller := tour.NewController(catalog, sessions,
		tour.WithNavigator(func(screen types.ScreenID) { cursor.screen = screen }),
		tour.WithControllerLogger(logger))

	// Restore any persisted playback before the first render so a restart
	// lands on the step that was showing.
	if err := controller.ResumeIfNeeded(context.Background()); err != nil {
		logger.Warn("resume playback failed", logging.F("err", err))
	}

	input := textinput.New()
	input.Placeholder = "Ask the assistant..."
	input.Prompt = "> "
	input.CharLimit = 400
	input.Focus()

	loader := spinner.New()
	loader.Spinner = spinner.Line
	loader.Style = lipgloss.NewStyle()

	vp := viewport.New(minViewportWidth, chatPanelHeight)

	m := Model{
		cfg:        cfg,
		logger:     logger,
		dataset:    dataset,
		keymap:     loadKeymap(logger),
		resolver:   assistant.NewResolver(templates),
		dispatcher: live.NewDispatcher(cfg.LiveEndpoint(), live.WithTimeout(cfg.DispatchTimeout()), live.WithLogger(logger)),
		tour:       controller,
		banners:    banner.NewManager(sessions),
		sessions:   sessions,
		cursor:     cursor,
		picker:     NewArcPicker(catalog, cfg.Audience()),
		viewport:   vp,
		input:      input,
		loader:     loader,
	}
	m.syncViewport()
	return m, nil
}

// loadKeymap overlays the optional user keymap file onto the defaults.
func loadKeymap(logger logging.Logger) *types.Keymap {
	keymap := types.DefaultKeymap()
	path, err := config.KeymapPath()
	if err != nil {
		return keymap
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return keymap
	}
	var override types.Keymap
	if err := gojson.Unmarshal(data, &override); err != nil {
		logger.Warn("ignoring malformed keymap file", logging.F("path", path), logging.F("err", err))
		return keymap
	}
	keymap.Merge(&override)
	return keymap
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.loadBannersCmd()}
	if m.tour.Playing() {
		if gen, duration := m.tour.ArmPacing(); duration > 0 {
			cmds = append(cmds, pacingCmd(gen, duration))
		}
		cmds = append(cmds, progressTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Close() error {
	return m.sessions.Close()
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(renderTranscript(m.transcript, m.viewport.Width))
	m.viewport.GotoBottom()
}
