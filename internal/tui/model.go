// Package tui is the terminal rendition of the campus safety page.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/beacon/internal/core/config"
	"github.com/colonyops/beacon/internal/core/eventloop"
	"github.com/colonyops/beacon/internal/core/logging"
	"github.com/colonyops/beacon/internal/core/prefs"
	"github.com/colonyops/beacon/internal/core/styles"
	vis "github.com/colonyops/beacon/internal/core/viewport"
	"github.com/colonyops/beacon/internal/feedback"
	"github.com/colonyops/beacon/internal/page"
)

const (
	// header, tabs and divider above the body, help bar below it.
	chromeHeight = 4
	statsHeight  = 3
)

// Options configures the TUI.
type Options struct {
	Config *config.Config
	Prefs  *prefs.Store
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg   *config.Config
	prefs *prefs.Store

	loop     *eventloop.Loop
	engine   *feedback.Engine
	page     *page.Page
	screen   *Screen
	toasts   *ToastView
	detector *vis.Detector
	sections []cardSection

	cards viewport.Model
	keys  KeyMap
	help  help.Model

	drafts   *drafts
	form     *huh.Form
	formKind formKind

	theme     string
	resources string
	cursor    int
	width     int
	height    int
	quitting  bool
}

func New(opts Options) Model {
	cfg := opts.Config

	loop := eventloop.New()
	screen := NewScreen()
	detector := vis.New()

	engine := feedback.New(feedback.Options{
		Scheduler:    loop,
		Detector:     detector,
		Presentation: screen,
		Notifications: feedback.NotificationOptions{
			TTL:        cfg.Notifications.TTL,
			Fade:       cfg.Notifications.Fade,
			MaxVisible: cfg.Notifications.MaxVisible,
		},
		RevealThreshold: cfg.Reveal.Threshold,
		Logger:          log.Logger,
	})

	pg := page.New(page.Options{
		Feedback:       engine,
		Scheduler:      loop,
		Stats:          cfg.Stats,
		RevealPatterns: cfg.Reveal.Patterns,
		MapLoadDelay:   cfg.Map.LoadDelay,
		Logger:         logging.Component("page"),
	})

	m := Model{
		cfg:      cfg,
		prefs:    opts.Prefs,
		loop:     loop,
		engine:   engine,
		page:     pg,
		screen:   screen,
		toasts:   NewToastView(screen.ToastController),
		detector: detector,
		sections: cardSections(),
		cards:    viewport.New(0, 0),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		drafts:   &drafts{},
		theme:    cfg.Theme,
	}

	if opts.Prefs != nil {
		theme, err := opts.Prefs.Theme()
		if err != nil {
			log.Warn().Err(err).Msg("failed to read saved theme")
		} else {
			m.theme = theme
		}
	}
	m.applyTheme(m.theme)

	return m
}

// Init starts the page animations and begins listening to the event loop.
func (m Model) Init() tea.Cmd {
	if err := m.page.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to start page")
		m.engine.Errorf("Page failed to start: %v", err)
	}
	return waitForLoop(m.loop)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case loopSignalMsg:
		m.loop.Drain()
		m.syncCards()
		return m, waitForLoop(m.loop)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.page.Tabs.Active() == page.TabOverview {
		var cmd tea.Cmd
		m.cards, cmd = m.cards.Update(msg)
		m.syncCards()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.cards.Width = msg.Width
	m.cards.Height = max(msg.Height-chromeHeight-statsHeight, 1)
	m.resources = renderResources(msg.Width)
	m.syncCards()
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.loop.Close()
	return m, tea.Quit
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.form != nil {
		if key.Matches(msg, m.keys.Close) {
			m.closeForm()
			return m, nil
		}
		return m.updateForm(msg)
	}
	if m.page.Emergency.IsOpen() {
		return m.handleEmergencyKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NextTab):
		m.page.Tabs.Next()
		m.cursor = 0
		m.syncCards()
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.page.Tabs.Prev()
		m.cursor = 0
		m.syncCards()
		return m, nil
	case key.Matches(msg, m.keys.Emergency):
		m.page.Emergency.Open()
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.engine.Notifications().DismissNewest()
		return m, nil
	case key.Matches(msg, m.keys.DismissAll):
		m.engine.Notifications().DismissAll()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m.handleTabKey(msg)
}

func (m Model) handleEmergencyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Emergency) {
		m.page.Emergency.Close()
		return m, nil
	}

	options := m.page.Emergency.Options()
	if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
		if i := int(r[0] - '1'); i < len(options) {
			m.page.Emergency.Choose(options[i])
		}
	}
	return m, nil
}

// handleTabKey handles keys specific to the active tab.
func (m Model) handleTabKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.page.Tabs.Active() {
	case page.TabOverview:
		var cmd tea.Cmd
		m.cards, cmd = m.cards.Update(msg)
		m.syncCards()
		return m, cmd

	case page.TabResources:
		contacts := page.EmergencyContacts()
		if key.Matches(msg, m.keys.Select) {
			m.page.QuickCall(contacts[m.cursor])
			return m, nil
		}
		m.moveCursor(msg, len(contacts))

	case page.TabReport:
		if key.Matches(msg, m.keys.Select) {
			return m.openForm(formIncident)
		}

	case page.TabMap:
		features := m.page.Map.Features()
		if key.Matches(msg, m.keys.Select) {
			if len(features) == 0 {
				m.page.Map.Load()
				return m, nil
			}
			m.page.Map.Click(features[m.cursor].Type)
			return m, nil
		}
		m.moveCursor(msg, len(features))

	case page.TabCourses:
		courses := page.Courses()
		if key.Matches(msg, m.keys.Select) {
			m.page.Enroll(courses[m.cursor])
			return m, nil
		}
		m.moveCursor(msg, len(courses))

	case page.TabContact:
		if key.Matches(msg, m.keys.Select) {
			return m.openForm(formContact)
		}
	}

	return m, nil
}

func (m *Model) moveCursor(msg tea.KeyMsg, n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, n-1)
	}
}

func (m Model) openForm(kind formKind) (tea.Model, tea.Cmd) {
	width := min(max(m.width-12, 30), 72)
	switch kind {
	case formIncident:
		m.form = newIncidentForm(m.drafts, width)
	case formContact:
		m.form = newContactForm(m.drafts, width)
	default:
		return m, nil
	}
	m.formKind = kind
	return m, m.form.Init()
}

// updateForm routes any message to the form and handles state changes.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// submitForm hands the draft to the page. Drafts are cleared only after a
// successful submission so a rejected form reopens with its values.
func (m *Model) submitForm() {
	ctx := context.Background()
	switch m.formKind {
	case formIncident:
		if err := m.page.SubmitIncident(ctx, m.drafts.incident); err == nil {
			m.drafts.incident = page.IncidentReport{}
		}
	case formContact:
		if err := m.page.SendMessage(ctx, m.drafts.contact); err == nil {
			m.drafts.contact = page.ContactMessage{}
		}
	}
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
}

func (m *Model) toggleTheme() {
	if m.prefs == nil {
		return
	}
	name, err := m.prefs.Toggle()
	if err != nil {
		log.Error().Err(err).Msg("failed to save theme")
		m.engine.Errorf("Could not save theme: %v", err)
		return
	}
	m.applyTheme(name)
}

// applyTheme switches the active theme at runtime.
func (m *Model) applyTheme(name string) {
	palette, ok := styles.GetPalette(name)
	if !ok {
		m.engine.Errorf("unknown theme %q, available: %v", name, styles.ThemeNames())
		return
	}
	styles.SetTheme(palette)
	m.theme = name
	if m.width > 0 {
		m.resources = renderResources(m.width)
	}
	m.syncCards()
}

// syncCards pushes the card layout and scroll window to the detector, then
// re-renders the cards with whatever the detector revealed. Cards are only
// in view on the overview tab.
func (m *Model) syncCards() {
	_, spans := renderCards(m.sections, m.cards.Width, m.screen.Revealed)
	m.detector.SetLayout(spans)

	height := 0
	if m.page.Tabs.Active() == page.TabOverview {
		height = m.cards.Height
	}
	m.detector.Scroll(m.cards.YOffset, height)

	content, _ := renderCards(m.sections, m.cards.Width, m.screen.Revealed)
	m.cards.SetContent(content)
}
