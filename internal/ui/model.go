package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/driftfield/internal/config"
	"github.com/olivier-w/driftfield/internal/hero"
	"github.com/olivier-w/driftfield/internal/particles"
	"github.com/olivier-w/driftfield/internal/visualizer"
)

// Model is the Bubbletea model for the driftfield terminal view: the particle
// field fills the screen above a hero panel.
type Model struct {
	cfg      config.Config
	field    *particles.Field
	canvas   *visualizer.Braille
	glow     *visualizer.Glow
	clock    *visualizer.FrameClock
	typing   *hero.Typewriter
	counters []hero.Counter
	reveal   hero.Reveal
	skills   *skillsModel
	keys     keyMap
	help     help.Model
	interval time.Duration

	width     int
	height    int
	fieldRows int
	paused    bool
	quitting  bool
	now       time.Time
}

// New creates a Model. start anchors the reveal and counter animations.
func New(cfg config.Config, start time.Time) (Model, error) {
	canvas := visualizer.NewBraille(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	field, err := particles.New(canvas, config.NewRand(cfg.Particles.Seed), cfg.Particles.FieldOptions())
	if err != nil {
		return Model{}, err
	}

	counters := make([]hero.Counter, len(cfg.Content.Stats))
	for i, s := range cfg.Content.Stats {
		counters[i] = hero.NewCounter(s.Label, s.Value, start)
	}

	return Model{
		cfg:      cfg,
		field:    field,
		canvas:   canvas,
		glow:     visualizer.NewGlow(cfg.Terminal.FPS),
		clock:    visualizer.NewFrameClock(cfg.Terminal.FPS),
		typing:   hero.NewTypewriter(cfg.Content.Phrases),
		counters: counters,
		reveal:   hero.NewReveal(start),
		skills:   newSkills(cfg.Content.Panels),
		keys:     defaultKeyMap(),
		help:     help.New(),
		interval: time.Second / time.Duration(cfg.Terminal.FPS),
		now:      start,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.interval),
		typeCmd(m.typing.Start()),
		m.skills.revealCmd(),
		tea.SetWindowTitle(m.cfg.Content.Title+" · driftfield"),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.NextTab):
			return m, m.skills.Next()
		case key.Matches(msg, m.keys.PrevTab):
			return m, m.skills.Prev()
		case key.Matches(msg, m.keys.JumpTab):
			if n := int(msg.String()[0] - '1'); n < len(m.cfg.Content.Panels) {
				return m, m.skills.Select(n)
			}
		case key.Matches(msg, m.keys.Reseed):
			m.field.Initialize(m.field.Options().Count)
			m.field.Render()
		}
		return m, nil

	case frameMsg:
		m.now = time.Time(msg)
		m.clock.Mark(m.now)
		if !m.paused {
			m.field.Tick()
			m.glow.Step()
		}
		m.draw()
		return m, frameCmd(m.interval)

	case typeMsg:
		return m, typeCmd(m.typing.Step())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.skills.SetWidth(msg.Width - 4)
		m.help.Width = msg.Width - 4
		m.fieldRows = max(msg.Height-m.panelHeight(), 1)
		m.field.Reset(msg.Width*m.cfg.Terminal.CellWidth, m.fieldRows*m.cfg.Terminal.CellHeight)
		m.draw()
		return m, nil

	case tea.MouseMsg:
		if msg.Y < m.fieldRows {
			m.glow.SetTarget(
				(float64(msg.X)+0.5)*float64(m.cfg.Terminal.CellWidth),
				(float64(msg.Y)+0.5)*float64(m.cfg.Terminal.CellHeight),
			)
		} else {
			m.glow.Hide()
		}
		return m, nil

	case revealSkillsMsg, progress.FrameMsg:
		return m, m.skills.Update(msg)
	}

	return m, nil
}

// draw renders the field and lays the cursor glow over it.
func (m Model) draw() {
	m.field.Render()
	m.glow.Draw(m.canvas)
}

func (m Model) panelItems() []string {
	stats := m.field.Stats()
	return []string{
		renderHeading(m.cfg.Content.Title, m.cfg.Content.Tagline),
		renderTyping(m.typing.Text(), m.now),
		renderCounters(m.counters, m.now),
		"",
		m.skills.View(),
		"",
		renderStatus(m.paused, m.clock.Rate(), m.field.Len(), stats.Links),
		m.help.View(m.keys),
	}
}

func (m Model) panelHeight() int {
	return lipgloss.Height(m.panel())
}

func (m Model) panel() string {
	items := m.panelItems()
	shown := m.reveal.Count(len(items), m.now)
	for i := shown; i < len(items); i++ {
		items[i] = blankLike(items[i])
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.canvas.View(), m.panel())
}
