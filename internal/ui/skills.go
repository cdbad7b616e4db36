package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/driftfield/internal/config"
)

// Bars refill this long after a panel is selected.
const skillsRevealDelay = 100 * time.Millisecond

// skillsModel is the tab strip plus the animated bars of the active panel.
type skillsModel struct {
	panels   []config.Panel
	active   int
	bars     []progress.Model
	seq      int
	barWidth int
	nameW    int
}

func newSkills(panels []config.Panel) *skillsModel {
	s := &skillsModel{panels: panels, barWidth: 30}
	for _, p := range panels {
		for _, sk := range p.Skills {
			s.nameW = max(s.nameW, lipgloss.Width(sk.Name))
		}
	}
	s.resetBars()
	return s
}

func (s *skillsModel) newBar() progress.Model {
	return progress.New(
		progress.WithScaledGradient("#00F5FF", "#8A2BE2"),
		progress.WithoutPercentage(),
		progress.WithWidth(s.barWidth),
	)
}

// Select switches to panel i. Every bar starts empty; the returned command
// fills them after a short delay.
func (s *skillsModel) Select(i int) tea.Cmd {
	if len(s.panels) == 0 {
		return nil
	}
	s.active = ((i % len(s.panels)) + len(s.panels)) % len(s.panels)
	s.resetBars()
	s.seq++
	return s.revealCmd()
}

func (s *skillsModel) resetBars() {
	s.bars = s.bars[:0]
	if len(s.panels) == 0 {
		return
	}
	for range s.panels[s.active].Skills {
		s.bars = append(s.bars, s.newBar())
	}
}

// revealCmd schedules the fill of the current selection.
func (s *skillsModel) revealCmd() tea.Cmd {
	if len(s.panels) == 0 {
		return nil
	}
	seq := s.seq
	return tea.Tick(skillsRevealDelay, func(time.Time) tea.Msg {
		return revealSkillsMsg{seq: seq}
	})
}

func (s *skillsModel) Next() tea.Cmd { return s.Select(s.active + 1) }
func (s *skillsModel) Prev() tea.Cmd { return s.Select(s.active - 1) }

// SetWidth fits the bars into a panel of the given width.
func (s *skillsModel) SetWidth(width int) {
	s.barWidth = min(max(width-s.nameW-16, 10), 48)
	for i := range s.bars {
		s.bars[i].Width = s.barWidth
	}
}

func (s *skillsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case revealSkillsMsg:
		if msg.seq != s.seq || len(s.panels) == 0 {
			return nil
		}
		var cmds []tea.Cmd
		for i, sk := range s.panels[s.active].Skills {
			cmds = append(cmds, s.bars[i].SetPercent(float64(sk.Level)/100))
		}
		return tea.Batch(cmds...)

	case progress.FrameMsg:
		var cmds []tea.Cmd
		for i := range s.bars {
			model, cmd := s.bars[i].Update(msg)
			if bar, ok := model.(progress.Model); ok {
				s.bars[i] = bar
			}
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// Height is constant across panels so the layout does not jump on switch.
func (s *skillsModel) Height() int {
	h := 0
	for _, p := range s.panels {
		h = max(h, len(p.Skills))
	}
	return h + 1
}

func (s *skillsModel) View() string {
	if len(s.panels) == 0 {
		return strings.Repeat("\n", s.Height()-1)
	}
	tabs := make([]string, len(s.panels))
	for i, p := range s.panels {
		label := fmt.Sprintf("%d %s", i+1, p.Name)
		if i == s.active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, tabs...)}
	for i, sk := range s.panels[s.active].Skills {
		name := statLabelStyle.Render(fmt.Sprintf("%-*s", s.nameW, sk.Name))
		lines = append(lines, fmt.Sprintf("%s  %s %3d%%", name, s.bars[i].View(), sk.Level))
	}
	for len(lines) < s.Height() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
