// Package slideshow renders a sequence of captioned images in the
// terminal, advancing between them at a configurable rate.
package slideshow

import (
	"fmt"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultInterval = 3 * time.Second

// Slide is one captioned image in the show.
type Slide struct {
	Caption string
	Image   image.Image
}

var (
	captionStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("63"))

	counterStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

// Model is a bubbletea model cycling through slides on a timer. Left and
// right arrows navigate manually; q, esc or ctrl+c quits.
type Model struct {
	slides   []Slide
	index    int
	interval time.Duration

	width  int
	height int
}

// New creates a slideshow over the given slides. A non-positive interval
// falls back to the default rate.
func New(slides []Slide, interval time.Duration) Model {
	if interval <= 0 {
		interval = defaultInterval
	}
	return Model{slides: slides, interval: interval}
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", " ":
			m.index = (m.index + 1) % len(m.slides)
			return m, nil
		case "left", "h":
			m.index = (m.index - 1 + len(m.slides)) % len(m.slides)
			return m, nil
		}
		return m, nil

	case tickMsg:
		m.index = (m.index + 1) % len(m.slides)
		return m, tick(m.interval)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.slides) == 0 {
		return "no slides"
	}
	slide := m.slides[m.index]

	maxW := m.width - 4
	maxH := (m.height - 5) * 2 // two pixel rows per terminal cell
	if maxW < 8 || maxH < 8 {
		maxW, maxH = 64, 48
	}

	picture := frameStyle.Render(renderImage(slide.Image, maxW, maxH))
	caption := captionStyle.Render(slide.Caption)
	counter := counterStyle.Render(fmt.Sprintf("%d/%d", m.index+1, len(m.slides)))

	return lipgloss.JoinVertical(lipgloss.Left, picture, caption, counter)
}
