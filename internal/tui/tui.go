package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tatianab/no-escape/internal/engine"
	"github.com/tatianab/no-escape/internal/models"
	"github.com/tatianab/no-escape/internal/player"
)

// Screen dimensions, in terminal cells.
const (
	Height       = 32
	DisplayWidth = 41
	MapWidth     = 75
)

type sessionState int

const (
	stateTitle sessionState = iota
	stateBanner
	statePlaying
	stateOutro
	stateDead
	stateWon
	stateError
)

type model struct {
	state    sessionState
	campaign *models.Campaign
	opts     []engine.Option
	pace     time.Duration
	logger   *slog.Logger

	level      int
	game       *engine.Game
	discovered []string
	textInput  textinput.Model
	result     string
	encounter  string
	outroShown int
	err        error
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Width(DisplayWidth - 4).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	roomStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hammerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	swordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	monsterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	otherStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// itemStyle picks the colour an item is drawn in everywhere on screen.
func itemStyle(item string) lipgloss.Style {
	switch item {
	case "key":
		return keyStyle
	case "hammer":
		return hammerStyle
	case "sword":
		return swordStyle
	case "monster":
		return monsterStyle
	default:
		return otherStyle
	}
}

// Options configures a TUI run.
type Options struct {
	Pace   time.Duration
	Logger *slog.Logger
	Game   []engine.Option
}

func NewModel(campaign *models.Campaign, opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 36
	ti.Width = DisplayWidth - 6

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return model{
		state:     stateTitle,
		campaign:  campaign,
		opts:      opts.Game,
		pace:      opts.Pace,
		logger:    logger,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// advanceMsg moves a banner or an outro along.
type advanceMsg struct{}

func (m model) wait(beats int) tea.Cmd {
	if m.pace <= 0 {
		return func() tea.Msg { return advanceMsg{} }
	}
	return tea.Tick(time.Duration(beats)*m.pace, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
		if m.state == stateWon && msg.String() == "q" {
			return m, tea.Quit
		}

	case advanceMsg:
		return m.advance()
	}

	if m.state == statePlaying || m.state == stateDead {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateTitle:
		return m.startLevel(0, nil)

	case statePlaying:
		return m.playTurn(m.textInput.Value())

	case stateDead:
		answer := strings.ToLower(strings.TrimSpace(m.textInput.Value()))
		m.textInput.Reset()
		switch answer {
		case "y", "yes":
			checkpoint := m.campaign.Levels[m.level].Checkpoint
			m.logger.Info("restarting", "level", checkpoint)
			return m.startLevel(checkpoint, nil)
		case "n", "no":
			return m, tea.Quit
		default:
			m.result = engine.MsgInvalidInput
		}
	}
	return m, nil
}

// playTurn runs one full turn: the command, then the encounter check, then
// the level trigger.
func (m model) playTurn(input string) (tea.Model, tea.Cmd) {
	m.textInput.Reset()

	m.result = m.game.Submit(input)
	encounter, dead := m.game.ResolveEncounter(m.campaign.Killer)
	m.encounter = encounter
	m.discover()

	if dead {
		m.state = stateDead
		m.textInput.Placeholder = "Restart? (y/n)"
		return m, nil
	}

	if m.game.Reached(m.campaign.Levels[m.level].Trigger) {
		m.state = stateOutro
		m.outroShown = 0
		return m, m.wait(1)
	}
	return m, nil
}

func (m model) advance() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateBanner:
		m.state = statePlaying
		return m, textinput.Blink

	case stateOutro:
		outro := m.campaign.Levels[m.level].Outro
		if m.outroShown < len(outro) {
			m.outroShown++
			return m, m.wait(2)
		}
		if m.level+1 >= len(m.campaign.Levels) {
			m.state = stateWon
			m.logger.Info("campaign complete", "title", m.campaign.Title)
			return m, nil
		}
		return m.startLevel(m.level+1, m.game.Player)
	}
	return m, nil
}

func (m model) startLevel(index int, carried *player.Player) (tea.Model, tea.Cmd) {
	game, err := engine.StartLevel(m.campaign.Levels[index], carried, m.opts...)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}

	m.level = index
	m.game = game
	m.discovered = nil
	m.result = ""
	m.encounter = ""
	m.textInput.Reset()
	m.textInput.Placeholder = "What do you do?"
	m.discover()

	m.state = stateBanner
	return m, m.wait(2)
}

// discover records the current room for the map panel. Hidden rooms are
// never drawn.
func (m *model) discover() {
	room := m.game.Map.Current()
	if room.Layout.Hidden {
		return
	}
	for _, name := range m.discovered {
		if name == room.Name {
			return
		}
	}
	m.discovered = append(m.discovered, room.Name)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateTitle:
		s = m.titleView()

	case stateBanner:
		s = m.frame(bannerStyle.Render(m.campaign.Levels[m.level].Title), "")

	case statePlaying, stateDead:
		s = m.frame(m.playingView(), renderMap(m.game.Map, m.discovered))

	case stateOutro:
		outro := m.campaign.Levels[m.level].Outro[:m.outroShown]
		s = m.frame(strings.Join(outro, "\n"), renderMap(m.game.Map, m.discovered))

	case stateWon:
		s = m.frame(bannerStyle.Render(m.campaign.Ending)+"\n\n"+helpStyle.Render("Press q to quit."), "")

	case stateError:
		s = fmt.Sprintf("\n  %s\n\nPress Esc to quit.", errorStyle.Render("Error: "+m.err.Error()))
	}

	return s + "\n"
}

func (m model) titleView() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render(m.campaign.Title) + "\n\n")
	for _, line := range m.campaign.Intro {
		b.WriteString(wordwrap.String(line, DisplayWidth-4) + "\n")
	}
	b.WriteString("\n" + engine.HelpText + "\n\n")
	b.WriteString(helpStyle.Render("Press ENTER to continue"))
	return m.frame(b.String(), "")
}

func (m model) playingView() string {
	var b strings.Builder
	b.WriteString(m.statusView() + "\n")
	b.WriteString(strings.Repeat("─", DisplayWidth-4) + "\n")

	if m.result != "" {
		b.WriteString(wordwrap.String(m.styleResult(m.result), DisplayWidth-4) + "\n")
	}
	if m.encounter != "" {
		killer := m.campaign.Killer
		styled := strings.Replace(m.encounter, killer, monsterStyle.Render(killer), 1)
		b.WriteString(wordwrap.String(styled, DisplayWidth-4) + "\n")
	}
	if m.state == stateDead {
		b.WriteString("Restart? (y/n)\n")
	}

	b.WriteString("\n" + m.textInput.View())
	return b.String()
}

func (m model) statusView() string {
	state := m.game.State()
	lines := []string{"You are in the " + roomStyle.Render(state.Room)}
	if state.Item != "" {
		lines = append(lines, "You see a "+itemStyle(state.Item).Render(state.Item))
	}
	lines = append(lines, wordwrap.String("Inventory: ["+strings.Join(state.Inventory, ", ")+"]", DisplayWidth-4))
	return strings.Join(lines, "\n")
}

// styleResult colours the item name in pickup messages.
func (m model) styleResult(result string) string {
	const prefix = "You got the "
	if !strings.HasPrefix(result, prefix) || !strings.HasSuffix(result, "!") {
		return result
	}
	item := strings.TrimSuffix(strings.TrimPrefix(result, prefix), "!")
	return prefix + itemStyle(item).Render(item) + "!"
}

func (m model) frame(left, right string) string {
	display := panelStyle.
		Width(DisplayWidth - 2).
		Height(Height - 2).
		Render(left)
	if right == "" {
		return display
	}
	mapPanel := panelStyle.
		Width(MapWidth - 2).
		Height(Height - 2).
		Render(right)
	return lipgloss.JoinHorizontal(lipgloss.Top, display, mapPanel)
}

// Run plays campaign until the player quits.
func Run(campaign *models.Campaign, opts Options) error {
	p := tea.NewProgram(NewModel(campaign, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
