// Package tui is the interactive single-throw front-end. The player types a
// hand, the opponent draws one uniformly at random, and the result is
// appended to the throw log. No score is kept between throws.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/rpsls/rpsls"
)

// Throw is one resolved throw.
type Throw struct {
	Own     rpsls.Hand
	Other   rpsls.Hand
	Outcome rpsls.Outcome
}

// Model is the bubbletea model for the throw picker.
type Model struct {
	logger *log.Logger
	rng    rpsls.Source
	styles Styles

	input    textinput.Model
	viewport viewport.Model

	throws   []Throw
	lines    []string
	errMsg   string
	quitting bool

	width  int
	height int
}

// New creates a model drawing opponent hands from rng.
func New(logger *log.Logger, rng rpsls.Source, theme string) *Model {
	styles := ThemeStyles(theme)

	vp := viewport.New(40, 10)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = strings.Join(rpsls.Names(), ", ")
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 40
	ti.PromptStyle = styles.Prompt
	ti.Prompt = "> "

	return &Model{
		logger:   logger.WithPrefix("tui"),
		rng:      rng,
		styles:   styles,
		input:    ti,
		viewport: vp,
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width, 1)
		m.viewport.Height = max(msg.Height-6, 1)
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.submit(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "pgup":
			m.viewport.HalfPageUp()
		case "pgdown":
			m.viewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) submit(text string) {
	own, err := rpsls.ParseHand(text)
	if err != nil {
		m.errMsg = fmt.Sprintf("%q is not a hand, try one of: %s", strings.TrimSpace(text), strings.Join(rpsls.Names(), ", "))
		m.logger.Debug("rejected input", "input", text, "error", err)
		return
	}
	m.errMsg = ""
	m.Throw(own)
}

// Throw resolves own against a random opponent hand and logs the result.
func (m *Model) Throw(own rpsls.Hand) Throw {
	other := rpsls.RandomHand(m.rng)
	t := Throw{Own: own, Other: other, Outcome: rpsls.Play(own, other)}
	m.throws = append(m.throws, t)

	m.lines = append(m.lines, m.renderThrow(t))
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()

	m.logger.Debug("throw", "own", own, "other", other, "outcome", t.Outcome)
	return t
}

func (m *Model) renderThrow(t Throw) string {
	var result string
	switch t.Outcome {
	case rpsls.Win:
		result = m.styles.Win.Render("You win")
	case rpsls.Lose:
		result = m.styles.Lose.Render("You lose")
	default:
		result = m.styles.Draw.Render("Draw")
	}
	return fmt.Sprintf("%s vs %s: %s. %s",
		m.styles.Hand.Render(t.Own.String()),
		m.styles.Hand.Render(t.Other.String()),
		rpsls.Describe(t.Own, t.Other),
		result)
}

// View renders the header, throw log, input and help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Rock Paper Scissors Lizard Spock"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter: throw  pgup/pgdown: scroll  esc: quit"))
	return b.String()
}

// Throws returns every throw made so far.
func (m *Model) Throws() []Throw {
	return m.throws
}

// Err returns the last input error shown to the player, if any.
func (m *Model) Err() string {
	return m.errMsg
}

// Quitting reports whether the player asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Run starts the program on the terminal and blocks until the player quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
