// Package tui implements the interactive stylist chat screen.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ainsleyw/drobe/internal/stylist"
)

// thinkingDelay simulates the assistant composing a reply before the canned
// answer appears.
const thinkingDelay = time.Second

type role int

const (
	roleUser role = iota
	roleStylist
)

type message struct {
	text string
	role role
}

// thinkMsg fires when the thinking delay elapses.
type thinkMsg struct{ input string }

// replyMsg carries the stylist's answer back into the update loop.
type replyMsg struct {
	reply string
	err   error
}

var (
	userBubble = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#45B7D1")).
			Padding(0, 1).
			MarginBottom(1)

	stylistBubble = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2C3E50")).
			Background(lipgloss.Color("#E9ECEF")).
			Padding(0, 1).
			MarginBottom(1)

	thinkingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// ChatModel is the bubbletea model for the stylist conversation.
type ChatModel struct {
	engine   *stylist.Engine
	input    textinput.Model
	viewport viewport.Model
	messages []message
	thinking bool
	ready    bool
	width    int
	height   int
}

// NewChat creates a chat model seeded with the welcome message.
func NewChat(engine *stylist.Engine) ChatModel {
	input := textinput.New()
	input.Placeholder = "Ask about outfits, weather, occasions..."
	input.CharLimit = 280
	input.Focus()

	return ChatModel{
		engine:   engine,
		input:    input,
		messages: []message{{role: roleStylist, text: stylist.Welcome}},
	}
}

// Init implements tea.Model.
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.thinking {
				return m, nil
			}
			m.messages = append(m.messages, message{role: roleUser, text: text})
			m.input.Reset()
			m.thinking = true
			m.refreshViewport()
			return m, tea.Tick(thinkingDelay, func(time.Time) tea.Msg {
				return thinkMsg{input: text}
			})
		}

	case thinkMsg:
		return m, func() tea.Msg {
			reply, err := m.engine.Reply(context.Background(), msg.input)
			return replyMsg{reply: reply, err: err}
		}

	case replyMsg:
		m.thinking = false
		text := msg.reply
		if msg.err != nil {
			text = "I'm sorry, I'm having trouble processing your request right now. Please try again later."
		}
		m.messages = append(m.messages, message{role: roleStylist, text: text})
		m.refreshViewport()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m ChatModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.thinking {
		b.WriteString(thinkingStyle.Render("stylist is thinking..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *ChatModel) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, msg := range m.messages {
		style := stylistBubble
		if msg.role == roleUser {
			style = userBubble
		}
		b.WriteString(style.MaxWidth(width).Render(msg.text))
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// Run starts the interactive chat session and blocks until the user quits.
func Run(engine *stylist.Engine) error {
	program := tea.NewProgram(NewChat(engine), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
