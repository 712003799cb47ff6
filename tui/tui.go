package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	editableStyle = cellStyle.
			Foreground(lipgloss.Color("42"))

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

const (
	cellWidth = 7
	gridWidth = 9
)

// HostInterface defines the methods required from a host session for TUI interaction
type HostInterface interface {
	GetTitle() string
	GetMaxLogLines() int
	// Execute queues one console command; it must not wait on the TUI.
	Execute(line string) error
	Shutdown()
}

// Grid is a rendered inventory view: one label per raw slot, top slots first.
type Grid struct {
	Title    string
	Cursor   string
	TopSize  int
	Labels   []string
	Editable map[int]bool
}

// TUI represents the terminal user interface for interactive mode
type TUI struct {
	host         HostInterface
	viewport     viewport.Model
	textInput    textinput.Model
	grid         Grid
	logs         []string
	logMutex     sync.Mutex
	ready        bool
	inputEnabled bool
	width        int
	height       int
}

// New creates a new TUI instance
func New(host HostInterface) *TUI {
	ti := textinput.New()
	ti.Placeholder = "Waiting for the host to start..."
	ti.Blur()
	ti.CharLimit = 256
	ti.Width = 50

	return &TUI{
		host:      host,
		textInput: ti,
		logs:      []string{},
	}
}

func (t *TUI) Init() tea.Cmd {
	return textinput.Blink
}

func (t *TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			t.host.Shutdown()
			return t, tea.Quit

		case tea.KeyEnter:
			if !t.inputEnabled {
				return t, nil
			}
			input := strings.TrimSpace(t.textInput.Value())
			if input != "" {
				if err := t.host.Execute(input); err != nil {
					t.AddLog(fmt.Sprintf("Error: %v", err))
				} else {
					t.AddLog(fmt.Sprintf("> %s", input))
				}
				t.textInput.SetValue("")
			}
			return t, nil
		}

	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height
		if !t.ready {
			t.viewport = viewport.New(msg.Width, 0)
			t.ready = true
		}
		t.resize()
		t.viewport.SetContent(t.renderLogs())
		t.textInput.Width = msg.Width - 2

	case LogMsg:
		t.AddLog(string(msg))
		if t.ready {
			wasAtBottom := t.viewport.AtBottom()
			t.viewport.SetContent(t.renderLogs())
			if wasAtBottom {
				t.viewport.GotoBottom()
			}
		}
		return t, nil

	case GridMsg:
		t.grid = Grid(msg)
		t.resize()
		return t, nil

	case EnableInputMsg:
		t.inputEnabled = true
		t.textInput.Placeholder = "click <slot> [right|shift] • drag <left|right> <slots...> • close • help"
		t.textInput.Focus()
		return t, nil
	}

	if t.ready {
		t.viewport, cmd = t.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if t.inputEnabled {
		t.textInput, cmd = t.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return t, tea.Batch(cmds...)
}

// resize gives the log viewport whatever the grid leaves over.
func (t *TUI) resize() {
	if !t.ready {
		return
	}
	used := lipgloss.Height(RenderGrid(t.grid)) + 3
	t.viewport.Width = t.width
	t.viewport.Height = max(t.height-used, 1)
}

func (t *TUI) View() string {
	if !t.ready {
		return "Initializing..."
	}

	title := titleStyle.Render(t.host.GetTitle())

	var helpText string
	if t.inputEnabled {
		helpText = helpStyle.Render("Enter: run • Ctrl+C/Esc: quit")
	} else {
		helpText = helpStyle.Render("Waiting for the host to start... • Ctrl+C/Esc: quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		RenderGrid(t.grid),
		t.viewport.View(),
		inputStyle.Render("> "+t.textInput.View()),
		helpText,
	)
}

// RenderGrid draws the top inventory above the player inventory, nine
// slots per row, each cell prefixed with its raw slot number.
func RenderGrid(g Grid) string {
	if len(g.Labels) == 0 {
		return ""
	}
	top := min(g.TopSize, len(g.Labels))
	var b strings.Builder
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s  cursor: %s", g.Title, g.Cursor)))
	b.WriteString("\n")
	writeRows(&b, g, 0, top)
	b.WriteString(strings.Repeat("─", cellWidth*gridWidth))
	b.WriteString("\n")
	writeRows(&b, g, top, len(g.Labels))
	return gridStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func writeRows(b *strings.Builder, g Grid, from, to int) {
	for row := from; row < to; row += gridWidth {
		cells := make([]string, 0, gridWidth)
		for raw := row; raw < min(row+gridWidth, to); raw++ {
			style := cellStyle
			if g.Editable[raw] {
				style = editableStyle
			}
			cells = append(cells, style.Render(fmt.Sprintf("%d:%s", raw, g.Labels[raw])))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
}

// AddLog adds a log message to the TUI
func (t *TUI) AddLog(msg string) {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	t.logs = append(t.logs, msg)

	maxLines := t.host.GetMaxLogLines()
	if maxLines > 0 && len(t.logs) > maxLines {
		t.logs = t.logs[len(t.logs)-maxLines:]
	}
}

func (t *TUI) renderLogs() string {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	return strings.Join(t.logs, "\n")
}

// LogMsg is a message type for logging
type LogMsg string

// EnableInputMsg is a message type to enable input
type EnableInputMsg struct{}

// GridMsg replaces the rendered inventory view.
type GridMsg Grid

// Writer is an io.Writer that sends output to the TUI
type Writer struct {
	program *tea.Program
}

func NewWriter(program *tea.Program) *Writer {
	return &Writer{program: program}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg != "" {
		w.program.Send(LogMsg(msg))
	}
	return len(p), nil
}

// Start creates a new TUI program, returning the program and a writer for logging
func Start(host HostInterface) (*tea.Program, io.Writer) {
	t := New(host)
	p := tea.NewProgram(t, tea.WithAltScreen())
	writer := NewWriter(p)
	return p, writer
}

// EnableInput sends an enable input message to the given program
func EnableInput(program *tea.Program) {
	if program != nil {
		program.Send(EnableInputMsg{})
	}
}

// ShowGrid sends an inventory view to the given program.
func ShowGrid(program *tea.Program, g Grid) {
	if program != nil {
		program.Send(GridMsg(g))
	}
}
