package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thywilljoshua/finslides/internal/analysis"
	"github.com/thywilljoshua/finslides/internal/document"
)

type keyMap struct {
	Open     key.Binding
	Analyze  key.Binding
	Previous key.Binding
	Next     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		Analyze:  key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "analyze")),
		Previous: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	cancelKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	abortKey  = key.NewBinding(key.WithKeys("ctrl+c"))
)

// Loader turns a path typed into the open prompt into a document.
type Loader func(path string) (*document.Document, error)

// AcceptLoader loads documents restricted to the accept list.
func AcceptLoader(accept []string) Loader {
	return func(path string) (*document.Document, error) {
		return document.Load(path, accept)
	}
}

// attemptDoneMsg carries the pipeline outcome back into the update loop.
type attemptDoneMsg struct {
	result string
	err    error
}

// Model is the interactive viewer. Analysis runs as a tea.Cmd so the update
// loop keeps drawing the spinner; the machine refuses a second attempt
// while one is in flight.
type Model struct {
	ctx     context.Context
	machine *analysis.Machine
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	width   int

	load    Loader
	input   textinput.Model
	picking bool
	loadErr string
}

// New builds the viewer. A nil load falls back to images only.
func New(ctx context.Context, machine *analysis.Machine, load Loader) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = activeStyle
	if load == nil {
		load = AcceptLoader(document.DefaultAccept)
	}
	in := textinput.New()
	in.Prompt = "Open: "
	in.Placeholder = "path/to/statement.png"
	in.CharLimit = 4096
	return &Model{
		ctx:     ctx,
		machine: machine,
		spinner: s,
		help:    help.New(),
		keys:    defaultKeys(),
		load:    load,
		input:   in,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.picking {
			return m, m.updatePicker(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Open):
			m.picking = true
			m.loadErr = ""
			m.input.Reset()
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.Analyze):
			return m, m.startAttempt()
		case key.Matches(msg, m.keys.Next):
			m.machine.Next()
		case key.Matches(msg, m.keys.Previous):
			m.machine.Previous()
		}

	case attemptDoneMsg:
		m.machine.Finish(msg.result, msg.err)

	case spinner.TickMsg:
		if m.machine.Snapshot().View != analysis.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		if m.picking {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// updatePicker handles keys while the open prompt has focus. Slides already
// on screen stay there until the next attempt starts.
func (m *Model) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, abortKey):
		return tea.Quit
	case key.Matches(msg, cancelKey):
		m.closePicker()
		return nil
	case key.Matches(msg, submitKey):
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return nil
		}
		doc, err := m.load(path)
		if err != nil {
			m.loadErr = err.Error()
			return nil
		}
		m.machine.Select(doc)
		m.closePicker()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) closePicker() {
	m.picking = false
	m.loadErr = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) startAttempt() tea.Cmd {
	doc, ok := m.machine.Begin()
	if !ok {
		return nil
	}
	ctx, machine := m.ctx, m.machine
	run := func() tea.Msg {
		result, err := machine.Run(ctx, doc)
		return attemptDoneMsg{result: result, err: err}
	}
	return tea.Batch(run, m.spinner.Tick)
}

func (m *Model) View() string {
	s := m.machine.Snapshot()
	var b strings.Builder
	b.WriteString(headerStyle.Render("Financial Statement Analyzer"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(documentLine(s.Document)))
	b.WriteString("\n\n")
	b.WriteString(Render(s, m.width, m.spinner.View()))
	b.WriteString("\n\n")
	if m.picking {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.loadErr != "" {
			b.WriteString(failStyle.Render(m.loadErr))
			b.WriteString("\n")
		}
		b.WriteString(m.help.ShortHelpView([]key.Binding{submitKey, cancelKey}))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.help.ShortHelpView(m.bindings(s)))
	b.WriteString("\n")
	return b.String()
}

// bindings lists only the keys that do something in the current state.
func (m *Model) bindings(s analysis.State) []key.Binding {
	out := []key.Binding{m.keys.Open}
	if s.CanAnalyze() {
		out = append(out, m.keys.Analyze)
	}
	p := s.Pager()
	if p.HasPrevious() {
		out = append(out, m.keys.Previous)
	}
	if p.HasNext() {
		out = append(out, m.keys.Next)
	}
	return append(out, m.keys.Quit)
}

func documentLine(d *document.Document) string {
	if d == nil {
		return "No file selected"
	}
	return "File: " + d.Name
}

// Run starts the viewer on the terminal and blocks until the user quits.
func Run(ctx context.Context, machine *analysis.Machine, load Loader) error {
	_, err := tea.NewProgram(New(ctx, machine, load), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
