package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newViewCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "view [TYPE...]",
		Short: "Edit a placement plan interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("view needs a terminal, use place instead")
			}
			m, err := newViewModel(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			defer m.close()

			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	opts.bind(cmd)
	return cmd
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Exact  key.Binding
	Packed key.Binding
	Wider  key.Binding
	Narrow key.Binding
	Later  key.Binding
	Sooner key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Delete, k.Exact, k.Packed, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Delete},
		{k.Exact, k.Packed, k.Wider, k.Narrow, k.Later, k.Sooner},
		{k.Quit},
	}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add type")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Exact:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exact")),
	Packed: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "packed")),
	Wider:  key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "double align")),
	Narrow: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "halve align")),
	Later:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "offset +1")),
	Sooner: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "offset -1")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type viewState int

const (
	stateBrowse viewState = iota
	stateAddType
)

type viewModel struct {
	ctx      context.Context
	err      error
	plan     *plan
	names    []string
	input    textinput.Model
	help     help.Model
	opts     planOptions
	selected int
	width    int
	state    viewState
}

func newViewModel(ctx context.Context, opts planOptions, names []string) (*viewModel, error) {
	m := &viewModel{
		ctx:   ctx,
		opts:  opts,
		names: names,
		help:  help.New(),
		state: stateBrowse,
	}
	if err := m.replan(); err != nil {
		return nil, err
	}
	return m, nil
}

// replan rebuilds the plan from the current names and options. A type that
// fails to parse leaves the previous plan in place.
func (m *viewModel) replan() error {
	p, err := buildPlan(m.ctx, m.opts, m.names)
	if err != nil {
		return err
	}
	m.close()
	m.plan = p
	m.selected = min(m.selected, max(len(m.names)-1, 0))
	return nil
}

func (m *viewModel) close() {
	if m.plan != nil {
		_ = m.plan.Close()
	}
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == stateAddType {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *viewModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, keys.Quit):
		m.close()
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.selected < len(m.names)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, keys.Add):
		ti := textinput.New()
		ti.Placeholder = "record{x: f32, y: f32}"
		ti.Prompt = "type: "
		ti.Width = 40
		ti.Focus()
		m.input = ti
		m.state = stateAddType
		return m, textinput.Blink

	case key.Matches(msg, keys.Delete):
		if len(m.names) == 0 {
			return m, nil
		}
		m.names = append(m.names[:m.selected:m.selected], m.names[m.selected+1:]...)

	case key.Matches(msg, keys.Exact):
		m.opts.exact = !m.opts.exact

	case key.Matches(msg, keys.Packed):
		m.opts.packed = !m.opts.packed

	case key.Matches(msg, keys.Wider):
		if m.opts.align < 1<<12 {
			m.opts.align = max(m.opts.align*2, 1)
		}

	case key.Matches(msg, keys.Narrow):
		m.opts.align = max(m.opts.align/2, 1)

	case key.Matches(msg, keys.Later):
		m.opts.offset++

	case key.Matches(msg, keys.Sooner):
		if m.opts.offset > 0 {
			m.opts.offset--
		}

	default:
		return m, nil
	}

	m.err = m.replan()
	return m, nil
}

func (m *viewModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateBrowse
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if _, err := parseType(name); err != nil {
			m.err = err
			return m, nil
		}
		m.names = append(m.names, name)
		m.selected = len(m.names) - 1
		m.state = stateBrowse
		m.err = m.replan()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *viewModel) View() string {
	r := renderer{styled: true}
	var b strings.Builder

	b.WriteString(titleStyle.Render("slabplan"))
	b.WriteString(" ")
	b.WriteString(r.summary(m.plan))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString("No payloads yet. Press a to add a type.\n")
	} else {
		b.WriteString(r.table(m.plan, m.selected))
		b.WriteString("\n")
	}

	if m.plan.err != nil {
		b.WriteString(errorStyle.Render(m.plan.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.byteMap(m.plan, mapColumns(m.width), m.selected))
	b.WriteString("\n")

	if m.state == stateAddType {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter add • esc cancel"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.help.View(keys))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	return b.String()
}
