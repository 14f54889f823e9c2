package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowchart/pkg/flowchart"
	fio "github.com/matzehuels/flowchart/pkg/io"
	"github.com/matzehuels/flowchart/pkg/surface"
)

// maxLogLines bounds the event log shown under the node table.
const maxLogLines = 8

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing a rendered chart.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		event     string
		overrides chartOverrides
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse rendered nodes and dispatch events interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sink := &actionLog{}

			def, chart, err := c.loadChart(args[0], overrides, sink.record)
			if err != nil {
				return err
			}
			defer chart.Destroy()

			svg, err := chart.Render(withChart(ctx, def.Name, c.Logger), newHost())
			if err != nil {
				return err
			}

			m := newInspectModel(def.Name, chart, svg, event, sink)
			_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&event, "event", "e", "click", "event dispatched on enter")
	cmd.Flags().StringVarP(&overrides.direction, "direction", "d", "", "override the layout direction: TB, BT, LR, RL")
	cmd.Flags().IntVar(&overrides.wrap, "wrap", 0, "word-wrap labels at this width")

	return cmd
}

// actionLog collects actions fired by dispatched events.
type actionLog struct {
	actions []fio.Action
}

func (l *actionLog) record(a fio.Action) { l.actions = append(l.actions, a) }

// drain returns and clears the collected actions.
func (l *actionLog) drain() []fio.Action {
	a := l.actions
	l.actions = nil
	return a
}

// =============================================================================
// inspectModel - Interactive node browser
// =============================================================================

// nodeRow is one rendered node.
type nodeRow struct {
	ID        string
	Label     string
	Box       surface.Rect
	Listeners int
	node      *surface.Element
}

// inspectModel is the bubbletea model for the inspect command.
type inspectModel struct {
	Name   string
	Event  string
	Rows   []nodeRow
	Cursor int
	Offset int
	Height int
	Log    []string

	sink *actionLog
}

// newInspectModel lists the node groups of a rendered chart in document order.
func newInspectModel(name string, chart *flowchart.Chart, svg *surface.Element, event string, sink *actionLog) inspectModel {
	m := inspectModel{Name: name, Event: event, Height: 15, sink: sink}
	for _, n := range svg.Find("g", "node") {
		id := flowchart.NodeID(n)
		row := nodeRow{ID: id, Label: id, Box: n.BBox(), node: n}
		if el, ok := chart.Element(id); ok {
			row.Label = el.Label()
			row.Listeners = len(el.Listeners())
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Rows) > 0 {
				m = m.dispatch(m.Rows[m.Cursor])
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8 - maxLogLines
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// dispatch fires the model's event at row and appends the outcome to the log.
func (m inspectModel) dispatch(row nodeRow) inspectModel {
	fired := row.node.Dispatch(m.Event)

	var messages []string
	for _, a := range m.sink.drain() {
		if a.Message != "" {
			messages = append(messages, a.Message)
		}
	}

	line := fmt.Sprintf("%s %s: %d listener(s)", row.ID, m.Event, fired)
	if len(messages) > 0 {
		line += " " + iconArrow + " " + strings.Join(messages, ", ")
	}

	m.Log = append(append([]string(nil), m.Log...), line)
	if len(m.Log) > maxLogLines {
		m.Log = m.Log[len(m.Log)-maxLogLines:]
	}
	return m
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("↑/↓ navigate  ⏎ %s  q quit", m.Event)))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(StyleWarning.Render("chart has no nodes"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		box := fmt.Sprintf("%.0f,%.0f %.0f×%.0f", r.Box.X, r.Box.Y, r.Box.Width, r.Box.Height)
		label := strings.Join(strings.Fields(r.Label), " ")
		rows = append(rows, []string{cursor, r.ID, label, box, fmt.Sprint(r.Listeners)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Label", "Box", "Listeners").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorGray)
			}
			if idx == m.Cursor {
				if m.Rows[idx].Listeners > 0 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			if m.Rows[idx].Listeners == 0 {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))
	b.WriteString("\n")

	for _, line := range m.Log {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render(line))
	}
	return b.String()
}
