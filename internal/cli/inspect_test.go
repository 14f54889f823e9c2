package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestInspectModel(t *testing.T) inspectModel {
	t.Helper()
	c := newTestCLI(&stubEngine{})
	sink := &actionLog{}

	path := writeDefinition(t, "sample.toml", sampleTOML)
	def, chart, err := c.loadChart(path, chartOverrides{}, sink.record)
	if err != nil {
		t.Fatalf("loadChart: %v", err)
	}
	t.Cleanup(chart.Destroy)

	svg, err := chart.Render(context.Background(), newHost())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return newInspectModel(def.Name, chart, svg, "click", sink)
}

func press(m inspectModel, key string) inspectModel {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(inspectModel)
}

func TestInspectModelRows(t *testing.T) {
	m := newTestInspectModel(t)

	if m.Name != "sample" {
		t.Errorf("Name = %q, want sample", m.Name)
	}
	if len(m.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(m.Rows))
	}

	a, b := m.Rows[0], m.Rows[1]
	if a.ID != "A" || a.Label != "Start here" || a.Listeners != 1 {
		t.Errorf("row A = %+v", a)
	}
	if b.ID != "B" || b.Label != "B" || b.Listeners != 0 {
		t.Errorf("row B = %+v", b)
	}
	if a.Box.Width != 60 || a.Box.Height != 30 {
		t.Errorf("A box = %+v, want 60x30", a.Box)
	}
}

func TestInspectModelNavigation(t *testing.T) {
	m := newTestInspectModel(t)

	steps := []struct {
		key  string
		want int
	}{
		{"down", 1},
		{"down", 1},
		{"up", 0},
		{"up", 0},
		{"j", 1},
		{"k", 0},
	}
	for _, s := range steps {
		m = press(m, s.key)
		if m.Cursor != s.want {
			t.Fatalf("after %q cursor = %d, want %d", s.key, m.Cursor, s.want)
		}
	}
}

func TestInspectModelDispatch(t *testing.T) {
	m := newTestInspectModel(t)

	m = press(m, "enter")
	if len(m.Log) != 1 {
		t.Fatalf("log has %d lines, want 1", len(m.Log))
	}
	if got := m.Log[0]; !strings.Contains(got, "A click: 1 listener(s)") || !strings.Contains(got, "started") {
		t.Errorf("log line = %q", got)
	}

	m = press(m, "down")
	m = press(m, "enter")
	if got := m.Log[1]; got != "B click: 0 listener(s)" {
		t.Errorf("log line = %q, want no listeners for B", got)
	}

	for range maxLogLines {
		m = press(m, "enter")
	}
	if len(m.Log) != maxLogLines {
		t.Errorf("log has %d lines, want it capped at %d", len(m.Log), maxLogLines)
	}
}

func TestInspectModelQuit(t *testing.T) {
	m := newTestInspectModel(t)

	for _, key := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if key == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q should return a command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should quit", key)
		}
	}
}

func TestInspectModelView(t *testing.T) {
	m := newTestInspectModel(t)
	m = press(m, "enter")

	view := m.View()
	for _, want := range []string{"sample", "Node", "Listeners", "Start here", "[1/2]", "started"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestInspectModelEmptyChart(t *testing.T) {
	m := inspectModel{Name: "empty", Event: "click", Height: 15, sink: &actionLog{}}
	m = press(m, "enter")
	m = press(m, "down")

	if m.Cursor != 0 || len(m.Log) != 0 {
		t.Errorf("empty chart should ignore navigation, got cursor %d log %v", m.Cursor, m.Log)
	}
	if !strings.Contains(m.View(), "no nodes") {
		t.Error("view should say the chart has no nodes")
	}
}
