package surface

import "testing"

func TestDispatchBubbles(t *testing.T) {
	doc := NewDocument("svg")
	group := doc.Root().Append("g")
	rect := group.Append("rect")

	var order []string
	doc.Root().On("click", func(ev *Event) { order = append(order, "svg") })
	group.On("click", func(ev *Event) {
		if !ev.Target.Same(rect) {
			t.Error("Target should be the dispatch element")
		}
		if !ev.CurrentTarget.Same(group) {
			t.Error("CurrentTarget should be the listening element")
		}
		order = append(order, "g")
	})
	rect.On("click", func(ev *Event) { order = append(order, "rect") })

	if got := rect.Dispatch("click"); got != 3 {
		t.Errorf("Dispatch() fired %d listeners, want 3", got)
	}
	want := []string{"rect", "g", "svg"}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	doc := NewDocument("svg")
	group := doc.Root().Append("g")

	calls := 0
	doc.Root().On("click", func(*Event) { calls++ })
	group.On("click", func(ev *Event) { ev.StopPropagation(); calls++ })
	group.On("click", func(*Event) { calls++ })

	if got := group.Dispatch("click"); got != 2 {
		t.Errorf("Dispatch() = %d, want 2", got)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (root must not run)", calls)
	}
}

func TestOnKeepsDuplicates(t *testing.T) {
	doc := NewDocument("g")
	g := doc.Root()

	calls := 0
	fn := func(*Event) { calls++ }
	g.On("click", fn).On("click", fn).On("mouseover", fn).On("click", nil)

	if got := g.ListenerCount("click"); got != 2 {
		t.Errorf("ListenerCount(click) = %d, want 2", got)
	}
	if got := g.ListenerCount(""); got != 3 {
		t.Errorf("ListenerCount() = %d, want 3", got)
	}

	g.Dispatch("click")
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestOff(t *testing.T) {
	doc := NewDocument("g")
	g := doc.Root()

	calls := 0
	g.On("click", func(*Event) { calls++ })
	g.On("mouseover", func(*Event) { calls++ })
	g.Off("click")

	if got := g.Dispatch("click"); got != 0 {
		t.Errorf("Dispatch(click) after Off = %d, want 0", got)
	}
	if got := g.Dispatch("mouseover"); got != 1 {
		t.Errorf("Dispatch(mouseover) = %d, want 1", got)
	}

	g.Off("mouseover")
	if len(doc.listeners) != 0 {
		t.Error("Off should drop empty listener entries")
	}
}

func TestDispatchUnboundEvent(t *testing.T) {
	doc := NewDocument("g")
	if got := doc.Root().Dispatch("click"); got != 0 {
		t.Errorf("Dispatch() = %d, want 0", got)
	}
}
