package surface

// Listener handles a dispatched event.
type Listener func(ev *Event)

// Event is a simulated event travelling from its target up to the root.
type Event struct {
	Type          string
	Target        *Element // element the event was dispatched on
	CurrentTarget *Element // element whose listener is running

	stopped bool
}

// StopPropagation prevents the event from reaching further ancestors.
// Remaining listeners on the current element still run.
func (ev *Event) StopPropagation() { ev.stopped = true }

type binding struct {
	event string
	fn    Listener
}

// On binds fn to the named event. Binding the same event several times keeps
// every listener; they run in binding order.
func (e *Element) On(event string, fn Listener) *Element {
	if fn == nil {
		return e
	}
	e.doc.listeners[e.el] = append(e.doc.listeners[e.el], binding{event: event, fn: fn})
	return e
}

// Off removes every listener bound to the named event.
func (e *Element) Off(event string) *Element {
	bs := e.doc.listeners[e.el]
	kept := bs[:0]
	for _, b := range bs {
		if b.event != event {
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		delete(e.doc.listeners, e.el)
	} else {
		e.doc.listeners[e.el] = kept
	}
	return e
}

// ListenerCount returns how many listeners are bound to the named event on e
// itself. An empty event counts all of them.
func (e *Element) ListenerCount(event string) int {
	n := 0
	for _, b := range e.doc.listeners[e.el] {
		if event == "" || b.event == event {
			n++
		}
	}
	return n
}

// Dispatch fires an event of the given type at e and bubbles it to the root.
// It returns the number of listeners that ran.
func (e *Element) Dispatch(eventType string) int {
	ev := &Event{Type: eventType, Target: e}
	fired := 0
	for cur := e; cur != nil; cur = cur.Parent() {
		// Copy so listeners may bind or unbind while running.
		bs := append([]binding(nil), e.doc.listeners[cur.el]...)
		ev.CurrentTarget = cur
		for _, b := range bs {
			if b.event != eventType {
				continue
			}
			b.fn(ev)
			fired++
		}
		if ev.stopped {
			break
		}
	}
	return fired
}
