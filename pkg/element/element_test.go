package element

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/style"
	"github.com/matzehuels/flowchart/pkg/surface"
)

func TestCreateAndGet(t *testing.T) {
	r := NewRegistry()
	e, err := r.Create("A", Options{Label: "Start", Shape: style.Shape{Fill: "red"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, ok := r.Get("A")
	if !ok || got != e {
		t.Fatalf("Get(A) = %v, %v; want created element", got, ok)
	}
	if e.ID() != "A" || e.Label() != "Start" {
		t.Errorf("ID/Label = %q/%q", e.ID(), e.Label())
	}
	if e.Options().Shape.Fill != "red" {
		t.Errorf("Options().Shape.Fill = %q, want red", e.Options().Shape.Fill)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
}

func TestLabelFallsBackToID(t *testing.T) {
	r := NewRegistry()
	e, _ := r.Create("node-1", Options{})
	if e.Label() != "node-1" {
		t.Errorf("Label() = %q, want node-1", e.Label())
	}
}

func TestCreateDuplicateRejected(t *testing.T) {
	r := NewRegistry()
	first, err := r.Create("X", Options{Label: "first"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = r.Create("X", Options{Label: "second"})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Fatalf("second Create error = %v, want DUPLICATE_ID", err)
	}
	if got, _ := r.Get("X"); got != first {
		t.Error("duplicate Create replaced the registered element")
	}
}

func TestCreateInvalidID(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("", Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Create(\"\") error = %v, want INVALID_INPUT", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestEdgesAndListenersChain(t *testing.T) {
	r := NewRegistry()
	e, _ := r.Create("A", Options{})

	e.AddEdge("B", EdgeOptions{Label: "go"}).
		AddEdge("B", EdgeOptions{}).
		AddEdge("ghost", EdgeOptions{})

	want := []Edge{
		{Target: "B", Options: EdgeOptions{Label: "go"}},
		{Target: "B"},
		{Target: "ghost"},
	}
	if diff := cmp.Diff(want, e.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}

	noop := func(string, *surface.Event) {}
	e.AddListener("click", noop).AddListener("click", noop).AddListener("mouseover", noop).AddListener("click", nil)
	ls := e.Listeners()
	if len(ls) != 3 {
		t.Fatalf("len(Listeners()) = %d, want 3", len(ls))
	}
	for i, ev := range []string{"click", "click", "mouseover"} {
		if ls[i].Event != ev {
			t.Errorf("Listeners()[%d].Event = %q, want %q", i, ls[i].Event, ev)
		}
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	r := NewRegistry()
	e, _ := r.Create("A", Options{})
	e.AddEdge("B", EdgeOptions{})

	edges := e.Edges()
	edges[0].Target = "Z"
	if e.Edges()[0].Target != "B" {
		t.Error("mutating Edges() result changed the element")
	}
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	e, _ := r.Create("A", Options{})

	e.Unregister()
	if _, ok := r.Get("A"); ok {
		t.Fatal("A still registered after Unregister")
	}
	e.Unregister() // idempotent

	replacement, err := r.Create("A", Options{})
	if err != nil {
		t.Fatalf("re-Create after Unregister: %v", err)
	}
	e.Unregister()
	if got, ok := r.Get("A"); !ok || got != replacement {
		t.Error("stale Unregister removed the replacement element")
	}
}

func TestUnregisterDoesNotCascade(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Create("A", Options{})
	b, _ := r.Create("B", Options{})
	a.AddEdge("B", EdgeOptions{})

	b.Unregister()
	if len(a.Edges()) != 1 {
		t.Error("Unregister of target removed the source's edge")
	}
}

func TestIDsSorted(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		if _, err := r.Create(id, Options{}); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, r.IDs()); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegistryConcurrentCreate(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Create("shared", Options{}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if created != 1 {
		t.Errorf("%d concurrent creates succeeded, want exactly 1", created)
	}
}
