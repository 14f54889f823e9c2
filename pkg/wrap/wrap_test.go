package wrap

import (
	"strings"
	"testing"
)

func TestApplyWrapsAtWidth(t *testing.T) {
	o := Options{Width: 10, Indent: NoIndent(), Trim: true}
	got := o.Apply("check the inventory before shipping")

	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("Apply() = %q, want at least 3 lines", got)
	}
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q longer than width 10", l)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "check the inventory before shipping" {
		t.Errorf("Apply() lost words: %q", got)
	}
}

func TestApplyDefaultIndent(t *testing.T) {
	got := Options{Width: 5}.Apply("one two")
	for _, l := range strings.Split(got, "\n") {
		if !strings.HasPrefix(l, DefaultIndent) {
			t.Errorf("line %q missing default indent", l)
		}
	}
}

func TestApplyShortLabelUnchanged(t *testing.T) {
	got := Options{Indent: NoIndent()}.Apply("Start")
	if got != "Start" {
		t.Errorf("Apply() = %q, want Start", got)
	}
}

func TestApplyCustomNewline(t *testing.T) {
	got := Options{Width: 3, Indent: NoIndent(), Newline: "|", Trim: true}.Apply("aa bb")
	if strings.Contains(got, "\n") {
		t.Errorf("Apply() = %q, want newline replaced", got)
	}
	if !strings.Contains(got, "|") {
		t.Errorf("Apply() = %q, want | separator", got)
	}
}

func TestApplyCut(t *testing.T) {
	long := "abcdefghijklmnop"

	kept := Options{Width: 4, Indent: NoIndent()}.Apply(long)
	if kept != long {
		t.Errorf("without Cut, long word should overflow intact: %q", kept)
	}

	cut := Options{Width: 4, Indent: NoIndent(), Cut: true}.Apply(long)
	for _, l := range strings.Split(cut, "\n") {
		if len(l) > 4 {
			t.Errorf("Cut line %q longer than 4", l)
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	if got := (Options{}).Apply(""); got != "" {
		t.Errorf("Apply(\"\") = %q, want empty", got)
	}
}
