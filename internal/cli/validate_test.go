package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunValidate(t *testing.T) {
	good := writeDefinition(t, "good.toml", sampleTOML)
	dup := writeDefinition(t, "dup.json", `{"elements": [{"id": "A"}, {"id": "A"}]}`)
	style := writeDefinition(t, "style.json", `{"elements": [{"id": "A", "shape": {"glow": "1"}}]}`)
	syntax := writeDefinition(t, "syntax.toml", `elements = [`)

	tests := []struct {
		name     string
		paths    []string
		wantErr  bool
		contains []string
	}{
		{"valid", []string{good}, false, []string{iconSuccess, "2 nodes", "1 edges", "1 actions"}},
		{"duplicate id", []string{dup}, true, []string{iconError, "declared twice"}},
		{"unknown style", []string{style}, true, []string{iconError, "glow"}},
		{"syntax error", []string{syntax}, true, []string{iconError}},
		{"mixed", []string{good, dup}, true, []string{iconSuccess, iconError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runValidate(&buf, tt.paths)
			if (err != nil) != tt.wantErr {
				t.Fatalf("runValidate() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("output %q should contain %q", buf.String(), s)
				}
			}
		})
	}
}
