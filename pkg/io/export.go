package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes a definition as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(def *Definition, w io.Writer) error {
	out := *def
	if out.Elements == nil {
		out.Elements = []ElementDef{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a definition to a JSON file at path.
func ExportJSON(def *Definition, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(def, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
