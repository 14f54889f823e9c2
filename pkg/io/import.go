package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flowchart/pkg/errors"
)

// Supported definition file extensions.
const (
	ExtJSON = ".json"
	ExtTOML = ".toml"
)

// ReadJSON decodes a JSON chart definition from r.
//
// Unknown fields are rejected so that misspelt keys do not silently drop
// styles or edges. ReadJSON checks syntax only; call [Definition.Validate]
// or [Definition.Build] to check the content. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Definition, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON definition")
	}
	return &def, nil
}

// ReadTOML decodes a TOML chart definition from r.
//
// Keys that do not map onto a definition field are rejected. ReadTOML does
// not close r.
func ReadTOML(r io.Reader) (*Definition, error) {
	var def Definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML definition")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown key %q in TOML definition", undecoded[0].String())
	}
	return &def, nil
}

// Import reads the definition file at path, choosing the decoder by extension.
// The definition name defaults to the file's base name without extension.
func Import(path string) (*Definition, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var read func(io.Reader) (*Definition, error)
	switch ext {
	case ExtJSON:
		read = ReadJSON
	case ExtTOML:
		read = ReadTOML
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition file %q (want .json or .toml)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	def, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}

// IsDefinitionFile reports whether path has a supported extension.
func IsDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON, ExtTOML:
		return true
	}
	return false
}
