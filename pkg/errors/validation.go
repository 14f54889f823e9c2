package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxIDLength bounds element identifiers.
const maxIDLength = 256

// ValidateElementID validates an element identifier.
//
// Identifiers end up as Graphviz labels and SVG title text, so the rules
// only reject what cannot survive that round trip:
//   - No empty identifiers
//   - No control characters (newlines included)
//   - Maximum length of 256 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "element id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element id %q contains control characters", id)
		}
	}

	return nil
}

// chartNameRegex matches chart names served by the preview server.
var chartNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateChartName validates a chart name taken from a URL or command line.
// Names map onto files in the chart directory, so they must be plain basenames.
func ValidateChartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "chart name cannot be empty")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "chart name cannot contain path traversal sequences (..)")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "chart name cannot contain path separators")
	}

	if !chartNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPath, "invalid chart name: %q", name)
	}

	return nil
}

// ValidatePath validates a file path relative to a served directory.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
