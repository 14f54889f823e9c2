package render

import (
	"bytes"
	"testing"

	"github.com/matzehuels/flowchart/pkg/errors"
)

func TestConvertSVGPassthrough(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	for _, format := range []string{"", FormatSVG} {
		got, err := Convert(svg, format, 0)
		if err != nil {
			t.Fatalf("Convert(%q) error: %v", format, err)
		}
		if !bytes.Equal(got, svg) {
			t.Errorf("Convert(%q) changed the input", format)
		}
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	_, err := Convert(nil, "gif", 0)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Convert(gif) error = %v, want INVALID_FORMAT", err)
	}
}
