package exporter

import (
	"strings"
	"testing"

	"github.com/jmylchreest/b24cam/internal/colour"
)

func testScheme() colour.Scheme {
	return colour.Scheme{
		Name:    "test",
		Author:  "tester",
		Variant: colour.VariantDark,
		Palette: map[string]colour.RGB{
			"base00": {R: 0x1d, G: 0x20, B: 0x21},
			"base08": {R: 0xfb, G: 0x49, B: 0x34},
		},
	}
}

func TestYAMLSerializeRoundTrip(t *testing.T) {
	scheme := testScheme()
	out, err := YAML{}.Serialize(scheme)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(string(out), "system: base24") {
		t.Errorf("yaml output missing system field: %s", out)
	}

	palette, err := YAML{}.Deserialize(out)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if palette["base00"] != "1d2021" {
		t.Errorf("base00 = %q, want 1d2021", palette["base00"])
	}
}

func TestJSONSerializeRoundTrip(t *testing.T) {
	scheme := testScheme()
	out, err := JSON{}.Serialize(scheme)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(string(out), `"system": "base24"`) {
		t.Errorf("json output missing system field: %s", out)
	}

	palette, err := JSON{}.Deserialize(out)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if palette["base08"] != "fb4934" {
		t.Errorf("base08 = %q, want fb4934", palette["base08"])
	}
}
