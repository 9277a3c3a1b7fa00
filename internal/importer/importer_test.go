package importer

import "testing"

func TestHexCSSParseHex(t *testing.T) {
	p := HexCSS{}
	cases := []string{"#1d2021", "1d2021"}
	for _, in := range cases {
		lin, err := p.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := lin.ToRGB8().Hex(); got != "1d2021" {
			t.Errorf("Parse(%q) = %q, want 1d2021", in, got)
		}
	}
}

func TestHexCSSParseShortHex(t *testing.T) {
	p := HexCSS{}
	lin, err := p.Parse("#fff")
	if err != nil {
		t.Fatalf("Parse(#fff): %v", err)
	}
	if got := lin.ToRGB8().Hex(); got != "ffffff" {
		t.Errorf("Parse(#fff) = %q, want ffffff", got)
	}
}

func TestHexCSSParseRGBFunc(t *testing.T) {
	p := HexCSS{}
	lin, err := p.Parse("rgb(29, 32, 33)")
	if err != nil {
		t.Fatalf("Parse(rgb()): %v", err)
	}
	if got := lin.ToRGB8().Hex(); got != "1d2021" {
		t.Errorf("Parse(rgb()) = %q, want 1d2021", got)
	}
}

func TestHexCSSParseHSLFunc(t *testing.T) {
	p := HexCSS{}
	lin, err := p.Parse("hsl(0, 0%, 100%)")
	if err != nil {
		t.Fatalf("Parse(hsl()): %v", err)
	}
	if got := lin.ToRGB8().Hex(); got != "ffffff" {
		t.Errorf("Parse(hsl(0,0%%,100%%)) = %q, want ffffff", got)
	}
}

func TestHexCSSRejectsGarbage(t *testing.T) {
	p := HexCSS{}
	if _, err := p.Parse("not-a-colour"); err == nil {
		t.Error("expected a ParseError for garbage input")
	}
}
