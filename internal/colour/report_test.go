package colour

import "testing"

func TestValidateFindsNoViolationsForGeneratedScheme(t *testing.T) {
	anchors := AnchorSet{
		Background: mustParseHex(t, "1d2021"),
		Foreground: mustParseHex(t, "ebdbb2"),
	}
	opts := DefaultSolverOptions()

	scheme, report, err := Generate(anchors, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	floors := Floors{Primary: opts.MinContrastPrimary, Extended: opts.MinContrastExtended}
	violations, err := Validate(scheme, anchors, floors)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	degraded := make(map[string]bool)
	for _, e := range report.Entries {
		degraded[e.Slot] = e.Degraded
	}
	for _, v := range violations {
		if !degraded[v.Slot] {
			t.Errorf("Validate reported violation for slot %s that Generate did not mark degraded", v.Slot)
		}
	}
}

func TestValidateRejectsIdenticalAnchors(t *testing.T) {
	grey := mustParseHex(t, "808080")
	scheme := Scheme{Palette: map[string]RGB{}}
	anchors := AnchorSet{Background: grey, Foreground: grey}

	_, err := Validate(scheme, anchors, Floors{Primary: 45, Extended: 60})
	if err == nil {
		t.Fatal("expected AnchorIdentical error")
	}
}
