package colour

import (
	"math"
	"testing"
)

func TestSolveSlotMeetsFloorWhenFeasible(t *testing.T) {
	anchors := AnchorSet{
		Background: mustParseHex(t, "000000"),
		Foreground: mustParseHex(t, "ffffff"),
	}
	slot := AccentSlot{Index: 0, TargetHue: 25, MinContrast: 45, ContrastAgainst: ContrastAgainstTheme}

	result := solveSlot(slot, anchors, DefaultSolverOptions())
	if result.Infeasible {
		t.Fatal("slot against black/white anchors should be feasible")
	}
	if math.Abs(result.Lc) < slot.MinContrast && !result.Degraded {
		t.Errorf("|Lc|=%v below floor %v but not flagged degraded", result.Lc, slot.MinContrast)
	}
	if !result.Colour.InGamut() {
		t.Errorf("solved colour %+v is out of gamut", result.Colour)
	}
}

func TestSolveSlotInfeasibleWhenFloorUnreachable(t *testing.T) {
	anchors := AnchorSet{
		Background: mustParseHex(t, "808080"),
		Foreground: mustParseHex(t, "828282"),
	}
	// An unreasonably high floor against a mid-grey anchor cannot be met
	// anywhere in the achromatic range, let alone with added colourfulness.
	slot := AccentSlot{Index: 0, TargetHue: 25, MinContrast: 1000, ContrastAgainst: ContrastAgainstTheme}

	result := solveSlot(slot, anchors, DefaultSolverOptions())
	if !result.Infeasible {
		t.Fatal("expected ContrastInfeasible result for an unreachable floor")
	}
	if !result.Degraded {
		t.Error("an infeasible slot must also be reported as degraded")
	}
}

func TestSolveSlotIsDeterministic(t *testing.T) {
	anchors := AnchorSet{
		Background: mustParseHex(t, "1d2021"),
		Foreground: mustParseHex(t, "ebdbb2"),
	}
	slot := AccentSlot{Index: 2, TargetHue: 90, MinContrast: 45, ContrastAgainst: ContrastAgainstTheme}
	opts := DefaultSolverOptions()

	a := solveSlot(slot, anchors, opts)
	b := solveSlot(slot, anchors, opts)
	if a.Colour != b.Colour {
		t.Errorf("solveSlot not deterministic: %+v != %+v", a.Colour, b.Colour)
	}
}
