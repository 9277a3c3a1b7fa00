package colour

import "math"

// Floors is the pair of contrast floors `validate` checks against (§6):
// the primary floor for base08..base0F, the extended floor for
// base10..base17.
type Floors struct {
	Primary  float64
	Extended float64
}

// Violation records one slot whose APCA contrast fell short of its floor
// (§6 `validate`, §8 Solver contract).
type Violation struct {
	Slot       string
	ActualLc   float64
	RequiredLc float64
}

// Validate is the package's `validate` entry point (§6): it recomputes APCA
// for every accent slot directly from the scheme's stored colours, rather
// than trusting a SolverReport, and reports every slot under its floor.
func Validate(scheme Scheme, anchors AnchorSet, floors Floors) ([]Violation, error) {
	if err := anchors.checkDistinct(); err != nil {
		return nil, err
	}

	var violations []Violation
	for i := 0; i < 16; i++ {
		name := accentSlotName(i)
		rgb, ok := scheme.Palette[name]
		if !ok {
			continue
		}
		floor := floors.Primary
		if i >= 8 {
			floor = floors.Extended
		}
		anchor := anchors.contrastAnchor(ContrastAgainstTheme)
		lc := APCA(FromRGB8(rgb), anchor)
		if math.Abs(lc) < floor {
			violations = append(violations, Violation{
				Slot:       name,
				ActualLc:   lc,
				RequiredLc: floor,
			})
		}
	}
	return violations, nil
}
