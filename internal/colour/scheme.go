package colour

import (
	"fmt"
	"runtime"
	"sync"
)

// neutralSteps is the number of base00..base07 ramp slots (§4.6).
const neutralSteps = 8

// schemeSlotOrder is the canonical Base24 key order (§6 output contract):
// base00..base0F, then base10..base17.
var schemeSlotOrder = buildSlotOrder()

func buildSlotOrder() []string {
	order := make([]string, 0, 24)
	for i := 0; i < neutralSteps; i++ {
		order = append(order, fmt.Sprintf("base0%d", i))
	}
	for i := 0; i < 16; i++ {
		order = append(order, accentSlotName(i))
	}
	return order
}

// Scheme is the fully assembled 24-slot Base24 palette (§3).
type Scheme struct {
	Name    string
	Author  string
	Variant Variant
	Palette map[string]RGB
}

// OrderedSlots returns the 24 slot names in canonical output order.
func (s Scheme) OrderedSlots() []string {
	return schemeSlotOrder
}

// ReportEntry is one slot's solver record (§6 SolverReport).
type ReportEntry struct {
	Slot     string
	JPrime   float64
	M        float64
	H        float64
	Lc       float64
	Degraded bool
}

// SolverReport attaches a per-slot accent record to a generated Scheme
// (§6). Only accent slots (base08..base17) are reported; neutrals have no
// contrast constraint to report against.
type SolverReport struct {
	Entries []ReportEntry
}

// Generate is the package's pure core entry point (§6 `generate`): produces
// a Scheme and its SolverReport from two anchor colours and a set of
// options. Errors are always one of the fatal *Error kinds from §7.
func Generate(anchors AnchorSet, opts SolverOptions) (Scheme, SolverReport, error) {
	if err := opts.Validate(); err != nil {
		return Scheme{}, SolverReport{}, err
	}
	if err := anchors.checkDistinct(); err != nil {
		return Scheme{}, SolverReport{}, err
	}

	neutrals := neutralRamp(anchors, opts)
	slots := opts.AccentSlots()
	results := solveSlotsConcurrently(slots, anchors, opts)

	palette := make(map[string]RGB, len(schemeSlotOrder))
	for i, c := range neutrals {
		palette[fmt.Sprintf("base0%d", i)] = c.ToRGB8()
	}

	report := SolverReport{Entries: make([]ReportEntry, len(results))}
	for i, r := range results {
		rgb := r.Colour.ToRGB8()
		palette[r.Slot.SlotName()] = rgb
		// Lc and Degraded describe the emitted 8-bit colour, so a slot that
		// rounding pushes under its floor is reported as degraded.
		displayedLc := APCA(FromRGB8(rgb), anchors.contrastAnchor(r.Slot.ContrastAgainst))
		report.Entries[i] = ReportEntry{
			Slot:     r.Slot.SlotName(),
			JPrime:   r.Correlates.JPrime,
			M:        r.Correlates.M,
			H:        r.Correlates.H,
			Lc:       displayedLc,
			Degraded: r.Degraded || absFloat(displayedLc) < r.Slot.MinContrast,
		}
	}

	scheme := Scheme{
		Variant: anchors.Variant(),
		Palette: palette,
	}
	return scheme, report, nil
}

// solveSlotsConcurrently bounds the optional parallel slot evaluation (§5)
// to GOMAXPROCS workers: each slot's solve is independent and pure, so
// results are reassembled by index rather than arrival order, keeping
// generation deterministic regardless of scheduling.
func solveSlotsConcurrently(slots []AccentSlot, anchors AnchorSet, opts SolverOptions) []SlotResult {
	results := make([]SlotResult, len(slots))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > len(slots) {
		workers = len(slots)
	}
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = solveSlot(slots[i], anchors, opts)
			}
		}()
	}
	for i := range slots {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// neutralRamp builds base00..base07 (§4.6): J' is interpolated linearly
// between the two anchors in 8 steps; at each step, M and h are taken from
// whichever anchor is closer in lightness, preserving that anchor's tint.
// The first and last steps are the anchors themselves exactly, satisfying
// §8's literal round-trip scenarios (base00=background, base07≈foreground).
func neutralRamp(anchors AnchorSet, opts SolverOptions) [neutralSteps]Linear {
	var ramp [neutralSteps]Linear
	ramp[0] = anchors.Background
	ramp[neutralSteps-1] = anchors.Foreground

	if opts.InterpolationSpace == InterpolationSRGB {
		for i := 1; i < neutralSteps-1; i++ {
			t := float64(i) / float64(neutralSteps-1)
			ramp[i] = lerpLinear(anchors.Background, anchors.Foreground, t)
		}
		return ramp
	}

	hk := opts.HK
	bg := anchors.Background.ToCAM16HF(hk)
	fg := anchors.Foreground.ToCAM16HF(hk)

	for i := 1; i < neutralSteps-1; i++ {
		t := float64(i) / float64(neutralSteps-1)
		targetJ := bg.JPrime + t*(fg.JPrime-bg.JPrime)

		tint := bg
		if absFloat(fg.JPrime-targetJ) < absFloat(bg.JPrime-targetJ) {
			tint = fg
		}

		gm := MapToGamut(targetJ, tint.H, hk)
		m := tint.M
		if m > gm.M {
			m = gm.M
		}
		ramp[i] = FromCAM16HF(Correlates{JPrime: gm.JPrime, M: m, H: tint.H}, hk)
	}
	return ramp
}

func lerpLinear(a, b Linear, t float64) Linear {
	return Linear{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
