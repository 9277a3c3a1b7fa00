package colour

import "math"

// Accent solver constants (§4.5). COBYLA itself is not reimplemented here —
// per §9's explicitly sanctioned fallback, the solver instead composes the
// gamut mapper's bisection (§4.4) with a 1D line-search over J' and a
// shrinking-step coordinate search, which is gradient-free, deterministic,
// and needs no external optimisation dependency.
const (
	solverJMin              = 5.0
	solverJMax              = 95.0
	solverInitialStep       = 10.0
	solverTerminalStep      = 1e-4
	solverMaxIterations     = 200
	solverBisectionIters    = 40
	solverCostEpsilon       = 1e-9
	solverContrastTolerance = 1e-6
)

// SlotResult is the per-slot outcome the assembler and SolverReport read
// (§6 SolverReport, §4.5 infeasibility policy).
type SlotResult struct {
	Slot       AccentSlot
	Correlates Correlates
	Colour     Linear
	Lc         float64
	Degraded   bool
	Infeasible bool
}

// solveSlot runs the constrained optimisation for one accent slot (§4.5).
func solveSlot(slot AccentSlot, anchors AnchorSet, opts SolverOptions) SlotResult {
	hk := opts.HK
	h := slot.TargetHue
	anchor := anchors.contrastAnchor(slot.ContrastAgainst)
	floor := slot.MinContrast

	seedJ := clampJ(opts.TargetJ)
	seedState, seedOK := evaluateSlotState(seedJ, h, anchor, floor, opts, hk)

	if !seedOK {
		nearestJ, feasible := findNearestFeasibleJ(seedJ, h, anchor, floor, hk)
		if !feasible {
			return infeasibleSlotResult(slot, h, anchor, hk)
		}
		state, ok := evaluateSlotState(nearestJ, h, anchor, floor, opts, hk)
		if !ok {
			return infeasibleSlotResult(slot, h, anchor, hk)
		}
		seedState = state
	}

	best := seedState
	step := solverInitialStep
	for iter := 0; iter < solverMaxIterations && step > solverTerminalStep; iter++ {
		improved := false
		for _, candidateJ := range [...]float64{best.j + step, best.j - step} {
			candidateJ = clampJ(candidateJ)
			if candidateJ == best.j {
				continue
			}
			state, ok := evaluateSlotState(candidateJ, h, anchor, floor, opts, hk)
			if ok && state.cost < best.cost-solverCostEpsilon {
				best = state
				improved = true
			}
		}
		if !improved {
			step *= 0.5
		}
	}

	degraded := math.Abs(best.lc) < floor-solverContrastTolerance
	return SlotResult{
		Slot:       slot,
		Correlates: Correlates{JPrime: best.j, M: best.m, H: h},
		Colour:     best.colour,
		Lc:         best.lc,
		Degraded:   degraded,
	}
}

// slotState is one evaluated (J', M) candidate for a slot.
type slotState struct {
	j, m   float64
	colour Linear
	lc     float64
	cost   float64
}

// evaluateSlotState computes the best achievable M at a given J' (the
// gamut-capped target_M, bisected down if needed to satisfy the contrast
// floor) and reports whether the contrast constraint is satisfiable at all
// at that J'.
func evaluateSlotState(j, h float64, anchor Linear, floor float64, opts SolverOptions, hk HKModel) (slotState, bool) {
	gm := MapToGamut(j, h, hk)
	mMax := gm.M
	j = gm.JPrime // may have been clamped to the nearest in-gamut achromatic lightness

	m := math.Min(opts.TargetM, mMax)
	colour := FromCAM16HF(Correlates{JPrime: j, M: m, H: h}, hk)
	lc := APCA(colour, anchor)

	if math.Abs(lc) < floor {
		// The gamut-capped M misses the floor. If even M=0 misses it, this
		// J' is infeasible; otherwise bisect M down to the largest value
		// that still satisfies the floor.
		zero := FromCAM16HF(Correlates{JPrime: j, M: 0, H: h}, hk)
		if math.Abs(APCA(zero, anchor)) < floor {
			return slotState{}, false
		}
		m = bisectMForContrast(j, h, anchor, floor, mMax, hk)
		colour = FromCAM16HF(Correlates{JPrime: j, M: m, H: h}, hk)
		lc = APCA(colour, anchor)
	}

	return slotState{
		j: j, m: m,
		colour: colour,
		lc:     lc,
		cost:   solverCost(j, m, opts),
	}, true
}

func solverCost(j, m float64, opts SolverOptions) float64 {
	targetJ := opts.TargetJ
	if targetJ == 0 {
		targetJ = solverCostEpsilon
	}
	targetM := opts.TargetM
	if targetM == 0 {
		targetM = solverCostEpsilon
	}
	dj := (j - opts.TargetJ) / targetJ
	dm := (targetM - m) / targetM
	return opts.JWeight*dj*dj + (1-opts.JWeight)*dm*dm
}

// bisectMForContrast finds the largest M in [0, mMax] for which |APCA| still
// meets the floor, assuming (as is typical for this cost surface) that
// contrast is non-increasing as M grows away from the achromatic point that
// was already verified feasible.
func bisectMForContrast(j, h float64, anchor Linear, floor, mMax float64, hk HKModel) float64 {
	lo, hi := 0.0, mMax
	best := 0.0
	for i := 0; i < solverBisectionIters && hi-lo > gamutTolM; i++ {
		mid := (lo + hi) / 2
		c := FromCAM16HF(Correlates{JPrime: j, M: mid, H: h}, hk)
		if math.Abs(APCA(c, anchor)) >= floor {
			lo = mid
			best = mid
		} else {
			hi = mid
		}
	}
	return best
}

// findNearestFeasibleJ implements §4.5's seeding fallback: a 1D search
// along J' at M=0 for the lightness nearest to the seed that meets the
// contrast floor. Relative luminance at M=0 is monotonic in J', so the
// feasible region splits into a "darker than anchor" run and a "lighter
// than anchor" run; each is found by bisection and the nearer one wins.
func findNearestFeasibleJ(seed, h float64, anchor Linear, floor float64, hk HKModel) (float64, bool) {
	anchorJ := anchor.ToCAM16HF(DefaultHKModel()).JPrime
	anchorJ = clampJ(anchorJ)

	contrastAt := func(j float64) float64 {
		c := FromCAM16HF(Correlates{JPrime: j, M: 0, H: h}, hk)
		return APCA(c, anchor)
	}

	darkJ, darkOK := bisectDarkThreshold(anchorJ, h, floor, contrastAt)
	lightJ, lightOK := bisectLightThreshold(anchorJ, h, floor, contrastAt)

	switch {
	case darkOK && lightOK:
		if math.Abs(darkJ-seed) <= math.Abs(lightJ-seed) {
			return darkJ, true
		}
		return lightJ, true
	case darkOK:
		return darkJ, true
	case lightOK:
		return lightJ, true
	default:
		return 0, false
	}
}

// bisectDarkThreshold finds the largest J' <= anchorJ (i.e. nearest the
// anchor from below) at which |APCA| still meets the floor.
func bisectDarkThreshold(anchorJ, _ float64, floor float64, contrastAt func(float64) float64) (float64, bool) {
	if math.Abs(contrastAt(solverJMin)) < floor {
		return 0, false
	}
	lo, hi := solverJMin, anchorJ
	best := lo
	for i := 0; i < solverBisectionIters && hi-lo > gamutTolM; i++ {
		mid := (lo + hi) / 2
		if math.Abs(contrastAt(mid)) >= floor {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}
	return best, true
}

// bisectLightThreshold finds the smallest J' >= anchorJ at which |APCA|
// still meets the floor.
func bisectLightThreshold(anchorJ, _ float64, floor float64, contrastAt func(float64) float64) (float64, bool) {
	if math.Abs(contrastAt(solverJMax)) < floor {
		return 0, false
	}
	lo, hi := anchorJ, solverJMax
	best := hi
	for i := 0; i < solverBisectionIters && hi-lo > gamutTolM; i++ {
		mid := (lo + hi) / 2
		if math.Abs(contrastAt(mid)) >= floor {
			best = mid
			hi = mid
		} else {
			lo = mid
		}
	}
	return best, true
}

// infeasibleSlotResult implements §4.5/§7's ContrastInfeasible policy: when
// no J' at M=0 meets the floor, return whichever extreme achieves the
// largest |Lc|, flagged both infeasible and degraded.
func infeasibleSlotResult(slot AccentSlot, h float64, anchor Linear, hk HKModel) SlotResult {
	low := FromCAM16HF(Correlates{JPrime: solverJMin, M: 0, H: h}, hk)
	high := FromCAM16HF(Correlates{JPrime: solverJMax, M: 0, H: h}, hk)
	lowLc, highLc := APCA(low, anchor), APCA(high, anchor)

	j, colour, lc := solverJMin, low, lowLc
	if math.Abs(highLc) > math.Abs(lowLc) {
		j, colour, lc = solverJMax, high, highLc
	}

	return SlotResult{
		Slot:       slot,
		Correlates: Correlates{JPrime: j, M: 0, H: h},
		Colour:     colour,
		Lc:         lc,
		Degraded:   true,
		Infeasible: true,
	}
}

func clampJ(j float64) float64 {
	if j < solverJMin {
		return solverJMin
	}
	if j > solverJMax {
		return solverJMax
	}
	return j
}
