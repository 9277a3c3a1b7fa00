package colour

import "math"

// Gamut mapping constants (§4.4). Grounded on the bisection pattern in the
// retrieved SCKelemen-color gamut.go (mapPreserveLightness/mapPreserveChroma),
// adapted to CAM16-HF's (J', M, h) coordinates instead of OKLCH.
const (
	gamutMaxM           = 200.0
	gamutTolM           = 1e-4
	gamutBisectionIters = 64 // log2(200/1e-4) ≈ 21; generous headroom for determinism
)

// GamutResult is the outcome of mapping (J', h) to the maximum in-gamut M.
type GamutResult struct {
	JPrime float64
	M      float64
	Colour Linear
}

// MapToGamut finds the maximum colourfulness M at the given (J', h) that
// still lands inside the sRGB cube (§4.4). If even M=0 is out of gamut —
// J' itself is outside the displayable lightness range — it clamps J' to
// the nearest in-gamut achromatic lightness and returns M=0, guaranteeing
// the mapper always returns a displayable colour.
func MapToGamut(jPrime, h float64, hk HKModel) GamutResult {
	achromatic := FromCAM16HF(Correlates{JPrime: jPrime, M: 0, H: h}, hk)
	if !achromatic.InGamut() {
		clampedJ := clampAchromaticJPrime(jPrime, h, hk)
		return GamutResult{
			JPrime: clampedJ,
			M:      0,
			Colour: FromCAM16HF(Correlates{JPrime: clampedJ, M: 0, H: h}, hk),
		}
	}

	lo, hi := 0.0, gamutMaxM
	best := GamutResult{JPrime: jPrime, M: 0, Colour: achromatic}
	for i := 0; i < gamutBisectionIters && hi-lo > gamutTolM; i++ {
		mid := (lo + hi) / 2
		c := FromCAM16HF(Correlates{JPrime: jPrime, M: mid, H: h}, hk)
		if c.InGamut() {
			lo = mid
			best = GamutResult{JPrime: jPrime, M: mid, Colour: c}
		} else {
			hi = mid
		}
	}
	return best
}

// clampAchromaticJPrime finds the nearest in-gamut achromatic J' to a
// target that itself produced an out-of-gamut colour at M=0 (§4.4 edge
// case: "J' outside displayable range"). Mid-grey (J'=50) is always
// in-gamut, so bisecting between it and the target always converges; outJ
// tracks the out-of-gamut bound (starts at target) and inJ tracks the
// in-gamut bound (starts at midJ), and the loop always returns inJ — the
// in-gamut point closest to target — regardless of which side of midJ
// target falls on.
func clampAchromaticJPrime(target, h float64, hk HKModel) float64 {
	const midJ = 50.0
	outJ, inJ := target, midJ
	for i := 0; i < gamutBisectionIters && math.Abs(inJ-outJ) > gamutTolM; i++ {
		mid := (outJ + inJ) / 2
		c := FromCAM16HF(Correlates{JPrime: mid, M: 0, H: h}, hk)
		if c.InGamut() {
			inJ = mid
		} else {
			outJ = mid
		}
	}
	return inJ
}
