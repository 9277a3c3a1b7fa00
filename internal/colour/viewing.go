package colour

import "math"

// Viewing conditions are process-wide immutable constants (§3, §5). If they
// are ever made runtime-configurable they must become part of the cache key
// for any memoization (§9) — there is none today.

// Reference white (D65), CIE 1931 XYZ scaled to Y=100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// Average surround (§3).
const (
	surroundC  = 0.69
	surroundNc = 1.0
	surroundF  = 1.0
)

// adaptingLuminance is L_A = (64/π)·0.2 (§3).
var adaptingLuminance = 64.0 / math.Pi * 0.2

// backgroundLuminanceFactor is Y_b (§3).
const backgroundLuminanceFactor = 20.0

// cat16Forward is the CAT16 XYZ→RGB (cone response) matrix, shared by CAM16
// and the Hellwig–Fairchild variant. Grounded on the retrieved
// gio-eui/md3-colors hct.Cam16FromXyzInViewingConditions matrix.
var cat16Forward = [3][3]float64{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

// cat16Inverse is the inverse of cat16Forward (RGB cone response → XYZ).
var cat16Inverse = [3][3]float64{
	{1.8620678, -1.0112547, 0.14918678},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.01584150, -0.03412294, 1.0499644},
}

// hkDefaults are the default Helmholtz–Kohlrausch coefficients (§4.2, §9):
// s_HK the correction strength, p the exponent on the hue term.
const (
	hkDefaultStrength = 0.25
	hkDefaultExponent = 1.0
)

// viewingConditions bundles every derived constant the CAM16-HF forward and
// inverse transforms need, computed once from the fixed constants above.
type viewingConditions struct {
	rgbD [3]float64 // per-channel chromatic adaptation (discounting) factors
	fl   float64    // luminance-level adaptation factor
	nbb  float64    // background induction factor
	aw   float64    // achromatic response of the reference white
}

// defaultViewing holds the single, process-wide viewing condition instance
// (§3, §5: no runtime configurability).
var defaultViewing = newViewingConditions()

func newViewingConditions() viewingConditions {
	n := backgroundLuminanceFactor / whiteY
	k := 1.0 / (5.0*adaptingLuminance + 1.0)
	k4 := k * k * k * k
	fl := 0.2*k4*(5.0*adaptingLuminance) + 0.1*(1-k4)*(1-k4)*math.Cbrt(5.0*adaptingLuminance)
	nbb := 0.725 * math.Pow(1.0/n, 0.2)

	// Degree of chromatic adaptation. HF computes D from the surround
	// exactly as standard CAM16 does, but — per spec §3 — does not clamp
	// it to 1.
	d := surroundF * (1.0 - (1.0/3.6)*math.Exp((-adaptingLuminance-42.0)/92.0))

	rw, gw, bw := applyMatrix(cat16Forward, whiteX, whiteY, whiteZ)
	rgbD := [3]float64{
		d*(whiteY/rw) + 1 - d,
		d*(whiteY/gw) + 1 - d,
		d*(whiteY/bw) + 1 - d,
	}

	vc := viewingConditions{rgbD: rgbD, fl: fl, nbb: nbb}
	vc.aw = achromaticResponse(rw, gw, bw, vc)
	return vc
}

func applyMatrix(m [3][3]float64, x, y, z float64) (a, b, c float64) {
	a = m[0][0]*x + m[0][1]*y + m[0][2]*z
	b = m[1][0]*x + m[1][1]*y + m[1][2]*z
	c = m[2][0]*x + m[2][1]*y + m[2][2]*z
	return
}

// achromaticResponse runs the discount → post-adaptation nonlinearity →
// achromatic-response chain (§4.2) for a raw (undiscounted) cone triple.
func achromaticResponse(r, g, b float64, vc viewingConditions) float64 {
	ra := postAdaptationNonlinearity(vc.rgbD[0]*r, vc.fl)
	ga := postAdaptationNonlinearity(vc.rgbD[1]*g, vc.fl)
	ba := postAdaptationNonlinearity(vc.rgbD[2]*b, vc.fl)
	return 2*ra + ga + 0.05*ba - 0.305 + 0.3
}
