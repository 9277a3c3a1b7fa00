package colour

import "math"

// Correlates holds the three CAM16-HF perceptual correlates the solver and
// assembler operate on (§3): J' (HK-corrected lightness, 0..100), M
// (colorfulness, ≥0), h (hue angle in degrees, [0,360)).
type Correlates struct {
	JPrime float64
	M      float64
	H      float64
}

// HKModel configures the Helmholtz–Kohlrausch correction (§4.2, §9). Zero
// value is invalid; use DefaultHKModel().
type HKModel struct {
	Strength float64 // s_HK
	Exponent float64 // p
}

// DefaultHKModel returns the spec default (s_HK=0.25, p=1).
func DefaultHKModel() HKModel {
	return HKModel{Strength: hkDefaultStrength, Exponent: hkDefaultExponent}
}

// hkTerm computes s_HK · M · |cos(h−90°)|^p, the additive HK correction in
// J-units, for the given colourfulness and hue in degrees.
func (hk HKModel) hkTerm(m, hDeg float64) float64 {
	rad := (hDeg - 90.0) * math.Pi / 180.0
	return hk.Strength * m * math.Pow(math.Abs(math.Cos(rad)), hk.Exponent)
}

// postAdaptationNonlinearity is the Hellwig–Fairchild post-adaptation
// compression, identical in shape to standard CAM16's (grounded on the
// retrieved gio-eui/md3-colors hct.Cam16FromXyzInViewingConditions) but with
// the +0.1 offset the Hellwig & Fairchild (2022) variant adds to keep
// post-adaptation values positive near black.
func postAdaptationNonlinearity(discounted, fl float64) float64 {
	af := math.Pow(fl*math.Abs(discounted)/100.0, 0.42)
	return signum(discounted)*400.0*af/(af+27.13) + 0.1
}

// invertPostAdaptationNonlinearity inverts postAdaptationNonlinearity,
// solving for the discounted cone response given the post-adaptation value.
func invertPostAdaptationNonlinearity(value, fl float64) float64 {
	y := value - 0.1
	if y == 0 {
		return 0
	}
	abs := math.Abs(y)
	if abs >= 400 {
		abs = 400 - 1e-9 // numerically unreachable in practice; avoid a pole
	}
	base := 27.13 * abs / (400.0 - abs)
	return signum(y) * 100.0 / fl * math.Pow(base, 1.0/0.42)
}

func signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ToCAM16HF converts a linear-light sRGB colour to its CAM16-HF correlates
// under the fixed viewing conditions (§4.2). Singularities at M≈0 resolve to
// h=0, matching §4.2's documented design choice.
func (c Linear) ToCAM16HF(hk HKModel) Correlates {
	x, y, z := linearSRGBtoXYZ(c.R, c.G, c.B)
	rT, gT, bT := applyMatrix(cat16Forward, x, y, z)

	vc := defaultViewing
	ra := postAdaptationNonlinearity(vc.rgbD[0]*rT, vc.fl)
	ga := postAdaptationNonlinearity(vc.rgbD[1]*gT, vc.fl)
	ba := postAdaptationNonlinearity(vc.rgbD[2]*bT, vc.fl)

	a := (11.0*ra - 12.0*ga + ba) / 11.0
	b := (ra + ga - 2.0*ba) / 9.0

	h := math.Atan2(b, a) * 180.0 / math.Pi
	if h < 0 {
		h += 360
	} else if h >= 360 {
		h -= 360
	}

	achromatic := 2*ra + ga + 0.05*ba - 0.305 + 0.3
	j := 100.0 * (achromatic / vc.aw)

	hueRad := h * math.Pi / 180.0
	et := 0.25 * (math.Cos(hueRad+2.0) + 3.8)
	m := 43.0 * surroundNc * et * math.Hypot(a, b)
	if m < 1e-9 {
		// Achromatic: hue is arbitrary by §4.2 design choice.
		h = 0
		m = 0
	}

	return Correlates{JPrime: j + hk.hkTerm(m, h), M: m, H: h}
}

// FromCAM16HF inverts ToCAM16HF: given (J', M, h), recovers linear-light
// sRGB. Because J' embeds an HK term that itself depends on M and h, the
// inverse is closed-form (§4.2): subtract the HK term first to recover J.
func FromCAM16HF(c Correlates, hk HKModel) Linear {
	vc := defaultViewing

	j := c.JPrime - hk.hkTerm(c.M, c.H)
	achromatic := (j / 100.0) * vc.aw

	hueRad := c.H * math.Pi / 180.0
	et := 0.25 * (math.Cos(hueRad+2.0) + 3.8)
	radius := 0.0
	if et > 0 {
		radius = c.M / (43.0 * surroundNc * et)
	}
	a := radius * math.Cos(hueRad)
	b := radius * math.Sin(hueRad)

	// Solve the 3x3 linear system relating (a, b, achromatic) back to the
	// post-adaptation responses (Ra, Ga, Ba):
	//   11a = 11Ra - 12Ga + Ba
	//    9b = Ra + Ga - 2Ba
	//   achromatic + 0.005 = 2Ra + Ga + 0.05Ba
	ra, ga, ba := solve3x3(
		[3][3]float64{
			{11, -12, 1},
			{1, 1, -2},
			{2, 1, 0.05},
		},
		[3]float64{11 * a, 9 * b, achromatic + 0.005},
	)

	rd := invertPostAdaptationNonlinearity(ra, vc.fl)
	gd := invertPostAdaptationNonlinearity(ga, vc.fl)
	bd := invertPostAdaptationNonlinearity(ba, vc.fl)

	rRaw := rd / vc.rgbD[0]
	gRaw := gd / vc.rgbD[1]
	bRaw := bd / vc.rgbD[2]

	x, y, z := applyMatrix(cat16Inverse, rRaw, gRaw, bRaw)
	r, g, bl := xyzToLinearSRGB(x, y, z)
	return Linear{R: r, G: g, B: bl}
}

// linearSRGBToXYZMatrix / xyzToLinearSRGBMatrix are the standard IEC
// 61966-2-1 sRGB primaries matrices, relative to the D65 white used
// throughout this package.
var linearSRGBToXYZMatrix = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

var xyzToLinearSRGBMatrix = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

func linearSRGBtoXYZ(r, g, b float64) (x, y, z float64) {
	x, y, z = applyMatrix(linearSRGBToXYZMatrix, r, g, b)
	return x * 100, y * 100, z * 100
}

func xyzToLinearSRGB(x, y, z float64) (r, g, b float64) {
	return applyMatrix(xyzToLinearSRGBMatrix, x/100.0, y/100.0, z/100.0)
}

// solve3x3 solves m·x = v for x using Cramer's rule (a handful of
// multiplications beats pulling in a matrix library for one 3x3 system).
func solve3x3(m [3][3]float64, v [3]float64) (x, y, z float64) {
	det := det3(m)
	if det == 0 {
		return 0, 0, 0
	}
	mx := m
	mx[0][0], mx[1][0], mx[2][0] = v[0], v[1], v[2]
	my := m
	my[0][1], my[1][1], my[2][1] = v[0], v[1], v[2]
	mz := m
	mz[0][2], mz[1][2], mz[2][2] = v[0], v[1], v[2]
	return det3(mx) / det, det3(my) / det, det3(mz) / det
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
