package colour

import "math"

// Polarity selects which APCA contrast formula applies (§4.3): whether the
// anchor the accent is tested against sits in front of (bg) or behind
// (fg-as-bg) the evaluated colour. §3 AccentSlot.ContrastAgainst carries
// this as Background/Foreground; Polarity here is the lower-level "is the
// evaluated colour darker or lighter than the reference" distinction APCA
// itself uses.
type Polarity int

const (
	// PolarityNormal: text darker than background (the common case).
	PolarityNormal Polarity = iota
	// PolarityReverse: text lighter than background.
	PolarityReverse
)

const (
	apcaLuminanceFloor = 0.022
	apcaDeltaEpsilon   = 0.0005
	apcaNormalGamma    = 1.14
	apcaNormalTextExp  = 0.57
	apcaNormalBgExp    = 0.56
	apcaNormalSMin     = 0.1
	apcaNormalOffset   = 0.027
	apcaReverseGamma   = 1.14
	apcaReverseTextExp = 0.62
	apcaReverseBgExp   = 0.65
	apcaReverseSMax    = -0.1
	apcaReverseOffset  = 0.027
)

// apcaY computes APCA's soft-clamped luminance for a linear-light colour
// (§4.3 step 1–2). APCA's Y is defined on gamma-encoded sRGB channels, not
// linear light, so the colour is encoded first via encodeChannel before the
// 2.4 power is applied. Unlike WCAG relative luminance, very dark values are
// boosted rather than left near zero.
func apcaY(c Linear) float64 {
	clampChan := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	r, g, b := clampChan(encodeChannel(c.R)), clampChan(encodeChannel(c.G)), clampChan(encodeChannel(c.B))
	y := 0.2126*math.Pow(r, 2.4) + 0.7152*math.Pow(g, 2.4) + 0.0722*math.Pow(b, 2.4)
	if y < apcaLuminanceFloor {
		y += math.Pow(apcaLuminanceFloor-y, 1.414)
	}
	return y
}

// APCA computes the signed Lc contrast value between a text colour and a
// background colour (§4.3). Both colours are linear-light sRGB; the sign of
// the result follows §8's APCA polarity property: positive when the
// background is lighter than the text (normal polarity), negative when the
// text is lighter (reverse polarity).
func APCA(text, background Linear) float64 {
	yText := apcaY(text)
	yBg := apcaY(background)

	if math.Abs(yBg-yText) < apcaDeltaEpsilon {
		return 0
	}

	if yBg > yText {
		s := (math.Pow(yBg, apcaNormalBgExp) - math.Pow(yText, apcaNormalTextExp)) * apcaNormalGamma
		if s < apcaNormalSMin {
			return 0
		}
		return (s - apcaNormalOffset) * 100
	}

	s := (math.Pow(yBg, apcaReverseBgExp) - math.Pow(yText, apcaReverseTextExp)) * apcaReverseGamma
	if s > apcaReverseSMax {
		return 0
	}
	return (s + apcaReverseOffset) * 100
}
