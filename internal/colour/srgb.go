// Package colour implements the perceptual colour engine behind b24cam: an
// sRGB/CAM16-HF codec, the APCA contrast algorithm, an sRGB gamut mapper,
// and the accent solver and scheme assembler that turn two anchor colours
// into a full Base24 palette.
package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/b24cam/internal/security"
)

// gamutTolerance is the slack applied when testing whether a linear RGB
// triple lies within the displayable [0,1] sRGB cube (§4.1, §8 Gamut closure).
const gamutTolerance = 1e-6

// RGB is an 8-bit display colour (gamma-encoded sRGB), the wire format used
// at the Base24 boundary.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as a lowercase 6-hex-digit string without a
// leading '#', matching the Base24 output contract (§6).
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the colour as "#rrggbb".
func (c RGB) String() string {
	return "#" + c.Hex()
}

// Linear is a colour in linear-light sRGB space, components in [0,1] for
// in-gamut colours (§3 Color (internal)). Components may transiently fall
// outside [0,1] while the gamut mapper searches; InGamut reports whether
// the triple is displayable.
type Linear struct {
	R, G, B float64
}

// encodeChannel applies the sRGB transfer function to a single linear-light
// channel (§4.1).
func encodeChannel(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1.0/2.4) - 0.055
}

// decodeChannel inverts encodeChannel, recovering linear light from a
// gamma-encoded sRGB channel (§4.1).
func decodeChannel(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// Encode converts the linear colour to gamma-encoded sRGB, components in
// [0,1] (not clamped — callers should check InGamut first, or rely on
// ToRGB8's clamping for display).
func (c Linear) Encode() (r, g, b float64) {
	return encodeChannel(c.R), encodeChannel(c.G), encodeChannel(c.B)
}

// FromRGB8 decodes an 8-bit display colour into linear light.
func FromRGB8(c RGB) Linear {
	return Linear{
		R: decodeChannel(float64(c.R) / 255.0),
		G: decodeChannel(float64(c.G) / 255.0),
		B: decodeChannel(float64(c.B) / 255.0),
	}
}

// InGamut reports whether every channel is within [0,1] to gamutTolerance,
// i.e. whether the linear colour is displayable in sRGB (§4.1, §8 Gamut
// closure).
func (c Linear) InGamut() bool {
	return inRange01(c.R) && inRange01(c.G) && inRange01(c.B)
}

func inRange01(v float64) bool {
	return v >= -gamutTolerance && v <= 1+gamutTolerance
}

// ToRGB8 rounds the linear colour to an 8-bit display colour, clamping any
// channel that strays outside [0,1] after encoding (§4.1 Display rounding).
func (c Linear) ToRGB8() RGB {
	r, g, b := c.Encode()
	return RGB{
		R: security.SafeUint8(int(math.Round(r * 255))),
		G: security.SafeUint8(int(math.Round(g * 255))),
		B: security.SafeUint8(int(math.Round(b * 255))),
	}
}

// ParseError reports a colour string that the hex/rgb/hsl stand-in CSS
// parser rejected. This package has no parsing function of its own: that
// parser lives in internal/importer and is intentionally minimal, and full
// CSS colour grammar (named colours, oklch(), hsl() edge cases) is an
// external collaborator per spec §1 scope.
type ParseError struct {
	Input string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse colour %q: %v", e.Input, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
