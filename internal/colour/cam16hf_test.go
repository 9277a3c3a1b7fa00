package colour

import (
	"math"
	"testing"
)

func TestCAM16HFRoundTrip(t *testing.T) {
	hk := DefaultHKModel()
	cases := []Linear{
		FromRGB8(RGB{0x1d, 0x20, 0x21}),
		FromRGB8(RGB{0xeb, 0xdb, 0xb2}),
		FromRGB8(RGB{0xff, 0x00, 0x00}),
		FromRGB8(RGB{0x00, 0xff, 0x00}),
		FromRGB8(RGB{0x00, 0x00, 0xff}),
		{R: 0.5, G: 0.5, B: 0.5},
	}

	for _, c := range cases {
		correlates := c.ToCAM16HF(hk)
		back := FromCAM16HF(correlates, hk)

		if math.Abs(back.R-c.R) > 1e-4 || math.Abs(back.G-c.G) > 1e-4 || math.Abs(back.B-c.B) > 1e-4 {
			t.Errorf("round trip %+v -> %+v -> %+v, want close to original", c, correlates, back)
		}
	}
}

func TestCAM16HFAchromaticHueIsZero(t *testing.T) {
	hk := DefaultHKModel()
	// sRGB grey is not achromatic under these viewing conditions: the
	// unclamped degree of adaptation (D of about 0.83) leaves mid-grey with
	// M of about 0.87. Black gives equal post-adaptation responses, so
	// a = b = 0 exactly.
	black := Linear{R: 0, G: 0, B: 0}
	c := black.ToCAM16HF(hk)
	if c.M > 1e-6 {
		t.Fatalf("black should have near-zero colourfulness, got M=%v", c.M)
	}
	if c.H != 0 {
		t.Errorf("achromatic hue should resolve to 0, got %v", c.H)
	}
}

func TestCAM16HFBlackWhiteLightness(t *testing.T) {
	hk := DefaultHKModel()
	black := FromRGB8(RGB{0, 0, 0}).ToCAM16HF(hk)
	white := FromRGB8(RGB{255, 255, 255}).ToCAM16HF(hk)

	if black.JPrime >= white.JPrime {
		t.Errorf("black J'=%v should be less than white J'=%v", black.JPrime, white.JPrime)
	}
	if white.JPrime < 90 {
		t.Errorf("white J' should be near 100, got %v", white.JPrime)
	}
}

func TestHueWraps(t *testing.T) {
	hk := DefaultHKModel()
	red := FromRGB8(RGB{255, 0, 0}).ToCAM16HF(hk)
	if red.H < 0 || red.H >= 360 {
		t.Errorf("hue %v out of [0,360) range", red.H)
	}
}
