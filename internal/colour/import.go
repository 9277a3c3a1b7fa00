package colour

import (
	"fmt"

	"github.com/jmylchreest/b24cam/internal/util"
)

// importBackgroundSlot / importForegroundSlot are the Base24 keys import
// reads the theme anchors from (§6 Import symmetry).
const (
	importBackgroundSlot = "base00"
	importForegroundSlot = "base05"
)

// Import is the inverse half of Generate (§4.7): given a raw Base24
// palette, it recovers the AnchorSet generation would have started from
// and a SolverOptions whose hue overrides reproduce each accent slot's
// hue. Combined with Generate, this is what §8's Import idempotence
// property exercises.
func Import(scheme map[string]string) (AnchorSet, SolverOptions, error) {
	anchors, err := importAnchors(scheme)
	if err != nil {
		return AnchorSet{}, SolverOptions{}, err
	}

	opts := DefaultSolverOptions()
	opts.HueOverrides = make(map[int]float64, 16)
	for i := 0; i < 16; i++ {
		name := accentSlotName(i)
		hex, ok := scheme[name]
		if !ok {
			continue
		}
		linear, err := decodeHex(hex)
		if err != nil {
			return AnchorSet{}, SolverOptions{}, newError(ErrColorParse, "slot %s: %v", name, err)
		}
		opts.HueOverrides[i] = linear.ToCAM16HF(opts.HK).H
	}

	return anchors, opts, nil
}

func importAnchors(scheme map[string]string) (AnchorSet, error) {
	bgHex, ok := scheme[importBackgroundSlot]
	if !ok {
		return AnchorSet{}, newError(ErrColorParse, "missing %s", importBackgroundSlot)
	}
	fgHex, ok := scheme[importForegroundSlot]
	if !ok {
		return AnchorSet{}, newError(ErrColorParse, "missing %s", importForegroundSlot)
	}

	bg, err := decodeHex(bgHex)
	if err != nil {
		return AnchorSet{}, newError(ErrColorParse, "%s: %v", importBackgroundSlot, err)
	}
	fg, err := decodeHex(fgHex)
	if err != nil {
		return AnchorSet{}, newError(ErrColorParse, "%s: %v", importForegroundSlot, err)
	}

	return AnchorSet{Background: bg, Foreground: fg}, nil
}

// decodeHex parses a bare "rrggbb" (or "#rrggbb") string into linear-light
// sRGB. Full CSS colour syntax is the importer package's job (§6); this is
// just enough to round-trip the core's own output contract.
func decodeHex(hex string) (Linear, error) {
	hex = util.StripHash(hex)
	if len(hex) != 6 {
		return Linear{}, fmt.Errorf("expected 6 hex digits, got %q", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Linear{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return FromRGB8(RGB{R: r, G: g, B: b}), nil
}
