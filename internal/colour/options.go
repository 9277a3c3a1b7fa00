package colour

import "math"

// ContrastAnchor names which anchor an accent slot's contrast floor is
// measured against (§3 AccentSlot).
type ContrastAnchor int

const (
	// ContrastAgainstTheme defers to the theme's own polarity (§4.6):
	// background for dark themes, foreground for light themes. This is
	// the default every built-in slot uses.
	ContrastAgainstTheme ContrastAnchor = iota
	ContrastAgainstBackground
	ContrastAgainstForeground
)

// AccentSlot describes one of the 16 accent positions (§3). Index 0..7 are
// base08..base0F; 8..15 are base10..base17.
type AccentSlot struct {
	Index           int
	TargetHue       float64
	MinContrast     float64
	ContrastAgainst ContrastAnchor
}

// SlotName returns the Base24 key for this slot's index ("base08".."base17").
func (s AccentSlot) SlotName() string {
	return accentSlotName(s.Index)
}

func accentSlotName(index int) string {
	if index < 8 {
		return "base0" + hexDigit(index+8)
	}
	return "base1" + hexDigit(index-8)
}

func hexDigit(v int) string {
	const digits = "0123456789abcdef"
	return string(digits[v])
}

// defaultHueWheel is the default per-slot target hue (§3 SolverOptions
// defaults): the same 8-position wheel used for both the primary
// (base08..0F) and extended (base10..17) accent rings.
var defaultHueWheel = [8]float64{25, 55, 90, 145, 180, 250, 285, 335}

// SolverOptions configures the accent solver and scheme assembler (§3).
type SolverOptions struct {
	TargetJ             float64
	TargetM             float64
	JWeight             float64
	MinContrastPrimary  float64
	MinContrastExtended float64
	HueOverrides        map[int]float64 // slot index -> degrees
	HK                  HKModel
	// InterpolationSpace selects the neutral-ramp interpolation colour
	// space (§9 Open Question). Default InterpolationJPrime.
	InterpolationSpace InterpolationSpace
}

// InterpolationSpace resolves §9's open question about the neutral ramp.
type InterpolationSpace int

const (
	InterpolationJPrime InterpolationSpace = iota
	InterpolationSRGB
)

// DefaultSolverOptions returns the documented defaults (§3): target_J=65,
// target_M=40, J_weight=0.5, primary floor=45, extended floor=60, and the
// standard hue wheel for both accent rings.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		TargetJ:             65,
		TargetM:             40,
		JWeight:             0.5,
		MinContrastPrimary:  45,
		MinContrastExtended: 60,
		HueOverrides:        nil,
		HK:                  DefaultHKModel(),
		InterpolationSpace:  InterpolationJPrime,
	}
}

// Validate checks SolverOptions against the documented ranges (§7
// InvalidOption): target_J in [0,100], J_weight in [0,1], non-negative M,
// finite hue overrides.
func (o SolverOptions) Validate() error {
	if o.TargetJ < 0 || o.TargetJ > 100 || math.IsNaN(o.TargetJ) {
		return newError(ErrInvalidOption, "target_J %.4f out of range [0,100]", o.TargetJ)
	}
	if o.TargetM < 0 || math.IsNaN(o.TargetM) {
		return newError(ErrInvalidOption, "target_M %.4f must be >= 0", o.TargetM)
	}
	if o.JWeight < 0 || o.JWeight > 1 || math.IsNaN(o.JWeight) {
		return newError(ErrInvalidOption, "J_weight %.4f out of range [0,1]", o.JWeight)
	}
	if o.MinContrastPrimary < 0 || math.IsNaN(o.MinContrastPrimary) {
		return newError(ErrInvalidOption, "min_contrast_primary %.4f must be >= 0", o.MinContrastPrimary)
	}
	if o.MinContrastExtended < 0 || math.IsNaN(o.MinContrastExtended) {
		return newError(ErrInvalidOption, "min_contrast_extended %.4f must be >= 0", o.MinContrastExtended)
	}
	for slot, hue := range o.HueOverrides {
		if math.IsNaN(hue) || math.IsInf(hue, 0) {
			return newError(ErrInvalidOption, "hue override for slot %d is not finite: %v", slot, hue)
		}
	}
	return nil
}

// AccentSlots builds the 16 accent slot descriptors from these options
// (§3 defaults, §4.6 primary/extended floors). Hue overrides replace the
// wheel default for the matching slot index; wrapHue normalises the result
// modulo 360 with a positive representative (§9 Hue wrap).
func (o SolverOptions) AccentSlots() []AccentSlot {
	slots := make([]AccentSlot, 16)
	for i := 0; i < 16; i++ {
		hue := defaultHueWheel[i%8]
		if override, ok := o.HueOverrides[i]; ok {
			hue = override
		}
		floor := o.MinContrastPrimary
		if i >= 8 {
			floor = o.MinContrastExtended
		}
		slots[i] = AccentSlot{
			Index:           i,
			TargetHue:       wrapHue(hue),
			MinContrast:     floor,
			ContrastAgainst: ContrastAgainstTheme,
		}
	}
	return slots
}

// wrapHue reduces a hue angle modulo 360 with a positive representative
// (§9 Hue wrap).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hueDistance is the shortest angular distance between two hues, in
// [0,180]. It is symmetric in its arguments and applies no tie-break.
func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
