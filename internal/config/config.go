// Package config loads the TOML configuration file that drives scheme
// generation (§6 Configuration contract): SolverOptions field names plus
// name, variant and an inline hue_overrides table.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/jmylchreest/b24cam/internal/colour"
)

// File is the decoded shape of a b24cam TOML configuration file. Field
// names match SolverOptions exactly (§6); Name and Variant carry the
// output metadata that isn't part of the solver itself.
type File struct {
	Name                string             `toml:"name"`
	Variant             string             `toml:"variant"`
	TargetJ             float64            `toml:"target_j"`
	TargetM             float64            `toml:"target_m"`
	JWeight             float64            `toml:"j_weight"`
	MinContrastPrimary  float64            `toml:"min_contrast_primary"`
	MinContrastExtended float64            `toml:"min_contrast_extended"`
	HKStrength          float64            `toml:"hk_strength"`
	HKExponent          float64            `toml:"hk_exponent"`
	InterpolationSpace  string             `toml:"interpolation_space"`
	HueOverrides        map[string]float64 `toml:"hue_overrides"`
}

// slotIndexByName resolves a Base24 accent key ("base08".."base17") to the
// 0..15 slot index used by SolverOptions.HueOverrides.
func slotIndexByName() map[string]int {
	index := make(map[string]int, 16)
	opts := colour.DefaultSolverOptions()
	for _, slot := range opts.AccentSlots() {
		index[slot.SlotName()] = slot.Index
	}
	return index
}

// Load decodes a TOML document into a SolverOptions (layered over the
// package defaults, so an absent key keeps its default) plus the scheme
// metadata (name, variant). Unknown keys are a hard error (§6: "Unknown
// keys are an error").
func Load(data []byte) (colour.SolverOptions, File, error) {
	opts := colour.DefaultSolverOptions()

	var file File
	file.TargetJ = opts.TargetJ
	file.TargetM = opts.TargetM
	file.JWeight = opts.JWeight
	file.MinContrastPrimary = opts.MinContrastPrimary
	file.MinContrastExtended = opts.MinContrastExtended
	file.HKStrength = opts.HK.Strength
	file.HKExponent = opts.HK.Exponent

	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return colour.SolverOptions{}, File{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return colour.SolverOptions{}, File{}, fmt.Errorf("unknown configuration key %q", undecoded[0].String())
	}

	opts.TargetJ = file.TargetJ
	opts.TargetM = file.TargetM
	opts.JWeight = file.JWeight
	opts.MinContrastPrimary = file.MinContrastPrimary
	opts.MinContrastExtended = file.MinContrastExtended
	opts.HK = colour.HKModel{Strength: file.HKStrength, Exponent: file.HKExponent}

	switch file.InterpolationSpace {
	case "", "JPrime", "jprime", "j_prime":
		opts.InterpolationSpace = colour.InterpolationJPrime
	case "sRGB", "srgb":
		opts.InterpolationSpace = colour.InterpolationSRGB
	default:
		return colour.SolverOptions{}, File{}, fmt.Errorf("unknown interpolation_space %q", file.InterpolationSpace)
	}

	if len(file.HueOverrides) > 0 {
		byName := slotIndexByName()
		overrides := make(map[int]float64, len(file.HueOverrides))
		for key, hue := range file.HueOverrides {
			index, ok := byName[key]
			if !ok {
				return colour.SolverOptions{}, File{}, fmt.Errorf("unknown hue_overrides key %q", key)
			}
			overrides[index] = hue
		}
		opts.HueOverrides = overrides
	}

	if err := opts.Validate(); err != nil {
		return colour.SolverOptions{}, File{}, err
	}

	return opts, file, nil
}
