package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/b24cam/internal/colour"
	"github.com/jmylchreest/b24cam/internal/exporter"
	"github.com/jmylchreest/b24cam/internal/importer"
	"github.com/spf13/cobra"
)

var (
	validateFile     string
	validateFormat   string
	validatePrimary  float64
	validateExtended float64
)

// validateCmd recomputes APCA for every slot in an existing scheme file and
// reports any slot under its contrast floor (§6 `validate`).
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an existing Base24 scheme file against contrast floors",
	Long: `Validate reads a Base24 scheme file, recovers its background and
foreground anchors (base00/base05), and recomputes APCA for every accent
slot — independent of whatever SolverReport the scheme may have shipped
with.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "", "path to a Base24 scheme file")
	validateCmd.Flags().StringVar(&validateFormat, "format", "yaml", "input format: yaml or json")
	validateCmd.Flags().Float64Var(&validatePrimary, "min-contrast-primary", 45, "contrast floor for base08..base0F")
	validateCmd.Flags().Float64Var(&validateExtended, "min-contrast-extended", 60, "contrast floor for base10..base17")
	_ = validateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(validateFile)
	if err != nil {
		return fmt.Errorf("read scheme %s: %w", validateFile, err)
	}

	palette, err := decodeScheme(data, validateFormat)
	if err != nil {
		return err
	}

	anchors, _, err := colour.Import(palette)
	if err != nil {
		return err
	}

	scheme := colour.Scheme{Variant: anchors.Variant()}
	scheme.Palette = make(map[string]colour.RGB, len(palette))
	for slot, hex := range palette {
		rgb, err := parseRGB(hex)
		if err != nil {
			return fmt.Errorf("slot %s: %w", slot, err)
		}
		scheme.Palette[slot] = rgb
	}

	violations, err := colour.Validate(scheme, anchors, colour.Floors{
		Primary:  validatePrimary,
		Extended: validateExtended,
	})
	if err != nil {
		return err
	}

	if len(violations) == 0 {
		cmd.Println("all slots satisfy their contrast floor")
		return nil
	}

	table := NewTable([]string{"Slot", "Actual Lc", "Required Lc"})
	for _, v := range violations {
		table.AddRow([]string{v.Slot, fmt.Sprintf("%.2f", v.ActualLc), fmt.Sprintf("%.2f", v.RequiredLc)})
	}
	cmd.Print(table.Render())
	return fmt.Errorf("%d slot(s) failed their contrast floor", len(violations))
}

func decodeScheme(data []byte, format string) (map[string]string, error) {
	switch format {
	case "yaml":
		return exporter.YAML{}.Deserialize(data)
	case "json":
		return exporter.JSON{}.Deserialize(data)
	default:
		return nil, fmt.Errorf("unknown --format %q (want yaml or json)", format)
	}
}

func parseRGB(hex string) (colour.RGB, error) {
	linear, err := importer.HexCSS{}.Parse(hex)
	if err != nil {
		return colour.RGB{}, err
	}
	return linear.ToRGB8(), nil
}
