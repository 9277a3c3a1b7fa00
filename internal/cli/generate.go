package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/b24cam/internal/colour"
	"github.com/jmylchreest/b24cam/internal/config"
	"github.com/jmylchreest/b24cam/internal/exporter"
	"github.com/jmylchreest/b24cam/internal/importer"
	"github.com/spf13/cobra"
)

var (
	generateBackground string
	generateForeground string
	generateConfigPath string
	generateFormat     string
	generateName       string
	generateAuthor     string
)

// generateCmd builds a Base24 scheme from two anchor colours (§6 `generate`).
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Base24 scheme from a background and foreground colour",
	Long: `Generate solves a full 24-slot Base24 palette from a background and
foreground anchor colour, using a CAM16-HF colour appearance model and APCA
contrast targets for every accent slot.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateBackground, "background", "", "background anchor colour (hex, rgb(), or hsl())")
	generateCmd.Flags().StringVar(&generateForeground, "foreground", "", "foreground anchor colour (hex, rgb(), or hsl())")
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "path to a TOML configuration file")
	generateCmd.Flags().StringVar(&generateFormat, "format", "yaml", "output format: yaml or json")
	generateCmd.Flags().StringVar(&generateName, "name", "", "scheme name recorded in the output")
	generateCmd.Flags().StringVar(&generateAuthor, "author", "", "scheme author recorded in the output")
	_ = generateCmd.MarkFlagRequired("background")
	_ = generateCmd.MarkFlagRequired("foreground")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	parser := importer.HexCSS{}
	bg, err := parser.Parse(generateBackground)
	if err != nil {
		return fmt.Errorf("--background: %w", err)
	}
	fg, err := parser.Parse(generateForeground)
	if err != nil {
		return fmt.Errorf("--foreground: %w", err)
	}
	anchors := colour.AnchorSet{Background: bg, Foreground: fg}

	opts := colour.DefaultSolverOptions()
	name, author := generateName, generateAuthor
	if generateConfigPath != "" {
		data, err := os.ReadFile(generateConfigPath)
		if err != nil {
			return fmt.Errorf("read config %s: %w", generateConfigPath, err)
		}
		loaded, file, err := config.Load(data)
		if err != nil {
			return fmt.Errorf("load config %s: %w", generateConfigPath, err)
		}
		opts = loaded
		if name == "" {
			name = file.Name
		}
	}

	logger.Debug("generating scheme", "background", generateBackground, "foreground", generateForeground)

	scheme, report, err := colour.Generate(anchors, opts)
	if err != nil {
		return err
	}
	scheme.Name = name
	scheme.Author = author

	for _, entry := range report.Entries {
		if entry.Degraded {
			logger.Warn("slot solved with degraded contrast", "slot", entry.Slot, "lc", entry.Lc)
		}
	}

	var serializer exporter.SchemeSerializer
	switch generateFormat {
	case "yaml":
		serializer = exporter.YAML{}
	case "json":
		serializer = exporter.JSON{}
	default:
		return fmt.Errorf("unknown --format %q (want yaml or json)", generateFormat)
	}

	out, err := serializer.Serialize(scheme)
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

// newLogger builds a go-hclog logger honouring the root command's --verbose
// and --quiet flags, matching the teacher's hclog.New(&hclog.LoggerOptions{})
// pattern (internal/plugin/executor/executor.go).
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "b24cam",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
