package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/config"
	"github.com/Lumos-Labs-HQ/mockdata/internal/presets"
	"github.com/Lumos-Labs-HQ/mockdata/internal/schema"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// progressThreshold is the row count above which long runs show a bar.
const progressThreshold = 10000

// sourceFlags pick the table to generate: a schema file or a preset, plus
// overrides shared by generate and seed.
type sourceFlags struct {
	schemaPath string
	preset     string
	rows       int
	table      string
	seed       int64
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.schemaPath, "schema", "s", "", "Schema document (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Use a built-in preset instead of a schema file")
	cmd.Flags().IntVarP(&f.rows, "rows", "n", 0, "Number of rows (overrides the schema)")
	cmd.Flags().StringVarP(&f.table, "table", "t", "", "Table name (overrides the schema)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for reproducible output")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolve builds the generator configuration from the flags. Without
// --schema or --preset it reads the configured schema path and, when that
// file does not exist, falls back to the default preset.
func (f *sourceFlags) resolve(cmd *cobra.Command, cfg *config.Config) (*types.GeneratorConfig, error) {
	defaults := schema.Defaults{
		Rows:      cfg.Defaults.Rows,
		Format:    types.Format(cfg.Defaults.Format),
		TableName: cfg.Defaults.TableName,
	}

	var (
		gc  *types.GeneratorConfig
		err error
	)
	switch {
	case f.schemaPath != "" && f.preset != "":
		return nil, errors.New("use either --schema or --preset, not both")
	case f.preset != "":
		gc, err = presetConfig(f.preset, defaults)
	case f.schemaPath != "":
		gc, err = schemaConfig(f.schemaPath, defaults)
	default:
		if _, statErr := os.Stat(cfg.SchemaPath); statErr == nil {
			gc, err = schemaConfig(cfg.SchemaPath, defaults)
		} else {
			color.Yellow("⚠️  No schema found at %s, using the default preset", cfg.SchemaPath)
			gc, err = presetConfig("default", defaults)
		}
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("rows") {
		gc.Rows = f.rows
	}
	if f.table != "" {
		gc.TableName = f.table
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		gc.Seed = &seed
	}
	if err := gc.Validate(); err != nil {
		return nil, err
	}
	return gc, nil
}

func presetConfig(name string, defaults schema.Defaults) (*types.GeneratorConfig, error) {
	p, err := presets.Get(name)
	if err != nil {
		return nil, err
	}
	gc := p.Config(defaults.Rows)
	gc.Format = defaults.Format
	return gc, nil
}

func schemaConfig(path string, defaults schema.Defaults) (*types.GeneratorConfig, error) {
	doc, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	gc, err := doc.Config(defaults)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gc, nil
}

// newProgressBar returns nil for small runs so callers can skip updates.
func newProgressBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	if total < progressThreshold {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("rows"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// countingWriter tracks bytes written for the summary line.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
