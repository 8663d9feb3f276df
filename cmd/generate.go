package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/generator"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	genSource  sourceFlags
	genFormat  string
	genDialect string
	genBatch   int
	genOut     string
	genPreview bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate mock data into a file or stdout",
	Long: `
Generate a table of mock data from a schema document or a built-in preset.

Supported formats: json (default), csv, sql, html, xml (xlsx is written as csv)

Examples:
  mockdata generate --preset employee --rows 500 --format csv
  mockdata generate --schema users.yaml --format sql --dialect postgres --batch 100
  mockdata generate --preset product-catalog --out - --seed 42
  mockdata generate --preview`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gc, err := genSource.resolve(cmd, cfg)
		if err != nil {
			return err
		}
		if genFormat != "" {
			if gc.Format, err = types.ParseFormat(genFormat); err != nil {
				return err
			}
		}

		dialect := cfg.Dialect()
		if genDialect != "" {
			if dialect, err = export.ParseDialect(genDialect); err != nil {
				return err
			}
		}
		batch := cfg.Defaults.BatchSize
		if cmd.Flags().Changed("batch") {
			batch = genBatch
		}

		out := genOut
		if genPreview {
			gc.Rows = min(gc.Rows, generator.PreviewRows)
			if out == "" {
				out = "-"
			}
		}
		if out == "" {
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			out = filepath.Join(cfg.OutputDir, export.FileName(gc.TableName, gc.Format))
		}

		opts := export.Options{TableName: gc.TableName, Dialect: dialect, BatchSize: batch}
		return runGenerate(cmd, gc, opts, out)
	},
}

func runGenerate(cmd *cobra.Command, gc *types.GeneratorConfig, opts export.Options, out string) error {
	var (
		dst  io.Writer = cmd.OutOrStdout()
		file *os.File
	)
	toStdout := out == "-"
	if !toStdout {
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		file, dst = f, f
	}

	counter := &countingWriter{w: dst}
	buf := bufio.NewWriterSize(counter, 256*1024)
	rw, err := export.NewWriter(gc.Format, buf, gc.Fields, opts)
	if err != nil {
		return err
	}

	var bar = newProgressBar(gc.Rows, "Generating", cmd.ErrOrStderr())
	if toStdout {
		bar = nil
	}

	start := time.Now()
	gen := generator.ForConfig(gc)
	err = rw.Begin()
	if err == nil {
		err = gen.Stream(cmd.Context(), gc, func(_ int, row types.Row) error {
			if bar != nil {
				bar.Add(1)
			}
			return rw.WriteRow(row)
		})
	}
	if err == nil {
		err = rw.End()
	}
	if err == nil {
		err = buf.Flush()
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if file != nil {
			file.Close()
			os.Remove(out)
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	if toStdout {
		if gc.Format != types.FormatCSV && gc.Format != types.FormatXLSX {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	color.Green("✅ Generated %s rows (%s) in %s",
		humanize.Comma(int64(gc.Rows)), humanize.Bytes(uint64(counter.n)), time.Since(start).Round(time.Millisecond))
	fmt.Printf("📄 %s\n", out)
	if gc.Format == types.FormatXLSX {
		color.Yellow("⚠️  xlsx is written as CSV; open it in a spreadsheet to convert")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	genSource.register(generateCmd)
	generateCmd.Flags().StringVar(&genFormat, "format", "", "Output format: json, csv, sql, html, xml, xlsx")
	generateCmd.Flags().StringVar(&genDialect, "dialect", "", "SQL dialect: mysql, postgres, sqlite (default from config)")
	generateCmd.Flags().IntVar(&genBatch, "batch", 0, "Rows per INSERT statement for sql output (1 = one statement per row)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file, or - for stdout (default <output_dir>/<table>.<ext>)")
	generateCmd.Flags().BoolVar(&genPreview, "preview", false, "Print the first rows to stdout")
}
