package generator

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

// PreviewRows is the number of rows a preview generates.
const PreviewRows = 10

// Evaluate produces the value of f at rowIndex with null and duplicate injection.
// history holds the non-null values already produced for f before rowIndex; a
// duplicate replays one of them instead of generating again. Identifier fields
// ignore both null and duplicate settings.
func (g *Generator) Evaluate(f types.FieldSpec, rowIndex int, history []types.Value) types.Value {
	if f.IsID() {
		return g.Value(f, rowIndex)
	}
	if percent(g.src, g.nullRate(f)) {
		return types.Null
	}
	if f.DuplicateChance > 0 && rowIndex > 0 && len(history) > 0 {
		if percent(g.src, float64(min(f.DuplicateChance, 100))) {
			return history[intn(g.src, min(rowIndex, len(history)))]
		}
	}
	return g.Value(f, rowIndex)
}

func (g *Generator) nullRate(f types.FieldSpec) float64 {
	if f.AllowNull {
		if f.NullPercentage != nil {
			return max(0, min(*f.NullPercentage, 100))
		}
		return defaultNullRate
	}
	if f.Type == types.TypeCustom {
		opts, _ := f.Options.(types.CustomOptions)
		if ct, ok := g.custom[opts.TypeName]; ok && opts.TypeName != "" {
			return max(0, min(ct.NullPercentage, 100))
		}
	}
	return 0
}

// RowFunc receives each generated row in index order. Returning an error stops
// generation.
type RowFunc func(rowIndex int, row types.Row) error

// Stream generates cfg.Rows rows and hands each to fn without keeping the table
// in memory. Only fields with a duplicate chance retain their history.
func (g *Generator) Stream(ctx context.Context, cfg *types.GeneratorConfig, fn RowFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rg := g.forRun(cfg)

	history := make([][]types.Value, len(cfg.Fields))
	for i := 0; i < cfg.Rows; i++ {
		if i%contextCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("generation stopped at row %d: %w", i, err)
			}
		}
		row := make(types.Row, len(cfg.Fields))
		for j, f := range cfg.Fields {
			v := rg.Evaluate(f, i, history[j])
			row[j] = v
			// Nulls are not replayed so the null rate stays as configured.
			if f.DuplicateChance > 0 && !f.IsID() && !v.IsNull() {
				history[j] = append(history[j], v)
			}
		}
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

// Generate materialises the whole table.
func (g *Generator) Generate(ctx context.Context, cfg *types.GeneratorConfig) (*types.Table, error) {
	table := &types.Table{
		Name:   cfg.TableName,
		Fields: cfg.Fields,
		Rows:   make([]types.Row, 0, min(max(cfg.Rows, 0), 1<<16)),
	}
	err := g.Stream(ctx, cfg, func(_ int, row types.Row) error {
		table.Rows = append(table.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Preview generates at most PreviewRows rows of cfg.
func (g *Generator) Preview(ctx context.Context, cfg *types.GeneratorConfig) (*types.Table, error) {
	preview := *cfg
	preview.Rows = min(cfg.Rows, PreviewRows)
	return g.Generate(ctx, &preview)
}

// forRun returns a view of g that also knows cfg's custom types. The view shares
// the random source so draws stay on one sequence.
func (g *Generator) forRun(cfg *types.GeneratorConfig) *Generator {
	if len(cfg.CustomTypes) == 0 {
		return g
	}
	rg := *g
	rg.custom = make(map[string]types.CustomType, len(g.custom)+len(cfg.CustomTypes))
	for k, v := range g.custom {
		rg.custom[k] = v
	}
	for _, ct := range cfg.CustomTypes {
		rg.custom[ct.Name] = ct
	}
	return &rg
}
