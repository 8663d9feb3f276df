// Package generator turns field specifications into synthetic values and tables.
//
// A Generator is not safe for concurrent use: it owns one shared random source and
// a pattern cache. Create one per goroutine or request.
package generator

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/brianvoe/gofakeit/v7"
)

const (
	defaultIDDigits   = 5
	defaultPrecision  = 2
	defaultMin        = 0
	defaultMax        = 1000
	defaultMinDigits  = 1
	defaultMaxDigits  = 5
	defaultNullRate   = 10
	maxDigitCount     = 15
	maxPrecision      = 10
	contextCheckEvery = 1024
)

type Generator struct {
	src      Source
	now      func() time.Time
	log      *slog.Logger
	custom   map[string]types.CustomType
	faker    *gofakeit.Faker
	patterns map[string]bool
}

type Option func(*Generator)

// WithSource injects the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithSeed seeds a fresh PCG source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.src = NewSource(seed)
	}
}

// WithClock fixes "now" for the date, time and datetime generators.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithCustomTypes registers named custom types for fields that reference them.
func WithCustomTypes(cts []types.CustomType) Option {
	return func(g *Generator) {
		for _, ct := range cts {
			g.custom[ct.Name] = ct
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		now:      time.Now,
		log:      slog.Default(),
		custom:   make(map[string]types.CustomType),
		patterns: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = defaultSource()
	}
	g.faker = gofakeit.NewFaker(randSource{g.src}, false)
	return g
}

// ForConfig builds a generator for cfg, seeded when the config carries a seed.
func ForConfig(cfg *types.GeneratorConfig, opts ...Option) *Generator {
	base := []Option{WithCustomTypes(cfg.CustomTypes)}
	if cfg.Seed != nil {
		base = append(base, WithSeed(*cfg.Seed))
	}
	return New(append(base, opts...)...)
}

// Value generates the value of field f at rowIndex, ignoring null and duplicate
// injection. The result is already coerced to the field's column type.
func (g *Generator) Value(f types.FieldSpec, rowIndex int) types.Value {
	switch f.Type {
	case types.TypeAutoIncrement:
		return g.idValue(f, rowIndex)
	case types.TypeNumeric:
		return g.numericValue(f, rowIndex)
	case types.TypeCustom:
		return g.customValue(f, rowIndex)
	case types.TypeBoolean:
		opts, _ := f.Options.(types.TextOptions)
		return finish(types.Bool(g.src.Float64() < 0.5), f.ColumnType(), defaultPrecision, opts.Affix)
	case types.TypeText:
		return coerce(types.String(g.generateParagraph(rowIndex)), f.ColumnType(), defaultPrecision)
	default:
		opts, _ := f.Options.(types.TextOptions)
		return finish(types.String(g.generateText(f.Type, opts, rowIndex)), f.ColumnType(), defaultPrecision, opts.Affix)
	}
}

func (g *Generator) idValue(f types.FieldSpec, rowIndex int) types.Value {
	opts, _ := f.Options.(types.IDOptions)
	affix := types.Affix{Prefix: opts.Prefix, Suffix: opts.Suffix}
	if opts.UUID {
		return finish(types.String(g.generateUUID()), types.ColumnString, 0, affix)
	}
	digits := opts.Digits
	if digits <= 0 {
		digits = defaultIDDigits
	}
	digits = min(digits, 32)
	raw := types.String(fmt.Sprintf("%0*d", digits, rowIndex+1))
	return finish(raw, f.ColumnType(), 0, affix)
}

func (g *Generator) numericValue(f types.FieldSpec, rowIndex int) types.Value {
	opts, _ := f.Options.(types.NumericOptions)
	precision := precisionOf(opts.Precision)
	column := f.ColumnType()
	integer := opts.Kind == types.NumberInteger ||
		(opts.Kind == "" && column != types.ColumnFloat && column != types.ColumnDouble)

	var raw types.Value
	switch {
	case opts.Mode == types.ModeSequential:
		raw = sequential(opts, rowIndex, integer, precision)
	case opts.Min == nil && opts.Max == nil && (opts.MinDigits > 0 || opts.MaxDigits > 0):
		raw = types.Int(g.digitCount(opts.MinDigits, opts.MaxDigits))
	default:
		raw = g.uniform(opts.Min, opts.Max, integer, precision)
	}
	return finish(raw, column, precision, opts.Affix)
}

func sequential(opts types.NumericOptions, rowIndex int, integer bool, precision int) types.Value {
	start, step := opts.Start, opts.Step
	v := start + float64(rowIndex)*step
	if integer {
		if math.Abs(v) >= types.MaxSafeInt {
			return types.Int(int64(math.Copysign(types.MaxSafeInt, v)))
		}
		if start == math.Trunc(start) && step == math.Trunc(step) {
			return types.Int(int64(start) + int64(rowIndex)*int64(step))
		}
		return types.Int(int64(math.Trunc(v)))
	}
	return types.Float(round(v, precision))
}

// digitCount picks a digit count in [minDigits, maxDigits] and then a value with
// exactly that many digits.
func (g *Generator) digitCount(minDigits, maxDigits int) int64 {
	if minDigits <= 0 {
		minDigits = defaultMinDigits
	}
	if maxDigits <= 0 {
		maxDigits = max(defaultMaxDigits, minDigits)
	}
	if minDigits > maxDigits {
		minDigits, maxDigits = maxDigits, minDigits
	}
	minDigits = min(minDigits, maxDigitCount)
	maxDigits = min(maxDigits, maxDigitCount)

	digits := minDigits + intn(g.src, maxDigits-minDigits+1)
	lo := int64(math.Pow10(digits - 1))
	hi := int64(math.Pow10(digits)) - 1
	return lo + int64n(g.src, hi-lo+1)
}

func (g *Generator) uniform(minPtr, maxPtr *float64, integer bool, precision int) types.Value {
	lo, hi := float64(defaultMin), float64(defaultMax)
	if minPtr != nil {
		lo = *minPtr
	}
	if maxPtr != nil {
		hi = *maxPtr
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = math.Max(lo, -types.MaxSafeInt)
	hi = math.Min(hi, types.MaxSafeInt)

	if integer {
		ilo, ihi := int64(math.Ceil(lo)), int64(math.Floor(hi))
		if ihi < ilo {
			ihi = ilo
		}
		return types.Int(ilo + int64n(g.src, ihi-ilo+1))
	}
	return types.Float(round(lo+g.src.Float64()*(hi-lo), precision))
}

func (g *Generator) customValue(f types.FieldSpec, rowIndex int) types.Value {
	opts, _ := f.Options.(types.CustomOptions)
	column := f.ColumnType()

	switch {
	case len(opts.Values) > 0:
		return finish(types.String(pick(g.src, opts.Values)), column, defaultPrecision, opts.Affix)
	case opts.Pattern != "":
		return finish(types.String(g.fromPattern(opts.Pattern)), column, defaultPrecision, opts.Affix)
	case opts.Value != "":
		return finish(types.String(opts.Value), column, defaultPrecision, opts.Affix)
	}

	if ct, ok := g.custom[opts.TypeName]; ok && opts.TypeName != "" {
		if f.Column == "" && ct.Column != "" {
			column = ct.Column
		}
		affix := opts.Affix
		if affix.Empty() && affix.Case == "" {
			affix = ct.Affix
		}
		return finish(g.customTypeValue(ct, column), column, precisionOf(ct.Precision), affix)
	}

	label := opts.TypeName
	if label == "" {
		label = "Custom"
	}
	return finish(types.String(fmt.Sprintf("%s %d", label, rowIndex+1)), column, defaultPrecision, opts.Affix)
}

func (g *Generator) customTypeValue(ct types.CustomType, column types.ColumnType) types.Value {
	switch {
	case len(ct.Values) > 0:
		return types.String(pick(g.src, ct.Values))
	case ct.Pattern != "":
		return types.String(g.fromPattern(ct.Pattern))
	}
	switch column {
	case types.ColumnInteger:
		return g.uniform(ct.Min, ct.Max, true, 0)
	case types.ColumnFloat, types.ColumnDouble:
		return g.uniform(ct.Min, ct.Max, false, precisionOf(ct.Precision))
	case types.ColumnBoolean:
		return types.Bool(g.src.Float64() < 0.5)
	}
	return types.String(g.generateWord())
}

func precisionOf(p *int) int {
	if p == nil {
		return defaultPrecision
	}
	return max(0, min(*p, maxPrecision))
}

// round rounds half away from zero to the given number of decimals.
func round(v float64, precision int) float64 {
	scale := math.Pow10(precision)
	r := math.Round(v*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

func (g *Generator) generateUUID() string {
	id, err := newUUID(g.src)
	if err != nil {
		return strings.Repeat("0", 8) + "-0000-4000-8000-" + strings.Repeat("0", 12)
	}
	return id
}
