package generator

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)
}

func newTestGenerator() *Generator {
	return New(WithSeed(42), WithClock(fixedClock))
}

func TestIDFieldIsZeroPadded(t *testing.T) {
	g := newTestGenerator()
	cfg := &types.GeneratorConfig{
		Rows: 3,
		Fields: []types.FieldSpec{{
			Name:            "id",
			Type:            types.TypeAutoIncrement,
			AllowNull:       true,
			NullPercentage:  ptr(100.0),
			DuplicateChance: 100,
			Options:         types.IDOptions{Digits: 3},
		}},
	}

	table, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	for i, want := range []string{"001", "002", "003"} {
		assert.Equal(t, types.String(want), table.Rows[i][0])
	}
}

func TestIDFieldPrefixSuffixAndDefaults(t *testing.T) {
	g := newTestGenerator()

	v := g.Value(types.FieldSpec{Name: "id", Type: types.TypeAutoIncrement}, 41)
	assert.Equal(t, "00042", v.Str)

	v = g.Value(types.FieldSpec{
		Name:    "id",
		Type:    types.TypeAutoIncrement,
		Options: types.IDOptions{Digits: 4, Prefix: "EMP-", Suffix: "-X"},
	}, 6)
	assert.Equal(t, "EMP-0007-X", v.Str)

	v = g.Value(types.FieldSpec{Name: "id", Type: types.TypeAutoIncrement, Column: types.ColumnInteger}, 6)
	assert.Equal(t, types.Int(7), v)
}

func TestUUIDField(t *testing.T) {
	g := newTestGenerator()
	f := types.FieldSpec{Name: "id", Type: types.TypeAutoIncrement, Options: types.IDOptions{UUID: true}}
	uuidRe := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	a, b := g.Value(f, 0), g.Value(f, 0)
	assert.Regexp(t, uuidRe, a.Str)
	assert.NotEqual(t, a.Str, b.Str)
}

func TestSequentialNumeric(t *testing.T) {
	g := newTestGenerator()
	cfg := &types.GeneratorConfig{
		Rows: 3,
		Fields: []types.FieldSpec{{
			Name:   "n",
			Type:   types.TypeNumeric,
			Column: types.ColumnInteger,
			Options: types.NumericOptions{
				Mode:  types.ModeSequential,
				Start: 10,
				Step:  5,
			},
		}},
	}

	table, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)
	got := []types.Value{table.Rows[0][0], table.Rows[1][0], table.Rows[2][0]}
	assert.Equal(t, []types.Value{types.Int(10), types.Int(15), types.Int(20)}, got)
}

func TestSequentialFloatIsRounded(t *testing.T) {
	g := newTestGenerator()
	f := types.FieldSpec{
		Name:   "price",
		Type:   types.TypeNumeric,
		Column: types.ColumnFloat,
		Options: types.NumericOptions{
			Mode:      types.ModeSequential,
			Start:     1.005,
			Step:      0.333,
			Precision: ptr(2),
		},
	}
	for i := 0; i < 20; i++ {
		want := round(1.005+float64(i)*0.333, 2)
		assert.Equal(t, types.Float(want), g.Value(f, i))
	}
}

func TestSequentialClampsToSafeRange(t *testing.T) {
	g := newTestGenerator()
	f := types.FieldSpec{
		Name:    "big",
		Type:    types.TypeNumeric,
		Column:  types.ColumnInteger,
		Options: types.NumericOptions{Mode: types.ModeSequential, Start: 1, Step: 1e15},
	}
	v := g.Value(f, 1<<20)
	assert.Equal(t, int64(types.MaxSafeInt), v.Int)
}

func TestRandomNumericStaysInRange(t *testing.T) {
	g := newTestGenerator()
	intField := types.FieldSpec{
		Name:    "qty",
		Type:    types.TypeNumeric,
		Column:  types.ColumnInteger,
		Options: types.NumericOptions{Min: ptr(50.0), Max: ptr(10.0)},
	}
	floatField := types.FieldSpec{
		Name:    "ratio",
		Type:    types.TypeNumeric,
		Column:  types.ColumnDouble,
		Options: types.NumericOptions{Min: ptr(-1.0), Max: ptr(1.0), Precision: ptr(3)},
	}

	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		v := g.Value(intField, i)
		require.Equal(t, types.KindInt, v.Kind)
		require.GreaterOrEqual(t, v.Int, int64(10))
		require.LessOrEqual(t, v.Int, int64(50))
		seenLo = seenLo || v.Int == 10
		seenHi = seenHi || v.Int == 50

		f := g.Value(floatField, i)
		require.Equal(t, types.KindFloat, f.Kind)
		require.GreaterOrEqual(t, f.Float, -1.0)
		require.LessOrEqual(t, f.Float, 1.0)
		require.Equal(t, round(f.Float, 3), f.Float)
	}
	assert.True(t, seenLo && seenHi, "inclusive bounds should both be reachable")
}

func TestDigitCountMode(t *testing.T) {
	g := newTestGenerator()
	f := types.FieldSpec{
		Name:    "code",
		Type:    types.TypeNumeric,
		Options: types.NumericOptions{MinDigits: 3, MaxDigits: 4},
	}
	for i := 0; i < 500; i++ {
		v := g.Value(f, i)
		require.Equal(t, types.KindInt, v.Kind)
		require.GreaterOrEqual(t, v.Int, int64(100))
		require.LessOrEqual(t, v.Int, int64(9999))
	}
}

func TestRotatingIdentityTypes(t *testing.T) {
	g := newTestGenerator()

	name := types.FieldSpec{Name: "name", Type: types.TypeName}
	assert.Equal(t, "John Smith", g.Value(name, 0).Str)
	assert.Equal(t, "John Smith", g.Value(name, 10).Str)

	first := types.FieldSpec{Name: "first", Type: types.TypeString, Options: types.TextOptions{Subtype: types.SubtypeFirstName}}
	assert.Equal(t, "Sarah", g.Value(first, 1).Str)

	email := types.FieldSpec{Name: "email", Type: types.TypeEmail}
	assert.Equal(t, "john.smith@gmail.com", g.Value(email, 0).Str)
	assert.Equal(t, "sarah.johnson1@mail.com", g.Value(email, 41).Str)

	addr := types.FieldSpec{Name: "addr", Type: types.TypeAddress}
	assert.Equal(t, "100 Main Street, Mumbai", g.Value(addr, 0).Str)
}

func TestDateTypesUseClock(t *testing.T) {
	g := newTestGenerator()

	assert.Equal(t, "2024-03-13", g.Value(types.FieldSpec{Name: "d", Type: types.TypeDate}, 2).Str)
	assert.Equal(t, "2024-03-15 10:30:45", g.Value(types.FieldSpec{Name: "dt", Type: types.TypeDateTime}, 2).Str)
	assert.Equal(t, "12:28:45", g.Value(types.FieldSpec{Name: "t", Type: types.TypeTime}, 2).Str)
}

func TestPhoneFormat(t *testing.T) {
	g := newTestGenerator()
	v := g.Value(types.FieldSpec{Name: "phone", Type: types.TypePhone}, 0)
	assert.Regexp(t, `^\+91-\d{10}$`, v.Str)
}

func TestCaseAndAffix(t *testing.T) {
	tests := []struct {
		name string
		opt  types.CaseOption
		in   string
		want string
	}{
		{"none", types.CaseNone, "hello World", "hello World"},
		{"lower", types.CaseLower, "Hello World", "hello world"},
		{"upper", types.CaseUpper, "Hello World", "HELLO WORLD"},
		{"title", types.CaseTitle, "jOHN smith", "John Smith"},
		{"sentence", types.CaseSentence, "hELLO World", "Hello world"},
		{"empty", types.CaseSentence, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyCase(tt.in, tt.opt))
		})
	}

	g := newTestGenerator()
	f := types.FieldSpec{
		Name:    "city",
		Type:    types.TypeCity,
		Options: types.TextOptions{Affix: types.Affix{Prefix: "[", Suffix: "]", Case: types.CaseUpper}},
	}
	assert.Equal(t, "[NEW YORK]", g.Value(f, 1).Str)

	price := types.FieldSpec{
		Name:    "price",
		Type:    types.TypeNumeric,
		Column:  types.ColumnInteger,
		Options: types.NumericOptions{Mode: types.ModeSequential, Start: 5, Step: 1, Affix: types.Affix{Prefix: "$"}},
	}
	assert.Equal(t, types.String("$7"), g.Value(price, 2))
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name   string
		in     types.Value
		column types.ColumnType
		want   types.Value
	}{
		{"string to int", types.String(" 42 "), types.ColumnInteger, types.Int(42)},
		{"padded string to int", types.String("009"), types.ColumnInteger, types.Int(9)},
		{"decimal string to int", types.String("3.9"), types.ColumnInteger, types.Int(3)},
		{"garbage to int", types.String("abc"), types.ColumnInteger, types.Int(0)},
		{"float to int", types.Float(-2.7), types.ColumnInteger, types.Int(-2)},
		{"int to float", types.Int(3), types.ColumnFloat, types.Float(3)},
		{"string to double", types.String("2.346"), types.ColumnDouble, types.Float(2.35)},
		{"yes to bool", types.String("YES"), types.ColumnBoolean, types.Bool(true)},
		{"1 to bool", types.String("1"), types.ColumnBoolean, types.Bool(true)},
		{"no to bool", types.String("no"), types.ColumnBoolean, types.Bool(false)},
		{"int to bool", types.Int(0), types.ColumnBoolean, types.Bool(false)},
		{"bool to string", types.Bool(true), types.ColumnString, types.String("true")},
		{"float to string", types.Float(1.5), types.ColumnString, types.String("1.5")},
		{"null stays null", types.Null, types.ColumnInteger, types.Null},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerce(tt.in, tt.column, 2))
		})
	}
}

func TestCustomFields(t *testing.T) {
	g := New(WithSeed(7), WithCustomTypes([]types.CustomType{
		{Name: "Tier", Values: []string{"gold", "silver"}, Affix: types.Affix{Case: types.CaseUpper}},
		{Name: "Score", Column: types.ColumnFloat, Min: ptr(1.0), Max: ptr(2.0), Precision: ptr(1)},
	}))

	pool := types.FieldSpec{Name: "cat", Type: types.TypeCustom, Options: types.CustomOptions{Values: []string{"a", "b", "c"}}}
	for i := 0; i < 50; i++ {
		assert.Contains(t, []string{"a", "b", "c"}, g.Value(pool, i).Str)
	}

	empty := types.FieldSpec{Name: "x", Type: types.TypeCustom}
	assert.Equal(t, "Custom 3", g.Value(empty, 2).Str)

	fixed := types.FieldSpec{Name: "x", Type: types.TypeCustom, Options: types.CustomOptions{Value: "constant"}}
	assert.Equal(t, "constant", g.Value(fixed, 9).Str)

	tier := types.FieldSpec{Name: "tier", Type: types.TypeCustom, Options: types.CustomOptions{TypeName: "Tier"}}
	assert.Contains(t, []string{"GOLD", "SILVER"}, g.Value(tier, 0).Str)

	score := types.FieldSpec{Name: "score", Type: types.TypeCustom, Options: types.CustomOptions{TypeName: "Score"}}
	v := g.Value(score, 0)
	require.Equal(t, types.KindFloat, v.Kind)
	assert.GreaterOrEqual(t, v.Float, 1.0)
	assert.LessOrEqual(t, v.Float, 2.0)

	missing := types.FieldSpec{Name: "m", Type: types.TypeCustom, Options: types.CustomOptions{TypeName: "Nope"}}
	assert.Equal(t, "Nope 1", g.Value(missing, 0).Str)
}

func TestUnknownTypeFallsBack(t *testing.T) {
	g := newTestGenerator()
	v := g.Value(types.FieldSpec{Name: "x", Type: types.SemanticType("mystery")}, 4)
	assert.Equal(t, "Data 5", v.Str)
}

func TestNullInjectionRate(t *testing.T) {
	tests := []struct {
		name string
		pct  *float64
		want float64
	}{
		{"default", nil, 0.10},
		{"configured", ptr(30.0), 0.30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(WithSeed(1))
			cfg := &types.GeneratorConfig{
				Rows: 10000,
				Fields: []types.FieldSpec{
					{Name: "city", Type: types.TypeCity, AllowNull: true, NullPercentage: tt.pct},
				},
			}
			nulls := 0
			err := g.Stream(context.Background(), cfg, func(_ int, row types.Row) error {
				if row[0].IsNull() {
					nulls++
				}
				return nil
			})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(nulls)/10000, 0.02)
		})
	}
}

func TestDuplicateInjectionReplaysHistory(t *testing.T) {
	g := New(WithSeed(3))
	cfg := &types.GeneratorConfig{
		Rows:   1000,
		Fields: []types.FieldSpec{{Name: "phone", Type: types.TypePhone, DuplicateChance: 50}},
	}
	table, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)

	seen := map[string]bool{}
	repeats := 0
	for _, row := range table.Rows {
		v := row[0].Str
		if seen[v] {
			repeats++
		}
		seen[v] = true
	}
	assert.InDelta(t, 0.5, float64(repeats)/1000, 0.06)
}

func TestDuplicatesKeepTheNullRate(t *testing.T) {
	g := New(WithSeed(11))
	cfg := &types.GeneratorConfig{
		Rows:   20000,
		Fields: []types.FieldSpec{{Name: "city", Type: types.TypeCity, AllowNull: true, DuplicateChance: 50}},
	}
	table, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)

	nulls := 0
	for _, row := range table.Rows {
		if row[0].IsNull() {
			nulls++
		}
	}
	assert.InDelta(t, 0.10, float64(nulls)/20000, 0.02)
}

func TestEvaluateWithoutHistoryNeverDuplicates(t *testing.T) {
	g := newTestGenerator()
	f := types.FieldSpec{Name: "n", Type: types.TypeName, DuplicateChance: 100}
	assert.Equal(t, "John Smith", g.Evaluate(f, 0, nil).Str)
	assert.Equal(t, "Sarah Johnson", g.Evaluate(f, 1, nil).Str)
	assert.Equal(t, "John Smith", g.Evaluate(f, 1, []types.Value{types.String("John Smith")}).Str)
}

func TestCustomTypeNullPercentage(t *testing.T) {
	g := New(WithSeed(5))
	cfg := &types.GeneratorConfig{
		Rows:        2000,
		Fields:      []types.FieldSpec{{Name: "tier", Type: types.TypeCustom, Options: types.CustomOptions{TypeName: "Tier"}}},
		CustomTypes: []types.CustomType{{Name: "Tier", Values: []string{"gold"}, NullPercentage: 50}},
	}
	table, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)
	nulls := 0
	for _, row := range table.Rows {
		if row[0].IsNull() {
			nulls++
		}
	}
	assert.InDelta(t, 0.5, float64(nulls)/2000, 0.05)
}

func TestGenerateShape(t *testing.T) {
	cfg := &types.GeneratorConfig{
		Rows: 25,
		Fields: []types.FieldSpec{
			{Name: "id", Type: types.TypeAutoIncrement},
			{Name: "name", Type: types.TypeName, AllowNull: true},
			{Name: "active", Type: types.TypeBoolean},
			{Name: "bio", Type: types.TypeText},
		},
	}
	table, err := New().Generate(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, table.Rows, 25)
	for _, row := range table.Rows {
		require.Len(t, row, 4)
		assert.Equal(t, types.KindBool, row[2].Kind)
	}
}

func TestSeededGenerationIsReproducible(t *testing.T) {
	cfg := &types.GeneratorConfig{
		Rows: 50,
		Seed: ptr(int64(99)),
		Fields: []types.FieldSpec{
			{Name: "dept", Type: types.TypeDepartment},
			{Name: "n", Type: types.TypeNumeric, Options: types.NumericOptions{Min: ptr(0.0), Max: ptr(1e6)}},
			{Name: "code", Type: types.TypeCustom, Options: types.CustomOptions{Pattern: `[A-Z]{3}-[0-9]{5}`}},
		},
	}
	a, err := ForConfig(cfg, WithClock(fixedClock)).Generate(context.Background(), cfg)
	require.NoError(t, err)
	b, err := ForConfig(cfg, WithClock(fixedClock)).Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)
}

func TestStreamValidatesAndCancels(t *testing.T) {
	g := newTestGenerator()

	err := g.Stream(context.Background(), &types.GeneratorConfig{Rows: -1, Fields: []types.FieldSpec{{Name: "a", Type: types.TypeCity}}}, func(int, types.Row) error { return nil })
	assert.ErrorIs(t, err, types.ErrNegativeRows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = g.Stream(ctx, &types.GeneratorConfig{Rows: 10, Fields: []types.FieldSpec{{Name: "a", Type: types.TypeCity}}}, func(int, types.Row) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	stop := errors.New("stop")
	calls := 0
	err = g.Stream(context.Background(), &types.GeneratorConfig{Rows: 10, Fields: []types.FieldSpec{{Name: "a", Type: types.TypeCity}}}, func(int, types.Row) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestPreviewCapsRows(t *testing.T) {
	cfg := &types.GeneratorConfig{Rows: 500, Fields: []types.FieldSpec{{Name: "id", Type: types.TypeAutoIncrement}}}
	table, err := newTestGenerator().Preview(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, table.Rows, PreviewRows)
	assert.Equal(t, 500, cfg.Rows)
}
