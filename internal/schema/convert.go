package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/spf13/cast"
)

var ErrInvalidDocument = errors.New("invalid generator document")

// typeAliases maps normalized type names that are not semantic types
// themselves. The options hook lets an alias preset a sub-option.
var typeAliases = map[string]struct {
	t    types.SemanticType
	opts map[string]any
}{
	"id":        {t: types.TypeAutoIncrement},
	"uuid":      {t: types.TypeAutoIncrement, opts: map[string]any{"uuid": true}},
	"integer":   {t: types.TypeNumeric, opts: map[string]any{"kind": "integer"}},
	"int":       {t: types.TypeNumeric, opts: map[string]any{"kind": "integer"}},
	"number":    {t: types.TypeNumeric},
	"float":     {t: types.TypeNumeric, opts: map[string]any{"kind": "float"}},
	"double":    {t: types.TypeNumeric, opts: map[string]any{"kind": "double"}},
	"fullname":  {t: types.TypeName},
	"firstname": {t: types.TypeString, opts: map[string]any{"string_type": "firstname"}},
	"lastname":  {t: types.TypeString, opts: map[string]any{"string_type": "lastname"}},
	"zip":       {t: types.TypeZipCode},
	"bool":      {t: types.TypeBoolean},
	"paragraph": {t: types.TypeText},
	"lorem":     {t: types.TypeText},
	"timestamp": {t: types.TypeDateTime},
	"pattern":   {t: types.TypeCustom},
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// ParseSemanticType resolves a document type name, accepting any casing and
// the aliases above. Unknown names are kept as-is; the generator falls back to
// a placeholder value for them.
func ParseSemanticType(s string) (types.SemanticType, map[string]any) {
	key := normalizeKey(s)
	for _, st := range types.SemanticTypes {
		if normalizeKey(string(st)) == key {
			return st, nil
		}
	}
	if alias, ok := typeAliases[key]; ok {
		return alias.t, alias.opts
	}
	return types.SemanticType(s), nil
}

// Config converts the document into a validated generator configuration.
func (d *Document) Config(defaults Defaults) (*types.GeneratorConfig, error) {
	cfg := &types.GeneratorConfig{
		Rows:      defaults.Rows,
		Format:    defaults.Format,
		TableName: defaults.TableName,
		Seed:      d.Seed,
	}
	if d.Rows != nil {
		cfg.Rows = *d.Rows
	}
	if d.Table != "" {
		cfg.TableName = d.Table
	}
	if d.Format != "" {
		format, err := types.ParseFormat(d.Format)
		if err != nil {
			return nil, err
		}
		cfg.Format = format
	}

	for i, ctd := range d.CustomTypes {
		ct, err := ctd.customType()
		if err != nil {
			return nil, fmt.Errorf("%w: custom type %d: %v", ErrInvalidDocument, i, err)
		}
		cfg.CustomTypes = append(cfg.CustomTypes, ct)
	}

	for i, fd := range d.Fields {
		f, err := fd.fieldSpec()
		if err != nil {
			return nil, fmt.Errorf("%w: field %d (%s): %v", ErrInvalidDocument, i, fd.Name, err)
		}
		if opts, ok := f.Options.(types.CustomOptions); ok && f.Column == "" && opts.TypeName != "" {
			if ct, found := cfg.CustomType(opts.TypeName); found {
				f.Column = ct.Column
			}
		}
		cfg.Fields = append(cfg.Fields, f)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fd FieldDoc) fieldSpec() (types.FieldSpec, error) {
	st, preset := ParseSemanticType(fd.Type)
	if !st.Valid() {
		slog.Warn("unknown field type, values will use a placeholder", "field", fd.Name, "type", fd.Type)
	}
	column, err := types.ParseColumnType(fd.ColumnType)
	if err != nil {
		return types.FieldSpec{}, err
	}
	if strings.TrimSpace(fd.ColumnType) == "" {
		column = ""
	}

	opts := make(map[string]any, len(preset)+len(fd.Options))
	for k, v := range preset {
		opts[normalizeKey(k)] = v
	}
	for k, v := range fd.Options {
		opts[normalizeKey(k)] = v
	}

	options, err := decodeOptions(st, opts)
	if err != nil {
		return types.FieldSpec{}, err
	}

	if fd.DuplicateChance < 0 || fd.DuplicateChance > 100 {
		return types.FieldSpec{}, fmt.Errorf("duplicate_chance must be between 0 and 100, got %d", fd.DuplicateChance)
	}
	if fd.NullPercentage != nil && (*fd.NullPercentage < 0 || *fd.NullPercentage > 100) {
		return types.FieldSpec{}, fmt.Errorf("null_percentage must be between 0 and 100, got %v", *fd.NullPercentage)
	}

	return types.FieldSpec{
		Name:            fd.Name,
		Type:            st,
		Column:          column,
		AllowNull:       fd.AllowNull,
		NullPercentage:  fd.NullPercentage,
		DuplicateChance: fd.DuplicateChance,
		Options:         options,
	}, nil
}

func (ctd CustomTypeDoc) customType() (types.CustomType, error) {
	if strings.TrimSpace(ctd.Name) == "" {
		return types.CustomType{}, errors.New("name cannot be empty")
	}
	ct := types.CustomType{
		Name:           ctd.Name,
		Pattern:        ctd.Pattern,
		Values:         ctd.Values,
		Min:            ctd.MinValue,
		Max:            ctd.MaxValue,
		Precision:      ctd.Precision,
		NullPercentage: ctd.NullPercentage,
	}
	if ctd.ColumnType != "" {
		column, err := types.ParseColumnType(ctd.ColumnType)
		if err != nil {
			return types.CustomType{}, err
		}
		ct.Column = column
	}
	affix, err := decodeAffix(map[string]any{"prefix": ctd.Prefix, "suffix": ctd.Suffix, "case": ctd.Case})
	if err != nil {
		return types.CustomType{}, err
	}
	ct.Affix = affix
	return ct, nil
}

// opt looks up the first present key among names. Keys are normalized.
func opt(m map[string]any, names ...string) (any, bool) {
	for _, n := range names {
		if v, ok := m[n]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func decodeOptions(st types.SemanticType, m map[string]any) (types.Options, error) {
	switch st {
	case types.TypeAutoIncrement:
		return decodeIDOptions(m)
	case types.TypeNumeric:
		return decodeNumericOptions(m)
	case types.TypeCustom:
		return decodeCustomOptions(m)
	default:
		return decodeTextOptions(m)
	}
}

func decodeIDOptions(m map[string]any) (types.IDOptions, error) {
	var o types.IDOptions
	var err error
	if v, ok := opt(m, "digits"); ok {
		if o.Digits, err = cast.ToIntE(v); err != nil {
			return o, fmt.Errorf("digits: %w", err)
		}
	}
	if v, ok := opt(m, "prefix"); ok {
		o.Prefix = cast.ToString(v)
	}
	if v, ok := opt(m, "suffix"); ok {
		o.Suffix = cast.ToString(v)
	}
	if v, ok := opt(m, "uuid"); ok {
		if o.UUID, err = cast.ToBoolE(v); err != nil {
			return o, fmt.Errorf("uuid: %w", err)
		}
	}
	if v, ok := opt(m, "format", "idtype"); ok && strings.EqualFold(cast.ToString(v), "uuid") {
		o.UUID = true
	}
	return o, nil
}

func decodeNumericOptions(m map[string]any) (types.NumericOptions, error) {
	var o types.NumericOptions
	var err error

	if v, ok := opt(m, "kind", "numbertype", "numerictype"); ok {
		switch k := types.NumberKind(strings.ToLower(cast.ToString(v))); k {
		case types.NumberInteger, types.NumberFloat, types.NumberDouble:
			o.Kind = k
		default:
			return o, fmt.Errorf("kind: unknown number kind %q", v)
		}
	}
	if v, ok := opt(m, "generationtype", "mode"); ok {
		switch mode := types.GenerationMode(strings.ToLower(cast.ToString(v))); mode {
		case types.ModeRandom, types.ModeSequential:
			o.Mode = mode
		default:
			return o, fmt.Errorf("generation_type: unknown mode %q", v)
		}
	}
	if o.Min, err = floatPtr(m, "minvalue", "min"); err != nil {
		return o, fmt.Errorf("min_value: %w", err)
	}
	if o.Max, err = floatPtr(m, "maxvalue", "max"); err != nil {
		return o, fmt.Errorf("max_value: %w", err)
	}
	if o.Precision, err = intPtr(m, "precision", "decimals"); err != nil {
		return o, fmt.Errorf("precision: %w", err)
	}
	if v, ok := opt(m, "startvalue", "start"); ok {
		if o.Start, err = cast.ToFloat64E(v); err != nil {
			return o, fmt.Errorf("start_value: %w", err)
		}
	}
	o.Step = 1
	if v, ok := opt(m, "stepvalue", "step"); ok {
		if o.Step, err = cast.ToFloat64E(v); err != nil {
			return o, fmt.Errorf("step_value: %w", err)
		}
	}
	if v, ok := opt(m, "mindigits"); ok {
		if o.MinDigits, err = cast.ToIntE(v); err != nil {
			return o, fmt.Errorf("min_digits: %w", err)
		}
	}
	if v, ok := opt(m, "maxdigits"); ok {
		if o.MaxDigits, err = cast.ToIntE(v); err != nil {
			return o, fmt.Errorf("max_digits: %w", err)
		}
	}
	if o.Affix, err = decodeAffix(m); err != nil {
		return o, err
	}
	return o, nil
}

func decodeTextOptions(m map[string]any) (types.TextOptions, error) {
	var o types.TextOptions
	if v, ok := opt(m, "stringtype", "subtype"); ok {
		o.Subtype = types.StringSubtype(normalizeKey(cast.ToString(v)))
	}
	affix, err := decodeAffix(m)
	o.Affix = affix
	return o, err
}

func decodeCustomOptions(m map[string]any) (types.CustomOptions, error) {
	var o types.CustomOptions
	if v, ok := opt(m, "customtype", "typename"); ok {
		o.TypeName = cast.ToString(v)
	}
	if v, ok := opt(m, "pattern", "regex"); ok {
		o.Pattern = cast.ToString(v)
	}
	if v, ok := opt(m, "value"); ok {
		o.Value = cast.ToString(v)
	}
	if v, ok := opt(m, "values"); ok {
		values, err := stringList(v)
		if err != nil {
			return o, fmt.Errorf("values: %w", err)
		}
		o.Values = values
	}
	affix, err := decodeAffix(m)
	o.Affix = affix
	return o, err
}

func decodeAffix(m map[string]any) (types.Affix, error) {
	var a types.Affix
	if v, ok := opt(m, "prefix"); ok {
		a.Prefix = cast.ToString(v)
	}
	if v, ok := opt(m, "suffix"); ok {
		a.Suffix = cast.ToString(v)
	}
	if v, ok := opt(m, "case", "caseoption"); ok {
		switch c := types.CaseOption(strings.ToLower(cast.ToString(v))); c {
		case "", types.CaseNone, types.CaseLower, types.CaseUpper, types.CaseTitle, types.CaseSentence:
			a.Case = c
		default:
			return a, fmt.Errorf("case: unknown case option %q", v)
		}
	}
	return a, nil
}

func floatPtr(m map[string]any, names ...string) (*float64, error) {
	v, ok := opt(m, names...)
	if !ok {
		return nil, nil
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func intPtr(m map[string]any, names ...string) (*int, error) {
	v, ok := opt(m, names...)
	if !ok {
		return nil, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// stringList accepts a list or a comma separated string.
func stringList(v any) ([]string, error) {
	var out []string
	if s, ok := v.(string); ok {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}
	values, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, err
	}
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// FromConfig turns a configuration back into a document, for writing starter
// schemas and serving presets.
func FromConfig(cfg *types.GeneratorConfig) *Document {
	rows := cfg.Rows
	doc := &Document{
		Table:  cfg.TableName,
		Rows:   &rows,
		Format: string(cfg.Format),
		Seed:   cfg.Seed,
	}
	for _, ct := range cfg.CustomTypes {
		doc.CustomTypes = append(doc.CustomTypes, CustomTypeDoc{
			Name:           ct.Name,
			ColumnType:     string(ct.Column),
			Pattern:        ct.Pattern,
			Values:         ct.Values,
			MinValue:       ct.Min,
			MaxValue:       ct.Max,
			Precision:      ct.Precision,
			NullPercentage: ct.NullPercentage,
			Prefix:         ct.Prefix,
			Suffix:         ct.Suffix,
			Case:           string(ct.Case),
		})
	}
	for _, f := range cfg.Fields {
		doc.Fields = append(doc.Fields, FieldDoc{
			Name:            f.Name,
			Type:            string(f.Type),
			ColumnType:      string(f.Column),
			AllowNull:       f.AllowNull,
			NullPercentage:  f.NullPercentage,
			DuplicateChance: f.DuplicateChance,
			Options:         optionsMap(f.Options),
		})
	}
	return doc
}

// optionsMap flattens typed options through their json tags.
func optionsMap(o types.Options) map[string]any {
	if o == nil {
		return nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || len(m) == 0 {
		return nil
	}
	// A zero step is meaningful and would otherwise decode as the default of 1.
	if n, ok := o.(types.NumericOptions); ok && n.Mode == types.ModeSequential {
		m["step_value"] = n.Step
	}
	return m
}
