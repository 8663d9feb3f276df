package generator

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// finish applies the post-processing chain: case transform, coercion to the
// column type, then prefix and suffix. An affix always yields a string value.
func finish(v types.Value, column types.ColumnType, precision int, affix types.Affix) types.Value {
	if v.Kind == types.KindString {
		v.Str = applyCase(v.Str, affix.Case)
	}
	v = coerce(v, column, precision)
	if affix.Empty() || v.IsNull() {
		return v
	}
	return types.String(affix.Prefix + v.String() + affix.Suffix)
}

func applyCase(s string, c types.CaseOption) string {
	switch c {
	case types.CaseLower:
		return cases.Lower(language.Und).String(s)
	case types.CaseUpper:
		return cases.Upper(language.Und).String(s)
	case types.CaseTitle:
		return cases.Title(language.Und).String(s)
	case types.CaseSentence:
		lower := cases.Lower(language.Und).String(s)
		r, size := utf8.DecodeRuneInString(lower)
		if r == utf8.RuneError {
			return lower
		}
		return string(unicode.ToUpper(r)) + lower[size:]
	}
	return s
}

func coerce(v types.Value, column types.ColumnType, precision int) types.Value {
	if v.IsNull() {
		return v
	}
	switch column {
	case types.ColumnInteger:
		return toInt(v)
	case types.ColumnFloat, types.ColumnDouble:
		f := toFloat(v)
		return types.Float(round(f.Float, precision))
	case types.ColumnBoolean:
		return toBool(v)
	}
	if v.Kind == types.KindString {
		return v
	}
	return types.String(v.String())
}

func toInt(v types.Value) types.Value {
	switch v.Kind {
	case types.KindInt:
		return v
	case types.KindFloat:
		return types.Int(int64(math.Trunc(v.Float)))
	case types.KindBool:
		if v.Bool {
			return types.Int(1)
		}
		return types.Int(0)
	}
	s := strings.TrimSpace(v.Str)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return types.Int(n)
	}
	if f, err := cast.ToFloat64E(s); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return types.Int(int64(math.Trunc(math.Max(math.Min(f, types.MaxSafeInt), -types.MaxSafeInt))))
	}
	return types.Int(0)
}

func toFloat(v types.Value) types.Value {
	switch v.Kind {
	case types.KindFloat:
		return v
	case types.KindInt:
		return types.Float(float64(v.Int))
	case types.KindBool:
		if v.Bool {
			return types.Float(1)
		}
		return types.Float(0)
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(v.Str))
	if err != nil {
		return types.Float(0)
	}
	return types.Float(f)
}

func toBool(v types.Value) types.Value {
	switch v.Kind {
	case types.KindBool:
		return v
	case types.KindInt:
		return types.Bool(v.Int != 0)
	case types.KindFloat:
		return types.Bool(v.Float != 0)
	}
	switch strings.ToLower(strings.TrimSpace(v.Str)) {
	case "true", "yes", "1":
		return types.Bool(true)
	}
	return types.Bool(false)
}
