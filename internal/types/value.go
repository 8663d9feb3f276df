package types

import (
	"math"
	"strconv"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// MaxSafeInt is the largest integer every output format can carry without precision loss.
const MaxSafeInt = 1<<53 - 1

// Value is a single generated cell. The zero Value is null.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

var Null = Value{}

func Int(v int64) Value {
	return Value{Kind: KindInt, Int: ClampInt(v)}
}

func Float(v float64) Value {
	if math.IsNaN(v) {
		v = 0
	}
	if math.IsInf(v, 1) || v > MaxSafeInt {
		v = MaxSafeInt
	}
	if math.IsInf(v, -1) || v < -MaxSafeInt {
		v = -MaxSafeInt
	}
	return Value{Kind: KindFloat, Float: v}
}

func Bool(v bool) Value {
	return Value{Kind: KindBool, Bool: v}
}

func String(v string) Value {
	return Value{Kind: KindString, Str: v}
}

func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// String renders the value the way every text format shows it. Null renders as "".
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// Interface returns the value as a plain Go value suitable for database/sql arguments.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindString:
		return v.Str
	default:
		return nil
	}
}

// ClampInt bounds v to ±MaxSafeInt.
func ClampInt(v int64) int64 {
	if v > MaxSafeInt {
		return MaxSafeInt
	}
	if v < -MaxSafeInt {
		return -MaxSafeInt
	}
	return v
}

// Row holds one generated record, one value per field in field order.
type Row []Value

// Table is a fully materialised generation result.
type Table struct {
	Name   string
	Fields []FieldSpec
	Rows   []Row
}
