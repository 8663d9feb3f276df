// Package schema reads and writes generator documents: the JSON or YAML files
// that describe a table of fields to generate.
package schema

import (
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

// Document is the on-disk form of a generator configuration.
type Document struct {
	Table       string          `json:"table,omitempty" yaml:"table,omitempty" mapstructure:"table"`
	Rows        *int            `json:"rows,omitempty" yaml:"rows,omitempty" mapstructure:"rows"`
	Format      string          `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`
	Seed        *int64          `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`
	CustomTypes []CustomTypeDoc `json:"custom_types,omitempty" yaml:"custom_types,omitempty" mapstructure:"custom_types"`
	Fields      []FieldDoc      `json:"fields" yaml:"fields" mapstructure:"fields"`
}

type FieldDoc struct {
	Name            string         `json:"name" yaml:"name" mapstructure:"name"`
	Type            string         `json:"type" yaml:"type" mapstructure:"type"`
	ColumnType      string         `json:"column_type,omitempty" yaml:"column_type,omitempty" mapstructure:"column_type"`
	AllowNull       bool           `json:"allow_null,omitempty" yaml:"allow_null,omitempty" mapstructure:"allow_null"`
	NullPercentage  *float64       `json:"null_percentage,omitempty" yaml:"null_percentage,omitempty" mapstructure:"null_percentage"`
	DuplicateChance int            `json:"duplicate_chance,omitempty" yaml:"duplicate_chance,omitempty" mapstructure:"duplicate_chance"`
	Options         map[string]any `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`
}

type CustomTypeDoc struct {
	Name           string   `json:"name" yaml:"name" mapstructure:"name"`
	ColumnType     string   `json:"column_type,omitempty" yaml:"column_type,omitempty" mapstructure:"column_type"`
	Pattern        string   `json:"pattern,omitempty" yaml:"pattern,omitempty" mapstructure:"pattern"`
	Values         []string `json:"values,omitempty" yaml:"values,omitempty" mapstructure:"values"`
	MinValue       *float64 `json:"min_value,omitempty" yaml:"min_value,omitempty" mapstructure:"min_value"`
	MaxValue       *float64 `json:"max_value,omitempty" yaml:"max_value,omitempty" mapstructure:"max_value"`
	Precision      *int     `json:"precision,omitempty" yaml:"precision,omitempty" mapstructure:"precision"`
	NullPercentage float64  `json:"null_percentage,omitempty" yaml:"null_percentage,omitempty" mapstructure:"null_percentage"`
	Prefix         string   `json:"prefix,omitempty" yaml:"prefix,omitempty" mapstructure:"prefix"`
	Suffix         string   `json:"suffix,omitempty" yaml:"suffix,omitempty" mapstructure:"suffix"`
	Case           string   `json:"case,omitempty" yaml:"case,omitempty" mapstructure:"case"`
}

// Defaults fill document values that are left unset.
type Defaults struct {
	Rows      int
	Format    types.Format
	TableName string
}
