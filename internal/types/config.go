package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNegativeRows   = errors.New("row count cannot be negative")
	ErrRowLimit       = errors.New("row count exceeds the supported range")
	ErrNoFields       = errors.New("at least one field is required")
	ErrEmptyFieldName = errors.New("field name cannot be empty")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrUnknownFormat  = errors.New("unknown output format")
)

// MaxRows is the largest row count the generator accepts. Row indices must stay
// inside the 32-bit range so sequential values never overflow.
const MaxRows = 1<<31 - 1

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatSQL  Format = "sql"
	FormatHTML Format = "html"
	FormatXML  Format = "xml"
	FormatXLSX Format = "xlsx"
)

var Formats = []Format{FormatJSON, FormatCSV, FormatSQL, FormatHTML, FormatXML, FormatXLSX}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatJSON, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
}

// GeneratorConfig is one complete generation request.
type GeneratorConfig struct {
	Rows        int
	Fields      []FieldSpec
	Format      Format
	TableName   string
	CustomTypes []CustomType
	Seed        *int64
}

// CustomType looks up a named custom type.
func (c *GeneratorConfig) CustomType(name string) (CustomType, bool) {
	for _, ct := range c.CustomTypes {
		if ct.Name == name {
			return ct, true
		}
	}
	return CustomType{}, false
}

func (c *GeneratorConfig) Validate() error {
	if c.Rows < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRows, c.Rows)
	}
	if c.Rows > MaxRows {
		return fmt.Errorf("%w: %d", ErrRowLimit, c.Rows)
	}
	if len(c.Fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("field %d: %w", i, ErrEmptyFieldName)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true
	}
	if c.Format != "" {
		if _, err := ParseFormat(string(c.Format)); err != nil {
			return err
		}
	}
	return nil
}
