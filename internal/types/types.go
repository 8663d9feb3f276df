package types

import (
	"fmt"
	"strings"
)

type SemanticType string

const (
	TypeAutoIncrement SemanticType = "autoincrement"
	TypeNumeric       SemanticType = "numeric"
	TypeString        SemanticType = "string"
	TypeName          SemanticType = "name"
	TypeEmail         SemanticType = "email"
	TypePhone         SemanticType = "phone"
	TypeAddress       SemanticType = "address"
	TypeCity          SemanticType = "city"
	TypeState         SemanticType = "state"
	TypeZipCode       SemanticType = "zipCode"
	TypeCountry       SemanticType = "country"
	TypeCompany       SemanticType = "company"
	TypeJobTitle      SemanticType = "jobTitle"
	TypeDepartment    SemanticType = "department"
	TypeGender        SemanticType = "gender"
	TypeDate          SemanticType = "date"
	TypeTime          SemanticType = "time"
	TypeDateTime      SemanticType = "datetime"
	TypeColor         SemanticType = "color"
	TypeURL           SemanticType = "url"
	TypeCustom        SemanticType = "custom"
	TypeText          SemanticType = "text"
	TypeBoolean       SemanticType = "boolean"
)

// SemanticTypes lists every supported semantic type in display order.
var SemanticTypes = []SemanticType{
	TypeAutoIncrement, TypeNumeric, TypeString, TypeName, TypeEmail, TypePhone,
	TypeAddress, TypeCity, TypeState, TypeZipCode, TypeCountry, TypeCompany,
	TypeJobTitle, TypeDepartment, TypeGender, TypeDate, TypeTime, TypeDateTime,
	TypeColor, TypeURL, TypeCustom, TypeText, TypeBoolean,
}

func (t SemanticType) Valid() bool {
	for _, st := range SemanticTypes {
		if st == t {
			return true
		}
	}
	return false
}

type ColumnType string

const (
	ColumnString  ColumnType = "string"
	ColumnInteger ColumnType = "integer"
	ColumnFloat   ColumnType = "float"
	ColumnDouble  ColumnType = "double"
	ColumnBoolean ColumnType = "boolean"
)

func (c ColumnType) Valid() bool {
	switch c {
	case ColumnString, ColumnInteger, ColumnFloat, ColumnDouble, ColumnBoolean:
		return true
	}
	return false
}

// IsNumeric reports whether values of the column are written as numbers.
func (c ColumnType) IsNumeric() bool {
	return c == ColumnInteger || c == ColumnFloat || c == ColumnDouble
}

// ParseColumnType maps a document tag to a ColumnType. Empty means string.
func ParseColumnType(s string) (ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string", "text", "varchar":
		return ColumnString, nil
	case "integer", "int":
		return ColumnInteger, nil
	case "float":
		return ColumnFloat, nil
	case "double":
		return ColumnDouble, nil
	case "boolean", "bool":
		return ColumnBoolean, nil
	}
	return "", fmt.Errorf("unknown column type %q", s)
}

type CaseOption string

const (
	CaseNone     CaseOption = "none"
	CaseLower    CaseOption = "lower"
	CaseUpper    CaseOption = "upper"
	CaseTitle    CaseOption = "title"
	CaseSentence CaseOption = "sentence"
)

type GenerationMode string

const (
	ModeRandom     GenerationMode = "random"
	ModeSequential GenerationMode = "sequential"
)

type NumberKind string

const (
	NumberInteger NumberKind = "integer"
	NumberFloat   NumberKind = "float"
	NumberDouble  NumberKind = "double"
)

type StringSubtype string

const (
	SubtypeFullName   StringSubtype = "fullname"
	SubtypeFirstName  StringSubtype = "firstname"
	SubtypeLastName   StringSubtype = "lastname"
	SubtypeCountries  StringSubtype = "countries"
	SubtypeCities     StringSubtype = "cities"
	SubtypeProducts   StringSubtype = "products"
	SubtypeCategories StringSubtype = "categories"
	SubtypeCompanies  StringSubtype = "companies"
	SubtypeDepartment StringSubtype = "departments"
	SubtypeColors     StringSubtype = "colors"
	SubtypeLorem      StringSubtype = "lorem"
)

// Affix holds the string post-processing shared by every string-producing option set.
type Affix struct {
	Prefix string     `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix string     `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Case   CaseOption `json:"case,omitempty" yaml:"case,omitempty"`
}

func (a Affix) Empty() bool {
	return a.Prefix == "" && a.Suffix == ""
}

// Options is the per-type option payload of a field. The concrete type is one of
// IDOptions, NumericOptions, TextOptions or CustomOptions.
type Options interface {
	isOptions()
}

type IDOptions struct {
	Digits int    `json:"digits,omitempty" yaml:"digits,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	UUID   bool   `json:"uuid,omitempty" yaml:"uuid,omitempty"`
}

type NumericOptions struct {
	Kind      NumberKind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Mode      GenerationMode `json:"generation_type,omitempty" yaml:"generation_type,omitempty"`
	Min       *float64       `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	Max       *float64       `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	Precision *int           `json:"precision,omitempty" yaml:"precision,omitempty"`
	Start     float64        `json:"start_value,omitempty" yaml:"start_value,omitempty"`
	Step      float64        `json:"step_value,omitempty" yaml:"step_value,omitempty"`
	MinDigits int            `json:"min_digits,omitempty" yaml:"min_digits,omitempty"`
	MaxDigits int            `json:"max_digits,omitempty" yaml:"max_digits,omitempty"`
	Affix     `yaml:",inline"`
}

type TextOptions struct {
	Subtype StringSubtype `json:"string_type,omitempty" yaml:"string_type,omitempty"`
	Affix   `yaml:",inline"`
}

type CustomOptions struct {
	TypeName string   `json:"custom_type,omitempty" yaml:"custom_type,omitempty"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Values   []string `json:"values,omitempty" yaml:"values,omitempty"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty"`
	Affix    `yaml:",inline"`
}

func (IDOptions) isOptions()      {}
func (NumericOptions) isOptions() {}
func (TextOptions) isOptions()    {}
func (CustomOptions) isOptions()  {}

// FieldSpec describes one output column.
type FieldSpec struct {
	Name            string
	Type            SemanticType
	Column          ColumnType
	AllowNull       bool
	NullPercentage  *float64
	DuplicateChance int
	Options         Options
}

// ColumnType returns the declared column type. When none is declared, numeric and
// boolean fields keep their natural type and everything else is a string.
func (f FieldSpec) ColumnType() ColumnType {
	if f.Column != "" {
		return f.Column
	}
	switch f.Type {
	case TypeNumeric:
		opts, _ := f.Options.(NumericOptions)
		switch opts.Kind {
		case NumberFloat:
			return ColumnFloat
		case NumberDouble:
			return ColumnDouble
		}
		return ColumnInteger
	case TypeBoolean:
		return ColumnBoolean
	}
	return ColumnString
}

// IsID reports whether the field is a row-index identifier.
func (f FieldSpec) IsID() bool {
	return f.Type == TypeAutoIncrement
}

// IsSequentialID reports whether the field is an index-derived (non-uuid) identifier.
func (f FieldSpec) IsSequentialID() bool {
	if !f.IsID() {
		return false
	}
	opts, _ := f.Options.(IDOptions)
	return !opts.UUID
}

// CustomType is a named, reusable bundle of generation options.
type CustomType struct {
	Name           string     `json:"name" yaml:"name"`
	Column         ColumnType `json:"column_type,omitempty" yaml:"column_type,omitempty"`
	Pattern        string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Values         []string   `json:"values,omitempty" yaml:"values,omitempty"`
	Min            *float64   `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	Max            *float64   `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	Precision      *int       `json:"precision,omitempty" yaml:"precision,omitempty"`
	NullPercentage float64    `json:"null_percentage,omitempty" yaml:"null_percentage,omitempty"`
	Affix          `yaml:",inline"`
}
