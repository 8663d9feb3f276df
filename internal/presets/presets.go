// Package presets holds the built-in schema templates.
package presets

import (
	"fmt"
	"slices"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

type Preset struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Table       string `json:"table"`
	fields      func() []types.FieldSpec
}

// Fields returns a fresh copy of the preset's fields.
func (p Preset) Fields() []types.FieldSpec {
	return p.fields()
}

// Config builds a generator configuration for rows rows.
func (p Preset) Config(rows int) *types.GeneratorConfig {
	return &types.GeneratorConfig{
		Rows:      rows,
		Fields:    p.fields(),
		TableName: p.Table,
	}
}

func ptr[T any](v T) *T { return &v }

var all = []Preset{
	{
		Name:        "default",
		Title:       "Default",
		Description: "Identifier, name, email and phone",
		Table:       "users",
		fields: func() []types.FieldSpec {
			return []types.FieldSpec{
				{Name: "id", Type: types.TypeAutoIncrement},
				{Name: "full_name", Type: types.TypeName},
				{Name: "email", Type: types.TypeEmail},
				{Name: "phone", Type: types.TypePhone},
			}
		},
	},
	{
		Name:        "user-profile",
		Title:       "User Profile",
		Description: "Basic user profile information",
		Table:       "user_profiles",
		fields: func() []types.FieldSpec {
			return []types.FieldSpec{
				{Name: "id", Type: types.TypeAutoIncrement},
				{Name: "full_name", Type: types.TypeName},
				{Name: "email", Type: types.TypeEmail},
				{Name: "phone", Type: types.TypePhone},
				{Name: "address", Type: types.TypeAddress},
				{Name: "city", Type: types.TypeCity},
				{Name: "state", Type: types.TypeState},
				{Name: "zip_code", Type: types.TypeZipCode},
			}
		},
	},
	{
		Name:        "employee",
		Title:       "Employee",
		Description: "Employee data for HR systems",
		Table:       "employees",
		fields: func() []types.FieldSpec {
			return []types.FieldSpec{
				{Name: "employee_id", Type: types.TypeAutoIncrement, Options: types.IDOptions{Digits: 4, Prefix: "EMP-"}},
				{Name: "first_name", Type: types.TypeString, Options: types.TextOptions{Subtype: types.SubtypeFirstName}},
				{Name: "last_name", Type: types.TypeString, Options: types.TextOptions{Subtype: types.SubtypeLastName}},
				{Name: "email", Type: types.TypeEmail},
				{Name: "department", Type: types.TypeDepartment},
				{Name: "job_title", Type: types.TypeJobTitle},
				{Name: "hire_date", Type: types.TypeDate},
			}
		},
	},
	{
		Name:        "product-catalog",
		Title:       "Product Catalog",
		Description: "E-commerce product information",
		Table:       "products",
		fields: func() []types.FieldSpec {
			return []types.FieldSpec{
				{Name: "product_id", Type: types.TypeAutoIncrement},
				{Name: "product_name", Type: types.TypeString, Options: types.TextOptions{Subtype: types.SubtypeProducts}},
				{Name: "category", Type: types.TypeCustom, Options: types.CustomOptions{
					Values: []string{"Electronics", "Clothing", "Home", "Books", "Sports", "Beauty"},
				}},
				{Name: "price", Type: types.TypeNumeric, Column: types.ColumnFloat, Options: types.NumericOptions{
					Kind: types.NumberFloat, Min: ptr(5.0), Max: ptr(500.0), Precision: ptr(2), Step: 1,
				}},
				{Name: "in_stock", Type: types.TypeBoolean},
				{Name: "description", Type: types.TypeText},
			}
		},
	},
}

// All returns every preset in display order.
func All() []Preset {
	return slices.Clone(all)
}

func Names() []string {
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// Get looks a preset up by name.
func Get(name string) (Preset, error) {
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q (available: %v)", name, Names())
}
