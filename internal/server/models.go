package server

import (
	"github.com/Lumos-Labs-HQ/mockdata/internal/generator"
	"github.com/Lumos-Labs-HQ/mockdata/internal/schema"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// GenerateRequest is a schema document plus the serializer settings that do
// not live in the document itself.
type GenerateRequest struct {
	schema.Document
	Dialect   string `json:"dialect,omitempty"`
	BatchSize int    `json:"batch_size,omitempty"`
}

type PresetInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Table       string `json:"table"`
	Fields      int    `json:"fields"`
}

type PatternList struct {
	Patterns []generator.PatternTemplate `json:"patterns"`
}
