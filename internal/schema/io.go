package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON document. Unknown keys are rejected so typos
// surface instead of being ignored.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// LoadFile reads a document from disk. The extension picks the decoder:
// .json, .yaml or .yml.
func LoadFile(path string) (*Document, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "json", "yaml", "yml":
	default:
		return nil, fmt.Errorf("%w: unsupported schema file extension %q", ErrInvalidDocument, filepath.Ext(path))
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}

	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	return &doc, nil
}

// Marshal renders doc as YAML with two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return buf.Bytes(), nil
}
