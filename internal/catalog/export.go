package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes a book list as a YAML sequence.
func MarshalYAML(books []Book) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON encodes a book list as an indented JSON array.
func MarshalJSON(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseYAML decodes a YAML sequence produced by MarshalYAML.
func ParseYAML(data []byte) ([]Book, error) {
	if len(data) == 0 {
		return []Book{}, nil
	}
	var books []Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if books == nil {
		return []Book{}, nil
	}
	return books, nil
}
