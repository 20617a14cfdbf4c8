// Package catalog supplies the ordered items shown in the carousel: the
// built-in portfolio, YAML item files, and validation of both.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"portfolio/internal/carousel"
)

var (
	// ErrEmpty is returned for a file with no items.
	ErrEmpty = errors.New("catalog has no items")
	// ErrDuplicateID is returned when two items share an ID.
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrInvalidItem is returned when an item lacks a field its kind requires.
	ErrInvalidItem = errors.New("invalid item")
)

// File is the on-disk shape of an item file.
type File struct {
	Items []carousel.Item `yaml:"items"`
}

// Load reads and validates an item file.
func Load(path string) ([]carousel.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse decodes and validates YAML item data. Unknown keys are rejected.
func Parse(data []byte) ([]carousel.Item, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	for i := range f.Items {
		if f.Items[i].Kind == "" {
			f.Items[i].Kind = carousel.KindProject
		}
	}
	if err := Validate(f.Items); err != nil {
		return nil, err
	}
	return f.Items, nil
}

// Validate checks ID uniqueness and the fields each kind requires.
func Validate(items []carousel.Item) error {
	if len(items) == 0 {
		return ErrEmpty
	}

	var errs []error
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			errs = append(errs, fmt.Errorf("item %d: %w: missing id", i, ErrInvalidItem))
		} else if first, dup := seen[item.ID]; dup {
			errs = append(errs, fmt.Errorf("item %d: %w %q (first at %d)", i, ErrDuplicateID, item.ID, first))
		} else {
			seen[item.ID] = i
		}

		switch item.Kind {
		case carousel.KindProject:
			if item.Title == "" {
				errs = append(errs, fmt.Errorf("item %d (%s): %w: project needs a title", i, item.ID, ErrInvalidItem))
			}
		case carousel.KindCTA:
			if item.Heading == "" || item.ButtonText == "" || item.Link == "" {
				errs = append(errs, fmt.Errorf("item %d (%s): %w: cta needs title, text and link", i, item.ID, ErrInvalidItem))
			}
		default:
			errs = append(errs, fmt.Errorf("item %d (%s): %w: unknown type %q", i, item.ID, ErrInvalidItem, item.Kind))
		}
	}
	return errors.Join(errs...)
}

// Write saves items as YAML, creating parent directories.
func Write(path string, items []carousel.Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create items directory: %w", err)
	}
	data, err := Marshal(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	return nil
}

// Marshal encodes items in the item file format.
func Marshal(items []carousel.Item) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(File{Items: items}); err != nil {
		return nil, fmt.Errorf("failed to marshal items: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal items: %w", err)
	}
	return buf.Bytes(), nil
}

// Resolve returns the items at path, or the built-in catalog when path is
// empty.
func Resolve(path string) ([]carousel.Item, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
