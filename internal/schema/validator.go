// Package schema validates exported book files against the canonical JSON schema.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"github.com/ammonelzinga/scripturelens-cli/internal/canon"
	"github.com/ammonelzinga/scripturelens-cli/internal/config"
	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
)

//go:embed book.schema.json
var bookSchema []byte

// Result holds the validation outcome for one file.
type Result struct {
	File   string   `json:"file"`
	Errors []string `json:"errors"`
}

// Summary aggregates results across a directory.
type Summary struct {
	Total      int            `json:"total"`
	Valid      int            `json:"valid"`
	Invalid    int            `json:"invalid"`
	ErrorCount map[string]int `json:"error_counts"`
	Results    []Result       `json:"results"`
}

// Validator checks exported files against the embedded schema plus canon rules.
type Validator struct {
	schemaLoader gojsonschema.JSONLoader
	log          *logrus.Entry
}

// NewValidator builds a validator using the embedded book schema.
func NewValidator(opts *config.Options) *Validator {
	return &Validator{
		schemaLoader: gojsonschema.NewBytesLoader(bookSchema),
		log:          opts.Logger().WithField("component", "schema-validator"),
	}
}

// ValidateDir validates every .json file directly under dir, in name order.
func (v *Validator) ValidateDir(dir string) (*Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	summary := &Summary{ErrorCount: map[string]int{}}
	for _, name := range files {
		res := v.ValidateFile(filepath.Join(dir, name))
		res.File = name
		summary.Results = append(summary.Results, res)
		summary.Total++
		if len(res.Errors) == 0 {
			summary.Valid++
		} else {
			summary.Invalid++
			summary.ErrorCount[name] = len(res.Errors)
		}
	}

	if summary.Invalid > 0 {
		v.log.WithField("invalid", summary.Invalid).Warn("Validation found issues")
	} else {
		v.log.WithField("total", summary.Total).Info("Validation passed")
	}
	return summary, nil
}

// ValidateFile validates a single exported file.
func (v *Validator) ValidateFile(path string) Result {
	res := Result{File: filepath.Base(path), Errors: []string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("failed to read file: %v", err))
		return res
	}

	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(v.schemaLoader, docLoader)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("schema validation error: %v", err))
		return res
	}
	if !result.Valid() {
		for _, desc := range result.Errors() {
			res.Errors = append(res.Errors, desc.String())
		}
		return res
	}

	book, err := corpus.Decode(data)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("failed to decode book: %v", err))
		return res
	}

	order := canon.Order(book.Name)
	if order == 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("book '%s' is not part of the canon", book.Name))
	} else if order != book.Order {
		res.Errors = append(res.Errors, fmt.Sprintf("order %d does not match canonical position %d for %s", book.Order, order, book.Name))
	}

	return res
}

// HasErrors indicates if any file failed validation.
func (s *Summary) HasErrors() bool {
	return s.Invalid > 0
}

// Error provides a formatted error when the summary is invalid.
func (s *Summary) Error() error {
	if !s.HasErrors() {
		return nil
	}
	parts := make([]string, 0, len(s.ErrorCount))
	for _, res := range s.Results {
		if len(res.Errors) > 0 {
			parts = append(parts, fmt.Sprintf("%s (%d errors)", res.File, len(res.Errors)))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}
