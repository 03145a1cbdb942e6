// Package exporter assembles canonical books from either source form and
// writes the per-book JSON files.
package exporter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ammonelzinga/scripturelens-cli/internal/canon"
	"github.com/ammonelzinga/scripturelens-cli/internal/config"
	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
	"github.com/ammonelzinga/scripturelens-cli/internal/numbered"
	"github.com/ammonelzinga/scripturelens-cli/internal/util"
)

// ErrUnsupportedMaster indicates a master file in the heading convention
// was handed to the export path, which only accepts the numbered layout.
var ErrUnsupportedMaster = errors.New("master file is not in the numbered format; run split first")

// Exporter turns source files into canonical Book structures and JSON.
type Exporter struct {
	opts *config.Options
	log  *logrus.Entry
}

// New constructs an exporter with shared configuration.
func New(opts *config.Options) *Exporter {
	return &Exporter{
		opts: opts,
		log:  opts.Logger().WithField("component", "exporter"),
	}
}

// FromBooksDir loads per-book text files from a directory of split output.
// Only books whose file exists are returned; missing files are reported by
// canonical name and skipped.
func (e *Exporter) FromBooksDir(dir string) ([]*corpus.Book, []string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, nil, fmt.Errorf("books directory not found: %w", err)
	}

	var books []*corpus.Book
	var missing []string
	for _, name := range canon.Books {
		path := filepath.Join(dir, canon.FileName(name, ".txt"))
		// #nosec G304 -- per-book paths are derived from the fixed canon
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				e.log.WithField("book", name).Warn("missing book file, skipping")
				missing = append(missing, name)
				continue
			}
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		books = append(books, corpus.ParseText(canon.FileName(name, ""), data))
	}
	return books, missing, nil
}

// FromMaster parses a whole numbered-format master file into all 66 books.
// A master in the heading convention is rejected with ErrUnsupportedMaster.
func (e *Exporter) FromMaster(path string) ([]*corpus.Book, error) {
	lines, err := util.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read master file: %w", err)
	}
	if !numbered.Detect(lines) {
		return nil, ErrUnsupportedMaster
	}
	books := numbered.ParseBooks(lines)
	e.log.WithField("books", len(books)).Info("parsed numbered master")
	return books, nil
}

// WriteJSON serializes one book to its JSON file under outDir, returning
// the written path.
func (e *Exporter) WriteJSON(book *corpus.Book, outDir string) (string, error) {
	data, err := book.Encode()
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, book.FileName())
	if err := util.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	e.log.WithFields(logrus.Fields{"book": book.Name, "path": path}).Info("wrote book JSON")
	return path, nil
}
