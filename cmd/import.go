package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
	"github.com/ammonelzinga/scripturelens-cli/internal/dbimport"
	"github.com/ammonelzinga/scripturelens-cli/internal/exporter"
)

func newImportCommand() *cobra.Command {
	var jsonDir string
	var booksDir string
	var dbPath string
	var translation string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import parsed verses into a SQLite database",
		Long:  "Import reads exported book JSON files or split per-book text files and loads every verse into a SQLite table, one row per verse, in batches.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			if (jsonDir == "") == (booksDir == "") {
				return NewCLIError(ExitCodeValidation, "exactly one of --json-dir or --books-dir is required")
			}
			if translation == "" {
				translation = opts.Upload.Tradition
			}

			var books []*corpus.Book
			if jsonDir != "" {
				books, err = readJSONBooks(jsonDir)
			} else {
				books, _, err = exporter.New(opts).FromBooksDir(booksDir)
			}
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return WrapCLIError(ExitCodeNotFound, err)
				}
				return WrapCLIError(ExitCodeFilesystem, err)
			}

			rows := dbimport.Rows(books, translation)
			if opts.DryRun {
				message := fmt.Sprintf("Would import %d verses into %s", len(rows), dbPath)
				return respond(cmd, opts, true, message, map[string]interface{}{
					"verses":  len(rows),
					"db":      dbPath,
					"dry_run": true,
				})
			}

			im, err := dbimport.Open(opts, dbPath)
			if err != nil {
				return WrapCLIError(ExitCodeDatabase, err)
			}
			defer im.Close()

			inserted, failed := im.Import(rows)
			total, err := im.Count()
			if err != nil {
				return WrapCLIError(ExitCodeDatabase, err)
			}

			message := fmt.Sprintf("Imported %d verses into %s (%d total)", inserted, dbPath, total)
			data := map[string]interface{}{
				"books":          len(books),
				"inserted":       inserted,
				"failed_batches": failed,
				"total":          total,
				"translation":    translation,
				"db":             dbPath,
			}
			if err := respond(cmd, opts, failed == 0, message, data); err != nil {
				return err
			}
			if failed > 0 {
				return WrapCLIError(ExitCodeDatabase, fmt.Errorf("%d batches failed to insert", failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonDir, "json-dir", "", "Directory of exported book JSON files")
	cmd.Flags().StringVar(&booksDir, "books-dir", "", "Directory of split per-book text files")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the SQLite database file")
	cmd.Flags().StringVar(&translation, "translation", "", "Translation label stored on every row (default from config)")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

// readJSONBooks loads every .json file directly under dir, in name order.
func readJSONBooks(dir string) ([]*corpus.Book, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	books := make([]*corpus.Book, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		// #nosec G304 -- paths are confined to the caller-provided directory
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		book, err := corpus.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		books = append(books, book)
	}
	return books, nil
}
