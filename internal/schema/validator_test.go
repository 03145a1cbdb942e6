package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammonelzinga/scripturelens-cli/internal/config"
	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
)

func writeBook(t *testing.T, dir string, book *corpus.Book) string {
	t.Helper()
	data, err := book.Encode()
	require.NoError(t, err)
	path := filepath.Join(dir, book.FileName())
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func validBook() *corpus.Book {
	book := corpus.New("Genesis")
	ch := book.OpenChapter(1)
	ch.Verses = append(ch.Verses, &corpus.Verse{Number: 1, Text: "In the beginning"})
	return book
}

func TestValidateFileValid(t *testing.T) {
	dir := t.TempDir()
	path := writeBook(t, dir, validBook())

	res := NewValidator(config.New()).ValidateFile(path)
	assert.Empty(t, res.Errors)
}

func TestValidateFileAcceptsAbsentBook(t *testing.T) {
	// Whole-master export emits every canon book; absent ones carry an
	// empty chapter list and must still validate.
	dir := t.TempDir()
	path := writeBook(t, dir, corpus.New("Exodus"))

	res := NewValidator(config.New()).ValidateFile(path)
	assert.Empty(t, res.Errors)
}

func TestValidateFileAcceptsReopenedChapters(t *testing.T) {
	// The numbered parser opens a fresh chapter object whenever the chapter
	// number changes, so a book may legitimately repeat a chapter number.
	dir := t.TempDir()
	book := corpus.New("Genesis")
	ch := book.OpenChapter(1)
	ch.Verses = append(ch.Verses, &corpus.Verse{Number: 1, Text: "In the beginning"})
	ch = book.OpenChapter(2)
	ch.Verses = append(ch.Verses, &corpus.Verse{Number: 1, Text: "Thus the heavens"})
	ch = book.OpenChapter(1)
	ch.Verses = append(ch.Verses, &corpus.Verse{Number: 1, Text: "Reopened"})
	path := writeBook(t, dir, book)

	res := NewValidator(config.New()).ValidateFile(path)
	assert.Empty(t, res.Errors)
}

func TestValidateFileSchemaViolations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"book":"Genesis","chapters":[]}`), 0o644))

	res := NewValidator(config.New()).ValidateFile(path)
	require.NotEmpty(t, res.Errors)
}

func TestValidateFileUnknownBook(t *testing.T) {
	dir := t.TempDir()
	book := corpus.New("Atlantis")
	book.Order = 1
	ch := book.OpenChapter(1)
	ch.Verses = append(ch.Verses, &corpus.Verse{Number: 1, Text: "lost"})
	path := filepath.Join(dir, "Atlantis.json")
	data, err := book.Encode()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	res := NewValidator(config.New()).ValidateFile(path)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "not part of the canon")
}

func TestValidateFileWrongOrder(t *testing.T) {
	dir := t.TempDir()
	book := validBook()
	book.Order = 40
	path := writeBook(t, dir, book)

	res := NewValidator(config.New()).ValidateFile(path)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "canonical position 1")
}

func TestValidateDirMixed(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, dir, validBook())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"order":3}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	summary, err := NewValidator(config.New()).ValidateDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.Invalid)
	assert.True(t, summary.HasErrors())
	require.Error(t, summary.Error())
	assert.Contains(t, summary.Error().Error(), "broken.json")
}

func TestValidateDirMissing(t *testing.T) {
	_, err := NewValidator(config.New()).ValidateDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
