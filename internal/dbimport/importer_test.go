package dbimport

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammonelzinga/scripturelens-cli/internal/config"
	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
)

func sampleBooks() []*corpus.Book {
	genesis := corpus.New("Genesis")
	ch := genesis.OpenChapter(1)
	ch.Verses = append(ch.Verses,
		&corpus.Verse{Number: 1, Text: "In the beginning"},
		&corpus.Verse{Number: 2, Text: "And the earth"},
	)
	exodus := corpus.New("Exodus")
	ch = exodus.OpenChapter(1)
	ch.Verses = append(ch.Verses, &corpus.Verse{Number: 1, Text: "Now these are the names"})
	return []*corpus.Book{genesis, exodus}
}

func TestRowsFlattensBooks(t *testing.T) {
	rows := Rows(sampleBooks(), "KJV")
	require.Len(t, rows, 3)
	assert.Equal(t, "Genesis", rows[0].Book)
	assert.Equal(t, 1, rows[0].Chapter)
	assert.Equal(t, 2, rows[1].Verse)
	assert.Equal(t, "Exodus", rows[2].Book)
	assert.Equal(t, "KJV", rows[2].Translation)
}

func TestImportAndCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.db")
	im, err := Open(config.New(), path)
	require.NoError(t, err)
	defer im.Close()

	inserted, failed := im.Import(Rows(sampleBooks(), "KJV"))
	assert.Equal(t, 3, inserted)
	assert.Equal(t, 0, failed)

	count, err := im.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestImportEmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	im, err := Open(config.New(), path)
	require.NoError(t, err)
	defer im.Close()

	inserted, failed := im.Import(nil)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 0, failed)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(config.New(), filepath.Join(t.TempDir(), "missing", "sub", "file.db"))
	require.Error(t, err)
}
