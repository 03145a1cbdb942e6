// Package testutil provides a temporary corpus workspace for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ammonelzinga/scripturelens-cli/internal/config"
)

// Fixture provides a temporary workspace seeded with corpus files.
type Fixture struct {
	Root string
}

// NewFixture initialises a new empty test workspace.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{Root: t.TempDir()}
}

// Options returns cli options initialised for the fixture.
func (f *Fixture) Options(t *testing.T, jsonOut, verbose, dry bool) *config.Options {
	t.Helper()
	opts := config.New()
	if err := opts.Init(f.Root, jsonOut, verbose, dry, ""); err != nil {
		t.Fatalf("failed to init options: %v", err)
	}
	return opts
}

// WriteFile writes a file relative to the fixture root.
func (f *Fixture) WriteFile(t *testing.T, relative string, data []byte) string {
	t.Helper()
	path := filepath.Join(f.Root, relative)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

// Path resolves a path relative to the fixture root.
func (f *Fixture) Path(parts ...string) string {
	return filepath.Join(append([]string{f.Root}, parts...)...)
}

// WriteHeadingMaster writes a small master file in the decorative heading
// convention and returns its path.
func (f *Fixture) WriteHeadingMaster(t *testing.T, relative string) string {
	t.Helper()
	content := strings.Join([]string{
		"THE FIRST BOOK OF MOSES: CALLED GENESIS",
		"",
		"1:1 In the beginning God created the heaven and the earth.",
		"1:2 And the earth was without form, and void; and darkness was",
		"upon the face of the deep.",
		"2:1 Thus the heavens and the earth were finished.",
		"",
		"THE SECOND BOOK OF MOSES: CALLED EXODUS",
		"",
		"1:1 Now these are the names of the children of Israel.",
		"",
	}, "\n")
	return f.WriteFile(t, relative, []byte(content))
}

// WriteNumberedMaster writes a master file in the numbered convention that
// is large enough to trip the format detector, and returns its path.
func (f *Fixture) WriteNumberedMaster(t *testing.T, relative string) string {
	t.Helper()
	var b strings.Builder
	for book := 1; book <= 33; book++ {
		fmt.Fprintf(&b, "BOOK %02d Placeholder\n", book)
		for verse := 1; verse <= 7; verse++ {
			fmt.Fprintf(&b, "%02d:001:%03d Verse %d of book %d.\n", book, verse, verse, book)
		}
	}
	return f.WriteFile(t, relative, []byte(b.String()))
}

// WriteBookFile writes one normalized per-book text file under dir.
func (f *Fixture) WriteBookFile(t *testing.T, dir, stem string, lines ...string) string {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	return f.WriteFile(t, filepath.Join(dir, stem+".txt"), []byte(content))
}
