// Package splitter implements the heading-based pipeline: book boundary
// detection over decorative headings, book content splitting, and the
// chapter/verse normalization of each book's raw lines.
package splitter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ammonelzinga/scripturelens-cli/internal/canon"
	"github.com/ammonelzinga/scripturelens-cli/internal/numbered"
)

var (
	verseColonPattern  = regexp.MustCompile(`^(\d+):(\d+)\s+(.*)$`)
	verseSimplePattern = regexp.MustCompile(`^(\d+)\s+(.*)$`)
	punctuationRuns    = regexp.MustCompile(`[\-:,.;'"()]+`)
	whitespaceRuns     = regexp.MustCompile(`\s+`)
)

// aliasEntry pairs one registered heading variant with its book.
type aliasEntry struct {
	alias string
	book  string
}

// aliasTable lists every alias ordered longest-first so a specific form
// ("REVELATION OF ST. JOHN") is never shadowed by a shorter collision
// ("JOHN"). Equal lengths keep canon order.
var aliasTable = func() []aliasEntry {
	var entries []aliasEntry
	for _, book := range canon.Books {
		for _, alias := range canon.Aliases(book) {
			entries = append(entries, aliasEntry{alias: alias, book: book})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].alias) > len(entries[j].alias)
	})
	return entries
}()

// DetectBook reports the canonical book a line's heading refers to, if any.
// Verse-shaped lines are rejected outright so verse text mentioning a book
// name is never taken for a heading. Aliases are matched as substrings of
// the uppercased line and of a punctuation-collapsed variant, in aliasTable
// order. There is no word-boundary enforcement.
func DetectBook(line string) (string, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return "", false
	}

	if verseColonPattern.MatchString(raw) || verseSimplePattern.MatchString(raw) {
		return "", false
	}

	upper := strings.ToUpper(raw)
	cleaned := punctuationRuns.ReplaceAllString(upper, " ")
	cleaned = strings.TrimSpace(whitespaceRuns.ReplaceAllString(cleaned, " "))

	if _, name, ok := numbered.MatchHeading(raw); ok {
		if canonical, found := canon.ByName(name); found {
			return canonical, true
		}
	}

	for _, entry := range aliasTable {
		if strings.Contains(upper, entry.alias) || strings.Contains(cleaned, entry.alias) {
			return entry.book, true
		}
	}
	return "", false
}
