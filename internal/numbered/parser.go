// Package numbered parses the strictly delimited master layout: "BOOK NN
// Name" headings paired with fixed-width "BB:CCC:VVV text" verse lines.
package numbered

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ammonelzinga/scripturelens-cli/internal/canon"
	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
)

var (
	versePattern   = regexp.MustCompile(`^(\d{2}):(\d{3}):(\d{3})\s+(.*)$`)
	headingPattern = regexp.MustCompile(`(?i)^BOOK\s+(\d{1,2})\s+(.+)$`)
)

// Detection thresholds. Deliberately far below the true totals of a full
// corpus so partial inputs still detect, while heading-like noise in prose
// never trips them.
const (
	detectVerseThreshold   = 200
	detectHeadingThreshold = 30
)

// Detect reports whether the lines follow the numbered convention. Scanning
// stops as soon as both thresholds are exceeded.
func Detect(lines []string) bool {
	verses, headings := 0, 0
	for _, ln := range lines {
		if versePattern.MatchString(ln) {
			verses++
		}
		if headingPattern.MatchString(ln) {
			headings++
		}
		if verses > detectVerseThreshold && headings > detectHeadingThreshold {
			return true
		}
	}
	return false
}

// MatchHeading matches a "BOOK NN Name" line, returning the 1-based book
// number and the trailing name.
func MatchHeading(line string) (num int, name string, ok bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	num, _ = strconv.Atoi(m[1])
	return num, strings.TrimSpace(m[2]), true
}

// MatchVerse matches a "BB:CCC:VVV text" line. The zero-padded fields parse
// with leading zeros stripped; an all-zero field yields zero.
func MatchVerse(line string) (book, chapter, verse int, text string, ok bool) {
	m := versePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, 0, "", false
	}
	book, _ = strconv.Atoi(m[1])
	chapter, _ = strconv.Atoi(m[2])
	verse, _ = strconv.Atoi(m[3])
	return book, chapter, verse, strings.TrimSpace(m[4]), true
}

// resolveHeading maps a heading to its canonical name, preferring the exact
// case-insensitive name and falling back to the positional lookup.
func resolveHeading(num int, name string) (string, bool) {
	if canonical, ok := canon.ByName(name); ok {
		return canonical, true
	}
	return canon.ByOrder(num)
}

// ParseBooks parses numbered-format lines directly into the structured
// model. All 66 canon books are returned in order; books absent from the
// input end with an empty chapter list. The parser self-heals against
// missing or wrong headings: a verse line whose book number disagrees with
// the current book force-switches to the book at that position. Verses
// whose book number falls outside the canon cannot be placed and are
// dropped.
func ParseBooks(lines []string) []*corpus.Book {
	books := make([]*corpus.Book, len(canon.Books))
	byName := make(map[string]*corpus.Book, len(canon.Books))
	for i, name := range canon.Books {
		books[i] = corpus.New(name)
		byName[name] = books[i]
	}

	var currentBook *corpus.Book
	var currentChapter *corpus.Chapter
	var lastVerse *corpus.Verse

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if num, name, ok := MatchHeading(line); ok {
			if canonical, resolved := resolveHeading(num, name); resolved {
				currentBook = byName[canonical]
			} else {
				currentBook = nil
			}
			currentChapter = nil
			lastVerse = nil
			continue
		}

		if bb, ch, vs, text, ok := MatchVerse(line); ok {
			positional, inRange := canon.ByOrder(bb)
			if !inRange {
				continue // cannot place verse
			}
			if currentBook == nil || currentBook.Name != positional {
				currentBook = byName[positional]
				currentChapter = nil
				lastVerse = nil
			}
			if currentChapter == nil || currentChapter.Number != ch {
				currentChapter = currentBook.OpenChapter(ch)
				lastVerse = nil
			}
			v := &corpus.Verse{Number: vs, Text: text}
			currentChapter.Verses = append(currentChapter.Verses, v)
			lastVerse = v
			continue
		}

		if lastVerse != nil {
			lastVerse.Text += " " + line
		}
	}

	for _, b := range books {
		b.DropEmptyChapters()
	}
	return books
}

// ParseLines parses numbered-format input into the normalized per-book text
// form used by the split operation: "Chapter N" markers and "V text" verse
// lines, continuations folded into the preceding verse line. Every canon
// book has an entry; unseen books map to empty content.
func ParseLines(lines []string) map[string][]string {
	content := make(map[string][]string, len(canon.Books))
	for _, b := range canon.Books {
		content[b] = []string{}
	}

	currentBook := ""
	currentChapter := -1
	lastBook, lastIndex := "", -1

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if num, name, ok := MatchHeading(line); ok {
			if canonical, resolved := resolveHeading(num, name); resolved {
				currentBook = canonical
			} else {
				currentBook = ""
			}
			currentChapter = -1
			lastBook, lastIndex = "", -1
			continue
		}

		if bb, ch, vs, text, ok := MatchVerse(line); ok {
			positional, inRange := canon.ByOrder(bb)
			if !inRange {
				continue
			}
			if currentBook != positional {
				currentBook = positional
				currentChapter = -1
				lastBook, lastIndex = "", -1
			}
			if currentChapter != ch {
				currentChapter = ch
				content[currentBook] = append(content[currentBook], "Chapter "+strconv.Itoa(ch))
			}
			content[currentBook] = append(content[currentBook], strconv.Itoa(vs)+" "+text)
			lastBook, lastIndex = currentBook, len(content[currentBook])-1
			continue
		}

		if lastIndex >= 0 {
			content[lastBook][lastIndex] += " " + line
		}
	}
	return content
}
