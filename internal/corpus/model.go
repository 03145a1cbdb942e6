// Package corpus defines the canonical book/chapter/verse model shared by
// every pipeline, plus the re-parse of normalized per-book text into it.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ammonelzinga/scripturelens-cli/internal/canon"
)

var (
	chapterPattern = regexp.MustCompile(`(?i)^Chapter\s+(\d+)$`)
	versePattern   = regexp.MustCompile(`^(\d+)\s+(.*)$`)
)

// Verse is a single numbered verse. Text accumulates continuation lines
// joined with single spaces.
type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Chapter is an ordered sequence of verses. Verses keep encounter order;
// numbers are not required to be contiguous.
type Chapter struct {
	Number int      `json:"number"`
	Verses []*Verse `json:"verses"`
}

// Book is the canonical output unit: name, 1-based canon order, and the
// ordered chapters. A book absent from the input keeps its order with an
// empty chapter list.
type Book struct {
	Name     string     `json:"book"`
	Order    int        `json:"order"`
	Chapters []*Chapter `json:"chapters"`
}

// New returns an empty book with its order resolved from the canon.
func New(name string) *Book {
	return &Book{
		Name:     name,
		Order:    canon.Order(name),
		Chapters: []*Chapter{},
	}
}

// OpenChapter appends a fresh chapter and makes it current. Each call opens
// a new chapter object even when the number was seen before; consecutive
// verse lines sharing a number belong to the most recently opened chapter.
func (b *Book) OpenChapter(number int) *Chapter {
	ch := &Chapter{Number: number, Verses: []*Verse{}}
	b.Chapters = append(b.Chapters, ch)
	return ch
}

// DropEmptyChapters removes chapters that collected no verses.
func (b *Book) DropEmptyChapters() {
	kept := b.Chapters[:0]
	for _, ch := range b.Chapters {
		if len(ch.Verses) > 0 {
			kept = append(kept, ch)
		}
	}
	b.Chapters = kept
}

// VerseCount reports the total verses across all chapters.
func (b *Book) VerseCount() int {
	n := 0
	for _, ch := range b.Chapters {
		n += len(ch.Verses)
	}
	return n
}

// FileName is the book's JSON output filename.
func (b *Book) FileName() string {
	return canon.FileName(b.Name, ".json")
}

// ParseText rebuilds a book from its normalized text form: "Chapter N"
// markers followed by "V text" verse lines, with unprefixed lines treated
// as continuations of the previous verse. The stem is restored to its
// canonical name so "1Samuel" maps back to "1 Samuel".
func ParseText(stem string, data []byte) *Book {
	book := New(canon.FromFileName(stem))

	var current *Chapter
	var last *Verse
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := chapterPattern.FindStringSubmatch(line); m != nil {
			num, _ := strconv.Atoi(m[1])
			current = book.OpenChapter(num)
			last = nil
			continue
		}
		if m := versePattern.FindStringSubmatch(line); m != nil && current != nil {
			num, _ := strconv.Atoi(m[1])
			v := &Verse{Number: num, Text: strings.TrimSpace(m[2])}
			current.Verses = append(current.Verses, v)
			last = v
			continue
		}
		if last != nil {
			last.Text += " " + line
		}
	}
	return book
}

// Encode serializes the book as pretty-printed UTF-8 JSON with a trailing
// newline, the on-disk output format.
func (b *Book) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("failed to encode book %s: %w", b.Name, err)
	}
	return buf.Bytes(), nil
}

// Decode parses a previously exported book JSON file.
func Decode(data []byte) (*Book, error) {
	var b Book
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to decode book: %w", err)
	}
	if b.Chapters == nil {
		b.Chapters = []*Chapter{}
	}
	return &b, nil
}
