package corpus

import (
	"strings"
	"testing"
)

const sampleBookText = `Chapter 1
1 In the beginning God created
the heaven and the earth.
2 And the earth was without form, and void.
Chapter 2
1 Thus the heavens and the earth were finished.
`

func TestParseText(t *testing.T) {
	book := ParseText("Genesis", []byte(sampleBookText))
	if book.Name != "Genesis" || book.Order != 1 {
		t.Fatalf("unexpected identity: %s/%d", book.Name, book.Order)
	}
	if len(book.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(book.Chapters))
	}
	ch1 := book.Chapters[0]
	if ch1.Number != 1 || len(ch1.Verses) != 2 {
		t.Fatalf("unexpected chapter 1: %+v", ch1)
	}
	want := "In the beginning God created the heaven and the earth."
	if ch1.Verses[0].Text != want {
		t.Fatalf("continuation not merged: %q", ch1.Verses[0].Text)
	}
	if book.Chapters[1].Verses[0].Number != 1 {
		t.Fatalf("unexpected chapter 2 verse: %+v", book.Chapters[1].Verses[0])
	}
}

func TestParseTextRestoresSpacedName(t *testing.T) {
	book := ParseText("1Samuel", []byte("Chapter 1\n1 Now there was a certain man.\n"))
	if book.Name != "1 Samuel" {
		t.Fatalf("stem not restored: %q", book.Name)
	}
	if book.Order != 9 {
		t.Fatalf("unexpected order: %d", book.Order)
	}
}

func TestParseTextDropsOrphanLines(t *testing.T) {
	// Verse lines before any chapter and continuations before any verse are
	// discarded in the per-book form.
	book := ParseText("Genesis", []byte("stray preface\n1 orphan verse\nChapter 1\n1 kept.\n"))
	if len(book.Chapters) != 1 || len(book.Chapters[0].Verses) != 1 {
		t.Fatalf("unexpected structure: %+v", book.Chapters)
	}
	if book.Chapters[0].Verses[0].Text != "kept." {
		t.Fatalf("unexpected text: %q", book.Chapters[0].Verses[0].Text)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	book := ParseText("Genesis", []byte(sampleBookText))
	data, err := book.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"book\": \"Genesis\"") {
		t.Fatalf("unexpected encoding: %s", data[:40])
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.VerseCount() != book.VerseCount() {
		t.Fatalf("verse count mismatch: %d != %d", decoded.VerseCount(), book.VerseCount())
	}
	if decoded.Chapters[0].Verses[0].Text != book.Chapters[0].Verses[0].Text {
		t.Fatalf("text mismatch after round trip")
	}
}

func TestEmptyBookEncodesEmptyChapterList(t *testing.T) {
	book := New("Obadiah")
	data, err := book.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !strings.Contains(string(data), "\"chapters\": []") {
		t.Fatalf("expected empty chapters array, got: %s", data)
	}
}

func TestDropEmptyChapters(t *testing.T) {
	book := New("Genesis")
	book.OpenChapter(1)
	ch := book.OpenChapter(2)
	ch.Verses = append(ch.Verses, &Verse{Number: 1, Text: "kept"})
	book.OpenChapter(3)
	book.DropEmptyChapters()
	if len(book.Chapters) != 1 || book.Chapters[0].Number != 2 {
		t.Fatalf("unexpected chapters: %+v", book.Chapters)
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
