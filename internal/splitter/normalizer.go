package splitter

import (
	"regexp"
	"strconv"
	"strings"
)

var chapterHeadingPattern = regexp.MustCompile(`(?i)^(?:CHAPTER|PSALM)\s+(\d+)$`)

// normalizeState is the per-book parse state threaded through one
// NormalizeBook run: the open chapter and the last verse number seen in it.
type normalizeState struct {
	out            []string
	currentChapter int // 0 means no chapter open yet
	lastVerse      int // 0 means no verse yet in the open chapter
}

func (s *normalizeState) startChapter(n int) {
	s.currentChapter = n
	s.lastVerse = 0
	s.out = append(s.out, "Chapter "+strconv.Itoa(n))
}

// NormalizeBook rewrites one book's raw content lines into the normalized
// form: "Chapter N" markers and "V text" verse lines. Chapters are found
// via explicit CHAPTER/PSALM headings, the chapter part of "c:v text"
// lines, or inferred when bare verse numbers reset to 1. Lines matching no
// pattern extend the previous verse, or are kept as preface content under
// an implicit chapter 1.
func NormalizeBook(lines []string) []string {
	filtered := make([]string, 0, len(lines))
	for _, ln := range lines {
		// Embedded book headings can survive the split; drop them here too.
		if _, ok := DetectBook(ln); ok {
			continue
		}
		filtered = append(filtered, strings.TrimRight(ln, " \t"))
	}
	for len(filtered) > 0 && strings.TrimSpace(filtered[0]) == "" {
		filtered = filtered[1:]
	}
	for len(filtered) > 0 && strings.TrimSpace(filtered[len(filtered)-1]) == "" {
		filtered = filtered[:len(filtered)-1]
	}

	state := &normalizeState{}
	for _, ln := range filtered {
		raw := strings.TrimSpace(ln)
		if raw == "" {
			continue
		}

		if m := chapterHeadingPattern.FindStringSubmatch(raw); m != nil {
			n, _ := strconv.Atoi(m[1])
			state.startChapter(n)
			continue
		}

		if m := verseColonPattern.FindStringSubmatch(raw); m != nil {
			ch, _ := strconv.Atoi(m[1])
			vs, _ := strconv.Atoi(m[2])
			if state.currentChapter != ch {
				state.startChapter(ch)
			}
			state.out = append(state.out, strconv.Itoa(vs)+" "+strings.TrimSpace(m[3]))
			state.lastVerse = vs
			continue
		}

		if m := verseSimplePattern.FindStringSubmatch(raw); m != nil {
			vs, _ := strconv.Atoi(m[1])
			if state.currentChapter == 0 {
				state.startChapter(1)
			} else if vs == 1 && state.lastVerse > 1 {
				// Verse numbers resetting to 1 mark an unheaded chapter
				// start. A single-verse chapter followed by another chapter
				// also starting at 1 will not trigger this; the source
				// needs explicit markers for that shape.
				state.startChapter(state.currentChapter + 1)
			}
			state.out = append(state.out, strconv.Itoa(vs)+" "+strings.TrimSpace(m[2]))
			state.lastVerse = vs
			continue
		}

		if len(state.out) > 0 && !strings.HasPrefix(state.out[len(state.out)-1], "Chapter ") {
			state.out[len(state.out)-1] += " " + raw
			continue
		}
		if state.currentChapter == 0 {
			state.startChapter(1)
		}
		state.out = append(state.out, raw) // preface material, kept as-is
	}

	return state.out
}
