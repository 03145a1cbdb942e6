package splitter

import "strings"

// SplitBooks partitions raw master-file lines into per-book content keyed
// by canonical name, stripping the heading lines that mark each boundary.
// A heading naming a different book switches the current book and arms a
// heading buffer that keeps absorbing consecutive heading lines, so
// multi-line decorative headings are suppressed as a unit. Lines seen
// before the first recognized heading are discarded.
func SplitBooks(lines []string) map[string][]string {
	content := make(map[string][]string)
	current := ""
	buffering := false

	for _, line := range lines {
		if book, ok := DetectBook(line); ok && (current == "" || book != current) {
			current = book
			if _, seen := content[current]; !seen {
				content[current] = []string{}
			}
			buffering = true
			continue
		}
		if current == "" {
			continue
		}
		if buffering {
			if _, ok := DetectBook(line); ok {
				continue
			}
			buffering = false
		}
		content[current] = append(content[current], strings.TrimRight(line, "\n"))
	}
	return content
}
