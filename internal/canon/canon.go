// Package canon holds the fixed 66-book KJV canon and the heading alias
// table. Both are immutable reference data loaded once at process start.
package canon

import "strings"

// Books lists the canonical book names in order. A book's 1-based position
// in this slice is its order index everywhere else in the pipeline.
var Books = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy", "Joshua", "Judges", "Ruth",
	"1 Samuel", "2 Samuel", "1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra", "Nehemiah", "Esther", "Job",
	"Psalms", "Proverbs", "Ecclesiastes", "Song of Solomon", "Isaiah", "Jeremiah", "Lamentations", "Ezekiel", "Daniel",
	"Hosea", "Joel", "Amos", "Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk", "Zephaniah", "Haggai", "Zechariah", "Malachi",
	"Matthew", "Mark", "Luke", "John", "Acts", "Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians", "Philippians", "Colossians",
	"1 Thessalonians", "2 Thessalonians", "1 Timothy", "2 Timothy", "Titus", "Philemon", "Hebrews", "James", "1 Peter", "2 Peter", "1 John", "2 John", "3 John", "Jude", "Revelation",
}

// aliases maps each canonical name to the uppercase heading variants seen in
// source texts, including the decorative ordinal-word forms. Matching is by
// substring; the full ordinal strings are registered so specific forms are
// never shadowed by a shorter collision.
var aliases = map[string][]string{
	"Genesis":         {"GENESIS"},
	"Exodus":          {"EXODUS"},
	"Leviticus":       {"LEVITICUS"},
	"Numbers":         {"NUMBERS"},
	"Deuteronomy":     {"DEUTERONOMY"},
	"Joshua":          {"JOSHUA"},
	"Judges":          {"JUDGES"},
	"Ruth":            {"RUTH"},
	"1 Samuel":        {"1 SAMUEL", "FIRST BOOK OF SAMUEL"},
	"2 Samuel":        {"2 SAMUEL", "SECOND BOOK OF SAMUEL"},
	"1 Kings":         {"1 KINGS", "FIRST BOOK OF KINGS"},
	"2 Kings":         {"2 KINGS", "SECOND BOOK OF KINGS"},
	"1 Chronicles":    {"1 CHRONICLES", "FIRST BOOK OF CHRONICLES"},
	"2 Chronicles":    {"2 CHRONICLES", "SECOND BOOK OF CHRONICLES"},
	"Ezra":            {"EZRA"},
	"Nehemiah":        {"NEHEMIAH"},
	"Esther":          {"ESTHER"},
	"Job":             {"JOB"},
	"Psalms":          {"PSALM", "PSALMS"},
	"Proverbs":        {"PROVERBS"},
	"Ecclesiastes":    {"ECCLESIASTES"},
	"Song of Solomon": {"SONG OF SOLOMON", "CANTICLES"},
	"Isaiah":          {"ISAIAH"},
	"Jeremiah":        {"JEREMIAH"},
	"Lamentations":    {"LAMENTATIONS"},
	"Ezekiel":         {"EZEKIEL"},
	"Daniel":          {"DANIEL"},
	"Hosea":           {"HOSEA"},
	"Joel":            {"JOEL"},
	"Amos":            {"AMOS"},
	"Obadiah":         {"OBADIAH"},
	"Jonah":           {"JONAH"},
	"Micah":           {"MICAH"},
	"Nahum":           {"NAHUM"},
	"Habakkuk":        {"HABAKKUK"},
	"Zephaniah":       {"ZEPHANIAH"},
	"Haggai":          {"HAGGAI"},
	"Zechariah":       {"ZECHARIAH"},
	"Malachi":         {"MALACHI"},
	"Matthew":         {"MATTHEW"},
	"Mark":            {"MARK"},
	"Luke":            {"LUKE"},
	"John":            {"JOHN"},
	"Acts":            {"ACTS"},
	"Romans":          {"ROMANS"},
	"1 Corinthians":   {"1 CORINTHIANS", "FIRST EPISTLE OF PAUL THE APOSTLE TO THE CORINTHIANS"},
	"2 Corinthians":   {"2 CORINTHIANS", "SECOND EPISTLE OF PAUL THE APOSTLE TO THE CORINTHIANS"},
	"Galatians":       {"GALATIANS"},
	"Ephesians":       {"EPHESIANS"},
	"Philippians":     {"PHILIPPIANS"},
	"Colossians":      {"COLOSSIANS"},
	"1 Thessalonians": {"1 THESSALONIANS", "FIRST EPISTLE TO THE THESSALONIANS"},
	"2 Thessalonians": {"2 THESSALONIANS", "SECOND EPISTLE TO THE THESSALONIANS"},
	"1 Timothy":       {"1 TIMOTHY", "FIRST EPISTLE TO TIMOTHY"},
	"2 Timothy":       {"2 TIMOTHY", "SECOND EPISTLE TO TIMOTHY"},
	"Titus":           {"TITUS"},
	"Philemon":        {"PHILEMON"},
	"Hebrews":         {"HEBREWS"},
	"James":           {"JAMES"},
	"1 Peter":         {"1 PETER", "FIRST EPISTLE GENERAL OF PETER"},
	"2 Peter":         {"2 PETER", "SECOND EPISTLE GENERAL OF PETER"},
	"1 John":          {"1 JOHN", "FIRST EPISTLE GENERAL OF JOHN"},
	"2 John":          {"2 JOHN", "SECOND EPISTLE OF JOHN"},
	"3 John":          {"3 JOHN", "THIRD EPISTLE OF JOHN"},
	"Jude":            {"JUDE"},
	"Revelation":      {"REVELATION", "REVELATION OF ST. JOHN", "REVELATION OF ST. JOHN THE DIVINE"},
}

var orderByName = func() map[string]int {
	m := make(map[string]int, len(Books))
	for i, b := range Books {
		m[b] = i + 1
	}
	return m
}()

// Order returns the 1-based canon position of a canonical name, or 0 when
// the name is not part of the canon.
func Order(name string) int {
	return orderByName[name]
}

// ByOrder returns the canonical name at the given 1-based position.
func ByOrder(n int) (string, bool) {
	if n < 1 || n > len(Books) {
		return "", false
	}
	return Books[n-1], true
}

// ByName resolves a name case-insensitively to its canonical form.
func ByName(name string) (string, bool) {
	for _, b := range Books {
		if strings.EqualFold(b, name) {
			return b, true
		}
	}
	return "", false
}

// Aliases returns the registered uppercase heading variants for a book.
func Aliases(name string) []string {
	return aliases[name]
}

// FileName builds the per-book filename: canonical name with internal
// spaces removed plus the extension (e.g. "1 Samuel" -> "1Samuel.txt").
func FileName(name, ext string) string {
	return strings.ReplaceAll(name, " ", "") + ext
}

// FromFileName restores a canonical name from a space-stripped file stem.
// Returns the stem unchanged when no canonical book matches.
func FromFileName(stem string) string {
	for _, b := range Books {
		if strings.ReplaceAll(b, " ", "") == stem {
			return b
		}
	}
	return stem
}
