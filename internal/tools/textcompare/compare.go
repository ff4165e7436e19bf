// Package textcompare compares two texts position by position, by line, word or
// character.
package textcompare

import (
	"math"
	"strings"
)

type Mode string

const (
	ModeLines      Mode = "lines"
	ModeWords      Mode = "words"
	ModeCharacters Mode = "characters"
)

// ParseMode returns the named mode, falling back to ModeLines for unknown names.
func ParseMode(name string) Mode {
	switch Mode(name) {
	case ModeWords:
		return ModeWords
	case ModeCharacters:
		return ModeCharacters
	default:
		return ModeLines
	}
}

type Status string

const (
	StatusEqual     Status = "equal"
	StatusDifferent Status = "different"
	StatusRemoved   Status = "removed"
	StatusAdded     Status = "added"
)

type LineEntry struct {
	LineNumber int    `json:"lineNumber"`
	Text1      string `json:"text1"`
	Text2      string `json:"text2"`
	Status     Status `json:"status"`
}

type WordEntry struct {
	Position int    `json:"position"`
	Word1    string `json:"word1"`
	Word2    string `json:"word2"`
	Status   Status `json:"status"`
}

type CharEntry struct {
	Position int    `json:"position"`
	Char1    string `json:"char1"`
	Char2    string `json:"char2"`
	Status   Status `json:"status"`
}

// Compare runs the comparison for mode and returns a slice of LineEntry, WordEntry
// or CharEntry accordingly.
func Compare(text1, text2 string, mode Mode) any {
	switch mode {
	case ModeWords:
		return CompareWords(text1, text2)
	case ModeCharacters:
		return CompareCharacters(text1, text2)
	default:
		return CompareLines(text1, text2)
	}
}

func CompareLines(text1, text2 string) []LineEntry {
	entries := make([]LineEntry, 0)

	zip(strings.Split(text1, "\n"), strings.Split(text2, "\n"), func(i int, a, b string) {
		entries = append(entries, LineEntry{LineNumber: i + 1, Text1: a, Text2: b, Status: statusOf(a, b)})
	})

	return entries
}

// CompareWords compares whitespace separated words.
func CompareWords(text1, text2 string) []WordEntry {
	entries := make([]WordEntry, 0)

	zip(strings.Fields(text1), strings.Fields(text2), func(i int, a, b string) {
		entries = append(entries, WordEntry{Position: i + 1, Word1: a, Word2: b, Status: statusOf(a, b)})
	})

	return entries
}

// CompareCharacters compares rune by rune.
func CompareCharacters(text1, text2 string) []CharEntry {
	entries := make([]CharEntry, 0)

	zip(runeStrings(text1), runeStrings(text2), func(i int, a, b string) {
		entries = append(entries, CharEntry{Position: i + 1, Char1: a, Char2: b, Status: statusOf(a, b)})
	})

	return entries
}

// Similarity returns the share of positions holding the same rune, as a rounded
// percentage of the longer text.
func Similarity(text1, text2 string) int {
	a, b := []rune(text1), []rune(text2)

	longest := max(len(a), len(b))
	if longest == 0 {
		return 100
	}

	var matches int

	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] == b[i] {
			matches++
		}
	}

	return int(math.Round(float64(matches) / float64(longest) * 100))
}

// Length returns the number of characters in text.
func Length(text string) int {
	return len([]rune(text))
}

func zip(left, right []string, fn func(i int, a, b string)) {
	for i := 0; i < max(len(left), len(right)); i++ {
		fn(i, at(left, i), at(right, i))
	}
}

func at(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}

	return ""
}

func runeStrings(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}

	return out
}

func statusOf(a, b string) Status {
	switch {
	case a == b:
		return StatusEqual
	case a != "" && b != "":
		return StatusDifferent
	case a != "":
		return StatusRemoved
	default:
		return StatusAdded
	}
}
