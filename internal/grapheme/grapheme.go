// Package grapheme wraps uniseg segmentation for the field buffer and its
// renderer.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text, or nil for empty text.
func Split(text string) []string {
	clusters, _ := SplitWidths(text)
	return clusters
}

// SplitWidths returns the grapheme clusters of text along with the terminal
// cell width of each.
func SplitWidths(text string) ([]string, []int) {
	if text == "" {
		return nil, nil
	}
	clusters := make([]string, 0, len(text))
	widths := make([]int, 0, len(text))
	state := -1
	for text != "" {
		var c string
		var w int
		c, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, c)
		widths = append(widths, w)
	}
	return clusters, widths
}

func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// IsWordBreak reports whether cluster separates words: every rune is
// whitespace or punctuation. Grouping commas and the decimal point qualify,
// so a word inside a formatted number is one digit group.
func IsWordBreak(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) && !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
