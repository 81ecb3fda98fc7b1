package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// MinWrapLength is the narrowest column WrapTextAsLines wraps to.
const MinWrapLength = 10

// DisplayWidth returns the number of terminal cells s occupies. East Asian wide and
// fullwidth runes count as two cells.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}

// PadRight pads s with spaces up to n display cells.
func PadRight(s string, n int) string {
	w := DisplayWidth(s)
	if w >= n {
		return s
	}

	return s + strings.Repeat(" ", n-w)
}

// WrapTextAsLines splits text on line breaks and greedily wraps every line to length-start
// characters (at least MinWrapLength), preferring to break at the last whitespace before the
// limit. Words longer than the limit are split. A length <= 0 disables wrapping.
func WrapTextAsLines(text string, start, length int) []string {
	if length <= 0 {
		return strings.Split(text, "\n")
	}

	effective := Max(length-start, MinWrapLength)
	var result []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		runes := []rune(line)
		if len(runes) <= effective {
			result = append(result, line)
			continue
		}

		lineStart := 0
		lastWhitespace := -1
		for i := 0; i < len(runes); i++ {
			if unicode.IsSpace(runes[i]) {
				lastWhitespace = i
			}
			if i-lineStart >= effective {
				// Back up to the last whitespace or split in the middle of the word.
				if lastWhitespace != -1 {
					i = lastWhitespace
				}
				result = append(result, strings.TrimSpace(string(runes[lineStart:i])))
				for i < len(runes) && unicode.IsSpace(runes[i]) {
					i++
				}
				lineStart = i
				lastWhitespace = -1
			}
		}
		result = append(result, strings.TrimSpace(string(runes[lineStart:])))
	}

	return result
}

// WrapText wraps text to length columns, keeping the leading whitespace of each line and
// indenting continuation lines by hangingIndent. A length <= 0 returns text unchanged.
func WrapText(text string, length, hangingIndent int) string {
	if length <= 0 {
		return text
	}

	var result []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		leading := line[:len(line)-len(trimmed)]
		available := length - DisplayWidth(leading)

		var lines []string
		if hangingIndent != 0 {
			first := WrapTextAsLines(trimmed, 0, available)
			lines = []string{first[0]}
			if len(first) > 1 {
				remainder := strings.TrimLeftFunc(trimmed[len(first[0]):], unicode.IsSpace)
				lines = append(lines, WrapTextAsLines(remainder, 0, available-hangingIndent)...)
			}
		} else {
			lines = WrapTextAsLines(trimmed, 0, available)
		}

		indent := ""
		for _, l := range lines {
			if l == "" {
				result = append(result, "")
				continue
			}
			result = append(result, indent+leading+l)
			indent = strings.Repeat(" ", hangingIndent)
		}
	}

	return strings.Join(result, "\n")
}
