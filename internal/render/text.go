package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	escapeMiscRegex   = regexp.MustCompile("([\\\\&<`\\[>~#=+|-])")
	numberedListRegex = regexp.MustCompile(`([0-9])([.)])`)
)

// Escape backslash-escapes Markdown-significant characters in literal text.
// Each class of characters is escaped independently so options can toggle
// them separately. Escaping never applies to output the renderer generated
// itself, only to source text content.
func Escape(text string, misc, asterisks, underscores bool) string {
	if text == "" {
		return ""
	}
	if misc {
		text = escapeMiscRegex.ReplaceAllString(text, `\$1`)
		// "1. Item" would otherwise start an ordered list
		text = numberedListRegex.ReplaceAllString(text, `$1\$2`)
	}
	if asterisks {
		text = strings.ReplaceAll(text, "*", `\*`)
	}
	if underscores {
		text = strings.ReplaceAll(text, "_", `\_`)
	}
	return text
}

// EscapeNonASCII replaces runes outside the ASCII range with numeric
// character references.
func EscapeNonASCII(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r < 0x80 {
			b.WriteRune(r)
		} else {
			fmt.Fprintf(&b, "&#%d;", r)
		}
	}
	return b.String()
}

// Chomp splits boundary whitespace off text. The returned prefix and suffix
// are a single space when the text had leading or trailing whitespace of
// any kind, so inline delimiters can hug the content while the spacing
// survives outside them.
func Chomp(text string) (prefix, suffix, trimmed string) {
	if text == "" {
		return "", "", ""
	}
	trimmed = strings.TrimSpace(text)
	if trimmed == "" {
		return " ", " ", ""
	}
	if !strings.HasPrefix(text, trimmed) {
		prefix = " "
	}
	if !strings.HasSuffix(text, trimmed) {
		suffix = " "
	}
	return prefix, suffix, trimmed
}

// CollapseSpaces collapses runs of spaces and tabs, including Unicode
// spaces, to a single ASCII space. Newlines are preserved.
func CollapseSpaces(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || isUnicodeSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return b.String()
}

func isUnicodeSpace(r rune) bool {
	switch r {
	case '\u00A0', // no-break space
		'\u1680', // ogham space mark
		'\u2000', '\u2001', '\u2002', '\u2003', '\u2004', '\u2005',
		'\u2006', '\u2007', '\u2008', '\u2009', '\u200A',
		'\u202F', // narrow no-break space
		'\u205F', // medium mathematical space
		'\u3000': // ideographic space
		return true
	}
	return false
}

// IsAllWhitespace reports whether text contains only whitespace runes.
func IsAllWhitespace(text string) bool {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Underline renders text as a setext heading underlined with pad.
func Underline(text string, pad byte) string {
	text = strings.TrimRight(text, " \t\n")
	if text == "" {
		return ""
	}
	return text + "\n" + strings.Repeat(string(pad), len(text)) + "\n\n"
}

// Indent prefixes every non-empty line of text with level repetitions of
// indentStr.
func Indent(text string, level int, indentStr string) string {
	if text == "" {
		return ""
	}
	prefix := strings.Repeat(indentStr, level)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Wrap greedily wraps text at width columns, breaking only at spaces.
// Existing newlines are respected.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(wrapLine(line, width))
	}
	return b.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var b strings.Builder
	col := 0
	for i, w := range words {
		// column positions count runes, not bytes
		wlen := utf8.RuneCountInString(w)
		if i > 0 {
			if col+1+wlen > width {
				b.WriteByte('\n')
				col = 0
			} else {
				b.WriteByte(' ')
				col++
			}
		}
		b.WriteString(w)
		col += wlen
	}
	return b.String()
}
