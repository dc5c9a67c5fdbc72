package tui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StringWidth returns the display width of s in terminal cells
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxWidth cells
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadLeft left-pads string with spaces to width
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// WrapText wraps text at word boundaries to fit width
// Explicit newlines start a new line; words wider than width are broken at grapheme boundaries
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// wrapParagraph wraps a single line of text using grapheme clusters
func wrapParagraph(s string, width int) []string {
	var (
		lines     []string
		line      strings.Builder
		lineW     int
		word      strings.Builder
		wordW     int
		pendingSp int
	)

	flushLine := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	placeWord := func() {
		if wordW == 0 {
			return
		}
		if lineW > 0 && lineW+pendingSp+wordW > width {
			flushLine()
			pendingSp = 0
		}
		if lineW > 0 {
			line.WriteString(strings.Repeat(" ", pendingSp))
			lineW += pendingSp
		}
		pendingSp = 0

		// Break words longer than the line
		if wordW > width-lineW {
			g := uniseg.NewGraphemes(word.String())
			for g.Next() {
				gw := g.Width()
				if lineW+gw > width && lineW > 0 {
					flushLine()
				}
				line.WriteString(g.Str())
				lineW += gw
			}
		} else {
			line.WriteString(word.String())
			lineW += wordW
		}
		word.Reset()
		wordW = 0
	}

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if r := []rune(cluster); len(r) == 1 && unicode.IsSpace(r[0]) {
			placeWord()
			if lineW > 0 {
				pendingSp++
			}
			continue
		}
		word.WriteString(cluster)
		wordW += g.Width()
	}
	placeWord()

	if lineW > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
