// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headingDelimiters returns every line that opens an ATX heading of exactly
// the given level. Lines inside code or HTML blocks never count.
func headingDelimiters(content []byte, level int) []delimiter {
	marker := strings.Repeat("#", level)
	masked := literalLines(content)

	var delims []delimiter
	for _, ln := range splitLines(content) {
		if masked[ln.start] {
			continue
		}
		title, ok := headingTitle(ln.text, marker)
		if !ok {
			continue
		}
		delims = append(delims, delimiter{
			start: ln.start,
			end:   ln.end,
			title: title,
		})
	}
	return delims
}

// headingTitle reports whether s is a heading line for marker and returns its
// trimmed title. "#" alone is a heading with an empty title; "#Title" and
// "## Title" (for marker "#") are not headings.
func headingTitle(s, marker string) (string, bool) {
	rest, ok := strings.CutPrefix(s, marker)
	if !ok {
		return "", false
	}
	if rest == "" {
		return "", true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return trimClosingSequence(strings.TrimSpace(rest)), true
}

// trimClosingSequence drops an optional closing run of '#' ("# Title ##").
func trimClosingSequence(title string) string {
	trimmed := strings.TrimRight(title, "#")
	if trimmed == title {
		return title
	}
	if trimmed == "" {
		return ""
	}
	if last := trimmed[len(trimmed)-1]; last != ' ' && last != '\t' {
		// "C#" keeps its hash.
		return title
	}
	return strings.TrimSpace(trimmed)
}

// literalLines parses content as markdown and returns the start offsets of
// lines that belong to fenced code, indented code or raw HTML blocks.
func literalLines(content []byte) map[int]bool {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	masked := make(map[int]bool)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				masked[lineStart(content, segs.At(i).Start)] = true
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return masked
}

// lineStart returns the offset of the first byte of the line holding pos.
func lineStart(content []byte, pos int) int {
	if pos > len(content) {
		pos = len(content)
	}
	for pos > 0 && content[pos-1] != '\n' {
		pos--
	}
	return pos
}
