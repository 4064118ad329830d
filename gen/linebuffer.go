package gen

import "strings"

// LineBuffer is a piece of emitted source text modeled as a sequence of
// lines rather than one big string, so passes like Indent and Comment can
// operate line-by-line without re-splitting. Grounded on linebuffer.py's
// LineBuffer type alias.
type LineBuffer = []string

// Indent is the unit of indentation every backend emits. Four spaces,
// regardless of target language convention (R and TypeScript style guides
// both tolerate it and it keeps one constant for all three backends).
const Indent = "    "

// IndentLines prefixes every non-empty line in lb with levels copies of
// Indent; empty lines stay empty.
func IndentLines(lb LineBuffer, levels int) LineBuffer {
	prefix := strings.Repeat(Indent, levels)
	out := make(LineBuffer, len(lb))
	for i, line := range lb {
		if line == "" {
			out[i] = line
			continue
		}
		out[i] = prefix + line
	}
	return out
}

// CommentLines prefixes every non-empty line in lb with the target
// language's line comment marker followed by a space, e.g.
// CommentLines(lb, "#"); an empty line becomes the bare marker.
func CommentLines(lb LineBuffer, marker string) LineBuffer {
	out := make(LineBuffer, len(lb))
	for i, line := range lb {
		if line == "" {
			out[i] = marker
			continue
		}
		out[i] = marker + " " + line
	}
	return out
}

// Collapse joins lb into a single string with newline separators.
func Collapse(lb LineBuffer) string {
	return strings.Join(lb, "\n")
}

// Expand splits a (possibly multi-line) string back into a LineBuffer.
func Expand(s string) LineBuffer {
	return strings.Split(s, "\n")
}

// Concat flattens a sequence of LineBuffers into one, optionally inserting
// sep between each pair (e.g. a blank line between functions).
func Concat(buffers []LineBuffer, sep ...string) LineBuffer {
	var out LineBuffer
	for i, b := range buffers {
		if i > 0 && len(sep) > 0 {
			out = append(out, sep...)
		}
		out = append(out, b...)
	}
	return out
}

// BlankBefore returns lb with a leading blank line, unless lb is already
// empty or already starts with one.
func BlankBefore(lb LineBuffer) LineBuffer {
	if len(lb) == 0 || lb[0] == "" {
		return lb
	}
	return append(LineBuffer{""}, lb...)
}

// BlankAfter returns lb with a trailing blank line, unless lb is already
// empty or already ends with one.
func BlankAfter(lb LineBuffer) LineBuffer {
	if len(lb) == 0 || lb[len(lb)-1] == "" {
		return lb
	}
	return append(lb, "")
}

// WrapLine breaks text into lines of at most width bytes, splitting only at
// word boundaries; a word longer than width gets a line of its own and is
// not split. Used to fold a single long docstring line so it doesn't
// overrun a target language's comment-width convention.
func WrapLine(text string, width int) LineBuffer {
	words := strings.Fields(text)
	if len(words) == 0 {
		return LineBuffer{""}
	}
	var lines LineBuffer
	line := ""
	for _, word := range words {
		if line != "" && len(line)+len(word)+1 > width {
			lines = append(lines, line)
			line = word
			continue
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	lines = append(lines, line)
	return lines
}

// WrapParagraph wraps a (possibly multi-line) block of text, folding each
// source line independently so existing paragraph breaks survive. The
// first line may use a different width than the rest, since it often
// follows an opening quote or comment marker that eats into the line
// budget.
func WrapParagraph(text string, width, firstLineWidth int) LineBuffer {
	var out LineBuffer
	for i, line := range strings.Split(text, "\n") {
		w := width
		if i == 0 {
			w = firstLineWidth
		}
		out = append(out, WrapLine(line, w)...)
	}
	return out
}
