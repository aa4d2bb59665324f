package api

import "strings"

// lenientCleanup repairs the JSON-ish snippets documentation authors
// actually write: single-line comments, trailing commas, and a missing
// brace on either end of the object.
func lenientCleanup(text string) string {
	text = stripFences(text)
	text = stripLineComments(text)
	text = stripTrailingCommas(text)
	text = balanceBraces(text)
	return strings.TrimSpace(text)
}

// stripFences removes stray Markdown fence markers left inside a candidate
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// stripLineComments removes // comments outside of string literals,
// including whole comment lines and trailing comments after values
func stripLineComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		b.WriteString(cutLineComment(line))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cutLineComment(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		if ch == '"' {
			inString = true
			continue
		}
		if ch == '/' && i+1 < len(line) && line[i+1] == '/' {
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}

// stripTrailingCommas removes commas that directly precede a closing brace
// or bracket, ignoring string literals
func stripTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			b.WriteByte(ch)
			continue
		}

		switch ch {
		case '"':
			inString = true
			b.WriteByte(ch)
		case ',':
			if next := nextNonSpace(text, i+1); next == '}' || next == ']' {
				continue
			}
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func nextNonSpace(text string, from int) byte {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return text[i]
		}
	}
	return 0
}

// balanceBraces repairs an unbalanced brace count outside string literals:
// missing openers are prepended (the fence captured a closer without its
// opener) and missing closers are appended (the snippet was truncated)
func balanceBraces(text string) string {
	opens, closes := 0, 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			opens++
		case '}':
			closes++
		}
	}

	switch {
	case closes > opens:
		return strings.Repeat("{", closes-opens) + text
	case opens > closes:
		return text + strings.Repeat("}", opens-closes)
	default:
		return text
	}
}
