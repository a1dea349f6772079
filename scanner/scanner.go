package scanner

const (
	openDelim  = "[[ "
	closeDelim = " ]]"
)

// Token is a directive located in the source text.
type Token struct {
	// Offset is the byte offset of the opening "[[".
	Offset int

	// Content is the exact source slice, delimiters included.
	Content string
}

// End returns the byte offset just past the closing "]]".
func (tk Token) End() int {
	return tk.Offset + len(tk.Content)
}

// Body returns the directive payload between the delimiters.
func (tk Token) Body() string {
	return tk.Content[len(openDelim) : len(tk.Content)-len(closeDelim)]
}

// legal reports whether ch may appear inside a directive body.
func legal(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z',
		ch >= 'A' && ch <= 'Z',
		ch >= '0' && ch <= '9':
		return true
	}

	switch ch {
	case '_', '.', ':', '-', '!':
		return true
	}

	return false
}

// Scan returns the directives of text in source order. It makes a single
// forward pass without backtracking. An empty body is never a directive,
// and an illegal byte abandons the current match silently.
func Scan(text string) []Token {
	var tokens []Token

	inside := false
	start := 0

	for idx := 2; idx < len(text)-2; idx++ {
		ch := text[idx]

		switch {
		case ch == ' ' && text[idx-1] == '[' && text[idx-2] == '[':
			inside = true
			start = idx - 2
		case inside && idx > start+3 &&
			ch == ' ' && text[idx+1] == ']' && text[idx+2] == ']':
			inside = false
			tokens = append(tokens, Token{
				Offset:  start,
				Content: text[start : idx+3],
			})
		case inside && !legal(ch):
			inside = false
		}
	}

	return tokens
}
