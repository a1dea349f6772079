package templating

import "strings"

// concatPath joins two path fragments with exactly one slash between them.
func concatPath(dir string, name string) string {
	dirSlash := strings.HasSuffix(dir, "/")
	nameSlash := strings.HasPrefix(name, "/")

	switch {
	case dirSlash && nameSlash:
		return dir[:len(dir)-1] + name
	case !dirSlash && !nameSlash:
		return dir + "/" + name
	default:
		return dir + name
	}
}

var sanitizer = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// sanitize escapes angle brackets. Ampersands and quotes pass through.
func sanitize(text string) string {
	return sanitizer.Replace(text)
}

// indentation counts the leading spaces of the last line of out.
func indentation(out string) int {
	last := out[strings.LastIndexByte(out, '\n')+1:]

	width := 0
	for width < len(last) && last[width] == ' ' {
		width++
	}

	return width
}

// reindent prefixes every line of text after the first with width spaces.
func reindent(text string, width int) string {
	if width == 0 || !strings.Contains(text, "\n") {
		return text
	}

	return strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", width))
}
