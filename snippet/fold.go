package snippet

import "strings"

// Line continuation markers, applied in this order.
const (
	// foldTight joins two lines with nothing between them: "a\\" + "b" -> "ab".
	foldTight = "\\\\\n"
	// foldMarked joins a line ending in a backslash with a following line
	// that begins with one: "a\" + "\b" -> "ab".
	foldMarked = "\\\n\\"
	// foldSpaced joins two lines with a single space: "a\" + "b" -> "a b".
	foldSpaced = "\\\n"
)

// Fold applies the line continuation rules to rendered code.
func Fold(code string) string {
	code = strings.ReplaceAll(code, foldTight, "")
	code = strings.ReplaceAll(code, foldMarked, "")
	return strings.ReplaceAll(code, foldSpaced, " ")
}

// Indent prefixes every line of code with indent.
func Indent(code, indent string) string {
	if indent == "" {
		return code
	}
	return indent + strings.ReplaceAll(code, "\n", "\n"+indent)
}

// leadingWhitespace returns the run of spaces and tabs that starts line.
func leadingWhitespace(line string) string {
	end := 0
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	return line[:end]
}
