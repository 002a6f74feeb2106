package fm

import "strings"

// indentUnit is one level of FormatCode indentation.
const indentUnit = "  "

// blockKeywords gate re-indentation: content without any of them is only trimmed.
var blockKeywords = []string{"function", "if", "for"}

// FormatCode trims content and, when it looks like brace-delimited code,
// re-indents every line two spaces per open block. A line starting with '}'
// closes a block before it is written and a line ending with '{' opens one
// after it. The depth never drops below zero, so stray closing braces stay
// at the left margin. Blank lines are left empty.
func FormatCode(content string) string {
	formatted := ProcessContent(content, OpTrim)
	if !containsAny(formatted, blockKeywords) {
		return formatted
	}

	lines := strings.Split(formatted, "\n")
	depth := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "}") && depth > 0 {
			depth--
		}
		if line != "" {
			line = strings.Repeat(indentUnit, depth) + line
		}
		lines[i] = line
		if strings.HasSuffix(line, "{") {
			depth++
		}
	}
	return strings.Join(lines, "\n")
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
