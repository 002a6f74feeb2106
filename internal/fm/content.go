package fm

import (
	"strconv"
	"strings"
)

// Operations understood by ProcessContent.
const (
	OpTrim       = "trim"
	OpUppercase  = "uppercase"
	OpLowercase  = "lowercase"
	OpCountLines = "count_lines"
	OpCountWords = "count_words"
)

// ProcessContent applies operation to content. Counting operations return
// a decimal string. Unknown operations return content unchanged.
func ProcessContent(content, operation string) string {
	switch operation {
	case OpTrim:
		return strings.TrimSpace(content)
	case OpUppercase:
		return toUpper(content)
	case OpLowercase:
		return toLower(content)
	case OpCountLines:
		return strconv.Itoa(countLines(content))
	case OpCountWords:
		return strconv.Itoa(countWords(content))
	default:
		return content
	}
}

// countLines counts newline-terminated lines plus an unterminated tail.
// A trailing newline does not start a new line.
func countLines(content string) int {
	n := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

func countWords(content string) int {
	return len(strings.Fields(content))
}
