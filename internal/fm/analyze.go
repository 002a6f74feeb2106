package fm

import (
	"strings"
	"unicode/utf8"
)

// largeContentRunes is the size above which Analyze suggests splitting a buffer.
const largeContentRunes = 1000

// Analysis summarizes an editor buffer.
type Analysis struct {
	Language    string
	LineCount   int
	WordCount   int
	Trimmed     string // content with surrounding whitespace removed
	NeedsTrim   bool   // Trimmed differs from the content
	Suggestions []string
}

// Analyze summarizes content for the buffer at path. Counts agree with
// ProcessContent's count_lines and count_words.
func Analyze(content, path string) *Analysis {
	trimmed := ProcessContent(content, OpTrim)
	a := &Analysis{
		Language:  LanguageFromPath(path),
		LineCount: countLines(content),
		WordCount: countWords(content),
		Trimmed:   trimmed,
		NeedsTrim: trimmed != content,
	}

	if strings.Contains(content, "console.log") {
		a.Suggestions = append(a.Suggestions, "Consider removing debug console.log statements before production")
	}
	if strings.Contains(content, "var ") {
		a.Suggestions = append(a.Suggestions, "Consider using let or const instead of var for better scoping")
	}
	if utf8.RuneCountInString(content) > largeContentRunes {
		a.Suggestions = append(a.Suggestions, "Large files can be split into smaller modules for better maintainability")
	}
	if !strings.Contains(content, "\n") {
		a.Suggestions = append(a.Suggestions, "Consider adding comments to explain the code functionality")
	}

	return a
}
