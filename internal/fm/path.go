package fm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// textExtensions is the closed set of extensions treated as editable text.
var textExtensions = map[string]bool{
	"txt": true, "js": true, "ts": true, "html": true, "css": true,
	"json": true, "md": true, "rs": true, "py": true, "java": true,
	"cpp": true, "c": true, "xml": true, "yml": true, "yaml": true,
}

// languages maps a lower-cased extension to an editor language tag.
var languages = map[string]string{
	"js":   "javascript",
	"ts":   "typescript",
	"html": "html",
	"css":  "css",
	"py":   "python",
	"rs":   "rust",
	"cpp":  "cpp",
	"cc":   "cpp",
	"cxx":  "cpp",
	"c":    "c",
	"java": "java",
	"php":  "php",
	"rb":   "ruby",
	"go":   "go",
	"sql":  "sql",
	"xml":  "xml",
	"json": "json",
	"md":   "markdown",
	"sh":   "shell",
	"bash": "shell",
	"yml":  "yaml",
	"yaml": "yaml",
}

// PlainText is the language tag for paths with no known extension.
const PlainText = "plaintext"

// ValidatePath reports whether path is non-empty, relative and free of "..".
//
// The check is purely syntactic. It does not clean or resolve the path, and
// backslash-rooted or percent-encoded forms such as `\etc\passwd` or
// "%2e%2e/secret" pass.
func ValidatePath(path string) bool {
	return path != "" && !strings.Contains(path, "..") && !strings.HasPrefix(path, "/")
}

// FileExtension returns the lower-cased text after the last '.' in filename,
// or "" when there is no dot. A leading dot counts: ".gitignore" yields
// "gitignore".
func FileExtension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return toLower(filename[i+1:])
}

// IsTextFile reports whether filename has one of the known text extensions.
func IsTextFile(filename string) bool {
	return textExtensions[FileExtension(filename)]
}

// SanitizeFilename replaces every rune that is not a letter, a number,
// '.', '_' or '-' with '_'. The rune count is preserved.
func SanitizeFilename(filename string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		switch r {
		case '.', '_', '-':
			return r
		}
		return '_'
	}, filename)
}

// LanguageFromPath infers a language tag from the extension of the last
// '/'-separated segment of path.
func LanguageFromPath(path string) string {
	name := path[strings.LastIndexByte(path, '/')+1:]
	if lang, ok := languages[FileExtension(name)]; ok {
		return lang
	}
	return PlainText
}

// toLower applies full Unicode lower-casing with no locale tailoring.
// A Caser keeps state, so each call gets its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}
