// Package fm holds the string and path helpers used by editor hosts:
// extension lookup, path validation, filename sanitization, language
// detection, size formatting and simple text transforms.
//
// Nothing in this package touches the filesystem. Every function takes
// caller-supplied strings and returns a value for every input.
package fm

// FileManager carries the host's current path alongside the helpers.
// It is owned by a single caller and is not safe for concurrent mutation.
type FileManager struct {
	currentPath string
	logger      Logger
}

// NewFileManager creates a FileManager with an empty current path.
// A nil logger discards diagnostics.
func NewFileManager(logger Logger) *FileManager {
	if logger == nil {
		logger = NewNopLogger()
	}
	logger.Debug("file manager created")
	return &FileManager{logger: logger}
}

// SetCurrentPath overwrites the current path. The value is not validated.
func (m *FileManager) SetCurrentPath(path string) {
	m.currentPath = path
	m.logger.Debug("current path set", "path", path)
}

// CurrentPath returns the last path passed to SetCurrentPath.
func (m *FileManager) CurrentPath() string {
	return m.currentPath
}

// ValidatePath calls the package-level ValidatePath.
func (m *FileManager) ValidatePath(path string) bool { return ValidatePath(path) }

// FileExtension calls the package-level FileExtension.
func (m *FileManager) FileExtension(filename string) string { return FileExtension(filename) }

// IsTextFile calls the package-level IsTextFile.
func (m *FileManager) IsTextFile(filename string) bool { return IsTextFile(filename) }

// SanitizeFilename calls the package-level SanitizeFilename.
func (m *FileManager) SanitizeFilename(filename string) string { return SanitizeFilename(filename) }

// LanguageFromPath calls the package-level LanguageFromPath.
func (m *FileManager) LanguageFromPath(path string) string { return LanguageFromPath(path) }

// FormatFileSize calls the package-level FormatFileSize.
func (m *FileManager) FormatFileSize(size uint64) string { return FormatFileSize(size) }
