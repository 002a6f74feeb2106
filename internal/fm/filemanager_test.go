package fm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.add("DEBUG", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.add("INFO", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.add("WARN", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.add("ERROR", msg, args) }

func (l *recordingLogger) add(level, msg string, args []any) {
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func TestNewFileManager(t *testing.T) {
	t.Parallel()

	t.Run("starts with empty path", func(t *testing.T) {
		t.Parallel()
		m := NewFileManager(NewNopLogger())
		assert.Empty(t, m.CurrentPath())
	})

	t.Run("logs creation", func(t *testing.T) {
		t.Parallel()
		logger := &recordingLogger{}
		NewFileManager(logger)

		require.Len(t, logger.entries, 1)
		assert.Equal(t, "file manager created", logger.entries[0].msg)
	})

	t.Run("nil logger is allowed", func(t *testing.T) {
		t.Parallel()
		m := NewFileManager(nil)
		m.SetCurrentPath("src")
		assert.Equal(t, "src", m.CurrentPath())
	})
}

func TestFileManager_SetCurrentPath(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	m := NewFileManager(logger)

	for _, p := range []string{"projects/app", "", "/not/validated/../at/all", "ünï"} {
		m.SetCurrentPath(p)
		assert.Equal(t, p, m.CurrentPath())
	}

	require.Len(t, logger.entries, 5)
	last := logger.entries[4]
	assert.Equal(t, "DEBUG", last.level)
	assert.Equal(t, "current path set", last.msg)
	assert.Equal(t, []any{"path", "ünï"}, last.args)
}

func TestFileManager_instancesAreIndependent(t *testing.T) {
	t.Parallel()

	a := NewFileManager(nil)
	b := NewFileManager(nil)
	a.SetCurrentPath("one")

	assert.Equal(t, "one", a.CurrentPath())
	assert.Empty(t, b.CurrentPath())
}

func TestFileManager_methodsMatchFunctions(t *testing.T) {
	t.Parallel()

	m := NewFileManager(nil)

	assert.Equal(t, ValidatePath("a/b"), m.ValidatePath("a/b"))
	assert.Equal(t, "ts", m.FileExtension("file.TS"))
	assert.True(t, m.IsTextFile("readme.md"))
	assert.Equal(t, "a_b", m.SanitizeFilename("a b"))
	assert.Equal(t, "typescript", m.LanguageFromPath("src/app.ts"))
	assert.Equal(t, "1.5 KB", m.FormatFileSize(1536))
}

func TestFileInfo_JSON(t *testing.T) {
	t.Parallel()

	t.Run("absent size encodes as null", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(FileInfo{Name: "src", Path: "src", IsDirectory: true})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"src","path":"src","is_directory":true,"size":null}`, string(data))
	})

	t.Run("decodes host payload", func(t *testing.T) {
		t.Parallel()
		var info FileInfo
		err := json.Unmarshal([]byte(`{"name":"a.js","path":"src/a.js","is_directory":false,"size":42}`), &info)
		require.NoError(t, err)
		require.NotNil(t, info.Size)
		assert.Equal(t, uint64(42), *info.Size)
		assert.Equal(t, "src/a.js", info.Path)
	})
}
