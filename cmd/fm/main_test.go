package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command against an isolated config and data dir.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("FM_CONFIG_PATH", filepath.Join(dir, "fm.toml"))
	t.Setenv("FM_HOME", filepath.Join(dir, "home"))

	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), analyzeCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"validate relative", []string{"validate", "src/a.js"}, "true\n"},
		{"validate traversal", []string{"validate", "../x"}, "false\n"},
		{"validate absolute", []string{"validate", "/x"}, "false\n"},
		{"ext", []string{"ext", "file.TS"}, "ts\n"},
		{"ext none", []string{"ext", "Makefile"}, "\n"},
		{"text", []string{"text", "readme.md"}, "true\n"},
		{"text binary", []string{"text", "image.png"}, "false\n"},
		{"sanitize", []string{"sanitize", "my file?.txt"}, "my_file_.txt\n"},
		{"lang", []string{"lang", "src/app.ts"}, "typescript\n"},
		{"lang unknown", []string{"lang", "a/b/c.unknownext"}, "plaintext\n"},
		{"size bytes", []string{"size", "1023"}, "1023 B\n"},
		{"size kilobytes", []string{"size", "1536"}, "1.5 KB\n"},
		{"path flag", []string{"path", "--current-path", "projects/app"}, "projects/app\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeCommand_rejectsNonNumeric(t *testing.T) {
	_, err := run(t, "", "size", "lots")
	assert.Error(t, err)
}

func TestProcessCommand(t *testing.T) {
	t.Run("reads stdin", func(t *testing.T) {
		got, err := run(t, "abc\ndef\n", "process", "count_lines")
		require.NoError(t, err)
		assert.Equal(t, "2\n", got)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(path, []byte("a b  c"), 0644))

		got, err := run(t, "", "process", "count_words", path)
		require.NoError(t, err)
		assert.Equal(t, "3\n", got)
	})

	t.Run("unknown operation echoes content", func(t *testing.T) {
		got, err := run(t, "keep me\n", "process", "unknown_op")
		require.NoError(t, err)
		assert.Equal(t, "keep me\n", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "process", "trim", filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("detects language from file name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "main.js")
		require.NoError(t, os.WriteFile(path, []byte("var x = 1;\nconsole.log(x);\n"), 0644))

		got, err := run(t, "", "analyze", path)
		require.NoError(t, err)
		assert.Equal(t, "Language:   javascript\n"+
			"Lines:      2\n"+
			"Words:      5\n"+
			"Needs trim: true\n"+
			"- Consider removing debug console.log statements before production\n"+
			"- Consider using let or const instead of var for better scoping\n", got)
	})

	t.Run("path flag overrides detection", func(t *testing.T) {
		got, err := run(t, "SELECT 1;\n", "analyze", "--path", "q.sql")
		require.NoError(t, err)
		assert.Contains(t, got, "Language:   sql\n")
	})
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fm.toml")

	t.Setenv("FM_CONFIG_PATH", configPath)
	t.Setenv("FM_HOME", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)

	rootCmd.SetArgs([]string{"config", "init"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Configuration initialized at "+configPath)

	out.Reset()
	rootCmd.SetArgs([]string{"config", "list"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Log Dir:      "+filepath.Join(dir, "log"))
	assert.Contains(t, out.String(), "Log Level:    info")

	rootCmd.SetArgs([]string{"config", "init"})
	assert.Error(t, rootCmd.Execute())
}

func TestFormatCommand(t *testing.T) {
	t.Run("re-indents stdin", func(t *testing.T) {
		got, err := run(t, "function f() {\nif (x) {\n}\n}\n", "format")
		require.NoError(t, err)
		assert.Equal(t, "function f() {\n  if (x) {\n  }\n}\n", got)
	})

	t.Run("no keyword only trims file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n  a {\nb\n}  \n"), 0644))

		got, err := run(t, "", "format", path)
		require.NoError(t, err)
		assert.Equal(t, "a {\nb\n}\n", got)
	})
}

func TestConfigListCommand_withoutFile(t *testing.T) {
	got, err := run(t, "", "config", "list")
	require.NoError(t, err)
	assert.Contains(t, got, "No config file at ")
	assert.Contains(t, got, "run `fm config init` to create one")
	assert.Contains(t, got, "Log Level:    info")
}
