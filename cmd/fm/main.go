package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"fm-go/internal/app"
	"fm-go/internal/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config (falling back to defaults when none exists) and
// creates an FMApp. The caller must defer app.Close().
// command names the CLI command being run (e.g. "lang", "process").
func newApp(cmd *cobra.Command, command string) (*app.FMApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFileOrDefault(defaults.ConfigPath, defaults.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewFMApp(cfg, command)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	if cmd.Flags().Changed("current-path") {
		p, err := cmd.Flags().GetString("current-path")
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("reading --current-path: %w", err)
		}
		a.FileManager().SetCurrentPath(p)
	}

	return a, nil
}

// openInput returns the file named by args[i], or stdin when args has no such
// element. An interactive stdin is refused rather than waited on.
func openInput(cmd *cobra.Command, args []string, i int) (io.ReadCloser, error) {
	if len(args) > i {
		f, err := os.Open(args[i])
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("no input: pass a FILE or pipe content on stdin")
	}
	return io.NopCloser(in), nil
}

var rootCmd = &cobra.Command{
	Use:   "fm",
	Short: "File name, path and content utilities",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		hostID := uuid.New().String()
		cfg := config.NewConfig(hostID, defaults.BaseDir)

		if err := config.Init(defaults.ConfigPath, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration initialized at %s\n", defaults.ConfigPath)
		fmt.Fprintf(out, "Host ID: %s\n", hostID)
		fmt.Fprintf(out, "Base Dir: %s\n", defaults.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFileOrDefault(defaults.ConfigPath, defaults.BaseDir)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		out := cmd.OutOrStdout()
		if _, err := os.Stat(defaults.ConfigPath); errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "No config file at %s; showing defaults (run `fm config init` to create one):\n\n", defaults.ConfigPath)
		} else {
			fmt.Fprintf(out, "Configuration from %s:\n\n", defaults.ConfigPath)
		}
		fmt.Fprintf(out, "Host ID:      %s\n", cfg.HostID)
		fmt.Fprintf(out, "Base Dir:     %s\n", cfg.BaseDir)
		fmt.Fprintf(out, "Log Dir:      %s\n", cfg.LogDir)
		fmt.Fprintf(out, "Log Level:    %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "Current Path: %s\n", cfg.CurrentPath)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the current path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "path")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.FileManager().CurrentPath())
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Check that a path is relative and has no '..'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "validate")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.FileManager().ValidatePath(args[0]))
		return nil
	},
}

var extCmd = &cobra.Command{
	Use:   "ext FILENAME",
	Short: "Print the lower-cased file extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "ext")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.FileManager().FileExtension(args[0]))
		return nil
	},
}

var textCmd = &cobra.Command{
	Use:   "text FILENAME",
	Short: "Report whether a file name has a text extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "text")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.FileManager().IsTextFile(args[0]))
		return nil
	},
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize FILENAME",
	Short: "Replace unsafe file name characters with '_'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "sanitize")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.FileManager().SanitizeFilename(args[0]))
		return nil
	},
}

var langCmd = &cobra.Command{
	Use:   "lang PATH",
	Short: "Print the language tag for a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "lang")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.FileManager().LanguageFromPath(args[0]))
		return nil
	},
}

var sizeCmd = &cobra.Command{
	Use:   "size BYTES",
	Short: "Format a byte count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "size")
		if err != nil {
			return err
		}
		defer a.Close()

		s, err := a.FormatFileSize(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

var processCmd = &cobra.Command{
	Use:   "process OPERATION [FILE]",
	Short: "Transform content: trim, uppercase, lowercase, count_lines, count_words",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "process")
		if err != nil {
			return err
		}
		defer a.Close()

		in, err := openInput(cmd, args, 1)
		if err != nil {
			return err
		}
		defer in.Close()

		result, err := a.ProcessContent(in, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, result)
		if !strings.HasSuffix(result, "\n") {
			fmt.Fprintln(out)
		}
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [FILE]",
	Short: "Trim content and re-indent brace blocks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "format")
		if err != nil {
			return err
		}
		defer a.Close()

		in, err := openInput(cmd, args, 0)
		if err != nil {
			return err
		}
		defer in.Close()

		formatted, err := a.FormatCode(in)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatted)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [FILE]",
	Short: "Summarize content and suggest improvements",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := cmd.Flags().GetString("path")
		if err != nil {
			return fmt.Errorf("reading --path: %w", err)
		}

		a, err := newApp(cmd, "analyze")
		if err != nil {
			return err
		}
		defer a.Close()

		in, err := openInput(cmd, args, 0)
		if err != nil {
			return err
		}
		defer in.Close()

		if path == "" && len(args) > 0 {
			path = args[0]
		}

		res, err := a.Analyze(in, path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Language:   %s\n", res.Language)
		fmt.Fprintf(out, "Lines:      %d\n", res.LineCount)
		fmt.Fprintf(out, "Words:      %d\n", res.WordCount)
		fmt.Fprintf(out, "Needs trim: %t\n", res.NeedsTrim)
		for _, s := range res.Suggestions {
			fmt.Fprintf(out, "- %s\n", s)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("current-path", "", "Current path for this invocation (overrides config current_path)")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(extCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringP("path", "p", "", "Path used for language detection (default: FILE, then current path)")
}
