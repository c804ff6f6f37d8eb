package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/lightbox/internal/workdir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version string
	baseDir string
	verbose bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "lightbox",
	Short: "Browse the media items of an HTML page in a terminal lightbox",
	Long: `lightbox - finds the data-lb-item elements of an HTML page and shows them in a
modal lightbox with group navigation, a preview strip and mouse gestures.

Running "lightbox page.html" is the same as "lightbox view page.html".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	args := os.Args[1:]
	if first := firstNonFlagArg(args); isPagePath(first) && !isSubcommand(first) {
		rootCmd.SetArgs(append([]string{"view"}, args...))
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir, initLogging)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

func initBaseDir() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = workdir.ResolveBaseDir(cwd)
}

func initLogging() {
	slog.SetDefault(newLogger(os.Stderr, verbose))
}

// newLogger logs warnings to w, or everything with verbose set
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// getBaseDir returns the directory config is read from
func getBaseDir() string {
	return baseDir
}

// firstNonFlagArg returns the first argument that is neither a flag nor
// the value of one
func firstNonFlagArg(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
		if takesValue(arg) {
			i++
		}
	}
	return ""
}

// takesValue reports whether arg is a root or view flag given without
// "=" that consumes the next argument
func takesValue(arg string) bool {
	if arg == "--" || strings.Contains(arg, "=") {
		return false
	}
	for _, set := range []*pflag.FlagSet{rootCmd.PersistentFlags(), viewCmd.Flags()} {
		var f *pflag.Flag
		switch {
		case strings.HasPrefix(arg, "--"):
			f = set.Lookup(arg[2:])
		case len(arg) == 2:
			f = set.ShorthandLookup(arg[1:])
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

func isPagePath(arg string) bool {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

func isSubcommand(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
