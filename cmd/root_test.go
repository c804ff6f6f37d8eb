package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFirstNonFlagArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "skips leading flags",
			args: []string{"--flag", "unknown-cmd"},
			want: "unknown-cmd",
		},
		{
			name: "all flags",
			args: []string{"-h", "--help"},
			want: "",
		},
		{
			name: "finds command after help",
			args: []string{"--help", "list"},
			want: "list",
		},
		{
			name: "no args",
			args: nil,
			want: "",
		},
		{
			name: "skips value of a view flag",
			args: []string{"--cell-width", "4", "page.html"},
			want: "page.html",
		},
		{
			name: "inline value",
			args: []string{"--preloader=<i>wait</i>", "page.html"},
			want: "page.html",
		},
		{
			name: "bool flag takes no value",
			args: []string{"--no-preview", "page.html"},
			want: "page.html",
		},
		{
			name: "shorthand bool flag",
			args: []string{"-v", "scan", "a.html"},
			want: "scan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonFlagArg(tt.args); got != tt.want {
				t.Errorf("firstNonFlagArg(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestIsPagePath(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"index.html", true},
		{"site/GALLERY.HTM", true},
		{"doc.xhtml", true},
		{"scan", false},
		{"photo.jpg", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isPagePath(tt.arg); got != tt.want {
			t.Errorf("isPagePath(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestIsSubcommand(t *testing.T) {
	for _, name := range []string{"view", "scan", "ls", "render", "config"} {
		if !isSubcommand(name) {
			t.Errorf("isSubcommand(%q) = false, want true", name)
		}
	}
	if isSubcommand("page.html") {
		t.Error("isSubcommand(page.html) = true, want false")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var quiet, loud bytes.Buffer
	newLogger(&quiet, false).Debug("scan: page", "page", "a.html")
	newLogger(&loud, true).Debug("scan: page", "page", "a.html")

	if quiet.Len() != 0 {
		t.Errorf("debug logged without verbose: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "page=a.html") {
		t.Errorf("verbose logger dropped debug line: %q", loud.String())
	}
}

func TestScanLogsThroughDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	saved := slog.Default()
	slog.SetDefault(newLogger(&buf, true))
	defer slog.SetDefault(saved)

	path := writePage(t, t.TempDir(), "g.html", galleryPage)
	if _, err := scanPages(context.Background(), []string{path}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "scan: page") || !strings.Contains(buf.String(), "items=3") {
		t.Errorf("missing scan debug line: %q", buf.String())
	}
}
