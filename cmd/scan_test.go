package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func writePage(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const galleryPage = `<html><body>
<img data-lb-item data-lb-item-group="beach" data-lb-item-name="Dunes" data-lb-item-src="dunes.jpg">
<img data-lb-item data-lb-item-group="beach" data-lb-item-name="Pier" data-lb-item-src="pier.jpg">
<video data-lb-item data-lb-item-name="Waves" data-lb-item-src="waves.mp4"></video>
</body></html>`

func TestScanPagesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c.html", "a.html", "b.html", "e.html", "d.html"} {
		paths = append(paths, writePage(t, dir, name, galleryPage))
	}
	empty := writePage(t, dir, "empty.html", "<p>nothing</p>")
	paths = append(paths, empty)

	scans, err := scanPages(context.Background(), paths)
	if err != nil {
		t.Fatalf("scanPages: %v", err)
	}
	var got []string
	for _, s := range scans {
		got = append(got, s.Page)
	}
	if diff := cmp.Diff(paths, got); diff != "" {
		t.Errorf("page order mismatch (-want +got):\n%s", diff)
	}

	first := scans[0]
	if len(first.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(first.Items))
	}
	if diff := cmp.Diff([]string{"beach"}, first.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	last := scans[len(scans)-1]
	if last.Items == nil || last.Groups == nil {
		t.Error("empty page should report empty lists, not nil")
	}
}

func TestScanPagesMissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writePage(t, dir, "ok.html", galleryPage)
	missing := filepath.Join(dir, "missing.html")

	_, err := scanPages(context.Background(), []string{ok, missing})
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !strings.Contains(err.Error(), "missing.html") {
		t.Errorf("error %q should name the page", err)
	}
}

func TestScanPagesCancelled(t *testing.T) {
	dir := t.TempDir()
	page := writePage(t, dir, "ok.html", galleryPage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanPages(ctx, []string{page})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestScanLines(t *testing.T) {
	dir := t.TempDir()
	page := writePage(t, dir, "g.html", galleryPage)
	scans, err := scanPages(context.Background(), []string{page})
	if err != nil {
		t.Fatal(err)
	}

	lines := scanLines(scans[0], false, 0)
	if !strings.HasSuffix(lines[0], "3 items, 1 groups") {
		t.Errorf("header = %q", lines[0])
	}
	text := strings.Join(lines, "\n")
	for _, want := range []string{"group beach", "#0: Dunes", "#1: Pier", "#2: Waves", "[video]"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "dunes.jpg") {
		t.Error("sources shown without --src")
	}

	for _, line := range scanLines(scans[0], true, 20) {
		if w := ansi.StringWidth(line); w > 20 {
			t.Errorf("line %q wider than 20", line)
		}
	}
}

func TestScanCountsUnsupportedTags(t *testing.T) {
	page := writePage(t, t.TempDir(), "mixed.html", `<body>
<img data-lb-item data-lb-item-src="a.jpg">
<div data-lb-item data-lb-item-src="b.jpg"></div>
<a data-lb-item href="#">c</a>
</body>`)

	scans, err := scanPages(context.Background(), []string{page})
	if err != nil {
		t.Fatal(err)
	}
	if got := scans[0].Unsupported; got != 2 {
		t.Errorf("unsupported = %d, want 2", got)
	}
	if lines := scanLines(scans[0], false, 0); !strings.HasSuffix(lines[0], "3 items, 0 groups, 2 unsupported") {
		t.Errorf("header = %q", lines[0])
	}
}
