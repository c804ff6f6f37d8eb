package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcus/lightbox/internal/models"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	configDir := filepath.Join(dir, ".lightbox")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("setup: mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(body), 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.Options
	}{
		{
			name: "empty object keeps defaults",
			body: `{}`,
			want: models.DefaultOptions(),
		},
		{
			name: "explicit false disables preview",
			body: `{"preview": false}`,
			want: models.Options{Preview: false, Overflow: true},
		},
		{
			name: "explicit false disables overflow lock",
			body: `{"overflow": false}`,
			want: models.Options{Preview: true, Overflow: false},
		},
		{
			name: "all fields",
			body: `{"preview": true, "overflow": false, "preloader": "<i>…</i>", "arrow_left": "&gt;", "arrow_right": "&lt;"}`,
			want: models.Options{
				Preview:    true,
				Overflow:   false,
				Preloader:  "<i>…</i>",
				ArrowLeft:  "&gt;",
				ArrowRight: "&lt;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)

			got, err := Load(dir)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(models.DefaultOptions(), got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "config.json") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	opts := models.Options{
		Preview:    false,
		Overflow:   false,
		Preloader:  "loading",
		ArrowRight: "<",
	}

	if Exists(dir) {
		t.Fatal("config should not exist yet")
	}
	if err := Save(dir, opts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !Exists(dir) {
		t.Fatal("config should exist after Save")
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(opts, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveWritesBooleans(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, models.DefaultOptions()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(Path(dir))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	for _, key := range []string{`"preview": true`, `"overflow": true`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved file missing %s:\n%s", key, data)
		}
	}
	if strings.Contains(string(data), "preloader") {
		t.Errorf("empty preloader should be omitted:\n%s", data)
	}
}
