// Package workdir finds the directory lightbox reads its config from.
package workdir

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	rootFile  = ".lightbox-root"
	configDir = ".lightbox"
)

// ResolveBaseDir picks the config root for baseDir:
//  1. A .lightbox-root file in baseDir redirects to the directory it names.
//  2. baseDir itself when it has a .lightbox directory.
//  3. Inside a git checkout, the same two checks at the top level.
//
// Without any marker baseDir is returned unchanged.
func ResolveBaseDir(baseDir string) string {
	if baseDir == "" {
		return baseDir
	}
	baseDir = filepath.Clean(baseDir)

	if dir, ok := resolveIn(baseDir); ok {
		return dir
	}

	top, err := gitTopLevel(baseDir)
	if err != nil || top == "" {
		return baseDir
	}
	if dir, ok := resolveIn(filepath.Clean(top)); ok {
		return dir
	}
	return baseDir
}

func resolveIn(dir string) (string, bool) {
	if target, ok := readRootFile(dir); ok {
		return target, true
	}
	if hasConfigDir(dir) {
		return dir, true
	}
	return "", false
}

func readRootFile(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, rootFile))
	if err != nil {
		return "", false
	}
	target := strings.TrimSpace(string(content))
	if target == "" {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.Clean(target), true
}

func hasConfigDir(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, configDir))
	return err == nil && fi.IsDir()
}

func gitTopLevel(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
