package gamescanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestScanDataDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tower", "map.txt"), "###\n")
	writeFile(t, filepath.Join(root, "tower", "rules.json"), "{}")
	writeFile(t, filepath.Join(root, "castle", "map.txt"), "###\n")
	writeFile(t, filepath.Join(root, "castle", "rules.toml"), "")
	writeFile(t, filepath.Join(root, "castle", "rules.json"), "{}")
	writeFile(t, filepath.Join(root, "plains", "map.txt"), "###\n")
	writeFile(t, filepath.Join(root, "empty", "readme.txt"), "no map here")
	writeFile(t, filepath.Join(root, ".hidden", "map.txt"), "###\n")
	writeFile(t, filepath.Join(root, "loose.txt"), "###\n")

	levels, err := ScanDataDirectory(root)
	if err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}

	if len(levels) != 3 {
		t.Fatalf("Expected 3 levels, got %d: %+v", len(levels), levels)
	}
	if levels[0].Name != "castle" || levels[1].Name != "plains" || levels[2].Name != "tower" {
		t.Errorf("Expected levels sorted by name, got %s, %s, %s", levels[0].Name, levels[1].Name, levels[2].Name)
	}
	if levels[0].RulesPath != filepath.Join(root, "castle", "rules.toml") {
		t.Errorf("Expected TOML rules to win, got %s", levels[0].RulesPath)
	}
	if levels[1].RulesPath != "" {
		t.Errorf("Expected no rules for plains, got %s", levels[1].RulesPath)
	}
	if levels[2].MapPath != filepath.Join(root, "tower", "map.txt") {
		t.Errorf("Expected tower map path, got %s", levels[2].MapPath)
	}

	if _, ok := FindLevel(levels, "plains"); !ok {
		t.Error("Expected to find plains")
	}
	if _, ok := FindLevel(levels, "moon"); ok {
		t.Error("Expected moon to be missing")
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := ScanDataDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected an error for a missing data directory")
	}
}

func TestResolveLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "classic", "map.txt"), "###\n")
	writeFile(t, filepath.Join(root, "classic", "rules.json"), "{}")

	level, err := ResolveLevel(root, "classic", "", "")
	if err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}
	if level.RulesPath != filepath.Join(root, "classic", "rules.json") {
		t.Errorf("Expected level rules, got %s", level.RulesPath)
	}

	level, err = ResolveLevel(root, "classic", "", "custom.toml")
	if err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}
	if level.RulesPath != "custom.toml" {
		t.Errorf("Expected rules override, got %s", level.RulesPath)
	}

	level, err = ResolveLevel(root, "ignored", "/maps/arena.txt", "")
	if err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}
	if level.Name != "arena" || level.MapPath != "/maps/arena.txt" || level.RulesPath != "" {
		t.Errorf("Expected explicit arena map, got %+v", level)
	}

	if _, err := ResolveLevel(root, "moon", "", ""); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}
