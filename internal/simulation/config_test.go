package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "rules.json"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}

	defaults := DefaultConfig()
	if *config != *defaults {
		t.Errorf("Expected default config, got %+v", config)
	}
}

func TestLoadConfigJSONOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	data := `{
		"combat": {"damage": 25},
		"viewport": {"width": 640, "height": 480}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Combat.Damage != 25 {
		t.Errorf("Expected damage 25, got %d", config.Combat.Damage)
	}
	if config.Combat.StartHealth != 100 {
		t.Errorf("Expected default start health 100, got %d", config.Combat.StartHealth)
	}
	if config.Viewport.Width != 640 || config.Viewport.Height != 480 {
		t.Errorf("Expected viewport 640x480, got %dx%d", config.Viewport.Width, config.Viewport.Height)
	}
	if config.Physics.JumpVelocity != -20 {
		t.Errorf("Expected default jump velocity -20, got %d", config.Physics.JumpVelocity)
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	data := `
[physics]
jump_velocity = -15

[controls]
walk_speed = 3
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Physics.JumpVelocity != -15 {
		t.Errorf("Expected jump velocity -15, got %d", config.Physics.JumpVelocity)
	}
	if config.Controls.WalkSpeed != 3 {
		t.Errorf("Expected walk speed 3, got %d", config.Controls.WalkSpeed)
	}
	if config.Physics.Gravity != 1 {
		t.Errorf("Expected default gravity 1, got %d", config.Physics.Gravity)
	}
}

func TestLoadConfigRejectsInvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(`{"physics": {"jump_velocity": 5}}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for a positive jump velocity")
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(`{"physics":`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoadConfigRejectsMissingSpawn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	// Only one spawn: the second one is left at its zero value.
	data := `{"spawns": [{"x": 150, "y": 100, "skin": "red"}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for a missing second spawn")
	}
}

func TestValidateSpawns(t *testing.T) {
	tests := []struct {
		name  string
		spawn SpawnPoint
		valid bool
	}{
		{"default", SpawnPoint{X: 800, Y: 100, Skin: "blue"}, true},
		{"negative x", SpawnPoint{X: -1, Y: 100, Skin: "blue"}, false},
		{"head above the map", SpawnPoint{X: 800, Y: 44, Skin: "blue"}, false},
		{"head on the top row", SpawnPoint{X: 800, Y: 45, Skin: "blue"}, true},
		{"zero value", SpawnPoint{}, false},
		{"no skin", SpawnPoint{X: 800, Y: 100}, false},
	}

	for _, tt := range tests {
		config := DefaultConfig()
		config.Spawns[1] = tt.spawn
		err := config.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: expected valid spawn, got %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}
