// Package simulation provides the tunable rules of a match.
// Rules can be loaded from a JSON or TOML file so a level can ship its own
// mechanics; anything the file leaves out keeps its default.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all simulation rules for a match
type Config struct {
	Physics  PhysicsConfig  `json:"physics" toml:"physics"`
	Combat   CombatConfig   `json:"combat" toml:"combat"`
	Viewport ViewportConfig `json:"viewport" toml:"viewport"`
	Spawns   [2]SpawnPoint  `json:"spawns" toml:"spawns"`
	Controls ControlsConfig `json:"controls" toml:"controls"`
}

// PhysicsConfig defines movement and gravity
type PhysicsConfig struct {
	// Gravity is added to vy every tick.
	Gravity int `json:"gravity" toml:"gravity"`
	// JumpVelocity is vy right after a jump (negative is up).
	JumpVelocity int `json:"jump_velocity" toml:"jump_velocity"`
	// BodyHeight is the distance from the feet to the upper collision probe.
	BodyHeight int `json:"body_height" toml:"body_height"`
}

// CombatConfig defines projectiles and health
type CombatConfig struct {
	StartHealth int `json:"start_health" toml:"start_health"`
	// Damage is the health removed per hit.
	Damage          int `json:"damage" toml:"damage"`
	ProjectileSpeed int `json:"projectile_speed" toml:"projectile_speed"`
	// Projectiles spawn MuzzleOffsetX in front of the firer and
	// MuzzleOffsetY above its feet.
	MuzzleOffsetX int `json:"muzzle_offset_x" toml:"muzzle_offset_x"`
	MuzzleOffsetY int `json:"muzzle_offset_y" toml:"muzzle_offset_y"`
	// The target hit-box spans HitboxHalfWidth either side of the target
	// and HitboxHeight above its feet.
	HitboxHalfWidth int `json:"hitbox_half_width" toml:"hitbox_half_width"`
	HitboxHeight    int `json:"hitbox_height" toml:"hitbox_height"`
}

// ViewportConfig is the visible window in pixels
type ViewportConfig struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// SpawnPoint is a character's starting position and skin
type SpawnPoint struct {
	X    int    `json:"x" toml:"x"`
	Y    int    `json:"y" toml:"y"`
	Skin string `json:"skin" toml:"skin"`
}

// ControlsConfig defines how held keys turn into movement
type ControlsConfig struct {
	// WalkSpeed is the intent magnitude while a direction is held.
	WalkSpeed int `json:"walk_speed" toml:"walk_speed"`
	// WalkFrameTicks is how long each walk animation frame lasts.
	WalkFrameTicks int `json:"walk_frame_ticks" toml:"walk_frame_ticks"`
}

// DefaultConfig returns the classic two-player rules
func DefaultConfig() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpVelocity: -20,
			BodyHeight:   45,
		},
		Combat: CombatConfig{
			StartHealth:     100,
			Damage:          10,
			ProjectileSpeed: 5,
			MuzzleOffsetX:   20,
			MuzzleOffsetY:   25,
			HitboxHalfWidth: 25,
			HitboxHeight:    50,
		},
		Viewport: ViewportConfig{
			Width:  1024,
			Height: 768,
		},
		Spawns: [2]SpawnPoint{
			{X: 200, Y: 100, Skin: "red"},
			{X: 800, Y: 100, Skin: "blue"},
		},
		Controls: ControlsConfig{
			WalkSpeed:      5,
			WalkFrameTicks: 10,
		},
	}
}

// LoadConfig loads rules from a JSON or TOML file.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects rules the simulation cannot run with
func (c *Config) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %d", c.Physics.Gravity)
	}
	if c.Physics.JumpVelocity >= 0 {
		return fmt.Errorf("jump velocity must be negative, got %d", c.Physics.JumpVelocity)
	}
	if c.Physics.BodyHeight < 0 {
		return fmt.Errorf("body height must not be negative, got %d", c.Physics.BodyHeight)
	}
	if c.Combat.StartHealth <= 0 {
		return fmt.Errorf("start health must be positive, got %d", c.Combat.StartHealth)
	}
	if c.Combat.Damage <= 0 {
		return fmt.Errorf("damage must be positive, got %d", c.Combat.Damage)
	}
	if c.Combat.ProjectileSpeed <= 0 {
		return fmt.Errorf("projectile speed must be positive, got %d", c.Combat.ProjectileSpeed)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("invalid viewport: %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Controls.WalkSpeed <= 0 {
		return fmt.Errorf("walk speed must be positive, got %d", c.Controls.WalkSpeed)
	}
	if c.Controls.WalkFrameTicks <= 0 {
		return fmt.Errorf("walk frame ticks must be positive, got %d", c.Controls.WalkFrameTicks)
	}
	for i, sp := range c.Spawns {
		// The head probe sits BodyHeight above the feet and must start inside the map.
		if sp.X < 0 || sp.Y < c.Physics.BodyHeight {
			return fmt.Errorf("spawn %d at (%d, %d) is outside the playable area", i+1, sp.X, sp.Y)
		}
		if sp.Skin == "" {
			return fmt.Errorf("spawn %d has no skin", i+1)
		}
	}
	return nil
}
