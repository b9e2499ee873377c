package entity

import (
	"chosenoffset.com/marioshooter/internal/simulation"
	"chosenoffset.com/marioshooter/internal/world/tilemap"
)

// Character is one of the two fighters.
// X, Y is the point between the feet; y grows downward.
type Character struct {
	ID   ID
	Skin Skin

	// Position in pixels
	X, Y int

	Facing Facing
	VY     int // Vertical velocity in pixels per tick, negative is up

	Health int // May go below zero internally
	Alive  bool

	Pose Pose

	walkTicks   int // Ticks spent walking, drives the walk frames
	projectiles []*Projectile
	level       *tilemap.TileMap
	rules       *simulation.Config
}

// NewCharacter creates a character standing at (x, y) with full health
func NewCharacter(id ID, skin Skin, level *tilemap.TileMap, x, y int, rules *simulation.Config) *Character {
	return &Character{
		ID:     id,
		Skin:   skin,
		X:      x,
		Y:      y,
		Facing: Left,
		Health: rules.Combat.StartHealth,
		Alive:  true,
		Pose:   PoseIdle,
		level:  level,
		rules:  rules,
	}
}

// WouldFit reports whether the character could stand at its position
// offset by (dx, dy). Both the feet and the head probe must be clear.
func (c *Character) WouldFit(dx, dy int) bool {
	x, y := c.X+dx, c.Y+dy
	return !c.level.IsSolid(x, y) && !c.level.IsSolid(x, y-c.rules.Physics.BodyHeight)
}

// UpdateMotion applies one tick of horizontal intent and gravity.
// Movement is resolved one pixel at a time; a blocked horizontal step is
// skipped, a blocked vertical step zeroes VY and ends vertical movement.
func (c *Character) UpdateMotion(moveX int) {
	c.updatePose(moveX)

	if moveX > 0 {
		c.Facing = Right
	} else if moveX < 0 {
		c.Facing = Left
	}
	step := c.Facing.Sign()
	for i := 0; i < abs(moveX); i++ {
		if c.WouldFit(step, 0) {
			c.X += step
		}
	}

	c.VY += c.rules.Physics.Gravity
	if c.VY > 0 {
		for i := c.VY; i > 0; i-- {
			if !c.WouldFit(0, 1) {
				c.VY = 0
				break
			}
			c.Y++
		}
	} else if c.VY < 0 {
		for i := -c.VY; i > 0; i-- {
			if !c.WouldFit(0, -1) {
				c.VY = 0
				break
			}
			c.Y--
		}
	}
}

// updatePose picks the pose from the state at the start of the tick
func (c *Character) updatePose(moveX int) {
	if moveX == 0 {
		c.walkTicks = 0
		c.Pose = PoseIdle
	} else {
		if (c.walkTicks/c.rules.Controls.WalkFrameTicks)%2 == 0 {
			c.Pose = PoseWalk1
		} else {
			c.Pose = PoseWalk2
		}
		c.walkTicks++
	}
	if c.VY < 0 {
		c.Pose = PoseJump
	}
}

// OnGround reports whether the tile right below the feet is solid
func (c *Character) OnGround() bool {
	return c.level.IsSolid(c.X, c.Y+1)
}

// TryJump launches the character upward if it is standing on something.
func (c *Character) TryJump() {
	if !c.Alive || !c.OnGround() {
		return
	}
	c.VY = c.rules.Physics.JumpVelocity
}

// Shoot fires a projectile in the facing direction at the target.
// There is no cooldown and no limit on live projectiles.
func (c *Character) Shoot(target ID) {
	if !c.Alive {
		return
	}
	c.projectiles = append(c.projectiles, newProjectile(c, target))
}

// AdvanceProjectiles resolves hits for every owned projectile, drops the
// ones that hit a wall or their target, then moves the rest.
// Hits are tested at the position the projectile had before this tick's move.
func (c *Character) AdvanceProjectiles(roster Roster) {
	kept := c.projectiles[:0]
	for _, p := range c.projectiles {
		var target *Character
		if roster != nil {
			target = roster.Character(p.Target)
		}
		hit := p.HitTarget(target)
		if hit {
			target.ApplyDamage()
		}
		if hit || p.HitWall() {
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(c.projectiles); i++ {
		c.projectiles[i] = nil
	}
	c.projectiles = kept

	for _, p := range c.projectiles {
		p.Advance()
	}
}

// ApplyDamage takes one hit. Health drops by the configured damage while it
// is positive; once it is zero or below the character is dead.
func (c *Character) ApplyDamage() {
	if c.Health > 0 {
		c.Health -= c.rules.Combat.Damage
	}
	if c.Health <= 0 {
		c.Alive = false
	}
}

// Projectiles returns a copy of the live projectiles in firing order
func (c *Character) Projectiles() []Projectile {
	out := make([]Projectile, len(c.projectiles))
	for i, p := range c.projectiles {
		out[i] = *p
	}
	return out
}

// ProjectileCount returns the number of live projectiles
func (c *Character) ProjectileCount() int {
	return len(c.projectiles)
}

// ClearProjectiles drops every live projectile
func (c *Character) ClearProjectiles() {
	c.projectiles = nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
