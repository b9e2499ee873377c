package entity

import (
	"chosenoffset.com/marioshooter/internal/world/tilemap"
)

// Projectile is a fireball travelling horizontally at a fixed speed.
// Target is looked up by ID when hits are checked; the projectile never
// owns the character it is aimed at.
type Projectile struct {
	X, Y   int
	Dir    Facing
	Target ID

	speed     int
	halfWidth int
	height    int
	level     *tilemap.TileMap
}

// newProjectile spawns in front of the firer at chest height
func newProjectile(firer *Character, target ID) *Projectile {
	combat := firer.rules.Combat
	return &Projectile{
		X:         firer.X + firer.Facing.Sign()*combat.MuzzleOffsetX,
		Y:         firer.Y - combat.MuzzleOffsetY,
		Dir:       firer.Facing,
		Target:    target,
		speed:     combat.ProjectileSpeed,
		halfWidth: combat.HitboxHalfWidth,
		height:    combat.HitboxHeight,
		level:     firer.level,
	}
}

// Advance moves the projectile one tick along its direction
func (p *Projectile) Advance() {
	p.X += p.Dir.Sign() * p.speed
}

// HitWall reports whether the projectile is inside a solid tile
func (p *Projectile) HitWall() bool {
	return p.level.IsSolid(p.X, p.Y)
}

// HitTarget reports whether the projectile is inside the target's hit-box,
// the region around the target's upper body.
func (p *Projectile) HitTarget(target *Character) bool {
	if target == nil {
		return false
	}
	return p.X > target.X-p.halfWidth && p.X < target.X+p.halfWidth &&
		p.Y > target.Y-p.height && p.Y < target.Y
}
