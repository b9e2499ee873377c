package entity

import (
	"testing"

	"chosenoffset.com/marioshooter/internal/simulation"
)

func TestShootSpawnsInFrontOfFirer(t *testing.T) {
	level := newArena(t)

	c := newTestCharacter(t, level, 100, 149)
	c.Facing = Right
	c.Shoot(Player2)
	c.Facing = Left
	c.Shoot(Player2)

	shots := c.Projectiles()
	if len(shots) != 2 {
		t.Fatalf("Expected 2 projectiles, got %d", len(shots))
	}
	if shots[0].X != 120 || shots[0].Y != 124 || shots[0].Dir != Right {
		t.Errorf("Expected right shot at (120, 124), got (%d, %d) %s", shots[0].X, shots[0].Y, shots[0].Dir)
	}
	if shots[1].X != 80 || shots[1].Y != 124 || shots[1].Dir != Left {
		t.Errorf("Expected left shot at (80, 124), got (%d, %d) %s", shots[1].X, shots[1].Y, shots[1].Dir)
	}
	if shots[0].Target != Player2 {
		t.Errorf("Expected target %s, got %s", Player2, shots[0].Target)
	}
}

func TestProjectileAdvancesFivePixelsPerTick(t *testing.T) {
	c := newTestCharacter(t, newArena(t), 200, 149)
	c.Shoot(Player2) // facing left, spawns at x=180

	for i := 1; i <= 5; i++ {
		c.AdvanceProjectiles(&Pair{c, nil})
		shots := c.Projectiles()
		if len(shots) != 1 {
			t.Fatalf("Expected projectile alive on tick %d, got %d", i, len(shots))
		}
		if want := 180 - 5*i; shots[0].X != want || shots[0].Y != 124 {
			t.Fatalf("Expected (%d, 124) on tick %d, got (%d, %d)", want, i, shots[0].X, shots[0].Y)
		}
	}
}

func TestProjectileRemovedOnWallTick(t *testing.T) {
	c := newTestCharacter(t, newArena(t), 300, 149)
	c.Facing = Right
	c.Shoot(Player2) // spawns at x=320, wall starts at x=400

	roster := &Pair{c, nil}
	for i := 0; i < 16; i++ {
		c.AdvanceProjectiles(roster)
	}
	shots := c.Projectiles()
	if len(shots) != 1 || shots[0].X != 400 {
		t.Fatalf("Expected one projectile at the wall face x=400, got %+v", shots)
	}

	c.AdvanceProjectiles(roster)
	if c.ProjectileCount() != 0 {
		t.Errorf("Expected projectile removed the tick it is inside the wall, got %d", c.ProjectileCount())
	}
}

func TestProjectileSpawnedInsideWallIsRemovedImmediately(t *testing.T) {
	c := newTestCharacter(t, newArena(t), 390, 149)
	c.Facing = Right
	c.Shoot(Player2) // spawns at x=410, inside the wall

	c.AdvanceProjectiles(&Pair{c, nil})

	if c.ProjectileCount() != 0 {
		t.Errorf("Expected projectile removed on the first tick, got %d", c.ProjectileCount())
	}
}

func TestProjectileHitsTarget(t *testing.T) {
	level := newArena(t)
	rules := simulation.DefaultConfig()
	shooter := NewCharacter(Player1, SkinRed, level, 100, 149, rules)
	target := NewCharacter(Player2, SkinBlue, level, 150, 149, rules)
	roster := &Pair{shooter, target}

	shooter.Facing = Right
	shooter.Shoot(Player2) // spawns at x=120, hit-box is (125, 175)

	shooter.AdvanceProjectiles(roster) // checked at 120, moves to 125
	shooter.AdvanceProjectiles(roster) // checked at 125 (edge excluded), moves to 130
	if target.Health != 100 {
		t.Fatalf("Expected no hit yet, got health %d", target.Health)
	}
	if shooter.ProjectileCount() != 1 {
		t.Fatalf("Expected projectile still in flight, got %d", shooter.ProjectileCount())
	}

	shooter.AdvanceProjectiles(roster) // checked at 130: hit
	if target.Health != 90 {
		t.Errorf("Expected target health 90 after the hit, got %d", target.Health)
	}
	if shooter.ProjectileCount() != 0 {
		t.Errorf("Expected projectile removed on the hit tick, got %d", shooter.ProjectileCount())
	}

	shooter.AdvanceProjectiles(roster)
	if target.Health != 90 {
		t.Errorf("Expected a single hit, got health %d", target.Health)
	}
}

func TestProjectileOnDeadTargetMarksDead(t *testing.T) {
	level := newArena(t)
	rules := simulation.DefaultConfig()
	shooter := NewCharacter(Player1, SkinRed, level, 100, 149, rules)
	target := NewCharacter(Player2, SkinBlue, level, 130, 149, rules)
	target.Health = 0

	shooter.Facing = Right
	shooter.Shoot(Player2) // spawns at x=120, inside (105, 155)
	shooter.AdvanceProjectiles(&Pair{shooter, target})

	if target.Alive {
		t.Error("Expected target marked dead")
	}
	if target.Health != 0 {
		t.Errorf("Expected health to stay 0, got %d", target.Health)
	}
}

func TestHitTargetBox(t *testing.T) {
	level := newArena(t)
	target := NewCharacter(Player2, SkinBlue, level, 200, 149, simulation.DefaultConfig())
	p := &Projectile{halfWidth: 25, height: 50, level: level}

	cases := []struct {
		x, y int
		want bool
	}{
		{200, 124, true},
		{176, 100, true},
		{224, 148, true},
		{175, 124, false}, // left edge
		{225, 124, false}, // right edge
		{200, 99, false},  // above the head
		{200, 149, false}, // at the feet
	}
	for _, c := range cases {
		p.X, p.Y = c.x, c.y
		if got := p.HitTarget(target); got != c.want {
			t.Errorf("HitTarget at (%d, %d): expected %v, got %v", c.x, c.y, c.want, got)
		}
	}

	if p.HitTarget(nil) {
		t.Error("Expected no hit on a missing target")
	}
}

func TestUnlimitedProjectiles(t *testing.T) {
	c := newTestCharacter(t, newArena(t), 300, 149)
	for i := 0; i < 50; i++ {
		c.Shoot(Player2)
	}
	if c.ProjectileCount() != 50 {
		t.Errorf("Expected 50 live projectiles, got %d", c.ProjectileCount())
	}

	c.ClearProjectiles()
	if c.ProjectileCount() != 0 {
		t.Errorf("Expected projectiles cleared, got %d", c.ProjectileCount())
	}
}

func TestPairLookup(t *testing.T) {
	level := newArena(t)
	rules := simulation.DefaultConfig()
	a := NewCharacter(Player1, SkinRed, level, 100, 149, rules)
	b := NewCharacter(Player2, SkinBlue, level, 300, 149, rules)
	pair := &Pair{a, b}

	if pair.Character(Player1) != a || pair.Character(Player2) != b {
		t.Error("Expected lookup by ID to return the matching character")
	}
	if pair.Character(ID(7)) != nil {
		t.Error("Expected nil for an unknown ID")
	}
	if Player1.Opponent() != Player2 || Player2.Opponent() != Player1 {
		t.Error("Expected opponents to be each other")
	}
}
