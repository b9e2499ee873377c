package match

import "chosenoffset.com/marioshooter/internal/entity"

// ProjectileView is the drawable state of a projectile.
type ProjectileView struct {
	X, Y int
	Dir  entity.Facing
}

// CharacterView is the drawable state of a character.
type CharacterView struct {
	ID          entity.ID
	Skin        entity.Skin
	X, Y        int
	Facing      entity.Facing
	Pose        entity.Pose
	Health      int
	Alive       bool
	Projectiles []ProjectileView
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Tick       int
	State      State
	Winner     entity.ID
	HasWinner  bool
	Camera     Camera
	Characters [2]CharacterView
}

// Snapshot captures the current frame. The result shares nothing with the
// match and stays valid after further ticks.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      m.ticks,
		State:     m.state,
		Winner:    m.winner,
		HasWinner: m.hasWinner,
		Camera:    m.camera,
	}
	for i, c := range m.players {
		view := CharacterView{
			ID:     c.ID,
			Skin:   c.Skin,
			X:      c.X,
			Y:      c.Y,
			Facing: c.Facing,
			Pose:   c.Pose,
			Health: c.Health,
			Alive:  c.Alive,
		}
		for _, p := range c.Projectiles() {
			view.Projectiles = append(view.Projectiles, ProjectileView{X: p.X, Y: p.Y, Dir: p.Dir})
		}
		s.Characters[i] = view
	}
	return s
}
