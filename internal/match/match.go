// Package match runs a two-player duel one tick at a time.
// A Match owns the level, both characters and the camera, and tracks
// whether the duel is still running or has been decided.
package match

import (
	"chosenoffset.com/marioshooter/internal/entity"
	"chosenoffset.com/marioshooter/internal/simulation"
	"chosenoffset.com/marioshooter/internal/world/tilemap"
)

// State is the match phase
type State int

const (
	Running State = iota
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// Event is a discrete per-character action
type Event int

const (
	EventJump Event = iota + 1
	EventShoot
)

func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Camera is the top-left corner of the viewport in world pixels.
type Camera struct {
	X, Y int
}

// Match holds all simulation state for one duel.
type Match struct {
	level   *tilemap.TileMap
	rules   *simulation.Config
	players entity.Pair
	camera  Camera

	state     State
	winner    entity.ID
	hasWinner bool
	ticks     int
}

// New creates a running match with both characters at their spawn points.
func New(level *tilemap.TileMap, rules *simulation.Config) *Match {
	m := &Match{
		level: level,
		rules: rules,
	}
	m.spawn()
	return m
}

func (m *Match) spawn() {
	for i := range m.players {
		id := entity.ID(i)
		sp := m.rules.Spawns[i]
		m.players[i] = entity.NewCharacter(id, entity.Skin(sp.Skin), m.level, sp.X, sp.Y, m.rules)
	}
	m.state = Running
	m.hasWinner = false
	m.winner = 0
	m.ticks = 0
	m.updateCamera()
}

// Tick advances the simulation by one step.
// Nothing happens once the match has ended.
func (m *Match) Tick(intent1, intent2 int) {
	if m.state == Ended {
		return
	}
	// A death is observed before anything else runs this tick.
	if m.checkEnded() {
		return
	}

	m.ticks++
	intents := [2]int{intent1, intent2}
	for i, c := range m.players {
		c.UpdateMotion(intents[i])
		c.AdvanceProjectiles(&m.players)
	}

	m.updateCamera()
	m.checkEnded()
}

// HandleEvent applies a jump or shot for one character.
// Events for unknown characters, unknown events and events after the match
// has ended are ignored.
func (m *Match) HandleEvent(id entity.ID, ev Event) {
	if m.state == Ended {
		return
	}
	c := m.players.Character(id)
	if c == nil {
		return
	}

	switch ev {
	case EventJump:
		c.TryJump()
	case EventShoot:
		c.Shoot(id.Opponent())
	}
}

// Restart rebuilds both characters at their spawn points and resumes play.
// It only works once the match has ended and reports whether it restarted.
func (m *Match) Restart() bool {
	if m.state != Ended {
		return false
	}
	m.spawn()
	return true
}

// checkEnded moves to Ended when either character is dead
func (m *Match) checkEnded() bool {
	p1, p2 := m.players[entity.Player1], m.players[entity.Player2]
	if p1.Alive && p2.Alive {
		return false
	}

	m.state = Ended
	switch {
	case !p1.Alive && !p2.Alive:
		m.hasWinner = false
	case !p1.Alive:
		m.winner, m.hasWinner = entity.Player2, true
	default:
		m.winner, m.hasWinner = entity.Player1, true
	}
	return true
}

// updateCamera follows the midpoint of both characters horizontally and
// player one vertically, clamped to the level.
func (m *Match) updateCamera() {
	vw, vh := m.rules.Viewport.Width, m.rules.Viewport.Height
	p1, p2 := m.players[entity.Player1], m.players[entity.Player2]

	midX := (p1.X + p2.X) / 2
	m.camera.X = min(max(midX-vw/2, 0), m.level.WidthPx()-vw)
	m.camera.Y = min(max(p1.Y-vh/2, 0), m.level.HeightPx()-vh)
}

// Character returns the character with the given ID, or nil.
func (m *Match) Character(id entity.ID) *entity.Character {
	return m.players.Character(id)
}

// State returns the current match phase.
func (m *Match) State() State { return m.state }

// Ended reports whether the match has been decided.
func (m *Match) Ended() bool { return m.state == Ended }

// Winner returns the winning character. ok is false while the match is
// running and when both characters died on the same tick.
func (m *Match) Winner() (id entity.ID, ok bool) {
	return m.winner, m.hasWinner
}

// Camera returns the viewport origin.
func (m *Match) Camera() Camera { return m.camera }

// Level returns the shared tilemap.
func (m *Match) Level() *tilemap.TileMap { return m.level }

// Rules returns the rules the match was created with.
func (m *Match) Rules() *simulation.Config { return m.rules }

// TickCount returns the number of simulated ticks since the last (re)start.
func (m *Match) TickCount() int { return m.ticks }
