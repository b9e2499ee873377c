// Package entity provides the two fighters and their projectiles.
// Characters move through a tilemap with stepped per-pixel collision and
// own every projectile they fire.
package entity

// ID identifies one of the two characters in a match
type ID int

const (
	Player1 ID = iota
	Player2
)

// Opponent returns the other character's ID
func (id ID) Opponent() ID {
	if id == Player1 {
		return Player2
	}
	return Player1
}

// Valid reports whether the ID names one of the two characters
func (id ID) Valid() bool {
	return id == Player1 || id == Player2
}

func (id ID) String() string {
	switch id {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction a character or projectile points at
type Facing int

const (
	Left Facing = iota
	Right
)

// Sign returns -1 for Left and 1 for Right
func (f Facing) Sign() int {
	if f == Right {
		return 1
	}
	return -1
}

func (f Facing) String() string {
	if f == Right {
		return "right"
	}
	return "left"
}

// Skin selects the character's look. The simulation never reads it.
type Skin string

const (
	SkinRed  Skin = "red"
	SkinBlue Skin = "blue"
)

// Pose is the visual state derived from movement each tick
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk1
	PoseWalk2
	PoseJump
)

func (p Pose) String() string {
	switch p {
	case PoseWalk1:
		return "walk1"
	case PoseWalk2:
		return "walk2"
	case PoseJump:
		return "jump"
	default:
		return "idle"
	}
}

// Roster resolves character IDs. Projectiles hold an ID, not a pointer,
// and look their target up through a Roster when checking for hits.
type Roster interface {
	Character(id ID) *Character
}

// Pair is the fixed set of two characters, indexed by ID
type Pair [2]*Character

// Character returns the character with the given ID, or nil
func (p *Pair) Character(id ID) *Character {
	if !id.Valid() {
		return nil
	}
	return p[id]
}
