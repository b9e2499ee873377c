// Package replay records the per-tick input stream of a match and plays it
// back. A match is deterministic, so the same recording on the same level and
// rules always reproduces the same final state.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"chosenoffset.com/marioshooter/internal/entity"
	"chosenoffset.com/marioshooter/internal/match"
	"chosenoffset.com/marioshooter/internal/simulation"
)

// FormatVersion is bumped whenever the encoded layout changes.
const FormatVersion = 2

// ErrVersion is returned when decoding a recording from another format version.
var ErrVersion = errors.New("unsupported replay version")

// Input is a discrete event sent to one character.
type Input struct {
	Player entity.ID   `msgpack:"p"`
	Event  match.Event `msgpack:"e"`
}

// Frame is everything that happened on one tick. Events are applied
// before the tick, in the order they were received.
type Frame struct {
	Restart bool    `msgpack:"r,omitempty"`
	Events  []Input `msgpack:"ev,omitempty"`
	Intents [2]int  `msgpack:"in"`
}

// Recording is a full input stream together with the rules it was
// played under.
type Recording struct {
	Version int                `msgpack:"v"`
	Map     string             `msgpack:"map"`
	Rules   *simulation.Config `msgpack:"rules"`
	Frames  []Frame            `msgpack:"frames"`
}

// Recorder buffers input one frame at a time.
type Recorder struct {
	rec     Recording
	pending Frame
}

// NewRecorder starts an empty recording for the named level.
// The rules are copied so later edits to them do not leak into the recording.
func NewRecorder(mapName string, rules *simulation.Config) *Recorder {
	rec := Recording{Version: FormatVersion, Map: mapName}
	if rules != nil {
		copied := *rules
		rec.Rules = &copied
	}
	return &Recorder{rec: rec}
}

// Event records a jump or shot for the current frame.
func (r *Recorder) Event(id entity.ID, ev match.Event) {
	r.pending.Events = append(r.pending.Events, Input{Player: id, Event: ev})
}

// Restart records a restart request for the current frame.
func (r *Recorder) Restart() {
	r.pending.Restart = true
}

// Tick closes the current frame with the movement intents of both players.
func (r *Recorder) Tick(intent1, intent2 int) {
	r.pending.Intents = [2]int{intent1, intent2}
	r.rec.Frames = append(r.rec.Frames, r.pending)
	r.pending = Frame{}
}

// Len returns the number of completed frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording returns the completed frames recorded so far.
func (r *Recorder) Recording() *Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	return &rec
}

// Play feeds every frame of rec into m and returns the number of frames
// applied. Ticks after the match has ended are no-ops, exactly as they were
// while recording.
func Play(m *match.Match, rec *Recording) int {
	for _, f := range rec.Frames {
		if f.Restart {
			m.Restart()
		}
		for _, in := range f.Events {
			m.HandleEvent(in.Player, in.Event)
		}
		m.Tick(f.Intents[0], f.Intents[1])
	}
	return len(rec.Frames)
}

// Encode writes rec to w.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads a recording from r.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	if rec.Rules != nil {
		if err := rec.Rules.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rules in replay: %w", err)
		}
	}
	return &rec, nil
}

// Save writes rec to a file.
func Save(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file %s: %w", path, err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from a file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
