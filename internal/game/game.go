package game

import (
	"log"

	"chosenoffset.com/marioshooter/internal/entity"
	"chosenoffset.com/marioshooter/internal/match"
	"chosenoffset.com/marioshooter/internal/render"
	"chosenoffset.com/marioshooter/internal/replay"
)

// Game drives a match from keyboard input and draws it.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Match        *match.Match
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Controls     [2]Controls

	// Recorder, when set, receives every event and tick fed to the match.
	Recorder *replay.Recorder

	announced bool // The end of the current match has been logged
}

// New creates a game sized to the match viewport.
func New(m *match.Match, r render.Renderer, input render.InputManager) *Game {
	vp := m.Rules().Viewport
	return &Game{
		ScreenWidth:  vp.Width,
		ScreenHeight: vp.Height,
		Match:        m,
		Renderer:     r,
		InputMgr:     input,
		Controls:     DefaultControls,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminated
	}

	if g.Match.Ended() && g.InputMgr.IsKeyJustPressed(render.KeyC) {
		if g.Match.Restart() {
			g.announced = false
			if g.Recorder != nil {
				g.Recorder.Restart()
			}
			log.Println("Match restarted")
		}
	}

	for i, ctl := range g.Controls {
		id := entity.ID(i)
		if g.InputMgr.IsKeyJustPressed(ctl.Jump) {
			g.sendEvent(id, match.EventJump)
		}
		if g.InputMgr.IsKeyJustPressed(ctl.Shoot) {
			g.sendEvent(id, match.EventShoot)
		}
	}

	intent1, intent2 := g.intent(entity.Player1), g.intent(entity.Player2)
	g.Match.Tick(intent1, intent2)
	if g.Recorder != nil {
		g.Recorder.Tick(intent1, intent2)
	}

	if g.Match.Ended() && !g.announced {
		g.announced = true
		log.Printf("Match over after %d ticks: %s", g.Match.TickCount(), g.resultText())
	}

	return nil
}

func (g *Game) sendEvent(id entity.ID, ev match.Event) {
	g.Match.HandleEvent(id, ev)
	if g.Recorder != nil {
		g.Recorder.Event(id, ev)
	}
}

// intent turns held keys into a horizontal movement request.
// Left wins when both directions are held.
func (g *Game) intent(id entity.ID) int {
	ctl := g.Controls[id]
	speed := g.Match.Rules().Controls.WalkSpeed
	if g.InputMgr.IsKeyPressed(ctl.Left) {
		return -speed
	} else if g.InputMgr.IsKeyPressed(ctl.Right) {
		return speed
	}
	return 0
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
