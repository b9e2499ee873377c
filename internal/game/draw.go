package game

import (
	"fmt"
	"strings"

	"chosenoffset.com/marioshooter/internal/entity"
	"chosenoffset.com/marioshooter/internal/match"
	"chosenoffset.com/marioshooter/internal/render"
	"chosenoffset.com/marioshooter/internal/world/tilemap"
)

// Character sprite size in pixels; the sprite's bottom edge sits on the feet.
const (
	spriteWidth  = 30
	spriteHeight = 49
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	snap := g.Match.Snapshot()

	screen.Fill(skyColor)
	g.drawTiles(screen, snap.Camera)
	for _, c := range snap.Characters {
		if c.Alive {
			g.drawCharacter(screen, snap.Camera, c)
		}
		g.drawProjectiles(screen, snap.Camera, c.Projectiles)
	}
	g.drawHUD(screen, snap)
}

// drawTiles draws only the tiles inside the viewport.
func (g *Game) drawTiles(screen render.Image, cam match.Camera) {
	level := g.Match.Level()
	size := tilemap.TileSize

	firstCol, firstRow := max(cam.X/size, 0), max(cam.Y/size, 0)
	lastCol := min((cam.X+g.ScreenWidth)/size, level.Width()-1)
	lastRow := min((cam.Y+g.ScreenHeight)/size, level.Height()-1)

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			tile := level.TileAt(col, row)
			if !tile.Solid() {
				continue
			}
			clr := solidBColor
			if tile == tilemap.SolidA {
				clr = solidAColor
			}
			x := float32(col*size - cam.X)
			y := float32(row*size - cam.Y)
			g.Renderer.FillRect(screen, x, y, float32(size), float32(size), clr)
		}
	}
}

func (g *Game) drawCharacter(screen render.Image, cam match.Camera, c match.CharacterView) {
	left := float32(c.X - cam.X - spriteWidth/2)
	top := float32(c.Y - cam.Y - spriteHeight + 1)
	body := skinColor(c.Skin)

	// Cap and face
	g.Renderer.FillRect(screen, left, top, spriteWidth, 10, body)
	g.Renderer.FillRect(screen, left+5, top+10, spriteWidth-10, 12, skinTone)
	eyeX := left + spriteWidth - 11
	if c.Facing == entity.Left {
		eyeX = left + 7
	}
	g.Renderer.FillRect(screen, eyeX, top+13, 4, 4, overalls)

	// Shirt and overalls
	g.Renderer.FillRect(screen, left, top+22, spriteWidth, 12, body)
	g.Renderer.FillRect(screen, left+4, top+30, spriteWidth-8, 8, overalls)

	// Legs by pose
	legTop := top + 38
	switch c.Pose {
	case entity.PoseWalk1:
		g.Renderer.FillRect(screen, left, legTop, 10, 11, overalls)
		g.Renderer.FillRect(screen, left+spriteWidth-8, legTop+3, 8, 8, overalls)
	case entity.PoseWalk2:
		g.Renderer.FillRect(screen, left+2, legTop+3, 8, 8, overalls)
		g.Renderer.FillRect(screen, left+spriteWidth-10, legTop, 10, 11, overalls)
	case entity.PoseJump:
		g.Renderer.FillRect(screen, left-4, legTop-2, 10, 8, overalls)
		g.Renderer.FillRect(screen, left+spriteWidth-6, legTop+2, 10, 8, overalls)
	default:
		g.Renderer.FillRect(screen, left+4, legTop, 9, 11, overalls)
		g.Renderer.FillRect(screen, left+spriteWidth-13, legTop, 9, 11, overalls)
	}
}

func (g *Game) drawProjectiles(screen render.Image, cam match.Camera, shots []match.ProjectileView) {
	for _, p := range shots {
		x, y := float32(p.X-cam.X), float32(p.Y-cam.Y)
		g.Renderer.FillCircle(screen, x, y, 8, fireballColor)
		g.Renderer.FillCircle(screen, x, y, 4, fireballCore)
	}
}

func (g *Game) drawHUD(screen render.Image, snap match.Snapshot) {
	p1, p2 := snap.Characters[entity.Player1], snap.Characters[entity.Player2]
	g.Renderer.DrawText(screen, fmt.Sprintf("Health: %d", p1.Health), 10, 10, skinColor(p1.Skin), 1.5)

	right := fmt.Sprintf("Health: %d", p2.Health)
	w, _ := g.Renderer.MeasureText(right, 1.5)
	g.Renderer.DrawText(screen, right, g.ScreenWidth-w-10, 10, skinColor(p2.Skin), 1.5)

	if snap.State != match.Ended {
		return
	}

	banner := g.resultText()
	clr := messageColor
	if snap.HasWinner {
		clr = skinColor(snap.Characters[snap.Winner].Skin)
	}
	bw, bh := g.Renderer.MeasureText(banner, 4)
	g.Renderer.DrawText(screen, banner, (g.ScreenWidth-bw)/2, (g.ScreenHeight-bh)/2, clr, 4)

	hint := "Press 'C' to play again"
	hw, _ := g.Renderer.MeasureText(hint, 1.5)
	g.Renderer.DrawText(screen, hint, (g.ScreenWidth-hw)/2, 10, messageColor, 1.5)
}

// resultText describes how the match ended.
func (g *Game) resultText() string {
	winner, ok := g.Match.Winner()
	if !ok {
		return "Draw"
	}
	return displayName(g.Match.Character(winner).Skin) + " Mario Wins"
}

func displayName(s entity.Skin) string {
	name := string(s)
	if name == "" {
		return "Mystery"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
