package game

import (
	"image/color"

	"chosenoffset.com/marioshooter/internal/entity"
	"chosenoffset.com/marioshooter/internal/render"
)

// Controls maps one player's actions to keys.
type Controls struct {
	Left, Right render.Key // Held
	Jump, Shoot render.Key // Edge-triggered
}

// DefaultControls are the classic shared-keyboard bindings:
// player one on WASD + Space, player two on the arrows + Enter.
var DefaultControls = [2]Controls{
	{Left: render.KeyA, Right: render.KeyD, Jump: render.KeyW, Shoot: render.KeySpace},
	{Left: render.KeyLeft, Right: render.KeyRight, Jump: render.KeyUp, Shoot: render.KeyEnter},
}

// Colors used when drawing the world.
var (
	skyColor      = color.RGBA{92, 148, 252, 255}
	solidAColor   = color.RGBA{200, 76, 12, 255}
	solidBColor   = color.RGBA{136, 112, 0, 255}
	fireballColor = color.RGBA{252, 152, 56, 255}
	fireballCore  = color.RGBA{252, 252, 160, 255}
	messageColor  = color.RGBA{252, 224, 56, 255}
	fallbackSkin  = color.RGBA{180, 180, 180, 255}
	overalls      = color.RGBA{40, 40, 120, 255}
	skinTone      = color.RGBA{252, 188, 148, 255}
	skinColors    = map[entity.Skin]color.RGBA{
		entity.SkinRed:  {216, 40, 0, 255},
		entity.SkinBlue: {0, 88, 248, 255},
	}
)

// skinColor returns the base colour for a skin.
func skinColor(s entity.Skin) color.RGBA {
	if c, ok := skinColors[s]; ok {
		return c
	}
	return fallbackSkin
}
