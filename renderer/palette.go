package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dotcross/config"
	"github.com/pthm-cable/dotcross/scene"
)

// Palette holds the resolved colors for one run.
type Palette struct {
	Arrows       [2]rl.Color
	Background   rl.Color
	DotProduct   rl.Color
	CrossProduct rl.Color
	Delta        rl.Color
}

// NewPalette converts the configured colors.
func NewPalette(cfg *config.Config) Palette {
	return Palette{
		Arrows:       [2]rl.Color{Color(cfg.Arrows[0].Color), Color(cfg.Arrows[1].Color)},
		Background:   Color(cfg.Colors.Background),
		DotProduct:   Color(cfg.Colors.DotProduct),
		CrossProduct: Color(cfg.Colors.CrossProduct),
		Delta:        Color(cfg.Colors.Delta),
	}
}

// ForRole picks the color for a line of HUD text.
func (p Palette) ForRole(role scene.Role) rl.Color {
	switch role {
	case scene.RolePrimary:
		return p.Arrows[0]
	case scene.RoleSecondary:
		return p.Arrows[1]
	case scene.RoleDot:
		return p.DotProduct
	case scene.RoleCross:
		return p.CrossProduct
	default:
		return p.Delta
	}
}

// Color converts a config color.
func Color(c config.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// vec converts a screen point to raylib's float32 vector.
func vec(p r2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}
