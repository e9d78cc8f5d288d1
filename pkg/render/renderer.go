package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// turretTurnRate — доля оставшегося угла, на которую ствол поворачивается за кадр.
const turretTurnRate = 0.3

// Renderer рисует поле, сущности и HUD примитивами ebiten.
type Renderer struct {
	screenWidth  int
	screenHeight int
	palette      *Palette
	fontFace     font.Face
	mapImage     *ebiten.Image // предрендеренный фон: сетка и путь
	turretAngles map[types.EntityID]float32
}

func NewRenderer(waypoints []component.Position, screenWidth, screenHeight int, palette *Palette) *Renderer {
	r := &Renderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		palette:      palette,
		fontFace:     basicfont.Face7x13,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
		turretAngles: make(map[types.EntityID]float32),
	}
	r.RenderMapImage(waypoints)
	return r
}

func (r *Renderer) Face() font.Face { return r.fontFace }

// RenderMapImage рисует статический фон один раз.
func (r *Renderer) RenderMapImage(waypoints []component.Position) {
	r.mapImage.Fill(r.palette.Background)

	for x := 0; x <= r.screenWidth; x += config.GridSize {
		vector.StrokeLine(r.mapImage, float32(x), 0, float32(x), float32(r.screenHeight), 1, r.palette.Grid, false)
	}
	for y := 0; y <= r.screenHeight; y += config.GridSize {
		vector.StrokeLine(r.mapImage, 0, float32(y), float32(r.screenWidth), float32(y), 1, r.palette.Grid, false)
	}

	for i := 1; i < len(waypoints); i++ {
		a, b := waypoints[i-1], waypoints[i]
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.palette.PathWidth, r.palette.Path, true)
	}
	// скругляем углы пути
	for _, p := range waypoints {
		vector.DrawFilledCircle(r.mapImage, float32(p.X), float32(p.Y), r.palette.PathWidth/2, r.palette.Path, true)
	}
}

// Draw рисует фон и все сущности. selected — башня, для которой показывается радиус.
func (r *Renderer) Draw(screen *ebiten.Image, ecs *entity.ECS, selected types.EntityID) {
	screen.DrawImage(r.mapImage, nil)

	r.drawTowers(screen, ecs, selected)
	r.drawEnemies(screen, ecs)
	r.drawProjectiles(screen, ecs)
}

func (r *Renderer) drawTowers(screen *ebiten.Image, ecs *entity.ECS, selected types.EntityID) {
	for id := range r.turretAngles {
		if _, ok := ecs.Turrets[id]; !ok {
			delete(r.turretAngles, id)
		}
	}

	for _, id := range ecs.TowerIDs() {
		pos := ecs.Positions[id]
		rend, ok := ecs.Renderables[id]
		if !ok {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)

		if combat, ok := ecs.Combats[id]; ok && id == selected {
			vector.DrawFilledCircle(screen, x, y, float32(combat.Range), r.palette.Range, true)
		}

		vector.DrawFilledCircle(screen, x, y, rend.Radius, rend.Color, true)
		if rend.HasStroke {
			stroke := DarkenColor(rend.Color)
			if id == selected {
				stroke = r.palette.Text
			}
			vector.StrokeCircle(screen, x, y, rend.Radius, 2, stroke, true)
		}

		if turret, ok := ecs.Turrets[id]; ok {
			angle := utils.LerpAngle(r.turretAngles[id], turret.Angle, turretTurnRate)
			r.turretAngles[id] = angle
			length := rend.Radius * 1.3
			ex := x + length*float32(math.Cos(float64(angle)))
			ey := y + length*float32(math.Sin(float64(angle)))
			vector.StrokeLine(screen, x, y, ex, ey, 4, DarkenColor(rend.Color), true)
		}

		if tower, ok := ecs.Towers[id]; ok && tower.Level > 1 {
			text.Draw(screen, strconv.Itoa(tower.Level), r.fontFace, int(x)-3, int(y)+4, r.palette.Text)
		}
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.EnemyIDs() {
		pos, hasPos := ecs.Positions[id]
		rend, hasRend := ecs.Renderables[id]
		if !hasPos || !hasRend {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)

		var fill color.Color = rend.Color
		if _, flashing := ecs.DamageFlashes[id]; flashing {
			fill = r.palette.Flash
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius, fill, true)

		if health, ok := ecs.Healths[id]; ok && health.Max > 0 {
			fraction := float64(health.Value) / float64(health.Max)
			width := rend.Radius * 2
			top := y - rend.Radius - 8
			vector.DrawFilledRect(screen, x-rend.Radius, top, width, 4, DarkenColor(r.palette.HealthBar), false)
			vector.DrawFilledRect(screen, x-rend.Radius, top, width*float32(max(fraction, 0)), 4, HealthColor(fraction), false)
		}
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.ProjectileIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.ProjectileRadius, r.palette.Projectile, true)
	}
}

// DrawHUD выводит строки текста в левом верхнем углу.
func (r *Renderer) DrawHUD(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		text.Draw(screen, line, r.fontFace, config.HUDMarginX, config.HUDLineHeight*(i+1), r.palette.Text)
	}
}

// DrawOverlay затемняет экран и пишет сообщение по центру.
func (r *Renderer) DrawOverlay(screen *ebiten.Image, message string) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), r.palette.Overlay, false)
	bounds := text.BoundString(r.fontFace, message)
	text.Draw(screen, message, r.fontFace, (r.screenWidth-bounds.Dx())/2, r.screenHeight/2, color.White)
}
