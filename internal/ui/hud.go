//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"particle-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view: one
// row per adjustable parameter followed by the relation grid.
type HUD struct {
	sim   core.Sim
	width int

	controls []controlRow
	params   core.ParameterProvider
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	editor   core.RelationEditor

	rows      [][]float64
	gridTop   int
	cellSize  int
	offsetX   int
	panelH    int
	panel     *ebiten.Image
	lastError string
}

type controlRow struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width. Any of
// the optional setter interfaces the sim does not implement are left inert.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlRow{control: ctrl})
		}
	}
	h.params, _ = sim.(core.ParameterProvider)
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	h.editor, _ = sim.(core.RelationEditor)
	h.layout()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes cached values and applies clicks within the panel, which
// starts at offsetX on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	h.refresh()

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	direction := 1
	if right {
		direction = -1
	}
	if left && h.clickControl(px, my) {
		h.refresh()
		return
	}
	if h.clickRelation(px, my, direction) {
		h.refresh()
	}
}

func (h *HUD) refresh() {
	if h.params != nil {
		snap := h.params.Parameters()
		for i := range h.controls {
			row := &h.controls[i]
			p, ok := snap.Lookup(row.control.Key)
			if !ok {
				row.hasValue = false
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			row.value, row.hasValue = v, err == nil
		}
	}
	if h.editor != nil {
		h.rows = h.editor.RelationRows()
	}
}

func (h *HUD) clickControl(px, py int) bool {
	for i := range h.controls {
		row := &h.controls[i]
		if !row.hasValue {
			continue
		}
		direction := 0
		switch {
		case pointInRect(px, py, row.minusRect):
			direction = -1
		case pointInRect(px, py, row.plusRect):
			direction = 1
		default:
			continue
		}
		target, changed := stepTarget(row.control, row.value, direction)
		if !changed {
			return true
		}
		accepted := false
		switch row.control.Type {
		case core.ParamTypeInt:
			accepted = h.ints != nil && h.ints.SetIntParameter(row.control.Key, int(target))
		case core.ParamTypeFloat:
			accepted = h.floats != nil && h.floats.SetFloatParameter(row.control.Key, target)
		}
		h.lastError = ""
		if !accepted {
			h.lastError = row.control.Label + " rejected"
		}
		return true
	}
	return false
}

func (h *HUD) clickRelation(px, py, direction int) bool {
	if h.editor == nil || h.cellSize <= 0 {
		return false
	}
	n := len(h.rows)
	col := (px - panelPadding) / h.cellSize
	row := (py - h.gridTop) / h.cellSize
	if px < panelPadding || py < h.gridTop || row >= n || col >= n {
		return false
	}
	next := relationStep(h.rows[row][col], direction)
	if err := h.editor.SetRelation(row, col, next); err != nil {
		h.lastError = err.Error()
	}
	return true
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panelH != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.panelH = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Particle Life", face, panelPadding, panelPadding+headerBaseline, textColor)
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	h.drawRelations()
	if h.lastError != "" {
		text.Draw(h.panel, h.lastError, face, panelPadding, height-panelPadding, errorColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(row *controlRow) {
	face := basicfont.Face7x13
	baseline := row.top + labelBaseline
	text.Draw(h.panel, row.control.Label, face, panelPadding, baseline, textColor)

	value := "--"
	if row.hasValue {
		value = formatValue(row.control, row.value)
	}
	width := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, row.minusRect.Min.X-buttonGap-width, baseline, textColor)

	h.drawButton(row.minusRect, "-")
	h.drawButton(row.plusRect, "+")
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), buttonColor, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, textColor)
}

func (h *HUD) drawRelations() {
	if h.editor == nil {
		return
	}
	face := basicfont.Face7x13
	text.Draw(h.panel, "Relations (L +, R -)", face, panelPadding, h.gridTop-6, textColor)
	n := len(h.rows)
	if n == 0 {
		return
	}
	h.cellSize = (h.width - 2*panelPadding) / n
	if h.cellSize > maxCellSize {
		h.cellSize = maxCellSize
	}
	for i, row := range h.rows {
		for j, v := range row {
			x := float32(panelPadding + j*h.cellSize)
			y := float32(h.gridTop + i*h.cellSize)
			s := float32(h.cellSize - 1)
			vector.DrawFilledRect(h.panel, x, y, s, s, relationColor(v), false)
		}
	}
}

func (h *HUD) layout() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
	h.gridTop = controlsTop + len(h.controls)*lineHeight + 24
	h.cellSize = maxCellSize
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	errorColor  = color.RGBA{R: 240, G: 120, B: 110, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	maxCellSize    = 40
	controlsTop    = panelPadding + headerBaseline + 14
)
