package tui

import (
	"github.com/XThorin/WizardChase/internal/core"
	"github.com/XThorin/WizardChase/internal/game"
)

// Layout rows around the field on the game screen.
const (
	hudRows    = 1 // HUD line above the field
	footerRows = 2 // Toast line and help bar below the field
)

// wizardSprite is drawn with the wizard position at its top-left corner.
var wizardSprite = []string{
	"  /\\  ",
	" /__\\ ",
	" (oo) ",
	" /||\\ ",
}

const (
	wizardW  = 6
	wizardH  = 4
	powerUpW = 2 // Glyphs may render double-width
)

// Target is what a tap landed on.
type Target int

const (
	TargetNone Target = iota
	TargetWizard
	TargetPowerUp
)

// Field projects the logical play box onto terminal cells. The box is
// mapped onto the area inside a border, so every position in the box keeps
// the whole sprite on screen.
type Field struct {
	bounds core.Bounds
	screen *core.Screen
}

// NewField creates a field of width x height cells, border included.
func NewField(bounds core.Bounds, width, height int) *Field {
	return &Field{
		bounds: bounds,
		screen: core.NewScreen(width, height),
	}
}

// Resize changes the field's cell size.
func (f *Field) Resize(width, height int) {
	f.screen.Resize(width, height)
}

// Inner returns the cells inside the border.
func (f *Field) Inner() core.Rect {
	return core.NewRect(1, 1, max(f.screen.Width()-2, 0), max(f.screen.Height()-2, 0))
}

// place returns the top-left cell of a w x h object at v.
func (f *Field) place(v core.Vec, w, h int) (int, int) {
	in := f.Inner()
	fx, fy := f.bounds.Fraction(v)
	x := in.X + int(fx*float64(max(in.W-w, 0)))
	y := in.Y + int(fy*float64(max(in.H-h, 0)))
	return x, y
}

// WizardRect returns the cells covered by the wizard at v.
func (f *Field) WizardRect(v core.Vec) core.Rect {
	x, y := f.place(v, wizardW, wizardH)
	return core.NewRect(x, y, wizardW, wizardH)
}

// PowerUpRect returns the cells covered by a power-up at v.
func (f *Field) PowerUpRect(v core.Vec) core.Rect {
	x, y := f.place(v, powerUpW, 1)
	return core.NewRect(x, y, powerUpW, 1)
}

// HitTest resolves a tap at field cell (x, y). The power-up is drawn on top,
// so it wins when both overlap. Its one-row target gets a one-cell margin.
func (f *Field) HitTest(st game.State, x, y int) Target {
	if st.PowerUp != nil && f.PowerUpRect(st.PowerUp.Pos).Grow(1).Contains(x, y) {
		return TargetPowerUp
	}
	if f.WizardRect(st.Wizard).Contains(x, y) {
		return TargetWizard
	}
	return TargetNone
}

// ClampCursor keeps a cursor cell inside the border.
func (f *Field) ClampCursor(x, y int) (int, int) {
	in := f.Inner()
	return core.Clamp(x, in.X, max(in.Right()-1, in.X)), core.Clamp(y, in.Y, max(in.Bottom()-1, in.Y))
}

// Draw renders the round into the field buffer. The cursor is drawn only
// on empty cells; a wizard under the cursor is highlighted instead.
func (f *Field) Draw(st game.State, cursorX, cursorY int, showCursor bool) {
	s := f.screen
	s.Clear()
	if s.Width() < 2 || s.Height() < 2 {
		return
	}
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), core.ColorPurple)

	wr := f.WizardRect(st.Wizard)
	color := core.ColorMagenta
	switch {
	case st.Paused:
		color = core.ColorDim
	case showCursor && wr.Contains(cursorX, cursorY):
		color = core.ColorYellow
	}
	s.DrawSprite(wr.X, wr.Y, wizardSprite, color)

	if pu := st.PowerUp; pu != nil {
		pr := f.PowerUpRect(pu.Pos)
		s.SetColored(pr.X, pr.Y, pu.Type.Glyph(), powerUpColor(pu.Type))
		s.Set(pr.X+1, pr.Y, ' ')
	}

	if showCursor && s.Get(cursorX, cursorY) == ' ' {
		s.SetColored(cursorX, cursorY, '+', core.ColorCyan)
	}
}

// DrawCentered writes text in the middle of the field.
func (f *Field) DrawCentered(text string, c core.Color) {
	in := f.Inner()
	w := len([]rune(text))
	f.screen.DrawTextColored(in.X+max((in.W-w)/2, 0), in.Y+in.H/2, text, c)
}

// View returns the styled field.
func (f *Field) View() string {
	return RenderScreen(f.screen)
}

func powerUpColor(t game.PowerUpType) core.Color {
	switch t {
	case game.PowerUpScoreMultiplier:
		return core.ColorYellow
	case game.PowerUpTimeBonus:
		return core.ColorGreen
	case game.PowerUpSlowMotion:
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}
