package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/XThorin/WizardChase/internal/config"
	"github.com/XThorin/WizardChase/internal/core"
	"github.com/XThorin/WizardChase/internal/game"
)

func testField() *Field {
	return NewField(config.DefaultRules().Field.Bounds(), 80, 20)
}

func within(inner, r core.Rect) bool {
	return r.X >= inner.X && r.Y >= inner.Y && r.Right() <= inner.Right() && r.Bottom() <= inner.Bottom()
}

func TestFieldKeepsSpritesInside(t *testing.T) {
	f := testField()
	in := f.Inner()

	for _, v := range []core.Vec{
		{X: 50, Y: 150},
		{X: 349.999, Y: 599.999},
		{X: 200, Y: 375},
		{X: 0, Y: 0},      // Clamped
		{X: 1000, Y: 1000}, // Clamped
	} {
		if r := f.WizardRect(v); !within(in, r) {
			t.Errorf("Wizard at %+v drawn outside field: %+v", v, r)
		}
		if r := f.PowerUpRect(v); !within(in, r) {
			t.Errorf("Power-up at %+v drawn outside field: %+v", v, r)
		}
	}
}

func TestFieldCornersMapToCorners(t *testing.T) {
	f := testField()
	in := f.Inner()

	r := f.WizardRect(core.Vec{X: 50, Y: 150})
	if r.X != in.X || r.Y != in.Y {
		t.Errorf("Min corner should map to inner top-left, got %+v", r)
	}
	r = f.WizardRect(core.Vec{X: 349.999, Y: 599.999})
	if r.Right() < in.Right()-1 || r.Bottom() < in.Bottom()-1 {
		t.Errorf("Max corner should map near inner bottom-right, got %+v", r)
	}
}

func TestFieldHitTest(t *testing.T) {
	f := testField()
	st := game.State{Playing: true, Wizard: core.Vec{X: 100, Y: 200}}

	wr := f.WizardRect(st.Wizard)
	if got := f.HitTest(st, wr.X, wr.Y); got != TargetWizard {
		t.Errorf("Expected wizard hit, got %v", got)
	}
	if got := f.HitTest(st, wr.Right()+5, wr.Y); got != TargetNone {
		t.Errorf("Expected miss, got %v", got)
	}

	// Power-up on top of the wizard wins.
	st.PowerUp = &game.PowerUp{ID: 1, Type: game.PowerUpTimeBonus, Pos: st.Wizard}
	pr := f.PowerUpRect(st.PowerUp.Pos)
	if got := f.HitTest(st, pr.X, pr.Y); got != TargetPowerUp {
		t.Errorf("Expected power-up hit, got %v", got)
	}
	// One cell of margin around the power-up.
	if got := f.HitTest(st, pr.Right(), pr.Y+1); got != TargetPowerUp {
		t.Errorf("Expected power-up hit in margin, got %v", got)
	}
}

func TestFieldClampCursor(t *testing.T) {
	f := testField()
	in := f.Inner()

	x, y := f.ClampCursor(-5, 100)
	if x != in.X || y != in.Bottom()-1 {
		t.Errorf("ClampCursor(-5, 100) = (%d, %d)", x, y)
	}
}

func TestFieldDraw(t *testing.T) {
	f := testField()
	st := game.State{
		Playing: true,
		Wizard:  core.Vec{X: 50, Y: 150},
		PowerUp: &game.PowerUp{ID: 1, Type: game.PowerUpScoreMultiplier, Pos: core.Vec{X: 300, Y: 550}},
	}
	f.Draw(st, 40, 10, true)

	wr := f.WizardRect(st.Wizard)
	if got := f.screen.GetCell(wr.X+1, wr.Y+2); got.Rune != '(' || got.Color != core.ColorMagenta {
		t.Errorf("Wizard cell = %+v", got)
	}
	pr := f.PowerUpRect(st.PowerUp.Pos)
	if got := f.screen.GetCell(pr.X, pr.Y); got.Rune != '★' || got.Color != core.ColorYellow {
		t.Errorf("Power-up cell = %+v", got)
	}
	if got := f.screen.Get(40, 10); got != '+' {
		t.Errorf("Expected cursor at (40, 10), got %q", got)
	}
	if got := f.screen.Get(0, 0); got != '┌' {
		t.Errorf("Expected border, got %q", got)
	}
}

func TestRenderScreenKeepsWideRunesAligned(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.Set(0, 0, '中')
	s.Set(1, 0, ' ')
	s.Set(2, 0, 'a')
	s.Set(3, 0, 'b')

	if w := lipgloss.Width(RenderScreen(s)); w != 4 {
		t.Errorf("Rendered width = %d, want 4", w)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Ava", 10, "Ava"},
		{"Wizard", 3, "Wiz"},
		{"中文中文", 5, "中文"},
		{"Ava", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
