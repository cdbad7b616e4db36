package visualizer

import (
	"math"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/olivier-w/driftfield/internal/particles"
)

func newPlainBraille(w, h int) *Braille {
	b := NewBraille(8, 16)
	b.profile = termenv.Ascii
	b.SetSize(w, h)
	return b
}

func TestBrailleSetSizeRoundsUpToCells(t *testing.T) {
	b := newPlainBraille(81, 32)
	if b.Cols() != 11 || b.Rows() != 2 {
		t.Fatalf("expected 11x2 cells, got %dx%d", b.Cols(), b.Rows())
	}
}

func TestBrailleCircleLightsCentreDot(t *testing.T) {
	b := newPlainBraille(80, 32)
	b.FillCircle(4, 4, 0.5, particles.Fill{Color: particles.Cyan.RGB(), Opacity: 0.5})

	first := []rune(strings.Split(b.View(), "\n")[0])[0]
	if first != rune(0x2800+(1<<4)) {
		t.Fatalf("expected dot (1,1) lit, got %U", first)
	}
}

func TestBrailleClearBlanksFrame(t *testing.T) {
	b := newPlainBraille(80, 32)
	b.FillCircle(20, 20, 1, particles.Fill{Color: particles.Violet.RGB(), Opacity: 0.6, Blur: 8})
	b.Clear()

	if strings.TrimSpace(strings.ReplaceAll(b.View(), "\n", "")) != "" {
		t.Fatalf("expected blank view after clear, got %q", b.View())
	}
}

func TestBrailleHorizontalLine(t *testing.T) {
	b := newPlainBraille(80, 32)
	b.StrokeLine(0, 2, 39, 2, particles.Stroke{Color: particles.Cyan.RGB(), Opacity: 0.1, Width: 0.5})

	row := []rune(strings.Split(b.View(), "\n")[0])
	for col := range 5 {
		if row[col] != '⠉' {
			t.Fatalf("expected top dots lit in cell %d, got %U", col, row[col])
		}
	}
	if row[5] != ' ' {
		t.Fatalf("expected cell 5 blank, got %U", row[5])
	}
}

func TestBrailleFaintDotsStayUnlit(t *testing.T) {
	b := newPlainBraille(80, 32)
	b.StrokeLine(0, 2, 39, 2, particles.Stroke{Color: particles.Cyan.RGB(), Opacity: 0.01})

	if strings.TrimSpace(strings.ReplaceAll(b.View(), "\n", "")) != "" {
		t.Fatal("expected dots below the lit threshold to stay blank")
	}
}

func TestBrailleCompositesOpacity(t *testing.T) {
	b := newPlainBraille(80, 32)
	f := particles.Fill{Color: particles.Cyan.RGB(), Opacity: 0.5}
	b.FillCircle(4, 4, 0.1, f)
	b.FillCircle(4, 4, 0.1, f)

	if got := b.opacityAt(4, 4); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected opacity 0.75, got %f", got)
	}
}

func TestBrailleHaloFadesWithDistance(t *testing.T) {
	b := newPlainBraille(160, 160)
	b.FillCircle(80, 80, 1, particles.Fill{Color: particles.Cyan.RGB(), Opacity: 0.6, Blur: 8})

	centre := b.opacityAt(80, 80)
	near := b.opacityAt(84, 80)
	far := b.opacityAt(100, 80)
	if !(centre > near && near > 0) {
		t.Fatalf("expected halo dimmer than centre, got centre %f near %f", centre, near)
	}
	if far != 0 {
		t.Fatalf("expected nothing beyond the halo, got %f", far)
	}
}

func TestBrailleHighlightOnlyTouchesLitDots(t *testing.T) {
	b := newPlainBraille(160, 160)
	b.FillCircle(40, 40, 0.1, particles.Fill{Color: particles.Violet.RGB(), Opacity: 0.3})
	before := b.opacityAt(40, 40)

	b.Highlight(40, 40, 100, particles.Cyan.RGB(), 0.6)

	if b.opacityAt(40, 40) <= before {
		t.Fatalf("expected lit dot to brighten, got %f", b.opacityAt(40, 40))
	}
	if b.opacityAt(60, 60) != 0 {
		t.Fatal("expected unlit dot to stay unlit")
	}
}

func TestBrailleIgnoresOutOfRangeDrawing(t *testing.T) {
	b := newPlainBraille(80, 32)
	b.FillCircle(-50, -50, 2, particles.Fill{Color: particles.Cyan.RGB(), Opacity: 0.5, Blur: 8})
	b.StrokeLine(-100, 500, 500, 500, particles.Stroke{Color: particles.Cyan.RGB(), Opacity: 0.5})

	if strings.TrimSpace(strings.ReplaceAll(b.View(), "\n", "")) != "" {
		t.Fatal("expected drawing outside the surface to be clipped")
	}
}

func TestBrailleColourOutput(t *testing.T) {
	b := NewBraille(8, 16)
	b.profile = termenv.TrueColor
	b.SetSize(16, 16)
	b.FillCircle(4, 4, 0.1, particles.Fill{Color: particles.Cyan.RGB(), Opacity: 1})

	view := b.View()
	if !strings.HasPrefix(view, "\x1b[38;2;") {
		t.Fatalf("expected truecolor sequence, got %q", view)
	}
	if !strings.HasSuffix(view, "\x1b[0m") {
		t.Fatalf("expected reset at end of row, got %q", view)
	}
}
