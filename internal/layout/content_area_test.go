package layout

import (
	"math"
	"testing"

	"github.com/examforge/booklet/internal/geom"
)

func TestOpenTwoColumns(t *testing.T) {
	a := Open(geom.ContentTop(), 2)
	wantW := geom.PageWidth - 2*geom.MarginX
	if math.Abs(a.Width-wantW) > 0.01 {
		t.Errorf("Width = %v, want %v", a.Width, wantW)
	}
	wantCol := (wantW - ColumnGap) / 2
	if math.Abs(a.ColumnWidth-wantCol) > 0.01 {
		t.Errorf("ColumnWidth = %v, want %v", a.ColumnWidth, wantCol)
	}
	if a.RemainingHeight != a.Height {
		t.Errorf("fresh area remaining %v != height %v", a.RemainingHeight, a.Height)
	}
	if a.MaxColumns != 2 || a.CurrentColumn != 0 {
		t.Errorf("column state = %d/%d", a.CurrentColumn, a.MaxColumns)
	}
}

func TestOpenClampsColumnCount(t *testing.T) {
	if a := Open(geom.ContentTop(), 0); a.MaxColumns != 1 {
		t.Errorf("columns=0 -> %d", a.MaxColumns)
	}
	if a := Open(geom.ContentTop(), 5); a.MaxColumns != 2 {
		t.Errorf("columns=5 -> %d", a.MaxColumns)
	}
}

func TestAdvanceColumnResetsHeight(t *testing.T) {
	a := Open(geom.ContentTop(), 2)
	a = a.Consume(300, 5)
	next, ok := a.AdvanceColumn()
	if !ok {
		t.Fatal("expected a second column")
	}
	if next.CurrentColumn != 1 {
		t.Errorf("CurrentColumn = %d", next.CurrentColumn)
	}
	if next.RemainingHeight != next.Height {
		t.Errorf("remaining not reset: %v", next.RemainingHeight)
	}
	if _, ok := next.AdvanceColumn(); ok {
		t.Error("advanced past last column")
	}
}

func TestConsumeValueSemantics(t *testing.T) {
	a := Open(geom.ContentTop(), 1)
	before := a.RemainingHeight
	b := a.Consume(100, 5)
	if a.RemainingHeight != before {
		t.Fatal("Consume mutated its receiver")
	}
	if want := before - 105; math.Abs(b.RemainingHeight-want) > 0.001 {
		t.Errorf("RemainingHeight = %v, want %v", b.RemainingHeight, want)
	}
	// never below zero
	c := b.Consume(1e6, 0)
	if c.RemainingHeight != 0 {
		t.Errorf("RemainingHeight = %v, want 0", c.RemainingHeight)
	}
}

func TestCursorYTracksConsumption(t *testing.T) {
	a := Open(geom.ContentTop(), 1)
	if a.CursorY() != a.OriginY {
		t.Errorf("fresh cursor = %v, want %v", a.CursorY(), a.OriginY)
	}
	b := a.Consume(200, 10)
	if want := a.OriginY + 210; math.Abs(b.CursorY()-want) > 0.001 {
		t.Errorf("cursor = %v, want %v", b.CursorY(), want)
	}
}
