package layout

import (
	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
)

// NumberReserve is the vertical space kept above each image for the printed
// question number.
const NumberReserve = 14.0

// Params are the theme-tunable placement knobs. GutterInnerPad pulls images
// toward the inter-column gutter; XOffset shifts every image horizontally.
type Params struct {
	GutterInnerPad  float64
	XOffset         float64
	ImageScaleBoost float64 // 1.0 = natural size
}

func (p Params) boost() float64 {
	if p.ImageScaleBoost <= 0 {
		return 1.0
	}
	return p.ImageScaleBoost
}

// QuestionLayout is one computed placement attempt. Transient: used for a
// single draw call, never cached.
type QuestionLayout struct {
	X, Y          float64
	Width, Height float64
	Column        int
	PixelWidth    int
	PixelHeight   int
	ScaleFactor   float64 // always 1.0: images are placed at natural size
}

// NaturalSize converts the question's pixel dimensions to points and applies
// the theme's scale boost. This is the only size the planner will ever place
// the image at.
func NaturalSize(q booklet.Question, p Params) (w, h float64) {
	w = geom.ClampDim(geom.PxToPt(q.ActualWidth), 1) * p.boost()
	h = geom.ClampDim(geom.PxToPt(q.ActualHeight), 1) * p.boost()
	return w, h
}

// Place attempts to fit the question into the current column of area at its
// natural boosted size. ok=false is a routing signal, not an error: the
// caller tries the next column, then a new page. Images are never shrunk
// here.
func Place(q booklet.Question, area ContentArea, spacing float64, p Params) (QuestionLayout, bool) {
	w, h := NaturalSize(q, p)

	maxW := area.ColumnWidth - 2*spacing
	maxH := area.RemainingHeight - NumberReserve - 2*spacing
	if w > maxW || h > maxH {
		return QuestionLayout{}, false
	}

	x := anchorX(area, w, p)
	y := area.CursorY() + spacing + NumberReserve

	return QuestionLayout{
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
		Column:      area.CurrentColumn,
		PixelWidth:  q.ActualWidth,
		PixelHeight: q.ActualHeight,
		ScaleFactor: 1.0,
	}, true
}

// anchorX computes the gutter-hugging x position: in a two-column layout the
// left column right-justifies toward the gutter (minus the inner pad) and the
// right column left-justifies toward it, so facing images read as a centered
// pair. Single columns center.
func anchorX(area ContentArea, w float64, p Params) float64 {
	left := area.ColumnLeft()
	var x float64
	switch {
	case area.MaxColumns < 2:
		x = left + (area.ColumnWidth-w)/2
	case area.CurrentColumn == 0:
		x = left + area.ColumnWidth - w - p.GutterInnerPad
	default:
		x = left + p.GutterInnerPad
	}
	x += p.XOffset
	if x < area.OriginX {
		x = area.OriginX
	}
	return x
}

// Consumed is the vertical space a successful placement takes out of the
// column: the number band plus the image. Trailing inter-question spacing is
// added by ContentArea.Consume.
func (l QuestionLayout) Consumed() float64 {
	return NumberReserve + l.Height
}

// FitsFreshColumn reports whether the question could ever be placed in an
// empty column of an empty page. Questions that fail this can never be
// routed to a fit and go through the force-fit fallback instead.
func FitsFreshColumn(q booklet.Question, columns int, spacing float64, p Params) bool {
	area := Open(geom.ContentTop(), columns)
	_, ok := Place(q, area, spacing, p)
	return ok
}

// MaxPlacement returns the largest placement the fresh-column budget allows,
// preserving aspect ratio. This is the force-fit fallback for questions that
// exceed every column: scaled down as a last resort, flagged by the caller.
func MaxPlacement(q booklet.Question, area ContentArea, spacing float64, p Params) QuestionLayout {
	w, h := NaturalSize(q, p)
	maxW := geom.ClampDim(area.ColumnWidth-2*spacing, 1)
	maxH := geom.ClampDim(area.RemainingHeight-NumberReserve-2*spacing, 1)

	scale := 1.0
	if w > maxW {
		scale = maxW / w
	}
	if h*scale > maxH {
		scale = maxH / h
	}
	return QuestionLayout{
		X:           anchorX(area, w*scale, p),
		Y:           area.CursorY() + spacing + NumberReserve,
		Width:       w * scale,
		Height:      h * scale,
		Column:      area.CurrentColumn,
		PixelWidth:  q.ActualWidth,
		PixelHeight: q.ActualHeight,
		ScaleFactor: scale,
	}
}
