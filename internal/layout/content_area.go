// Package layout tracks the writable region of a page and decides where each
// question lands. Areas are values: every operation returns a new ContentArea
// and never mutates its input, so callers simply rebind their "current" area.
package layout

import "github.com/examforge/booklet/internal/geom"

// ColumnGap is the width reserved between columns for the divider.
const ColumnGap = 12.0

// ContentArea is the writable rectangle of one page, with column bookkeeping.
// Created fresh per page; discarded when the page is full.
type ContentArea struct {
	OriginX, OriginY float64
	Width, Height    float64
	RemainingHeight  float64
	CurrentColumn    int // 0-based
	MaxColumns       int
	ColumnWidth      float64
	ColumnGap        float64
}

// Open computes the usable area of a fresh page: full page minus the fixed
// side margins, the header band above pageTopY and the footer reserve.
func Open(pageTopY float64, columns int) ContentArea {
	if columns < 1 {
		columns = 1
	}
	if columns > 2 {
		columns = 2
	}
	w := geom.ClampDim(geom.PageWidth-2*geom.MarginX, 1)
	h := geom.ClampDim(geom.PageHeight-pageTopY-geom.FooterReserve, 1)
	colW := (w - ColumnGap*float64(columns-1)) / float64(columns)
	return ContentArea{
		OriginX:         geom.MarginX,
		OriginY:         pageTopY,
		Width:           w,
		Height:          h,
		RemainingHeight: h,
		CurrentColumn:   0,
		MaxColumns:      columns,
		ColumnWidth:     geom.ClampDim(colW, 1),
		ColumnGap:       ColumnGap,
	}
}

// AdvanceColumn returns the area positioned at the next column with the full
// height restored. ok=false means the page is out of columns and the caller
// must start a new page.
func (a ContentArea) AdvanceColumn() (ContentArea, bool) {
	if a.CurrentColumn+1 >= a.MaxColumns {
		return a, false
	}
	next := a
	next.CurrentColumn++
	next.RemainingHeight = a.Height
	return next, true
}

// Consume returns the area with usedHeight plus spacing taken off the
// remaining column height.
func (a ContentArea) Consume(usedHeight, spacing float64) ContentArea {
	next := a
	next.RemainingHeight -= usedHeight + spacing
	if next.RemainingHeight < 0 {
		next.RemainingHeight = 0
	}
	return next
}

// ColumnLeft is the x coordinate of the current column's left edge.
func (a ContentArea) ColumnLeft() float64 {
	return a.OriginX + float64(a.CurrentColumn)*(a.ColumnWidth+a.ColumnGap)
}

// CursorY is the y coordinate where the next placement starts.
func (a ContentArea) CursorY() float64 {
	return a.OriginY + (a.Height - a.RemainingHeight)
}
