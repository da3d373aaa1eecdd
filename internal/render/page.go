// Package render draws pages: backgrounds, headers, placed questions,
// footers, watermarks and the answer-key page. All drawing goes through one
// shared gofpdf document, strictly sequentially.
package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/booklet/internal/assets"
	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
	"github.com/examforge/booklet/internal/layout"
	"github.com/examforge/booklet/internal/theme"
)

// PlacedQuestion pairs a question with its computed placement.
type PlacedQuestion struct {
	Question booklet.Question
	Layout   layout.QuestionLayout
	ForceFit bool // placed via the oversized last-resort path
}

// DrawBackground paints the page background image across the full page, or
// nothing when bg is nil (the page stays plain white).
func DrawBackground(pdf *gofpdf.Fpdf, bg *assets.Background) {
	if bg == nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: bg.Format}
	pdf.RegisterImageOptionsReader(bg.Name, opts, bytes.NewReader(bg.Bytes))
	pdf.ImageOptions(bg.Name, 0, 0, geom.PageWidth, geom.PageHeight, false, opts, 0, "")
}

// ContinuationHeader is the generic header for every page after the first:
// a muted one-liner instead of the theme's full first-page treatment.
func ContinuationHeader(pdf *gofpdf.Fpdf, meta booklet.ThemedMetadata, palette theme.Palette) {
	m := palette.Muted
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(m.R, m.G, m.B)
	pdf.Text(geom.MarginX, geom.HeaderReserve-8, meta.TestName+" (continued)")
	pdf.SetDrawColor(m.R, m.G, m.B)
	pdf.SetLineWidth(0.4)
	pdf.Line(geom.MarginX, geom.HeaderReserve-3, geom.PageWidth-geom.MarginX, geom.HeaderReserve-3)
}

// DrawColumnDividers invokes the theme's divider hook at each inter-column
// gutter center of the area.
func DrawColumnDividers(pc theme.PageContext, plugin theme.Plugin, area layout.ContentArea) {
	for col := 1; col < area.MaxColumns; col++ {
		x := area.OriginX + float64(col)*(area.ColumnWidth+area.ColumnGap) - area.ColumnGap/2
		plugin.RenderColumnDivider(pc, x, area.OriginY, area.Height)
	}
}
