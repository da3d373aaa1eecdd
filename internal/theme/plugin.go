package theme

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
)

// PageContext is what a rendering hook gets to draw with. The document handle
// is shared and mutated in place; hooks run sequentially, never concurrently.
type PageContext struct {
	PDF        *gofpdf.Fpdf
	Meta       booklet.ThemedMetadata
	PageNumber int
	FirstPage  bool
}

// Plugin is the capability set of one theme. Every hook has an engine default
// supplied by BaseTheme; concrete themes embed BaseTheme and override only
// what they style.
type Plugin interface {
	Config() Config
	RenderHeader(pc PageContext)
	RenderFooter(pc PageContext)
	RenderQuestionBox(pc PageContext, x, y, w, h float64)
	RenderColumnDivider(pc PageContext, x, topY, height float64)
	// RenderWatermark draws a theme-custom watermark and reports whether it
	// did. false hands the page to the engine's generic watermark renderer.
	RenderWatermark(pc PageContext) bool
}

// BaseTheme supplies the engine defaults: a minimal single-line metadata
// strip, a right-aligned page number, no watermark, no divider, no box.
type BaseTheme struct {
	Cfg Config
}

func (b BaseTheme) Config() Config { return b.Cfg }

func (b BaseTheme) RenderHeader(pc PageContext) {
	pdf := pc.PDF
	c := b.Cfg.Palette
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(c.Text.R, c.Text.G, c.Text.B)
	line := pc.Meta.TestName
	if pc.Meta.CourseName != "" {
		line += " - " + pc.Meta.CourseName
	}
	pdf.Text(geom.MarginX, geom.HeaderReserve-8, line)
	if pc.Meta.TeacherName != "" {
		pdf.SetFont("Helvetica", "", 9)
		w := pdf.GetStringWidth(pc.Meta.TeacherName)
		pdf.Text(geom.PageWidth-geom.MarginX-w, geom.HeaderReserve-8, pc.Meta.TeacherName)
	}
	pdf.SetDrawColor(c.Accent.R, c.Accent.G, c.Accent.B)
	pdf.SetLineWidth(0.6)
	pdf.Line(geom.MarginX, geom.HeaderReserve-3, geom.PageWidth-geom.MarginX, geom.HeaderReserve-3)
}

func (b BaseTheme) RenderFooter(pc PageContext) {
	pdf := pc.PDF
	m := b.Cfg.Palette.Muted
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(m.R, m.G, m.B)
	label := fmt.Sprintf("%d", pc.PageNumber)
	w := pdf.GetStringWidth(label)
	pdf.Text(geom.PageWidth-geom.MarginX-w, geom.PageHeight-geom.FooterReserve/2, label)
}

func (b BaseTheme) RenderQuestionBox(PageContext, float64, float64, float64, float64) {}

func (b BaseTheme) RenderColumnDivider(PageContext, float64, float64, float64) {}

func (b BaseTheme) RenderWatermark(PageContext) bool { return false }
