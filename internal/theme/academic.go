package theme

import (
	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
)

func init() {
	Register(&Academic{BaseTheme{Cfg: Config{
		ID:          "academic",
		DisplayName: "Academic",
		Palette: Palette{
			Primary: booklet.RGB{R: 21, G: 52, B: 96},
			Accent:  booklet.RGB{R: 176, G: 140, B: 60},
			Text:    booklet.RGB{R: 25, G: 25, B: 30},
			Muted:   booklet.RGB{R: 110, G: 115, B: 125},
		},
		Columns:        2,
		Spacing:        6,
		BoxStyle:       BoxBorder,
		GutterInnerPad: 8,
		// Crops read small inside the bordered boxes; boost for legibility.
		ImageScaleBoost:   1.3,
		ShowSchoolName:    true,
		ShowStudentName:   true,
		ShowExamCode:      true,
		ShowBookletNumber: true,
		DefaultWatermark: &booklet.WatermarkSpec{
			Kind:            booklet.WatermarkText,
			Content:         "ORIGINAL",
			Opacity:         0.08,
			Position:        booklet.PositionCenter,
			Size:            54,
			RotationDegrees: 45,
		},
		BackgroundPaths: []string{
			"themes/academic/background.png",
			"themes/shared/parchment.png",
		},
		IncludeAnswerKey: true,
	}}})
}

// Academic is the formal print theme: bordered question boxes, a column
// divider, a two-line crested header and a default diagonal text watermark.
type Academic struct {
	BaseTheme
}

func (t *Academic) RenderHeader(pc PageContext) {
	pdf := pc.PDF
	p := t.Cfg.Palette

	pdf.SetFont("Times", "B", 13)
	pdf.SetTextColor(p.Primary.R, p.Primary.G, p.Primary.B)
	title := pc.Meta.TestName
	w := pdf.GetStringWidth(title)
	pdf.Text((geom.PageWidth-w)/2, 14, title)

	pdf.SetFont("Times", "", 9)
	pdf.SetTextColor(p.Text.R, p.Text.G, p.Text.B)
	var left string
	if t.Cfg.ShowSchoolName && pc.Meta.SchoolName != "" {
		left = pc.Meta.SchoolName
	} else {
		left = pc.Meta.CourseName
	}
	pdf.Text(geom.MarginX, geom.HeaderReserve-4, left)

	var right string
	switch {
	case t.Cfg.ShowExamCode && pc.Meta.ExamCode != "":
		right = "Code: " + pc.Meta.ExamCode
	case t.Cfg.ShowBookletNumber && pc.Meta.BookletNumber != "":
		right = "Booklet " + pc.Meta.BookletNumber
	default:
		right = pc.Meta.ClassName
	}
	rw := pdf.GetStringWidth(right)
	pdf.Text(geom.PageWidth-geom.MarginX-rw, geom.HeaderReserve-4, right)

	pdf.SetDrawColor(p.Accent.R, p.Accent.G, p.Accent.B)
	pdf.SetLineWidth(1.1)
	pdf.Line(geom.MarginX, geom.HeaderReserve-1, geom.PageWidth-geom.MarginX, geom.HeaderReserve-1)
}

func (t *Academic) RenderQuestionBox(pc PageContext, x, y, w, h float64) {
	pdf := pc.PDF
	a := t.Cfg.Palette.Accent
	pdf.SetDrawColor(a.R, a.G, a.B)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x-3, y-3, w+6, h+6, "D")
}

func (t *Academic) RenderColumnDivider(pc PageContext, x, topY, height float64) {
	pdf := pc.PDF
	a := t.Cfg.Palette.Accent
	pdf.SetDrawColor(a.R, a.G, a.B)
	pdf.SetLineWidth(0.3)
	pdf.Line(x, topY, x, topY+height)
}
