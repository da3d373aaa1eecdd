package render

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/booklet/internal/assets"
	"github.com/examforge/booklet/internal/layout"
	"github.com/examforge/booklet/internal/theme"
)

// DrawQuestion renders one placed question: the theme's box decoration, the
// printed number, then the image at exactly the planned size. A bad image
// never aborts the build; it degrades to a bordered placeholder.
func DrawQuestion(pc theme.PageContext, plugin theme.Plugin, pq PlacedQuestion) {
	pdf := pc.PDF
	l := pq.Layout
	cfg := plugin.Config()

	plugin.RenderQuestionBox(pc, l.X, l.Y, l.Width, l.Height)

	p := cfg.Palette.Primary
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(p.R, p.G, p.B)
	pdf.Text(l.X, l.Y-4, fmt.Sprintf("%d.", pq.Question.Number()))

	img, err := assets.PrepareImage("q-"+pq.Question.ID, pq.Question.Image)
	if err != nil {
		log.Printf("render: question %s: %v", pq.Question.ID, err)
		drawPlaceholder(pdf, l, cfg.Palette)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: img.Format}
	pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Bytes))
	pdf.ImageOptions(img.Name, l.X, l.Y, l.Width, l.Height, false, opts, 0, "")
}

// drawPlaceholder marks a question whose image could not be embedded.
func drawPlaceholder(pdf *gofpdf.Fpdf, l layout.QuestionLayout, palette theme.Palette) {
	m := palette.Muted
	pdf.SetDrawColor(m.R, m.G, m.B)
	pdf.SetLineWidth(0.5)
	pdf.Rect(l.X, l.Y, l.Width, l.Height, "D")
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(m.R, m.G, m.B)
	label := "image unavailable"
	w := pdf.GetStringWidth(label)
	pdf.Text(l.X+(l.Width-w)/2, l.Y+l.Height/2, label)
}
