package render

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
	"github.com/examforge/booklet/internal/theme"
)

// Answer-key grid geometry.
const (
	KeyCellsPerRow = 10
	keyCellHeight  = 24.0
	keyCellPad     = 4.0
	keyRowGap      = 6.0
	keyGridTop     = 180.0
)

// The answer-key page never renders its watermark above this opacity.
const KeyWatermarkMaxOpacity = 0.10

// DrawAnswerKey renders the dedicated key page onto the current page: a
// centered title block, then the 10-per-row grid of number.letter cells.
// Questions must already be in print order.
func DrawAnswerKey(pdf *gofpdf.Fpdf, plugin theme.Plugin, meta booklet.ThemedMetadata, questions []booklet.Question) {
	p := plugin.Config().Palette

	pdf.SetFont("Times", "B", 18)
	pdf.SetTextColor(p.Primary.R, p.Primary.G, p.Primary.B)
	title := "Answer Key"
	w := pdf.GetStringWidth(title)
	pdf.Text((geom.PageWidth-w)/2, 110, title)

	pdf.SetFont("Times", "", 11)
	pdf.SetTextColor(p.Text.R, p.Text.G, p.Text.B)
	sub := meta.TestName
	sw := pdf.GetStringWidth(sub)
	pdf.Text((geom.PageWidth-sw)/2, 130, sub)

	pdf.SetDrawColor(p.Accent.R, p.Accent.G, p.Accent.B)
	pdf.SetLineWidth(0.8)
	pdf.Line(geom.PageWidth/2-60, 142, geom.PageWidth/2+60, 142)

	usable := geom.PageWidth - 2*geom.MarginX
	cellW := usable / KeyCellsPerRow

	for i, q := range questions {
		row := i / KeyCellsPerRow
		col := i % KeyCellsPerRow
		x := geom.MarginX + float64(col)*cellW
		y := keyGridTop + float64(row)*(keyCellHeight+keyRowGap)
		drawKeyCell(pdf, p, x, y, cellW-keyCellPad, q)
	}
}

func drawKeyCell(pdf *gofpdf.Fpdf, p theme.Palette, x, y, w float64, q booklet.Question) {
	// drop shadow under the cell
	pdf.SetFillColor(214, 214, 214)
	pdf.Rect(x+1.5, y+1.5, w, keyCellHeight, "F")

	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(p.Accent.R, p.Accent.G, p.Accent.B)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x, y, w, keyCellHeight, "FD")

	letter := string(q.CorrectAnswer)
	if !q.CorrectAnswer.Valid() {
		letter = "-"
	}
	label := fmt.Sprintf("%d.%s", q.Number(), letter)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(p.Text.R, p.Text.G, p.Text.B)
	lw := pdf.GetStringWidth(label)
	pdf.Text(x+(w-lw)/2, y+keyCellHeight/2+3.5, label)
}

// KeywordString serializes the answer key as the hidden document keyword
// payload used when the theme keeps the key out of the printed pages.
func KeywordString(questions []booklet.Question) string {
	var b strings.Builder
	b.WriteString("AnswerKey:")
	for i, q := range questions {
		if i > 0 {
			b.WriteByte(',')
		}
		letter := string(q.CorrectAnswer)
		if !q.CorrectAnswer.Valid() {
			letter = "-"
		}
		fmt.Fprintf(&b, "%d:%s", q.Number(), letter)
	}
	return b.String()
}
