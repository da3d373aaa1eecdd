package theme

import (
	"fmt"

	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
)

func init() {
	Register(&Minimal{BaseTheme{Cfg: Config{
		ID:          "minimal",
		DisplayName: "Minimal",
		Palette: Palette{
			Primary: booklet.RGB{R: 40, G: 40, B: 40},
			Accent:  booklet.RGB{R: 200, G: 200, B: 200},
			Text:    booklet.RGB{R: 40, G: 40, B: 40},
			Muted:   booklet.RGB{R: 150, G: 150, B: 150},
		},
		Columns:        1,
		Spacing:        8,
		BoxStyle:       BoxNone,
		GutterInnerPad: 0,
		// Single wide column; no visible key page, the key travels in the
		// document keywords for the grading tool to pick up.
		IncludeAnswerKey:    false,
		AnswerKeyInMetadata: true,
	}}})
}

// Minimal is the single-column handout theme. No decoration beyond a page
// footer; the answer key is embedded in document metadata instead of printed.
type Minimal struct {
	BaseTheme
}

func (t *Minimal) RenderFooter(pc PageContext) {
	pdf := pc.PDF
	m := t.Cfg.Palette.Muted
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(m.R, m.G, m.B)
	label := fmt.Sprintf("%s  |  %d", pc.Meta.TestName, pc.PageNumber)
	w := pdf.GetStringWidth(label)
	pdf.Text((geom.PageWidth-w)/2, geom.PageHeight-geom.FooterReserve/2, label)
}
