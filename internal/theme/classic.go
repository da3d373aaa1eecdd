package theme

import "github.com/examforge/booklet/internal/booklet"

func init() {
	Register(&Classic{BaseTheme{Cfg: Config{
		ID:          "classic",
		DisplayName: "Classic",
		Palette: Palette{
			Primary: booklet.RGB{R: 30, G: 30, B: 30},
			Accent:  booklet.RGB{R: 70, G: 70, B: 70},
			Text:    booklet.RGB{R: 20, G: 20, B: 20},
			Muted:   booklet.RGB{R: 120, G: 120, B: 120},
		},
		Columns:          2,
		Spacing:          5,
		BoxStyle:         BoxNone,
		GutterInnerPad:   6,
		ShowSchoolName:   true,
		ShowExamCode:     true,
		BackgroundPaths:  nil, // plain white pages
		IncludeAnswerKey: true,
	}}})
}

// Classic is the default theme: plain two-column pages, no background, no
// watermark, engine-default header and footer.
type Classic struct {
	BaseTheme
}
