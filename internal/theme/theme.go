// Package theme maps theme identifiers to bundles of rendering strategy:
// header, footer, question box, column divider and watermark defaults.
// Registration validates and fully populates every config up front so the
// rendering hot path never branches on missing fields.
package theme

import (
	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/layout"
)

// BoxStyle selects the decoration drawn behind each question image.
type BoxStyle string

const (
	BoxNone   BoxStyle = "none"
	BoxBorder BoxStyle = "border"
	BoxShadow BoxStyle = "shadow"
)

// Palette is the theme's color set.
type Palette struct {
	Primary booklet.RGB // headings, question numbers
	Accent  booklet.RGB // rules, dividers
	Text    booklet.RGB
	Muted   booklet.RGB // footers, continuation headers
}

// Config is the static, immutable description of one theme. Instances are
// normalized at registration; after that every field is safe to read.
type Config struct {
	ID          string
	DisplayName string
	Palette     Palette

	Columns         int     // 1 or 2
	Spacing         float64 // default inter-question spacing, pt
	BoxStyle        BoxStyle
	GutterInnerPad  float64 // pull toward the inter-column gutter
	XOffset         float64 // global horizontal shift for placements
	ImageScaleBoost float64 // 1.0 = natural size

	// Field visibility on the first-page header.
	ShowSchoolName    bool
	ShowStudentName   bool
	ShowExamCode      bool
	ShowBookletNumber bool

	DefaultWatermark *booklet.WatermarkSpec // nil = none

	// Background asset candidates, priority order: theme override first,
	// family defaults next. The generic fallback is appended by the cache.
	BackgroundPaths []string

	IncludeAnswerKey    bool // default when the caller doesn't say
	AnswerKeyInMetadata bool // hidden keyword string instead of a page
}

// LayoutParams bundles the placement knobs the planner needs.
func (c Config) LayoutParams() layout.Params {
	return layout.Params{
		GutterInnerPad:  c.GutterInnerPad,
		XOffset:         c.XOffset,
		ImageScaleBoost: c.ImageScaleBoost,
	}
}

// normalize clamps and defaults a config into its validated form.
func normalize(c Config) Config {
	if c.Columns < 1 {
		c.Columns = 1
	}
	if c.Columns > 2 {
		c.Columns = 2
	}
	if c.Spacing <= 0 {
		c.Spacing = 5
	}
	if c.ImageScaleBoost <= 0 {
		c.ImageScaleBoost = 1.0
	}
	if c.BoxStyle == "" {
		c.BoxStyle = BoxNone
	}
	if c.DefaultWatermark != nil && !c.DefaultWatermark.Drawable() {
		c.DefaultWatermark = nil
	}
	return c
}
