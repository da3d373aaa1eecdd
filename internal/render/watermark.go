package render

import (
	"bytes"
	"log"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/booklet/internal/assets"
	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
)

const (
	defaultWatermarkSize  = 48.0  // font size for text marks
	defaultWatermarkWidth = 220.0 // image mark width, pt
	cornerInset           = 90.0
)

// ApplyWatermark draws the watermark on the current page. Opacity is always
// clamped into the legibility band regardless of what was configured. Image
// marks that fail to decode are skipped silently; the page stays clean.
func ApplyWatermark(pdf *gofpdf.Fpdf, spec booklet.WatermarkSpec) {
	if !spec.Drawable() {
		return
	}
	alpha := booklet.ClampOpacity(spec.Opacity)
	pdf.SetAlpha(alpha, "Normal")
	defer pdf.SetAlpha(1, "Normal")

	cx, cy := anchor(spec.Position)
	switch spec.Kind {
	case booklet.WatermarkText:
		drawTextMark(pdf, spec, cx, cy)
	case booklet.WatermarkImage:
		drawImageMark(pdf, spec, cx, cy)
	}
}

func anchor(pos booklet.WatermarkPosition) (float64, float64) {
	switch pos {
	case booklet.PositionTopLeft:
		return cornerInset, cornerInset
	case booklet.PositionTopRight:
		return geom.PageWidth - cornerInset, cornerInset
	case booklet.PositionBottomLeft:
		return cornerInset, geom.PageHeight - cornerInset
	case booklet.PositionBottomRight:
		return geom.PageWidth - cornerInset, geom.PageHeight - cornerInset
	default:
		return geom.PageWidth / 2, geom.PageHeight / 2
	}
}

func drawTextMark(pdf *gofpdf.Fpdf, spec booklet.WatermarkSpec, cx, cy float64) {
	size := spec.Size
	if size <= 0 {
		size = defaultWatermarkSize
	}
	c := spec.Color
	if c.IsZero() {
		c = booklet.RGB{R: 128, G: 128, B: 128}
	}
	pdf.SetFont("Helvetica", "B", size)
	pdf.SetTextColor(c.R, c.G, c.B)

	pdf.TransformBegin()
	pdf.TransformRotate(spec.RotationDegrees, cx, cy)
	w := pdf.GetStringWidth(spec.Content)
	pdf.Text(cx-w/2, cy+size/3, spec.Content)
	pdf.TransformEnd()
}

func drawImageMark(pdf *gofpdf.Fpdf, spec booklet.WatermarkSpec, cx, cy float64) {
	img, err := assets.PrepareImage("wm", spec.Image)
	if err != nil {
		log.Printf("render: watermark image skipped: %v", err)
		return
	}
	w := spec.Size
	if w <= 0 {
		w = defaultWatermarkWidth
	}
	h := w
	if img.Width > 0 {
		h = w * float64(img.Height) / float64(img.Width)
	}
	opts := gofpdf.ImageOptions{ImageType: img.Format}
	pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Bytes))

	pdf.TransformBegin()
	pdf.TransformRotate(spec.RotationDegrees, cx, cy)
	pdf.ImageOptions(img.Name, cx-w/2, cy-h/2, w, h, false, opts, 0, "")
	pdf.TransformEnd()
}
