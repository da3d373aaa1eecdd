package booklet

// WatermarkKind selects what a watermark draws.
type WatermarkKind string

const (
	WatermarkNone  WatermarkKind = "none"
	WatermarkText  WatermarkKind = "text"
	WatermarkImage WatermarkKind = "image"
)

// WatermarkPosition anchors the watermark on the page.
type WatermarkPosition string

const (
	PositionCenter      WatermarkPosition = "center"
	PositionTopLeft     WatermarkPosition = "top-left"
	PositionTopRight    WatermarkPosition = "top-right"
	PositionBottomLeft  WatermarkPosition = "bottom-left"
	PositionBottomRight WatermarkPosition = "bottom-right"
)

// RGB is an 8-bit color triple. The zero value means "engine default".
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// IsZero reports whether no color was configured.
func (c RGB) IsZero() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// WatermarkSpec describes a low-opacity per-page overlay. It is a value
// type: attenuated copies are handed around, the original is never touched.
type WatermarkSpec struct {
	Kind            WatermarkKind     `json:"kind"`
	Content         string            `json:"content,omitempty"` // text body for Kind=text
	Image           []byte            `json:"image,omitempty"`   // raster bytes for Kind=image
	Opacity         float64           `json:"opacity"`           // configured [0,1]; clamped at render
	Position        WatermarkPosition `json:"position"`
	Size            float64           `json:"size"` // font size (text) or width in pt (image)
	RotationDegrees float64           `json:"rotation_degrees"`
	Color           RGB               `json:"color,omitempty"`
}

// Watermark opacity is always forced into this band at render time so the
// underlying content stays print-legible.
const (
	MinWatermarkOpacity = 0.05
	MaxWatermarkOpacity = 0.15
)

// ClampOpacity forces v into [MinWatermarkOpacity, MaxWatermarkOpacity].
func ClampOpacity(v float64) float64 {
	if v < MinWatermarkOpacity {
		return MinWatermarkOpacity
	}
	if v > MaxWatermarkOpacity {
		return MaxWatermarkOpacity
	}
	return v
}

// Attenuated returns a copy whose opacity is at most max. Used by the
// answer-key page, which always renders its watermark at <= 0.1.
func (w WatermarkSpec) Attenuated(max float64) WatermarkSpec {
	out := w
	if out.Opacity > max {
		out.Opacity = max
	}
	return out
}

// Drawable reports whether there is anything to render.
func (w WatermarkSpec) Drawable() bool {
	switch w.Kind {
	case WatermarkText:
		return w.Content != ""
	case WatermarkImage:
		return len(w.Image) > 0
	}
	return false
}
