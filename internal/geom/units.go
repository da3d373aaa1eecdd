// Package geom holds the fixed page geometry and unit conversions the
// composition engine works in. Everything downstream is in PDF points
// (1 inch = 72 pt), matching A4 portrait.
package geom

const (
	// A4 portrait, in points.
	PageWidth  = 595.28
	PageHeight = 841.89

	ptPerInch = 72.0
	mmPerInch = 25.4

	// SourceDPI is the assumed density of cropped question images. There is
	// no dynamic DPI detection; crops are rasterized at 300 DPI upstream.
	SourceDPI = 300.0
)

// Fixed page reservations, in points.
var (
	MarginX       = MmToPt(5)  // left and right
	HeaderReserve = MmToPt(10) // top band for the theme header
	FooterReserve = MmToPt(10) // bottom band for the footer strip
)

// ContentTop is the y coordinate where the writable region starts.
func ContentTop() float64 { return HeaderReserve }

// ContentHeight is the full writable height of one column.
func ContentHeight() float64 { return PageHeight - HeaderReserve - FooterReserve }

// MmToPt converts millimeters to points.
func MmToPt(mm float64) float64 { return mm * ptPerInch / mmPerInch }

// PxToPt converts source pixels to points at the fixed 300 DPI assumption.
func PxToPt(px int) float64 { return float64(px) * ptPerInch / SourceDPI }

// ClampDim guards layout math against zero or negative dimensions coming in
// from bad crop records: values below min collapse to min instead of erroring.
func ClampDim(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}
