package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
	"github.com/examforge/booklet/internal/layout"
	"github.com/examforge/booklet/internal/theme"
)

func newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 210, B: 220, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDrawQuestionWithValidImage(t *testing.T) {
	pdf := newDoc()
	plugin := theme.Default()
	pq := PlacedQuestion{
		Question: booklet.Question{ID: "q1", Image: pngBytes(t, 100, 60), ActualWidth: 100, ActualHeight: 60},
		Layout:   layout.QuestionLayout{X: 50, Y: 80, Width: 24, Height: 14.4, ScaleFactor: 1},
	}
	DrawQuestion(theme.PageContext{PDF: pdf, PageNumber: 1}, plugin, pq)
	if pdf.Err() {
		t.Fatalf("pdf error: %v", pdf.Error())
	}
}

func TestDrawQuestionBadImageDegrades(t *testing.T) {
	pdf := newDoc()
	plugin := theme.Default()
	pq := PlacedQuestion{
		Question: booklet.Question{ID: "q1", Image: []byte("definitely not an image")},
		Layout:   layout.QuestionLayout{X: 50, Y: 80, Width: 100, Height: 60, ScaleFactor: 1},
	}
	DrawQuestion(theme.PageContext{PDF: pdf, PageNumber: 1}, plugin, pq)
	if pdf.Err() {
		t.Fatalf("placeholder path poisoned the document: %v", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
}

func TestApplyWatermarkClampsAlpha(t *testing.T) {
	// SetAlpha writes an ExtGState with the clamped constant; verify the
	// serialized document carries the band value, not the configured one.
	pdf := newDoc()
	ApplyWatermark(pdf, booklet.WatermarkSpec{
		Kind: booklet.WatermarkText, Content: "DRAFT", Opacity: 0.9, RotationDegrees: 45,
	})
	if pdf.Err() {
		t.Fatalf("pdf error: %v", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "0.15") {
		t.Error("clamped alpha 0.15 not present in output")
	}
}

func TestApplyWatermarkBadImageSkips(t *testing.T) {
	pdf := newDoc()
	ApplyWatermark(pdf, booklet.WatermarkSpec{
		Kind: booklet.WatermarkImage, Image: []byte("junk"), Opacity: 0.1,
	})
	if pdf.Err() {
		t.Fatalf("bad watermark image must be skipped, got: %v", pdf.Error())
	}
}

func TestApplyWatermarkNoneIsNoop(t *testing.T) {
	pdf := newDoc()
	before := pdf.PageCount()
	ApplyWatermark(pdf, booklet.WatermarkSpec{Kind: booklet.WatermarkNone})
	if pdf.PageCount() != before || pdf.Err() {
		t.Error("none watermark changed the document")
	}
}

func TestAnswerKeyGrid(t *testing.T) {
	pdf := newDoc()
	questions := make([]booklet.Question, 25)
	letters := []booklet.AnswerLetter{"A", "B", "C", "D", "E"}
	for i := range questions {
		questions[i] = booklet.Question{Order: i, CorrectAnswer: letters[i%5]}
	}
	DrawAnswerKey(pdf, theme.Default(), booklet.ThemedMetadata{Metadata: booklet.Metadata{TestName: "Test"}}, questions)
	if pdf.Err() {
		t.Fatalf("pdf error: %v", pdf.Error())
	}
}

func TestKeywordString(t *testing.T) {
	qs := []booklet.Question{
		{Order: 0, CorrectAnswer: "A"},
		{Order: 1, CorrectAnswer: "C"},
		{Order: 2, CorrectAnswer: "Z"}, // invalid letter
	}
	got := KeywordString(qs)
	want := "AnswerKey:1:A,2:C,3:-"
	if got != want {
		t.Errorf("KeywordString = %q, want %q", got, want)
	}
}

func TestContinuationHeader(t *testing.T) {
	pdf := newDoc()
	ContinuationHeader(pdf, booklet.ThemedMetadata{Metadata: booklet.Metadata{TestName: "Quiz"}}, theme.Default().Config().Palette)
	if pdf.Err() {
		t.Fatalf("pdf error: %v", pdf.Error())
	}
}

func TestDrawBackgroundNilIsWhite(t *testing.T) {
	pdf := newDoc()
	DrawBackground(pdf, nil)
	if pdf.Err() {
		t.Fatal("nil background must be a no-op")
	}
}

func TestAnchorPositions(t *testing.T) {
	cx, cy := anchor(booklet.PositionCenter)
	if cx != geom.PageWidth/2 || cy != geom.PageHeight/2 {
		t.Errorf("center anchor = (%v,%v)", cx, cy)
	}
	lx, _ := anchor(booklet.PositionTopLeft)
	rx, _ := anchor(booklet.PositionTopRight)
	if lx >= geom.PageWidth/2 || rx <= geom.PageWidth/2 {
		t.Errorf("corner anchors wrong: %v %v", lx, rx)
	}
}
