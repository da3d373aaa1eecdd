// Package compose orchestrates a whole booklet build: theme resolution,
// page-by-page question placement, the footer/watermark pass, the answer key
// and final serialization to PDF bytes.
package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/booklet/internal/assets"
	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/geom"
	"github.com/examforge/booklet/internal/layout"
	"github.com/examforge/booklet/internal/render"
	"github.com/examforge/booklet/internal/theme"
)

var (
	ErrNoQuestions = errors.New("compose: no questions to place")
	ErrBadMetadata = errors.New("compose: malformed metadata")
)

// BuildInput is the full engine input contract: ordered question records,
// booklet metadata and generation options, exactly as handed over by the
// upstream UI layer.
type BuildInput struct {
	Metadata  booklet.Metadata
	Questions []booklet.Question
	Options   booklet.GenerationOptions
}

// Result is one finished build. PDF is the output contract; the remaining
// fields describe what was produced so callers and tests don't have to parse
// the byte stream.
type Result struct {
	PDF                 []byte
	PageCount           int
	QuestionPages       int
	AnswerKeyPage       bool
	AnswerKeyInMetadata bool
	// ForceFitted lists question numbers that exceeded every column at
	// natural size and were scaled down onto their own page as a last resort.
	ForceFitted []int
}

// Assembler builds booklets. One Assembler may serve many sequential builds;
// each build gets its own asset cache, so concurrent builds need separate
// Assemblers or external locking.
type Assembler struct {
	fetcher assets.Fetcher
	now     func() time.Time
}

func New(fetcher assets.Fetcher) *Assembler {
	return &Assembler{fetcher: fetcher, now: time.Now}
}

// Build runs the whole pipeline. Fatal problems (bad metadata, no questions,
// serializer failure) return an error and no bytes; per-asset problems
// degrade to fallback visuals and never abort a multi-page build.
func (a *Assembler) Build(ctx context.Context, in BuildInput) (*Result, error) {
	if err := in.Metadata.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMetadata, err)
	}
	if len(in.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	plugin := theme.Resolve(in.Options.ThemeID)
	cfg := plugin.Config()
	params := cfg.LayoutParams()
	spacing := resolveSpacing(in.Metadata.QuestionSpacing, cfg.Spacing)
	meta := sanitizedMeta(in.Metadata, in.Options.CustomFields)

	questions := append([]booklet.Question(nil), in.Questions...)
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].Order < questions[j].Order })

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	cache := assets.NewCache(a.fetcher)
	defer cache.Reset()

	b := &build{
		ctx:     ctx,
		pdf:     pdf,
		plugin:  plugin,
		cfg:     cfg,
		params:  params,
		spacing: spacing,
		meta:    meta,
		cache:   cache,
	}

	res := &Result{}
	b.placeAll(questions, res)
	res.QuestionPages = pdf.PageCount()

	wm := resolveWatermark(in.Options.Watermark, cfg.DefaultWatermark)
	// The key page is appended before the footer pass revisits earlier pages;
	// gofpdf appends pages at the document tail only.
	b.answerKey(questions, in.Options.IncludeAnswerKey, wm, res)
	b.finishPages(wm, res.QuestionPages)
	b.stampMetadata(a.now())

	if pdf.Err() {
		return nil, fmt.Errorf("compose: document state: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("compose: serialize: %w", err)
	}
	res.PDF = buf.Bytes()
	res.PageCount = pdf.PageCount()
	return res, nil
}

// build carries the per-build state shared by the placement loop and the
// page-finishing passes.
type build struct {
	ctx     context.Context
	pdf     *gofpdf.Fpdf
	plugin  theme.Plugin
	cfg     theme.Config
	params  layout.Params
	spacing float64
	meta    booklet.ThemedMetadata
	cache   *assets.Cache

	area     layout.ContentArea
	haveArea bool
	hiddenKW string
}

func (b *build) pageContext() theme.PageContext {
	n := b.pdf.PageNo()
	return theme.PageContext{PDF: b.pdf, Meta: b.meta, PageNumber: n, FirstPage: n == 1}
}

// newPage starts a fresh question page: background (or plain white), theme
// header on the first page, continuation header after, column decorations,
// and a fresh content area.
func (b *build) newPage() {
	b.pdf.AddPage()
	if bg, ok := b.cache.Resolve(b.ctx, b.cfg); ok {
		render.DrawBackground(b.pdf, bg)
	}
	pc := b.pageContext()
	if pc.FirstPage {
		b.plugin.RenderHeader(pc)
	} else {
		render.ContinuationHeader(b.pdf, b.meta, b.cfg.Palette)
	}
	b.area = layout.Open(geom.ContentTop(), b.cfg.Columns)
	b.haveArea = true
	render.DrawColumnDividers(pc, b.plugin, b.area)
}

// placeAll streams every question onto pages: fit the current column, else
// the next column, else a new page. Questions that cannot fit any fresh
// column at natural size take the force-fit path so the loop always
// terminates.
func (b *build) placeAll(questions []booklet.Question, res *Result) {
	for _, q := range questions {
		for {
			if !b.haveArea {
				b.newPage()
			}
			if l, ok := layout.Place(q, b.area, b.spacing, b.params); ok {
				render.DrawQuestion(b.pageContext(), b.plugin, render.PlacedQuestion{Question: q, Layout: l})
				b.area = b.area.Consume(l.Consumed(), b.spacing)
				break
			}
			if next, ok := b.area.AdvanceColumn(); ok {
				b.area = next
				continue
			}
			if !layout.FitsFreshColumn(q, b.cfg.Columns, b.spacing, b.params) {
				b.forceFit(q, res)
				break
			}
			b.haveArea = false // page exhausted; retry same question on a new page
		}
	}
}

// forceFit places an oversized question alone on a fresh page, scaled down to
// the column maximum. The only path where an image is ever shrunk.
func (b *build) forceFit(q booklet.Question, res *Result) {
	b.newPage()
	l := layout.MaxPlacement(q, b.area, b.spacing, b.params)
	log.Printf("compose: question %d oversized (%dx%dpx), force-fit at %.2f scale",
		q.Number(), q.ActualWidth, q.ActualHeight, l.ScaleFactor)
	render.DrawQuestion(b.pageContext(), b.plugin, render.PlacedQuestion{Question: q, Layout: l, ForceFit: true})
	res.ForceFitted = append(res.ForceFitted, q.Number())
	b.haveArea = false // the page is spent
}

// finishPages runs the footer pass over every question page, then lays the
// watermark down last so it sits on top of the page's z-order. The answer-key
// page is excluded; it carries its own faint watermark and no footer.
func (b *build) finishPages(wm *booklet.WatermarkSpec, total int) {
	for n := 1; n <= total; n++ {
		b.pdf.SetPage(n)
		pc := theme.PageContext{PDF: b.pdf, Meta: b.meta, PageNumber: n, FirstPage: n == 1}
		b.plugin.RenderFooter(pc)
		if b.plugin.RenderWatermark(pc) {
			continue
		}
		if wm != nil {
			render.ApplyWatermark(b.pdf, *wm)
		}
	}
}

// answerKey emits exactly one of: a visible key page, the hidden keyword
// payload, or nothing.
func (b *build) answerKey(questions []booklet.Question, explicit *bool, wm *booklet.WatermarkSpec, res *Result) {
	include := b.cfg.IncludeAnswerKey
	if explicit != nil {
		include = *explicit
	}
	switch {
	case include:
		b.pdf.AddPage()
		render.DrawAnswerKey(b.pdf, b.plugin, b.meta, questions)
		if wm != nil {
			faint := wm.Attenuated(render.KeyWatermarkMaxOpacity)
			render.ApplyWatermark(b.pdf, faint)
		}
		res.AnswerKeyPage = true
	case b.cfg.AnswerKeyInMetadata:
		b.hiddenKW = render.KeywordString(questions)
		res.AnswerKeyInMetadata = true
	}
}

// stampMetadata writes the document info dictionary. All strings go through
// the ASCII transliteration; the basic PDF text encoding cannot carry the
// source alphabet.
func (b *build) stampMetadata(now time.Time) {
	m := b.meta
	b.pdf.SetTitle(m.TestName, false)
	b.pdf.SetAuthor(m.TeacherName, false)
	b.pdf.SetSubject(m.CourseName, false)
	b.pdf.SetCreator("examforge booklet composer", false)
	b.pdf.SetCreationDate(now)
	if b.hiddenKW != "" {
		b.pdf.SetKeywords(b.hiddenKW, false)
	}
}

// sanitizedMeta builds the themed metadata the renderer and the info
// dictionary share. Core PDF fonts only cover the basic encoding, so the
// transliteration applies to rendered header text as well.
func sanitizedMeta(m booklet.Metadata, custom map[string]string) booklet.ThemedMetadata {
	tm := booklet.Augment(m, custom)
	tm.TestName = booklet.SanitizeASCII(tm.TestName)
	tm.CourseName = booklet.SanitizeASCII(tm.CourseName)
	tm.ClassName = booklet.SanitizeASCII(tm.ClassName)
	tm.TeacherName = booklet.SanitizeASCII(tm.TeacherName)
	tm.SchoolName = booklet.SanitizeASCII(tm.SchoolName)
	tm.StudentName = booklet.SanitizeASCII(tm.StudentName)
	tm.ExamCode = booklet.SanitizeASCII(tm.ExamCode)
	tm.BookletNumber = booklet.SanitizeASCII(tm.BookletNumber)
	return tm
}

func resolveSpacing(requested int, themeDefault float64) float64 {
	if requested > 0 {
		return float64(requested)
	}
	return themeDefault
}

// resolveWatermark: explicit option wins, then the theme default, then none.
func resolveWatermark(explicit, themeDefault *booklet.WatermarkSpec) *booklet.WatermarkSpec {
	switch {
	case explicit != nil && explicit.Kind == booklet.WatermarkNone:
		return nil // caller explicitly disabled the theme default
	case explicit != nil && explicit.Drawable():
		return explicit
	case explicit != nil:
		return nil
	case themeDefault != nil:
		return themeDefault
	}
	return nil
}
