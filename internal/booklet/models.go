// Package booklet defines the input records the composition engine consumes:
// cropped question images, booklet metadata and per-build generation options.
// The records arrive fully formed from the cropping UI; the engine performs
// no validation of upstream cropping correctness.
package booklet

import "fmt"

// AnswerLetter is a single-choice answer, A through E.
type AnswerLetter string

const (
	AnswerA AnswerLetter = "A"
	AnswerB AnswerLetter = "B"
	AnswerC AnswerLetter = "C"
	AnswerD AnswerLetter = "D"
	AnswerE AnswerLetter = "E"
)

// Valid reports whether the letter is one of A..E.
func (a AnswerLetter) Valid() bool {
	switch a {
	case AnswerA, AnswerB, AnswerC, AnswerD, AnswerE:
		return true
	}
	return false
}

// Question is one cropped question region, immutable once handed to the
// engine. Image holds the pre-rasterized, losslessly encoded crop bytes;
// ActualWidth/ActualHeight are its real pixel dimensions.
type Question struct {
	ID               string       `json:"id"`
	Image            []byte       `json:"image"` // base64 over the wire
	CorrectAnswer    AnswerLetter `json:"correct_answer"`
	Order            int          `json:"order"` // print sequence; numbering is order+1
	SourceDocumentID string       `json:"source_document_id,omitempty"`
	ActualWidth      int          `json:"actual_width"`  // px
	ActualHeight     int          `json:"actual_height"` // px
}

// Number is the printed 1-based question number.
func (q Question) Number() int { return q.Order + 1 }

// Metadata is the read-only booklet metadata from the configuration form.
type Metadata struct {
	TestName        string            `json:"test_name"`
	CourseName      string            `json:"course_name"`
	ClassName       string            `json:"class_name"`
	TeacherName     string            `json:"teacher_name"`
	QuestionSpacing int               `json:"question_spacing"` // pt between questions
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
}

// ThemedMetadata augments Metadata with the theme-specific fields some
// headers print. The base Metadata is never mutated; Augment copies.
type ThemedMetadata struct {
	Metadata
	SchoolName    string
	StudentName   string
	ExamCode      string
	BookletNumber string
}

// Augment builds a ThemedMetadata from the base record plus custom fields
// supplied at generation time. Option fields win over metadata fields.
func Augment(m Metadata, custom map[string]string) ThemedMetadata {
	tm := ThemedMetadata{Metadata: m}
	pick := func(key string) string {
		if v, ok := custom[key]; ok {
			return v
		}
		return m.CustomFields[key]
	}
	tm.SchoolName = pick("school_name")
	tm.StudentName = pick("student_name")
	tm.ExamCode = pick("exam_code")
	tm.BookletNumber = pick("booklet_number")
	return tm
}

// GenerationOptions selects the theme and per-build overrides.
type GenerationOptions struct {
	ThemeID          string            `json:"theme_id"`
	Watermark        *WatermarkSpec    `json:"watermark,omitempty"`
	IncludeAnswerKey *bool             `json:"include_answer_key,omitempty"` // nil = theme default
	CustomFields     map[string]string `json:"custom_fields,omitempty"`
}

// Validate checks the minimal structure a build needs. Anything beyond this
// degrades gracefully during rendering instead of failing here.
func (m Metadata) Validate() error {
	if m.TestName == "" {
		return fmt.Errorf("metadata: test_name is required")
	}
	return nil
}
