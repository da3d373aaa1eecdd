// Package http is the thin transport layer over the composition engine: the
// upstream UI posts finished question records and receives PDF bytes back.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/examforge/booklet/internal/booklet"
	"github.com/examforge/booklet/internal/compose"
	"github.com/examforge/booklet/internal/theme"
)

// ComposeRequest is the POST /api/booklets payload. Question image bytes
// travel base64-encoded inside the JSON body.
type ComposeRequest struct {
	Metadata  booklet.Metadata          `json:"metadata"`
	Options   booklet.GenerationOptions `json:"options"`
	Questions []booklet.Question        `json:"questions"`
}

// ComposeHandler runs one booklet build per request and streams the bytes.
func ComposeHandler(a *compose.Assembler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComposeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}

		buildID := uuid.NewString()
		res, err := a.Build(r.Context(), compose.BuildInput{
			Metadata:  req.Metadata,
			Questions: req.Questions,
			Options:   req.Options,
		})
		if err != nil {
			log.Printf("api: build %s failed: %v", buildID, err)
			status := http.StatusInternalServerError
			if errors.Is(err, compose.ErrBadMetadata) || errors.Is(err, compose.ErrNoQuestions) {
				status = http.StatusUnprocessableEntity
			}
			http.Error(w, "build failed: "+err.Error(), status)
			return
		}

		log.Printf("api: build %s ok: %d pages, %d bytes", buildID, res.PageCount, len(res.PDF))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Length", strconv.Itoa(len(res.PDF)))
		w.Header().Set("X-Build-ID", buildID)
		w.Header().Set("X-Page-Count", strconv.Itoa(res.PageCount))
		_, _ = w.Write(res.PDF)
	}
}

// ThemeInfo is one entry of the GET /api/themes listing the UI's theme
// picker consumes.
type ThemeInfo struct {
	ID               string `json:"id"`
	DisplayName      string `json:"display_name"`
	Columns          int    `json:"columns"`
	IncludeAnswerKey bool   `json:"include_answer_key"`
	HasWatermark     bool   `json:"has_watermark"`
}

// ThemesHandler lists the registered themes.
func ThemesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := theme.IDs()
		sort.Strings(ids)
		out := make([]ThemeInfo, 0, len(ids))
		for _, id := range ids {
			p, ok := theme.Lookup(id)
			if !ok {
				continue
			}
			cfg := p.Config()
			out = append(out, ThemeInfo{
				ID:               cfg.ID,
				DisplayName:      cfg.DisplayName,
				Columns:          cfg.Columns,
				IncludeAnswerKey: cfg.IncludeAnswerKey,
				HasWatermark:     cfg.DefaultWatermark != nil,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}
