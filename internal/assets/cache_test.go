package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/examforge/booklet/internal/theme"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 240, G: 240, B: 250, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type fakeFetcher struct {
	calls map[string]int
	data  map[string][]byte
	err   error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{calls: map[string]int{}, data: map[string][]byte{}}
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	f.calls[path]++
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.data[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func themeCfg(paths ...string) theme.Config {
	return theme.Config{ID: "t", BackgroundPaths: paths}
}

func TestResolveCachesAfterFirstFetch(t *testing.T) {
	f := newFakeFetcher()
	f.data["a.png"] = pngBytes(t, 4, 4)
	c := NewCache(f)

	bg, ok := c.Resolve(context.Background(), themeCfg("a.png"))
	if !ok || bg == nil {
		t.Fatal("expected background")
	}
	if bg.Format != "PNG" || bg.Width != 4 {
		t.Errorf("bg = %q %dx%d", bg.Format, bg.Width, bg.Height)
	}
	if _, ok := c.Resolve(context.Background(), themeCfg("a.png")); !ok {
		t.Fatal("second resolve missed")
	}
	if f.calls["a.png"] != 1 {
		t.Errorf("fetch count = %d, want 1", f.calls["a.png"])
	}
}

func TestResolveCandidatePriority(t *testing.T) {
	f := newFakeFetcher()
	f.data["fallback.png"] = pngBytes(t, 2, 2)
	c := NewCache(f)

	_, ok := c.Resolve(context.Background(), themeCfg("missing.png", "fallback.png"))
	if !ok {
		t.Fatal("expected fallback candidate to win")
	}
	if f.calls["missing.png"] != 1 || f.calls["fallback.png"] != 1 {
		t.Errorf("calls = %v", f.calls)
	}
}

func TestFailureIsSticky(t *testing.T) {
	f := newFakeFetcher()
	f.err = errors.New("boom")
	c := NewCache(f)
	cfg := themeCfg("a.png")

	if _, ok := c.Resolve(context.Background(), cfg); ok {
		t.Fatal("expected miss")
	}
	before := c.Fetches()
	if _, ok := c.Resolve(context.Background(), cfg); ok {
		t.Fatal("expected miss")
	}
	if c.Fetches() != before {
		t.Errorf("re-attempted after sticky failure: %d -> %d", before, c.Fetches())
	}
}

func TestResetAllowsFreshFetch(t *testing.T) {
	f := newFakeFetcher()
	f.data["a.png"] = pngBytes(t, 2, 2)
	c := NewCache(f)
	cfg := themeCfg("a.png")

	c.Resolve(context.Background(), cfg)
	c.Reset()
	c.Resolve(context.Background(), cfg)
	if f.calls["a.png"] != 2 {
		t.Errorf("fetches after reset = %d, want 2", f.calls["a.png"])
	}
}

func TestNoBackgroundPathsNoFetch(t *testing.T) {
	f := newFakeFetcher()
	c := NewCache(f)
	if _, ok := c.Resolve(context.Background(), themeCfg()); ok {
		t.Fatal("theme without backgrounds resolved one")
	}
	if len(f.calls) != 0 {
		t.Errorf("unexpected fetches: %v", f.calls)
	}
}

func TestCorruptBytesFallThrough(t *testing.T) {
	f := newFakeFetcher()
	f.data["bad.png"] = []byte("\x89PNG\r\n\x1a\nnot really a png")
	f.data["good.png"] = pngBytes(t, 2, 2)
	c := NewCache(f)

	bg, ok := c.Resolve(context.Background(), themeCfg("bad.png", "good.png"))
	if !ok {
		t.Fatal("expected the second candidate")
	}
	if bg.Width != 2 {
		t.Errorf("unexpected background %+v", bg)
	}
}

func TestHTTPFetcher(t *testing.T) {
	payload := pngBytes(t, 3, 3)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/themes/ok.png" {
			w.Write(payload)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL)
	got, err := f.Fetch(context.Background(), "themes/ok.png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("payload mismatch")
	}
	if _, err := f.Fetch(context.Background(), "themes/missing.png"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestSniffFormat(t *testing.T) {
	if got := SniffFormat(pngBytes(t, 1, 1)); got != "PNG" {
		t.Errorf("png sniff = %q", got)
	}
	if got := SniffFormat([]byte{0xff, 0xd8, 0xff, 0xe0}); got != "JPG" {
		t.Errorf("jpg sniff = %q", got)
	}
	if got := SniffFormat([]byte("GIF89a")); got != "GIF" {
		t.Errorf("gif sniff = %q", got)
	}
	if got := SniffFormat([]byte("plain text")); got != "" {
		t.Errorf("sniff = %q, want empty", got)
	}
}
