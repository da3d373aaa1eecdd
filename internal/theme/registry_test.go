package theme

import (
	"testing"

	"github.com/examforge/booklet/internal/booklet"
)

func TestResolveFallsBackToDefault(t *testing.T) {
	p := Resolve("no-such-theme")
	if p == nil {
		t.Fatal("Resolve returned nil")
	}
	if p.Config().ID != DefaultThemeID {
		t.Errorf("fallback theme = %q, want %q", p.Config().ID, DefaultThemeID)
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "academic", "minimal"} {
		if _, ok := Lookup(id); !ok {
			t.Errorf("theme %q not registered", id)
		}
	}
}

func TestNormalizeAtRegistration(t *testing.T) {
	Register(&struct{ BaseTheme }{BaseTheme{Cfg: Config{
		ID:      "bogus-test-theme",
		Columns: 9,
		Spacing: -3,
	}}})
	p, ok := Lookup("bogus-test-theme")
	if !ok {
		t.Fatal("not registered")
	}
	cfg := p.Config()
	if cfg.Columns != 2 {
		t.Errorf("Columns = %d, want clamped 2", cfg.Columns)
	}
	if cfg.Spacing != 5 {
		t.Errorf("Spacing = %v, want default 5", cfg.Spacing)
	}
	if cfg.ImageScaleBoost != 1.0 {
		t.Errorf("ImageScaleBoost = %v, want default 1.0", cfg.ImageScaleBoost)
	}
	if cfg.BoxStyle != BoxNone {
		t.Errorf("BoxStyle = %q, want %q", cfg.BoxStyle, BoxNone)
	}
}

func TestNormalizeDropsEmptyWatermark(t *testing.T) {
	Register(&struct{ BaseTheme }{BaseTheme{Cfg: Config{
		ID:               "wm-test-theme",
		DefaultWatermark: &booklet.WatermarkSpec{Kind: booklet.WatermarkText}, // no content
	}}})
	p, _ := Lookup("wm-test-theme")
	if p.Config().DefaultWatermark != nil {
		t.Error("undrawable default watermark should normalize to nil")
	}
}

func TestAcademicBoost(t *testing.T) {
	p, _ := Lookup("academic")
	if got := p.Config().ImageScaleBoost; got != 1.3 {
		t.Errorf("academic boost = %v, want 1.3", got)
	}
	if params := p.Config().LayoutParams(); params.ImageScaleBoost != 1.3 {
		t.Errorf("LayoutParams boost = %v", params.ImageScaleBoost)
	}
}

func TestMinimalKeyInMetadata(t *testing.T) {
	p, _ := Lookup("minimal")
	cfg := p.Config()
	if cfg.IncludeAnswerKey || !cfg.AnswerKeyInMetadata {
		t.Errorf("minimal answer-key flags = visible:%v metadata:%v", cfg.IncludeAnswerKey, cfg.AnswerKeyInMetadata)
	}
}
