package theme

// Registry of theme plugins by id, populated from init() in this package the
// same way format adapters self-register. Read-only after process start.
var registry = map[string]Plugin{}

// DefaultThemeID is used whenever a requested theme is unknown. Falling back
// beats failing the whole generation over a stale theme id.
const DefaultThemeID = "classic"

// Register adds a plugin under its config id. The config is normalized first
// so lookups always return a fully populated, validated bundle.
func Register(p Plugin) {
	cfg := normalize(p.Config())
	registry[cfg.ID] = &validated{Plugin: p, cfg: cfg}
}

// validated pins the normalized config over the raw plugin's.
type validated struct {
	Plugin
	cfg Config
}

func (v *validated) Config() Config { return v.cfg }

// Lookup returns the plugin registered under id.
func Lookup(id string) (Plugin, bool) {
	p, ok := registry[id]
	return p, ok
}

// Resolve returns the plugin for id, or the default theme for unknown ids.
func Resolve(id string) Plugin {
	if p, ok := registry[id]; ok {
		return p
	}
	return Default()
}

// Default returns the classic theme.
func Default() Plugin { return registry[DefaultThemeID] }

// IDs lists the registered theme identifiers.
func IDs() []string {
	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	return out
}
