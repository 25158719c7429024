package theme

import (
	"testing"

	"github.com/hzidan/blogsmith/internal/prefstore"
)

// mapKV is an in-memory KV for tests.
type mapKV map[string]string

func (m mapKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapKV) Set(key, value string) error {
	m[key] = value
	return nil
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name        string
		stored      string
		siteDefault string
		systemDark  bool
		want        Mode
	}{
		{"stored wins", "dark", "light", false, ModeDark},
		{"stored wins over system", "light", "", true, ModeLight},
		{"site default when nothing stored", "", "dark", false, ModeDark},
		{"system dark when unconfigured", "", "", true, ModeDark},
		{"system light when unconfigured", "", "", false, ModeLight},
		{"malformed stored falls through", "blue", "", true, ModeDark},
		{"malformed site default falls through", "", "auto", false, ModeLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMode(tt.stored, tt.siteDefault, tt.systemDark)
			if got != tt.want {
				t.Errorf("ResolveMode(%q, %q, %v) = %q, want %q",
					tt.stored, tt.siteDefault, tt.systemDark, got, tt.want)
			}
		})
	}
}

func TestResolvePalette(t *testing.T) {
	tests := []struct {
		stored, injected, want string
	}{
		{"forest", "ember", "forest"},
		{"", "ember", "ember"},
		{"", "", DefaultPalette},
	}
	for _, tt := range tests {
		got := ResolvePalette(tt.stored, tt.injected)
		if got != tt.want {
			t.Errorf("ResolvePalette(%q, %q) = %q, want %q", tt.stored, tt.injected, got, tt.want)
		}
	}
}

func TestNewStoreAdoptsPersistedState(t *testing.T) {
	kv := mapKV{KeyTheme: "dark", KeyPalette: "violet"}

	s, err := NewStore(kv, "light", "slate", false)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	pref := s.Preference()
	if pref.Mode != ModeDark {
		t.Errorf("mode = %q, want dark (stored state must not be overwritten)", pref.Mode)
	}
	if pref.Palette != "violet" {
		t.Errorf("palette = %q, want violet", pref.Palette)
	}
}

func TestNewStoreResolutionWithoutStoredState(t *testing.T) {
	s, err := NewStore(mapKV{}, "", "", true)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	if got := s.Preference().Mode; got != ModeDark {
		t.Errorf("mode = %q, want dark from OS preference", got)
	}
	if got := s.Preference().Palette; got != DefaultPalette {
		t.Errorf("palette = %q, want default %q", got, DefaultPalette)
	}
}

func TestToggleFlipsBothWays(t *testing.T) {
	s, err := NewStore(mapKV{}, "light", "", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Toggle(); got != ModeDark {
		t.Errorf("first toggle = %q, want dark", got)
	}
	if got := s.Toggle(); got != ModeLight {
		t.Errorf("second toggle = %q, want light", got)
	}
}

func TestSetModeRejectsInvalid(t *testing.T) {
	s, err := NewStore(mapKV{}, "light", "", false)
	if err != nil {
		t.Fatal(err)
	}
	s.SetMode("sepia")
	if got := s.Preference().Mode; got != ModeLight {
		t.Errorf("mode = %q after invalid SetMode, want light", got)
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		kv := mapKV{}
		s, err := NewStore(kv, "", "", false)
		if err != nil {
			t.Fatal(err)
		}
		s.SetMode(mode)
		s.SetPalette("ember")

		if err := s.Save(); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if err := s.Save(); err != nil {
			t.Fatalf("second Save error: %v", err)
		}

		if kv[KeyTheme] != string(mode) {
			t.Errorf("stored theme = %q, want %q", kv[KeyTheme], mode)
		}
		if kv[KeyPalette] != "ember" {
			t.Errorf("stored palette = %q, want ember", kv[KeyPalette])
		}
	}
}

func TestClearedKeysFallBackToDefaults(t *testing.T) {
	kv, err := prefstore.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	s, err := NewStore(kv, "", "", false)
	if err != nil {
		t.Fatal(err)
	}
	s.SetMode(ModeDark)
	s.SetPalette("forest")
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	if err := kv.Delete(KeyTheme); err != nil {
		t.Fatal(err)
	}
	if err := kv.Delete(KeyPalette); err != nil {
		t.Fatal(err)
	}

	s, err = NewStore(kv, "", "", false)
	if err != nil {
		t.Fatal(err)
	}
	pref := s.Preference()
	if pref.Mode != ModeLight {
		t.Errorf("mode = %q after reset, want light", pref.Mode)
	}
	if pref.Palette != DefaultPalette {
		t.Errorf("palette = %q after reset, want %q", pref.Palette, DefaultPalette)
	}
}

func TestLookupFallsBackToDefault(t *testing.T) {
	p := Lookup("not-a-palette")
	if p.Name != DefaultPalette {
		t.Errorf("Lookup fallback = %q, want %q", p.Name, DefaultPalette)
	}
}

func TestPalettesSortedForSelectControl(t *testing.T) {
	ps := Palettes()
	if len(ps) < 2 {
		t.Fatalf("expected at least 2 palettes, got %d", len(ps))
	}
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Name >= ps[i].Name {
			t.Errorf("palettes not sorted: %q before %q", ps[i-1].Name, ps[i].Name)
		}
	}
}

func TestSurfacePerMode(t *testing.T) {
	p := Lookup(DefaultPalette)
	if p.Surface(ModeLight) == p.Surface(ModeDark) {
		t.Error("light and dark surfaces should differ")
	}
}
