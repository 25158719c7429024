// Package theme holds the display preference model for the generated
// site: a light/dark mode and a color palette, persisted to a key-value
// store and reflected onto rendered documents.
package theme

import "fmt"

// Mode is the display theme. It is always exactly light or dark.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Preference store keys. These match the local-storage keys used by the
// published site's runtime script, so the baked state and the browser
// state describe the same thing.
const (
	KeyTheme   = "theme"
	KeyPalette = "palette"
)

// DefaultPalette is the palette used when nothing else is configured.
const DefaultPalette = "slate"

// ValidMode reports whether s is one of the two recognized modes.
func ValidMode(s string) bool {
	return s == string(ModeLight) || s == string(ModeDark)
}

// ResolveMode resolves the active mode through the fallback chain:
// stored value, then the configured site default, then the OS
// color-scheme preference. It always returns light or dark.
func ResolveMode(stored, siteDefault string, systemDark bool) Mode {
	if ValidMode(stored) {
		return Mode(stored)
	}
	if ValidMode(siteDefault) {
		return Mode(siteDefault)
	}
	if systemDark {
		return ModeDark
	}
	return ModeLight
}

// ResolvePalette resolves the active palette: stored value, then the
// site-injected default, then DefaultPalette.
func ResolvePalette(stored, injected string) string {
	if stored != "" {
		return stored
	}
	if injected != "" {
		return injected
	}
	return DefaultPalette
}

// Preference is the pair of orthogonal display axes.
type Preference struct {
	Mode    Mode
	Palette string
}

// Toggled returns the preference with the opposite mode.
func (p Preference) Toggled() Preference {
	if p.Mode == ModeDark {
		p.Mode = ModeLight
	} else {
		p.Mode = ModeDark
	}
	return p
}

// KV is the persistence surface the store needs. *prefstore.Store
// satisfies it.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store holds the in-memory preference backed by a KV store. It is an
// explicit object passed to callers; there is no package-global state.
type Store struct {
	kv   KV
	pref Preference
}

// NewStore opens a preference store over kv. Pre-existing persisted
// state is adopted as-is rather than overwritten; absent or malformed
// values fall through the resolution chain using the given site default
// and OS color-scheme result.
func NewStore(kv KV, siteDefault string, defaultPalette string, systemDark bool) (*Store, error) {
	storedMode, _, err := kv.Get(KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("reading stored theme: %w", err)
	}
	storedPalette, _, err := kv.Get(KeyPalette)
	if err != nil {
		return nil, fmt.Errorf("reading stored palette: %w", err)
	}

	return &Store{
		kv: kv,
		pref: Preference{
			Mode:    ResolveMode(storedMode, siteDefault, systemDark),
			Palette: ResolvePalette(storedPalette, defaultPalette),
		},
	}, nil
}

// Preference returns the current in-memory preference.
func (s *Store) Preference() Preference {
	return s.pref
}

// SetMode adopts a mode. Invalid values are ignored so the invariant
// that the mode is always light or dark holds.
func (s *Store) SetMode(m Mode) {
	if ValidMode(string(m)) {
		s.pref.Mode = m
	}
}

// SetPalette adopts a palette identifier. Empty selections are ignored.
func (s *Store) SetPalette(p string) {
	if p != "" {
		s.pref.Palette = p
	}
}

// Toggle flips light/dark and returns the new mode.
func (s *Store) Toggle() Mode {
	s.pref = s.pref.Toggled()
	return s.pref.Mode
}

// Save persists the current preference. Writes are idempotent and
// last-write-wins; there is no conflict resolution to do for a
// single-operator store.
func (s *Store) Save() error {
	if err := s.kv.Set(KeyTheme, string(s.pref.Mode)); err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	if err := s.kv.Set(KeyPalette, s.pref.Palette); err != nil {
		return fmt.Errorf("persisting palette: %w", err)
	}
	return nil
}
