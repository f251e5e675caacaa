// Package prefs keeps per-user preferences between runs: the last chosen
// game, difficulty and player name. Data is stored as YAML through gdata;
// without a gdata manager preferences live in memory only.
package prefs

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; it selects the storage directory.
const AppName = "monster_hunt"

const (
	prefsObject   = "prefs"
	prefsProperty = "user"
)

// Prefs holds the user's remembered choices.
type Prefs struct {
	LastGame   string `yaml:"last_game"`
	Difficulty string `yaml:"difficulty"`
	PlayerName string `yaml:"player_name"`
	ShowHelp   bool   `yaml:"show_help"`
}

// Default returns preferences for a first run.
func Default() Prefs {
	return Prefs{
		LastGame:   "monsters",
		Difficulty: "normal",
		ShowHelp:   true,
	}
}

// Manager loads and saves Prefs. A nil gdata manager keeps everything in
// memory.
type Manager struct {
	data  *gdata.Manager
	prefs Prefs
}

// Open opens gdata storage for appName and loads saved preferences.
// If storage is unavailable the manager falls back to memory.
func Open(appName string) *Manager {
	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("preferences will not persist", "err", err)
		data = nil
	}
	return New(data)
}

// New creates a manager over data, which may be nil, and loads saved
// preferences. Load failures fall back to defaults.
func New(data *gdata.Manager) *Manager {
	m := &Manager{data: data, prefs: Default()}
	if err := m.Load(); err != nil {
		log.Warn("using default preferences", "err", err)
	}
	return m
}

// Persistent reports whether preferences survive a restart.
func (m *Manager) Persistent() bool {
	return m.data != nil
}

// Load reads saved preferences. Missing data yields defaults.
func (m *Manager) Load() error {
	m.prefs = Default()
	if m.data == nil || !m.data.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("prefs: load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("prefs: decode: %w", err)
	}
	m.prefs = loaded
	return nil
}

// Save writes the current preferences. It is a no-op in memory mode.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := m.data.SaveObjectProp(prefsObject, prefsProperty, raw); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() Prefs {
	return m.prefs
}

// Update applies fn to the preferences and saves the result.
func (m *Manager) Update(fn func(*Prefs)) error {
	fn(&m.prefs)
	return m.Save()
}
