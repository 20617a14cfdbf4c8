package ux

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"portfolio/internal/watch"
)

// PreferencesVersion is the current schema version for preferences.json.
const PreferencesVersion = "1.0"

// Preferences is the persisted viewer state.
type Preferences struct {
	// Version is the schema version
	Version string `json:"version"`

	// ReducedMotion is nil until the viewer makes a choice; the
	// environment and config decide until then.
	ReducedMotion *bool `json:"reduced_motion,omitempty"`

	// Theme is light, dark or system.
	Theme Theme `json:"theme"`
}

// DefaultPreferences returns preferences for a first run.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Version: PreferencesVersion,
		Theme:   ThemeSystem,
	}
}

// ResolveReducedMotion returns the stored choice, or fallback when the
// viewer has not chosen.
func (p *Preferences) ResolveReducedMotion(fallback bool) bool {
	if p == nil || p.ReducedMotion == nil {
		return fallback
	}
	return *p.ReducedMotion
}

func (p *Preferences) clone() *Preferences {
	c := *p
	if p.ReducedMotion != nil {
		v := *p.ReducedMotion
		c.ReducedMotion = &v
	}
	return &c
}

// PreferencesManager handles loading/saving preferences.
type PreferencesManager struct {
	mu          sync.RWMutex
	path        string
	preferences *Preferences
}

// NewPreferencesManager creates a manager for the preferences file at path.
func NewPreferencesManager(path string) *PreferencesManager {
	return &PreferencesManager{path: path}
}

// Path returns the preferences file location.
func (pm *PreferencesManager) Path() string {
	return pm.path
}

// Load reads preferences from disk, using defaults if the file does not
// exist. Missing fields are filled from the defaults.
func (pm *PreferencesManager) Load() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	data, err := os.ReadFile(pm.path)
	if err != nil {
		if os.IsNotExist(err) {
			pm.preferences = DefaultPreferences()
			return nil
		}
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs := DefaultPreferences()
	if err := json.Unmarshal(data, prefs); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	if _, err := ParseTheme(string(prefs.Theme)); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	if prefs.Theme == "" {
		prefs.Theme = ThemeSystem
	}
	prefs.Version = PreferencesVersion

	pm.preferences = prefs
	return nil
}

// Save writes preferences to disk.
func (pm *PreferencesManager) Save() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.preferences == nil {
		pm.preferences = DefaultPreferences()
	}

	dir := filepath.Dir(pm.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(pm.preferences, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(pm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}

// Get returns a copy of the current preferences (thread-safe).
func (pm *PreferencesManager) Get() *Preferences {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if pm.preferences == nil {
		return DefaultPreferences()
	}
	return pm.preferences.clone()
}

// SetTheme records the theme. Call Save to persist.
func (pm *PreferencesManager) SetTheme(theme Theme) {
	pm.update(func(p *Preferences) { p.Theme = theme })
}

// SetReducedMotion records the viewer's reduced-motion choice.
func (pm *PreferencesManager) SetReducedMotion(reduced bool) {
	pm.update(func(p *Preferences) { p.ReducedMotion = &reduced })
}

// CycleTheme advances the theme (light, dark, system) and returns it.
func (pm *PreferencesManager) CycleTheme() Theme {
	var next Theme
	pm.update(func(p *Preferences) {
		p.Theme = p.Theme.Next()
		next = p.Theme
	})
	return next
}

func (pm *PreferencesManager) update(fn func(*Preferences)) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.preferences == nil {
		pm.preferences = DefaultPreferences()
	}
	fn(pm.preferences)
}

// Watch returns a watcher that reloads the file on change and passes the
// fresh preferences to onChange. Unreadable files are logged and ignored.
func (pm *PreferencesManager) Watch(logger *zap.Logger, onChange func(*Preferences)) (*watch.FileWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return watch.New(pm.path, func(string) {
		if err := pm.Load(); err != nil {
			logger.Warn("preferences reload rejected", zap.Error(err))
			return
		}
		prefs := pm.Get()
		logger.Debug("preferences reloaded",
			zap.String("theme", string(prefs.Theme)),
			zap.Bool("reduced_motion", prefs.ResolveReducedMotion(false)))
		if onChange != nil {
			onChange(prefs)
		}
	}, watch.WithLogger(logger))
}
