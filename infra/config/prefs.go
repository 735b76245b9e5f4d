package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Prefs are the display preferences that persist across runs. They only
// shape rendering; none of them trigger a fetch on their own.
type Prefs struct {
	DepthLimit     int  `yaml:"depth_limit"`
	HideLowScore   bool `yaml:"hide_low_score"`
	AutoDepth      bool `yaml:"auto_depth"`
	ExportComments bool `yaml:"export_comments"`
}

// DefaultPrefs returns the out-of-the-box display preferences.
func DefaultPrefs() Prefs {
	return Prefs{
		DepthLimit:     2,
		HideLowScore:   true,
		AutoDepth:      true,
		ExportComments: true,
	}
}

// LoadPrefs reads the preferences file, falling back to defaults when it
// is missing or unreadable. Preference corruption never blocks startup.
func LoadPrefs(path string) Prefs {
	p := DefaultPrefs()
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPrefs()
	}
	if p.DepthLimit < 0 {
		p.DepthLimit = 0
	}
	return p
}

// SavePrefs writes the preferences file.
func SavePrefs(path string, p Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}
