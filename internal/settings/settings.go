// Package settings loads crosswalk configuration from crosswalk.yaml.
//
// Every field is optional; Resolved fills in the published workbook URL,
// the canonical tab names, and a default output location, so a missing
// settings file means "generate the standard report".
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"crosswalk/internal/controls"
)

// Settings holds crosswalk configuration from crosswalk.yaml.
type Settings struct {
	Source Source            `yaml:"source"`
	Tabs   map[string]string `yaml:"tabs"` // keys: high, moderate, low
	Output Output            `yaml:"output"`
}

// Source selects where the workbook comes from. File wins over URL when
// both are set.
type Source struct {
	URL  string `yaml:"url"`
	File string `yaml:"file"`
}

// Output controls where and how the report is written.
type Output struct {
	Dir   string `yaml:"dir"`
	Title string `yaml:"title"`
}

// DefaultURL is the published FedRAMP baseline workbook.
const DefaultURL = "https://fedramp.gov/assets/resources/documents/FedRAMP_Security_Controls_Baseline.xlsx"

// Load reads the settings file at path. Returns (nil, nil) if the file
// does not exist; callers pass the nil result straight to Resolved.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// Resolved is a Settings with every default applied.
type Resolved struct {
	URL   string
	File  string
	Tabs  map[controls.Baseline]string
	Dir   string
	Title string
}

// Resolve applies defaults over s. Safe to call on a nil receiver.
func (s *Settings) Resolve() Resolved {
	r := Resolved{
		URL:   DefaultURL,
		Dir:   "report",
		Title: "fedramp controls comparison",
		Tabs:  make(map[controls.Baseline]string, 3),
	}
	for _, b := range controls.AllBaselines {
		r.Tabs[b] = b.TabName()
	}
	if s == nil {
		return r
	}
	if s.Source.URL != "" {
		r.URL = s.Source.URL
	}
	r.File = s.Source.File
	if s.Output.Dir != "" {
		r.Dir = s.Output.Dir
	}
	if s.Output.Title != "" {
		r.Title = s.Output.Title
	}
	for key, b := range map[string]controls.Baseline{
		"high":     controls.High,
		"moderate": controls.Moderate,
		"low":      controls.Low,
	} {
		if name, ok := s.Tabs[key]; ok && name != "" {
			r.Tabs[b] = name
		}
	}
	return r
}
