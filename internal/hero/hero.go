package hero

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Hero is a named entity with a strength value
type Hero struct {
	ID       int     `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Strength float64 `yaml:"strength" json:"strength"`
}

// Roster is an ordered list of heroes
type Roster []Hero

// UnmarshalYAML rejects entries without a strength key
func (h *Hero) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ID       int      `yaml:"id"`
		Name     string   `yaml:"name"`
		Strength *float64 `yaml:"strength"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Strength == nil {
		return fmt.Errorf("hero %d (%s): missing strength", raw.ID, raw.Name)
	}
	*h = Hero{ID: raw.ID, Name: raw.Name, Strength: *raw.Strength}
	return nil
}

type rosterFile struct {
	Heroes Roster `yaml:"heroes"`
}

// ErrNotFound is returned by Find when no hero has the requested ID
var ErrNotFound = errors.New("hero not found")

// LoadRoster reads a YAML roster file with a top-level "heroes" list
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read %q: %w", path, err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes and validates roster YAML
func ParseRoster(data []byte) (Roster, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("roster: parse: %w", err)
	}
	if err := f.Heroes.Validate(); err != nil {
		return nil, err
	}
	return f.Heroes, nil
}

// Validate checks for empty names and duplicate IDs
func (r Roster) Validate() error {
	seen := make(map[int]struct{}, len(r))
	for i, h := range r {
		if h.Name == "" {
			return fmt.Errorf("roster: hero at index %d has no name", i)
		}
		if _, dup := seen[h.ID]; dup {
			return fmt.Errorf("roster: duplicate hero id %d", h.ID)
		}
		seen[h.ID] = struct{}{}
	}
	return nil
}

// Find returns the hero with the given ID
func (r Roster) Find(id int) (Hero, error) {
	for _, h := range r {
		if h.ID == id {
			return h, nil
		}
	}
	return Hero{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}
