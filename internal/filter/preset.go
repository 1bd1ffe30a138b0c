package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Preset is a saved filter with a user-chosen name.
type Preset struct {
	Name      string    `json:"name"`
	Filter    *Filter   `json:"filter"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Presets is the named-preset store, persisted as one JSON file in the data
// directory.
type Presets struct {
	path    string
	byName  map[string]*Preset
	changed bool
}

// LoadPresets reads the preset file; a missing file yields an empty store.
func LoadPresets(path string) (*Presets, error) {
	p := &Presets{path: path, byName: make(map[string]*Preset)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}

	var list []*Preset
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	for _, preset := range list {
		if preset.Name != "" {
			p.byName[preset.Name] = preset
		}
	}
	return p, nil
}

// Save writes the store back to its file when anything changed.
func (p *Presets) Save() error {
	if !p.changed {
		return nil
	}
	data, err := json.MarshalIndent(p.List(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("writing presets: %w", err)
	}
	p.changed = false
	return nil
}

// Set stores a filter under the given name, replacing any existing preset
// with that name.
func (p *Presets) Set(name string, f *Filter) {
	now := time.Now().UTC()
	if existing, ok := p.byName[name]; ok {
		existing.Filter = f
		existing.UpdatedAt = now
	} else {
		p.byName[name] = &Preset{Name: name, Filter: f, CreatedAt: now, UpdatedAt: now}
	}
	p.changed = true
}

// Get looks up a preset by name.
func (p *Presets) Get(name string) (*Preset, bool) {
	preset, ok := p.byName[name]
	return preset, ok
}

// Remove deletes a preset; it reports whether the name existed.
func (p *Presets) Remove(name string) bool {
	if _, ok := p.byName[name]; !ok {
		return false
	}
	delete(p.byName, name)
	p.changed = true
	return true
}

// List returns every preset sorted by name.
func (p *Presets) List() []*Preset {
	out := make([]*Preset, 0, len(p.byName))
	for _, preset := range p.byName {
		out = append(out, preset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
