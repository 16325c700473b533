package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Blueprint describes a batch of entities spawned with the same components.
type Blueprint struct {
	Name       string
	Count      int
	Components []string // registered component names
}

// BlueprintTable holds blueprints in file order.
type BlueprintTable struct {
	blueprints []*Blueprint
	byName     map[string]*Blueprint
}

// Get returns a blueprint by name, or nil if not found.
func (t *BlueprintTable) Get(name string) *Blueprint {
	return t.byName[name]
}

func (t *BlueprintTable) All() []*Blueprint {
	return t.blueprints
}

// Count returns the number of blueprints loaded.
func (t *BlueprintTable) Count() int {
	return len(t.blueprints)
}

// Total returns how many entities the whole table spawns.
func (t *BlueprintTable) Total() int {
	n := 0
	for _, bp := range t.blueprints {
		n += bp.Count
	}
	return n
}

type blueprintYAMLEntry struct {
	Name       string   `yaml:"name"`
	Count      *int     `yaml:"count"`
	Components []string `yaml:"components"`
}

type blueprintListFile struct {
	Blueprints []blueprintYAMLEntry `yaml:"blueprints"`
}

// LoadBlueprints loads entity blueprints from a YAML file.
func LoadBlueprints(path string) (*BlueprintTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blueprints: %w", err)
	}
	return ParseBlueprints(raw)
}

func ParseBlueprints(raw []byte) (*BlueprintTable, error) {
	var f blueprintListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse blueprints: %w", err)
	}

	t := &BlueprintTable{
		blueprints: make([]*Blueprint, 0, len(f.Blueprints)),
		byName:     make(map[string]*Blueprint, len(f.Blueprints)),
	}
	for i, entry := range f.Blueprints {
		if entry.Name == "" {
			return nil, fmt.Errorf("parse blueprints: entry %d has no name", i)
		}
		if _, dup := t.byName[entry.Name]; dup {
			return nil, fmt.Errorf("parse blueprints: duplicate blueprint %q", entry.Name)
		}
		count := 1 // omitted count spawns one
		if entry.Count != nil {
			count = *entry.Count
		}
		if count < 0 {
			return nil, fmt.Errorf("parse blueprints: %q has negative count %d", entry.Name, count)
		}
		bp := &Blueprint{
			Name:       entry.Name,
			Count:      count,
			Components: entry.Components,
		}
		t.blueprints = append(t.blueprints, bp)
		t.byName[bp.Name] = bp
	}
	return t, nil
}
