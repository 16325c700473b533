package ecs

import (
	"fmt"
	"slices"
)

// slot is one entity's component mapping plus its composition mask.
type slot struct {
	mask  Mask
	comps map[ComponentType]any
}

// ComponentStore owns every component instance. It indexes them by entity
// (for composition checks) and by type (for type-centric bulk queries);
// both paths are updated together.
type ComponentStore struct {
	byEntity map[EntityID]*slot
	byType   map[ComponentType]map[EntityID]any
}

func NewComponentStore(capacity int) *ComponentStore {
	return &ComponentStore{
		byEntity: make(map[EntityID]*slot, capacity),
		byType:   make(map[ComponentType]map[EntityID]any, 16),
	}
}

// AddSlot creates the empty component mapping for a new entity.
func (s *ComponentStore) AddSlot(id EntityID) error {
	if _, ok := s.byEntity[id]; ok {
		return fmt.Errorf("entity %d: %w", id, ErrSlotExists)
	}
	s.byEntity[id] = &slot{comps: make(map[ComponentType]any, 4)}
	return nil
}

// RemoveSlot discards an entity's mapping and its by-type entries.
func (s *ComponentStore) RemoveSlot(id EntityID) {
	sl, ok := s.byEntity[id]
	if !ok {
		return
	}
	for ct := range sl.comps {
		delete(s.byType[ct], id)
	}
	delete(s.byEntity, id)
}

func (s *ComponentStore) HasSlot(id EntityID) bool {
	_, ok := s.byEntity[id]
	return ok
}

// Add stores c as the entity's ct component, replacing any previous instance.
func (s *ComponentStore) Add(id EntityID, ct ComponentType, c any) error {
	sl, ok := s.byEntity[id]
	if !ok {
		return fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	sl.comps[ct] = c
	sl.mask.Set(ct)
	byID, ok := s.byType[ct]
	if !ok {
		byID = make(map[EntityID]any, 64)
		s.byType[ct] = byID
	}
	byID[id] = c
	return nil
}

// Remove deletes the entity's ct component. A missing component is a no-op.
func (s *ComponentStore) Remove(id EntityID, ct ComponentType) error {
	sl, ok := s.byEntity[id]
	if !ok {
		return fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	if _, ok := sl.comps[ct]; !ok {
		return nil
	}
	delete(sl.comps, ct)
	sl.mask.Clear(ct)
	delete(s.byType[ct], id)
	return nil
}

func (s *ComponentStore) Get(id EntityID, ct ComponentType) (any, bool) {
	sl, ok := s.byEntity[id]
	if !ok {
		return nil, false
	}
	c, ok := sl.comps[ct]
	return c, ok
}

// Components returns the entity's instances ordered by component type.
func (s *ComponentStore) Components(id EntityID) ([]any, error) {
	sl, ok := s.byEntity[id]
	if !ok {
		return nil, fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	out := make([]any, 0, len(sl.comps))
	for _, ct := range sl.mask.Types() {
		out = append(out, sl.comps[ct])
	}
	return out, nil
}

func (s *ComponentStore) Mask(id EntityID) (Mask, bool) {
	sl, ok := s.byEntity[id]
	if !ok {
		return Mask{}, false
	}
	return sl.mask, true
}

// OfType lists the entities holding a ct component, ascending by id.
func (s *ComponentStore) OfType(ct ComponentType) []EntityID {
	byID := s.byType[ct]
	out := make([]EntityID, 0, len(byID))
	for id := range byID {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// CountOf returns how many entities hold a ct component.
func (s *ComponentStore) CountOf(ct ComponentType) int {
	return len(s.byType[ct])
}
