package ecs

import (
	"fmt"
	"math"
)

// EntityID is an opaque entity identity. Ids start at 1 and are never reused;
// zero is reserved as the invalid marker.
type EntityID uint32

func (id EntityID) IsZero() bool { return id == 0 }

// EntityRegistry allocates entity ids and keeps the live list in creation order.
type EntityRegistry struct {
	entities []EntityID
	lastID   EntityID
}

func NewEntityRegistry(capacity int) *EntityRegistry {
	return &EntityRegistry{
		entities: make([]EntityID, 0, capacity),
	}
}

// Create allocates the next id and appends it to the live list.
func (r *EntityRegistry) Create() (EntityID, error) {
	if r.lastID == math.MaxUint32 {
		return 0, ErrEntityLimit
	}
	r.lastID++
	r.entities = append(r.entities, r.lastID)
	return r.lastID, nil
}

// Alive reports whether id was allocated by this registry.
// Ids are dense and never removed, so the counter bounds the live set.
func (r *EntityRegistry) Alive(id EntityID) bool {
	return !id.IsZero() && id <= r.lastID
}

func (r *EntityRegistry) Get(id EntityID) (EntityID, error) {
	if !r.Alive(id) {
		return 0, fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	return r.entities[id-1], nil
}

// All returns a copy of the live entities in creation order.
func (r *EntityRegistry) All() []EntityID {
	out := make([]EntityID, len(r.entities))
	copy(out, r.entities)
	return out
}

func (r *EntityRegistry) Len() int { return len(r.entities) }
