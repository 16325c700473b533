package ecs

import (
	"slices"

	"go.uber.org/zap"
)

// Filter is a live view of the entities whose composition contains a fixed
// set of required component types. It is bootstrapped from the world's
// entity list once and then maintained by composition-change notifications.
type Filter struct {
	world    *World
	mask     Mask
	entities []EntityID
	members  map[EntityID]int // position in entities
}

func newFilter(w *World, mask Mask) *Filter {
	f := &Filter{
		world:    w,
		mask:     mask,
		entities: make([]EntityID, 0, 64),
		members:  make(map[EntityID]int, 64),
	}
	for _, id := range w.Entities() {
		f.OnCompositionChanged(id)
	}
	return f
}

// IsValid reports whether the entity currently holds every required type.
func (f *Filter) IsValid(id EntityID) bool {
	m, ok := f.world.store.Mask(id)
	return ok && m.Contains(f.mask)
}

// OnCompositionChanged re-evaluates one entity. Adding a member twice or
// removing a non-member is a no-op. Removal moves the last member into the
// freed position.
func (f *Filter) OnCompositionChanged(id EntityID) {
	i, member := f.members[id]
	switch valid := f.IsValid(id); {
	case valid && !member:
		f.members[id] = len(f.entities)
		f.entities = append(f.entities, id)
	case !valid && member:
		last := len(f.entities) - 1
		if i != last {
			moved := f.entities[last]
			f.entities[i] = moved
			f.members[moved] = i
		}
		f.entities = f.entities[:last]
		delete(f.members, id)
	}
}

// Entities returns a copy of the current members. Members appear in
// insertion order until the first removal.
func (f *Filter) Entities() []EntityID {
	return slices.Clone(f.entities)
}

// Each calls fn for every member. It walks a snapshot, so composition
// changes made by fn show up from the next call on.
func (f *Filter) Each(fn func(EntityID)) {
	for _, id := range f.Entities() {
		fn(id)
	}
}

func (f *Filter) Contains(id EntityID) bool {
	_, ok := f.members[id]
	return ok
}

func (f *Filter) Len() int { return len(f.entities) }

func (f *Filter) Mask() Mask { return f.mask }

// Types returns the required component types in ascending order.
func (f *Filter) Types() []ComponentType { return f.mask.Types() }

// FilterRegistry memoizes one filter per required type set and fans out
// composition changes to every filter it has built. Filters live as long as
// the registry.
type FilterRegistry struct {
	byMask map[Mask]*Filter
	order  []*Filter
	log    *zap.Logger
}

func NewFilterRegistry(log *zap.Logger) *FilterRegistry {
	return &FilterRegistry{
		byMask: make(map[Mask]*Filter, 16),
		order:  make([]*Filter, 0, 16),
		log:    log,
	}
}

// get returns the cached filter for mask, building it against w on first use.
func (r *FilterRegistry) get(w *World, mask Mask) *Filter {
	if f, ok := r.byMask[mask]; ok {
		return f
	}
	f := newFilter(w, mask)
	r.byMask[mask] = f
	r.order = append(r.order, f)
	r.log.Debug("filter created",
		zap.Strings("types", w.componentNames(mask)),
		zap.Int("members", f.Len()),
	)
	return f
}

// Broadcast re-evaluates id in every live filter.
func (r *FilterRegistry) Broadcast(id EntityID) {
	for _, f := range r.order {
		f.OnCompositionChanged(id)
	}
}

func (r *FilterRegistry) Len() int { return len(r.order) }

// Filter returns the live filter requiring every type in types. Type order
// does not matter; an empty set matches every entity.
func (w *World) Filter(types ...ComponentType) *Filter {
	return w.filters.get(w, MaskOf(types...))
}

// Filter1 returns the filter over entities holding an A.
func Filter1[A any](w *World) *Filter {
	return w.Filter(ComponentOf[A](w))
}

// Filter2 returns the filter over entities holding both an A and a B.
func Filter2[A, B any](w *World) *Filter {
	return w.Filter(ComponentOf[A](w), ComponentOf[B](w))
}

// Filter3 returns the filter over entities holding an A, a B and a C.
func Filter3[A, B, C any](w *World) *Filter {
	return w.Filter(ComponentOf[A](w), ComponentOf[B](w), ComponentOf[C](w))
}

// Each1 walks f and hands fn the entity's A.
func Each1[A any](w *World, f *Filter, fn func(EntityID, *A)) {
	ta := ComponentOf[A](w)
	f.Each(func(id EntityID) {
		if a, ok := component[A](w, id, ta); ok {
			fn(id, a)
		}
	})
}

// Each2 walks f and hands fn the entity's A and B.
func Each2[A, B any](w *World, f *Filter, fn func(EntityID, *A, *B)) {
	ta, tb := ComponentOf[A](w), ComponentOf[B](w)
	f.Each(func(id EntityID) {
		a, ok := component[A](w, id, ta)
		if !ok {
			return
		}
		if b, ok := component[B](w, id, tb); ok {
			fn(id, a, b)
		}
	})
}

// Each3 walks f and hands fn the entity's A, B and C.
func Each3[A, B, C any](w *World, f *Filter, fn func(EntityID, *A, *B, *C)) {
	ta, tb, tc := ComponentOf[A](w), ComponentOf[B](w), ComponentOf[C](w)
	f.Each(func(id EntityID) {
		a, ok := component[A](w, id, ta)
		if !ok {
			return
		}
		b, ok := component[B](w, id, tb)
		if !ok {
			return
		}
		if c, ok := component[C](w, id, tc); ok {
			fn(id, a, b, c)
		}
	})
}
