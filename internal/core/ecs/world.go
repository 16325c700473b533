package ecs

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/l1jgo/ecsrt/internal/core/system"
	"go.uber.org/zap"
)

// World is the single access point to an ECS instance. It owns the entity
// registry, the component store, the filter cache and the system runner,
// and is the only path through which composition changes, so filter
// membership is up to date whenever one of its methods returns.
type World struct {
	id         uuid.UUID
	entities   *EntityRegistry
	components *ComponentRegistry
	store      *ComponentStore
	filters    *FilterRegistry
	systems    *system.Runner
	log        *zap.Logger
}

type options struct {
	log      *zap.Logger
	capacity int
}

type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithCapacity presizes entity storage.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func NewWorld(opts ...Option) *World {
	o := options{log: zap.NewNop(), capacity: 1024}
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.New()
	log := o.log.With(zap.String("world", id.String()))
	return &World{
		id:         id,
		entities:   NewEntityRegistry(o.capacity),
		components: NewComponentRegistry(),
		store:      NewComponentStore(o.capacity),
		filters:    NewFilterRegistry(log),
		systems:    system.NewRunner(log),
		log:        log,
	}
}

func (w *World) ID() uuid.UUID                { return w.id }
func (w *World) Registry() *ComponentRegistry { return w.components }
func (w *World) Filters() *FilterRegistry     { return w.filters }
func (w *World) Systems() *system.Runner      { return w.systems }
func (w *World) Logger() *zap.Logger          { return w.log }

// CreateEntity allocates an id and its empty component slot in one step.
// Filters see the new entity immediately; only those with no required
// types can match it.
func (w *World) CreateEntity() (EntityID, error) {
	id, err := w.entities.Create()
	if err != nil {
		return 0, err
	}
	if err := w.store.AddSlot(id); err != nil {
		return 0, fmt.Errorf("create entity: %w", err)
	}
	w.filters.Broadcast(id)
	w.log.Debug("entity created", zap.Uint32("entity", uint32(id)))
	return id, nil
}

func (w *World) GetEntity(id EntityID) (EntityID, error) {
	return w.entities.Get(id)
}

// Entities returns every entity in creation order.
func (w *World) Entities() []EntityID {
	return w.entities.All()
}

func (w *World) EntityCount() int { return w.entities.Len() }

// GetComponents returns the entity's component instances ordered by type.
func (w *World) GetComponents(id EntityID) ([]any, error) {
	return w.store.Components(id)
}

// ComponentTypesOf returns the types the entity currently holds, ascending.
func (w *World) ComponentTypesOf(id EntityID) ([]ComponentType, error) {
	m, ok := w.store.Mask(id)
	if !ok {
		return nil, fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	return m.Types(), nil
}

// EntitiesWith lists the entities holding a ct component, ascending by id.
func (w *World) EntitiesWith(ct ComponentType) []EntityID {
	return w.store.OfType(ct)
}

func (w *World) HasComponent(id EntityID, ct ComponentType) bool {
	_, ok := w.store.Get(id, ct)
	return ok
}

// attach stores c as id's ct component and notifies every filter. c must be
// a pointer to the kind registered under ct.
func (w *World) attach(id EntityID, ct ComponentType, c any) error {
	if err := w.components.check(ct, c); err != nil {
		return err
	}
	if err := w.store.Add(id, ct, c); err != nil {
		return err
	}
	w.filters.Broadcast(id)
	return nil
}

// detach removes id's ct component, if any, and notifies every filter.
func (w *World) detach(id EntityID, ct ComponentType) error {
	if err := w.store.Remove(id, ct); err != nil {
		return err
	}
	w.filters.Broadcast(id)
	return nil
}

// AddComponentByName attaches a default instance of the named kind.
func (w *World) AddComponentByName(id EntityID, name string) (any, error) {
	ct, err := w.components.Lookup(name)
	if err != nil {
		return nil, err
	}
	c, err := w.components.New(ct)
	if err != nil {
		return nil, err
	}
	if err := w.attach(id, ct, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (w *World) RemoveComponentByName(id EntityID, name string) error {
	ct, err := w.components.Lookup(name)
	if err != nil {
		return err
	}
	return w.detach(id, ct)
}

// AddComponent attaches a zero T to id, replacing any T it already holds,
// and returns it for the caller to fill in.
func AddComponent[T any](w *World, id EntityID) (*T, error) {
	if !w.store.HasSlot(id) {
		return nil, fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	c := new(T)
	if err := w.attach(id, ComponentOf[T](w), c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetComponent attaches a copy of v to id, replacing any T it already holds.
func SetComponent[T any](w *World, id EntityID, v T) (*T, error) {
	if !w.store.HasSlot(id) {
		return nil, fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	c := &v
	if err := w.attach(id, ComponentOf[T](w), c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveComponent detaches id's T. Removing an absent T succeeds.
func RemoveComponent[T any](w *World, id EntityID) error {
	if !w.store.HasSlot(id) {
		return fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	return w.detach(id, ComponentOf[T](w))
}

func GetComponent[T any](w *World, id EntityID) (*T, bool) {
	return component[T](w, id, ComponentOf[T](w))
}

func component[T any](w *World, id EntityID, ct ComponentType) (*T, bool) {
	c, ok := w.store.Get(id, ct)
	if !ok {
		return nil, false
	}
	t, ok := c.(*T)
	return t, ok
}

func (w *World) componentNames(m Mask) []string {
	types := m.Types()
	names := make([]string, len(types))
	for i, ct := range types {
		names[i] = w.components.Name(ct)
	}
	return names
}

// Register appends s to the system list.
func (w *World) Register(s system.System) {
	w.systems.Register(s)
}

// Init runs the initialization phase once.
func (w *World) Init() error {
	return w.systems.Init()
}

// Update runs one execution tick.
func (w *World) Update() error {
	return w.systems.Update()
}

// Start runs Init followed by a single Update.
func (w *World) Start() error {
	if err := w.Init(); err != nil {
		return err
	}
	return w.Update()
}
