package ecs

import (
	"fmt"
	"reflect"
)

// MaxComponentTypes bounds the number of component kinds a world can register.
const MaxComponentTypes = 256

// ComponentType is the small integer tag assigned to a component kind when it
// is first registered with a world. Tags are stable for the world's lifetime.
type ComponentType uint8

type componentInfo struct {
	name    string
	typ     reflect.Type
	factory func() any
}

// ComponentRegistry assigns tags to component kinds and builds default
// instances for the untyped (by-name) paths.
type ComponentRegistry struct {
	byType map[reflect.Type]ComponentType
	byName map[string]ComponentType
	infos  []componentInfo
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		byType: make(map[reflect.Type]ComponentType, 16),
		byName: make(map[string]ComponentType, 16),
		infos:  make([]componentInfo, 0, 16),
	}
}

// register returns the existing tag for typ or assigns the next one.
// An empty name falls back to the Go type name.
func (r *ComponentRegistry) register(typ reflect.Type, name string, factory func() any) (ComponentType, error) {
	if ct, ok := r.byType[typ]; ok {
		if name != "" && name != r.infos[ct].name {
			return 0, fmt.Errorf("component %s already registered as %q", typ, r.infos[ct].name)
		}
		return ct, nil
	}
	if len(r.infos) >= MaxComponentTypes {
		return 0, fmt.Errorf("register %s: %w", typ, ErrTooManyComponents)
	}
	if name == "" {
		name = typ.Name()
		if _, taken := r.byName[name]; taken || name == "" {
			name = typ.String()
		}
	}
	if _, taken := r.byName[name]; taken {
		return 0, fmt.Errorf("register %s: name %q already in use", typ, name)
	}
	ct := ComponentType(len(r.infos))
	r.infos = append(r.infos, componentInfo{name: name, typ: typ, factory: factory})
	r.byType[typ] = ct
	r.byName[name] = ct
	return ct, nil
}

// Lookup resolves a registered component name to its tag.
func (r *ComponentRegistry) Lookup(name string) (ComponentType, error) {
	ct, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("component %q: %w", name, ErrUnknownComponent)
	}
	return ct, nil
}

func (r *ComponentRegistry) Name(ct ComponentType) string {
	if int(ct) >= len(r.infos) {
		return fmt.Sprintf("component#%d", ct)
	}
	return r.infos[ct].name
}

// New builds a default instance of the kind tagged ct (a pointer to its zero value).
func (r *ComponentRegistry) New(ct ComponentType) (any, error) {
	if int(ct) >= len(r.infos) {
		return nil, fmt.Errorf("component#%d: %w", ct, ErrUnknownComponent)
	}
	return r.infos[ct].factory(), nil
}

// check verifies that c is a pointer to the kind registered under ct.
func (r *ComponentRegistry) check(ct ComponentType, c any) error {
	if int(ct) >= len(r.infos) {
		return fmt.Errorf("component#%d: %w", ct, ErrUnknownComponent)
	}
	want := reflect.PointerTo(r.infos[ct].typ)
	if got := reflect.TypeOf(c); got != want {
		return fmt.Errorf("component %s: got %v, want %v: %w", r.infos[ct].name, got, want, ErrTypeMismatch)
	}
	return nil
}

func (r *ComponentRegistry) Len() int { return len(r.infos) }

// RegisterComponent registers T under name with the world's registry.
// Registering the same T again with the same (or empty) name returns its tag.
func RegisterComponent[T any](w *World, name string) (ComponentType, error) {
	return w.components.register(reflect.TypeOf((*T)(nil)).Elem(), name, newOf[T])
}

// ComponentOf returns the tag for T, registering it under its Go type name on
// first use. It panics when the world already holds MaxComponentTypes kinds.
func ComponentOf[T any](w *World) ComponentType {
	ct, err := w.components.register(reflect.TypeOf((*T)(nil)).Elem(), "", newOf[T])
	if err != nil {
		panic(err)
	}
	return ct
}

func newOf[T any]() any { return new(T) }
