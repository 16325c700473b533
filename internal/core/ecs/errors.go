package ecs

import "errors"

var (
	// ErrNotFound reports an entity id unknown to the registry or the store.
	ErrNotFound = errors.New("entity not found")
	// ErrSlotExists reports a second component slot for the same entity.
	ErrSlotExists = errors.New("component slot already exists")
	// ErrEntityLimit reports that the id space is exhausted. Ids are never reused.
	ErrEntityLimit = errors.New("entity id space exhausted")
	// ErrTooManyComponents reports more than MaxComponentTypes registered kinds.
	ErrTooManyComponents = errors.New("too many component types")
	// ErrUnknownComponent reports a component name that was never registered.
	ErrUnknownComponent = errors.New("unknown component type")
	// ErrTypeMismatch reports a value stored under another kind's tag.
	ErrTypeMismatch = errors.New("component type mismatch")
)
