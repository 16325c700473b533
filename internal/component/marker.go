package component

import "github.com/l1jgo/ecsrt/internal/core/ecs"

// Marker and Tag are the two demo component kinds. Pure data, no methods.
type Marker struct{}

type Tag struct{}

// Label gives an entity a human-readable name (set by blueprints).
type Label struct {
	Text string
}

// Register registers the demo kinds under the names blueprints and scripts use.
func Register(w *ecs.World) error {
	if _, err := ecs.RegisterComponent[Marker](w, "Marker"); err != nil {
		return err
	}
	if _, err := ecs.RegisterComponent[Tag](w, "Tag"); err != nil {
		return err
	}
	if _, err := ecs.RegisterComponent[Label](w, "Label"); err != nil {
		return err
	}
	return nil
}
