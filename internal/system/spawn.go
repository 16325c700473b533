package system

import (
	"fmt"

	"github.com/l1jgo/ecsrt/internal/component"
	"github.com/l1jgo/ecsrt/internal/core/ecs"
)

// SpawnSystem creates Count entities carrying both a Marker and a Tag.
// Init only; it queries nothing.
type SpawnSystem struct {
	world *ecs.World
	count int
}

func NewSpawnSystem(world *ecs.World, count int) *SpawnSystem {
	return &SpawnSystem{world: world, count: count}
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Init() error {
	for i := 0; i < s.count; i++ {
		id, err := s.world.CreateEntity()
		if err != nil {
			return err
		}
		if _, err := ecs.AddComponent[component.Marker](s.world, id); err != nil {
			return fmt.Errorf("entity %d: %w", id, err)
		}
		if _, err := ecs.AddComponent[component.Tag](s.world, id); err != nil {
			return fmt.Errorf("entity %d: %w", id, err)
		}
	}
	return nil
}
