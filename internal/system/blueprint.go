package system

import (
	"fmt"

	"github.com/l1jgo/ecsrt/internal/component"
	"github.com/l1jgo/ecsrt/internal/core/ecs"
	"github.com/l1jgo/ecsrt/internal/data"
)

// BlueprintSystem spawns every blueprint of a table at init, attaching
// components by registered name. A Label, if listed, gets the blueprint name.
type BlueprintSystem struct {
	world *ecs.World
	table *data.BlueprintTable
}

func NewBlueprintSystem(world *ecs.World, table *data.BlueprintTable) *BlueprintSystem {
	return &BlueprintSystem{world: world, table: table}
}

func (s *BlueprintSystem) Name() string { return "blueprint" }

func (s *BlueprintSystem) Init() error {
	for _, bp := range s.table.All() {
		for i := 0; i < bp.Count; i++ {
			id, err := s.world.CreateEntity()
			if err != nil {
				return err
			}
			for _, name := range bp.Components {
				if _, err := s.world.AddComponentByName(id, name); err != nil {
					return fmt.Errorf("blueprint %s: %w", bp.Name, err)
				}
			}
			if l, ok := ecs.GetComponent[component.Label](s.world, id); ok {
				l.Text = bp.Name
			}
		}
	}
	return nil
}
