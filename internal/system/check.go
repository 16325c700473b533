package system

import (
	"fmt"
	"io"

	"github.com/l1jgo/ecsrt/internal/component"
	"github.com/l1jgo/ecsrt/internal/core/ecs"
)

// CheckSystem writes one line per entity holding both a Marker and a Tag.
// Execute only. The filter is acquired on the first tick.
type CheckSystem struct {
	world  *ecs.World
	out    io.Writer
	filter *ecs.Filter
}

func NewCheckSystem(world *ecs.World, out io.Writer) *CheckSystem {
	return &CheckSystem{world: world, out: out}
}

func (s *CheckSystem) Name() string { return "check" }

func (s *CheckSystem) Filter() *ecs.Filter {
	if s.filter == nil {
		s.filter = ecs.Filter2[component.Marker, component.Tag](s.world)
	}
	return s.filter
}

func (s *CheckSystem) Execute() error {
	for _, id := range s.Filter().Entities() {
		label := ""
		if l, ok := ecs.GetComponent[component.Label](s.world, id); ok {
			label = " " + l.Text
		}
		if _, err := fmt.Fprintf(s.out, "entity %d%s\n", id, label); err != nil {
			return err
		}
	}
	return nil
}
