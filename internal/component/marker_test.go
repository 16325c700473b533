package component

import (
	"testing"

	"github.com/l1jgo/ecsrt/internal/core/ecs"
)

func TestRegister(t *testing.T) {
	w := ecs.NewWorld()
	if err := Register(w); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Marker", "Tag", "Label"} {
		if _, err := w.Registry().Lookup(name); err != nil {
			t.Errorf("Lookup(%s): %v", name, err)
		}
	}
	// registering twice is harmless
	if err := Register(w); err != nil {
		t.Errorf("second Register: %v", err)
	}
	if ecs.ComponentOf[Marker](w) == ecs.ComponentOf[Tag](w) {
		t.Error("Marker and Tag share a tag")
	}
}
