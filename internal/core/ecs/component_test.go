package ecs

import (
	"errors"
	"reflect"
	"testing"
)

type regA struct{}
type regB struct{ N int }

func TestRegisterComponentNamesAndTags(t *testing.T) {
	w := NewWorld()
	a, err := RegisterComponent[regA](w, "A")
	if err != nil {
		t.Fatal(err)
	}
	b, err := RegisterComponent[regB](w, "")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("distinct kinds share a tag")
	}
	if again, err := RegisterComponent[regA](w, "A"); err != nil || again != a {
		t.Errorf("re-register = %d, %v; want %d", again, err, a)
	}
	if again := ComponentOf[regA](w); again != a {
		t.Errorf("ComponentOf = %d, want %d", again, a)
	}
	if _, err := RegisterComponent[regA](w, "Other"); err == nil {
		t.Error("renaming a registered kind should fail")
	}

	if got := w.Registry().Name(b); got != "regB" {
		t.Errorf("default name = %q, want regB", got)
	}
	if ct, err := w.Registry().Lookup("A"); err != nil || ct != a {
		t.Errorf("Lookup(A) = %d, %v", ct, err)
	}
	if _, err := w.Registry().Lookup("nope"); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Lookup(nope) err = %v", err)
	}

	inst, err := w.Registry().New(b)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := inst.(*regB); !ok {
		t.Errorf("New built %T, want *regB", inst)
	}
	if _, err := w.Registry().New(200); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("New(200) err = %v", err)
	}
}

func TestRegisterComponentNameClash(t *testing.T) {
	w := NewWorld()
	if _, err := RegisterComponent[regA](w, "same"); err != nil {
		t.Fatal(err)
	}
	if _, err := RegisterComponent[regB](w, "same"); err == nil {
		t.Fatal("expected clash error")
	}
}

func TestComponentRegistryLimit(t *testing.T) {
	r := NewComponentRegistry()
	for i := 0; i < MaxComponentTypes; i++ {
		typ := reflect.ArrayOf(i+1, reflect.TypeOf((*byte)(nil)).Elem())
		if _, err := r.register(typ, "", nil); err != nil {
			t.Fatalf("register #%d: %v", i, err)
		}
	}
	if _, err := r.register(reflect.TypeOf((*regA)(nil)).Elem(), "", nil); !errors.Is(err, ErrTooManyComponents) {
		t.Fatalf("err = %v, want ErrTooManyComponents", err)
	}
	if r.Len() != MaxComponentTypes {
		t.Errorf("Len = %d", r.Len())
	}
}
