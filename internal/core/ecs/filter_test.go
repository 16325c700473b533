package ecs

import (
	"slices"
	"testing"
)

type compA struct{ V int }
type compB struct{ V int }
type compC struct{}

func mustEntity(t *testing.T, w *World) EntityID {
	t.Helper()
	id, err := w.CreateEntity()
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	return id
}

func mustAdd[T any](t *testing.T, w *World, id EntityID) *T {
	t.Helper()
	c, err := AddComponent[T](w, id)
	if err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	return c
}

func mustRemove[T any](t *testing.T, w *World, id EntityID) {
	t.Helper()
	if err := RemoveComponent[T](w, id); err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
}

func TestFilterBootstrapsFromExistingEntities(t *testing.T) {
	w := NewWorld()
	both := mustEntity(t, w)
	mustAdd[compA](t, w, both)
	mustAdd[compB](t, w, both)
	onlyA := mustEntity(t, w)
	mustAdd[compA](t, w, onlyA)

	f := Filter2[compA, compB](w)
	if got := f.Entities(); !slices.Equal(got, []EntityID{both}) {
		t.Fatalf("Entities = %v, want [%d]", got, both)
	}
}

func TestFilterTracksCompositionChanges(t *testing.T) {
	w := NewWorld()
	f := Filter2[compA, compB](w)
	e := mustEntity(t, w)

	mustAdd[compA](t, w, e)
	if f.Contains(e) {
		t.Fatal("entity with only A matched {A,B}")
	}
	mustAdd[compB](t, w, e)
	if !f.Contains(e) {
		t.Fatal("entity with A and B missing from {A,B}")
	}

	mustRemove[compA](t, w, e)
	if f.Contains(e) {
		t.Fatal("entity still a member after losing A")
	}
	mustAdd[compA](t, w, e)
	mustRemove[compB](t, w, e)
	if f.Contains(e) || f.Len() != 0 {
		t.Fatal("entity still a member after losing B")
	}
}

func TestFilterMembershipIdempotent(t *testing.T) {
	w := NewWorld()
	f := Filter1[compA](w)
	e := mustEntity(t, w)
	mustAdd[compA](t, w, e)
	mustAdd[compA](t, w, e) // overwrite, notifies again
	f.OnCompositionChanged(e)
	if f.Len() != 1 {
		t.Fatalf("Len = %d after repeated notifications, want 1", f.Len())
	}

	mustRemove[compA](t, w, e)
	mustRemove[compA](t, w, e)
	f.OnCompositionChanged(e)
	if f.Len() != 0 {
		t.Fatalf("Len = %d after repeated removals, want 0", f.Len())
	}
}

func TestFilterRemovalMovesLastMember(t *testing.T) {
	w := NewWorld()
	f := Filter1[compA](w)
	ids := make([]EntityID, 4)
	for i := range ids {
		ids[i] = mustEntity(t, w)
		mustAdd[compA](t, w, ids[i])
	}
	mustRemove[compA](t, w, ids[1])

	want := []EntityID{ids[0], ids[3], ids[2]}
	if got := f.Entities(); !slices.Equal(got, want) {
		t.Fatalf("Entities = %v, want %v", got, want)
	}

	// positions stay consistent across further removals and re-adds
	mustRemove[compA](t, w, ids[3])
	mustRemove[compA](t, w, ids[2])
	mustAdd[compA](t, w, ids[1])
	if got := f.Entities(); !slices.Equal(got, []EntityID{ids[0], ids[1]}) {
		t.Fatalf("Entities = %v, want [%d %d]", got, ids[0], ids[1])
	}
	for i, id := range f.entities {
		if f.members[id] != i {
			t.Errorf("members[%d] = %d, want %d", id, f.members[id], i)
		}
	}
}

func TestFilterRegistryCaches(t *testing.T) {
	w := NewWorld()
	ab := Filter2[compA, compB](w)
	if ba := Filter2[compB, compA](w); ba != ab {
		t.Error("{B,A} and {A,B} should share one filter")
	}
	if again := w.Filter(ComponentOf[compA](w), ComponentOf[compB](w)); again != ab {
		t.Error("w.Filter should return the cached instance")
	}
	if Filter1[compA](w) == ab {
		t.Error("{A} must be a different filter from {A,B}")
	}
	if n := w.Filters().Len(); n != 2 {
		t.Errorf("live filters = %d, want 2", n)
	}
}

func TestFilterEmptyTypeSetMatchesAll(t *testing.T) {
	w := NewWorld()
	a := mustEntity(t, w)
	all := w.Filter()
	b := mustEntity(t, w)
	if !all.Contains(a) {
		t.Error("bootstrap missed entity")
	}
	if !all.Contains(b) {
		t.Error("entity created after the filter is missing")
	}
	if got := all.Entities(); !slices.Equal(got, []EntityID{a, b}) {
		t.Errorf("Entities = %v", got)
	}
}

func TestFilterEntitiesIsACopy(t *testing.T) {
	w := NewWorld()
	f := Filter1[compA](w)
	e := mustEntity(t, w)
	mustAdd[compA](t, w, e)
	got := f.Entities()
	got[0] = 99
	if f.Entities()[0] != e {
		t.Error("Entities exposed internal storage")
	}
	if ts := f.Types(); len(ts) != 1 || ts[0] != ComponentOf[compA](w) {
		t.Errorf("Types = %v", ts)
	}
}

func TestEachHelpers(t *testing.T) {
	w := NewWorld()
	for i := 1; i <= 3; i++ {
		e := mustEntity(t, w)
		a := mustAdd[compA](t, w, e)
		a.V = i
		b := mustAdd[compB](t, w, e)
		b.V = 10 * i
		if i == 2 {
			mustAdd[compC](t, w, e)
		}
	}

	sum := 0
	Each2(w, Filter2[compA, compB](w), func(_ EntityID, a *compA, b *compB) {
		sum += a.V + b.V
	})
	if sum != 66 {
		t.Errorf("Each2 sum = %d, want 66", sum)
	}

	var seen []EntityID
	Each3(w, Filter3[compA, compB, compC](w), func(id EntityID, _ *compA, _ *compB, _ *compC) {
		seen = append(seen, id)
	})
	if !slices.Equal(seen, []EntityID{2}) {
		t.Errorf("Each3 saw %v, want [2]", seen)
	}

	// mutation through the pointer is visible afterwards
	Each1(w, Filter1[compA](w), func(_ EntityID, a *compA) { a.V *= 2 })
	if a, _ := GetComponent[compA](w, 3); a.V != 6 {
		t.Errorf("compA of 3 = %d, want 6", a.V)
	}
}

func TestEachToleratesMembershipChanges(t *testing.T) {
	w := NewWorld()
	f := Filter1[compA](w)
	for i := 0; i < 3; i++ {
		mustAdd[compA](t, w, mustEntity(t, w))
	}
	visited := 0
	f.Each(func(id EntityID) {
		visited++
		mustRemove[compA](t, w, id)
	})
	if visited != 3 || f.Len() != 0 {
		t.Errorf("visited %d, left %d; want 3, 0", visited, f.Len())
	}
}
