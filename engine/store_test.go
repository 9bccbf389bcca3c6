package engine

import (
	"testing"

	"github.com/lixenwraith/tile-survivor/core"
)

func TestStoreInsertGetRemove(t *testing.T) {
	s := NewStore[int]()

	a := s.Insert(10)
	b := s.Insert(20)

	if a.IsNil() || b.IsNil() {
		t.Fatal("Insert returned nil handle")
	}
	if v, ok := s.Get(a); !ok || *v != 10 {
		t.Errorf("Get(a) = %v, %v; want 10, true", v, ok)
	}

	*mustGet(t, s, b) = 25
	if v, _ := s.Get(b); *v != 25 {
		t.Errorf("Expected in-place mutation, got %d", *v)
	}

	if !s.Remove(a) {
		t.Fatal("Remove(a) failed")
	}
	if s.Remove(a) {
		t.Error("Second Remove(a) should report false")
	}
	if _, ok := s.Get(a); ok {
		t.Error("Removed handle still resolves")
	}
	if s.Len() != 1 {
		t.Errorf("Expected Len 1, got %d", s.Len())
	}
}

func TestStoreGenerationOnReuse(t *testing.T) {
	s := NewStore[string]()

	old := s.Insert("first")
	s.Remove(old)
	fresh := s.Insert("second")

	if fresh.Index != old.Index {
		t.Fatalf("Expected slot reuse, got index %d vs %d", fresh.Index, old.Index)
	}
	if fresh.Generation == old.Generation {
		t.Fatal("Reused slot must bump generation")
	}
	if _, ok := s.Get(old); ok {
		t.Error("Stale handle resolved to the reused slot")
	}
	if s.Remove(old) {
		t.Error("Remove with stale handle must be a no-op")
	}
	if v, ok := s.Get(fresh); !ok || *v != "second" {
		t.Errorf("Get(fresh) = %v, %v", v, ok)
	}
}

func TestStoreNilAndOutOfRange(t *testing.T) {
	s := NewStore[int]()
	s.Insert(1)

	if _, ok := s.Get(core.NilEntity); ok {
		t.Error("Nil handle resolved")
	}
	if _, ok := s.Get(core.Entity{Index: 99, Generation: 1}); ok {
		t.Error("Out-of-range handle resolved")
	}
}

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	var hs []core.Entity
	for i := 0; i < 5; i++ {
		hs = append(hs, s.Insert(i))
	}
	s.Remove(hs[1])
	s.Remove(hs[3])
	s.Insert(5) // Reuses a freed slot but iterates last

	var got []int
	s.Range(func(_ core.Entity, v *int) bool {
		got = append(got, *v)
		return true
	})
	want := []int{0, 2, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Range visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Range visited %v, want %v", got, want)
		}
	}

	handles := s.Handles(nil)
	if len(handles) != 4 || handles[0] != hs[0] {
		t.Errorf("Handles() = %v", handles)
	}
}

func TestStoreClearInvalidatesHandles(t *testing.T) {
	s := NewStore[int]()
	a := s.Insert(1)
	b := s.Insert(2)

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d", s.Len())
	}
	for _, h := range []core.Entity{a, b} {
		if _, ok := s.Get(h); ok {
			t.Errorf("Handle %v survived Clear", h)
		}
	}

	c := s.Insert(3)
	if c == a || c == b {
		t.Errorf("New handle %v collides with a cleared handle", c)
	}
}

func mustGet[T any](t *testing.T, s *Store[T], e core.Entity) *T {
	t.Helper()
	v, ok := s.Get(e)
	if !ok {
		t.Fatalf("Get(%v) failed", e)
	}
	return v
}
