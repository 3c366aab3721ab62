package introspect

import (
	"testing"

	"github.com/traitkit/traitkit/props"
)

func TestRegistry_AddAndLookup(t *testing.T) {
	r := NewRegistry()

	c := NewClass(ClassSpec{Name: "Post"})
	if err := r.Add(c); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	found, err := r.Lookup("Post")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if found != c {
		t.Error("Lookup returned a different class")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := NewRegistry()

	if err := r.Add(NewClass(ClassSpec{Name: "Post"})); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.Add(NewClass(ClassSpec{Name: "Post"})); err == nil {
		t.Error("Expected error for duplicate class name, got nil")
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Lookup("Missing"); err == nil {
		t.Error("Expected error for unknown class, got nil")
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Add(NewClass(ClassSpec{Name: "Zeta"}))
	r.Add(NewClass(ClassSpec{Name: "Alpha"}))

	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("Names count: got %d, want 2", len(names))
	}
	if names[0] != "Alpha" || names[1] != "Zeta" {
		t.Errorf("Names not sorted: %v", names)
	}
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.Add(NewClass(ClassSpec{Name: "Post"}))

	r.Reset()

	if len(r.Names()) != 0 {
		t.Error("Expected empty registry after Reset")
	}
}

func TestGlobalRegistry(t *testing.T) {
	defer Reset()

	c := NewClass(ClassSpec{Name: "Post"})
	if err := Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	found, err := Lookup("Post")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if found != c {
		t.Error("Lookup returned a different class")
	}

	if len(Classes()) != 1 {
		t.Errorf("Classes count: got %d, want 1", len(Classes()))
	}
	if len(ClassNames()) != 1 {
		t.Errorf("ClassNames count: got %d, want 1", len(ClassNames()))
	}
}

func TestReset_RestoresBase(t *testing.T) {
	Base().ApplyStatics(props.Map{"Polluted": true}, true)

	Reset()

	if len(Base().Statics()) != 0 {
		t.Error("Expected pristine base class after Reset")
	}
}
