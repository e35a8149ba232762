package schema

import "testing"

func TestNewAssignsDenseIDs(t *testing.T) {
	s, err := New([]AttributeDef{
		{Name: "status", Kind: String},
		{Name: "amount", Kind: Int},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	id, kind, ok := s.GetByName("amount")
	if !ok || id != 1 || kind != Int {
		t.Fatalf("GetByName(amount) = %d, %v, %v", id, kind, ok)
	}
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]AttributeDef{
		{Name: "status", Kind: String},
		{Name: "status", Kind: Int},
	})
	if err == nil {
		t.Fatal("expected an error for duplicate attribute name")
	}
}

func TestGetByNameUnknown(t *testing.T) {
	s, _ := New([]AttributeDef{{Name: "status", Kind: String}})
	if _, _, ok := s.GetByName("missing"); ok {
		t.Fatal("expected ok=false for unregistered attribute")
	}
}

func TestAttributeKindIsList(t *testing.T) {
	for _, k := range []AttributeKind{BoolList, IntList, FloatList, StringList} {
		if !k.IsList() {
			t.Errorf("%v.IsList() = false, want true", k)
		}
	}
	for _, k := range []AttributeKind{Bool, Int, Float, String} {
		if k.IsList() {
			t.Errorf("%v.IsList() = true, want false", k)
		}
	}
}
