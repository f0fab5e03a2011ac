package rustdoc

import (
	"errors"
	"strings"
	"testing"
)

func TestFindItem_PathTableSuffix(t *testing.T) {
	t.Parallel()

	c := crateWithRoot([]ID{"1"},
		publicItem("1", "MyStruct", Kind{Label: "Struct", Struct: &StructKind{Form: StructPlain}}))
	c.Paths["1"] = PathInfo{Path: []string{"mycrate", "types", "MyStruct"}, Kind: "Struct"}

	item, override, err := FindItem(c, "MyStruct")
	if err != nil {
		t.Fatalf("FindItem: %v", err)
	}
	if item.ID != "1" {
		t.Errorf("resolved item %s, want 1", item.ID)
	}
	if override != "Struct" {
		t.Errorf("kind override %q, want Struct", override)
	}

	// A longer suffix spanning segments matches too.
	if _, _, err := FindItem(c, "types::MyStruct"); err != nil {
		t.Errorf("suffix match failed: %v", err)
	}
}

func TestFindItem_PathEntryWithoutIndexItem(t *testing.T) {
	t.Parallel()

	// Paths may reference ids absent from the index; those entries are
	// skipped, and here the name scan picks the item up instead.
	c := crateWithRoot([]ID{"1"},
		publicItem("1", "MyStruct", Kind{Label: "Struct", Struct: &StructKind{Form: StructPlain}}))
	c.Paths["999"] = PathInfo{Path: []string{"mycrate", "MyStruct"}, Kind: "Struct"}

	item, override, err := FindItem(c, "MyStruct")
	if err != nil {
		t.Fatalf("FindItem: %v", err)
	}
	if item.ID != "1" || override != "" {
		t.Errorf("got item %s override %q, want fallback match on 1", item.ID, override)
	}
}

func TestFindItem_FallbackNameSearch(t *testing.T) {
	t.Parallel()

	c := crateWithRoot([]ID{"1"},
		publicItem("1", "MyStruct", Kind{Label: "Struct", Struct: &StructKind{Form: StructPlain}}))

	item, override, err := FindItem(c, "struct.MyStruct")
	if err != nil {
		t.Fatalf("FindItem: %v", err)
	}
	if item.Name == nil || *item.Name != "MyStruct" {
		t.Errorf("resolved wrong item: %+v", item)
	}
	if override != "" {
		t.Errorf("fallback phase must not set a kind override, got %q", override)
	}
}

func TestFindItem_NotFound(t *testing.T) {
	t.Parallel()

	c := crateWithRoot(nil)
	_, _, err := FindItem(c, "fn.does_not_exist")
	var nerr *ItemNotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected *ItemNotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "fn.does_not_exist") {
		t.Errorf("error does not name the queried path: %v", err)
	}
}
