package rustdoc

import (
	"testing"
)

func TestDocLinkTargets(t *testing.T) {
	t.Parallel()

	c := crateWithRoot(nil)
	c.Paths["10"] = PathInfo{CrateID: 0, Path: []string{"mycrate", "Value", "as_str"}, Kind: "Function"}
	c.Paths["11"] = PathInfo{CrateID: 3, Path: []string{"serde", "Serialize"}, Kind: "Trait"}

	item := Item{
		ID: "1",
		Links: map[string]ID{
			"Value::as_str": "10",
			"Serialize":     "11", // dependency crate, skipped
			"gone":          "42", // no paths entry, skipped
		},
	}

	got := DocLinkTargets(c, &item)
	if len(got) != 1 {
		t.Fatalf("got %v, want exactly one resolved target", got)
	}
	if got["Value::as_str"] != "mycrate::Value::as_str" {
		t.Errorf("resolved %q, want mycrate::Value::as_str", got["Value::as_str"])
	}
}

func TestDocLinkTargets_NoLinks(t *testing.T) {
	t.Parallel()

	c := crateWithRoot(nil)
	item := Item{ID: "1"}
	if got := DocLinkTargets(c, &item); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
