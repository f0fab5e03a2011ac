package rustdoc

import (
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func publicItem(id ID, name string, kind Kind) Item {
	return Item{ID: id, Name: strPtr(name), Visibility: VisibilityPublic, Kind: kind}
}

func crateWithRoot(children []ID, items ...Item) *Crate {
	c := &Crate{
		RootID: "0",
		Index:  map[ID]Item{},
		Paths:  map[ID]PathInfo{},
	}
	root := publicItem("0", "mycrate", Kind{Label: "Module", Module: &ModuleKind{Items: children}})
	c.Index["0"] = root
	for _, item := range items {
		c.Index[item.ID] = item
	}
	return c
}

func TestSummarize_SingleStructNoDocs(t *testing.T) {
	t.Parallel()

	c := crateWithRoot([]ID{"1"},
		publicItem("1", "Foo", Kind{Label: "Struct", Struct: &StructKind{Form: StructPlain}}))

	got, err := Summarize(c)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := "# Crate: mycrate\n\n## Structs\n- **Foo**"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, absent := range []string{"## Modules", "## Enums", "## Traits", "## Functions"} {
		if strings.Contains(got, absent) {
			t.Errorf("unexpected section %q in %q", absent, got)
		}
	}
}

func TestSummarize_HeaderWithVersionAndDocs(t *testing.T) {
	t.Parallel()

	c := crateWithRoot(nil)
	root := c.Index["0"]
	root.Docs = strPtr("A crate that does things.\n\nMore detail.")
	c.Index["0"] = root
	c.CrateVersion = strPtr("1.2.3")

	got, err := Summarize(c)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !strings.HasPrefix(got, "# Crate: mycrate v1.2.3") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "## Documentation\nA crate that does things.\n\nMore detail.") {
		t.Errorf("root docs not verbatim: %q", got)
	}
}

func TestSummarize_FirstLineTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 150)
	item := publicItem("1", "Foo", Kind{Label: "Struct", Struct: &StructKind{Form: StructPlain}})
	item.Docs = strPtr(long + "\nsecond line")
	c := crateWithRoot([]ID{"1"}, item)

	got, err := Summarize(c)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := "- **Foo**: " + long[:97] + "..."
	if !strings.Contains(got, want) {
		t.Errorf("truncated entry %q not in %q", want, got)
	}

	// The same docs render in full when the item itself is described.
	if full := FormatItem(&item, ""); !strings.Contains(full, long) {
		t.Errorf("FormatItem truncated docs: %q", full)
	}
}

func TestSummarize_NonPublicExcluded(t *testing.T) {
	t.Parallel()

	hidden := Item{ID: "1", Name: strPtr("Hidden"), Visibility: VisibilityCrate,
		Kind: Kind{Label: "Struct", Struct: &StructKind{Form: StructPlain}}}
	private := Item{ID: "2", Name: strPtr("inner"), Visibility: VisibilityDefault,
		Kind: Kind{Label: "Module", Module: &ModuleKind{}}}
	c := crateWithRoot([]ID{"1", "2"}, hidden, private)

	got, err := Summarize(c)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if strings.Contains(got, "Hidden") || strings.Contains(got, "inner") {
		t.Errorf("non-public item leaked into summary: %q", got)
	}
}

func TestSummarize_UnknownKindsAndMissingChildren(t *testing.T) {
	t.Parallel()

	constant := publicItem("1", "MAX", Kind{Label: "Constant"})
	c := crateWithRoot([]ID{"1", "99"}, constant) // 99 absent from index

	got, err := Summarize(c)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if strings.Contains(got, "MAX") {
		t.Errorf("uncategorized kind listed: %q", got)
	}
}

func TestSummarize_SectionOrder(t *testing.T) {
	t.Parallel()

	c := crateWithRoot([]ID{"1", "2", "3", "4", "5"},
		publicItem("1", "run", Kind{Label: "Function", Function: &FunctionKind{}}),
		publicItem("2", "Runner", Kind{Label: "Trait", Trait: &TraitKind{}}),
		publicItem("3", "Color", Kind{Label: "Enum", Enum: &EnumKind{Variants: 2}}),
		publicItem("4", "Foo", Kind{Label: "Struct", Struct: &StructKind{Form: StructUnit}}),
		publicItem("5", "util", Kind{Label: "Module", Module: &ModuleKind{}}))

	got, err := Summarize(c)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	order := []string{"## Modules", "## Structs", "## Enums", "## Traits", "## Functions"}
	last := -1
	for _, heading := range order {
		idx := strings.Index(got, heading)
		if idx < 0 {
			t.Fatalf("missing section %q in %q", heading, got)
		}
		if idx < last {
			t.Errorf("section %q out of order in %q", heading, got)
		}
		last = idx
	}
}

func TestSummarize_RootMissing(t *testing.T) {
	t.Parallel()

	c := &Crate{RootID: "7", Index: map[ID]Item{}, Paths: map[ID]PathInfo{}}
	_, err := Summarize(c)
	var rerr *RootNotFoundError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RootNotFoundError, got %v", err)
	}
	if rerr.RootID != "7" || !strings.Contains(err.Error(), "7") {
		t.Errorf("error does not name root id: %v", err)
	}
}

func TestFormatItem_Struct(t *testing.T) {
	t.Parallel()

	item := publicItem("1", "Foo", Kind{Label: "Struct", Struct: &StructKind{Form: StructTuple, Impls: 3}})
	got := FormatItem(&item, "")
	for _, want := range []string{"# Foo", "**Type:** Struct", "**Struct Type:** tuple", "**Implementations:** 3 impl block(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "**Visibility:**") {
		t.Errorf("public item should have no visibility line: %q", got)
	}
}

func TestFormatItem_FunctionAttributes(t *testing.T) {
	t.Parallel()

	item := publicItem("1", "run", Kind{Label: "Function",
		Function: &FunctionKind{IsConst: true, IsAsync: true, IsUnsafe: true}})
	got := FormatItem(&item, "")
	if !strings.Contains(got, "**Attributes:** const, async, unsafe") {
		t.Errorf("missing attribute list: %q", got)
	}

	plain := publicItem("2", "walk", Kind{Label: "Function", Function: &FunctionKind{}})
	if got := FormatItem(&plain, ""); strings.Contains(got, "**Attributes:**") {
		t.Errorf("unexpected attribute list: %q", got)
	}
}

func TestFormatItem_TraitAndEnum(t *testing.T) {
	t.Parallel()

	trait := publicItem("1", "Runner", Kind{Label: "Trait",
		Trait: &TraitKind{IsUnsafe: true, AssocItems: 4}})
	got := FormatItem(&trait, "")
	for _, want := range []string{"**Attributes:** unsafe", "**Items:** 4 associated item(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}

	enum := publicItem("2", "Color", Kind{Label: "Enum", Enum: &EnumKind{Variants: 3, Impls: 1}})
	got = FormatItem(&enum, "")
	for _, want := range []string{"**Variants:** 3 variant(s)", "**Implementations:** 1 impl block(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestFormatItem_VisibilityDeprecationAndOverride(t *testing.T) {
	t.Parallel()

	item := Item{
		ID:         "1",
		Name:       strPtr("Old"),
		Visibility: VisibilityCrate,
		Docs:       strPtr("Use New instead."),
		Deprecated: true,
		Kind:       Kind{Label: "Struct", Struct: &StructKind{Form: StructPlain}},
	}
	got := FormatItem(&item, "TypeAlias")
	for _, want := range []string{"**Type:** TypeAlias", "**Visibility:** Crate", "⚠️ **Deprecated**", "## Documentation\nUse New instead."} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}
