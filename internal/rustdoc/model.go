package rustdoc

// ID identifies one item inside a single crate document. IDs are only
// meaningful within the document they came from.
type ID string

// Visibility of a declared item. Anything other than Public is kept for
// explicit display but never surfaced in implicit listings.
type Visibility string

const (
	VisibilityPublic     Visibility = "Public"
	VisibilityCrate      Visibility = "Crate"
	VisibilityRestricted Visibility = "Restricted"
	VisibilityDefault    Visibility = "Default"
)

// Crate is the version-agnostic view of one crate's rustdoc export.
// Every adapter projects its native shape into this model; extraction and
// rendering never see version-specific types.
type Crate struct {
	SchemaVersion int
	CrateVersion  *string
	RootID        ID
	Index         map[ID]Item
	Paths         map[ID]PathInfo
}

// Item is one declared entity (module, struct, function, ...).
type Item struct {
	ID         ID
	Name       *string
	Visibility Visibility
	Docs       *string
	Deprecated bool
	// Links maps markdown targets in Docs (e.g. "Value::as_str") to item IDs.
	Links map[string]ID
	Kind  Kind
}

// Kind is the item's declaration kind. Label always holds a human-readable
// kind name; at most one of the payload pointers is set.
type Kind struct {
	Label    string
	Module   *ModuleKind
	Struct   *StructKind
	Enum     *EnumKind
	Function *FunctionKind
	Trait    *TraitKind
}

// ModuleKind lists a module's direct children in declaration order.
type ModuleKind struct {
	Items []ID
}

// StructForm distinguishes plain, tuple and unit structs.
type StructForm string

const (
	StructPlain StructForm = "plain"
	StructTuple StructForm = "tuple"
	StructUnit  StructForm = "unit"
)

type StructKind struct {
	Form  StructForm
	Impls int
}

type EnumKind struct {
	Variants int
	Impls    int
}

type FunctionKind struct {
	IsConst  bool
	IsAsync  bool
	IsUnsafe bool
}

type TraitKind struct {
	IsAuto     bool
	IsUnsafe   bool
	AssocItems int
}

// PathInfo locates an item by its fully-qualified path, independent of the
// module tree. Entries may reference IDs absent from Index. CrateID is 0 for
// the local crate; nonzero entries belong to dependencies.
type PathInfo struct {
	CrateID int
	Path    []string
	Kind    string
}
