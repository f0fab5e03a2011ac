package rustdoc

import (
	"fmt"
	"strings"
)

// firstLine returns the first line of a doc string, trimmed, truncated to 97
// characters plus an ellipsis when it exceeds 100.
func firstLine(docs string) string {
	line, _, _ := strings.Cut(docs, "\n")
	line = strings.TrimSpace(line)
	if len(line) > 100 {
		return line[:97] + "..."
	}
	return line
}

// listEntry renders one listing line: "- **name**: first line of docs", or
// just the name when the item has no docs.
func listEntry(item *Item) string {
	entry := "- **" + *item.Name + "**"
	if item.Docs != nil {
		entry += ": " + firstLine(*item.Docs)
	}
	return entry
}

// Summarize renders a crate overview: header, root documentation, then the
// root module's public children partitioned into category sections. Sections
// with no entries are omitted.
func Summarize(c *Crate) (string, error) {
	root, ok := c.Index[c.RootID]
	if !ok {
		return "", &RootNotFoundError{RootID: c.RootID}
	}

	var sections []string

	if root.Name != nil {
		header := "# Crate: " + *root.Name
		if c.CrateVersion != nil {
			header += " v" + *c.CrateVersion
		}
		sections = append(sections, header)
	}

	if root.Docs != nil {
		sections = append(sections, "\n## Documentation\n"+*root.Docs)
	}

	var modules, structs, enums, traits, functions []string
	if root.Kind.Module != nil {
		for _, childID := range root.Kind.Module.Items {
			child, ok := c.Index[childID]
			if !ok || child.Visibility != VisibilityPublic || child.Name == nil {
				continue
			}
			switch {
			case child.Kind.Module != nil:
				modules = append(modules, listEntry(&child))
			case child.Kind.Struct != nil:
				structs = append(structs, listEntry(&child))
			case child.Kind.Enum != nil:
				enums = append(enums, listEntry(&child))
			case child.Kind.Trait != nil:
				traits = append(traits, listEntry(&child))
			case child.Kind.Function != nil:
				functions = append(functions, listEntry(&child))
			}
		}
	}

	for _, category := range []struct {
		heading string
		entries []string
	}{
		{"Modules", modules},
		{"Structs", structs},
		{"Enums", enums},
		{"Traits", traits},
		{"Functions", functions},
	} {
		if len(category.entries) > 0 {
			sections = append(sections, "\n## "+category.heading+"\n"+strings.Join(category.entries, "\n"))
		}
	}

	return strings.Join(sections, "\n"), nil
}

// FormatItem renders one item in full: name, kind, visibility (when not
// public), complete documentation, deprecation marker and kind-specific
// details. kindOverride, when non-empty, replaces the item's own kind label
// on the Type line.
func FormatItem(item *Item, kindOverride string) string {
	var sections []string

	if item.Name != nil {
		sections = append(sections, "# "+*item.Name)
	}

	kind := item.Kind.Label
	if kindOverride != "" {
		kind = kindOverride
	}
	sections = append(sections, "\n**Type:** "+kind)

	if item.Visibility != VisibilityPublic {
		sections = append(sections, "**Visibility:** "+string(item.Visibility))
	}

	if item.Docs != nil {
		sections = append(sections, "\n## Documentation\n"+*item.Docs)
	}

	if item.Deprecated {
		sections = append(sections, "\n⚠️ **Deprecated**")
	}

	switch {
	case item.Kind.Struct != nil:
		sections = append(sections, formatStruct(item.Kind.Struct)...)
	case item.Kind.Enum != nil:
		sections = append(sections, formatEnum(item.Kind.Enum)...)
	case item.Kind.Function != nil:
		sections = append(sections, formatFunction(item.Kind.Function)...)
	case item.Kind.Trait != nil:
		sections = append(sections, formatTrait(item.Kind.Trait)...)
	}

	return strings.Join(sections, "\n")
}

func formatStruct(s *StructKind) []string {
	sections := []string{"\n**Struct Type:** " + string(s.Form)}
	if s.Impls > 0 {
		sections = append(sections, fmt.Sprintf("\n**Implementations:** %d impl block(s)", s.Impls))
	}
	return sections
}

func formatEnum(e *EnumKind) []string {
	var sections []string
	if e.Variants > 0 {
		sections = append(sections, fmt.Sprintf("\n**Variants:** %d variant(s)", e.Variants))
	}
	if e.Impls > 0 {
		sections = append(sections, fmt.Sprintf("\n**Implementations:** %d impl block(s)", e.Impls))
	}
	return sections
}

func formatFunction(f *FunctionKind) []string {
	var attrs []string
	if f.IsConst {
		attrs = append(attrs, "const")
	}
	if f.IsAsync {
		attrs = append(attrs, "async")
	}
	if f.IsUnsafe {
		attrs = append(attrs, "unsafe")
	}
	if len(attrs) == 0 {
		return nil
	}
	return []string{"\n**Attributes:** " + strings.Join(attrs, ", ")}
}

func formatTrait(t *TraitKind) []string {
	var sections []string
	var attrs []string
	if t.IsAuto {
		attrs = append(attrs, "auto")
	}
	if t.IsUnsafe {
		attrs = append(attrs, "unsafe")
	}
	if len(attrs) > 0 {
		sections = append(sections, "\n**Attributes:** "+strings.Join(attrs, ", "))
	}
	if t.AssocItems > 0 {
		sections = append(sections, fmt.Sprintf("\n**Items:** %d associated item(s)", t.AssocItems))
	}
	return sections
}
