package rustdoc

import "strings"

// DocLinkTargets resolves an item's intra-doc links to fully-qualified paths
// in the local crate. The item's Links field maps markdown targets in its
// docs (e.g. "Value::as_str") to item IDs; each ID is looked up in the paths
// table and joined with "::". Links into dependency crates and links whose ID
// has no paths entry are skipped.
func DocLinkTargets(c *Crate, item *Item) map[string]string {
	if len(item.Links) == 0 {
		return nil
	}

	resolved := make(map[string]string, len(item.Links))
	for target, id := range item.Links {
		info, ok := c.Paths[id]
		if !ok || info.CrateID != 0 || len(info.Path) == 0 {
			continue
		}
		resolved[target] = strings.Join(info.Path, "::")
	}

	if len(resolved) == 0 {
		return nil
	}
	return resolved
}
