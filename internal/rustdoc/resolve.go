package rustdoc

import (
	"strings"
)

// FindItem resolves a named item. Two phases, first match wins:
//
//  1. Paths table: match when the fully-qualified path (joined with "::")
//     ends with itemPath, or the last segment alone equals it. The paths
//     table entry's kind becomes the kind override for rendering. Iteration
//     order over the table is unspecified; when several entries share a
//     matching suffix, which one wins is unspecified.
//  2. Name scan: take the text after the last '.' in itemPath (so
//     "struct.MyStruct" degrades to "MyStruct") and return the first index
//     item with that name, with no kind override.
func FindItem(c *Crate, itemPath string) (*Item, string, error) {
	for id, info := range c.Paths {
		fullPath := strings.Join(info.Path, "::")
		lastSegment := len(info.Path) > 0 && info.Path[len(info.Path)-1] == itemPath
		if strings.HasSuffix(fullPath, itemPath) || lastSegment {
			if item, ok := c.Index[id]; ok {
				return &item, info.Kind, nil
			}
		}
	}

	searchName := itemPath
	if idx := strings.LastIndex(itemPath, "."); idx >= 0 {
		searchName = itemPath[idx+1:]
	}
	for _, item := range c.Index {
		if item.Name != nil && *item.Name == searchName {
			return &item, "", nil
		}
	}

	return nil, "", &ItemNotFoundError{Path: itemPath}
}
