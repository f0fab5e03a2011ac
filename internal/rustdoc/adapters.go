package rustdoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Helpers shared by the per-version adapters for the JSON shapes that are
// identical in every supported format version. Anything that varies between
// versions stays in the version's own file.

// innerEnvelope splits an item's inner field into its kind tag and payload.
// Rustdoc serializes the kind enum externally tagged: struct-like variants as
// a single-key object, unit variants as a bare string.
func innerEnvelope(inner json.RawMessage) (string, json.RawMessage, error) {
	if len(inner) == 0 {
		return "", nil, errors.New("item is missing its inner field")
	}
	if inner[0] == '"' {
		var tag string
		if err := json.Unmarshal(inner, &tag); err != nil {
			return "", nil, err
		}
		return tag, nil, nil
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(inner, &outer); err != nil {
		return "", nil, err
	}
	for tag, payload := range outer {
		return tag, payload, nil
	}
	return "", nil, errors.New("item inner field has no kind tag")
}

// decodeVisibility handles the visibility encoding: "public", "default" or
// "crate" as strings, restricted visibility as {"restricted": {...}}.
func decodeVisibility(data []byte) (Visibility, error) {
	if len(data) == 0 {
		return "", errors.New("item is missing its visibility field")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		switch s {
		case "public":
			return VisibilityPublic, nil
		case "crate":
			return VisibilityCrate, nil
		case "default":
			return VisibilityDefault, nil
		}
		return "", fmt.Errorf("unknown visibility %q", s)
	}
	var restricted struct {
		Restricted *json.RawMessage `json:"restricted"`
	}
	if err := json.Unmarshal(data, &restricted); err != nil {
		return "", err
	}
	if restricted.Restricted == nil {
		return "", errors.New("visibility object is not restricted visibility")
	}
	return VisibilityRestricted, nil
}

// decodeStructForm handles the struct kind encoding: "unit" as a string,
// tuple and plain structs as single-key objects.
func decodeStructForm(data []byte) (StructForm, error) {
	if len(data) == 0 {
		return "", errors.New("struct is missing its kind field")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		if s != "unit" {
			return "", fmt.Errorf("unknown struct kind %q", s)
		}
		return StructUnit, nil
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil {
		return "", err
	}
	if _, ok := outer["plain"]; ok {
		return StructPlain, nil
	}
	if _, ok := outer["tuple"]; ok {
		return StructTuple, nil
	}
	return "", errors.New("unknown struct kind object")
}

// pathKindLabel converts a paths-table kind tag ("type_alias") to its
// CamelCase label ("TypeAlias").
func pathKindLabel(kind string) string {
	parts := strings.Split(kind, "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}

// fallbackKindLabel labels inner kind tags no adapter recognizes. Unknown
// kinds are carried through so listings can skip them without failing the
// whole document.
func fallbackKindLabel(tag string) string {
	words := strings.Split(tag, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func idFromU32(id uint32) ID {
	return ID(strconv.FormatUint(uint64(id), 10))
}

func idsFromU32(ids []uint32) []ID {
	if ids == nil {
		return nil
	}
	out := make([]ID, len(ids))
	for i, id := range ids {
		out[i] = idFromU32(id)
	}
	return out
}

func idLinks(links map[string]uint32) map[string]ID {
	if len(links) == 0 {
		return nil
	}
	out := make(map[string]ID, len(links))
	for target, id := range links {
		out[target] = idFromU32(id)
	}
	return out
}
