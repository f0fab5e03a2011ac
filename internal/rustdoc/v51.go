package rustdoc

import (
	"encoding/json"
	"errors"
)

// Format version 51. Functions gained a "has_body" flag and traits list
// their known "implementations" alongside the associated items.

type v51Adapter struct{}

func (v51Adapter) Version() int { return 51 }

type v51Crate struct {
	Root          *uint32               `json:"root"`
	CrateVersion  *string               `json:"crate_version"`
	Index         map[string]v51Item    `json:"index"`
	Paths         map[string]v51Summary `json:"paths"`
	FormatVersion int                   `json:"format_version"`
}

type v51Item struct {
	Name        *string           `json:"name"`
	Visibility  json.RawMessage   `json:"visibility"`
	Docs        *string           `json:"docs"`
	Links       map[string]uint32 `json:"links"`
	Attrs       []string          `json:"attrs"`
	Deprecation *v51Deprecation   `json:"deprecation"`
	Inner       json.RawMessage   `json:"inner"`
}

type v51Deprecation struct {
	Since *string `json:"since"`
	Note  *string `json:"note"`
}

type v51Summary struct {
	CrateID int      `json:"crate_id"`
	Path    []string `json:"path"`
	Kind    string   `json:"kind"`
}

var v51KindLabels = map[string]string{
	"type_alias":   "Type Alias",
	"impl":         "Implementation",
	"macro":        "Macro",
	"extern_crate": "External Crate",
	"use":          "Import",
	"union":        "Union",
	"proc_macro":   "Procedural Macro",
	"primitive":    "Primitive",
	"assoc_const":  "Associated Constant",
	"assoc_type":   "Associated Type",
	"struct_field": "Struct Field",
	"variant":      "Enum Variant",
	"trait_alias":  "Trait Alias",
	"extern_type":  "External Type",
}

func (a v51Adapter) Parse(raw []byte) (*Crate, error) {
	var doc v51Crate
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &SchemaMismatchError{Version: 51, Err: err}
	}
	if doc.Root == nil || doc.Index == nil || doc.Paths == nil {
		return nil, &SchemaMismatchError{Version: 51, Err: errors.New("missing required field: root, index or paths")}
	}

	c := &Crate{
		SchemaVersion: 51,
		CrateVersion:  doc.CrateVersion,
		RootID:        idFromU32(*doc.Root),
		Index:         make(map[ID]Item, len(doc.Index)),
		Paths:         make(map[ID]PathInfo, len(doc.Paths)),
	}
	for id, item := range doc.Index {
		visibility, err := decodeVisibility(item.Visibility)
		if err != nil {
			return nil, &SchemaMismatchError{Version: 51, Err: err}
		}
		kind, err := a.projectKind(item.Inner)
		if err != nil {
			return nil, &SchemaMismatchError{Version: 51, Err: err}
		}
		c.Index[ID(id)] = Item{
			ID:         ID(id),
			Name:       item.Name,
			Visibility: visibility,
			Docs:       item.Docs,
			Deprecated: item.Deprecation != nil,
			Links:      idLinks(item.Links),
			Kind:       kind,
		}
	}
	for id, summary := range doc.Paths {
		c.Paths[ID(id)] = PathInfo{
			CrateID: summary.CrateID,
			Path:    summary.Path,
			Kind:    pathKindLabel(summary.Kind),
		}
	}
	return c, nil
}

func (v51Adapter) projectKind(inner json.RawMessage) (Kind, error) {
	tag, payload, err := innerEnvelope(inner)
	if err != nil {
		return Kind{}, err
	}
	switch tag {
	case "module":
		var module struct {
			IsCrate    bool     `json:"is_crate"`
			Items      []uint32 `json:"items"`
			IsStripped bool     `json:"is_stripped"`
		}
		if err := json.Unmarshal(payload, &module); err != nil {
			return Kind{}, err
		}
		return Kind{Label: "Module", Module: &ModuleKind{Items: idsFromU32(module.Items)}}, nil
	case "struct":
		var s struct {
			Kind  json.RawMessage `json:"kind"`
			Impls []uint32        `json:"impls"`
		}
		if err := json.Unmarshal(payload, &s); err != nil {
			return Kind{}, err
		}
		form, err := decodeStructForm(s.Kind)
		if err != nil {
			return Kind{}, err
		}
		return Kind{Label: "Struct", Struct: &StructKind{Form: form, Impls: len(s.Impls)}}, nil
	case "enum":
		var e struct {
			Variants            []uint32 `json:"variants"`
			HasStrippedVariants bool     `json:"has_stripped_variants"`
			Impls               []uint32 `json:"impls"`
		}
		if err := json.Unmarshal(payload, &e); err != nil {
			return Kind{}, err
		}
		return Kind{Label: "Enum", Enum: &EnumKind{Variants: len(e.Variants), Impls: len(e.Impls)}}, nil
	case "function":
		var f struct {
			Header struct {
				IsConst  bool `json:"is_const"`
				IsAsync  bool `json:"is_async"`
				IsUnsafe bool `json:"is_unsafe"`
			} `json:"header"`
			HasBody bool `json:"has_body"`
		}
		if err := json.Unmarshal(payload, &f); err != nil {
			return Kind{}, err
		}
		return Kind{Label: "Function", Function: &FunctionKind{
			IsConst:  f.Header.IsConst,
			IsAsync:  f.Header.IsAsync,
			IsUnsafe: f.Header.IsUnsafe,
		}}, nil
	case "trait":
		var t struct {
			IsAuto          bool     `json:"is_auto"`
			IsUnsafe        bool     `json:"is_unsafe"`
			Items           []uint32 `json:"items"`
			Implementations []uint32 `json:"implementations"`
		}
		if err := json.Unmarshal(payload, &t); err != nil {
			return Kind{}, err
		}
		return Kind{Label: "Trait", Trait: &TraitKind{
			IsAuto:     t.IsAuto,
			IsUnsafe:   t.IsUnsafe,
			AssocItems: len(t.Items),
		}}, nil
	case "constant":
		var c struct {
			Type  json.RawMessage `json:"type"`
			Const json.RawMessage `json:"const"`
		}
		if err := json.Unmarshal(payload, &c); err != nil {
			return Kind{}, err
		}
		return Kind{Label: "Constant"}, nil
	case "static":
		var s struct {
			Type      json.RawMessage `json:"type"`
			IsMutable bool            `json:"is_mutable"`
			IsUnsafe  bool            `json:"is_unsafe"`
		}
		if err := json.Unmarshal(payload, &s); err != nil {
			return Kind{}, err
		}
		return Kind{Label: "Static"}, nil
	}
	if label, ok := v51KindLabels[tag]; ok {
		return Kind{Label: label}, nil
	}
	return Kind{Label: fallbackKindLabel(tag)}, nil
}
