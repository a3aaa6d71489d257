package ctree

import (
	"fmt"
	"unicode"
)

// schemaTable is the static containment schema: schemaTable[parent] lists
// the child kinds a parent kind accepts. Kinds absent from the table are
// leaves. Ordering inside Choose and the item operator rule are enforced
// separately; this table answers only the (parent, child) legality
// question.
var schemaTable = map[Kind][]Kind{
	ProjectKind: {
		TargetKind, ItemGroupKind, PropertyGroupKind, ItemDefinitionGroupKind,
		ImportKind, ImportGroupKind, UsingTaskKind, ChooseKind,
	},
	TargetKind:              {TaskKind, ItemGroupKind, PropertyGroupKind, ChooseKind},
	TaskKind:                {OutputItemKind, OutputPropertyKind},
	ItemGroupKind:           {ItemKind},
	PropertyGroupKind:       {PropertyKind},
	ItemDefinitionGroupKind: {ItemDefinitionKind},
	ImportGroupKind:         {ImportKind},
	UsingTaskKind:           {ParameterGroupKind},
	ParameterGroupKind:      {ParameterKind},
	ChooseKind:              {WhenKind, OtherwiseKind},
	WhenKind:                {ItemGroupKind, PropertyGroupKind, ChooseKind},
	OtherwiseKind:           {ItemGroupKind, PropertyGroupKind, ChooseKind},
	ItemKind:                {MetadataKind},
	ItemDefinitionKind:      {MetadataKind},
}

// EdgeLegal reports whether the schema allows a child of kind child under a
// parent of kind parent.
func EdgeLegal(parent, child Kind) bool {
	for _, k := range schemaTable[parent] {
		if k == child {
			return true
		}
	}
	return false
}

func checkEdge(parent, child *Node) error {
	if !EdgeLegal(parent.kind, child.kind) {
		return fmt.Errorf("%w: %s does not accept %s",
			ErrSchema, parent.kind, child.kind)
	}
	return nil
}

// checkChooseOrder enforces the branch ordering of a Choose: zero or more
// When children followed by at most one Otherwise. next is the prospective
// following sibling of the inserted node (nil for append).
func checkChooseOrder(choose *Node, k Kind, next *Node) error {
	switch k {
	case WhenKind:
		for c := choose.first; c != next; c = c.nextSib {
			if c.kind == OtherwiseKind {
				return fmt.Errorf("%w: When may not follow Otherwise", ErrSchema)
			}
		}
	case OtherwiseKind:
		for c := choose.first; c != nil; c = c.nextSib {
			if c.kind == OtherwiseKind {
				return fmt.Errorf("%w: Choose allows at most one Otherwise", ErrSchema)
			}
		}
		for c := next; c != nil; c = c.nextSib {
			if c.kind == WhenKind {
				return fmt.Errorf("%w: Otherwise may not precede When", ErrSchema)
			}
		}
	}
	return nil
}

// operatorAttrs are the item operator attributes; an item directly inside
// a top-level ItemGroup must carry a non-empty value for one of them.
var operatorAttrs = []string{"Include", "Remove", "Update"}

func hasItemOperator(item *Node) bool {
	for _, a := range operatorAttrs {
		if item.Attr(a) != "" {
			return true
		}
	}
	return false
}

// checkItemOperators enforces the top-level item operator rule, both when
// an Item lands inside an ItemGroup that already sits directly under the
// project root and when an ItemGroup carrying items is attached to the
// root. Items inside a Target's ItemGroup are exempt.
func checkItemOperators(parent, child *Node) error {
	isRoot := func(n *Node) bool { return n == &n.doc.Node }
	switch {
	case child.kind == ItemKind && parent.kind == ItemGroupKind:
		if parent.parent == nil || !isRoot(parent.parent) {
			return nil
		}
		if !hasItemOperator(child) {
			return fmt.Errorf(
				"%w: top-level Item requires an Include, Remove or Update attribute",
				ErrSchema)
		}
	case child.kind == ItemGroupKind && isRoot(parent):
		for c := child.first; c != nil; c = c.nextSib {
			if c.kind == ItemKind && !hasItemOperator(c) {
				return fmt.Errorf(
					"%w: top-level Item requires an Include, Remove or Update attribute",
					ErrSchema)
			}
		}
	}
	return nil
}

// reservedNames are identifiers a property may not use: the structural
// element names, which would be ambiguous in project text, and the builtin
// properties the engine defines itself.
var reservedNames = map[string]bool{
	"AnvilProjectFile":      true,
	"AnvilProjectDirectory": true,
	"AnvilThisFile":         true,
	"AnvilToolsPath":        true,
	"AnvilVersion":          true,
}

func init() {
	for _, k := range Kinds() {
		reservedNames[k.ElementName()] = true
	}
}

// ValidIdentifier reports whether v is a well-formed element identifier:
// a letter or underscore followed by letters, digits, '_', '-' or '.'.
func ValidIdentifier(v string) bool {
	if v == "" {
		return false
	}
	for i, r := range v {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.') {
			continue
		}
		return false
	}
	return true
}

// checkName validates an identifier used to name a property or item type.
// Malformed names and reserved names fail with distinct sentinels.
func checkName(name string, reservedApplies bool) error {
	if !ValidIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if reservedApplies && reservedNames[name] {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}
