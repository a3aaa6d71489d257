package ctree

import "fmt"

// Kind identifies the element kind of a Node. The set of kinds is closed:
// every node in a construction tree is one of these.
type Kind int

const (
	ProjectKind Kind = iota
	TargetKind
	TaskKind
	ItemGroupKind
	ItemKind
	PropertyGroupKind
	PropertyKind
	ItemDefinitionGroupKind
	ItemDefinitionKind
	ImportGroupKind
	ImportKind
	UsingTaskKind
	ParameterGroupKind
	ParameterKind
	ChooseKind
	WhenKind
	OtherwiseKind
	MetadataKind
	OutputItemKind
	OutputPropertyKind
)

var kindNames = map[Kind]string{
	ProjectKind:             "Project",
	TargetKind:              "Target",
	TaskKind:                "Task",
	ItemGroupKind:           "ItemGroup",
	ItemKind:                "Item",
	PropertyGroupKind:       "PropertyGroup",
	PropertyKind:            "Property",
	ItemDefinitionGroupKind: "ItemDefinitionGroup",
	ItemDefinitionKind:      "ItemDefinition",
	ImportGroupKind:         "ImportGroup",
	ImportKind:              "Import",
	UsingTaskKind:           "UsingTask",
	ParameterGroupKind:      "ParameterGroup",
	ParameterKind:           "Parameter",
	ChooseKind:              "Choose",
	WhenKind:                "When",
	OtherwiseKind:           "Otherwise",
	MetadataKind:            "Metadata",
	OutputItemKind:          "OutputItem",
	OutputPropertyKind:      "OutputProperty",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// ElementName returns the name under which nodes of this kind appear in
// Anvil project text. OutputItem and OutputProperty share the "Output"
// element and are distinguished by their attributes.
func (k Kind) ElementName() string {
	switch k {
	case OutputItemKind, OutputPropertyKind:
		return "Output"
	default:
		return k.String()
	}
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames))
	for k := ProjectKind; k <= OutputPropertyKind; k++ {
		res = append(res, k)
	}
	return res
}

// ParseKind maps an element kind name to its Kind. The "Output" element
// name is ambiguous between OutputItemKind and OutputPropertyKind and is
// not accepted here.
func ParseKind(v string) (Kind, error) {
	for k, s := range kindNames {
		if s == v {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not an element kind", ErrBadName, v)
}
