package encode

import (
	"strings"

	"github.com/anvil-build/go-anvil/ctree"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ctree.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ElemColor ColorAttr = iota
	AttrNameColor
	AttrValueColor
	TextColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ctree.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: ElemColor,
		}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = AttrNameColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = AttrValueColor
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		able.Attr = TextColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	// groups and conditionals stand out from their contents
	for _, k := range []ctree.Kind{
		ctree.ProjectKind, ctree.TargetKind, ctree.ItemGroupKind,
		ctree.PropertyGroupKind, ctree.ItemDefinitionGroupKind,
		ctree.ImportGroupKind, ctree.ChooseKind, ctree.WhenKind,
		ctree.OtherwiseKind,
	} {
		colors.Map[Colorable{Kind: k, Attr: ElemColor}] = color.RGB(74, 92, 138).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ctree.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ctree.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
