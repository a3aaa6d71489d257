package encode

import (
	"io"
	"strings"

	"github.com/anvil-build/go-anvil/ctree"
)

type EncState struct {
	depth  int
	indent int

	Color func(ctree.Kind, ColorAttr, string) string
}

// Encode writes the canonical text of the tree rooted at node to w,
// followed by a newline. The output is stable for a given tree: attributes
// appear in a fixed order, children in document order.
func Encode(node *ctree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ctree.Node, w io.Writer, es *EncState) error {
	if err := writeOpen(node, w, es); err != nil {
		return err
	}
	if node.FirstChild() == nil && node.Text() == "" {
		return nil
	}
	if node.FirstChild() == nil {
		// leaf carrying a text value, on one line
		if err := writeString(w, es.color(node.Kind(), TextColor, escapeText(node.Text()))); err != nil {
			return err
		}
		return writeClose(node, w, es)
	}
	es.depth++
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if err := writeString(w, "\n"+es.pad()); err != nil {
			return err
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeString(w, "\n"+es.pad()); err != nil {
		return err
	}
	return writeClose(node, w, es)
}

func writeOpen(node *ctree.Node, w io.Writer, es *EncState) error {
	k := node.Kind()
	if err := writeString(w,
		es.color(k, SepColor, "<")+es.color(k, ElemColor, k.ElementName())); err != nil {
		return err
	}
	for _, name := range attrOrder(node) {
		s := " " + es.color(k, AttrNameColor, name) +
			es.color(k, SepColor, `="`) +
			es.color(k, AttrValueColor, escapeAttr(node.Attr(name))) +
			es.color(k, SepColor, `"`)
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	if node.FirstChild() == nil && node.Text() == "" {
		return writeString(w, es.color(k, SepColor, "/>"))
	}
	return writeString(w, es.color(k, SepColor, ">"))
}

func writeClose(node *ctree.Node, w io.Writer, es *EncState) error {
	k := node.Kind()
	return writeString(w,
		es.color(k, SepColor, "</")+
			es.color(k, ElemColor, k.ElementName())+
			es.color(k, SepColor, ">"))
}

// attrOrder returns the node's attribute names with the well-known
// attributes first, in a fixed order, and any remaining names sorted.
func attrOrder(node *ctree.Node) []string {
	var res []string
	seen := map[string]bool{}
	for _, name := range wellKnownAttrs {
		if node.HasAttr(name) {
			res = append(res, name)
			seen[name] = true
		}
	}
	for _, name := range node.AttrNames() {
		if !seen[name] {
			res = append(res, name)
		}
	}
	return res
}

var wellKnownAttrs = []string{
	"Name", "Type", "Include", "Remove", "Update", "Project",
	"TaskName", "AssemblyFile", "TaskParameter", "ItemName", "PropertyName",
	"Condition",
}

func (es *EncState) pad() string {
	return strings.Repeat(" ", es.depth*es.indent)
}

func (es *EncState) color(k ctree.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;",
)

func escapeAttr(v string) string { return attrEscaper.Replace(v) }
func escapeText(v string) string { return textEscaper.Replace(v) }

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
