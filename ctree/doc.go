// Package ctree implements the construction tree: the editable in-memory
// document model for Anvil build-project files.
//
// # Overview
//
// A construction tree is rooted at a [Document] and built from [Node]
// values of a closed set of element kinds (Project, Target, ItemGroup,
// Item, PropertyGroup, Property, Choose, ...). Nodes are created detached
// by the Document's Create* factories and attached with the container
// operations:
//
//	doc := ctree.NewDocument()
//	g := doc.CreateItemGroup()
//	if err := doc.Append(g); err != nil { ... }
//	item := doc.CreateItem("Compile", "main.go")
//	if err := g.Append(item); err != nil { ... }
//
// Every structural operation funnels through one enforcement point that
// checks, in order: document ownership, prior parentage, acyclicity, the
// containment schema (including branch ordering inside Choose and the
// top-level item operator rule), and the nesting depth limit. A failed
// operation reports one of the sentinel errors in errs.go and leaves the
// tree untouched.
//
// # Placement heuristics
//
// The Add* convenience mutators on Document (AddTarget, AddItem,
// AddProperty, AddItemGroup, ...) decide where a new element belongs using
// document-order heuristics — reusing an existing group where the rules
// allow it — and then invoke the same container primitives.
//
// # Dirty tracking
//
// Each successful mutation reachable from the document root marks the
// document dirty and fires its change listener. Edits inside detached
// fragments are always legal, never schema checked, and do not dirty the
// document.
//
// # Related packages
//
//   - github.com/anvil-build/go-anvil/encode - canonical text for a tree
//   - github.com/anvil-build/go-anvil/load - bulk-build a tree from YAML
package ctree
