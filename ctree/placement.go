package ctree

// Convenience mutators. Each one decides a position over the document's
// top-level children, then funnels through the container primitives, so
// every invariant is enforced in one place.

// lastTopLevel returns the last direct child of d with the given kind.
func (d *Document) lastTopLevel(k Kind) *Node {
	for c := d.last; c != nil; c = c.prevSib {
		if c.kind == k {
			return c
		}
	}
	return nil
}

// AddTarget creates a Target with the given name and appends it at the end
// of the document.
func (d *Document) AddTarget(name string) (*Node, error) {
	if err := checkName(name, false); err != nil {
		return nil, err
	}
	t := d.CreateTarget(name)
	if err := d.Append(t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddPropertyGroup creates a new PropertyGroup at the start of the
// document. Existing groups are never reused.
func (d *Document) AddPropertyGroup() (*Node, error) {
	g := d.CreatePropertyGroup()
	if err := d.Prepend(g); err != nil {
		return nil, err
	}
	return g, nil
}

// AddItemGroup creates a new ItemGroup after the last existing top-level
// ItemGroup, or at the end of the document when there is none. Existing
// groups are never reused.
func (d *Document) AddItemGroup() (*Node, error) {
	g := d.CreateItemGroup()
	ref := d.lastTopLevel(ItemGroupKind)
	if ref == nil {
		if err := d.Append(g); err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := d.InsertAfter(g, ref); err != nil {
		return nil, err
	}
	return g, nil
}

// AddItemDefinitionGroup creates a new ItemDefinitionGroup after the last
// existing one, or at the end of the document.
func (d *Document) AddItemDefinitionGroup() (*Node, error) {
	g := d.CreateItemDefinitionGroup()
	ref := d.lastTopLevel(ItemDefinitionGroupKind)
	if ref == nil {
		if err := d.Append(g); err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := d.InsertAfter(g, ref); err != nil {
		return nil, err
	}
	return g, nil
}

// itemGroupFor picks (or creates) the top-level ItemGroup an item of the
// given type belongs in: in document order, the first group already
// containing the type; else the first empty, unconditioned group; else a
// fresh group placed by the AddItemGroup rule.
func (d *Document) itemGroupFor(itemType string) (*Node, error) {
	var firstEmpty *Node
	for c := d.first; c != nil; c = c.nextSib {
		if c.kind != ItemGroupKind {
			continue
		}
		for it := c.first; it != nil; it = it.nextSib {
			if it.kind == ItemKind && it.ItemType() == itemType {
				return c, nil
			}
		}
		if firstEmpty == nil && c.children == 0 && c.Condition() == "" {
			firstEmpty = c
		}
	}
	if firstEmpty != nil {
		return firstEmpty, nil
	}
	return d.AddItemGroup()
}

// AddItem adds a new item of the given type, grouping it with existing
// items of the same type and keeping the chosen group sorted by
// (type, include).
func (d *Document) AddItem(itemType, include string) (*Node, error) {
	if err := checkName(itemType, false); err != nil {
		return nil, err
	}
	g, err := d.itemGroupFor(itemType)
	if err != nil {
		return nil, err
	}
	return g.AddItem(itemType, include)
}

// AddItem inserts a new item into the ItemGroup n at the position keeping
// the group totally ordered by (type, include), compared ordinally
// ascending; an item equal in key to existing ones lands after them, so
// call order is preserved among duplicates.
func (n *Node) AddItem(itemType, include string) (*Node, error) {
	item := n.doc.CreateItem(itemType, include)
	var ref *Node
	for c := n.first; c != nil; c = c.nextSib {
		if c.kind != ItemKind {
			continue
		}
		if c.ItemType() > itemType ||
			(c.ItemType() == itemType && c.Include() > include) {
			ref = c
			break
		}
	}
	if err := n.InsertBefore(item, ref); err != nil {
		return nil, err
	}
	return item, nil
}

// AddItemDefinition adds an ItemDefinition for the given type, reusing
// only a group that already defines the type. An empty group is never
// reused; with no match a new group is created by the
// AddItemDefinitionGroup rule.
func (d *Document) AddItemDefinition(itemType string) (*Node, error) {
	if err := checkName(itemType, false); err != nil {
		return nil, err
	}
	var group *Node
	for c := d.first; c != nil && group == nil; c = c.nextSib {
		if c.kind != ItemDefinitionGroupKind {
			continue
		}
		for def := c.first; def != nil; def = def.nextSib {
			if def.kind == ItemDefinitionKind && def.ItemType() == itemType {
				group = c
				break
			}
		}
	}
	if group == nil {
		var err error
		group, err = d.AddItemDefinitionGroup()
		if err != nil {
			return nil, err
		}
	}
	def := d.CreateItemDefinition(itemType)
	if err := group.Append(def); err != nil {
		return nil, err
	}
	return def, nil
}

// AddProperty sets the named property. An existing unconditioned property
// with this name in an unconditioned top-level group is overwritten in
// place and returned; otherwise a new Property is appended to the last
// unconditioned PropertyGroup, creating one by the AddPropertyGroup rule
// when none exists.
func (d *Document) AddProperty(name, value string) (*Node, error) {
	if err := checkName(name, true); err != nil {
		return nil, err
	}
	var lastPlain *Node
	for c := d.first; c != nil; c = c.nextSib {
		if c.kind != PropertyGroupKind || c.Condition() != "" {
			continue
		}
		lastPlain = c
		for p := c.first; p != nil; p = p.nextSib {
			if p.kind == PropertyKind && p.Name() == name && p.Condition() == "" {
				p.SetText(value)
				return p, nil
			}
		}
	}
	if lastPlain == nil {
		var err error
		lastPlain, err = d.AddPropertyGroup()
		if err != nil {
			return nil, err
		}
	}
	p := d.CreateProperty(name, value)
	if err := lastPlain.Append(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddImport creates an Import of the given project path after the last
// existing top-level Import, or at the end of the document.
func (d *Document) AddImport(project string) (*Node, error) {
	imp := d.CreateImport(project)
	ref := d.lastTopLevel(ImportKind)
	if ref == nil {
		if err := d.Append(imp); err != nil {
			return nil, err
		}
		return imp, nil
	}
	if err := d.InsertAfter(imp, ref); err != nil {
		return nil, err
	}
	return imp, nil
}

// AddImportGroup creates an ImportGroup after the last existing one, or at
// the end of the document.
func (d *Document) AddImportGroup() (*Node, error) {
	g := d.CreateImportGroup()
	ref := d.lastTopLevel(ImportGroupKind)
	if ref == nil {
		if err := d.Append(g); err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := d.InsertAfter(g, ref); err != nil {
		return nil, err
	}
	return g, nil
}

// AddUsingTask creates a UsingTask at the end of the document.
func (d *Document) AddUsingTask(taskName, assemblyFile string) (*Node, error) {
	if err := checkName(taskName, false); err != nil {
		return nil, err
	}
	ut := d.CreateUsingTask(taskName, assemblyFile)
	if err := d.Append(ut); err != nil {
		return nil, err
	}
	return ut, nil
}

// AddTask appends a Task invoking the named task to the Target n.
func (n *Node) AddTask(name string) (*Node, error) {
	if err := checkName(name, false); err != nil {
		return nil, err
	}
	t := n.doc.CreateTask(name)
	if err := n.Append(t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddProperty appends a Property name=value to the PropertyGroup n.
func (n *Node) AddProperty(name, value string) (*Node, error) {
	if err := checkName(name, true); err != nil {
		return nil, err
	}
	p := n.doc.CreateProperty(name, value)
	if err := n.Append(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetProperty updates the named property in the PropertyGroup n, appending
// a new one when absent.
func (n *Node) SetProperty(name, value string) (*Node, error) {
	for p := n.first; p != nil; p = p.nextSib {
		if p.kind == PropertyKind && p.Name() == name {
			p.SetText(value)
			return p, nil
		}
	}
	return n.AddProperty(name, value)
}

// AddMetadata appends a Metadata name=value to the Item or ItemDefinition n.
func (n *Node) AddMetadata(name, value string) (*Node, error) {
	if err := checkName(name, false); err != nil {
		return nil, err
	}
	m := n.doc.CreateMetadata(name, value)
	if err := n.Append(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AddOutputItem appends a task output feeding an item type to the Task n.
func (n *Node) AddOutputItem(taskParameter, itemType string) (*Node, error) {
	o := n.doc.CreateOutputItem(taskParameter, itemType)
	if err := n.Append(o); err != nil {
		return nil, err
	}
	return o, nil
}

// AddOutputProperty appends a task output feeding a property to the Task n.
func (n *Node) AddOutputProperty(taskParameter, propertyName string) (*Node, error) {
	o := n.doc.CreateOutputProperty(taskParameter, propertyName)
	if err := n.Append(o); err != nil {
		return nil, err
	}
	return o, nil
}
