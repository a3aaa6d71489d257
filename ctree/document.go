package ctree

// Document is the root container of a construction tree. It owns every
// node created through its factory methods and carries the dirty flag that
// tracks unsaved changes.
//
// A Document is single-writer: callers needing concurrent access must
// serialize externally.
type Document struct {
	Node

	dirty    bool
	onChange func(*Document)
}

// NewDocument returns an empty document whose root is a Project container.
func NewDocument() *Document {
	d := &Document{}
	d.Node.kind = ProjectKind
	d.Node.doc = d
	return d
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// ClearDirty resets the dirty flag, typically after the document's text
// has been written out.
func (d *Document) ClearDirty() { d.dirty = false }

// OnChange registers f to be called after every mutation that dirties the
// document. The serialization layer uses this as its mark-changed signal.
// A nil f unregisters.
func (d *Document) OnChange(f func(*Document)) { d.onChange = f }

func (d *Document) markDirty() {
	d.dirty = true
	if d.onChange != nil {
		d.onChange(d)
	}
}

// newNode returns a detached node of kind k owned by d.
func (d *Document) newNode(k Kind) *Node {
	return &Node{kind: k, doc: d}
}

func (d *Document) newNamed(k Kind, name string) *Node {
	n := d.newNode(k)
	n.attrs = map[string]string{"Name": name}
	return n
}

// CreateTarget returns a detached Target with the given name.
func (d *Document) CreateTarget(name string) *Node {
	return d.newNamed(TargetKind, name)
}

// CreateTask returns a detached Task invoking the named task.
func (d *Document) CreateTask(name string) *Node {
	return d.newNamed(TaskKind, name)
}

// CreateItemGroup returns a detached, empty ItemGroup.
func (d *Document) CreateItemGroup() *Node {
	return d.newNode(ItemGroupKind)
}

// CreateItem returns a detached Item of the given type with the given
// include specification.
func (d *Document) CreateItem(itemType, include string) *Node {
	n := d.newNode(ItemKind)
	n.attrs = map[string]string{"Type": itemType}
	if include != "" {
		n.attrs["Include"] = include
	}
	return n
}

// CreatePropertyGroup returns a detached, empty PropertyGroup.
func (d *Document) CreatePropertyGroup() *Node {
	return d.newNode(PropertyGroupKind)
}

// CreateProperty returns a detached Property name=value.
func (d *Document) CreateProperty(name, value string) *Node {
	n := d.newNamed(PropertyKind, name)
	n.text = value
	return n
}

// CreateItemDefinitionGroup returns a detached, empty ItemDefinitionGroup.
func (d *Document) CreateItemDefinitionGroup() *Node {
	return d.newNode(ItemDefinitionGroupKind)
}

// CreateItemDefinition returns a detached ItemDefinition for the given
// item type.
func (d *Document) CreateItemDefinition(itemType string) *Node {
	n := d.newNode(ItemDefinitionKind)
	n.attrs = map[string]string{"Type": itemType}
	return n
}

// CreateImport returns a detached Import of the given project path.
func (d *Document) CreateImport(project string) *Node {
	n := d.newNode(ImportKind)
	n.attrs = map[string]string{"Project": project}
	return n
}

// CreateImportGroup returns a detached, empty ImportGroup.
func (d *Document) CreateImportGroup() *Node {
	return d.newNode(ImportGroupKind)
}

// CreateUsingTask returns a detached UsingTask mapping a task name to the
// assembly file providing it.
func (d *Document) CreateUsingTask(taskName, assemblyFile string) *Node {
	n := d.newNode(UsingTaskKind)
	n.attrs = map[string]string{"TaskName": taskName, "AssemblyFile": assemblyFile}
	return n
}

// CreateParameterGroup returns a detached, empty ParameterGroup.
func (d *Document) CreateParameterGroup() *Node {
	return d.newNode(ParameterGroupKind)
}

// CreateParameter returns a detached Parameter with the given name.
func (d *Document) CreateParameter(name string) *Node {
	return d.newNamed(ParameterKind, name)
}

// CreateChoose returns a detached, empty Choose.
func (d *Document) CreateChoose() *Node {
	return d.newNode(ChooseKind)
}

// CreateWhen returns a detached When with the given condition.
func (d *Document) CreateWhen(condition string) *Node {
	n := d.newNode(WhenKind)
	n.attrs = map[string]string{"Condition": condition}
	return n
}

// CreateOtherwise returns a detached Otherwise.
func (d *Document) CreateOtherwise() *Node {
	return d.newNode(OtherwiseKind)
}

// CreateMetadata returns a detached Metadata name=value.
func (d *Document) CreateMetadata(name, value string) *Node {
	n := d.newNamed(MetadataKind, name)
	n.text = value
	return n
}

// CreateOutputItem returns a detached task output feeding an item type.
func (d *Document) CreateOutputItem(taskParameter, itemType string) *Node {
	n := d.newNode(OutputItemKind)
	n.attrs = map[string]string{"TaskParameter": taskParameter, "ItemName": itemType}
	return n
}

// CreateOutputProperty returns a detached task output feeding a property.
func (d *Document) CreateOutputProperty(taskParameter, propertyName string) *Node {
	n := d.newNode(OutputPropertyKind)
	n.attrs = map[string]string{"TaskParameter": taskParameter, "PropertyName": propertyName}
	return n
}
