package load

import (
	"fmt"
	"os"

	"github.com/anvil-build/go-anvil/ctree"
	"github.com/anvil-build/go-anvil/debug"

	"github.com/goccy/go-yaml"
)

// File is the YAML description of an Anvil project. It mirrors the
// construction tree kind by kind; the loader turns it into a tree using
// only the public container operations, so every structural invariant is
// checked on the way in.
type File struct {
	Project Project `yaml:"project"`
}

type Project struct {
	PropertyGroups       []PropertyGroup       `yaml:"propertyGroups"`
	ItemGroups           []ItemGroup           `yaml:"itemGroups"`
	ItemDefinitionGroups []ItemDefinitionGroup `yaml:"itemDefinitionGroups"`
	Imports              []Import              `yaml:"imports"`
	ImportGroups         []ImportGroup         `yaml:"importGroups"`
	UsingTasks           []UsingTask           `yaml:"usingTasks"`
	Chooses              []Choose              `yaml:"chooses"`
	Targets              []Target              `yaml:"targets"`
}

type PropertyGroup struct {
	Condition  string     `yaml:"condition"`
	Properties []Property `yaml:"properties"`
}

type Property struct {
	Name      string `yaml:"name"`
	Value     string `yaml:"value"`
	Condition string `yaml:"condition"`
}

type ItemGroup struct {
	Condition string `yaml:"condition"`
	Items     []Item `yaml:"items"`
}

type Item struct {
	Type      string     `yaml:"type"`
	Include   string     `yaml:"include"`
	Remove    string     `yaml:"remove"`
	Update    string     `yaml:"update"`
	Condition string     `yaml:"condition"`
	Metadata  []Metadata `yaml:"metadata"`
}

type Metadata struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type ItemDefinitionGroup struct {
	Condition   string           `yaml:"condition"`
	Definitions []ItemDefinition `yaml:"definitions"`
}

type ItemDefinition struct {
	Type     string     `yaml:"type"`
	Metadata []Metadata `yaml:"metadata"`
}

type Import struct {
	Project   string `yaml:"project"`
	Condition string `yaml:"condition"`
}

type ImportGroup struct {
	Condition string   `yaml:"condition"`
	Imports   []Import `yaml:"imports"`
}

type UsingTask struct {
	TaskName     string      `yaml:"taskName"`
	AssemblyFile string      `yaml:"assemblyFile"`
	Parameters   []Parameter `yaml:"parameters"`
}

type Parameter struct {
	Name string `yaml:"name"`
}

type Choose struct {
	Whens     []When  `yaml:"whens"`
	Otherwise *Branch `yaml:"otherwise"`
}

type When struct {
	Condition string `yaml:"condition"`
	Branch    `yaml:",inline"`
}

// Branch holds the body shared by When and Otherwise.
type Branch struct {
	PropertyGroups []PropertyGroup `yaml:"propertyGroups"`
	ItemGroups     []ItemGroup     `yaml:"itemGroups"`
	Chooses        []Choose        `yaml:"chooses"`
}

type Target struct {
	Name           string          `yaml:"name"`
	Condition      string          `yaml:"condition"`
	Tasks          []Task          `yaml:"tasks"`
	ItemGroups     []ItemGroup     `yaml:"itemGroups"`
	PropertyGroups []PropertyGroup `yaml:"propertyGroups"`
}

type Task struct {
	Name      string   `yaml:"name"`
	Condition string   `yaml:"condition"`
	Outputs   []Output `yaml:"outputs"`
}

type Output struct {
	TaskParameter string `yaml:"taskParameter"`
	ItemType      string `yaml:"itemType"`
	PropertyName  string `yaml:"propertyName"`
}

// LoadFile reads path and builds its construction tree.
func LoadFile(path string) (*ctree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	doc, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return doc, nil
}

// Load builds a construction tree from a YAML project description. The
// returned document is clean: loading is not an unsaved change.
func Load(data []byte) (*ctree.Document, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error decoding project description: %w", err)
	}
	doc := ctree.NewDocument()
	if err := buildProject(doc, &f.Project); err != nil {
		return nil, err
	}
	doc.ClearDirty()
	if debug.Load() {
		debug.Logf("loaded project: %s", &doc.Node)
	}
	return doc, nil
}

func buildProject(doc *ctree.Document, p *Project) error {
	for i := range p.PropertyGroups {
		g, err := buildPropertyGroup(doc, &p.PropertyGroups[i])
		if err != nil {
			return err
		}
		if err := doc.Append(g); err != nil {
			return err
		}
	}
	for i := range p.ItemGroups {
		g, err := buildItemGroup(doc, &p.ItemGroups[i])
		if err != nil {
			return err
		}
		if err := doc.Append(g); err != nil {
			return err
		}
	}
	for i := range p.ItemDefinitionGroups {
		g, err := buildItemDefinitionGroup(doc, &p.ItemDefinitionGroups[i])
		if err != nil {
			return err
		}
		if err := doc.Append(g); err != nil {
			return err
		}
	}
	for i := range p.Imports {
		if err := doc.Append(buildImport(doc, &p.Imports[i])); err != nil {
			return err
		}
	}
	for i := range p.ImportGroups {
		g, err := buildImportGroup(doc, &p.ImportGroups[i])
		if err != nil {
			return err
		}
		if err := doc.Append(g); err != nil {
			return err
		}
	}
	for i := range p.UsingTasks {
		ut, err := buildUsingTask(doc, &p.UsingTasks[i])
		if err != nil {
			return err
		}
		if err := doc.Append(ut); err != nil {
			return err
		}
	}
	for i := range p.Chooses {
		ch, err := buildChoose(doc, &p.Chooses[i])
		if err != nil {
			return err
		}
		if err := doc.Append(ch); err != nil {
			return err
		}
	}
	for i := range p.Targets {
		t, err := buildTarget(doc, &p.Targets[i])
		if err != nil {
			return err
		}
		if err := doc.Append(t); err != nil {
			return err
		}
	}
	return nil
}

func buildPropertyGroup(doc *ctree.Document, pg *PropertyGroup) (*ctree.Node, error) {
	g := doc.CreatePropertyGroup()
	setCondition(g, pg.Condition)
	for _, p := range pg.Properties {
		prop := doc.CreateProperty(p.Name, p.Value)
		setCondition(prop, p.Condition)
		if err := g.Append(prop); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildItemGroup(doc *ctree.Document, ig *ItemGroup) (*ctree.Node, error) {
	g := doc.CreateItemGroup()
	setCondition(g, ig.Condition)
	for i := range ig.Items {
		item, err := buildItem(doc, &ig.Items[i])
		if err != nil {
			return nil, err
		}
		if err := g.Append(item); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildItem(doc *ctree.Document, it *Item) (*ctree.Node, error) {
	item := doc.CreateItem(it.Type, it.Include)
	if it.Remove != "" {
		item.SetAttr("Remove", it.Remove)
	}
	if it.Update != "" {
		item.SetAttr("Update", it.Update)
	}
	setCondition(item, it.Condition)
	for _, m := range it.Metadata {
		if err := item.Append(doc.CreateMetadata(m.Name, m.Value)); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func buildItemDefinitionGroup(doc *ctree.Document, idg *ItemDefinitionGroup) (*ctree.Node, error) {
	g := doc.CreateItemDefinitionGroup()
	setCondition(g, idg.Condition)
	for _, d := range idg.Definitions {
		def := doc.CreateItemDefinition(d.Type)
		for _, m := range d.Metadata {
			if err := def.Append(doc.CreateMetadata(m.Name, m.Value)); err != nil {
				return nil, err
			}
		}
		if err := g.Append(def); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildImport(doc *ctree.Document, imp *Import) *ctree.Node {
	n := doc.CreateImport(imp.Project)
	setCondition(n, imp.Condition)
	return n
}

func buildImportGroup(doc *ctree.Document, ig *ImportGroup) (*ctree.Node, error) {
	g := doc.CreateImportGroup()
	setCondition(g, ig.Condition)
	for i := range ig.Imports {
		if err := g.Append(buildImport(doc, &ig.Imports[i])); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildUsingTask(doc *ctree.Document, ut *UsingTask) (*ctree.Node, error) {
	n := doc.CreateUsingTask(ut.TaskName, ut.AssemblyFile)
	if len(ut.Parameters) == 0 {
		return n, nil
	}
	pg := doc.CreateParameterGroup()
	for _, p := range ut.Parameters {
		if err := pg.Append(doc.CreateParameter(p.Name)); err != nil {
			return nil, err
		}
	}
	if err := n.Append(pg); err != nil {
		return nil, err
	}
	return n, nil
}

func buildChoose(doc *ctree.Document, ch *Choose) (*ctree.Node, error) {
	choose := doc.CreateChoose()
	for i := range ch.Whens {
		w := &ch.Whens[i]
		when := doc.CreateWhen(w.Condition)
		if err := buildBranch(doc, when, &w.Branch); err != nil {
			return nil, err
		}
		if err := choose.Append(when); err != nil {
			return nil, err
		}
	}
	if ch.Otherwise != nil {
		other := doc.CreateOtherwise()
		if err := buildBranch(doc, other, ch.Otherwise); err != nil {
			return nil, err
		}
		if err := choose.Append(other); err != nil {
			return nil, err
		}
	}
	return choose, nil
}

func buildBranch(doc *ctree.Document, parent *ctree.Node, b *Branch) error {
	for i := range b.PropertyGroups {
		g, err := buildPropertyGroup(doc, &b.PropertyGroups[i])
		if err != nil {
			return err
		}
		if err := parent.Append(g); err != nil {
			return err
		}
	}
	for i := range b.ItemGroups {
		g, err := buildItemGroup(doc, &b.ItemGroups[i])
		if err != nil {
			return err
		}
		if err := parent.Append(g); err != nil {
			return err
		}
	}
	for i := range b.Chooses {
		ch, err := buildChoose(doc, &b.Chooses[i])
		if err != nil {
			return err
		}
		if err := parent.Append(ch); err != nil {
			return err
		}
	}
	return nil
}

func buildTarget(doc *ctree.Document, t *Target) (*ctree.Node, error) {
	target := doc.CreateTarget(t.Name)
	setCondition(target, t.Condition)
	for i := range t.Tasks {
		task, err := buildTask(doc, &t.Tasks[i])
		if err != nil {
			return nil, err
		}
		if err := target.Append(task); err != nil {
			return nil, err
		}
	}
	for i := range t.ItemGroups {
		g, err := buildItemGroup(doc, &t.ItemGroups[i])
		if err != nil {
			return nil, err
		}
		if err := target.Append(g); err != nil {
			return nil, err
		}
	}
	for i := range t.PropertyGroups {
		g, err := buildPropertyGroup(doc, &t.PropertyGroups[i])
		if err != nil {
			return nil, err
		}
		if err := target.Append(g); err != nil {
			return nil, err
		}
	}
	return target, nil
}

func buildTask(doc *ctree.Document, t *Task) (*ctree.Node, error) {
	task := doc.CreateTask(t.Name)
	setCondition(task, t.Condition)
	for _, o := range t.Outputs {
		var out *ctree.Node
		if o.PropertyName != "" {
			out = doc.CreateOutputProperty(o.TaskParameter, o.PropertyName)
		} else {
			out = doc.CreateOutputItem(o.TaskParameter, o.ItemType)
		}
		if err := task.Append(out); err != nil {
			return nil, err
		}
	}
	return task, nil
}

func setCondition(n *ctree.Node, cond string) {
	if cond != "" {
		n.SetCondition(cond)
	}
}
