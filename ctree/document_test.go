package ctree

import (
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc.Kind() != ProjectKind {
		t.Errorf("root kind = %s, want %s", doc.Kind(), ProjectKind)
	}
	if doc.Parent() != nil {
		t.Errorf("root has a parent")
	}
	if doc.Dirty() {
		t.Errorf("new document is dirty")
	}
	if doc.ChildCount() != 0 {
		t.Errorf("new document has children")
	}
}

func TestFactoriesReturnDetachedNodes(t *testing.T) {
	doc := NewDocument()
	nodes := []*Node{
		doc.CreateTarget("t"),
		doc.CreateTask("T"),
		doc.CreateItemGroup(),
		doc.CreateItem("Compile", "a.go"),
		doc.CreatePropertyGroup(),
		doc.CreateProperty("p", "v"),
		doc.CreateItemDefinitionGroup(),
		doc.CreateItemDefinition("Compile"),
		doc.CreateImport("x.anvil"),
		doc.CreateImportGroup(),
		doc.CreateUsingTask("Gen", "gen.so"),
		doc.CreateParameterGroup(),
		doc.CreateParameter("In"),
		doc.CreateChoose(),
		doc.CreateWhen("c"),
		doc.CreateOtherwise(),
		doc.CreateMetadata("m", "v"),
		doc.CreateOutputItem("Out", "Obj"),
		doc.CreateOutputProperty("Out", "P"),
	}
	for _, n := range nodes {
		if n.Parent() != nil || n.PrevSibling() != nil || n.NextSibling() != nil {
			t.Errorf("%s factory returned an attached node", n.Kind())
		}
		if n.Document() != doc {
			t.Errorf("%s factory returned a node with the wrong document", n.Kind())
		}
	}
	if doc.Dirty() {
		t.Errorf("creating detached nodes dirtied the document")
	}
}

func TestDirtyTracking(t *testing.T) {
	doc := NewDocument()
	tgt, err := doc.AddTarget("t")
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Dirty() {
		t.Fatalf("structural mutation did not dirty")
	}
	doc.ClearDirty()
	tgt.SetAttr("DependsOn", "other")
	if !doc.Dirty() {
		t.Errorf("attribute mutation on attached node did not dirty")
	}
	doc.ClearDirty()
	tgt.RemoveAttr("DependsOn")
	if !doc.Dirty() {
		t.Errorf("attribute removal did not dirty")
	}
	doc.ClearDirty()
	tgt.RemoveAttr("NoSuchAttr")
	if doc.Dirty() {
		t.Errorf("removing an absent attribute dirtied the document")
	}
	doc.ClearDirty()
	if err := doc.Remove(tgt); err != nil {
		t.Fatal(err)
	}
	if !doc.Dirty() {
		t.Errorf("removal did not dirty")
	}
}

func TestOnChange(t *testing.T) {
	doc := NewDocument()
	calls := 0
	doc.OnChange(func(d *Document) {
		if d != doc {
			t.Errorf("listener got wrong document")
		}
		calls++
	})
	if _, err := doc.AddTarget("t"); err != nil {
		t.Fatal(err)
	}
	if calls == 0 {
		t.Errorf("listener not called on mutation")
	}
	n := calls
	doc.CreateTarget("detached")
	if calls != n {
		t.Errorf("listener called for a factory")
	}
	doc.OnChange(nil)
	if _, err := doc.AddTarget("t2"); err != nil {
		t.Fatal(err)
	}
	if calls != n {
		t.Errorf("listener called after unregister")
	}
}

func TestKindStrings(t *testing.T) {
	if got := ChooseKind.String(); got != "Choose" {
		t.Errorf("Choose kind = %q", got)
	}
	if got := OutputItemKind.ElementName(); got != "Output" {
		t.Errorf("OutputItem element = %q", got)
	}
	if got := OutputPropertyKind.ElementName(); got != "Output" {
		t.Errorf("OutputProperty element = %q", got)
	}
	if got := Kind(99).String(); got != "<unknown kind>" {
		t.Errorf("unknown kind = %q", got)
	}
	if n := len(Kinds()); n != 20 {
		t.Errorf("kind count = %d, want 20", n)
	}
}
