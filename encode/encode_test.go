package encode

import (
	"testing"

	"github.com/anvil-build/go-anvil/ctree"
)

func buildSample(t *testing.T) *ctree.Document {
	t.Helper()
	doc := ctree.NewDocument()
	pg := doc.CreatePropertyGroup()
	if err := doc.Append(pg); err != nil {
		t.Fatal(err)
	}
	if err := pg.Append(doc.CreateProperty("Configuration", "Debug")); err != nil {
		t.Fatal(err)
	}
	ig := doc.CreateItemGroup()
	if err := doc.Append(ig); err != nil {
		t.Fatal(err)
	}
	if err := ig.Append(doc.CreateItem("Compile", "main.go")); err != nil {
		t.Fatal(err)
	}
	tgt := doc.CreateTarget("build")
	if err := doc.Append(tgt); err != nil {
		t.Fatal(err)
	}
	task := doc.CreateTask("Compile")
	if err := tgt.Append(task); err != nil {
		t.Fatal(err)
	}
	if err := task.Append(doc.CreateOutputItem("Out", "Obj")); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestEncode(t *testing.T) {
	doc := buildSample(t)
	want := `<Project>
  <PropertyGroup>
    <Property Name="Configuration">Debug</Property>
  </PropertyGroup>
  <ItemGroup>
    <Item Type="Compile" Include="main.go"/>
  </ItemGroup>
  <Target Name="build">
    <Task Name="Compile">
      <Output TaskParameter="Out" ItemName="Obj"/>
    </Task>
  </Target>
</Project>`
	got := MustString(&doc.Node)
	if got != want {
		t.Errorf("encoded text:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmptyDocument(t *testing.T) {
	doc := ctree.NewDocument()
	if got := MustString(&doc.Node); got != "<Project/>" {
		t.Errorf("empty document = %q", got)
	}
}

func TestEncodeEscaping(t *testing.T) {
	doc := ctree.NewDocument()
	pg := doc.CreatePropertyGroup()
	if err := doc.Append(pg); err != nil {
		t.Fatal(err)
	}
	p := doc.CreateProperty("P", "a < b & c")
	p.SetCondition(`'$(X)'=="1"`)
	if err := pg.Append(p); err != nil {
		t.Fatal(err)
	}
	want := `<Project>
  <PropertyGroup>
    <Property Name="P" Condition="'$(X)'==&quot;1&quot;">a &lt; b &amp; c</Property>
  </PropertyGroup>
</Project>`
	if got := MustString(&doc.Node); got != want {
		t.Errorf("encoded text:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeStable(t *testing.T) {
	doc := buildSample(t)
	a := MustString(&doc.Node)
	b := MustString(&doc.Node)
	if a != b {
		t.Errorf("encoding not stable")
	}
}

func TestColorsFallBackToDefault(t *testing.T) {
	colors := NewColors()
	f := colors.Get(ctree.ProjectKind, ColorAttr(42))
	if got := f("x"); got != "x" {
		t.Errorf("default color changed text: %q", got)
	}
}
