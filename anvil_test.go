package anvil

import (
	"strings"
	"testing"

	"github.com/anvil-build/go-anvil/ctree"
)

func mustAddProperty(t *testing.T, doc *ctree.Document, name, value string) {
	t.Helper()
	if _, err := doc.AddProperty(name, value); err != nil {
		t.Fatal(err)
	}
}

func TestText(t *testing.T) {
	doc := ctree.NewDocument()
	mustAddProperty(t, doc, "Configuration", "Debug")
	text := Text(doc)
	if !strings.Contains(text, `<Property Name="Configuration">Debug</Property>`) {
		t.Errorf("text missing property:\n%s", text)
	}
	if !strings.HasPrefix(text, "<Project>") {
		t.Errorf("text does not start with project element:\n%s", text)
	}
}

func TestDiffEqualDocuments(t *testing.T) {
	a, b := ctree.NewDocument(), ctree.NewDocument()
	mustAddProperty(t, a, "P", "v")
	mustAddProperty(t, b, "P", "v")
	if d := Diff(a, b); d != "" {
		t.Errorf("diff of equal documents:\n%s", d)
	}
}

func TestDiff(t *testing.T) {
	a, b := ctree.NewDocument(), ctree.NewDocument()
	mustAddProperty(t, a, "Configuration", "Debug")
	mustAddProperty(t, b, "Configuration", "Release")
	d := Diff(a, b)
	if d == "" {
		t.Fatalf("diff of different documents is empty")
	}
	if !strings.Contains(d, `-    <Property Name="Configuration">Debug</Property>`) {
		t.Errorf("missing deletion line:\n%s", d)
	}
	if !strings.Contains(d, `+    <Property Name="Configuration">Release</Property>`) {
		t.Errorf("missing insertion line:\n%s", d)
	}
	for _, line := range strings.Split(strings.TrimSuffix(d, "\n"), "\n") {
		if line == "" {
			t.Errorf("empty diff line")
			continue
		}
		switch line[0] {
		case '-', '+', ' ':
		default:
			t.Errorf("unprefixed diff line: %q", line)
		}
	}
}
