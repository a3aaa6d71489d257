package ctree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChooseOrdering(t *testing.T) {
	tests := []struct {
		name    string
		build   func(t *testing.T, doc *Document, choose *Node) error
		wantErr bool
		want    []Kind
	}{
		{
			name: "whens then otherwise",
			build: func(t *testing.T, doc *Document, choose *Node) error {
				if err := choose.Append(doc.CreateWhen("a")); err != nil {
					return err
				}
				if err := choose.Append(doc.CreateWhen("b")); err != nil {
					return err
				}
				return choose.Append(doc.CreateOtherwise())
			},
			want: []Kind{WhenKind, WhenKind, OtherwiseKind},
		},
		{
			name: "otherwise alone",
			build: func(t *testing.T, doc *Document, choose *Node) error {
				return choose.Append(doc.CreateOtherwise())
			},
			want: []Kind{OtherwiseKind},
		},
		{
			name: "when appended after otherwise",
			build: func(t *testing.T, doc *Document, choose *Node) error {
				if err := choose.Append(doc.CreateOtherwise()); err != nil {
					return err
				}
				return choose.Append(doc.CreateWhen("a"))
			},
			wantErr: true,
			want:    []Kind{OtherwiseKind},
		},
		{
			name: "second otherwise",
			build: func(t *testing.T, doc *Document, choose *Node) error {
				if err := choose.Append(doc.CreateWhen("a")); err != nil {
					return err
				}
				if err := choose.Append(doc.CreateOtherwise()); err != nil {
					return err
				}
				return choose.Append(doc.CreateOtherwise())
			},
			wantErr: true,
			want:    []Kind{WhenKind, OtherwiseKind},
		},
		{
			name: "otherwise prepended before when",
			build: func(t *testing.T, doc *Document, choose *Node) error {
				if err := choose.Append(doc.CreateWhen("a")); err != nil {
					return err
				}
				return choose.Prepend(doc.CreateOtherwise())
			},
			wantErr: true,
			want:    []Kind{WhenKind},
		},
		{
			name: "when inserted before otherwise",
			build: func(t *testing.T, doc *Document, choose *Node) error {
				if err := choose.Append(doc.CreateWhen("a")); err != nil {
					return err
				}
				other := doc.CreateOtherwise()
				if err := choose.Append(other); err != nil {
					return err
				}
				return choose.InsertBefore(doc.CreateWhen("b"), other)
			},
			want: []Kind{WhenKind, WhenKind, OtherwiseKind},
		},
		{
			name: "when inserted after otherwise",
			build: func(t *testing.T, doc *Document, choose *Node) error {
				if err := choose.Append(doc.CreateWhen("a")); err != nil {
					return err
				}
				other := doc.CreateOtherwise()
				if err := choose.Append(other); err != nil {
					return err
				}
				return choose.InsertAfter(doc.CreateWhen("b"), other)
			},
			wantErr: true,
			want:    []Kind{WhenKind, OtherwiseKind},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			choose := doc.CreateChoose()
			if err := doc.Append(choose); err != nil {
				t.Fatal(err)
			}
			err := tt.build(t, doc, choose)
			if tt.wantErr {
				if !errors.Is(err, ErrSchema) {
					t.Fatalf("error = %v, want %v", err, ErrSchema)
				}
			} else if err != nil {
				t.Fatalf("build: %v", err)
			}
			got := kindsOf(choose.Children())
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("children (-want +got):\n%s", d)
			}
		})
	}
}

// buildChooseChain returns a detached Choose/When chain of the given
// number of Choose levels, and its deepest When.
func buildChooseChain(t *testing.T, doc *Document, levels int) (root, deepest *Node) {
	t.Helper()
	root = doc.CreateChoose()
	when := doc.CreateWhen("c")
	if err := root.Append(when); err != nil {
		t.Fatal(err)
	}
	deepest = when
	for i := 1; i < levels; i++ {
		choose := doc.CreateChoose()
		inner := doc.CreateWhen("c")
		if err := choose.Append(inner); err != nil {
			t.Fatal(err)
		}
		if err := deepest.Append(choose); err != nil {
			t.Fatal(err)
		}
		deepest = inner
	}
	return root, deepest
}

func TestNestingDepthGuard(t *testing.T) {
	doc := NewDocument()
	// one Choose/When pair is two levels; stay just under the limit
	levels := (maxNestingDepth - 1) / 2
	root, deepest := buildChooseChain(t, doc, levels)
	if err := doc.Append(root); err != nil {
		t.Fatalf("appending %d-level chain: %v", levels, err)
	}
	// each extra pair adds two levels; grow until the guard trips
	var err error
	for i := 0; i < maxNestingDepth; i++ {
		choose := doc.CreateChoose()
		when := doc.CreateWhen("c")
		if err = choose.Append(when); err != nil {
			t.Fatal(err)
		}
		if err = deepest.Append(choose); err != nil {
			break
		}
		deepest = when
	}
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("error = %v, want %v", err, ErrTooDeep)
	}
}

func TestDepthGuardOnSubtreeInsert(t *testing.T) {
	doc := NewDocument()
	root, deepest := buildChooseChain(t, doc, (maxNestingDepth-1)/2)
	if err := deepest.Append(doc.CreateChoose()); err != nil {
		t.Fatal(err)
	}
	// the fragment alone is legal to build but too tall to attach
	err := doc.Append(root)
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("error = %v, want %v", err, ErrTooDeep)
	}
	if doc.ChildCount() != 0 {
		t.Errorf("failed insert attached children")
	}
}
