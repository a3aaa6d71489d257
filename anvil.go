package anvil

import (
	"bytes"
	"strings"

	"github.com/anvil-build/go-anvil/ctree"
	"github.com/anvil-build/go-anvil/debug"
	"github.com/anvil-build/go-anvil/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text returns the canonical project text of doc.
func Text(doc *ctree.Document) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(&doc.Node, buf); err != nil {
		// the encoder only fails on writer errors, which bytes.Buffer
		// does not produce
		panic(err)
	}
	return buf.String()
}

// Diff compares the canonical text of two documents line by line. If they
// are equal, Diff returns "". Otherwise the result holds every line of the
// two texts, prefixed "-" for lines only in from, "+" for lines only in
// to, and " " for common lines.
func Diff(from, to *ctree.Document) string {
	a, b := Text(from), Text(to)
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	if debug.Diff() {
		debug.Logf("diffing %d line runs", len(diffs))
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func splitLines(v string) []string {
	v = strings.TrimSuffix(v, "\n")
	if v == "" {
		return nil
	}
	return strings.Split(v, "\n")
}
