package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/anvil-build/go-anvil/ctree"
	"github.com/anvil-build/go-anvil/encode"
)

// Tree wraps a node so %s formatting shows its canonical text.
type Tree struct{ *ctree.Node }

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ctree.Node] %v", t.Node)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*ctree.Node); ok {
			args[i] = Tree{n}
		}
	}
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
