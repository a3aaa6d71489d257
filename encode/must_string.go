package encode

import (
	"bytes"
	"strings"

	"github.com/anvil-build/go-anvil/ctree"
)

func MustString(node *ctree.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
