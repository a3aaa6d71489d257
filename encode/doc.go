// Package encode writes construction trees as canonical Anvil project
// text.
//
// # Usage
//
//	// Encode a tree to a writer
//	err := encode.Encode(&doc.Node, w)
//
//	// Encode with colors for terminal display
//	err := encode.Encode(&doc.Node, w, encode.EncodeColors(encode.NewColors()))
//
// The encoder is the serialization side of the construction tree: the core
// in package ctree only marks documents dirty; producing text is this
// package's job.
package encode
