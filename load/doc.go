// Package load bulk-builds construction trees from YAML project
// descriptions.
//
// The loader is the parsing side of the construction tree: it speaks only
// the public container operations of package ctree, so a description that
// violates the containment schema (an Otherwise before a When, a top-level
// item with no operator attribute) fails with the same errors a direct API
// caller would see.
package load
