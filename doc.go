// Package anvil ties the construction tree core to its collaborators:
// canonical text ([Text]) and document comparison ([Diff]).
//
// The interesting machinery lives in the subpackages:
//
//   - github.com/anvil-build/go-anvil/ctree - the editable document model
//   - github.com/anvil-build/go-anvil/encode - canonical project text
//   - github.com/anvil-build/go-anvil/load - YAML bulk loading
//   - github.com/anvil-build/go-anvil/cmd/anvil - the anvil CLI
package anvil
