package loader

import (
	"fmt"
	"sort"
)

// Kind identifies the structural kind of a Node.
type Kind int

const (
	// KindMapping is a YAML/JSON object node.
	KindMapping Kind = iota
	// KindSequence is a YAML/JSON array node.
	KindSequence
	// KindScalar is a YAML/JSON scalar node (string, number, bool, null).
	KindScalar
)

// maxRefChain bounds how many $ref hops Resolve will follow. Chains this
// deep only occur in degenerate ref-to-ref cycles.
const maxRefChain = 32

// Node is a single node in a loaded document graph. Every node carries its
// source provenance: the file it was parsed from, its JSON pointer within
// that file, and its line/column position.
//
// A mapping node containing a "$ref" key additionally carries the reference
// string in Ref and, once the graph is fully loaded, the referenced node in
// Target. The original reference object is preserved so that rules can
// distinguish "$ref here" from "inline definition here".
type Node struct {
	// Kind is the structural kind of this node
	Kind Kind
	// File is the slash-separated source file path relative to the base directory
	File string
	// Pointer is the RFC 6901 JSON pointer within File ("" for the file root)
	Pointer string
	// Line is the 1-based source line (0 if unknown)
	Line int
	// Column is the 1-based source column (0 if unknown)
	Column int

	// Ref is the $ref string when this mapping is a reference object
	Ref string
	// Target is the node Ref points at, set during graph resolution
	Target *Node

	// Keys preserves mapping key order as written in the source
	Keys []string
	// Items holds sequence children in order
	Items []*Node
	// Value is the raw scalar text
	Value string
	// Tag is the resolved YAML tag for scalars (e.g. "!!str", "!!int")
	Tag string

	fields map[string]*Node
}

// IsMapping reports whether n is a mapping node.
func (n *Node) IsMapping() bool { return n != nil && n.Kind == KindMapping }

// IsSequence reports whether n is a sequence node.
func (n *Node) IsSequence() bool { return n != nil && n.Kind == KindSequence }

// IsScalar reports whether n is a scalar node.
func (n *Node) IsScalar() bool { return n != nil && n.Kind == KindScalar }

// IsRef reports whether n is a reference object (a mapping with a $ref key).
func (n *Node) IsRef() bool { return n != nil && n.Ref != "" }

// IsPureRef reports whether n is a reference object with no sibling keys.
// The entry-file purity rule requires paths and components values to be
// pure refs.
func (n *Node) IsPureRef() bool { return n.IsRef() && len(n.Keys) == 1 }

// Field returns the child node for key, or nil when n is not a mapping or
// the key is absent. Safe to call on a nil receiver.
func (n *Node) Field(key string) *Node {
	if n == nil {
		return nil
	}
	return n.fields[key]
}

// Has reports whether mapping n contains key.
func (n *Node) Has(key string) bool {
	return n.Field(key) != nil
}

// Len returns the number of mapping keys or sequence items.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	if n.Kind == KindSequence {
		return len(n.Items)
	}
	return len(n.Keys)
}

// Resolve follows the $ref chain from n to the underlying definition.
// Non-reference nodes resolve to themselves. Returns nil for unset targets
// or degenerate ref-to-ref cycles. Safe to call on a nil receiver.
func (n *Node) Resolve() *Node {
	cur := n
	for i := 0; cur != nil && cur.Ref != "" && i < maxRefChain; i++ {
		cur = cur.Target
	}
	if cur != nil && cur.Ref != "" {
		return nil
	}
	return cur
}

// Location returns the node's source position as "file:line:column", or
// just the file when the position is unknown.
func (n *Node) Location() string {
	if n == nil {
		return "<unknown>"
	}
	if n.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", n.File, n.Line, n.Column)
	}
	return n.File
}

// SortedKeys returns the mapping keys sorted alphabetically. Used for the
// deterministic traversal order shared by the loader's stats pass and the
// checker. Safe to call on a nil receiver.
func (n *Node) SortedKeys() []string {
	if n == nil {
		return nil
	}
	keys := append([]string(nil), n.Keys...)
	sort.Strings(keys)
	return keys
}

// addField inserts a mapping child, keeping the first occurrence when the
// source contains duplicate keys.
func (n *Node) addField(key string, child *Node) {
	if n.fields == nil {
		n.fields = make(map[string]*Node)
	}
	if _, ok := n.fields[key]; ok {
		return
	}
	n.fields[key] = child
	n.Keys = append(n.Keys, key)
}
