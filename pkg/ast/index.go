package ast

import (
	"github.com/cespare/xxhash/v2"
)

// Index is the name lookup table for top level type system definitions and
// extensions. Keys are xxhashes of the definition name; lookups return the
// nodes stored under the hash and do not compare the names on the nodes.
type Index struct {
	nodes map[uint64][]Node
}

func (i *Index) Reset() {
	i.nodes = nil
}

func (i *Index) Add(name ByteSlice, node Node) {
	if i.nodes == nil {
		i.nodes = make(map[uint64][]Node, 8)
	}
	hash := xxhash.Sum64(name)
	i.nodes[hash] = append(i.nodes[hash], node)
}

// NodesByNameBytes returns all definitions and extensions registered for a name.
func (i *Index) NodesByNameBytes(name ByteSlice) ([]Node, bool) {
	nodes, exists := i.nodes[xxhash.Sum64(name)]
	return nodes, exists
}

// FirstNodeByNameBytes returns the first definition or extension registered for a name.
func (i *Index) FirstNodeByNameBytes(name ByteSlice) (Node, bool) {
	nodes, exists := i.nodes[xxhash.Sum64(name)]
	if !exists || len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// FirstNodeByNameStr returns the first definition or extension registered for a name.
func (i *Index) FirstNodeByNameStr(name string) (Node, bool) {
	nodes, exists := i.nodes[xxhash.Sum64String(name)]
	if !exists || len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}
