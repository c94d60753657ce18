package pathstore

import "golang.org/x/exp/maps"

// rootName is the sentinel segment name of the root node.
const rootName = "/"

type node[V any] struct {
	name     string
	data     V
	hasData  bool
	children map[string]*node[V]
	parent   *node[V] // nil for the root
}

func newRootNode[V any]() *node[V] {
	return &node[V]{
		name:     rootName,
		children: map[string]*node[V]{},
	}
}

func newChildNode[V any](name string, parent *node[V]) *node[V] {
	return &node[V]{
		name:     name,
		children: map[string]*node[V]{},
		parent:   parent,
	}
}

// setData replaces the payload, last write wins.
func (n *node[V]) setData(data V) {
	n.data = data
	n.hasData = true
}

func (n *node[V]) leaf() bool {
	return len(n.children) == 0
}

func (n *node[V]) childNames() []string {
	return maps.Keys(n.children)
}
