// Package pathstore indexes absolute path-like keys into a tree of
// named segments, optionally attaching a payload to any node along the
// way. Missing intermediate segments are created on demand and nodes
// are never removed.
package pathstore

import "sync"

// Store is a hierarchical store of absolute paths. The zero value is
// not usable; create a Store with New.
//
// A Store is safe for concurrent use by multiple goroutines.
type Store[V any] struct {
	mutex sync.RWMutex
	root  *node[V]
	size  int
}

// Option configures a Store on construction.
type Option[V any] func(*Store[V])

// WithRootData attaches a payload to the root node.
func WithRootData[V any](data V) Option[V] {
	return func(s *Store[V]) {
		s.root.setData(data)
	}
}

// New creates a Store holding only the root node.
func New[V any](opts ...Option[V]) *Store[V] {
	s := &Store[V]{
		root: newRootNode[V](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert adds path to the store and attaches data to its final node,
// creating missing intermediate nodes along the way. It reports whether
// any new node was created: false means the whole path already existed
// structurally, in which case only the payload of the final node was
// overwritten. Inserting a non-absolute path returns ErrPathNotAbsolute
// and leaves the store unchanged.
func (s *Store[V]) Insert(path Path, data V) (bool, error) {
	if !path.IsAbs() {
		return false, ErrPathNotAbsolute
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var changed bool
	current := s.root
	for _, segment := range path.Segments() {
		next, ok := current.children[segment]
		if !ok {
			next = newChildNode(segment, current)
			current.children[segment] = next
			s.size++
			changed = true
		}
		current = next
	}
	current.setData(data)
	return changed, nil
}

// Get returns the payload attached at exactly path. The boolean is
// false when the node does not exist or carries no payload. Like
// Insert, Get rejects non-absolute paths with ErrPathNotAbsolute.
func (s *Store[V]) Get(path Path) (V, bool, error) {
	var zero V
	if !path.IsAbs() {
		return zero, false, ErrPathNotAbsolute
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	current := s.root
	for _, segment := range path.Segments() {
		next, ok := current.children[segment]
		if !ok {
			return zero, false, nil
		}
		current = next
	}
	if !current.hasData {
		return zero, false, nil
	}
	return current.data, true, nil
}

// Walk returns the full path of every leaf node. Sibling order is
// unspecified; callers must treat the result as a set. Payloads on
// interior nodes are not reported, see VisitData.
func (s *Store[V]) Walk() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var out []string
	walkLeaves(s.root, rootName, &out)
	return out
}

func walkLeaves[V any](n *node[V], full string, out *[]string) {
	if n.leaf() {
		*out = append(*out, full)
		return
	}
	for name, child := range n.children {
		walkLeaves(child, joinSegment(full, name), out)
	}
}

// VisitData calls fn for every node carrying a payload, interior nodes
// and the root included, in unspecified order.
func (s *Store[V]) VisitData(fn func(path string, data V)) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	visitData(s.root, rootName, fn)
}

func visitData[V any](n *node[V], full string, fn func(string, V)) {
	if n.hasData {
		fn(full, n.data)
	}
	for name, child := range n.children {
		visitData(child, joinSegment(full, name), fn)
	}
}

// Size returns the number of non-root nodes in the store.
func (s *Store[V]) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.size
}

func joinSegment(prefix, name string) string {
	if prefix == rootName {
		return prefix + name
	}
	return prefix + "/" + name
}
