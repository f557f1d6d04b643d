// Copyright 2023 The splay-tree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package splaytree

// Iterator is a bidirectional cursor over a tree.  It borrows the node it
// references rather than owning it: an iterator stays valid until that value
// is erased or the owning tree is cleared or destroyed, and traversal never
// rotates the tree, so iterators survive any number of finds, inserts and
// splays elsewhere.
//
// The zero Iterator and the End iterator reference no value.  Key and Value
// must not be called on them; like dereferencing a past-the-end position,
// doing so is a precondition violation, not a checked error.
type Iterator[K, V any] struct {
	node *node[V]
	tree *Tree[K, V]
}

// Begin returns an iterator to the smallest value in the tree, or End if the
// tree is empty.  It runs in O(1) off the leftmost cache.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{t.leftmost, t}
}

// End returns the past-the-end iterator.  It references no value; stepping
// Prev from it yields the largest value in the tree.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{nil, t}
}

// Valid reports whether the iterator references a value, i.e. is not End.
func (it Iterator[K, V]) Valid() bool {
	return it.node != nil
}

// Equal reports whether the two iterators reference the same value, by node
// identity.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Key returns the key ordering the referenced value.
func (it Iterator[K, V]) Key() K {
	return it.tree.keyOf(it.node.value)
}

// Value returns the referenced value.
func (it Iterator[K, V]) Value() V {
	return it.node.value
}

// Next returns an iterator to the value following this one in key order, or
// End after the largest value.  Next of End is End.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.node == nil {
		return it
	}
	return Iterator[K, V]{successor(it.node), it.tree}
}

// Prev returns an iterator to the value preceding this one in key order, or
// End before the smallest value.  Prev of End resolves to the largest value
// in the tree.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.node == nil {
		return Iterator[K, V]{it.tree.rightmost, it.tree}
	}
	return Iterator[K, V]{predecessor(it.node), it.tree}
}

// successor returns the node following n in key order: the leftmost node of
// n's right subtree when there is one, otherwise the first ancestor reached
// through a left-child edge.  Returns nil past the largest node.
func successor[V any](n *node[V]) *node[V] {
	if n.right != nil {
		return minNode(n.right)
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// predecessor is the mirror of successor.
func predecessor[V any](n *node[V]) *node[V] {
	if n.left != nil {
		return maxNode(n.left)
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}
