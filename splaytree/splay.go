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

// splay rotates the given node up to the root through a sequence of zig,
// zig-zig and zig-zag steps, classified by the node's position relative to
// its parent and grandparent.  In the zig-zig case the parent rotates before
// the node rather than the node twice; the amortized O(log n) bound rests on
// that ordering.
//
// Rotations preserve the in-order sequence, so the leftmost/rightmost caches
// keep referring to the true extremes throughout.  node must be reachable
// from t's root.
func (t *Tree[K, V]) splay(n *node[V]) {
	for n != t.root {
		parent := n.parent
		if parent == t.root {
			t.root = t.zig(n)
			continue
		}
		grandparent := parent.parent
		if (grandparent.left == parent) == (parent.left == n) {
			n = t.zigZig(n)
		} else {
			n = t.zigZag(n)
		}
		if n.parent == nil {
			t.root = n
		}
	}
}

// zig applies a single rotation; the node's parent is the root.
func (t *Tree[K, V]) zig(n *node[V]) *node[V] {
	if n.parent.left == n {
		return t.rotateRight(n)
	}
	return t.rotateLeft(n)
}

// zigZig handles the node and its parent being children on the same side:
// the parent rotates first, then the node, in the same direction twice.
func (t *Tree[K, V]) zigZig(n *node[V]) *node[V] {
	parent := n.parent
	if parent.left == n {
		t.rotateRight(parent)
		return t.rotateRight(n)
	}
	t.rotateLeft(parent)
	return t.rotateLeft(n)
}

// zigZag handles the node and its parent being children on opposite sides:
// the node rotates toward its parent's side, then toward its grandparent's.
func (t *Tree[K, V]) zigZag(n *node[V]) *node[V] {
	if n.parent.left == n {
		t.rotateRight(n)
		return t.rotateLeft(n)
	}
	t.rotateLeft(n)
	return t.rotateRight(n)
}

// rotateLeft rotates the given node one level up over its parent.  The node
// must be its parent's right child.  Three pointer pairs are reassigned; the
// rest of the tree is untouched, and the tree's root pointer is left to the
// caller.  Returns the node, now one level higher.
func (t *Tree[K, V]) rotateLeft(n *node[V]) *node[V] {
	parent := n.parent
	grandparent := parent.parent

	parent.right = n.left
	if n.left != nil {
		n.left.parent = parent
	}

	n.left = parent
	n.parent = grandparent
	if grandparent != nil {
		if grandparent.left == parent {
			grandparent.left = n
		} else {
			grandparent.right = n
		}
	}
	parent.parent = n

	return n
}

// rotateRight rotates the given node one level up over its parent.  The node
// must be its parent's left child.  Mirror of rotateLeft.
func (t *Tree[K, V]) rotateRight(n *node[V]) *node[V] {
	parent := n.parent
	grandparent := parent.parent

	parent.left = n.right
	if n.right != nil {
		n.right.parent = parent
	}

	n.right = parent
	n.parent = grandparent
	if grandparent != nil {
		if grandparent.left == parent {
			grandparent.left = n
		} else {
			grandparent.right = n
		}
	}
	parent.parent = n

	return n
}
