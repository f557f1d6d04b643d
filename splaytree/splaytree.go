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

// Package splaytree implements an in-memory splay tree for use as an ordered
// data structure.  It is not meant for persistent storage solutions.
//
// A splay tree is a self-adjusting binary search tree: every insertion,
// deletion and successful search rotates the touched node up to the root, so
// recently accessed keys sit near the top and repeated access to them is
// cheap.  No worst-case height bound is maintained; all operational costs are
// amortized O(log n).
//
// The tree orders values by a key projected from them, so the same engine
// serves both plain key sets and key/payload structures.  Both unique-key and
// duplicate-key insertion modes are provided, along with bidirectional
// iterators, range queries, and split/merge operations that partition and
// recombine trees along a key boundary.
//
// Operations are not safe for concurrent use by multiple goroutines.  Even
// lookups may rotate the tree; Get, Has, Count, the bound queries and the
// {A/De}scend* traversals are the read-only exceptions and never change the
// tree's shape.
package splaytree

import (
	"cmp"
	"errors"
	"math"
	"sync"
)

const DefaultFreeListSize = 32

var (
	// ErrKeyNotFound reports a Split around a key the tree does not hold.
	ErrKeyNotFound = errors.New("splaytree: key not found")

	// ErrKeyOverlap reports a Merge whose donor violates the key-separation
	// precondition.
	ErrKeyOverlap = errors.New("splaytree: key ranges overlap")
)

// node is an internal node in a tree.
//
// It must at all times maintain the invariant that for every node n with a
// non-nil parent p, exactly one of p.left == n or p.right == n holds.
type node[V any] struct {
	value  V
	parent *node[V]
	left   *node[V]
	right  *node[V]
}

// FreeList represents a free list of tree nodes.  By default each Tree has
// its own FreeList, but multiple Trees can share the same FreeList; trees
// produced by Clone and Split share their origin's.  The FreeList itself is
// safe for concurrent use, the trees drawing from it are not.
type FreeList[V any] struct {
	mu       sync.Mutex
	freelist []*node[V]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[V any](size int) *FreeList[V] {
	return &FreeList[V]{freelist: make([]*node[V], 0, size)}
}

func (f *FreeList[V]) newNode() (n *node[V]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[V])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

// freeNode adds the given node to the list, returning true if it was added
// and false if it was discarded.
func (f *FreeList[V]) freeNode(n *node[V]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// Tree is a generic implementation of a splay tree.
//
// Tree stores values in an ordered structure, allowing easy insertion,
// removal, and iteration.  It owns its nodes exclusively; a node is reachable
// from exactly one tree at a time, and Split and Merge move whole subtrees of
// ownership between trees rather than copying.
type Tree[K, V any] struct {
	root      *node[V]
	leftmost  *node[V]
	rightmost *node[V]
	length    int
	compare   Compare[K]
	keyOf     KeyOf[K, V]
	freelist  *FreeList[V]
}

// New creates a new tree of keys ordered naturally, with the values being
// their own keys.
func New[K cmp.Ordered]() *Tree[K, K] {
	return NewFunc(Ordered[K]())
}

// NewFunc creates a new tree ordered by the given comparison, with the values
// being their own keys.
func NewFunc[K any](compare Compare[K]) *Tree[K, K] {
	return NewKeyed(compare, Identity[K])
}

// NewKeyed creates a new tree of values ordered by the given comparison over
// the keys that keyOf projects from them.
func NewKeyed[K, V any](compare Compare[K], keyOf KeyOf[K, V]) *Tree[K, V] {
	return NewKeyedWithFreeList(compare, keyOf, NewFreeList[V](DefaultFreeListSize))
}

// NewKeyedWithFreeList creates a new tree that uses the given node free list.
func NewKeyedWithFreeList[K, V any](compare Compare[K], keyOf KeyOf[K, V], f *FreeList[V]) *Tree[K, V] {
	if compare == nil {
		panic("splaytree: nil comparison")
	}
	if keyOf == nil {
		panic("splaytree: nil key projection")
	}
	if f == nil {
		panic("splaytree: nil free list")
	}
	return &Tree[K, V]{
		compare:  compare,
		keyOf:    keyOf,
		freelist: f,
	}
}

// Of creates a new naturally ordered tree holding the given keys, ignoring
// duplicates.
func Of[K cmp.Ordered](keys ...K) *Tree[K, K] {
	t := New[K]()
	for _, key := range keys {
		t.InsertUnique(key)
	}
	return t
}

func (t *Tree[K, V]) newNode(value V) *node[V] {
	n := t.freelist.newNode()
	n.value = value
	return n
}

// freeNode clears the node for reuse and offers it back to the free list,
// reporting whether the list accepted it.
func (t *Tree[K, V]) freeNode(n *node[V]) bool {
	var zero V
	n.value = zero
	n.parent, n.left, n.right = nil, nil, nil
	return t.freelist.freeNode(n)
}

func (t *Tree[K, V]) key(n *node[V]) K {
	return t.keyOf(n.value)
}

// Len returns the number of values currently in the tree.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// Empty reports whether the tree holds no values.
func (t *Tree[K, V]) Empty() bool {
	return t.root == nil
}

// MaxSize returns the theoretical capacity bound of a tree.
func (t *Tree[K, V]) MaxSize() int {
	return math.MaxInt
}

// Min returns the smallest value in the tree, or (zeroValue, false) if the
// tree is empty.  It runs in O(1) and does not rotate the tree.
func (t *Tree[K, V]) Min() (_ V, _ bool) {
	if t.leftmost == nil {
		return
	}
	return t.leftmost.value, true
}

// Max returns the largest value in the tree, or (zeroValue, false) if the
// tree is empty.  It runs in O(1) and does not rotate the tree.
func (t *Tree[K, V]) Max() (_ V, _ bool) {
	if t.rightmost == nil {
		return
	}
	return t.rightmost.value, true
}

// findPlaceToInsert walks from the root and returns the node a new value with
// the given key would be linked under.  When unique is set and an equivalent
// key is already present, it returns that node with found set instead.
// Comparisons descend right on ties, so a duplicate always lands after every
// existing equivalent key.
func (t *Tree[K, V]) findPlaceToInsert(key K, unique bool) (place *node[V], found bool) {
	n := t.root
	for n != nil {
		c := t.compare(key, t.key(n))
		if unique && c == 0 {
			return n, true
		}
		if c < 0 {
			if n.left == nil {
				return n, false
			}
			n = n.left
		} else {
			if n.right == nil {
				return n, false
			}
			n = n.right
		}
	}
	return nil, false
}

// linkNode creates a node for value and hangs it under place, maintaining the
// leftmost/rightmost caches and the size counter.  place must have a free
// slot on the side the comparison selects.
func (t *Tree[K, V]) linkNode(place *node[V], key K, value V) *node[V] {
	n := t.newNode(value)
	n.parent = place
	if t.compare(key, t.key(place)) < 0 {
		place.left = n
		if place == t.leftmost {
			t.leftmost = n
		}
	} else {
		place.right = n
		if place == t.rightmost {
			t.rightmost = n
		}
	}
	t.length++
	return n
}

func (t *Tree[K, V]) insertRoot(value V) *node[V] {
	n := t.newNode(value)
	t.root, t.leftmost, t.rightmost = n, n, n
	t.length++
	return n
}

// InsertUnique adds the given value to the tree if no equivalent key is
// present, splays it to the root, and returns its iterator with inserted set.
// If an equivalent key already exists the tree keeps its old value, that
// value's node is splayed to the root so that subsequent access to it stays
// cheap, and its iterator is returned with inserted unset.
func (t *Tree[K, V]) InsertUnique(value V) (_ Iterator[K, V], inserted bool) {
	key := t.keyOf(value)
	if t.root == nil {
		return Iterator[K, V]{t.insertRoot(value), t}, true
	}
	place, found := t.findPlaceToInsert(key, true)
	if found {
		t.splay(place)
		return Iterator[K, V]{place, t}, false
	}
	n := t.linkNode(place, key, value)
	t.splay(n)
	return Iterator[K, V]{n, t}, true
}

// InsertEqual adds the given value to the tree unconditionally, splays it to
// the root, and returns its iterator.  Equivalent keys are kept contiguous in
// key order; among them, iteration yields values in insertion order, since
// comparisons descend right on ties.
func (t *Tree[K, V]) InsertEqual(value V) Iterator[K, V] {
	key := t.keyOf(value)
	if t.root == nil {
		return Iterator[K, V]{t.insertRoot(value), t}
	}
	place, _ := t.findPlaceToInsert(key, false)
	n := t.linkNode(place, key, value)
	t.splay(n)
	return Iterator[K, V]{n, t}
}

// EmplaceUnique builds a value with the given constructor and inserts it as
// InsertUnique does.  If the constructor fails, its error is returned and the
// tree is left untouched.
func (t *Tree[K, V]) EmplaceUnique(construct func() (V, error)) (_ Iterator[K, V], inserted bool, _ error) {
	value, err := construct()
	if err != nil {
		return t.End(), false, err
	}
	it, inserted := t.InsertUnique(value)
	return it, inserted, nil
}

// EmplaceEqual builds a value with the given constructor and inserts it as
// InsertEqual does.  If the constructor fails, its error is returned and the
// tree is left untouched.
func (t *Tree[K, V]) EmplaceEqual(construct func() (V, error)) (Iterator[K, V], error) {
	value, err := construct()
	if err != nil {
		return t.End(), err
	}
	return t.InsertEqual(value), nil
}

// lowerBoundNode returns the node holding the first key not less than key,
// or nil if every key is less.
func (t *Tree[K, V]) lowerBoundNode(key K) (bound *node[V]) {
	for n := t.root; n != nil; {
		if t.compare(t.key(n), key) >= 0 {
			bound = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return
}

// upperBoundNode returns the node holding the first key greater than key,
// or nil if no key is greater.
func (t *Tree[K, V]) upperBoundNode(key K) (bound *node[V]) {
	for n := t.root; n != nil; {
		if t.compare(t.key(n), key) > 0 {
			bound = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return
}

// lookup returns the first node comparing equal to key without rotating the
// tree, or nil if the key is absent.
func (t *Tree[K, V]) lookup(key K) *node[V] {
	if n := t.lowerBoundNode(key); n != nil && t.compare(t.key(n), key) == 0 {
		return n
	}
	return nil
}

// Find locates the first value comparing equal to key and splays it to the
// root, so that subsequent access to the same key is O(1).  It returns End if
// the key is absent.  Callers needing a purely observational lookup should
// use Get or Has instead.
func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	n := t.lookup(key)
	if n == nil {
		return t.End()
	}
	t.splay(n)
	return Iterator[K, V]{n, t}
}

// Get looks for the given key in the tree and returns the first value
// carrying it.  It returns (zeroValue, false) if unable to find the key.
// Unlike Find, Get never changes the shape of the tree.
func (t *Tree[K, V]) Get(key K) (_ V, _ bool) {
	if n := t.lookup(key); n != nil {
		return n.value, true
	}
	return
}

// Has reports whether the given key is in the tree, without changing the
// shape of the tree.
func (t *Tree[K, V]) Has(key K) bool {
	return t.lookup(key) != nil
}

// LowerBound returns an iterator to the first value whose key is not less
// than key, or End if every key is less.  It does not rotate the tree.
func (t *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{t.lowerBoundNode(key), t}
}

// UpperBound returns an iterator to the first value whose key is greater
// than key, or End if no key is greater.  It does not rotate the tree.
func (t *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{t.upperBoundNode(key), t}
}

// EqualRange returns the iterator span [first, last) of all values comparing
// equal to key.  The span is empty (first == last) when the key is absent.
func (t *Tree[K, V]) EqualRange(key K) (first, last Iterator[K, V]) {
	return t.LowerBound(key), t.UpperBound(key)
}

// Count returns the number of values comparing equal to key, without
// changing the shape of the tree.
func (t *Tree[K, V]) Count(key K) (count int) {
	for n := t.lowerBoundNode(key); n != nil && t.compare(t.key(n), key) == 0; n = successor(n) {
		count++
	}
	return
}

// Erase removes the value it references from the tree and returns an
// iterator to that value's structural successor, which remains valid across
// the removal.  Any other iterator to the erased value must not be used
// again.  Erase panics when given End or an iterator belonging to another
// tree.
func (t *Tree[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	if it.tree != t || it.node == nil {
		panic("splaytree: erase of invalid iterator")
	}
	n := it.node
	next := successor(n)

	if n.left != nil && n.right != nil {
		// next is the leftmost node of n's right subtree; exchange their
		// structural positions rather than their values so iterators to next
		// stay valid.  n ends up with at most one child.
		t.exchangeWithSuccessor(n, next)
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	parent := n.parent
	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}

	if t.leftmost == n {
		t.leftmost = next
	}
	if t.rightmost == n {
		if child != nil {
			t.rightmost = maxNode(child)
		} else {
			t.rightmost = parent
		}
	}
	t.length--
	t.freeNode(n)

	if parent != nil {
		t.splay(parent)
	}
	return Iterator[K, V]{next, t}
}

// exchangeWithSuccessor relinks s, the in-order successor of n, into n's
// structural position and leaves n in s's vacated position.  n must have two
// children, which puts s in n's right subtree with no left child.
func (t *Tree[K, V]) exchangeWithSuccessor(n, s *node[V]) {
	sParent, sRight := s.parent, s.right

	s.parent = n.parent
	switch {
	case s.parent == nil:
		t.root = s
	case s.parent.left == n:
		s.parent.left = s
	default:
		s.parent.right = s
	}

	s.left = n.left
	s.left.parent = s

	if sParent == n {
		s.right = n
		n.parent = s
	} else {
		s.right = n.right
		s.right.parent = s
		sParent.left = n
		n.parent = sParent
	}

	n.left = nil
	n.right = sRight
	if sRight != nil {
		sRight.parent = n
	}
}

// EraseKey removes every value comparing equal to key and returns the number
// removed.
func (t *Tree[K, V]) EraseKey(key K) (count int) {
	first, last := t.EqualRange(key)
	for !first.Equal(last) {
		first = t.Erase(first)
		count++
	}
	return
}

// EraseRange removes every value in [first, last) and returns last.  The
// iterators must denote a valid range of this tree.
func (t *Tree[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	for !first.Equal(last) {
		first = t.Erase(first)
	}
	return last
}

// Split detaches every value whose key orders strictly before key into a new
// tree and returns it.  Duplicates of key itself all stay behind.  The
// receiver keeps the pivot value, splayed to the root, and everything after
// it.  Split returns ErrKeyNotFound if the key is absent, since there is no
// node to partition around.  The new tree shares the receiver's comparison,
// key projection and free list.
func (t *Tree[K, V]) Split(key K) (*Tree[K, V], error) {
	n := t.lookup(key)
	if n == nil {
		return nil, ErrKeyNotFound
	}
	t.splay(n)

	out := &Tree[K, V]{
		compare:  t.compare,
		keyOf:    t.keyOf,
		freelist: t.freelist,
	}
	if n.left != nil {
		out.root = n.left
		out.root.parent = nil
		out.leftmost = t.leftmost
		out.rightmost = maxNode(out.root)
		out.length = countNodes(out.root)

		n.left = nil
		t.leftmost = n
		t.length -= out.length
	}
	return out, nil
}

// MergeUnique transfers every value of other into the receiver, leaving
// other empty.  Every key in other must order strictly after every key in
// the receiver; MergeUnique returns ErrKeyOverlap otherwise and changes
// nothing.
func (t *Tree[K, V]) MergeUnique(other *Tree[K, V]) error {
	return t.merge(other, true)
}

// MergeEqual transfers every value of other into the receiver, leaving other
// empty.  Every key in other must order after or equal to every key in the
// receiver; MergeEqual returns ErrKeyOverlap otherwise and changes nothing.
func (t *Tree[K, V]) MergeEqual(other *Tree[K, V]) error {
	return t.merge(other, false)
}

func (t *Tree[K, V]) merge(other *Tree[K, V], strict bool) error {
	if other == nil || other.root == nil {
		return nil
	}
	if other == t {
		return ErrKeyOverlap
	}
	if t.root == nil {
		t.adopt(other)
		return nil
	}
	c := t.compare(t.key(t.rightmost), t.key(other.leftmost))
	if c > 0 || (strict && c == 0) {
		return ErrKeyOverlap
	}

	t.splay(t.rightmost)
	t.root.right = other.root
	other.root.parent = t.root
	t.rightmost = other.rightmost
	t.length += other.length

	other.root, other.leftmost, other.rightmost, other.length = nil, nil, nil, 0
	return nil
}

// adopt takes over other's whole node population, leaving other empty.
func (t *Tree[K, V]) adopt(other *Tree[K, V]) {
	t.root, t.leftmost, t.rightmost, t.length =
		other.root, other.leftmost, other.rightmost, other.length
	other.root, other.leftmost, other.rightmost, other.length = nil, nil, nil, 0
}

// Clear removes all values from the tree.  If addNodesToFreelist is true,
// t's nodes are added to its freelist as part of this call, until the
// freelist is full.  Otherwise, the root node is simply dereferenced and the
// tree left to Go's normal GC processes.
//
// The freelist walk is iterative, detaching one leaf at a time and stepping
// back up through the parent links, since a splay tree has no height bound
// and a recursive walk could exhaust the call stack on degenerate shapes.
func (t *Tree[K, V]) Clear(addNodesToFreelist bool) {
	if addNodesToFreelist {
		n := t.root
		for n != nil {
			if n.left != nil {
				n = n.left
				continue
			}
			if n.right != nil {
				n = n.right
				continue
			}
			parent := n.parent
			if parent != nil {
				if parent.left == n {
					parent.left = nil
				} else {
					parent.right = nil
				}
			}
			if !t.freeNode(n) {
				break
			}
			n = parent
		}
	}
	t.root, t.leftmost, t.rightmost, t.length = nil, nil, nil, 0
}

// Swap exchanges the whole contents of the two trees, comparison and key
// projection included.  Iterators keep referring to the values they did,
// now under the other tree.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	t.root, other.root = other.root, t.root
	t.leftmost, other.leftmost = other.leftmost, t.leftmost
	t.rightmost, other.rightmost = other.rightmost, t.rightmost
	t.length, other.length = other.length, t.length
	t.compare, other.compare = other.compare, t.compare
	t.keyOf, other.keyOf = other.keyOf, t.keyOf
	t.freelist, other.freelist = other.freelist, t.freelist
}

// Clone returns a deep copy of the tree: every node and link is cloned, so
// the two trees share no structure and mutating one never disturbs the
// other.  The copy walks the original iteratively with its parent links and
// needs no auxiliary space proportional to the tree's height.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	out := &Tree[K, V]{
		compare:  t.compare,
		keyOf:    t.keyOf,
		freelist: t.freelist,
		length:   t.length,
	}
	if t.root == nil {
		return out
	}

	src := t.root
	dst := out.newNode(src.value)
	out.root = dst
	for src != nil {
		switch {
		case src.left != nil && dst.left == nil:
			src = src.left
			dst.left = out.newNode(src.value)
			dst.left.parent = dst
			dst = dst.left
		case src.right != nil && dst.right == nil:
			src = src.right
			dst.right = out.newNode(src.value)
			dst.right.parent = dst
			dst = dst.right
		default:
			src, dst = src.parent, dst.parent
		}
	}
	out.leftmost = minNode(out.root)
	out.rightmost = maxNode(out.root)
	return out
}

// ValueIterator allows callers of {A/De}scend* to iterate in order over
// portions of the tree.  When this function returns false, iteration will
// stop and the associated {A/De}scend* function will immediately return.
type ValueIterator[V any] func(V) bool

// Ascend calls the iterator for every value in the tree within the range
// [first, last], until iterator returns false.  It does not rotate the tree.
func (t *Tree[K, V]) Ascend(iterator ValueIterator[V]) {
	for n := t.leftmost; n != nil; n = successor(n) {
		if !iterator(n.value) {
			return
		}
	}
}

// AscendRange calls the iterator for every value in the tree within the
// range [greaterOrEqual, lessThan), until iterator returns false.
func (t *Tree[K, V]) AscendRange(greaterOrEqual, lessThan K, iterator ValueIterator[V]) {
	for n := t.lowerBoundNode(greaterOrEqual); n != nil && t.compare(t.key(n), lessThan) < 0; n = successor(n) {
		if !iterator(n.value) {
			return
		}
	}
}

// Descend calls the iterator for every value in the tree within the range
// [last, first], until iterator returns false.  It does not rotate the tree.
func (t *Tree[K, V]) Descend(iterator ValueIterator[V]) {
	for n := t.rightmost; n != nil; n = predecessor(n) {
		if !iterator(n.value) {
			return
		}
	}
}

// DescendRange calls the iterator for every value in the tree within the
// range [lessOrEqual, greaterThan), until iterator returns false.
func (t *Tree[K, V]) DescendRange(lessOrEqual, greaterThan K, iterator ValueIterator[V]) {
	n := t.upperBoundNode(lessOrEqual)
	if n == nil {
		n = t.rightmost
	} else {
		n = predecessor(n)
	}
	for ; n != nil && t.compare(t.key(n), greaterThan) > 0; n = predecessor(n) {
		if !iterator(n.value) {
			return
		}
	}
}

// minNode returns the leftmost node of the subtree rooted at n.
func minNode[V any](n *node[V]) *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost node of the subtree rooted at n.
func maxNode[V any](n *node[V]) *node[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// countNodes counts the nodes of a detached subtree by walking it in order
// through the parent links, keeping the auxiliary space independent of the
// subtree's height.  n must have no parent.
func countNodes[V any](n *node[V]) (count int) {
	for n = minNode(n); n != nil; n = successor(n) {
		count++
	}
	return
}
