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

// Package multiset provides an ordered collection of repeatable keys backed
// by a splay tree.
//
// Like package set, it is a thin renaming layer over the splaytree engine.
// Equivalent keys are contiguous in key order and iterate in insertion
// order.
package multiset

import (
	"cmp"

	"github.com/stiar/splay-tree/splaytree"
)

// Multiset is an ordered collection of keys in which equivalent keys may
// repeat.
type Multiset[K any] struct {
	tree *splaytree.Tree[K, K]
}

// New creates a new multiset of naturally ordered keys.
func New[K cmp.Ordered]() *Multiset[K] {
	return &Multiset[K]{tree: splaytree.New[K]()}
}

// NewFunc creates a new multiset ordered by the given comparison.
func NewFunc[K any](compare splaytree.Compare[K]) *Multiset[K] {
	return &Multiset[K]{tree: splaytree.NewFunc(compare)}
}

// Of creates a new multiset of naturally ordered keys holding the given
// keys, duplicates included.
func Of[K cmp.Ordered](keys ...K) *Multiset[K] {
	m := New[K]()
	for _, key := range keys {
		m.Insert(key)
	}
	return m
}

// Len returns the number of keys in the multiset, duplicates counted.
func (m *Multiset[K]) Len() int {
	return m.tree.Len()
}

// Empty reports whether the multiset holds no keys.
func (m *Multiset[K]) Empty() bool {
	return m.tree.Empty()
}

// Insert adds the given key to the multiset unconditionally and splays it.
func (m *Multiset[K]) Insert(key K) splaytree.Iterator[K, K] {
	return m.tree.InsertEqual(key)
}

// Emplace builds a key with the given constructor and inserts it.  A
// constructor error is returned with the multiset untouched.
func (m *Multiset[K]) Emplace(construct func() (K, error)) (splaytree.Iterator[K, K], error) {
	return m.tree.EmplaceEqual(construct)
}

// Erase removes every copy of the given key and returns the number removed.
func (m *Multiset[K]) Erase(key K) int {
	return m.tree.EraseKey(key)
}

// EraseAt removes the single key the iterator references and returns an
// iterator to its successor.
func (m *Multiset[K]) EraseAt(it splaytree.Iterator[K, K]) splaytree.Iterator[K, K] {
	return m.tree.Erase(it)
}

// EraseRange removes every key in [first, last).
func (m *Multiset[K]) EraseRange(first, last splaytree.Iterator[K, K]) splaytree.Iterator[K, K] {
	return m.tree.EraseRange(first, last)
}

// Clear removes all keys from the multiset.
func (m *Multiset[K]) Clear() {
	m.tree.Clear(true)
}

// Find locates the first copy of the given key and splays it, or returns
// End.
func (m *Multiset[K]) Find(key K) splaytree.Iterator[K, K] {
	return m.tree.Find(key)
}

// Contains reports whether the multiset holds the given key, without
// changing the shape of the underlying tree.
func (m *Multiset[K]) Contains(key K) bool {
	return m.tree.Has(key)
}

// Count returns the number of copies of key in the multiset.
func (m *Multiset[K]) Count(key K) int {
	return m.tree.Count(key)
}

// LowerBound returns an iterator to the first key not less than key.
func (m *Multiset[K]) LowerBound(key K) splaytree.Iterator[K, K] {
	return m.tree.LowerBound(key)
}

// UpperBound returns an iterator to the first key greater than key.
func (m *Multiset[K]) UpperBound(key K) splaytree.Iterator[K, K] {
	return m.tree.UpperBound(key)
}

// EqualRange returns the iterator span of all keys equal to key.
func (m *Multiset[K]) EqualRange(key K) (splaytree.Iterator[K, K], splaytree.Iterator[K, K]) {
	return m.tree.EqualRange(key)
}

// Begin returns an iterator to the smallest key.
func (m *Multiset[K]) Begin() splaytree.Iterator[K, K] {
	return m.tree.Begin()
}

// End returns the past-the-end iterator.
func (m *Multiset[K]) End() splaytree.Iterator[K, K] {
	return m.tree.End()
}

// Min returns the smallest key in the multiset.
func (m *Multiset[K]) Min() (K, bool) {
	return m.tree.Min()
}

// Max returns the largest key in the multiset.
func (m *Multiset[K]) Max() (K, bool) {
	return m.tree.Max()
}

// Ascend calls the iterator for every key in the multiset in ascending
// order, until iterator returns false.
func (m *Multiset[K]) Ascend(iterator func(K) bool) {
	m.tree.Ascend(iterator)
}

// Descend calls the iterator for every key in the multiset in descending
// order, until iterator returns false.
func (m *Multiset[K]) Descend(iterator func(K) bool) {
	m.tree.Descend(iterator)
}

// Keys returns all keys in ascending order, duplicates included.
func (m *Multiset[K]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Split detaches every key ordering strictly before the given key into a new
// multiset; copies of the key itself all stay behind.  It returns
// splaytree.ErrKeyNotFound if the key is absent.
func (m *Multiset[K]) Split(key K) (*Multiset[K], error) {
	tree, err := m.tree.Split(key)
	if err != nil {
		return nil, err
	}
	return &Multiset[K]{tree: tree}, nil
}

// Merge transfers every key of other into the receiver, leaving other
// empty.  Every key in other must order after or equal to every key in the
// receiver; Merge returns splaytree.ErrKeyOverlap otherwise.
func (m *Multiset[K]) Merge(other *Multiset[K]) error {
	return m.tree.MergeEqual(other.tree)
}

// Clone returns a deep copy of the multiset.
func (m *Multiset[K]) Clone() *Multiset[K] {
	return &Multiset[K]{tree: m.tree.Clone()}
}

// Swap exchanges the contents of the two multisets.
func (m *Multiset[K]) Swap(other *Multiset[K]) {
	m.tree.Swap(other.tree)
}
