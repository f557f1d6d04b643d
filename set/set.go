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

// Package set provides an ordered set of unique keys backed by a splay tree.
//
// It is a thin renaming layer over the splaytree engine; every operation is
// a direct delegation, and the engine's amortized complexity, iterator
// validity and concurrency contracts apply unchanged.
package set

import (
	"cmp"

	"github.com/stiar/splay-tree/splaytree"
)

// Set is an ordered collection of unique keys.
type Set[K any] struct {
	tree *splaytree.Tree[K, K]
}

// New creates a new set of naturally ordered keys.
func New[K cmp.Ordered]() *Set[K] {
	return &Set[K]{tree: splaytree.New[K]()}
}

// NewFunc creates a new set ordered by the given comparison.
func NewFunc[K any](compare splaytree.Compare[K]) *Set[K] {
	return &Set[K]{tree: splaytree.NewFunc(compare)}
}

// Of creates a new set of naturally ordered keys holding the given keys.
func Of[K cmp.Ordered](keys ...K) *Set[K] {
	return &Set[K]{tree: splaytree.Of(keys...)}
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool {
	return s.tree.Empty()
}

// Insert adds the given key to the set and reports whether it was absent.
// The key, old or new, is splayed so that subsequent access to it is cheap.
func (s *Set[K]) Insert(key K) (splaytree.Iterator[K, K], bool) {
	return s.tree.InsertUnique(key)
}

// Emplace builds a key with the given constructor and inserts it.  A
// constructor error is returned with the set untouched.
func (s *Set[K]) Emplace(construct func() (K, error)) (splaytree.Iterator[K, K], bool, error) {
	return s.tree.EmplaceUnique(construct)
}

// Erase removes the given key and returns the number of keys removed, zero
// or one.
func (s *Set[K]) Erase(key K) int {
	return s.tree.EraseKey(key)
}

// EraseAt removes the key the iterator references and returns an iterator to
// its successor.
func (s *Set[K]) EraseAt(it splaytree.Iterator[K, K]) splaytree.Iterator[K, K] {
	return s.tree.Erase(it)
}

// EraseRange removes every key in [first, last).
func (s *Set[K]) EraseRange(first, last splaytree.Iterator[K, K]) splaytree.Iterator[K, K] {
	return s.tree.EraseRange(first, last)
}

// Clear removes all keys from the set.
func (s *Set[K]) Clear() {
	s.tree.Clear(true)
}

// Find locates the given key and splays it, or returns End.
func (s *Set[K]) Find(key K) splaytree.Iterator[K, K] {
	return s.tree.Find(key)
}

// Contains reports whether the set holds the given key, without changing
// the shape of the underlying tree.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Has(key)
}

// Count returns the number of copies of key in the set, zero or one.
func (s *Set[K]) Count(key K) int {
	return s.tree.Count(key)
}

// LowerBound returns an iterator to the first key not less than key.
func (s *Set[K]) LowerBound(key K) splaytree.Iterator[K, K] {
	return s.tree.LowerBound(key)
}

// UpperBound returns an iterator to the first key greater than key.
func (s *Set[K]) UpperBound(key K) splaytree.Iterator[K, K] {
	return s.tree.UpperBound(key)
}

// EqualRange returns the iterator span of all keys equal to key.
func (s *Set[K]) EqualRange(key K) (splaytree.Iterator[K, K], splaytree.Iterator[K, K]) {
	return s.tree.EqualRange(key)
}

// Begin returns an iterator to the smallest key.
func (s *Set[K]) Begin() splaytree.Iterator[K, K] {
	return s.tree.Begin()
}

// End returns the past-the-end iterator.
func (s *Set[K]) End() splaytree.Iterator[K, K] {
	return s.tree.End()
}

// Min returns the smallest key in the set.
func (s *Set[K]) Min() (K, bool) {
	return s.tree.Min()
}

// Max returns the largest key in the set.
func (s *Set[K]) Max() (K, bool) {
	return s.tree.Max()
}

// Ascend calls the iterator for every key in the set in ascending order,
// until iterator returns false.
func (s *Set[K]) Ascend(iterator func(K) bool) {
	s.tree.Ascend(iterator)
}

// Descend calls the iterator for every key in the set in descending order,
// until iterator returns false.
func (s *Set[K]) Descend(iterator func(K) bool) {
	s.tree.Descend(iterator)
}

// Keys returns all keys in ascending order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.Len())
	s.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Split detaches every key ordering strictly before the given key into a new
// set.  It returns splaytree.ErrKeyNotFound if the key is absent.
func (s *Set[K]) Split(key K) (*Set[K], error) {
	tree, err := s.tree.Split(key)
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// Merge transfers every key of other into the receiver, leaving other empty.
// Every key in other must order strictly after every key in the receiver;
// Merge returns splaytree.ErrKeyOverlap otherwise.
func (s *Set[K]) Merge(other *Set[K]) error {
	return s.tree.MergeUnique(other.tree)
}

// Clone returns a deep copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// Swap exchanges the contents of the two sets.
func (s *Set[K]) Swap(other *Set[K]) {
	s.tree.Swap(other.tree)
}
