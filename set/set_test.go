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

package set

import (
	"errors"
	"testing"

	"github.com/stiar/splay-tree/splaytree"
	"github.com/stretchr/testify/suite"
)

type SetTestSuite struct {
	suite.Suite
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetTestSuite))
}

func (s *SetTestSuite) TestNew() {
	set := New[int]()
	s.NotNil(set)
	s.Equal(0, set.Len())
	s.True(set.Empty())
}

func (s *SetTestSuite) TestInsertAndContains() {
	set := New[int]()

	_, inserted := set.Insert(3)
	s.True(inserted)
	_, inserted = set.Insert(1)
	s.True(inserted)
	_, inserted = set.Insert(3)
	s.False(inserted)

	s.Equal(2, set.Len())
	s.True(set.Contains(1))
	s.True(set.Contains(3))
	s.False(set.Contains(2))
	s.Equal(1, set.Count(3))
}

func (s *SetTestSuite) TestOrderedIteration() {
	set := Of(5, 2, 9, 1, 7)
	s.Equal([]int{1, 2, 5, 7, 9}, set.Keys())

	var descending []int
	set.Descend(func(key int) bool {
		descending = append(descending, key)
		return true
	})
	s.Equal([]int{9, 7, 5, 2, 1}, descending)

	min, ok := set.Min()
	s.True(ok)
	s.Equal(1, min)
	max, ok := set.Max()
	s.True(ok)
	s.Equal(9, max)
}

func (s *SetTestSuite) TestErase() {
	set := Of(1, 2, 3)

	s.Equal(1, set.Erase(2))
	s.Equal(0, set.Erase(2))
	s.Equal([]int{1, 3}, set.Keys())
	s.Equal(2, set.Len())

	it := set.EraseAt(set.Find(1))
	s.True(it.Valid())
	s.Equal(3, it.Value())
	s.Equal([]int{3}, set.Keys())
}

func (s *SetTestSuite) TestEngineIteratorInterop() {
	// Adapter methods traffic directly in the engine's iterator type, so
	// cursors returned here feed back into the engine without conversion.
	set := Of(1, 2, 3, 4, 5)

	var first, last splaytree.Iterator[int, int] = set.LowerBound(2), set.UpperBound(4)
	s.Equal(5, set.EraseRange(first, last).Value())
	s.Equal([]int{1, 5}, set.Keys())
}

func (s *SetTestSuite) TestIterators() {
	set := Of(1, 2, 3)

	it := set.Begin()
	s.Equal(1, it.Value())
	it = it.Next()
	s.Equal(2, it.Value())
	s.Equal(3, set.End().Prev().Value())

	lower := set.LowerBound(2)
	upper := set.UpperBound(2)
	s.Equal(2, lower.Value())
	s.Equal(3, upper.Value())

	first, last := set.EqualRange(4)
	s.True(first.Equal(last))
}

func (s *SetTestSuite) TestEmplace() {
	set := New[string]()

	_, inserted, err := set.Emplace(func() (string, error) { return "a", nil })
	s.NoError(err)
	s.True(inserted)

	boom := errors.New("boom")
	_, _, err = set.Emplace(func() (string, error) { return "", boom })
	s.ErrorIs(err, boom)
	s.Equal(1, set.Len())
}

func (s *SetTestSuite) TestSplitMerge() {
	set := Of(1, 3, 4, 6, 7, 9)

	left, err := set.Split(6)
	s.NoError(err)
	s.Equal([]int{1, 3, 4}, left.Keys())
	s.Equal([]int{6, 7, 9}, set.Keys())

	s.NoError(left.Merge(set))
	s.Equal([]int{1, 3, 4, 6, 7, 9}, left.Keys())
	s.Equal(6, left.Len())
	s.True(set.Empty())

	_, err = left.Split(5)
	s.ErrorIs(err, splaytree.ErrKeyNotFound)
}

func (s *SetTestSuite) TestMergeRejectsOverlap() {
	a := Of(1, 5)
	b := Of(5, 9)
	s.ErrorIs(a.Merge(b), splaytree.ErrKeyOverlap)
	s.Equal(2, a.Len())
	s.Equal(2, b.Len())
}

func (s *SetTestSuite) TestCustomComparator() {
	set := NewFunc(splaytree.Reverse(splaytree.Ordered[string]()))
	for _, key := range []string{"pear", "apple", "quince"} {
		set.Insert(key)
	}
	s.Equal([]string{"quince", "pear", "apple"}, set.Keys())
}

func (s *SetTestSuite) TestCloneAndSwap() {
	set := Of(1, 2, 3)
	clone := set.Clone()
	set.Erase(2)
	s.Equal([]int{1, 2, 3}, clone.Keys())
	s.Equal([]int{1, 3}, set.Keys())

	other := Of(7)
	set.Swap(other)
	s.Equal([]int{7}, set.Keys())
	s.Equal([]int{1, 3}, other.Keys())
}

func (s *SetTestSuite) TestClear() {
	set := Of(1, 2, 3)
	set.Clear()
	s.True(set.Empty())
	s.Equal(0, set.Len())
	set.Insert(4)
	s.Equal([]int{4}, set.Keys())
}
