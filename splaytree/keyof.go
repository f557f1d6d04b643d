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

import "cmp"

// Compare is a three-way comparison over keys.  It must define a total order:
// negative when a orders before b, zero when neither orders before the other,
// and positive when a orders after b.
type Compare[K any] func(a, b K) int

// KeyOf projects a stored value to the key it is ordered by.  It lets the
// same tree serve both a plain key set, where the value is its own key, and a
// key/payload structure, where only part of the value participates in
// ordering.
type KeyOf[K, V any] func(value V) K

// Ordered returns the natural three-way comparison for types implementing
// cmp.Ordered.
func Ordered[K cmp.Ordered]() Compare[K] {
	return cmp.Compare[K]
}

// Reverse returns a comparison with the order of compare inverted.
func Reverse[K any](compare Compare[K]) Compare[K] {
	return func(a, b K) int {
		return compare(b, a)
	}
}

// Identity is the key projection for trees whose values are their own keys.
func Identity[K any](key K) K {
	return key
}
