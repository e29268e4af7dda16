// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package avl

import "github.com/ajwerner/avl/internal/abstract"

// Iterator is a position in a Map.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V, noopAug[K], *noopAug[K]]
}

// MakeIter returns an iterator positioned at End.
func (m *Map[K, V]) MakeIter() Iterator[K, V] { return Iterator[K, V]{m.t.MakeIter()} }

func (it *Iterator[K, V]) First()       { it.it.First() }
func (it *Iterator[K, V]) Last()        { it.it.Last() }
func (it *Iterator[K, V]) Next()        { it.it.Next() }
func (it *Iterator[K, V]) Prev()        { it.it.Prev() }
func (it *Iterator[K, V]) SeekGE(key K) { it.it.SeekGE(key) }
func (it *Iterator[K, V]) SeekLT(key K) { it.it.SeekLT(key) }
func (it Iterator[K, V]) Valid() bool   { return it.it.Valid() }
func (it Iterator[K, V]) Key() K        { return it.it.Key() }
func (it Iterator[K, V]) Value() V      { return it.it.Value() }
func (it Iterator[K, V]) ValuePtr() *V  { return it.it.ValuePtr() }
func (it Iterator[K, V]) SetValue(v V)  { it.it.SetValue(v) }

// Equal reports whether it and o are the same position.
func (it Iterator[K, V]) Equal(o Iterator[K, V]) bool { return it.it.Equal(o.it) }
