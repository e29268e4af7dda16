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

package abstract

import (
	"cmp"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumAug tracks the size and the sum of the keys of a subtree so that tests
// can verify augmentations are kept current across rotations.
type sumAug struct {
	size, sum int
}

func (a *sumAug) Update(n Node[int, *sumAug]) (changed bool) {
	orig := *a
	*a = sumAug{size: 1, sum: n.Key()}
	for _, c := range [...]*sumAug{n.Left(), n.Right()} {
		if c != nil {
			a.size += c.size
			a.sum += c.sum
		}
	}
	return *a != orig
}

type testMap = Map[int, string, sumAug, *sumAug]

func newTestMap(maxSize int) *testMap {
	m := MakeMap[int, string, sumAug](cmp.Compare[int], maxSize)
	return &m
}

func insertAll(t *testing.T, m *testMap, keys ...int) {
	t.Helper()
	for _, k := range keys {
		_, _, err := m.Insert(k, valueFor(k))
		require.NoError(t, err)
		require.NoError(t, m.Check())
	}
}

func valueFor(k int) string { return strings.Repeat("v", k%7) + string(rune('a'+k%26)) }

func keys(m *testMap) (ks []int) {
	for k := range m.All() {
		ks = append(ks, k)
	}
	return ks
}

func TestEmpty(t *testing.T) {
	m := newTestMap(0)
	require.NoError(t, m.Check())
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, DefaultMaxSize, m.MaxSize())
	assert.True(t, m.Begin().Equal(m.End()))
	assert.False(t, m.Begin().Valid())
	assert.Equal(t, ";", m.String())

	it := m.End()
	it.Prev()
	assert.True(t, it.Equal(m.End()))
	it.Next()
	assert.True(t, it.Equal(m.End()))
}

func TestAscendingSingleRotation(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3)
	r := m.root()
	require.Equal(t, 2, r.key)
	require.Equal(t, 1, r.left.key)
	require.Equal(t, 3, r.right.key)
	for _, n := range []*node[int, string, sumAug, *sumAug]{r, r.left, r.right} {
		assert.Equal(t, int8(0), n.balance)
	}
	assert.Equal(t, sumAug{size: 3, sum: 6}, r.aug)
	assert.Equal(t, 1, m.Begin().Key())
}

func TestLeftRightDoubleRotation(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 3, 1, 2)
	r := m.root()
	require.Equal(t, 2, r.key)
	require.Equal(t, 1, r.left.key)
	require.Equal(t, 3, r.right.key)
	assert.Equal(t, int8(0), r.balance)
	assert.Equal(t, int8(0), r.left.balance)
	assert.Equal(t, int8(0), r.right.balance)
}

func TestRightLeftDoubleRotation(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 3, 2)
	r := m.root()
	require.Equal(t, 2, r.key)
	require.Equal(t, 1, r.left.key)
	require.Equal(t, 3, r.right.key)
}

// TestDoubleRotationBalanceTable drives double rotations in which the new
// subtree root leans either way before the rotation, which is where a
// rotation that resets every balance factor to zero goes wrong.
func TestDoubleRotationBalanceTable(t *testing.T) {
	for _, tc := range []struct {
		name string
		keys []int
	}{
		{"left-right, new root leaning left", []int{50, 20, 80, 10, 30, 25}},
		{"left-right, new root leaning right", []int{50, 20, 80, 10, 30, 35}},
		{"right-left, new root leaning left", []int{50, 20, 80, 70, 90, 65}},
		{"right-left, new root leaning right", []int{50, 20, 80, 70, 90, 75}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMap(0)
			insertAll(t, m, tc.keys...)
			assert.Equal(t, 3, m.Height())
		})
	}
}

func TestEraseTwoChildren(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 4, m.root().key)

	it, err := m.Erase(m.Find(4))
	require.NoError(t, err)
	require.NoError(t, m.Check())
	assert.Equal(t, 5, it.Key())
	assert.Equal(t, 5, m.root().key)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, keys(m))
}

func TestEraseSuccessorIsRightChild(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 2, 1, 3)
	it, err := m.Erase(m.Find(2))
	require.NoError(t, err)
	require.NoError(t, m.Check())
	assert.Equal(t, 3, it.Key())
	assert.Equal(t, 3, m.root().key)
	assert.Equal(t, []int{1, 3}, keys(m))
}

// TestEraseRepeatedRotations removes a key whose retrace rotates at two
// different levels, shortening the tree.
func TestEraseRepeatedRotations(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 10, 12, 4, 5, 8, 7, 9, 3, 6, 11, 2, 1)
	require.Equal(t, 5, m.Height())
	_, found := m.Delete(8)
	require.True(t, found)
	require.NoError(t, m.Check())
	assert.Equal(t, 4, m.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12}, keys(m))
}

func TestEraseBeginUpdatesCache(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 5, 3, 8, 4)
	it, err := m.Erase(m.Begin())
	require.NoError(t, err)
	require.NoError(t, m.Check())
	assert.Equal(t, 4, it.Key())
	assert.Equal(t, 4, m.Begin().Key())
}

func TestEraseInvalidPositions(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3)

	_, err := m.Erase(m.End())
	assert.True(t, errors.Is(err, ErrInvalidPosition))

	other := newTestMap(0)
	insertAll(t, other, 2)
	_, err = m.Erase(other.Find(2))
	assert.ErrorIs(t, err, ErrInvalidPosition)

	stale := m.Find(2)
	_, err = m.Erase(stale)
	require.NoError(t, err)
	_, err = m.Erase(stale)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.False(t, stale.Valid())
	assert.Equal(t, 2, m.Len())

	var zero Iterator[int, string, sumAug, *sumAug]
	_, err = m.Erase(zero)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	require.NoError(t, m.Check())
}

func TestEraseWhileIterating(t *testing.T) {
	m := newTestMap(0)
	for i := 0; i < 100; i++ {
		insertAll(t, m, i)
	}
	for it := m.Begin(); it.Valid(); {
		if it.Key()%3 == 0 {
			var err error
			it, err = m.Erase(it)
			require.NoError(t, err)
			require.NoError(t, m.Check())
			continue
		}
		it.Next()
	}
	assert.Equal(t, 66, m.Len())
	for k := range m.All() {
		assert.NotZero(t, k%3)
	}
}

func TestInsertDuplicateIsIdempotent(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3)
	before := m.String()
	called := false
	it, inserted, err := m.InsertFunc(2, func() string { called = true; return "x" })
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.False(t, called)
	assert.Equal(t, valueFor(2), it.Value())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, before, m.String())
}

func TestCapacityExceeded(t *testing.T) {
	m := newTestMap(2)
	insertAll(t, m, 1, 2)
	before := m.String()

	_, inserted, err := m.Insert(3, "c")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.False(t, inserted)
	assert.Equal(t, before, m.String())
	assert.Equal(t, 2, m.Len())

	// Present keys are found without error even when full.
	_, inserted, err = m.Insert(1, "z")
	assert.NoError(t, err)
	assert.False(t, inserted)

	assert.Panics(t, func() { m.Index(4) })
	require.NoError(t, m.Check())
}

func TestAtAndIndex(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1)

	_, err := m.At(2)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, m.Len())

	v, err := m.At(1)
	require.NoError(t, err)
	*v = "one"
	got, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", got)

	p := m.Index(7)
	assert.Equal(t, "", *p)
	*p = "seven"
	got, _ = m.Get(7)
	assert.Equal(t, "seven", got)
	assert.Equal(t, 2, m.Len())
	require.NoError(t, m.Check())
}

func TestUpsert(t *testing.T) {
	m := newTestMap(0)
	_, replaced, err := m.Upsert(1, "a")
	require.NoError(t, err)
	assert.False(t, replaced)
	old, replaced, err := m.Upsert(1, "b")
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, "a", old)
	got, _ := m.Get(1)
	assert.Equal(t, "b", got)
}

func TestIterationAndSeek(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 10, 20, 30, 40, 50)

	it := m.MakeIter()
	it.SeekGE(25)
	assert.Equal(t, 30, it.Key())
	it.SeekGE(30)
	assert.Equal(t, 30, it.Key())
	it.SeekGE(51)
	assert.False(t, it.Valid())
	it.SeekLT(30)
	assert.Equal(t, 20, it.Key())
	it.SeekLT(10)
	assert.False(t, it.Valid())

	it.Last()
	assert.Equal(t, 50, it.Key())
	it.Next()
	assert.True(t, it.Equal(m.End()))
	it.Prev()
	assert.Equal(t, 50, it.Key())

	it.First()
	it.Prev()
	assert.True(t, it.Equal(m.End()))

	var back []int
	for k := range m.Backward() {
		back = append(back, k)
	}
	assert.Equal(t, []int{50, 40, 30, 20, 10}, back)
}

func TestIteratorsSurviveOtherMutations(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3, 4, 5, 6, 7, 8)
	it := m.Find(5)
	for _, k := range []int{9, 10, 11, 0, -1} {
		insertAll(t, m, k)
	}
	for _, k := range []int{1, 2, 8, 4} {
		_, found := m.Delete(k)
		require.True(t, found)
		require.NoError(t, m.Check())
	}
	require.True(t, it.Valid())
	assert.Equal(t, 5, it.Key())
	it.Next()
	assert.Equal(t, 6, it.Key())
}

func TestClear(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3, 4)
	it := m.Find(3)
	m.Clear()
	require.NoError(t, m.Check())
	assert.True(t, m.Empty())
	assert.True(t, m.Begin().Equal(m.End()))
	assert.False(t, it.Valid())
	_, err := m.Erase(it)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	insertAll(t, m, 9, 8)
	assert.Equal(t, []int{8, 9}, keys(m))
}

func TestInsertRange(t *testing.T) {
	m := newTestMap(3)
	err := m.InsertRange(func(yield func(int, string) bool) {
		for i := 5; i > 0; i-- {
			if !yield(i, valueFor(i)) {
				return
			}
		}
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, []int{3, 4, 5}, keys(m))
}

func TestCompareAndEqual(t *testing.T) {
	a, b := newTestMap(0), newTestMap(0)
	insertAll(t, a, 1, 2, 3)
	insertAll(t, b, 3, 2, 1)
	assert.True(t, Equal(a, b, func(x, y string) bool { return x == y }))
	assert.Equal(t, 0, Compare(a, b, strings.Compare))

	insertAll(t, b, 4)
	assert.False(t, Equal(a, b, func(x, y string) bool { return x == y }))
	assert.Equal(t, -1, Compare(a, b, strings.Compare))
	assert.Equal(t, 1, Compare(b, a, strings.Compare))

	*a.Index(2) = "zzz"
	assert.Equal(t, 1, Compare(a, b, strings.Compare))

	c := newTestMap(0)
	insertAll(t, c, 1, 5)
	assert.Equal(t, -1, Compare(a, c, strings.Compare))
}

func TestDump(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3)
	var b strings.Builder
	require.NoError(t, m.Dump(&b))
	assert.Equal(t, "root: 2\n1 +0\n2 +0\n3 +0\n", b.String())
	assert.Equal(t, "(1:vb,3:vvvd)2:vvc", m.String())
}

func TestLowLevelIterator(t *testing.T) {
	m := newTestMap(0)
	insertAll(t, m, 1, 2, 3, 4)
	it := m.MakeIter()
	ll := LowLevel(&it)
	ll.Reset()
	assert.Equal(t, 2, ll.Node().Key())
	assert.Equal(t, 1, ll.Balance())
	assert.Equal(t, sumAug{size: 4, sum: 10}, *ll.Aug())
	ll.DescendRight()
	assert.Equal(t, 3, ll.Node().Key())
	assert.False(t, ll.HasLeft())
	assert.False(t, ll.IsLeftChild())
	ll.DescendRight()
	assert.Equal(t, 4, ll.Node().Key())
	assert.False(t, ll.IsLeftChild())
	assert.Panics(t, func() { ll.DescendLeft() })
	ll.Ascend()
	ll.Ascend()
	assert.True(t, ll.IsLeftChild())
	ll.Ascend()
	assert.False(t, ll.IsLeftChild())
	assert.True(t, it.Equal(m.End()))
}

func TestRandomized(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		m := newTestMap(0)
		n := rng.Intn(300) + 1
		perm := rng.Perm(n)
		for _, k := range perm {
			_, inserted, err := m.Insert(k, valueFor(k))
			require.NoError(t, err)
			require.True(t, inserted)
		}
		require.NoError(t, m.Check())
		require.Equal(t, n, m.Len())

		for _, k := range rng.Perm(n) {
			it := m.Find(k)
			require.True(t, it.Valid())
			want := it
			want.Next()
			got, err := m.Erase(it)
			require.NoError(t, err)
			require.True(t, got.Equal(want))
			require.NoError(t, m.Check(), "after erasing %d", k)
		}
		require.True(t, m.Empty())
		require.True(t, m.Begin().Equal(m.End()))
	}
}

func TestReverseErase(t *testing.T) {
	m := newTestMap(0)
	for i := 0; i < 200; i++ {
		insertAll(t, m, i)
	}
	for i := 199; i >= 0; i-- {
		_, found := m.Delete(i)
		require.True(t, found)
		require.NoError(t, m.Check())
	}
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Height())
}
