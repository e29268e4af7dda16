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

// Compare compares two maps lexicographically by their in-order sequences of
// (key, value) pairs. Keys are compared with a's comparison function and
// values with vcmp. A map which is a proper prefix of the other compares
// less.
func Compare[K, V, A any, AP Aug[K, A]](
	a, b *Map[K, V, A, AP], vcmp func(V, V) int,
) int {
	x, y := a.begin, b.begin
	for ; x != a.end && y != b.end; x, y = x.next(), y.next() {
		if c := a.cfg.cmp(x.key, y.key); c != 0 {
			return c
		}
		if c := vcmp(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == a.end && y == b.end:
		return 0
	case x == a.end:
		return -1
	default:
		return 1
	}
}

// Equal reports whether two maps hold the same keys, in the sense of a's
// comparison function, with values equal according to veq.
func Equal[K, V, A any, AP Aug[K, A]](
	a, b *Map[K, V, A, AP], veq func(V, V) bool,
) bool {
	if a.length != b.length {
		return false
	}
	for x, y := a.begin, b.begin; x != a.end; x, y = x.next(), y.next() {
		if a.cfg.cmp(x.key, y.key) != 0 || !veq(x.value, y.value) {
			return false
		}
	}
	return true
}
