// Copyright 2018 The Cockroach Authors.
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

package interval

import (
	"cmp"

	"github.com/ajwerner/avl/internal/abstract"
)

// aug records the largest end point of any interval in the subtree.
type aug[P cmp.Ordered, I Interval[P]] struct {
	maxEnd P
}

func (a *aug[P, I]) Update(n abstract.Node[I, *aug[P, I]]) (updated bool) {
	orig := a.maxEnd
	a.maxEnd = n.Key().End()
	if l := n.Left(); l != nil && l.maxEnd > a.maxEnd {
		a.maxEnd = l.maxEnd
	}
	if r := n.Right(); r != nil && r.maxEnd > a.maxEnd {
		a.maxEnd = r.maxEnd
	}
	return a.maxEnd != orig
}

// reaches reports whether some interval in the subtree summarized by a ends
// after p. A nil augmentation stands for an empty subtree.
func (a *aug[P, I]) reaches(p P) bool {
	return a != nil && a.maxEnd > p
}
