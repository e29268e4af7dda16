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

package orderstat

import "github.com/ajwerner/avl/internal/abstract"

type aug[K any] struct {
	// size is the number of items rooted at the current subtree.
	size int
}

// Update will update the count for the current node.
func (a *aug[K]) Update(n abstract.Node[K, *aug[K]]) (updated bool) {
	orig := a.size
	a.size = 1 + subtreeSize(n.Left()) + subtreeSize(n.Right())
	return a.size != orig
}

func subtreeSize[K any](a *aug[K]) int {
	if a == nil {
		return 0
	}
	return a.size
}
