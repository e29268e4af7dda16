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

import "math"

// DefaultMaxSize is the cardinality bound used when none is configured.
const DefaultMaxSize = math.MaxInt

// Config is used to configure the tree. It consists of a comparison function
// for keys and the upper bound on the number of elements.
type Config[K any] struct {
	cmp     func(K, K) int
	maxSize int
}

// Compare compares two keys using the same comparison function as the Map.
func (c *Config[K]) Compare(a, b K) int { return c.cmp(a, b) }

// MaxSize returns the maximum number of elements the Map may hold.
func (c *Config[K]) MaxSize() int { return c.maxSize }

func makeConfig[K any](cmp func(K, K) int, maxSize int) (c Config[K]) {
	if cmp == nil {
		panic("abstract: nil comparison function")
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	c.cmp = cmp
	c.maxSize = maxSize
	return c
}
