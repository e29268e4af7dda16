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

// Option configures a Map.
type Option func(*options)

type options struct {
	maxSize int
}

// WithMaxSize bounds the number of elements the map may hold. Insertions
// into a full map fail with ErrCapacityExceeded. Non-positive values leave
// the map unbounded.
func WithMaxSize(n int) Option {
	return func(o *options) { o.maxSize = n }
}

func makeOptions(opts []Option) (o options) {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
