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

import "errors"

// Errors returned by Map operations. They are compared with errors.Is;
// returned errors may wrap them with additional context.
var (
	// ErrKeyNotFound is returned by At when no element has the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidPosition is returned by Erase when passed the end position,
	// an iterator over another map, or a position whose element has
	// already been erased.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrCapacityExceeded is returned by insertion when the map already
	// holds MaxSize elements.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
