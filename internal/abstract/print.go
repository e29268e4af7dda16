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
	"fmt"
	"io"
	"strings"
)

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V, A, AP]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	t.root().writeString(&b)
	return b.String()
}

func (n *node[K, V, A, AP]) writeString(b *strings.Builder) {
	if n.left != nil || n.right != nil {
		b.WriteString("(")
		if n.left != nil {
			n.left.writeString(b)
		}
		b.WriteString(",")
		if n.right != nil {
			n.right.writeString(b)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
}

// Dump writes one line per element in key order holding the key and its
// balance factor. The output is meant for debugging.
func (t *Map[K, V, A, AP]) Dump(w io.Writer) error {
	if r := t.root(); r != nil {
		if _, err := fmt.Fprintf(w, "root: %v\n", r.key); err != nil {
			return err
		}
	}
	for n := t.begin; n != t.end; n = n.next() {
		if _, err := fmt.Fprintf(w, "%v %+d\n", n.key, n.balance); err != nil {
			return err
		}
	}
	return nil
}
