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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ajwerner/avl"
	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"
)

// script is a list of operations applied in order to a map[int]string.
type script struct {
	MaxSize int    `yaml:"max_size"`
	Steps   []step `yaml:"steps"`
}

type step struct {
	Op    string `yaml:"op"`
	Key   int    `yaml:"key"`
	Value string `yaml:"value"`
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseScript(data)
}

func parseScript(data []byte) (*script, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range s.Steps {
		switch st.Op {
		case "insert", "upsert", "erase", "find", "at", "index", "clear", "dump":
		default:
			return nil, fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
	}
	return &s, nil
}

// run applies the steps, writing one line of output per step. Recoverable
// map errors are reported and the script continues.
func (s *script) run(w io.Writer, log *logger.L) error {
	m := avl.MakeOrderedMap[int, string](avl.WithMaxSize(s.MaxSize))
	for i, st := range s.Steps {
		log.Debugf("step %d: %s %d", i, st.Op, st.Key)
		var err error
		switch st.Op {
		case "insert":
			var inserted bool
			if _, inserted, err = m.Insert(st.Key, st.Value); err == nil {
				fmt.Fprintf(w, "insert %d: inserted=%t\n", st.Key, inserted)
			}
		case "upsert":
			var old string
			var replaced bool
			if old, replaced, err = m.Upsert(st.Key, st.Value); err == nil {
				fmt.Fprintf(w, "upsert %d: replaced=%t old=%q\n", st.Key, replaced, old)
			}
		case "erase":
			var next avl.Iterator[int, string]
			if next, err = m.Erase(m.Find(st.Key)); err == nil {
				if next.Valid() {
					fmt.Fprintf(w, "erase %d: next=%d\n", st.Key, next.Key())
				} else {
					fmt.Fprintf(w, "erase %d: next=end\n", st.Key)
				}
			}
		case "find":
			if it := m.Find(st.Key); it.Valid() {
				fmt.Fprintf(w, "find %d: %q\n", st.Key, it.Value())
			} else {
				fmt.Fprintf(w, "find %d: end\n", st.Key)
			}
		case "at":
			var v *string
			if v, err = m.At(st.Key); err == nil {
				fmt.Fprintf(w, "at %d: %q\n", st.Key, *v)
			}
		case "index":
			if m.Len() == m.MaxSize() && !m.Contains(st.Key) {
				err = avl.ErrCapacityExceeded
				break
			}
			*m.Index(st.Key) += st.Value
			fmt.Fprintf(w, "index %d: %q\n", st.Key, *m.Index(st.Key))
		case "clear":
			m.Clear()
			fmt.Fprintln(w, "clear")
		case "dump":
			err = m.Dump(w)
		}
		switch {
		case err == nil:
		case errors.Is(err, avl.ErrKeyNotFound),
			errors.Is(err, avl.ErrInvalidPosition),
			errors.Is(err, avl.ErrCapacityExceeded):
			log.Warnf("step %d: %s", i, err)
			fmt.Fprintf(w, "%s %d: error: %s\n", st.Op, st.Key, err)
		default:
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	log.Infof("script done: %d steps  size: %d", len(s.Steps), m.Len())
	return nil
}
