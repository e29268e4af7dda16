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
	"fmt"
	"io"
	"strconv"

	"github.com/ajwerner/avl"
	"github.com/bitmark-inc/logger"
)

func runInsert(w io.Writer, log *logger.L, args []string) error {
	m := avl.MakeOrderedMap[int, int]()
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", a, err)
		}
		if _, inserted, err := m.Insert(k, k); err != nil {
			return err
		} else if !inserted {
			log.Warnf("duplicate key: %d", k)
			continue
		}
		log.Debugf("inserted: %d  height: %d", k, m.Height())
	}
	log.Infof("size: %d  height: %d", m.Len(), m.Height())
	fmt.Fprintln(w, m.String())
	return m.Dump(w)
}
