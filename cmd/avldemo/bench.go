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
	"math/rand"
	"os"
	"time"

	"github.com/ajwerner/avl"
	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"
)

type benchConfig struct {
	n        int
	seed     int64
	progress bool
}

func (c *benchConfig) run(w io.Writer, log *logger.L) error {
	if c.n <= 0 {
		return fmt.Errorf("n must be positive, got %d", c.n)
	}
	rng := rand.New(rand.NewSource(c.seed))
	m := avl.MakeOrderedMap[int, int]()

	var bar *progressbar.ProgressBar
	if c.progress {
		bar = progressbar.NewOptions(2*c.n,
			progressbar.OptionSetDescription("inserting and erasing"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
		)
	}

	start := time.Now()
	for _, k := range rng.Perm(c.n) {
		if _, _, err := m.Insert(k, k); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	inserted := time.Since(start)
	height := m.Height()
	if err := checkSorted(m); err != nil {
		return err
	}

	start = time.Now()
	for _, k := range rng.Perm(c.n) {
		if _, found := m.Delete(k); !found {
			return fmt.Errorf("key %d missing", k)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	erased := time.Since(start)
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if !m.Empty() || !m.Begin().Equal(m.End()) {
		return fmt.Errorf("map not empty after erasing every key: %d left", m.Len())
	}

	log.Infof("bench n: %d  seed: %d  height: %d", c.n, c.seed, height)
	fmt.Fprintf(w, "n=%d height=%d insert=%s erase=%s\n", c.n, height, inserted, erased)
	return nil
}

func checkSorted(m *avl.Map[int, int]) error {
	prev, count := -1, 0
	for k := range m.Keys() {
		if k <= prev {
			return fmt.Errorf("keys out of order: %d after %d", k, prev)
		}
		prev = k
		count++
	}
	if count != m.Len() {
		return fmt.Errorf("iterated %d keys, size is %d", count, m.Len())
	}
	return nil
}
