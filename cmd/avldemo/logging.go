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
	"os"

	"github.com/bitmark-inc/logger"
)

func setupLogging(dir, level string, console bool) (*logger.L, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	err := logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      logTag + ".log",
		Size:      1048576,
		Count:     5,
		Console:   console,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("logger initialization failed: %w", err)
	}
	return logger.New(logTag), nil
}
