// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds defaults read from DUALCALC_* environment variables.
type Config struct {
	Precision int    `envconfig:"PRECISION" default:"64"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	Check     bool   `envconfig:"CHECK" default:"false"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("dualcalc", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
