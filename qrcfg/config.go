/*
 * Copyright © 2026, the qrcode project authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package qrcfg loads qrencode's on-disk configuration: the defaults used
// when a flag is not given on the command line.
package qrcfg

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted defaults for the qrencode command.
type Config struct {
	ECLevel  string `yaml:"ec_level"`
	Version  int    `yaml:"version"`   // 0 selects auto-fit
	Mask     int    `yaml:"mask"`      // negative selects auto-select
	Border   int    `yaml:"border"`
	BoxSize  int    `yaml:"box_size"`  // module size in pixels, SVG output only
	LogLevel string `yaml:"loglevel"`
}

// Defaults returns a Config populated with qrencode's built-in defaults.
func Defaults() *Config {
	return &Config{
		ECLevel:  "M",
		Version:  0,
		Mask:     -1,
		Border:   4,
		BoxSize:  10,
		LogLevel: "warn",
	}
}

// Load reads cfg from path, starting from Defaults and overlaying whatever
// fields the YAML document sets. A missing file is not an error: Load
// returns the defaults unchanged so the CLI can run with no config file at
// all.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
