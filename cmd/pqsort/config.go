// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/pqueue"
	"gopkg.in/yaml.v3"
)

type sortFlags struct {
	cmdutil.LoggingFlags
	Config  string `subcmd:"config,,'YAML file containing default settings, flags override the values it contains'"`
	Order   string `subcmd:"order,,'output order, one of desc (largest first, the default) or asc'"`
	Numeric bool   `subcmd:"numeric,false,compare lines as floating point numbers rather than strings"`
	Binding string `subcmd:"binding,,'heap implementation, one of sift (the default) or std'"`
	Profile string `subcmd:"profile,,'write a profile, specified as <profile>:<filename>'"`
}

// Config represents the YAML configuration file.
type Config struct {
	Order   string                 `yaml:"order"`
	Numeric bool                   `yaml:"numeric"`
	Binding string                 `yaml:"binding"`
	Logging *cmdutil.LoggingConfig `yaml:"logging"`
}

type settings struct {
	descending bool
	numeric    bool
	binding    pqueue.Binding
	logging    cmdutil.LoggingConfig
}

// resolve merges the flags with the optional config file. Flags that were
// set to a non-default value take precedence, the logging section of the
// config file, if present, replaces the logging flags.
func resolve(fv *sortFlags) (settings, error) {
	var cfg Config
	if len(fv.Config) > 0 {
		if err := parseConfigFile(fv.Config, &cfg); err != nil {
			return settings{}, err
		}
	}
	s := settings{
		numeric: fv.Numeric || cfg.Numeric,
		logging: fv.LoggingConfig(),
	}
	if cfg.Logging != nil {
		s.logging = *cfg.Logging
	}
	order := firstNonEmpty(fv.Order, cfg.Order, "desc")
	switch order {
	case "desc":
		s.descending = true
	case "asc":
	default:
		return settings{}, fmt.Errorf("unknown order %q: must be one of desc or asc", order)
	}
	b, err := pqueue.ParseBinding(firstNonEmpty(fv.Binding, cfg.Binding))
	if err != nil {
		return settings{}, err
	}
	s.binding = b
	return s, nil
}

func parseConfigFile(filename string, cfg *Config) error {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return fmt.Errorf("failed to parse yaml config file: %v: %w", filename, err)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}
