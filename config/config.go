// Copyright 2026 The allwpilib Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config carries the external knobs of the datalog module: open
// disposition and the recognized tuning options for an open log.
package config

// Disposition controls how Open treats an existing file on disk.
type Disposition int

const (
	// CreateNew fails if the file already exists.
	CreateNew Disposition = iota
	// CreateAlways truncates any existing file.
	CreateAlways
	// OpenAlways opens the file if present, otherwise creates it.
	OpenAlways
	// OpenExisting fails if the file is absent.
	OpenExisting
)

const (
	// DefaultInitialSize is the initial time-file size, in records.
	DefaultInitialSize = 1024
	// DefaultMaxGrowSize caps the per-grow-step size, in records.
	DefaultMaxGrowSize = 1 << 20
	// DefaultMaxMapSize caps the mapping window, in bytes. Zero means
	// "cover the whole file"; a bounded sliding window is not implemented,
	// so the mapping always starts at offset 0.
	DefaultMaxMapSize = 0
	// DefaultInitialDataSize is the initial data-file size, in bytes.
	DefaultInitialDataSize = 64 * 1024
	// DefaultMaxDataGrowSize caps the data-file per-grow-step, in bytes.
	DefaultMaxDataGrowSize = 64 * 1024 * 1024
)

// Config bundles every recognized tuning option for an open log. Its zero
// value is NOT the conservative default: every bool field defaults to
// false, so a bare Config{} disables every check and monotonic
// enforcement. Use Default() to get the conservative baseline (all
// checks enabled, monotonic enforced, read-write, no gap data, no
// periodic flush, small-pointer records).
type Config struct {
	ReadOnly bool

	CheckType  bool
	CheckLayout bool
	CheckSize  bool

	CheckMonotonic bool

	LargeData bool
	GapData   []byte

	InitialSize  int64
	MaxGrowSize  int64
	MaxMapSize   int64

	InitialDataSize int64
	MaxDataGrowSize int64

	// PeriodicFlush auto-flushes every N successful appends; 0 disables.
	PeriodicFlush int64
}

// Option mutates a Config. Functional options follow the pack's preference
// for small composable constructors over exported struct literals with
// many zero-value footguns.
type Option func(*Config)

// Default returns the Config produced by applying every passed Option on
// top of the conservative zero-value-plus-growth-defaults baseline.
func Default(opts ...Option) Config {
	c := Config{
		CheckType:       true,
		CheckLayout:     true,
		CheckSize:       true,
		CheckMonotonic:  true,
		InitialSize:     DefaultInitialSize,
		MaxGrowSize:     DefaultMaxGrowSize,
		MaxMapSize:      DefaultMaxMapSize,
		InitialDataSize: DefaultInitialDataSize,
		MaxDataGrowSize: DefaultMaxDataGrowSize,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func WithReadOnly(v bool) Option { return func(c *Config) { c.ReadOnly = v } }

func WithCheckType(v bool) Option { return func(c *Config) { c.CheckType = v } }

func WithCheckLayout(v bool) Option { return func(c *Config) { c.CheckLayout = v } }

func WithCheckSize(v bool) Option { return func(c *Config) { c.CheckSize = v } }

func WithCheckMonotonic(v bool) Option { return func(c *Config) { c.CheckMonotonic = v } }

func WithLargeData(v bool) Option { return func(c *Config) { c.LargeData = v } }

func WithGapData(b []byte) Option { return func(c *Config) { c.GapData = b } }

func WithInitialSize(n int64) Option { return func(c *Config) { c.InitialSize = n } }

func WithMaxGrowSize(n int64) Option { return func(c *Config) { c.MaxGrowSize = n } }

func WithMaxMapSize(n int64) Option { return func(c *Config) { c.MaxMapSize = n } }

func WithInitialDataSize(n int64) Option { return func(c *Config) { c.InitialDataSize = n } }

func WithMaxDataGrowSize(n int64) Option { return func(c *Config) { c.MaxDataGrowSize = n } }

func WithPeriodicFlush(n int64) Option { return func(c *Config) { c.PeriodicFlush = n } }
