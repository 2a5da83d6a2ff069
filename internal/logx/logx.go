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

// Package logx is the datalog module's ambient logger: a thin, level-gated
// wrapper around zap so the rest of the module never touches the zap API
// directly.
package logx

import (
	"sync"

	"go.uber.org/zap"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
)

var (
	once   sync.Once
	logger *zap.SugaredLogger
	level  = INFO
)

func init() {
	once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l.Sugar()
	})
}

// SetLevel adjusts the minimum level that reaches zap. Calls below the
// current level are skipped before formatting, keeping the append hot path
// free of allocation when logging is quiet.
func SetLevel(l Level) {
	level = l
}

func Debug(format string, args ...interface{}) {
	if level <= DEBUG {
		logger.Debugf(format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if level <= INFO {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if level <= WARNING {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if level <= ERROR {
		logger.Errorf(format, args...)
	}
}

// Sync flushes any buffered log entries. Callers should invoke this on
// process shutdown; errors are intentionally discarded since most Sync
// failures on stderr/stdout (ENOTTY) are harmless.
func Sync() {
	_ = logger.Sync()
}
