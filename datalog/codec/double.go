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

// Package codec layers typed scalar/array/string-array encoders and
// decoders over datalog.RawLog. Codecs hold a non-owning reference: the
// RawLog outlives any codec view, and a codec never closes the log it
// wraps.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/A1phyte/allwpilib/datalog"
)

// Double is a fixed 8-byte IEEE-754 scalar record.
type Double struct {
	log *datalog.RawLog
}

// NewDouble wraps an already-open RawLog. Callers are responsible for
// opening it with recordSize=16 (8-byte timestamp + 8-byte payload).
func NewDouble(log *datalog.RawLog) *Double {
	return &Double{log: log}
}

// Append writes one (timestamp, value) record.
func (d *Double) Append(ts uint64, v float64) error {
	dst, err := d.log.Start(ts, 8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
	d.log.Finish()
	return nil
}

// Read returns the n-th record. ok is false past the end of the log.
func (d *Double) Read(n int64) (ts uint64, v float64, ok bool) {
	ts, payload := d.log.ReadRaw(n)
	if payload == nil {
		return 0, 0, false
	}
	return ts, math.Float64frombits(binary.LittleEndian.Uint64(payload)), true
}

// Size returns the number of records.
func (d *Double) Size() int64 { return d.log.Size() }
