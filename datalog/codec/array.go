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

package codec

import (
	"encoding/binary"
	"math"

	"github.com/A1phyte/allwpilib/datalog"
)

// BooleanArray records one byte per element, 0 or 1.
type BooleanArray struct {
	log *datalog.RawLog
}

func NewBooleanArray(log *datalog.RawLog) *BooleanArray { return &BooleanArray{log: log} }

// Append writes vals as one byte each.
func (b *BooleanArray) Append(ts uint64, vals []bool) error {
	dst, err := b.log.Start(ts, len(vals))
	if err != nil {
		return err
	}
	for i, v := range vals {
		if v {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
	b.log.Finish()
	return nil
}

// AppendInts is the integer-view counterpart of Append: any non-zero
// value is stored as 1.
func (b *BooleanArray) AppendInts(ts uint64, vals []int) error {
	dst, err := b.log.Start(ts, len(vals))
	if err != nil {
		return err
	}
	for i, v := range vals {
		if v != 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
	b.log.Finish()
	return nil
}

func (b *BooleanArray) Read(n int64) (ts uint64, vals []bool, ok bool) {
	ts, payload := b.log.ReadRaw(n)
	if payload == nil {
		return 0, nil, false
	}
	vals = make([]bool, len(payload))
	for i, v := range payload {
		vals[i] = v != 0
	}
	return ts, vals, true
}

func (b *BooleanArray) ReadInts(n int64) (ts uint64, vals []int, ok bool) {
	ts, payload := b.log.ReadRaw(n)
	if payload == nil {
		return 0, nil, false
	}
	vals = make([]int, len(payload))
	for i, v := range payload {
		if v != 0 {
			vals[i] = 1
		}
	}
	return ts, vals, true
}

func (b *BooleanArray) Size() int64 { return b.log.Size() }

// DoubleArray records N*8 bytes of IEEE-754 bit patterns.
type DoubleArray struct {
	log *datalog.RawLog
}

func NewDoubleArray(log *datalog.RawLog) *DoubleArray { return &DoubleArray{log: log} }

func (d *DoubleArray) Append(ts uint64, vals []float64) error {
	dst, err := d.log.Start(ts, len(vals)*8)
	if err != nil {
		return err
	}
	for i, v := range vals {
		binary.LittleEndian.PutUint64(dst[i*8:i*8+8], math.Float64bits(v))
	}
	d.log.Finish()
	return nil
}

func (d *DoubleArray) Read(n int64) (ts uint64, vals []float64, ok bool) {
	ts, payload := d.log.ReadRaw(n)
	if payload == nil {
		return 0, nil, false
	}
	count := len(payload) / 8
	vals = make([]float64, count)
	for i := 0; i < count; i++ {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8 : i*8+8]))
	}
	return ts, vals, true
}

func (d *DoubleArray) Size() int64 { return d.log.Size() }
