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

// Package datalog implements the append-only, time-indexed binary log: the
// RawLog engine, composed from two FileSlabs (one for timestamps, one for
// optional variable-size payload data).
package datalog

import (
	"sync"

	"github.com/A1phyte/allwpilib/internal/logx"
	"github.com/A1phyte/allwpilib/internal/slab"
)

// smallPointerRecordSize and largePointerRecordSize are the two legal
// variable-size pointer record widths (recordSize ∈ {16, 24}).
const (
	smallPointerRecordSize uint32 = 16
	largePointerRecordSize uint32 = 24
)

// RawLog is a single-threaded-owner append/read/find engine over one
// on-disk log. It exclusively owns its two FileSlabs; only the variable-
// size shape uses the data slab.
type RawLog struct {
	filename string

	time *slab.FileSlab
	data *slab.FileSlab // nil when header.FixedSize is true

	header LogHeader

	lastTimestamp  uint64
	haveLast       bool
	checkMonotonic bool
	readOnly       bool

	periodicFlush      int64
	periodicFlushCount int64

	// inCriticalSection guards the Start/Finish append split: no other
	// mutation may run between the two calls because a remap could
	// invalidate the returned write view.
	inCriticalSection bool
	pendingTS         uint64
	pendingPayloadLen int

	afMu sync.Mutex
	af   *autoFlush
}

// Size returns the number of records currently in the log.
func (r *RawLog) Size() int64 {
	if r.header.RecordSize == 0 {
		return 0
	}
	return (r.time.WritePos() - HeaderSize) / int64(r.header.RecordSize)
}

// LastTimestamp returns the timestamp of the most recently appended
// record, or 0 if the log is empty.
func (r *RawLog) LastTimestamp() uint64 { return r.lastTimestamp }

// DataType, DataLayout, RecordSize, FixedSize expose the header fields a
// typed codec needs to validate itself against.
func (r *RawLog) DataType() string    { return r.header.DataType }
func (r *RawLog) DataLayout() string  { return r.header.DataLayout }
func (r *RawLog) RecordSize() uint32  { return r.header.RecordSize }
func (r *RawLog) IsFixedSize() bool   { return r.header.FixedSize }
func (r *RawLog) IsReadOnly() bool    { return r.readOnly }

func (r *RawLog) pointerWidthIs64() bool {
	return r.header.RecordSize == largePointerRecordSize
}

// Flush writes the header to offset 0 of the time slab and flushes both
// mapped regions if writable. It is idempotent and a no-op on a read-only
// log.
func (r *RawLog) Flush() error {
	if r.readOnly {
		return nil
	}

	r.header.TimeWritePos = uint64(r.time.WritePos())
	if r.data != nil {
		r.header.DataWritePos = uint64(r.data.WritePos())
	}

	buf, err := encodeHeader(r.header)
	if err != nil {
		return err
	}
	if err := r.time.Write(0, buf); err != nil {
		return newErr(IoError, "write header", err)
	}
	if err := r.time.Flush(); err != nil {
		logx.Debug("datalog: flush time slab: %v", err)
	}
	if r.data != nil {
		if err := r.data.Flush(); err != nil {
			logx.Debug("datalog: flush data slab: %v", err)
		}
	}
	return nil
}

// Close flushes the header, then closes both slabs (truncating each to
// its write cursor), releasing the fd on every path including partial
// failures.
func (r *RawLog) Close() error {
	r.StopAutoFlush()

	var firstErr error
	if err := r.Flush(); err != nil {
		firstErr = err
	}
	if err := r.time.Close(); err != nil && firstErr == nil {
		firstErr = newErr(IoError, "close time slab", err)
	}
	if r.data != nil {
		if err := r.data.Close(); err != nil && firstErr == nil {
			firstErr = newErr(IoError, "close data slab", err)
		}
	}
	return firstErr
}
