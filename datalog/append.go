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

package datalog

// AppendRaw appends one (timestamp, payload) record. On any failure,
// time.writePos, data.writePos, and lastTimestamp are left unchanged.
func (r *RawLog) AppendRaw(ts uint64, payload []byte) error {
	dst, err := r.Start(ts, len(payload))
	if err != nil {
		return err
	}
	copy(dst, payload)
	r.Finish()
	return nil
}

// Start reserves space for one record and returns a writable view the
// caller fills in directly — the mechanism typed codecs use to format a
// record without an intermediate allocation. Between Start and Finish, no
// other append, read, or flush may run: the returned view is only valid
// until Finish, since a later remap could move it.
func (r *RawLog) Start(ts uint64, payloadLen int) ([]byte, error) {
	if r.checkMonotonic && r.haveLast && ts <= r.lastTimestamp {
		return nil, newErr(MonotonicViolation, "timestamp does not exceed lastTimestamp", nil)
	}
	if r.readOnly {
		return nil, newErr(ReadOnly, "append on read-only log", nil)
	}
	if r.inCriticalSection {
		return nil, newErr(IoError, "append already in progress", nil)
	}

	recSize := int(r.header.RecordSize)
	recPos := r.time.WritePos()
	rec, err := r.time.Mutable(recPos, recSize)
	if err != nil {
		return nil, newErr(IoError, "reserve time record", err)
	}
	putTimestamp(rec, ts)

	var dst []byte
	if r.header.FixedSize {
		if payloadLen != recSize-8 {
			return nil, newErr(WrongFormat, "payload length does not match fixed record size", nil)
		}
		dst = rec[8:recSize]
	} else {
		dataPos := r.data.WritePos()
		putPointer(rec, r.pointerWidthIs64(), uint64(dataPos), uint64(payloadLen))

		gap := len(r.header.GapData)
		blob, err := r.data.Mutable(dataPos, payloadLen+gap)
		if err != nil {
			return nil, newErr(IoError, "reserve data blob", err)
		}
		if gap > 0 {
			copy(blob[payloadLen:], r.header.GapData)
		}
		dst = blob[:payloadLen]
	}

	r.inCriticalSection = true
	r.pendingTS = ts
	r.pendingPayloadLen = payloadLen
	return dst, nil
}

// Finish ends the critical section opened by Start, advancing the write
// cursors and lastTimestamp, and running the periodic-flush count.
func (r *RawLog) Finish() {
	if !r.inCriticalSection {
		return
	}

	recSize := int64(r.header.RecordSize)
	r.time.SetWritePos(r.time.WritePos() + recSize)

	if !r.header.FixedSize {
		gap := int64(len(r.header.GapData))
		r.data.SetWritePos(r.data.WritePos() + int64(r.pendingPayloadLen) + gap)
	}

	r.lastTimestamp = r.pendingTS
	r.haveLast = true
	r.inCriticalSection = false

	if r.periodicFlush > 0 {
		r.periodicFlushCount++
		if r.periodicFlushCount >= r.periodicFlush {
			if err := r.Flush(); err != nil {
				// Flush failures don't unwind the append; they surface on
				// the next explicit Flush/Close.
				_ = err
			}
			r.periodicFlushCount = 0
		}
	}
}
