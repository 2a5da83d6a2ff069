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

// ReadRaw reads the n-th record. A borrowed slice from the current
// mapping is returned for the payload; it is valid only until the next
// append that triggers a remap. Reading past the end of the log returns
// (0, nil): an out-of-range read is a successful empty result, not an
// error.
func (r *RawLog) ReadRaw(n int64) (uint64, []byte) {
	ts, payload, ok := r.readRaw(n)
	if !ok {
		return 0, nil
	}
	return ts, payload
}

func (r *RawLog) readRaw(n int64) (ts uint64, payload []byte, ok bool) {
	if n < 0 || n >= r.Size() {
		return 0, nil, false
	}

	recSize := int(r.header.RecordSize)
	fileOffset := int64(HeaderSize) + n*int64(recSize)
	rec := r.time.Read(fileOffset, recSize)
	if rec == nil {
		return 0, nil, false
	}

	ts = getTimestamp(rec)

	if r.header.FixedSize {
		return ts, rec[8:recSize], true
	}

	offset, length := getPointer(rec, r.pointerWidthIs64())
	if length == 0 {
		// FileSlab.Read treats a zero length as "nothing to map" and
		// returns nil; that would be indistinguishable from an
		// out-of-range read here, so a present-but-empty record gets
		// its own non-nil empty slice.
		return ts, []byte{}, true
	}
	blob := r.data.Read(int64(offset), int(length))
	return ts, blob, true
}
