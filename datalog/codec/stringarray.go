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

	"github.com/A1phyte/allwpilib/datalog"
	"github.com/chen3feng/stl4go"
)

const stringArrayOffsetWidth = 8 // 4-byte offset + 4-byte length, LE

// StringArray records a 4-byte element count followed by that many
// (offset, length) u32 pairs, followed by the concatenated, NUL-separated
// string bytes.
type StringArray struct {
	log *datalog.RawLog
}

func NewStringArray(log *datalog.RawLog) *StringArray { return &StringArray{log: log} }

func (s *StringArray) Append(ts uint64, vals []string) error {
	total := 0
	for _, v := range vals {
		total += len(v) + 1 // +1 for the NUL separator
	}
	header := 4 + len(vals)*stringArrayOffsetWidth
	dst, err := s.log.Start(ts, header+total)
	if err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(dst[0:4], uint32(len(vals)))
	pos := uint32(header)
	for i, v := range vals {
		off := 4 + i*stringArrayOffsetWidth
		binary.LittleEndian.PutUint32(dst[off:off+4], pos)
		binary.LittleEndian.PutUint32(dst[off+4:off+8], uint32(len(v)))
		copy(dst[pos:pos+uint32(len(v))], v)
		dst[pos+uint32(len(v))] = 0
		pos += uint32(len(v)) + 1
	}

	s.log.Finish()
	return nil
}

// Read decodes the n-th record into a plain []string.
func (s *StringArray) Read(n int64) (ts uint64, vals []string, ok bool) {
	ts, payload := s.log.ReadRaw(n)
	if payload == nil {
		return 0, nil, false
	}
	count := binary.LittleEndian.Uint32(payload[0:4])
	vals = make([]string, count)
	for i := uint32(0); i < count; i++ {
		off := 4 + i*stringArrayOffsetWidth
		strOff := binary.LittleEndian.Uint32(payload[off : off+4])
		strLen := binary.LittleEndian.Uint32(payload[off+4 : off+8])
		vals[i] = string(payload[strOff : strOff+strLen])
	}
	return ts, vals, true
}

// View decodes the n-th record lazily, without materializing every
// element up front. The view's IndexOf builds its lookup index on first
// use.
func (s *StringArray) View(n int64) (ts uint64, view *StringArrayView, ok bool) {
	ts, payload := s.log.ReadRaw(n)
	if payload == nil {
		return 0, nil, false
	}
	count := binary.LittleEndian.Uint32(payload[0:4])
	return ts, &StringArrayView{payload: payload, count: count}, true
}

func (s *StringArray) Size() int64 { return s.log.Size() }

// StringArrayView is a non-owning, lazily-decoded view over one
// StringArray record's raw bytes. Elements are decoded on demand; an
// ordered index is built lazily the first time IndexOf is called.
type StringArrayView struct {
	payload []byte
	count   uint32

	index *stl4go.SkipList[string, int]
}

// Len returns the element count without decoding any string.
func (v *StringArrayView) Len() int { return int(v.count) }

// At decodes and returns the i-th element.
func (v *StringArrayView) At(i int) string {
	off := uint32(4 + i*stringArrayOffsetWidth)
	strOff := binary.LittleEndian.Uint32(v.payload[off : off+4])
	strLen := binary.LittleEndian.Uint32(v.payload[off+4 : off+8])
	return string(v.payload[strOff : strOff+strLen])
}

// IndexOf returns the index of target, or -1 if absent. The first call
// builds an ordered skip-list index over every element so repeated
// lookups on the same view amortize to O(log n).
func (v *StringArrayView) IndexOf(target string) int {
	if v.index == nil {
		v.index = stl4go.NewSkipList[string, int]()
		for i := 0; i < int(v.count); i++ {
			v.index.Insert(v.At(i), i)
		}
	}
	if idx := v.index.Find(target); idx != nil {
		return *idx
	}
	return -1
}
