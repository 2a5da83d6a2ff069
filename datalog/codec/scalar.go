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
)

// Int64 is a fixed 8-byte scalar record, following the same pattern as
// Double.
type Int64 struct {
	log *datalog.RawLog
}

func NewInt64(log *datalog.RawLog) *Int64 { return &Int64{log: log} }

func (s *Int64) Append(ts uint64, v int64) error {
	dst, err := s.log.Start(ts, 8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(dst, uint64(v))
	s.log.Finish()
	return nil
}

func (s *Int64) Read(n int64) (ts uint64, v int64, ok bool) {
	ts, payload := s.log.ReadRaw(n)
	if payload == nil {
		return 0, 0, false
	}
	return ts, int64(binary.LittleEndian.Uint64(payload)), true
}

func (s *Int64) Size() int64 { return s.log.Size() }

// Boolean is a fixed single-byte scalar record: 0 or 1.
type Boolean struct {
	log *datalog.RawLog
}

func NewBoolean(log *datalog.RawLog) *Boolean { return &Boolean{log: log} }

func (s *Boolean) Append(ts uint64, v bool) error {
	dst, err := s.log.Start(ts, 1)
	if err != nil {
		return err
	}
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
	s.log.Finish()
	return nil
}

func (s *Boolean) Read(n int64) (ts uint64, v bool, ok bool) {
	ts, payload := s.log.ReadRaw(n)
	if payload == nil {
		return 0, false, false
	}
	return ts, payload[0] != 0, true
}

func (s *Boolean) Size() int64 { return s.log.Size() }

// String is a variable-size record: the raw UTF-8 bytes of the string,
// with no length prefix (the record's own length delimits it).
type String struct {
	log *datalog.RawLog
}

func NewString(log *datalog.RawLog) *String { return &String{log: log} }

func (s *String) Append(ts uint64, v string) error {
	dst, err := s.log.Start(ts, len(v))
	if err != nil {
		return err
	}
	copy(dst, v)
	s.log.Finish()
	return nil
}

func (s *String) Read(n int64) (ts uint64, v string, ok bool) {
	ts, payload := s.log.ReadRaw(n)
	if payload == nil {
		return 0, "", false
	}
	return ts, string(payload), true
}

func (s *String) Size() int64 { return s.log.Size() }
