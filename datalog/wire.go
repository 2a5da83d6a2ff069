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

import "encoding/binary"

// putPointer writes a (offset, length) pointer record at +8 of a raw
// record buffer, using 32-bit or 64-bit little-endian fields depending on
// whether the record is 16 or 24 bytes wide.
func putPointer(rec []byte, large bool, offset, length uint64) {
	if large {
		binary.LittleEndian.PutUint64(rec[8:16], offset)
		binary.LittleEndian.PutUint64(rec[16:24], length)
		return
	}
	binary.LittleEndian.PutUint32(rec[8:12], uint32(offset))
	binary.LittleEndian.PutUint32(rec[12:16], uint32(length))
}

// getPointer is the inverse of putPointer.
func getPointer(rec []byte, large bool) (offset, length uint64) {
	if large {
		return binary.LittleEndian.Uint64(rec[8:16]), binary.LittleEndian.Uint64(rec[16:24])
	}
	return uint64(binary.LittleEndian.Uint32(rec[8:12])), uint64(binary.LittleEndian.Uint32(rec[12:16]))
}

func putTimestamp(rec []byte, ts uint64) {
	binary.LittleEndian.PutUint64(rec[0:8], ts)
}

func getTimestamp(rec []byte) uint64 {
	return binary.LittleEndian.Uint64(rec[0:8])
}
