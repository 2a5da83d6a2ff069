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

// Find returns the index of the first record with timestamp >= ts, or
// Size() if none. This binary search assumes the log is sorted by
// timestamp; if checkMonotonic was disabled when the log was written,
// the result is undefined and callers that turn monotonic checking off
// are responsible for keeping the log sorted themselves.
func (r *RawLog) Find(ts uint64) int64 {
	return r.FindRange(ts, 0, r.Size())
}

// FindRange is Find restricted to the half-open index range [first, last).
func (r *RawLog) FindRange(ts uint64, first, last int64) int64 {
	lo, hi := first, last
	for lo < hi {
		mid := lo + (hi-lo)/2
		recTS, _ := r.ReadRaw(mid)
		if recTS < ts {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
