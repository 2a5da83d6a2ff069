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

// Package multi merges the timestamp streams of several closed logs into
// one globally-ordered sequence, e.g. to replay a set of per-process logs
// in wall-clock order.
package multi

import (
	"math"

	gl "github.com/bboreham/go-loser"

	"github.com/A1phyte/allwpilib/datalog"
)

// Entry is one record surfaced by MergeTimestamps, tagged with which
// source log and record index it came from.
type Entry struct {
	Timestamp uint64
	Source    int
	Record    int64
}

// logCursor walks one RawLog's records in timestamp order. It satisfies
// go-loser's Sequence[uint64] interface (At/Next), by analogy with the
// list cursor the single-process log merge drives its loser tree with.
type logCursor struct {
	log    *datalog.RawLog
	source int
	next   int64
	cur    uint64
}

func newLogCursor(source int, log *datalog.RawLog) *logCursor {
	return &logCursor{log: log, source: source}
}

func (c *logCursor) At() uint64 { return c.cur }

func (c *logCursor) Next() bool {
	ts, payload := c.log.ReadRaw(c.next)
	if payload == nil {
		c.cur = 0
		return false
	}
	c.cur = ts
	c.next++
	return true
}

// record returns the (source, record-index) pair for the value c.At()
// last produced, i.e. the record one position behind c.next.
func (c *logCursor) record() (source int, index int64) { return c.source, c.next - 1 }

// MergeTimestamps returns every record across logs in non-decreasing
// timestamp order, tagged with its originating source index. Logs are
// read, not mutated; callers own opening and closing them.
func MergeTimestamps(logs []*datalog.RawLog) []Entry {
	cursors := make([]*logCursor, len(logs))
	for i, l := range logs {
		cursors[i] = newLogCursor(i, l)
	}

	tree := gl.New[uint64](cursors, math.MaxUint64)
	defer tree.Close()

	var out []Entry
	for tree.Next() {
		winner := tree.Winner()
		source, record := winner.record()
		out = append(out, Entry{Timestamp: tree.At(), Source: source, Record: record})
	}
	return out
}
