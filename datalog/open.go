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

import (
	"github.com/A1phyte/allwpilib/config"
	"github.com/A1phyte/allwpilib/internal/slab"
)

// Open either parses and validates a reused header, or stamps a fresh
// one from the request, then primes the mapping and recovers
// lastTimestamp.
func Open(filename, dataType, dataLayout string, recordSize uint32, disposition config.Disposition, cfg config.Config) (*RawLog, error) {
	timeSlab, err := slab.Open(filename, disposition, cfg.ReadOnly, HeaderSize, HeaderSize, cfg.MaxMapSize)
	if err != nil {
		return nil, newErr(IoError, "open time file", err)
	}

	reused := disposition == config.OpenExisting ||
		(disposition == config.OpenAlways && timeSlab.InitialFileSize() > 0)

	var header LogHeader
	if reused {
		buf := timeSlab.Read(0, HeaderSize)
		if buf == nil {
			_ = timeSlab.Close()
			return nil, newErr(WrongFormat, "cannot read header region", nil)
		}
		header, err = decodeHeader(buf)
		if err != nil {
			_ = timeSlab.Close()
			return nil, err
		}
		if verr := validateHeader(header, dataType, dataLayout, recordSize, cfg); verr != nil {
			_ = timeSlab.Close()
			return nil, verr
		}
	} else {
		fixedSize := recordSize != 0
		rs := recordSize
		if !fixedSize {
			if cfg.LargeData {
				rs = largePointerRecordSize
			} else {
				rs = smallPointerRecordSize
			}
		}
		header = LogHeader{
			DataType:     dataType,
			DataLayout:   dataLayout,
			RecordSize:   rs,
			FixedSize:    fixedSize,
			GapData:      cfg.GapData,
			TimeWritePos: HeaderSize,
		}
	}

	timeSlab.ConfigureGrowth(cfg.InitialSize*int64(header.RecordSize), cfg.MaxGrowSize*int64(header.RecordSize))
	timeSlab.SetWritePos(int64(header.TimeWritePos))

	r := &RawLog{
		filename:       filename,
		time:           timeSlab,
		header:         header,
		checkMonotonic: cfg.CheckMonotonic,
		readOnly:       cfg.ReadOnly,
		periodicFlush:  cfg.PeriodicFlush,
	}

	if !header.FixedSize {
		dataSlab, err := slab.Open(filename+".data", disposition, cfg.ReadOnly, cfg.InitialDataSize, cfg.MaxDataGrowSize, 0)
		if err != nil {
			_ = timeSlab.Close()
			return nil, newErr(IoError, "open data file", err)
		}
		dataSlab.SetWritePos(int64(header.DataWritePos))
		r.data = dataSlab
	}

	if size := r.Size(); size > 0 {
		ts, _, ok := r.readRaw(size - 1)
		if ok {
			r.lastTimestamp = ts
			r.haveLast = true
		}
	}

	return r, nil
}

func validateHeader(h LogHeader, dataType, dataLayout string, recordSize uint32, cfg config.Config) error {
	if cfg.CheckType && h.DataType != dataType {
		return newErr(WrongFormat, "dataType mismatch: got "+h.DataType+", want "+dataType, nil)
	}
	if cfg.CheckLayout && h.DataLayout != dataLayout {
		return newErr(WrongFormat, "dataLayout mismatch: got "+h.DataLayout+", want "+dataLayout, nil)
	}
	if cfg.CheckSize && recordSize != 0 && h.RecordSize != recordSize {
		return newErr(WrongFormat, "recordSize mismatch", nil)
	}
	if h.RecordSize < 8 {
		return newErr(WrongFormat, "recordSize below minimum of 8", nil)
	}
	if !h.FixedSize && h.RecordSize != smallPointerRecordSize && h.RecordSize != largePointerRecordSize {
		return newErr(WrongFormat, "variable-size recordSize must be 16 or 24", nil)
	}
	return nil
}
