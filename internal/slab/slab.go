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

// Package slab manages one growable file together with a single active
// memory mapping covering it. It is the file-backed analogue of the pack's
// in-memory slab allocator (poolx/slab.go): same vocabulary, but here the
// "chunk" is the whole file and growth is driven by write position rather
// than a freelist of fixed blocks.
package slab

import (
	"fmt"
	"os"

	"github.com/A1phyte/allwpilib/config"
	"github.com/A1phyte/allwpilib/internal/logx"
	"github.com/A1phyte/allwpilib/internal/mmap"
)

// FileSlab owns one file descriptor and its current mapping. The mapping
// always starts at file offset 0; there is no sliding window yet, but the
// growth accounting below is structured so one could be added later
// without changing callers.
type FileSlab struct {
	f        *os.File
	readOnly bool

	writePos int64
	fileSize int64

	mapGrowSize int64
	maxGrowSize int64
	maxMapSize  int64
	mapOffset   int64

	// initialFileSize is the file's size as found at Open, before any
	// remap-driven growth. RawLog uses it to decide whether a file is
	// being reused (and thus carries a header to parse).
	initialFileSize int64

	region *mmap.Region
}

// Open opens or creates path per disposition and primes the initial
// mapping. initialSize and maxGrowSize are both in bytes.
func Open(path string, disposition config.Disposition, readOnly bool, initialSize, maxGrowSize, maxMapSize int64) (*FileSlab, error) {
	flag := os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}

	switch disposition {
	case config.CreateNew:
		flag |= os.O_CREATE | os.O_EXCL
	case config.CreateAlways:
		flag |= os.O_CREATE | os.O_TRUNC
	case config.OpenAlways:
		flag |= os.O_CREATE
	case config.OpenExisting:
		// no extra flags: os.Open fails if absent
	}

	f, err := os.OpenFile(path, flag, 0o600)
	if err != nil {
		return nil, fmt.Errorf("slab: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("slab: stat %s: %w", path, err)
	}

	s := &FileSlab{
		f:               f,
		readOnly:        readOnly,
		fileSize:        info.Size(),
		initialFileSize: info.Size(),
		mapGrowSize:     initialSize,
		maxGrowSize:     maxGrowSize,
		maxMapSize:      maxMapSize,
	}

	mapSize := s.fileSize
	if mapSize == 0 {
		mapSize = initialSize
	}
	if err := s.remap(mapSize); err != nil {
		_ = f.Close()
		return nil, err
	}

	return s, nil
}

// FileSize returns the current on-disk size of the slab's file.
func (s *FileSlab) FileSize() int64 { return s.fileSize }

// InitialFileSize returns the file's size as found at Open, before any
// growth triggered by writes.
func (s *FileSlab) InitialFileSize() int64 { return s.initialFileSize }

// ConfigureGrowth overrides the per-grow-step and growth-ceiling sizes.
// RawLog calls this once the record size is known, since the byte-wise
// growth step depends on it.
func (s *FileSlab) ConfigureGrowth(growSize, maxGrowSize int64) {
	s.mapGrowSize = growSize
	s.maxGrowSize = maxGrowSize
}

// ReadOnly reports whether the slab rejects mutation.
func (s *FileSlab) ReadOnly() bool { return s.readOnly }

// WritePos returns the slab's current write cursor.
func (s *FileSlab) WritePos() int64 { return s.writePos }

// SetWritePos advances the write cursor. RawLog is the sole caller: it
// knows the record/blob boundaries a slab does not.
func (s *FileSlab) SetWritePos(pos int64) { s.writePos = pos }

// remap truncates the file (never shrinking) to at least newSize, unmaps
// the old region if any, and maps the whole (possibly larger) file.
func (s *FileSlab) remap(newSize int64) error {
	if newSize < s.fileSize {
		newSize = s.fileSize
	}
	if newSize > s.fileSize {
		if err := s.f.Truncate(newSize); err != nil {
			return fmt.Errorf("slab: truncate to %d: %w", newSize, err)
		}
		s.fileSize = newSize
	}

	if s.region != nil {
		if err := s.region.Unmap(); err != nil {
			logx.Debug("slab: unmap during remap failed: %v", err)
		}
	}

	r, err := mmap.New(s.f, s.mapOffset, int(s.fileSize-s.mapOffset), s.readOnly)
	if err != nil {
		return fmt.Errorf("slab: mmap: %w", err)
	}
	s.region = r
	return nil
}

// GetMappedOffset returns the local offset of pos within the current
// mapping, growing and remapping the file if [pos, pos+length) does not
// fit and the slab is read-write. Read-only slabs that cannot satisfy the
// request return an error without attempting growth.
func (s *FileSlab) GetMappedOffset(pos int64, length int) (int64, error) {
	local := pos - s.mapOffset
	if local >= 0 && local+int64(length) <= int64(s.region.Size()) {
		return local, nil
	}

	if s.readOnly {
		return 0, fmt.Errorf("slab: read of [%d,%d) outside mapped range and slab is read-only", pos, pos+int64(length))
	}

	needed := pos + int64(length)
	growStep := s.mapGrowSize
	if growStep <= 0 {
		growStep = 1
	}
	newSize := ((needed + growStep - 1) / growStep) * growStep

	if err := s.remap(newSize); err != nil {
		return 0, err
	}

	s.mapGrowSize *= 2
	if s.maxGrowSize > 0 && s.mapGrowSize > s.maxGrowSize {
		s.mapGrowSize = s.maxGrowSize
	}

	return pos - s.mapOffset, nil
}

// Mutable returns a writable view of [pos, pos+length), growing the file
// and remapping first if needed. Typed codecs use this to format a record
// in place instead of building a temporary buffer and copying it in.
func (s *FileSlab) Mutable(pos int64, length int) ([]byte, error) {
	if s.readOnly {
		return nil, fmt.Errorf("slab: mutable view of read-only slab")
	}
	local, err := s.GetMappedOffset(pos, length)
	if err != nil {
		return nil, err
	}
	return s.region.Data()[local : local+int64(length)], nil
}

// Read returns a bounded view of [pos, pos+length) into the mapping. It
// returns an empty slice if the read cannot be satisfied (e.g. out of
// range on a read-only slab).
func (s *FileSlab) Read(pos int64, length int) []byte {
	if length <= 0 {
		return nil
	}
	local, err := s.GetMappedOffset(pos, length)
	if err != nil {
		return nil
	}
	return s.region.ConstData()[local : local+int64(length)]
}

// Write copies data into the mapping at pos, growing the file as needed.
func (s *FileSlab) Write(pos int64, data []byte) error {
	if s.readOnly {
		return fmt.Errorf("slab: write to read-only slab")
	}
	local, err := s.GetMappedOffset(pos, len(data))
	if err != nil {
		return err
	}
	copy(s.region.Data()[local:], data)
	return nil
}

// Flush syncs the mapped region. No-op for read-only slabs.
func (s *FileSlab) Flush() error {
	if s.region == nil {
		return nil
	}
	return s.region.Flush()
}

// Close unmaps the region and, for a read-write slab whose write cursor
// has moved, truncates the file to exactly WritePos so trailing
// pre-allocation is discarded, then closes the descriptor. Truncate
// failures are logged, not retried, and do not block fd release.
func (s *FileSlab) Close() error {
	var firstErr error
	if s.region != nil {
		if err := s.region.Unmap(); err != nil {
			firstErr = err
		}
	}

	if !s.readOnly && s.writePos != 0 {
		if err := s.f.Truncate(s.writePos); err != nil {
			logx.Error("slab: truncate on close failed: %v", err)
		}
	}

	if err := s.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
