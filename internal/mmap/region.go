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

// Package mmap owns a single memory-mapped view of one open file. It is the
// leaf of the datalog dependency graph: FileSlab composes it, and nothing
// below it touches the filesystem.
package mmap

import (
	"errors"
	"os"

	"github.com/A1phyte/allwpilib/internal/logx"
	"golang.org/x/sys/unix"
)

// ErrReadOnly is the value Data panics with when the region was mapped
// read-only.
var ErrReadOnly = errors.New("mmap: region is read-only")

// mapper is the narrow syscall surface a Region needs. Factored out of
// Region the same way the pack's in-memory slab allocator separates the
// mmap syscalls from its block bookkeeping, so the OS calls can be swapped
// for a test double.
type mapper interface {
	mmap(fd int, offset int64, length int, prot, flags int) ([]byte, error)
	munmap(b []byte) error
	msync(b []byte) error
	dup(fd int) (int, error)
	close(fd int) error
}

type unixMapper struct{}

func (unixMapper) mmap(fd int, offset int64, length int, prot, flags int) ([]byte, error) {
	return unix.Mmap(fd, offset, length, prot, flags)
}

func (unixMapper) munmap(b []byte) error { return unix.Munmap(b) }

func (unixMapper) msync(b []byte) error { return unix.Msync(b, unix.MS_ASYNC) }

func (unixMapper) dup(fd int) (int, error) { return unix.Dup(fd) }

func (unixMapper) close(fd int) error { return unix.Close(fd) }

var defaultMapper mapper = unixMapper{}

// Region is one mapping of [offset, offset+length) of a file, in either
// read-only or read-write shared mode.
//
// Some platforms invalidate a mapping when every file descriptor open on
// the underlying file is closed while the mapping is alive. To make the
// mapping's lifetime independent of the caller's own fd, Region dup()s the
// descriptor at construction time and holds the duplicate until Unmap.
type Region struct {
	m        mapper
	data     []byte
	dupFD    int
	readOnly bool
	unmapped bool
}

// New maps length bytes of f starting at offset. readOnly selects
// PROT_READ / MAP_SHARED vs PROT_READ|PROT_WRITE / MAP_SHARED.
func New(f *os.File, offset int64, length int, readOnly bool) (*Region, error) {
	return newWithMapper(defaultMapper, f, offset, length, readOnly)
}

func newWithMapper(m mapper, f *os.File, offset int64, length int, readOnly bool) (*Region, error) {
	dupFD, err := m.dup(int(f.Fd()))
	if err != nil {
		return nil, err
	}

	prot := unix.PROT_READ
	if !readOnly {
		prot |= unix.PROT_WRITE
	}

	data, err := m.mmap(dupFD, offset, length, prot, unix.MAP_SHARED)
	if err != nil {
		_ = m.close(dupFD)
		return nil, err
	}

	return &Region{m: m, data: data, dupFD: dupFD, readOnly: readOnly}, nil
}

// Data returns the writable base slice. It panics if the region is
// read-only: writing through a const view is a programming error, not a
// recoverable condition.
func (r *Region) Data() []byte {
	if r.readOnly {
		panic(ErrReadOnly)
	}
	return r.data
}

// ConstData returns a read-only view, valid regardless of mapping mode.
func (r *Region) ConstData() []byte {
	return r.data
}

// Size returns the mapped length.
func (r *Region) Size() int {
	return len(r.data)
}

// Flush asynchronously syncs dirty pages. It is a no-op for read-only
// regions and for regions that have already been unmapped.
func (r *Region) Flush() error {
	if r.readOnly || r.unmapped {
		return nil
	}
	return r.m.msync(r.data)
}

// Unmap releases the mapping and the duplicated file descriptor. It is
// idempotent.
func (r *Region) Unmap() error {
	if r.unmapped {
		return nil
	}
	r.unmapped = true

	var err error
	if len(r.data) > 0 {
		err = r.m.munmap(r.data)
	}
	if cerr := r.m.close(r.dupFD); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		logx.Debug("mmap: unmap failed: %v", err)
	}
	r.data = nil
	return err
}
