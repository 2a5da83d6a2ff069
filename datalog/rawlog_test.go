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
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/A1phyte/allwpilib/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func le64(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

// Fixed-size double log: open, append, close, reopen, and verify Find.
func TestFixedSizeDoubleLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s1")
	cfg := config.Default()

	log, err := Open(path, "double", "", 16, config.CreateNew, cfg)
	require.NoError(t, err)

	require.NoError(t, log.AppendRaw(100, le64(1.0)))
	require.NoError(t, log.AppendRaw(200, le64(2.0)))
	require.NoError(t, log.AppendRaw(300, le64(4.0)))
	require.NoError(t, log.Close())

	log, err = Open(path, "double", "", 16, config.OpenExisting, cfg)
	require.NoError(t, err)
	defer log.Close()

	assert.EqualValues(t, 3, log.Size())

	ts, payload := log.ReadRaw(1)
	assert.EqualValues(t, 200, ts)
	assert.Equal(t, le64(2.0), payload)

	assert.EqualValues(t, 2, log.Find(250))
	assert.EqualValues(t, 0, log.Find(50))
	assert.EqualValues(t, 3, log.Find(400))
}

// Variable-size log with small (16-byte) pointer records and no gap data.
func TestVariableSizeSmallPointer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s2")
	cfg := config.Default()

	log, err := Open(path, "string", "", 0, config.CreateNew, cfg)
	require.NoError(t, err)

	require.NoError(t, log.AppendRaw(10, []byte("a")))
	require.NoError(t, log.AppendRaw(20, []byte("bcd")))
	require.NoError(t, log.AppendRaw(30, []byte("")))
	require.NoError(t, log.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, HeaderSize+3*16, info.Size())

	data, err := os.ReadFile(path + ".data")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), data)
}

// Variable-size log with a configured gap-data separator.
func TestVariableSizeGapData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s3")
	cfg := config.Default(config.WithGapData([]byte("\n")))

	log, err := Open(path, "string", "", 0, config.CreateNew, cfg)
	require.NoError(t, err)

	require.NoError(t, log.AppendRaw(10, []byte("a")))
	require.NoError(t, log.AppendRaw(20, []byte("bcd")))
	require.NoError(t, log.AppendRaw(30, []byte("")))
	// Every blob, including the empty one, is followed by gapData, and
	// dataWritePos advances past it.
	assert.EqualValues(t, 7, log.data.WritePos())
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path + ".data")
	require.NoError(t, err)
	assert.Equal(t, []byte("a\nbcd\n\n"), data)
}

// Appending a non-increasing timestamp is rejected and leaves the log unchanged.
func TestMonotonicViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s4")
	log, err := Open(path, "double", "", 16, config.CreateNew, config.Default())
	require.NoError(t, err)
	defer log.Close()

	require.NoError(t, log.AppendRaw(100, le64(1.0)))

	err = log.AppendRaw(100, le64(2.0))
	require.Error(t, err)
	var derr *Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, MonotonicViolation, derr.Kind)

	assert.EqualValues(t, 1, log.Size())
	ts, payload := log.ReadRaw(0)
	assert.EqualValues(t, 100, ts)
	assert.Equal(t, le64(1.0), payload)
}

// Reopening with a mismatched dataType is rejected unless checking is disabled.
func TestHeaderMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s5")
	log, err := Open(path, "A", "", 16, config.CreateNew, config.Default())
	require.NoError(t, err)
	require.NoError(t, log.Close())

	_, err = Open(path, "B", "", 16, config.OpenExisting, config.Default(config.WithCheckType(true)))
	require.Error(t, err)
	var derr *Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, WrongFormat, derr.Kind)

	log2, err := Open(path, "B", "", 16, config.OpenExisting, config.Default(config.WithCheckType(false)))
	require.NoError(t, err)
	require.NoError(t, log2.Close())
}

func TestGrowthBeyondInitialSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growth")
	cfg := config.Default(config.WithInitialSize(4), config.WithMaxGrowSize(8))

	log, err := Open(path, "double", "", 16, config.CreateNew, cfg)
	require.NoError(t, err)
	defer log.Close()

	for i := 0; i < 50; i++ {
		require.NoError(t, log.AppendRaw(uint64(i+1), le64(float64(i))))
	}

	assert.EqualValues(t, 50, log.Size())
	for i := 0; i < 50; i++ {
		ts, payload := log.ReadRaw(int64(i))
		assert.EqualValues(t, i+1, ts)
		assert.Equal(t, le64(float64(i)), payload)
	}
}

func TestReadPastEndReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oob")
	log, err := Open(path, "double", "", 16, config.CreateNew, config.Default())
	require.NoError(t, err)
	defer log.Close()

	require.NoError(t, log.AppendRaw(1, le64(1.0)))
	ts, payload := log.ReadRaw(5)
	assert.EqualValues(t, 0, ts)
	assert.Nil(t, payload)
}

func TestReadOnlyLogRejectsAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro")
	log, err := Open(path, "double", "", 16, config.CreateNew, config.Default())
	require.NoError(t, err)
	require.NoError(t, log.AppendRaw(1, le64(1.0)))
	require.NoError(t, log.Close())

	ro, err := Open(path, "double", "", 16, config.OpenExisting, config.Default(config.WithReadOnly(true)))
	require.NoError(t, err)
	defer ro.Close()

	err = ro.AppendRaw(2, le64(2.0))
	require.Error(t, err)
	var derr *Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, ReadOnly, derr.Kind)
}
