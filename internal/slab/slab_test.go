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

package slab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/A1phyte/allwpilib/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreateAndWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.bin")
	s, err := Open(path, config.CreateNew, false, 4096, 1<<20, 0)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(0, []byte("hello")))
	assert.Equal(t, []byte("hello"), s.Read(0, 5))
}

func TestGrowthBeyondInitialMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.bin")
	s, err := Open(path, config.CreateNew, false, 16, 1<<20, 0)
	require.NoError(t, err)
	defer s.Close()

	pos := int64(1000)
	require.NoError(t, s.Write(pos, []byte("grown")))
	assert.Equal(t, []byte("grown"), s.Read(pos, 5))
	assert.GreaterOrEqual(t, s.FileSize(), pos+5)
}

func TestReadOnlySlabCannotGrow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.bin")
	s, err := Open(path, config.CreateNew, false, 4096, 1<<20, 0)
	require.NoError(t, err)
	require.NoError(t, s.Write(0, []byte("abc")))
	require.NoError(t, s.Close())

	ro, err := Open(path, config.OpenExisting, true, 4096, 1<<20, 0)
	require.NoError(t, err)
	defer ro.Close()

	assert.Equal(t, []byte("abc"), ro.Read(0, 3))
	assert.Nil(t, ro.Read(100000, 10))
	assert.Error(t, ro.Write(0, []byte("x")))
}

func TestCloseTruncatesToWritePos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.bin")
	s, err := Open(path, config.CreateNew, false, 4096, 1<<20, 0)
	require.NoError(t, err)
	require.NoError(t, s.Write(0, []byte("abc")))
	s.SetWritePos(3)
	require.NoError(t, s.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 3, info.Size())
}
