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
	"path/filepath"
	"testing"

	"github.com/A1phyte/allwpilib/config"
	"github.com/A1phyte/allwpilib/datalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64AppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "int64")
	log, err := datalog.Open(path, "int64", "", 16, config.CreateNew, config.Default())
	require.NoError(t, err)
	defer log.Close()

	c := NewInt64(log)
	require.NoError(t, c.Append(1, -42))
	require.NoError(t, c.Append(2, 9000000000))

	ts, v, ok := c.Read(0)
	require.True(t, ok)
	assert.EqualValues(t, 1, ts)
	assert.EqualValues(t, -42, v)

	ts, v, ok = c.Read(1)
	require.True(t, ok)
	assert.EqualValues(t, 2, ts)
	assert.EqualValues(t, 9000000000, v)
}

func TestBooleanAppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bool")
	log, err := datalog.Open(path, "boolean", "", 9, config.CreateNew, config.Default())
	require.NoError(t, err)
	defer log.Close()

	c := NewBoolean(log)
	require.NoError(t, c.Append(1, true))
	require.NoError(t, c.Append(2, false))

	_, v, ok := c.Read(0)
	require.True(t, ok)
	assert.True(t, v)

	_, v, ok = c.Read(1)
	require.True(t, ok)
	assert.False(t, v)
}

func TestStringAppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "string")
	log, err := datalog.Open(path, "string", "", 0, config.CreateNew, config.Default())
	require.NoError(t, err)
	defer log.Close()

	c := NewString(log)
	require.NoError(t, c.Append(1, "hello"))
	require.NoError(t, c.Append(2, ""))

	_, v, ok := c.Read(0)
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	_, v, ok = c.Read(1)
	require.True(t, ok)
	assert.Equal(t, "", v)
}
