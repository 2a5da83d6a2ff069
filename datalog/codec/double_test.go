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

func TestDoubleAppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "double")
	log, err := datalog.Open(path, "double", "", 16, config.CreateNew, config.Default())
	require.NoError(t, err)
	defer log.Close()

	d := NewDouble(log)
	require.NoError(t, d.Append(10, 3.25))
	require.NoError(t, d.Append(20, -1.5))

	assert.EqualValues(t, 2, d.Size())

	ts, v, ok := d.Read(0)
	require.True(t, ok)
	assert.EqualValues(t, 10, ts)
	assert.Equal(t, 3.25, v)

	ts, v, ok = d.Read(1)
	require.True(t, ok)
	assert.EqualValues(t, 20, ts)
	assert.Equal(t, -1.5, v)

	_, _, ok = d.Read(2)
	assert.False(t, ok)
}
