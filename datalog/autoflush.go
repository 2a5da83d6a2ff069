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
	"sync"
	"time"

	"github.com/A1phyte/allwpilib/internal/logx"
)

// autoFlush is an opt-in background ticker that calls Flush periodically,
// supplementing the count-based periodicFlush with a time-based one. It
// never starts unless requested, and it takes the same lock the
// synchronous append path would need, so it never races a foreground
// Append/Flush/Close.
type autoFlush struct {
	mu     sync.Mutex
	ticker *time.Ticker
	stop   chan struct{}
	done   chan struct{}
}

// StartAutoFlush begins calling Flush every period until StopAutoFlush is
// called or the log is closed. Calling it twice without an intervening
// Stop is a no-op.
func (r *RawLog) StartAutoFlush(period time.Duration) {
	r.afMu.Lock()
	defer r.afMu.Unlock()
	if r.af != nil {
		return
	}

	af := &autoFlush{
		ticker: time.NewTicker(period),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	r.af = af

	go func() {
		defer close(af.done)
		for {
			select {
			case <-af.stop:
				return
			case <-af.ticker.C:
				r.afMu.Lock()
				if err := r.Flush(); err != nil {
					logx.Debug("datalog: periodic auto-flush failed: %v", err)
				}
				r.afMu.Unlock()
			}
		}
	}()
}

// StopAutoFlush stops the background flush goroutine started by
// StartAutoFlush, waiting for it to exit. It is a no-op if auto-flush was
// never started.
func (r *RawLog) StopAutoFlush() {
	r.afMu.Lock()
	af := r.af
	r.af = nil
	r.afMu.Unlock()

	if af == nil {
		return
	}
	af.ticker.Stop()
	close(af.stop)
	<-af.done
}
