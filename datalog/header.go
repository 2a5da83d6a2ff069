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
	"bytes"
	"encoding/json"
)

// HeaderSize is the fixed, zero-padded region at the start of the time
// file that holds the JSON header.
const HeaderSize = 4096

// LogHeader is the on-disk header: round-trippable JSON padded with zero
// bytes to exactly HeaderSize, followed by exactly one '\n' right after
// the JSON object.
type LogHeader struct {
	DataType     string `json:"dataType"`
	DataLayout   string `json:"dataLayout"`
	DataWritePos uint64 `json:"dataWritePos"`
	FixedSize    bool   `json:"fixedSize"`
	GapData      []byte `json:"gapData"`
	RecordSize   uint32 `json:"recordSize"`
	TimeWritePos uint64 `json:"timeWritePos"`
}

// requiredHeaderFields lists every field a valid header must carry. A
// header JSON object missing any of these is WrongFormat, even if every
// present field has the right type.
var requiredHeaderFields = []string{
	"dataType", "dataLayout", "dataWritePos", "fixedSize", "gapData", "recordSize", "timeWritePos",
}

// encodeHeader renders h as JSON, terminates it with a single newline, and
// zero-pads to HeaderSize. It rejects headers whose JSON (plus newline)
// does not fit, rather than silently truncating them.
func encodeHeader(h LogHeader) ([]byte, error) {
	body, err := json.Marshal(h)
	if err != nil {
		return nil, newErr(WrongFormat, "marshal header", err)
	}
	body = append(body, '\n')
	if len(body) > HeaderSize {
		return nil, newErr(WrongFormat, "header exceeds 4096 bytes", nil)
	}

	buf := make([]byte, HeaderSize)
	copy(buf, body)
	return buf, nil
}

// decodeHeader parses the first HeaderSize bytes of a time file. Any
// missing field, non-object root, or field with the wrong JSON type
// yields WrongFormat.
func decodeHeader(buf []byte) (LogHeader, error) {
	var h LogHeader

	if len(buf) < HeaderSize {
		return h, newErr(WrongFormat, "header region shorter than 4096 bytes", nil)
	}

	end := bytes.IndexByte(buf, '\n')
	if end < 0 {
		return h, newErr(WrongFormat, "header has no terminating newline", nil)
	}
	body := buf[:end]

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return h, newErr(WrongFormat, "header is not a JSON object", err)
	}

	for _, field := range requiredHeaderFields {
		if _, ok := raw[field]; !ok {
			return h, newErr(WrongFormat, "header missing field "+field, nil)
		}
	}

	if err := json.Unmarshal(body, &h); err != nil {
		return h, newErr(WrongFormat, "header field has wrong type", err)
	}

	return h, nil
}
