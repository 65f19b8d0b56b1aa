// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"

	"github.com/poiesic/notesum/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, n, err := core.IDMUS.Unmarshal(data)
	if err := checkDecoded(len(data), n, err); err != nil {
		return 0, err
	}
	return id, nil
}

// MarshalRunHeader serializes a RunHeader to bytes.
func MarshalRunHeader(h core.RunHeader) []byte {
	buf := make([]byte, core.RunHeaderMUS.Size(h))
	core.RunHeaderMUS.Marshal(h, buf)
	return buf
}

// UnmarshalRunHeader deserializes a RunHeader from bytes. StartedAt is
// returned in UTC.
func UnmarshalRunHeader(data []byte) (core.RunHeader, error) {
	h, n, err := core.RunHeaderMUS.Unmarshal(data)
	if err := checkDecoded(len(data), n, err); err != nil {
		return core.RunHeader{}, err
	}
	h.StartedAt = h.StartedAt.UTC()
	return h, nil
}

// MarshalResult serializes a Result to bytes.
func MarshalResult(result *core.Result) []byte {
	buf := make([]byte, core.ResultMUS.Size(*result))
	core.ResultMUS.Marshal(*result, buf)
	return buf
}

// UnmarshalResult deserializes a Result from bytes.
func UnmarshalResult(data []byte) (*core.Result, error) {
	result, n, err := core.ResultMUS.Unmarshal(data)
	if err := checkDecoded(len(data), n, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// checkDecoded rejects decode errors and values followed by trailing bytes.
func checkDecoded(size, used int, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if used != size {
		return fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, size-used)
	}
	return nil
}
