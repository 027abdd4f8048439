// Copyright 2026 Firmdex Authors
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

	"github.com/vmihailenco/msgpack/v5"

	"github.com/firmdex/firmdex/core"
)

// MarshalHistoryEntry serializes a HistoryEntry to bytes.
func MarshalHistoryEntry(entry *core.HistoryEntry) ([]byte, error) {
	data, err := msgpack.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalHistoryEntry deserializes a HistoryEntry from bytes.
func UnmarshalHistoryEntry(data []byte) (*core.HistoryEntry, error) {
	var entry core.HistoryEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}
