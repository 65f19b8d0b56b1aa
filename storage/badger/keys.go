package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/notesum/core"
)

// Key prefixes for different data types
const (
	runRecordPrefix = "run"
	runDatePrefix   = "rund"
	runResultPrefix = "runr"
)

// makeRunKey generates a key for a run header by ID.
func makeRunKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", runRecordPrefix, id))
}

// makeRunDateKey generates a composite key for the start time index.
// Format: prefix:timestamp:id
func makeRunDateKey(startedAt time.Time, id core.ID) []byte {
	prefix := []byte(runDatePrefix + ":")
	buf := make([]byte, len(prefix)+16) // 8 bytes for timestamp + 8 bytes for ID
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(startedAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeRunResultKey generates a key for the result at index within a run.
// Format: prefix:runID:index
func makeRunResultKey(runID core.ID, index int) []byte {
	buf := makePartialRunResultKey(runID)
	return binary.BigEndian.AppendUint32(buf, uint32(index))
}

// makePartialRunResultKey generates the prefix shared by all results of a run.
// Format: prefix:runID
func makePartialRunResultKey(runID core.ID) []byte {
	prefix := []byte(runResultPrefix + ":")
	buf := make([]byte, len(prefix)+8, len(prefix)+12)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(runID))
	return buf
}
