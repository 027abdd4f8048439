package badger

import (
	"encoding/binary"
	"time"
)

// Key prefixes for different data types
const (
	historyPrefix = "hisrec"
	historySeq    = "hisrecseq"
)

// makeHistoryKey generates a composite key for a history entry.
// Format: prefix:^timestamp:^seq
// Both components are bit-inverted and written BigEndian, so plain ascending
// iteration over the prefix yields entries newest first.
func makeHistoryKey(timestamp time.Time, seq uint64) []byte {
	prefix := historyPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for seq
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], ^uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], ^seq)
	return buf
}
