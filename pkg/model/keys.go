package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeyFunc produces a candidate identifier. Callers pass the candidate through
// UniqueKey before using it.
type KeyFunc func(prefix string) string

// TimestampKeys yields "<prefix>_<unix millis>", matching what an interactive
// editor produces. Bulk insertion within one millisecond relies on UniqueKey
// to break ties.
func TimestampKeys(now func() time.Time) KeyFunc {
	if now == nil {
		now = time.Now
	}
	return func(prefix string) string {
		return prefix + "_" + strconv.FormatInt(now().UnixMilli(), 10)
	}
}

// UUIDKeys yields "<prefix>_<12 hex chars>" from a random UUID.
func UUIDKeys() KeyFunc {
	return func(prefix string) string {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")
		return prefix + "_" + id[:12]
	}
}

// UniqueKey returns candidate when it is free, otherwise the first
// "<candidate>_<n>" (n >= 2) not present in taken.
func UniqueKey(candidate string, taken map[string]int) string {
	if taken[candidate] == 0 {
		return candidate
	}
	for n := 2; ; n++ {
		next := candidate + "_" + strconv.Itoa(n)
		if taken[next] == 0 {
			return next
		}
	}
}
