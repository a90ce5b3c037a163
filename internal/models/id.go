package models

import (
	"strconv"
	"time"
)

// NewTimeID returns a fresh time-based record id, guaranteed to be
// numerically greater than lastID even when two records are created within
// the same millisecond.
func NewTimeID(lastID int64) string {
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	return strconv.FormatInt(id, 10)
}
