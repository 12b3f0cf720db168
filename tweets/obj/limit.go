package obj

import (
	"strconv"
	"time"
)

// Limit is the notice sent when a filtered stream matched more statuses than it could deliver.
type Limit struct {
	Limit LimitInfo `json:"limit"`
}

type LimitInfo struct {
	// Track is the cumulative count of undelivered statuses since the connection opened.
	Track       uint32 `json:"track"`
	TimestampMs string `json:"timestamp_ms"`
}

// Time returns false when timestamp_ms is not a millisecond count.
func (l LimitInfo) Time() (time.Time, bool) {
	ms, err := strconv.ParseInt(l.TimestampMs, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}
