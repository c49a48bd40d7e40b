package domain

import "time"

// TimestampLayout is the layout used for human readable timestamps in tool results.
const TimestampLayout = "2006-01-02 15:04:05"

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}
