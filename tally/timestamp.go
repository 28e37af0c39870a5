package tally

import "time"

const RFC3339Milli = "2006-01-02T15:04:05.999Z07:00"

type Timestamp string

func (t Timestamp) String() string {
	return string(t)
}

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(RFC3339Milli))
}
