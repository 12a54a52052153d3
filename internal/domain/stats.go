package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// statsDateLayout matches the long display labels the archive view expects.
const statsDateLayout = "January 2, 2006"

// StatsDay holds per-source story counts for one calendar day.
type StatsDay struct {
	Date   time.Time
	Counts map[string]int
}

// NewsStats is an ordered date-to-counts mapping, newest day first.
// encoding/json sorts map keys, which would destroy the date ordering, so
// the slice order is serialized by hand.
type NewsStats []StatsDay

func (s NewsStats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(day.Date.Format(statsDateLayout))
		if err != nil {
			return nil, err
		}
		counts, err := json.Marshal(day.Counts)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(counts)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SourceStamp is the minimal projection the stats aggregation needs: when a
// story landed and where it came from.
type SourceStamp struct {
	CreatedAt time.Time `db:"created_at"`
	Source    *string   `db:"source"`
}
