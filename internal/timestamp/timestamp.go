// Package timestamp normalizes the different point-in-time encodings that
// reach the API into a single in-memory representation. Depending on where a
// record has been, a date field may arrive as an RFC3339 string, a raw epoch
// number, a datastore timestamp object ({"seconds","nanoseconds"}), or the
// JSON-serialized form of that object ({"_seconds","_nanoseconds"}).
package timestamp

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Epoch values at or above this magnitude are interpreted as milliseconds;
// anything below is seconds. 1e12 seconds is the year 33658, so no real
// seconds value crosses the line.
const millisThreshold = 1e12

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseError reports a value that could not be interpreted as a point in time.
type ParseError struct {
	Value any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse timestamp from %T value %v", e.Value, e.Value)
}

// Timestamp wraps time.Time with flexible JSON decoding and canonical
// RFC3339 UTC encoding. The zero Timestamp marshals as JSON null.
type Timestamp struct {
	time.Time
}

// New returns a Timestamp for t.
func New(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as an RFC3339 UTC string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// UnmarshalJSON accepts any of the recognized wire shapes. JSON null leaves
// the timestamp zero.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := Coerce(raw)
	if err != nil {
		return err
	}

	t.Time = parsed
	return nil
}

// Value implements driver.Valuer so the type can be persisted directly.
func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

// Scan implements sql.Scanner, accepting whatever the driver hands back.
func (t *Timestamp) Scan(src any) error {
	if src == nil {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := Coerce(src)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Coerce converts an arbitrary decoded value into a time.Time. It is the
// identity on values that are already time.Time, so applying it twice is a
// no-op. Unrecognized shapes return a *ParseError instead of a zero time.
func Coerce(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, &ParseError{Value: v}
		}
		return *val, nil
	case Timestamp:
		return val.Time, nil
	case string:
		for _, layout := range stringLayouts {
			if parsed, err := time.Parse(layout, val); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, &ParseError{Value: v}
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return time.Time{}, &ParseError{Value: v}
		}
		return fromEpoch(f), nil
	case float64:
		return fromEpoch(val), nil
	case int64:
		return fromEpoch(float64(val)), nil
	case int:
		return fromEpoch(float64(val)), nil
	case []byte:
		return Coerce(string(val))
	case map[string]any:
		if t, ok := fromSecondsObject(val, "seconds", "nanoseconds"); ok {
			return t, nil
		}
		if t, ok := fromSecondsObject(val, "_seconds", "_nanoseconds"); ok {
			return t, nil
		}
		return time.Time{}, &ParseError{Value: v}
	default:
		return time.Time{}, &ParseError{Value: v}
	}
}

func fromEpoch(v float64) time.Time {
	if v >= millisThreshold || v <= -millisThreshold {
		return time.UnixMilli(int64(v)).UTC()
	}
	return time.Unix(int64(v), 0).UTC()
}

func fromSecondsObject(m map[string]any, secondsKey, nanosKey string) (time.Time, bool) {
	secs, ok := asInt64(m[secondsKey])
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := asInt64(m[nanosKey])
	return time.Unix(secs, nanos).UTC(), true
}

func asInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case int64:
		return val, true
	case int:
		return int64(val), true
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
