package datefmt

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// maxTimestampMillis bounds Unix millisecond timestamps to ±100,000,000 days around the epoch.
const maxTimestampMillis = 8.64e15

// zonedLayouts carry their own UTC offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
}

// localLayouts have no offset and are read in the formatter location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Normalize converts a date argument into the instant every token is evaluated against.
//
// With no argument it returns the current time. Accepted inputs are time.Time, a non-nil
// *time.Time, integer and finite float Unix timestamps in milliseconds, json.Number
// timestamps, and ISO 8601 strings. Strings without a UTC offset are read in the formatter
// location. A time.Time keeps its own location unless the formatter has one set.
//
// Unparsable strings fail with ErrInvalidDate; any other input, including nil, fails with
// ErrInvalidArgumentType.
func (f *Formatter) Normalize(date ...any) (time.Time, error) {
	switch len(date) {
	case 0:
		return f.localize(f.now()), nil
	case 1:
	default:
		return time.Time{}, fmt.Errorf("%w: %s, got %d arguments", ErrInvalidArgumentType, msgDateType, len(date))
	}

	switch v := date[0].(type) {
	case time.Time:
		return f.localize(v), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, errDateType(v)
		}
		return f.localize(*v), nil
	case string:
		return f.parseISO(v)
	case json.Number:
		if ms, err := v.Int64(); err == nil {
			return f.fromUnixMilli(ms)
		}
		ms, err := v.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not a timestamp", ErrInvalidDate, v.String())
		}
		return f.fromFloatMilli(ms)
	case int:
		return f.fromUnixMilli(int64(v))
	case int8:
		return f.fromUnixMilli(int64(v))
	case int16:
		return f.fromUnixMilli(int64(v))
	case int32:
		return f.fromUnixMilli(int64(v))
	case int64:
		return f.fromUnixMilli(v)
	case uint:
		return f.fromUnsignedMilli(uint64(v))
	case uint8:
		return f.fromUnixMilli(int64(v))
	case uint16:
		return f.fromUnixMilli(int64(v))
	case uint32:
		return f.fromUnixMilli(int64(v))
	case uint64:
		return f.fromUnsignedMilli(v)
	case float32:
		return f.fromFloatMilli(float64(v))
	case float64:
		return f.fromFloatMilli(v)
	default:
		return time.Time{}, errDateType(v)
	}
}

func errDateType(v any) error {
	return fmt.Errorf("%w: %s, got %T", ErrInvalidArgumentType, msgDateType, v)
}

// localize moves t into the formatter location when one is configured.
func (f *Formatter) localize(t time.Time) time.Time {
	if f.location != nil {
		return t.In(f.location)
	}
	return t
}

func (f *Formatter) zone() *time.Location {
	if f.location != nil {
		return f.location
	}
	return time.Local
}

func (f *Formatter) fromUnixMilli(ms int64) (time.Time, error) {
	if ms > maxTimestampMillis || ms < -maxTimestampMillis {
		return time.Time{}, fmt.Errorf("%w: timestamp %d is out of range", ErrInvalidDate, ms)
	}
	return time.UnixMilli(ms).In(f.zone()), nil
}

func (f *Formatter) fromUnsignedMilli(ms uint64) (time.Time, error) {
	if ms > maxTimestampMillis {
		return time.Time{}, fmt.Errorf("%w: timestamp %d is out of range", ErrInvalidDate, ms)
	}
	return f.fromUnixMilli(int64(ms))
}

// fromFloatMilli truncates fractional milliseconds toward zero.
func (f *Formatter) fromFloatMilli(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, fmt.Errorf("%w: %s, got non-finite number", ErrInvalidArgumentType, msgDateType)
	}
	if math.Abs(ms) > maxTimestampMillis {
		return time.Time{}, fmt.Errorf("%w: timestamp %v is out of range", ErrInvalidDate, ms)
	}
	return f.fromUnixMilli(int64(math.Trunc(ms)))
}

func (f *Formatter) parseISO(s string) (time.Time, error) {
	value := strings.TrimSpace(s)

	var lastErr error
	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return f.localize(t), nil
		}
		lastErr = err
	}

	loc := f.zone()
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, lastErr)
}
