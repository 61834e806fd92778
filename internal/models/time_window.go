package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the statistics API timestamp format (microsecond precision, no zone).
const TimestampLayout = "2006-01-02 15:04:05.000000"

const windowKeyLayout = "20060102T150405.000000Z"

var ErrInvalidTimeWindow = errors.New("invalid time window")

// TimeWindow is the half-open [Start, End) interval a batch covers, always in UTC.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow validates and normalizes a window to UTC.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, fmt.Errorf("%w: start and end are required", ErrInvalidTimeWindow)
	}
	if !end.After(start) {
		return TimeWindow{}, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeWindow, end.UTC().Format(TimestampLayout), start.UTC().Format(TimestampLayout))
	}
	return TimeWindow{Start: start.UTC(), End: end.UTC()}, nil
}

// ParseTimeWindow parses start and end in the API layout or RFC3339.
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	startTime, err := ParseTimestamp(start)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: start: %w", ErrInvalidTimeWindow, err)
	}
	endTime, err := ParseTimestamp(end)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: end: %w", ErrInvalidTimeWindow, err)
	}
	return NewTimeWindow(startTime, endTime)
}

// PreviousWindow returns the window of length d that ends at now truncated to d.
func PreviousWindow(now time.Time, d time.Duration) TimeWindow {
	end := now.UTC().Truncate(d)
	return TimeWindow{Start: end.Add(-d), End: end}
}

// ParseTimestamp accepts the API layout (fractional seconds optional) and RFC3339.
// Zone-less values are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01-02 15:04:05.999999999", time.RFC3339Nano} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

// StartParam and EndParam are the window bounds in API query format.
func (w TimeWindow) StartParam() string { return w.Start.UTC().Format(TimestampLayout) }

func (w TimeWindow) EndParam() string { return w.End.UTC().Format(TimestampLayout) }

// Key identifies the window in storage keys, e.g. "20230401T124647.860798Z-20230402T124647.860798Z".
func (w TimeWindow) Key() string {
	return w.Start.UTC().Format(windowKeyLayout) + "-" + w.End.UTC().Format(windowKeyLayout)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.StartParam(), w.EndParam())
}

type timeWindowJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (w TimeWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeWindowJSON{Start: w.StartParam(), End: w.EndParam()})
}

func (w *TimeWindow) UnmarshalJSON(data []byte) error {
	var raw timeWindowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTimeWindow(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
