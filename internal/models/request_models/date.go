package request_models

import (
	"bytes"
	"fmt"
	"time"
)

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// Date accepts either "2006-01-02" or RFC 3339 in JSON bodies and is always
// written back as "2006-01-02".
type Date time.Time

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, string(b)); err == nil {
			*d = Date(t)
			return nil
		}
	}
	return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", b)
}

func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.DateOnly) + `"`), nil
}

func (d Date) Time() time.Time {
	return time.Time(d)
}
