package obj

import (
	"encoding/json"
	"fmt"
	"time"
)

// DatetimeLayout is the fixed created_at format used across the v1.1 API,
// e.g. "Wed Oct 10 20:19:24 +0000 2018".
const DatetimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Datetime is an absolute instant stored in UTC.
type Datetime struct {
	time.Time
}

func NewDatetime(t time.Time) Datetime {
	return Datetime{Time: t.UTC()}
}

// ParseDatetime only accepts the canonical rendering of an instant: a wrong weekday or an
// unpadded day fails even though time.Parse would tolerate it.
func ParseDatetime(s string) (Datetime, error) {
	t, err := time.Parse(DatetimeLayout, s)
	if err != nil {
		return Datetime{}, fmt.Errorf("%w; %q: %v", ErrDatetimeFormat, s, err)
	}
	if t.Format(DatetimeLayout) != s {
		return Datetime{}, fmt.Errorf("%w; %q is not canonical", ErrDatetimeFormat, s)
	}
	return NewDatetime(t), nil
}

func (d Datetime) String() string {
	return d.Time.UTC().Format(DatetimeLayout)
}

func (d Datetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Datetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w; datetime must be a string", ErrTypeMismatch)
	}
	parsed, err := ParseDatetime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
