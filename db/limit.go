package db

import (
	"fmt"
	"time"

	"github.com/jchavannes/jgo/jutil"
	"github.com/memocash/tweetparse/tweets/obj"
)

// LimitNotice records a rate limit notice keyed by its timestamp and arrival time in nanoseconds.
type LimitNotice struct {
	TimestampMs int64
	ArrivedNs   int64
	Data        []byte
}

func (l *LimitNotice) GetPrefix() string {
	return PrefixLimit
}

func (l *LimitNotice) GetUid() []byte {
	return jutil.CombineBytes(jutil.GetInt64DataBig(l.TimestampMs), jutil.GetInt64DataBig(l.ArrivedNs))
}

func (l *LimitNotice) SetUid(b []byte) {
	if len(b) != 16 {
		return
	}
	l.TimestampMs = jutil.GetInt64Big(b[:8])
	l.ArrivedNs = jutil.GetInt64Big(b[8:])
}

func (l *LimitNotice) Serialize() []byte {
	return l.Data
}

func (l *LimitNotice) Deserialize(d []byte) {
	l.Data = d
}

func (l *LimitNotice) Parse() (*obj.Limit, error) {
	limit, err := obj.ParseLimit(l.Data)
	if err != nil {
		return nil, fmt.Errorf("error parsing archived limit; %w", err)
	}
	return limit, nil
}

// ArchiveLimit stores a limit notice received at arrived. A timestamp_ms that is not a
// millisecond count falls back to the arrival time.
func ArchiveLimit(limit *obj.Limit, arrived time.Time) error {
	data, err := obj.Encode(limit)
	if err != nil {
		return fmt.Errorf("error encoding limit for archive; %w", err)
	}
	timestampMs := arrived.UnixMilli()
	if ts, ok := limit.Limit.Time(); ok {
		timestampMs = ts.UnixMilli()
	}
	if err := Save([]ObjectI{&LimitNotice{
		TimestampMs: timestampMs,
		ArrivedNs:   arrived.UnixNano(),
		Data:        data,
	}}); err != nil {
		return fmt.Errorf("error saving limit notice; %w", err)
	}
	return nil
}

func GetLimits(max int) ([]*obj.Limit, error) {
	notices, err := GetAll(func() *LimitNotice { return new(LimitNotice) }, nil, max)
	if err != nil {
		return nil, fmt.Errorf("error getting limit notices; %w", err)
	}
	var limits = make([]*obj.Limit, 0, len(notices))
	for _, notice := range notices {
		limit, err := notice.Parse()
		if err != nil {
			return nil, err
		}
		limits = append(limits, limit)
	}
	return limits, nil
}
