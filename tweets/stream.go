package tweets

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jchavannes/jgo/jlog"
	"github.com/memocash/tweetparse/tweets/obj"
)

// MaxLineSize bounds a single message. Deep retweet and quote chains with media run well past
// bufio's default token size.
const MaxLineSize = 16 * 1024 * 1024

const statsInterval = 30 * time.Second

type Handler interface {
	OnTweet(ctx context.Context, tweet *obj.Tweet) error
	OnLimit(ctx context.Context, limit *obj.Limit) error
}

type Stats struct {
	Lines     int
	Tweets    int
	Limits    int
	Malformed int
}

// Stream reads newline delimited messages as delivered by the streaming endpoint. Blank keep
// alive lines are skipped.
type Stream struct {
	Reader  io.Reader
	Handler Handler
	// StopOnError returns the first malformed message instead of logging and skipping it.
	StopOnError bool
	Verbose     bool
	Stats       Stats
}

func NewStream(r io.Reader, handler Handler) *Stream {
	return &Stream{
		Reader:  r,
		Handler: handler,
	}
}

func (s *Stream) Run(ctx context.Context) error {
	if s == nil || s.Handler == nil {
		return fmt.Errorf("error stream handler not set")
	}
	scanner := bufio.NewScanner(s.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lastStatsLog := time.Now()
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Stats.Lines++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		payload, err := Parse(line)
		if err != nil {
			s.Stats.Malformed++
			if s.StopOnError {
				return fmt.Errorf("error parsing stream line %d; %w", s.Stats.Lines, err)
			}
			jlog.Logf("skipping malformed stream line %d: %v\n", s.Stats.Lines, err)
			continue
		}
		switch payload.Kind() {
		case PayloadTweet:
			s.Stats.Tweets++
			if err := s.Handler.OnTweet(ctx, payload.Tweet); err != nil {
				return fmt.Errorf("error handling stream tweet %d; %w", payload.Tweet.ID, err)
			}
		case PayloadLimit:
			s.Stats.Limits++
			if err := s.Handler.OnLimit(ctx, payload.Limit); err != nil {
				return fmt.Errorf("error handling stream limit; %w", err)
			}
		}
		if s.Verbose && time.Since(lastStatsLog) >= statsInterval {
			s.logStats()
			lastStatsLog = time.Now()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream; %w", err)
	}
	if s.Verbose {
		s.logStats()
	}
	return nil
}

func (s *Stream) logStats() {
	jlog.Logf("stream stats: lines %d, tweets %d, limits %d, malformed %d\n",
		s.Stats.Lines, s.Stats.Tweets, s.Stats.Limits, s.Stats.Malformed)
}

// HandlerFuncs adapts plain functions to a Handler. A nil func ignores that message kind.
type HandlerFuncs struct {
	Tweet func(ctx context.Context, tweet *obj.Tweet) error
	Limit func(ctx context.Context, limit *obj.Limit) error
}

func (h HandlerFuncs) OnTweet(ctx context.Context, tweet *obj.Tweet) error {
	if h.Tweet == nil {
		return nil
	}
	return h.Tweet(ctx, tweet)
}

func (h HandlerFuncs) OnLimit(ctx context.Context, limit *obj.Limit) error {
	if h.Limit == nil {
		return nil
	}
	return h.Limit(ctx, limit)
}
