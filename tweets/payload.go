package tweets

import (
	"fmt"
	"slices"

	"github.com/memocash/tweetparse/tweets/obj"
)

type PayloadKind int

const (
	PayloadTweet PayloadKind = iota
	PayloadLimit
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadTweet:
		return "tweet"
	case PayloadLimit:
		return "limit"
	default:
		return fmt.Sprintf("PayloadKind(%d)", int(k))
	}
}

// Payload is one top level stream message. Exactly one of Tweet and Limit is set.
type Payload struct {
	Tweet *obj.Tweet
	Limit *obj.Limit
}

func (p *Payload) Kind() PayloadKind {
	if p.Limit != nil {
		return PayloadLimit
	}
	return PayloadTweet
}

// trial decodes one payload variant. Lower precedence wins when a document satisfies more than
// one variant.
type trial struct {
	name       string
	precedence int
	decode     func(data []byte) (*Payload, error)
}

var (
	tweetTrial = trial{name: "status", precedence: 0, decode: func(data []byte) (*Payload, error) {
		tweet, err := obj.ParseTweet(data)
		if err != nil {
			return nil, err
		}
		return &Payload{Tweet: tweet}, nil
	}}
	limitTrial = trial{name: "limit", precedence: 1, decode: func(data []byte) (*Payload, error) {
		limit, err := obj.ParseLimit(data)
		if err != nil {
			return nil, err
		}
		return &Payload{Limit: limit}, nil
	}}
)

// Parse decodes a status or a limit notice. Unknown keys are ignored, so a complete status that
// also carries a "limit" object satisfies both; the status wins.
func Parse(data []byte) (*Payload, error) {
	return resolve(data, tweetTrial, limitTrial)
}

// resolve runs trials by precedence, whatever order they are passed in.
func resolve(data []byte, trials ...trial) (*Payload, error) {
	ordered := slices.Clone(trials)
	slices.SortStableFunc(ordered, func(a, b trial) int {
		return a.precedence - b.precedence
	})
	var err = obj.ErrNoPayloadMatch
	for _, t := range ordered {
		payload, trialErr := t.decode(data)
		if trialErr == nil {
			return payload, nil
		}
		err = fmt.Errorf("%w; %s: %w", err, t.name, trialErr)
	}
	return nil, &obj.MalformedPayload{Cause: err}
}
