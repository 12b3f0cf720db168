package obj

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// typedJSON matches keys exactly like the shape walk does, so a key differing only in case is an
// unknown field rather than a way around the required field check.
var typedJSON = jsoniter.Config{CaseSensitive: true}.Froze()

// ParseTweet decodes one status. Quoted and retweeted statuses are checked through the same walk
// with no depth limit. Either the whole graph decodes or a *MalformedPayload is returned.
func ParseTweet(data []byte) (*Tweet, error) {
	var tweet Tweet
	if err := decode(data, &tweet); err != nil {
		return nil, err
	}
	return &tweet, nil
}

func ParseLimit(data []byte) (*Limit, error) {
	var limit Limit
	if err := decode(data, &limit); err != nil {
		return nil, err
	}
	return &limit, nil
}

func decode(data []byte, v interface{}) error {
	raw, err := readRaw(data)
	if err != nil {
		return err
	}
	if err := checkShape(raw, reflect.TypeOf(v).Elem(), ""); err != nil {
		return err
	}
	if err := typedJSON.Unmarshal(data, v); err != nil {
		var payloadErr *MalformedPayload
		if errors.As(err, &payloadErr) {
			return payloadErr
		}
		return malformed("", fmt.Errorf("%w; %v", ErrTypeMismatch, err))
	}
	return nil
}

// Encode renders a Tweet or Limit in wire form. HTML is not escaped since the source field holds
// a raw anchor tag. encoding/json is used here for omitzero, which drops absent optional fields
// while keeping present zero counts.
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("error encoding payload; %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
