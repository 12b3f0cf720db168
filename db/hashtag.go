package db

import (
	"fmt"
	"strings"

	"github.com/jchavannes/jgo/jutil"
	"github.com/memocash/tweetparse/tweets/obj"
	"github.com/samber/lo"
)

// HashtagTweet indexes a status under one of its hashtags. Tags are stored lower case since
// hashtag matching on the platform ignores case.
type HashtagTweet struct {
	Hashtag string
	TweetID uint64
}

func (h *HashtagTweet) GetPrefix() string {
	return PrefixHashtag
}

func (h *HashtagTweet) GetUid() []byte {
	return jutil.CombineBytes([]byte(h.Hashtag), []byte{Spacer}, jutil.GetInt64DataBig(int64(h.TweetID)))
}

func (h *HashtagTweet) SetUid(b []byte) {
	if len(b) < 9 || b[len(b)-9] != Spacer {
		return
	}
	h.Hashtag = string(b[:len(b)-9])
	h.TweetID = uint64(jutil.GetInt64Big(b[len(b)-8:]))
}

func (h *HashtagTweet) Serialize() []byte {
	return nil
}

func (h *HashtagTweet) Deserialize([]byte) {
}

func NewHashtagTweets(tweet *obj.Tweet) []*HashtagTweet {
	tags := lo.Uniq(lo.Map(tweet.Hashtags(), func(tag string, _ int) string {
		return strings.ToLower(tag)
	}))
	return lo.Map(tags, func(tag string, _ int) *HashtagTweet {
		return &HashtagTweet{
			Hashtag: tag,
			TweetID: tweet.ID,
		}
	})
}

func GetHashtagTweetIds(hashtag string) ([]uint64, error) {
	prefix := jutil.CombineBytes([]byte(strings.ToLower(strings.TrimPrefix(hashtag, "#"))), []byte{Spacer})
	hashtagTweets, err := GetAll(func() *HashtagTweet { return new(HashtagTweet) }, prefix, 0)
	if err != nil {
		return nil, fmt.Errorf("error getting hashtag tweets; %w", err)
	}
	return lo.Map(hashtagTweets, func(h *HashtagTweet, _ int) uint64 {
		return h.TweetID
	}), nil
}
