package db

import (
	"fmt"

	"github.com/jchavannes/jgo/jutil"
	"github.com/memocash/tweetparse/tweets/obj"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Tweet is an archived status keyed by id. The value is the status re-encoded in wire form.
type Tweet struct {
	ID   uint64
	Data []byte
}

func (t *Tweet) GetPrefix() string {
	return PrefixTweet
}

func (t *Tweet) GetUid() []byte {
	return jutil.GetInt64DataBig(int64(t.ID))
}

func (t *Tweet) SetUid(b []byte) {
	if len(b) != 8 {
		return
	}
	t.ID = uint64(jutil.GetInt64Big(b))
}

func (t *Tweet) Serialize() []byte {
	return t.Data
}

func (t *Tweet) Deserialize(d []byte) {
	t.Data = d
}

func (t *Tweet) Parse() (*obj.Tweet, error) {
	tweet, err := obj.ParseTweet(t.Data)
	if err != nil {
		return nil, fmt.Errorf("error parsing archived tweet %d; %w", t.ID, err)
	}
	return tweet, nil
}

func NewTweet(tweet *obj.Tweet) (*Tweet, error) {
	data, err := obj.Encode(tweet)
	if err != nil {
		return nil, fmt.Errorf("error encoding tweet %d for archive; %w", tweet.ID, err)
	}
	return &Tweet{
		ID:   tweet.ID,
		Data: data,
	}, nil
}

func GetTweet(id uint64) (*obj.Tweet, error) {
	var tweet = &Tweet{ID: id}
	if err := GetItem(tweet); err != nil {
		return nil, fmt.Errorf("error getting archived tweet; %w", err)
	}
	return tweet.Parse()
}

// GetTweets returns archived tweets in id order starting at startId. max of zero means no limit.
func GetTweets(startId uint64, max int) ([]*Tweet, error) {
	db, err := GetDb()
	if err != nil {
		return nil, fmt.Errorf("error getting database handler for get tweets; %w", err)
	}
	iter := db.NewIterator(util.BytesPrefix(objectPrefix(PrefixTweet, nil)), nil)
	defer iter.Release()
	startUid := GetObjectCombinedUid(&Tweet{ID: startId})
	var tweets []*Tweet
	for firstAndOk := iter.Seek(startUid); firstAndOk || iter.Next(); firstAndOk = false {
		var tweet = new(Tweet)
		Set(tweet, iter)
		tweets = append(tweets, tweet)
		if max > 0 && len(tweets) >= max {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("error iterating over archived tweets; %w", err)
	}
	return tweets, nil
}

func GetLatestTweet() (*obj.Tweet, error) {
	var tweet = new(Tweet)
	if err := GetLastItem(tweet, nil); err != nil {
		return nil, fmt.Errorf("error getting latest archived tweet; %w", err)
	}
	return tweet.Parse()
}

// DeleteTweet removes an archived tweet along with its hashtag index entries.
func DeleteTweet(id uint64) error {
	tweet, err := GetTweet(id)
	if err != nil {
		return fmt.Errorf("error getting tweet for delete; %w", err)
	}
	objects := []ObjectI{&Tweet{ID: id}}
	for _, hashtag := range NewHashtagTweets(tweet) {
		objects = append(objects, hashtag)
	}
	if err := Delete(objects); err != nil {
		return fmt.Errorf("error deleting archived tweet %d; %w", id, err)
	}
	return nil
}

// ArchiveTweet stores the status and a hashtag index entry per distinct tag in one batch.
func ArchiveTweet(tweet *obj.Tweet) error {
	archived, err := NewTweet(tweet)
	if err != nil {
		return err
	}
	objects := []ObjectI{archived}
	for _, hashtag := range NewHashtagTweets(tweet) {
		objects = append(objects, hashtag)
	}
	if err := Save(objects); err != nil {
		return fmt.Errorf("error saving archived tweet %d; %w", tweet.ID, err)
	}
	return nil
}
