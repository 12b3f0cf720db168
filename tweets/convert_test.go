package tweets_test

import (
	"testing"

	"github.com/memocash/tweetparse/tweets"
	"github.com/memocash/tweetparse/tweets/obj"
)

func TestGoTwitter(t *testing.T) {
	tweet, err := obj.ParseTweet(loadFixture(t, "tweet_retweet.json"))
	if err != nil {
		t.Fatalf("error parsing tweet; %v", err)
	}
	converted := tweets.GoTwitter(tweet)
	if converted.ID != 1103000000000000000 || converted.IDStr != "1103000000000000000" {
		t.Errorf("id mismatch, got: %d %s", converted.ID, converted.IDStr)
	}
	if converted.User == nil || converted.User.ScreenName != "gopher" {
		t.Errorf("user mismatch, got: %#v", converted.User)
	}
	if converted.FullText != "hello world" || converted.Text != tweet.Text {
		t.Errorf("text mismatch, got: %q / %q", converted.Text, converted.FullText)
	}
	if converted.RetweetedStatus == nil || converted.RetweetedStatus.User.ScreenName != "bird" {
		t.Errorf("retweeted status not converted")
	}
	if converted.CreatedAt != tweet.CreatedAt.String() {
		t.Errorf("created at mismatch, got: %s", converted.CreatedAt)
	}
	if tweets.GoTwitter(nil) != nil {
		t.Errorf("expected nil for nil tweet")
	}
}

func TestGoTwitter_Hashtags(t *testing.T) {
	tweet, err := obj.ParseTweet(loadFixture(t, "tweet_simple.json"))
	if err != nil {
		t.Fatalf("error parsing tweet; %v", err)
	}
	converted := tweets.GoTwitter(tweet)
	if converted.Entities == nil || len(converted.Entities.Hashtags) != 2 {
		t.Fatalf("hashtags not converted")
	}
	if converted.Entities.Hashtags[0].Text != "Emoji" {
		t.Errorf("hashtag mismatch, got: %s", converted.Entities.Hashtags[0].Text)
	}
}
