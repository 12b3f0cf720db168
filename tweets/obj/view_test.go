package obj_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/memocash/tweetparse/tweets/obj"
)

func bitrate(b uint32) *uint32 {
	return &b
}

func TestTweet_FullText(t *testing.T) {
	const truncated = "this body was cut off at the legacy limit and ends with an ellips…"
	for _, test := range []struct {
		Name     string
		Tweet    obj.Tweet
		Expected string
	}{{
		Name:     "short body",
		Tweet:    obj.Tweet{Text: "short and sweet"},
		Expected: "short and sweet",
	}, {
		Name: "extended record",
		Tweet: obj.Tweet{
			Text:          truncated,
			Truncated:     true,
			ExtendedTweet: &obj.ExtendedTweet{FullText: "the whole thing"},
		},
		Expected: "the whole thing",
	}, {
		Name: "truncated retweet of extended",
		Tweet: obj.Tweet{
			Text:      "RT @bird: hello wor…",
			Truncated: true,
			RetweetedStatus: &obj.Tweet{
				Text:          "hello wor…",
				Truncated:     true,
				ExtendedTweet: &obj.ExtendedTweet{FullText: "hello world"},
			},
		},
		Expected: "hello world",
	}, {
		Name:     "truncated without source",
		Tweet:    obj.Tweet{Text: truncated, Truncated: true},
		Expected: truncated,
	}, {
		Name: "extended wins over retweet",
		Tweet: obj.Tweet{
			ExtendedTweet:   &obj.ExtendedTweet{FullText: "own text"},
			RetweetedStatus: &obj.Tweet{Text: "child text"},
		},
		Expected: "own text",
	}} {
		if got := test.Tweet.FullText(); got != test.Expected {
			t.Errorf("%s: full text mismatch, got: %q, expected: %q", test.Name, got, test.Expected)
		}
	}
}

func TestTweet_FullTextFixtures(t *testing.T) {
	for name, expected := range map[string]string{
		"tweet_simple.json":  "To make room for more expression, we will now count all emojis as equal #Emoji #Unicode",
		"tweet_retweet.json": "hello world",
	} {
		tweet, err := obj.ParseTweet(loadFixture(t, name))
		if err != nil {
			t.Fatalf("error parsing %s; %v", name, err)
		}
		if got := tweet.FullText(); got != expected {
			t.Errorf("%s: full text mismatch, got: %q", name, got)
		}
	}
	extended, err := obj.ParseTweet(loadFixture(t, "tweet_extended.json"))
	if err != nil {
		t.Fatalf("error parsing extended; %v", err)
	}
	if extended.FullText() == extended.Text || extended.FullText() != extended.ExtendedTweet.FullText {
		t.Errorf("extended full text not used, got: %q", extended.FullText())
	}
}

func TestTweet_MediaURLsPicksHighestBitrate(t *testing.T) {
	tweet := obj.Tweet{ExtendedEntities: &obj.ExtendedEntities{Media: []obj.Media{{
		Kind: obj.MediaTypeVideo,
		VideoInfo: &obj.VideoInfo{Variants: []obj.Variant{
			{Bitrate: bitrate(320), URL: "https://video.example/320.mp4"},
			{URL: "https://video.example/playlist.m3u8"},
			{Bitrate: bitrate(1280), URL: "https://video.example/1280.mp4"},
			{Bitrate: bitrate(640), URL: "https://video.example/640.mp4"},
		}},
	}}}}
	expected := []string{"https://video.example/1280.mp4"}
	if got := tweet.MediaURLs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("media urls mismatch, got: %v, expected: %v", got, expected)
	}
}

func TestTweet_MediaURLsBitrateAbsentRanksLowest(t *testing.T) {
	tweet := obj.Tweet{ExtendedEntities: &obj.ExtendedEntities{Media: []obj.Media{{
		Kind: obj.MediaTypeGif,
		VideoInfo: &obj.VideoInfo{Variants: []obj.Variant{
			{URL: "https://video.example/playlist.m3u8"},
			{Bitrate: bitrate(0), URL: "https://video.example/gif.mp4"},
		}},
	}, {
		Kind:      obj.MediaTypeVideo,
		VideoInfo: &obj.VideoInfo{Variants: []obj.Variant{{URL: "https://video.example/only.m3u8"}}},
	}}}}
	expected := []string{"https://video.example/gif.mp4", "https://video.example/only.m3u8"}
	if got := tweet.MediaURLs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("media urls mismatch, got: %v, expected: %v", got, expected)
	}
}

func TestTweet_MediaURLsFixtures(t *testing.T) {
	for name, expected := range map[string][]string{
		"tweet_media.json": {
			"https://pbs.twimg.com/media/PicA.jpg",
			"https://video.twimg.com/tweet_video/Gif.mp4",
		},
		"tweet_retweet.json": {
			"https://pbs.twimg.com/media/OwnPhoto.jpg",
			"https://video.twimg.com/ext_tw_video/1102999034432000001/pu/vid/1280x720/Vid1280.mp4",
		},
		"tweet_simple.json": {},
	} {
		tweet, err := obj.ParseTweet(loadFixture(t, name))
		if err != nil {
			t.Fatalf("error parsing %s; %v", name, err)
		}
		got := tweet.MediaURLs()
		sort.Strings(got)
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("%s: media urls mismatch, got: %v, expected: %v", name, got, expected)
		}
	}
}

func TestTweet_Hashtags(t *testing.T) {
	tweet, err := obj.ParseTweet(loadFixture(t, "tweet_simple.json"))
	if err != nil {
		t.Fatalf("error parsing tweet; %v", err)
	}
	if got := tweet.Hashtags(); !reflect.DeepEqual(got, []string{"Emoji", "Unicode"}) {
		t.Errorf("hashtags mismatch, got: %v", got)
	}
	empty := obj.Tweet{}
	if got := empty.Hashtags(); got == nil || len(got) != 0 {
		t.Errorf("expected empty hashtags, got: %#v", got)
	}
	repeated := obj.Tweet{Entities: &obj.Entities{Hashtags: []obj.Hashtag{{Text: "go"}, {Text: "go"}}}}
	if got := repeated.Hashtags(); len(got) != 2 {
		t.Errorf("hashtags must not be deduplicated, got: %v", got)
	}
}

func TestTweet_Predicates(t *testing.T) {
	retweet, err := obj.ParseTweet(loadFixture(t, "tweet_retweet.json"))
	if err != nil {
		t.Fatalf("error parsing retweet; %v", err)
	}
	if !retweet.IsRetweet() || retweet.IsQuote() || retweet.IsExtended() || !retweet.HasMedia() {
		t.Errorf("retweet predicates mismatch")
	}
	if retweet.BaseID() != 1102999034432000000 {
		t.Errorf("base id mismatch, got: %d", retweet.BaseID())
	}
	if retweet.Permalink() != "https://twitter.com/gopher/status/1103000000000000000" {
		t.Errorf("permalink mismatch, got: %s", retweet.Permalink())
	}

	quote, err := obj.ParseTweet(loadFixture(t, "tweet_media.json"))
	if err != nil {
		t.Fatalf("error parsing quote; %v", err)
	}
	if !quote.IsQuote() || quote.IsRetweet() || quote.BaseID() != quote.ID {
		t.Errorf("quote predicates mismatch")
	}

	extended, err := obj.ParseTweet(loadFixture(t, "tweet_extended.json"))
	if err != nil {
		t.Fatalf("error parsing extended; %v", err)
	}
	if !extended.IsExtended() || !extended.IsSensitive() || extended.HasMedia() {
		t.Errorf("extended predicates mismatch")
	}

	var bare obj.Tweet
	if bare.IsSensitive() || bare.IsRetweet() || bare.IsQuote() || bare.HasMedia() || bare.IsExtended() {
		t.Errorf("absent data must yield false")
	}
}

func TestVideoInfo_BestTieKeepsLast(t *testing.T) {
	for _, test := range []struct {
		Name     string
		Variants []obj.Variant
		Expected string
	}{{
		Name: "equal bitrates",
		Variants: []obj.Variant{
			{Bitrate: bitrate(832000), URL: "https://video.example/first.mp4"},
			{Bitrate: bitrate(256000), URL: "https://video.example/low.mp4"},
			{Bitrate: bitrate(832000), URL: "https://video.example/last.mp4"},
		},
		Expected: "https://video.example/last.mp4",
	}, {
		Name: "all absent",
		Variants: []obj.Variant{
			{URL: "https://video.example/first.m3u8"},
			{URL: "https://video.example/last.m3u8"},
		},
		Expected: "https://video.example/last.m3u8",
	}} {
		best, ok := obj.VideoInfo{Variants: test.Variants}.Best()
		if !ok || best.URL != test.Expected {
			t.Errorf("%s: best variant mismatch, got: %s, expected: %s", test.Name, best.URL, test.Expected)
		}
	}
	if _, ok := (obj.VideoInfo{}).Best(); ok {
		t.Errorf("expected no best variant without variants")
	}
}
