package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/memocash/tweetparse/tweets/obj"
)

// DefaultSize is the byte limit of a memo post.
const DefaultSize = 217

type Flags struct {
	Link  bool
	Date  bool
	Media bool
}

type Text struct {
	Text  string
	Link  string
	Date  string
	Media string
	Flags Flags
}

// FromTweet builds the summary of a status from its derived views. Retweets summarize the
// retweeted text with the retweet's own link.
func FromTweet(tweet *obj.Tweet, flags Flags) Text {
	return Text{
		Text:  tweet.FullText(),
		Link:  tweet.Permalink(),
		Date:  tweet.CreatedAt.String(),
		Media: strings.Join(tweet.MediaURLs(), "\n"),
		Flags: flags,
	}
}

// Gen renders the summary within size bytes. The appended block is capped at half the size and
// the body is cut to fit the remainder, each marked with an ellipsis.
func (t Text) Gen(size int) string {
	tweetText := t.Text
	var appendText string
	if t.Flags.Media && t.Media != "" {
		appendText += fmt.Sprintf("\n%s", t.Media)
	}
	if t.Flags.Link && t.Link != "" {
		appendText += fmt.Sprintf("\n%s", t.Link)
	}
	if t.Flags.Date && t.Date != "" {
		appendText += fmt.Sprintf("\n%s", t.Date)
	}
	if len(tweetText)+len(appendText) <= size {
		return tweetText + appendText
	}
	if len(appendText) > size/2 {
		appendText = truncate(appendText, size/2-3) + "..."
	}
	trim := size - len(appendText) - 3
	if trim < 0 {
		trim = 0
	}
	if trim < len(tweetText) {
		tweetText = truncate(tweetText, trim) + "..."
	}
	return tweetText + appendText
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
