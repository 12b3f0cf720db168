package obj

import (
	"fmt"

	"github.com/samber/lo"
)

const PermalinkFormat = "https://twitter.com/%s/status/%d"

func (t *Tweet) IsRetweet() bool {
	return t.RetweetedStatus != nil
}

// IsQuote follows the embedded status rather than is_quote_status, which stays set after the
// quoted status is deleted.
func (t *Tweet) IsQuote() bool {
	return t.QuotedStatus != nil
}

func (t *Tweet) IsExtended() bool {
	return t.ExtendedTweet != nil
}

func (t *Tweet) HasMedia() bool {
	return t.ExtendedEntities != nil
}

func (t *Tweet) IsSensitive() bool {
	return lo.FromPtr(t.PossiblySensitive)
}

// BaseID is the id of the status actually being shared: the retweeted one for a retweet.
func (t *Tweet) BaseID() uint64 {
	if t.RetweetedStatus != nil {
		return t.RetweetedStatus.ID
	}
	return t.ID
}

func (t *Tweet) Permalink() string {
	return fmt.Sprintf(PermalinkFormat, t.User.ScreenName, t.ID)
}

// FullText resolves the complete body: the extended text when present, otherwise the retweeted
// status's full text, otherwise the raw (possibly truncated) text.
func (t *Tweet) FullText() string {
	if t.ExtendedTweet != nil {
		return t.ExtendedTweet.FullText
	}
	if t.RetweetedStatus != nil {
		return t.RetweetedStatus.FullText()
	}
	return t.Text
}

// MediaURLs gathers photo URLs and the best video/gif rendition of every attachment, including
// those of a retweeted status, without duplicates.
func (t *Tweet) MediaURLs() []string {
	var urls []string
	if t.RetweetedStatus != nil {
		urls = append(urls, t.RetweetedStatus.MediaURLs()...)
	}
	if t.ExtendedEntities != nil {
		for _, media := range t.ExtendedEntities.Media {
			if url, ok := media.BestURL(); ok {
				urls = append(urls, url)
			}
		}
	}
	return lo.Uniq(urls)
}

func (t *Tweet) Hashtags() []string {
	if t.Entities == nil {
		return []string{}
	}
	return lo.Map(t.Entities.Hashtags, func(hashtag Hashtag, _ int) string {
		return hashtag.Text
	})
}

// BestURL is media_url_https for photos and the highest bitrate variant for anything else.
func (m Media) BestURL() (string, bool) {
	if m.Kind == MediaTypePhoto {
		return m.MediaURLHttps, true
	}
	if m.VideoInfo == nil {
		return "", false
	}
	variant, ok := m.VideoInfo.Best()
	if !ok {
		return "", false
	}
	return variant.URL, true
}

// Best returns the variant with the greatest bitrate. A missing bitrate ranks below any value and
// the last of equally ranked variants wins.
func (v VideoInfo) Best() (Variant, bool) {
	if len(v.Variants) == 0 {
		return Variant{}, false
	}
	return lo.MaxBy(v.Variants, func(a, b Variant) bool {
		return bitrateRank(a) >= bitrateRank(b)
	}), true
}

func bitrateRank(v Variant) int64 {
	if v.Bitrate == nil {
		return -1
	}
	return int64(*v.Bitrate)
}
