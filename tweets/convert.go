package tweets

import (
	"github.com/dghubble/go-twitter/twitter"
	"github.com/memocash/tweetparse/tweets/obj"
	"github.com/samber/lo"
)

// GoTwitter renders a decoded status as a go-twitter Tweet for code written against that client.
// Text holds the raw text and FullText the resolved full text.
func GoTwitter(t *obj.Tweet) *twitter.Tweet {
	if t == nil {
		return nil
	}
	tweet := &twitter.Tweet{
		ID:                   int64(t.ID),
		IDStr:                t.IDStr,
		CreatedAt:            t.CreatedAt.String(),
		Text:                 t.Text,
		FullText:             t.FullText(),
		Source:               t.Source,
		Truncated:            t.Truncated,
		User:                 goTwitterUser(t.User),
		InReplyToStatusID:    int64(lo.FromPtr(t.InReplyToStatusID)),
		InReplyToStatusIDStr: lo.FromPtr(t.InReplyToStatusIDStr),
		InReplyToUserID:      int64(lo.FromPtr(t.InReplyToUserID)),
		InReplyToUserIDStr:   lo.FromPtr(t.InReplyToUserIDStr),
		InReplyToScreenName:  lo.FromPtr(t.InReplyToScreenName),
		QuotedStatusID:       int64(lo.FromPtr(t.QuotedStatusID)),
		QuotedStatusIDStr:    lo.FromPtr(t.QuotedStatusIDStr),
		QuotedStatus:         GoTwitter(t.QuotedStatus),
		RetweetedStatus:      GoTwitter(t.RetweetedStatus),
		QuoteCount:           int(lo.FromPtr(t.QuoteCount)),
		ReplyCount:           int(lo.FromPtr(t.ReplyCount)),
		RetweetCount:         int(lo.FromPtr(t.RetweetCount)),
		FavoriteCount:        int(lo.FromPtr(t.FavoriteCount)),
		Favorited:            lo.FromPtr(t.Favorited),
		Retweeted:            t.Retweeted,
		PossiblySensitive:    t.IsSensitive(),
		FilterLevel:          t.FilterLevel,
		Lang:                 lo.FromPtr(t.Lang),
		WithheldCopyright:    lo.FromPtr(t.WithheldCopyright),
		WithheldInCountries:  t.WithheldInCountries,
		WithheldScope:        lo.FromPtr(t.WithheldScope),
	}
	if t.Entities != nil {
		tweet.Entities = &twitter.Entities{
			Hashtags: lo.Map(t.Entities.Hashtags, func(hashtag obj.Hashtag, _ int) twitter.HashtagEntity {
				return twitter.HashtagEntity{
					Indices: twitter.Indices{int(hashtag.Indices[0]), int(hashtag.Indices[1])},
					Text:    hashtag.Text,
				}
			}),
		}
	}
	return tweet
}

func goTwitterUser(u obj.User) *twitter.User {
	return &twitter.User{
		ID:                   int64(u.ID),
		IDStr:                u.IDStr,
		Name:                 u.Name,
		ScreenName:           u.ScreenName,
		Location:             lo.FromPtr(u.Location),
		URL:                  lo.FromPtr(u.URL),
		Description:          lo.FromPtr(u.Description),
		Protected:            u.Protected,
		Verified:             u.Verified,
		FollowersCount:       int(u.FollowersCount),
		FriendsCount:         int(u.FriendsCount),
		ListedCount:          int(u.ListedCount),
		FavouritesCount:      int(u.FavouritesCount),
		StatusesCount:        int(u.StatusesCount),
		CreatedAt:            u.CreatedAt.String(),
		ProfileImageURLHttps: u.ProfileImageURLHttps,
		DefaultProfile:       u.DefaultProfile,
		DefaultProfileImage:  u.DefaultProfileImage,
	}
}
