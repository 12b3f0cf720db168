package obj

// Tweet is one status from the stream. Fields tagged omitzero are optional on the wire and nil
// when absent; everything else is required.
type Tweet struct {
	CreatedAt            Datetime          `json:"created_at"`
	ID                   uint64            `json:"id"`
	IDStr                string            `json:"id_str"`
	Text                 string            `json:"text"`
	Source               string            `json:"source"`
	Truncated            bool              `json:"truncated"`
	InReplyToStatusID    *uint64           `json:"in_reply_to_status_id,omitzero"`
	InReplyToStatusIDStr *string           `json:"in_reply_to_status_id_str,omitzero"`
	InReplyToUserID      *uint64           `json:"in_reply_to_user_id,omitzero"`
	InReplyToUserIDStr   *string           `json:"in_reply_to_user_id_str,omitzero"`
	InReplyToScreenName  *string           `json:"in_reply_to_screen_name,omitzero"`
	User                 User              `json:"user"`
	ExtendedTweet        *ExtendedTweet    `json:"extended_tweet,omitzero"`
	Coordinates          *Coordinates      `json:"coordinates,omitzero"`
	Place                *Place            `json:"place,omitzero"`
	QuotedStatusID       *uint64           `json:"quoted_status_id,omitzero"`
	QuotedStatusIDStr    *string           `json:"quoted_status_id_str,omitzero"`
	IsQuoteStatus        bool              `json:"is_quote_status"`
	QuotedStatus         *Tweet            `json:"quoted_status,omitzero"`
	RetweetedStatus      *Tweet            `json:"retweeted_status,omitzero"`
	QuoteCount           *uint32           `json:"quote_count,omitzero"`
	ReplyCount           *uint32           `json:"reply_count,omitzero"`
	RetweetCount         *uint32           `json:"retweet_count,omitzero"`
	FavoriteCount        *uint32           `json:"favorite_count,omitzero"`
	Entities             *Entities         `json:"entities,omitzero"`
	ExtendedEntities     *ExtendedEntities `json:"extended_entities,omitzero"`
	Favorited            *bool             `json:"favorited,omitzero"`
	Retweeted            bool              `json:"retweeted"`
	PossiblySensitive    *bool             `json:"possibly_sensitive,omitzero"`
	// FilterLevel is one of none, low or medium.
	FilterLevel string `json:"filter_level"`
	// Lang is a BCP 47 tag of the machine-detected language.
	Lang                *string  `json:"lang,omitzero"`
	WithheldCopyright   *bool    `json:"withheld_copyright,omitzero"`
	WithheldInCountries []string `json:"withheld_in_countries,omitzero"`
	// WithheldScope is "status" or "user".
	WithheldScope *string `json:"withheld_scope,omitzero"`

	// Deprecated: kept for older captures.
	Contributors []Contributor `json:"contributors,omitzero"`
	// Deprecated: kept for older captures.
	DisplayTextRange *[2]uint32 `json:"display_text_range,omitzero"`
	// Deprecated: use Coordinates.
	Geo *Coordinates `json:"geo,omitzero"`
	// Deprecated: kept for older captures.
	QuotedStatusPermalink *LegacyURL `json:"quoted_status_permalink,omitzero"`
	// Deprecated: use CreatedAt.
	TimestampMs *string `json:"timestamp_ms,omitzero"`
}

// ExtendedTweet carries the untruncated text of a status longer than the legacy limit.
type ExtendedTweet struct {
	FullText         string            `json:"full_text"`
	DisplayTextRange [2]uint32         `json:"display_text_range"`
	Entities         Entities          `json:"entities"`
	ExtendedEntities *ExtendedEntities `json:"extended_entities,omitzero"`
}

type Contributor struct {
	ID         uint64 `json:"id"`
	IDStr      string `json:"id_str"`
	ScreenName string `json:"screen_name"`
}
