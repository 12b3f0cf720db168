package obj

// Entities are the spans parsed out of a status body.
type Entities struct {
	Hashtags     []Hashtag     `json:"hashtags"`
	URLs         []URL         `json:"urls"`
	UserMentions []UserMention `json:"user_mentions"`
	Symbols      []Symbol      `json:"symbols"`
	Media        []Media       `json:"media,omitzero"`
	Polls        []Poll        `json:"polls,omitzero"`
}

// ExtendedEntities holds every media attachment. Entities.Media only ever has the first one.
type ExtendedEntities struct {
	Media []Media `json:"media"`
}

type Hashtag struct {
	Indices [2]uint32 `json:"indices"`
	Text    string    `json:"text"`
}

// Symbol is a cashtag such as $TWTR.
type Symbol struct {
	Indices [2]uint32 `json:"indices"`
	Text    string    `json:"text"`
}

type URL struct {
	DisplayURL  string      `json:"display_url"`
	ExpandedURL string      `json:"expanded_url"`
	Indices     [2]uint32   `json:"indices"`
	URL         string      `json:"url"`
	Unwound     *UnwoundURL `json:"unwound,omitzero"`
}

// UnwoundURL is the enrichment describing where a shortened link lands.
type UnwoundURL struct {
	URL         string `json:"url"`
	Status      uint32 `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LegacyURL is the shape of the deprecated quoted_status_permalink.
type LegacyURL struct {
	Display  string `json:"display"`
	Expanded string `json:"expanded"`
	URL      string `json:"url"`
}

// UserMention identifiers are optional since redacted accounts only carry a screen name.
type UserMention struct {
	ID         *uint64   `json:"id,omitzero"`
	IDStr      *string   `json:"id_str,omitzero"`
	Indices    [2]uint32 `json:"indices"`
	Name       *string   `json:"name,omitzero"`
	ScreenName string    `json:"screen_name"`
}
