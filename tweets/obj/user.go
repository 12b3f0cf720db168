package obj

// User is the author's profile as of posting time, not a live reference.
type User struct {
	ID                   uint64   `json:"id"`
	IDStr                string   `json:"id_str"`
	Name                 string   `json:"name"`
	ScreenName           string   `json:"screen_name"`
	Location             *string  `json:"location,omitzero"`
	URL                  *string  `json:"url,omitzero"`
	Description          *string  `json:"description,omitzero"`
	Protected            bool     `json:"protected"`
	Verified             bool     `json:"verified"`
	FollowersCount       uint32   `json:"followers_count"`
	FriendsCount         uint32   `json:"friends_count"`
	ListedCount          uint32   `json:"listed_count"`
	FavouritesCount      uint32   `json:"favourites_count"`
	StatusesCount        uint32   `json:"statuses_count"`
	CreatedAt            Datetime `json:"created_at"`
	ProfileBannerURL     *string  `json:"profile_banner_url,omitzero"`
	ProfileImageURLHttps string   `json:"profile_image_url_https"`
	DefaultProfile       bool     `json:"default_profile"`
	DefaultProfileImage  bool     `json:"default_profile_image"`
	WithheldInCountries  []string `json:"withheld_in_countries,omitzero"`
	WithheldScope        *string  `json:"withheld_scope,omitzero"`
}
