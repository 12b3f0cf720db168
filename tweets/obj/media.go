package obj

type Media struct {
	DisplayURL          string               `json:"display_url"`
	ExpandedURL         string               `json:"expanded_url"`
	ID                  uint64               `json:"id"`
	IDStr               string               `json:"id_str"`
	Indices             [2]uint32            `json:"indices"`
	MediaURL            string               `json:"media_url"`
	MediaURLHttps       string               `json:"media_url_https"`
	Sizes               Sizes                `json:"sizes"`
	SourceStatusID      *uint64              `json:"source_status_id,omitzero"`
	SourceStatusIDStr   *string              `json:"source_status_id_str,omitzero"`
	Kind                MediaType            `json:"type"`
	URL                 string               `json:"url"`
	VideoInfo           *VideoInfo           `json:"video_info,omitzero"`
	AdditionalMediaInfo *AdditionalMediaInfo `json:"additional_media_info,omitzero"`
}

type Sizes struct {
	Thumb  Size `json:"thumb"`
	Small  Size `json:"small"`
	Medium Size `json:"medium"`
	Large  Size `json:"large"`
}

type Size struct {
	W      uint32 `json:"w"`
	H      uint32 `json:"h"`
	Resize string `json:"resize"`
}

type VideoInfo struct {
	AspectRatio    [2]uint32 `json:"aspect_ratio"`
	DurationMillis *uint32   `json:"duration_millis,omitzero"`
	Variants       []Variant `json:"variants"`
}

// Variant is one rendition of a video or gif. Bitrate is absent for HLS playlists.
type Variant struct {
	Bitrate     *uint32 `json:"bitrate,omitzero"`
	ContentType string  `json:"content_type"`
	URL         string  `json:"url"`
}

type AdditionalMediaInfo struct {
	Title       *string `json:"title,omitzero"`
	Description *string `json:"description,omitzero"`
	Embeddable  *bool   `json:"embeddable,omitzero"`
	Monetizable bool    `json:"monetizable"`
}
