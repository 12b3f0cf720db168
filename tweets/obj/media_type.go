package obj

import (
	"encoding/json"
	"fmt"
)

type MediaKind uint8

const (
	MediaKindUnknown MediaKind = iota
	MediaKindPhoto
	MediaKindGif
	MediaKindVideo
)

const (
	mediaNamePhoto = "photo"
	mediaNameGif   = "gif"
	mediaNameVideo = "video"
)

// MediaType is the media "type" discriminator. Values outside the known set decode to
// MediaKindUnknown with the raw string kept in Other, so new upstream kinds never fail a decode.
type MediaType struct {
	Kind  MediaKind
	Other string
}

var (
	MediaTypePhoto = MediaType{Kind: MediaKindPhoto}
	MediaTypeGif   = MediaType{Kind: MediaKindGif}
	MediaTypeVideo = MediaType{Kind: MediaKindVideo}
)

// ParseMediaType is case-sensitive: "Photo" is unknown.
func ParseMediaType(s string) MediaType {
	switch s {
	case mediaNamePhoto:
		return MediaTypePhoto
	case mediaNameGif:
		return MediaTypeGif
	case mediaNameVideo:
		return MediaTypeVideo
	default:
		return MediaType{Kind: MediaKindUnknown, Other: s}
	}
}

func (m MediaType) IsUnknown() bool {
	return m.Kind == MediaKindUnknown
}

func (m MediaType) String() string {
	switch m.Kind {
	case MediaKindPhoto:
		return mediaNamePhoto
	case MediaKindGif:
		return mediaNameGif
	case MediaKindVideo:
		return mediaNameVideo
	default:
		return m.Other
	}
}

func (m MediaType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MediaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w; media type must be a string", ErrTypeMismatch)
	}
	*m = ParseMediaType(s)
	return nil
}
