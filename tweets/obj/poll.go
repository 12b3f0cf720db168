package obj

type Poll struct {
	Options         []PollOption `json:"options"`
	EndDatetime     Datetime     `json:"end_datetime"`
	DurationMinutes uint32       `json:"duration_minutes"`
}

type PollOption struct {
	Position uint32 `json:"position"`
	Text     string `json:"text"`
}
