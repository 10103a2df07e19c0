package model

import "time"

type Video struct {
	VideoId        int64     `json:"id"`
	UserId         string    `json:"userId"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	VideoUrl       string    `json:"videoUrl"`
	CoverUrl       string    `json:"coverUrl,omitempty"`
	TelegramLink   string    `json:"telegramLink"`
	Country        string    `json:"country,omitempty"`
	EventType      string    `json:"eventType,omitempty"`
	Hashtags       []string  `json:"hashtags"`
	LikeCount      int64     `json:"likes"`
	VisitCount     int64     `json:"views"`
	TelegramClicks int64     `json:"telegramClicks"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// VideoPatch names the fields that may change through the update path.
// Counters and ids are not patchable; nil means "leave as is".
type VideoPatch struct {
	Title        *string
	Description  *string
	VideoUrl     *string
	CoverUrl     *string
	TelegramLink *string
	Country      *string
	EventType    *string
	Hashtags     *[]string
}

type VideoFilter struct {
	Country   string
	EventType string
	Hashtags  []string
	UserId    string
	Limit     int
	Offset    int
}

func (f *VideoFilter) IsEmpty() bool {
	return f == nil || (f.Country == "" && f.EventType == "" && len(f.Hashtags) == 0 &&
		f.UserId == "" && f.Limit == 0 && f.Offset == 0)
}

type UserVideoStats struct {
	TotalViews          int64 `json:"totalViews"`
	TotalLikes          int64 `json:"totalLikes"`
	TotalTelegramClicks int64 `json:"totalTelegramClicks"`
	VideoCount          int64 `json:"videoCount"`
}
