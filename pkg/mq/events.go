package mq

// EngagementEvent records a single viewer interaction with a video.
// EventType is one of "like", "unlike", "view", "telegram_click".
type EngagementEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	UserID    string `json:"user_id"`
	VideoID   int64  `json:"video_id"`
	Timestamp int64  `json:"timestamp"`
}

const (
	EventTypeLike          = "like"
	EventTypeUnlike        = "unlike"
	EventTypeView          = "view"
	EventTypeTelegramClick = "telegram_click"
)
