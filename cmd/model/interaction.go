package model

import "time"

type Comment struct {
	CommentId int64     `json:"id"`
	VideoId   int64     `json:"videoId"`
	UserId    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
