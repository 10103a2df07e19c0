package model

import "time"

type User struct {
	UserId          string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageUrl string    `json:"profileImageUrl,omitempty"`
	TelegramLink    string    `json:"telegramLink,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
