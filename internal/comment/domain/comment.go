package domain

import "time"

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	VideoID   string    `json:"video" gorm:"index;not null"`
	OwnerID   string    `json:"owner" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
