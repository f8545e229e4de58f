package domain

import "time"

type Video struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	VideoFile   string    `json:"videoFile" gorm:"not null"`
	Thumbnail   string    `json:"thumbnail" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views" gorm:"default:0"`
	IsPublished bool      `json:"isPublished" gorm:"default:true"`
	OwnerID     string    `json:"owner" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WatchHistoryEntry records one playback event per fetch.
type WatchHistoryEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user" gorm:"index;not null"`
	VideoID   string    `json:"video" gorm:"not null"`
	WatchedAt time.Time `json:"watchedAt"`
}
