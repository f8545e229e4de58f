package domain

import "time"

// Like targets either a video or a comment, never both.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	VideoID   string    `json:"video,omitempty" gorm:"index"`
	CommentID string    `json:"comment,omitempty" gorm:"index"`
	LikedByID string    `json:"likedBy" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
