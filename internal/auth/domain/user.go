package domain

import "time"

// User is the credential record. Password and RefreshToken never serialize,
// so every user returned through the API is already sanitized.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName     string    `json:"fullname" gorm:"not null"`
	Password     string    `json:"-" gorm:"not null"`
	Avatar       string    `json:"avatar" gorm:"not null"`
	CoverImage   string    `json:"coverImage,omitempty"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
