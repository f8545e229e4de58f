package domain

import "time"

type Subscription struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SubscriberID string    `json:"subscriber" gorm:"uniqueIndex:idx_subscriber_channel;not null"`
	ChannelID    string    `json:"channel" gorm:"uniqueIndex:idx_subscriber_channel;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
