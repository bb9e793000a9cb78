package model

import "time"

type SyncEvent struct {
	ID        uint   `gorm:"primaryKey"`
	EventType string `gorm:"size:64;index;not null"` // customer.created, customer.updated, order.created
	EntityID  int    `gorm:"index;not null"`         // bigcommerce entity id
	Outcome   string `gorm:"size:255"`
	CreatedAt time.Time
}
