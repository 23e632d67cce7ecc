package models

import "time"

// Order groups the tickets a user booked in one request. Orders are created
// together with their tickets and never structurally mutated afterwards.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null" json:"user_id"`

	User    *User    `json:"-"`
	Tickets []Ticket `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tickets"`
}
