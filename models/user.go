package models

import "time"

// User represents a registered account. The salt and password hash never
// leave the server.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null;size:100" json:"username"`
	Salt           []byte    `gorm:"not null" json:"-"`
	HashedPassword []byte    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`

	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
}
