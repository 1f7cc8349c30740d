package models

import "time"

// Session is a server-side login session. The ID travels inside a signed
// cookie token; deleting the row revokes the token.
type Session struct {
	ID        string    `gorm:"primaryKey;size:100" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
