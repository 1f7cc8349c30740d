package models

import "time"

// Quiz represents a collection of multiple-choice questions.
type Quiz struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	IsPublic  bool      `gorm:"default:false" json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`

	Questions []Question `gorm:"foreignKey:QuizID" json:"-"`
}
