package models

import "time"

// FlashcardSet represents a collection of flashcards. Titles are free-form
// and may be empty.
type FlashcardSet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100" json:"title"`
	CreatedAt time.Time `json:"createdAt"`

	Flashcards []Flashcard `gorm:"foreignKey:SetID" json:"-"`
}
