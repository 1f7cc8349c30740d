package models

// Flashcard represents an individual card inside a set.
type Flashcard struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SetID    uint   `gorm:"not null;index" json:"setId"`
	Question string `gorm:"size:1000" json:"question"`
	Answer   string `gorm:"size:1000" json:"answer"`

	FlashcardSet FlashcardSet `gorm:"foreignKey:SetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
