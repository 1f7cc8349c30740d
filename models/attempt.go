package models

import "time"

// FlashcardAttempt logs one study pass over a flashcard set. Append-only;
// consumed by the statistics aggregator.
type FlashcardAttempt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SetID       uint      `gorm:"not null;index" json:"setId"`
	Rating      int       `gorm:"not null" json:"rating"`
	AttemptDate time.Time `gorm:"autoCreateTime" json:"attemptDate"`

	FlashcardSet FlashcardSet `gorm:"foreignKey:SetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// QuizAttempt logs the outcome of one quiz run.
type QuizAttempt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	QuizID         uint      `gorm:"not null;index" json:"quizId"`
	CorrectCount   int       `gorm:"not null" json:"correctCount"`
	IncorrectCount int       `gorm:"not null" json:"incorrectCount"`
	AttemptDate    time.Time `gorm:"autoCreateTime" json:"attemptDate"`

	Quiz Quiz `gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
