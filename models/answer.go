package models

// Answer is one option of a question. A persisted question always has at
// least one answer with IsCorrect set; validation enforces this at write time.
type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
	Text       string `gorm:"not null;size:500" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`

	Question Question `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
