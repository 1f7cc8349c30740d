package models

// Question belongs to a quiz and owns its answers. Answers are replaced
// wholesale on update, never patched individually.
type Question struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	QuizID uint   `gorm:"not null;index" json:"quizId"`
	Text   string `gorm:"not null;size:100" json:"text"`

	Quiz    Quiz     `gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"-"`
}
