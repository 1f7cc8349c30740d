package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/s7eamy/learn2-api/models"
	"github.com/s7eamy/learn2-api/validation"
	"gorm.io/gorm"
)

type questionRequest struct {
	Text    string                   `json:"text"`
	Answers []validation.AnswerInput `json:"answers"`
}

// answerEcho mirrors the request input in create/update responses; assigned
// answer IDs are not re-queried.
type answerEcho struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type questionBody struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Answers []answerEcho `json:"answers"`
}

type answerView struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type questionView struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Answers []answerView `json:"answers"`
}

func (db *DBHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	quizID, err := validation.ID(r.PathValue("quizID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	var questions []models.Question
	result := db.
		Preload("Answers", func(tx *gorm.DB) *gorm.DB { return tx.Order("answers.id") }).
		Where("quiz_id = ?", quiz.ID).
		Order("id").
		Find(&questions)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}

	// Answerless questions keep an empty answers array instead of null.
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		view := questionView{ID: q.ID, Text: q.Text, Answers: []answerView{}}
		for _, a := range q.Answers {
			view.Answers = append(view.Answers, answerView{
				ID:        a.ID,
				Text:      a.Text,
				IsCorrect: a.IsCorrect,
			})
		}
		views = append(views, view)
	}

	respondJSON(w, http.StatusOK, views)
}

func (db *DBHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := validation.ID(r.PathValue("quizID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	if err := validation.String(req.Text, "Question text", validation.DefaultMaxLength); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.Answers(req.Answers); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	question := models.Question{
		QuizID: quizID,
		Text:   strings.TrimSpace(req.Text),
	}

	tx := db.Begin()
	if tx.Error != nil {
		respondError(w, http.StatusInternalServerError, tx.Error.Error())
		return
	}

	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	echo, rows := buildAnswers(question.ID, req.Answers)
	if err := tx.Create(&rows).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, questionBody{
		ID:      question.ID,
		Text:    question.Text,
		Answers: echo,
	})
}

// UpdateQuestion replaces the question text and its whole answer list. The
// delete-then-reinsert runs in one transaction so a concurrent read never
// observes the question with no answers.
func (db *DBHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := validation.ID(r.PathValue("quizID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}
	questionID, err := validation.ID(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	if err := validation.String(req.Text, "Question text", validation.DefaultMaxLength); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.Answers(req.Answers); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var question models.Question
	if err := db.Where("id = ? AND quiz_id = ?", questionID, quizID).First(&question).Error; err != nil {
		respondError(w, http.StatusNotFound, "Question not found in this quiz")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		respondError(w, http.StatusInternalServerError, tx.Error.Error())
		return
	}

	question.Text = strings.TrimSpace(req.Text)
	if err := tx.Save(&question).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	echo, rows := buildAnswers(question.ID, req.Answers)
	if err := tx.Create(&rows).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, questionBody{
		ID:      question.ID,
		Text:    question.Text,
		Answers: echo,
	})
}

func (db *DBHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := validation.ID(r.PathValue("quizID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}
	questionID, err := validation.ID(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var question models.Question
	if err := db.Where("id = ? AND quiz_id = ?", questionID, quizID).First(&question).Error; err != nil {
		respondError(w, http.StatusNotFound, "Question not found in this quiz")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		respondError(w, http.StatusInternalServerError, tx.Error.Error())
		return
	}

	if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := tx.Delete(&question).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// buildAnswers turns validated answer input into trimmed rows for insertion
// and the echo objects returned to the client.
func buildAnswers(questionID uint, answers []validation.AnswerInput) ([]answerEcho, []models.Answer) {
	echo := make([]answerEcho, 0, len(answers))
	rows := make([]models.Answer, 0, len(answers))
	for _, a := range answers {
		text := strings.TrimSpace(*a.Text)
		echo = append(echo, answerEcho{Text: text, IsCorrect: *a.IsCorrect})
		rows = append(rows, models.Answer{
			QuestionID: questionID,
			Text:       text,
			IsCorrect:  *a.IsCorrect,
		})
	}
	return echo, rows
}
