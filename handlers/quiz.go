package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/s7eamy/learn2-api/models"
	"github.com/s7eamy/learn2-api/validation"
)

func (db *DBHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	if err := validation.String(req.Name, "Quiz name", validation.DefaultMaxLength); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz := models.Quiz{Name: strings.TrimSpace(req.Name)}
	if err := db.Create(&quiz).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      quiz.ID,
		"name":    quiz.Name,
	})
}

func (db *DBHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	var quizzes []models.Quiz
	if err := db.Find(&quizzes).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(quizzes) == 0 {
		quizzes = []models.Quiz{}
	}
	respondJSON(w, http.StatusOK, quizzes)
}

func (db *DBHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ID(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Quiz not found")
		return
	}
	respondJSON(w, http.StatusOK, quiz)
}

func (db *DBHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ID(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	var req struct {
		Name     string `json:"name"`
		IsPublic *bool  `json:"isPublic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	if err := validation.String(req.Name, "Quiz name", validation.DefaultMaxLength); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.IsPublic == nil {
		respondError(w, http.StatusBadRequest, "isPublic must be a boolean")
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	quiz.Name = strings.TrimSpace(req.Name)
	quiz.IsPublic = *req.IsPublic
	if err := db.Save(&quiz).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"id":       quiz.ID,
		"name":     quiz.Name,
		"isPublic": quiz.IsPublic,
	})
}

// DeleteQuiz removes a quiz together with its questions and answers. SQLite
// does not enforce the declared cascades without the foreign-key pragma, so
// the children are deleted explicitly inside one transaction.
func (db *DBHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ID(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		respondError(w, http.StatusInternalServerError, tx.Error.Error())
		return
	}

	questionIDs := tx.Model(&models.Question{}).Select("id").Where("quiz_id = ?", quiz.ID)
	if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := tx.Delete(&quiz).Error; err != nil {
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
