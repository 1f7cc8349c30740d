package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/s7eamy/learn2-api/models"
	"github.com/s7eamy/learn2-api/validation"
)

// CreateSetAttempt logs one study pass over a flashcard set. Attempts are
// append-only and feed the statistics report.
func (db *DBHandler) CreateSetAttempt(w http.ResponseWriter, r *http.Request) {
	setID, err := validation.ID(r.PathValue("setID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid set ID")
		return
	}

	var set models.FlashcardSet
	if err := db.First(&set, setID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Set not found")
		return
	}

	var req struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	attempt := models.FlashcardAttempt{SetID: set.ID, Rating: req.Rating}
	if err := db.Create(&attempt).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      attempt.ID,
	})
}

// CreateQuizAttempt logs the correct/incorrect outcome of one quiz run.
func (db *DBHandler) CreateQuizAttempt(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Correct   int `json:"correct"`
		Incorrect int `json:"incorrect"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	attempt := models.QuizAttempt{
		QuizID:         quiz.ID,
		CorrectCount:   req.Correct,
		IncorrectCount: req.Incorrect,
	}
	if err := db.Create(&attempt).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      attempt.ID,
	})
}
