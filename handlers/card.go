package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/s7eamy/learn2-api/models"
	"github.com/s7eamy/learn2-api/validation"
)

// ListCards returns every card in a set. There is no existence check on the
// set; an unknown set just yields an empty list.
func (db *DBHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	setID, err := validation.ID(r.PathValue("setID"))
	if err != nil {
		respondJSON(w, http.StatusOK, []models.Flashcard{})
		return
	}

	var cards []models.Flashcard
	if err := db.Where("set_id = ?", setID).Find(&cards).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(cards) == 0 {
		cards = []models.Flashcard{}
	}
	respondJSON(w, http.StatusOK, cards)
}

// CreateCard inserts a card without validating its fields, then re-queries the
// row by ID so the response carries the authoritative column values.
func (db *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	setID, err := validation.ID(r.PathValue("setID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid set ID")
		return
	}

	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	card := models.Flashcard{
		SetID:    setID,
		Question: req.Question,
		Answer:   req.Answer,
	}
	if err := db.Create(&card).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var created models.Flashcard
	if err := db.First(&created, card.ID).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, created)
}

// DeleteCard deletes by compound match and reports success even when no row
// matched, making repeated deletes idempotent.
func (db *DBHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	// Malformed IDs parse to zero, match nothing, and still succeed.
	setID, _ := validation.ID(r.PathValue("setID"))
	cardID, _ := validation.ID(r.PathValue("cardID"))

	result := db.Where("id = ? AND set_id = ?", cardID, setID).Delete(&models.Flashcard{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
