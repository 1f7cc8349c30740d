package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/s7eamy/learn2-api/models"
	"github.com/s7eamy/learn2-api/validation"
)

// CreateSet inserts a flashcard set. Titles are deliberately unvalidated;
// empty titles are allowed.
func (db *DBHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	set := models.FlashcardSet{Title: req.Title}
	if err := db.Create(&set).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"title":   set.Title,
		"id":      set.ID,
	})
}

func (db *DBHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	var sets []models.FlashcardSet
	if err := db.Find(&sets).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(sets) == 0 {
		sets = []models.FlashcardSet{}
	}
	respondJSON(w, http.StatusOK, sets)
}

func (db *DBHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	// Set lookups answer 404 even for malformed IDs; no 400 here.
	id, err := validation.ID(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Set not found")
		return
	}

	var set models.FlashcardSet
	if err := db.First(&set, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Set not found")
		return
	}
	respondJSON(w, http.StatusOK, set)
}

// DeleteSet removes a set and its cards in one transaction so cards are never
// orphaned.
func (db *DBHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ID(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Set not found")
		return
	}

	var set models.FlashcardSet
	if err := db.First(&set, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Set not found")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		respondError(w, http.StatusInternalServerError, tx.Error.Error())
		return
	}

	if err := tx.Where("set_id = ?", set.ID).Delete(&models.Flashcard{}).Error; err != nil {
		tx.Rollback()
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := tx.Delete(&set).Error; err != nil {
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
