package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/s7eamy/learn2-api/auth"
	"github.com/s7eamy/learn2-api/config"
	"github.com/s7eamy/learn2-api/middleware"
	"github.com/s7eamy/learn2-api/models"
	"github.com/s7eamy/learn2-api/validation"
	"gorm.io/gorm"
)

// loginFailedMessage is intentionally identical for unknown users and wrong
// passwords so the endpoint cannot be used to enumerate accounts.
const loginFailedMessage = "Incorrect username or password."

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (db *DBHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	if err := validation.String(req.Username, "Username", validation.DefaultMaxLength); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Password == "" {
		respondError(w, http.StatusBadRequest, "Password must be a non-empty string")
		return
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	user := models.User{
		Username:       req.Username,
		Salt:           salt,
		HashedPassword: auth.HashPassword(req.Password, salt),
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(w, http.StatusConflict, "Username already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("Registered user %s", user.Username)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Registration successful"})
}

func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Could not decode request")
		return
	}

	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		respondError(w, http.StatusUnauthorized, loginFailedMessage)
		return
	}

	if !auth.VerifyPassword(req.Password, user.Salt, user.HashedPassword) {
		respondError(w, http.StatusUnauthorized, loginFailedMessage)
		return
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate session ID")
		return
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(auth.SessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	tokenString, err := auth.CreateSessionToken(session.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		Domain:   config.Env.Domain,
		HttpOnly: true,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.SessionTTL.Seconds()),
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

func (db *DBHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
}

func (db *DBHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session, ok := middleware.SessionFrom(r); ok {
		if err := db.Delete(session).Error; err != nil {
			log.Printf("Error deleting session %s: %v", session.ID, err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   config.Env.Domain,
		HttpOnly: true,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
