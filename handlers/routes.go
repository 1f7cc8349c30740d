package handlers

import (
	"net/http"

	"github.com/s7eamy/learn2-api/middleware"
)

// Routes builds the full REST surface on a ServeMux.
func Routes(h *DBHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Quizzes
	mux.HandleFunc("POST /quizzes", h.CreateQuiz)
	mux.HandleFunc("GET /quizzes", h.ListQuizzes)
	mux.HandleFunc("GET /quizzes/{id}", h.GetQuiz)
	mux.HandleFunc("PUT /quizzes/{id}", h.UpdateQuiz)
	mux.HandleFunc("DELETE /quizzes/{id}", h.DeleteQuiz)

	// Questions nested under a quiz
	mux.HandleFunc("GET /quizzes/{quizID}/questions", h.ListQuestions)
	mux.HandleFunc("POST /quizzes/{quizID}/questions", h.CreateQuestion)
	mux.HandleFunc("PUT /quizzes/{quizID}/questions/{id}", h.UpdateQuestion)
	mux.HandleFunc("DELETE /quizzes/{quizID}/questions/{id}", h.DeleteQuestion)

	// Flashcard sets and cards
	mux.HandleFunc("POST /sets", h.CreateSet)
	mux.HandleFunc("GET /sets", h.ListSets)
	mux.HandleFunc("GET /sets/{id}", h.GetSet)
	mux.HandleFunc("DELETE /sets/{id}", h.DeleteSet)
	mux.HandleFunc("GET /sets/{setID}/cards", h.ListCards)
	mux.HandleFunc("POST /sets/{setID}/cards", h.CreateCard)
	mux.HandleFunc("DELETE /sets/{setID}/cards/{cardID}", h.DeleteCard)

	// Attempt logging
	mux.HandleFunc("POST /sets/{setID}/attempts", h.CreateSetAttempt)
	mux.HandleFunc("POST /quizzes/{quizID}/attempts", h.CreateQuizAttempt)

	// Auth
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("GET /auth/user", middleware.WithSession(h.DB, h.GetCurrentUser))
	mux.HandleFunc("GET /auth/logout", middleware.WithSession(h.DB, h.Logout))

	// Statistics
	mux.HandleFunc("GET /statistics", h.GetStatistics)

	return mux
}
