package handlers

import (
	"net/http"
	"time"

	"github.com/s7eamy/learn2-api/models"
	"golang.org/x/sync/errgroup"
)

type dailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ratingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// GetStatistics runs five independent read queries concurrently and merges
// their results into one report. Any single failure fails the whole request.
func (db *DBHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	weekAgo := time.Now().AddDate(0, 0, -7)

	var (
		flashcardDaily      []dailyCount
		ratingCounts        []ratingCount
		setsWithoutAttempts int64
		quizDaily           []dailyCount
		totals              struct {
			Correct   int `json:"correct"`
			Incorrect int `json:"incorrect"`
		}
	)

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		return db.WithContext(ctx).
			Model(&models.FlashcardAttempt{}).
			Select("DATE(attempt_date) AS date, COUNT(*) AS count").
			Where("attempt_date >= ?", weekAgo).
			Group("DATE(attempt_date)").
			Order("date").
			Scan(&flashcardDaily).Error
	})

	g.Go(func() error {
		return db.WithContext(ctx).
			Model(&models.FlashcardAttempt{}).
			Select("rating, COUNT(*) AS count").
			Group("rating").
			Order("rating").
			Scan(&ratingCounts).Error
	})

	g.Go(func() error {
		attempted := db.Model(&models.FlashcardAttempt{}).Select("set_id")
		return db.WithContext(ctx).
			Model(&models.FlashcardSet{}).
			Where("id NOT IN (?)", attempted).
			Count(&setsWithoutAttempts).Error
	})

	g.Go(func() error {
		return db.WithContext(ctx).
			Model(&models.QuizAttempt{}).
			Select("DATE(attempt_date) AS date, COUNT(*) AS count").
			Where("attempt_date >= ?", weekAgo).
			Group("DATE(attempt_date)").
			Order("date").
			Scan(&quizDaily).Error
	})

	g.Go(func() error {
		return db.WithContext(ctx).
			Model(&models.QuizAttempt{}).
			Select("COALESCE(SUM(correct_count), 0) AS correct, COALESCE(SUM(incorrect_count), 0) AS incorrect").
			Scan(&totals).Error
	})

	if err := g.Wait(); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if flashcardDaily == nil {
		flashcardDaily = []dailyCount{}
	}
	if ratingCounts == nil {
		ratingCounts = []ratingCount{}
	}
	if quizDaily == nil {
		quizDaily = []dailyCount{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"flashcardAttemptsLast7Days": flashcardDaily,
		"ratingCounts":               ratingCounts,
		"setsWithoutAttempts":        setsWithoutAttempts,
		"quizAttemptsLast7Days":      quizDaily,
		"totalCorrectAnswers":        totals.Correct,
		"totalIncorrectAnswers":      totals.Incorrect,
	})
}
