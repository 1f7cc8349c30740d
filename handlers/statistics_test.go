package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/s7eamy/learn2-api/models"
)

func TestStatisticsEmpty(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, "GET", "/statistics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}

	var report struct {
		FlashcardAttemptsLast7Days []dailyCount  `json:"flashcardAttemptsLast7Days"`
		RatingCounts               []ratingCount `json:"ratingCounts"`
		SetsWithoutAttempts        int64         `json:"setsWithoutAttempts"`
		QuizAttemptsLast7Days      []dailyCount  `json:"quizAttemptsLast7Days"`
		TotalCorrectAnswers        int           `json:"totalCorrectAnswers"`
		TotalIncorrectAnswers      int           `json:"totalIncorrectAnswers"`
	}
	decodeBody(t, rec, &report)

	if report.FlashcardAttemptsLast7Days == nil || report.RatingCounts == nil || report.QuizAttemptsLast7Days == nil {
		t.Error("empty report should carry empty arrays, not null")
	}
	if report.TotalCorrectAnswers != 0 || report.TotalIncorrectAnswers != 0 {
		t.Errorf("empty database reported totals %d/%d", report.TotalCorrectAnswers, report.TotalIncorrectAnswers)
	}
}

func TestStatisticsReport(t *testing.T) {
	mux, db := newTestMux(t)

	studied := createSet(t, mux, "Studied")
	createSet(t, mux, "Untouched")
	quizID := createQuiz(t, mux, "Scored Quiz")

	for _, rating := range []int{5, 5, 3} {
		rec := doJSON(t, mux, "POST", fmt.Sprintf("/sets/%d/attempts", studied), map[string]int{"rating": rating})
		if rec.Code != http.StatusCreated {
			t.Fatalf("set attempt returned %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, mux, "POST", fmt.Sprintf("/quizzes/%d/attempts", quizID), map[string]int{
		"correct": 7, "incorrect": 3,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("quiz attempt returned %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, mux, "POST", fmt.Sprintf("/quizzes/%d/attempts", quizID), map[string]int{
		"correct": 2, "incorrect": 1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("quiz attempt returned %d: %s", rec.Code, rec.Body.String())
	}

	// An old attempt outside the 7-day window must not appear in the daily
	// counts but still counts toward the rating totals.
	old := models.FlashcardAttempt{SetID: studied, Rating: 1}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("failed to seed old attempt: %v", err)
	}
	if err := db.Model(&old).Update("attempt_date", time.Now().AddDate(0, 0, -30)).Error; err != nil {
		t.Fatalf("failed to backdate attempt: %v", err)
	}

	rec = doJSON(t, mux, "GET", "/statistics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("statistics returned %d: %s", rec.Code, rec.Body.String())
	}

	var report struct {
		FlashcardAttemptsLast7Days []dailyCount  `json:"flashcardAttemptsLast7Days"`
		RatingCounts               []ratingCount `json:"ratingCounts"`
		SetsWithoutAttempts        int64         `json:"setsWithoutAttempts"`
		QuizAttemptsLast7Days      []dailyCount  `json:"quizAttemptsLast7Days"`
		TotalCorrectAnswers        int           `json:"totalCorrectAnswers"`
		TotalIncorrectAnswers      int           `json:"totalIncorrectAnswers"`
	}
	decodeBody(t, rec, &report)

	var weekTotal int
	for _, d := range report.FlashcardAttemptsLast7Days {
		weekTotal += d.Count
	}
	if weekTotal != 3 {
		t.Errorf("got %d flashcard attempts in window, want 3", weekTotal)
	}

	ratingTotals := map[int]int{}
	for _, rc := range report.RatingCounts {
		ratingTotals[rc.Rating] = rc.Count
	}
	if ratingTotals[5] != 2 || ratingTotals[3] != 1 || ratingTotals[1] != 1 {
		t.Errorf("unexpected rating counts: %v", ratingTotals)
	}

	if report.SetsWithoutAttempts != 1 {
		t.Errorf("got %d sets without attempts, want 1", report.SetsWithoutAttempts)
	}

	var quizWeekTotal int
	for _, d := range report.QuizAttemptsLast7Days {
		quizWeekTotal += d.Count
	}
	if quizWeekTotal != 2 {
		t.Errorf("got %d quiz attempts in window, want 2", quizWeekTotal)
	}

	if report.TotalCorrectAnswers != 9 || report.TotalIncorrectAnswers != 4 {
		t.Errorf("got totals %d/%d, want 9/4", report.TotalCorrectAnswers, report.TotalIncorrectAnswers)
	}
}

func TestStatisticsQueryFailure(t *testing.T) {
	mux, db := newTestMux(t)

	// Make every query fail; one rejection is enough to fail the whole
	// aggregate with a 500.
	conn, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying connection: %v", err)
	}
	conn.Close()

	rec := doJSON(t, mux, "GET", "/statistics", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &resp)
	if resp.Error == "" {
		t.Error("500 response should carry the engine error message")
	}
}

func TestAttemptUnknownParents(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, "POST", "/sets/999/attempts", map[string]int{"rating": 5})
	if rec.Code != http.StatusNotFound {
		t.Errorf("set attempt: got %d, want 404", rec.Code)
	}
	rec = doJSON(t, mux, "POST", "/quizzes/999/attempts", map[string]int{"correct": 1, "incorrect": 1})
	if rec.Code != http.StatusNotFound {
		t.Errorf("quiz attempt: got %d, want 404", rec.Code)
	}
}
