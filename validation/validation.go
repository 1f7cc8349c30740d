// Package validation holds the pure field validators shared by the resource
// handlers. Validators run before any database access; a non-nil error means
// the request is rejected with 400 and no side effect happens.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultMaxLength bounds names and question text.
	DefaultMaxLength = 100
	// AnswerMaxLength bounds answer option text.
	AnswerMaxLength = 500
)

// AnswerInput is the wire shape of one answer option. IsCorrect is a pointer
// so a missing boolean is distinguishable from false.
type AnswerInput struct {
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"isCorrect"`
}

// String checks that value is non-empty after trimming and no longer than
// maxLength. fieldName is used in the returned message.
func String(value, fieldName string, maxLength int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("%s must be a non-empty string", fieldName)
	}
	if len(trimmed) > maxLength {
		return fmt.Errorf("%s must be at most %d characters", fieldName, maxLength)
	}
	return nil
}

// ID parses raw as a positive integer identifier.
func ID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("ID must be a positive integer")
	}
	return uint(id), nil
}

// Answers checks the answer list for a question: at least two options, each
// with text and an explicit correctness flag, and at least one correct.
func Answers(answers []AnswerInput) error {
	if len(answers) < 2 {
		return fmt.Errorf("a question must have at least 2 answers")
	}
	hasCorrect := false
	for i, a := range answers {
		if a.Text == nil {
			return fmt.Errorf("answer %d must have a text field", i+1)
		}
		if err := String(*a.Text, fmt.Sprintf("answer %d text", i+1), AnswerMaxLength); err != nil {
			return err
		}
		if a.IsCorrect == nil {
			return fmt.Errorf("answer %d must have a boolean isCorrect field", i+1)
		}
		if *a.IsCorrect {
			hasCorrect = true
		}
	}
	if !hasCorrect {
		return fmt.Errorf("at least one answer must be marked correct")
	}
	return nil
}
