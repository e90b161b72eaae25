package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrUnknownProfile = fmt.Errorf("%w: profile", ErrNotFound)

	// Answer validation errors
	ErrAnswersShape    = errors.New("answers must map question ids to option values")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidOption   = errors.New("invalid option")
)

// UnknownProfileError reports a profile id that is not registered.
type UnknownProfileError struct {
	ProfileID string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q", e.ProfileID)
}

func (e *UnknownProfileError) Unwrap() error { return ErrUnknownProfile }

// UnknownQuestionsError lists every answer key that is not part of the
// profile's question catalog. All offending ids are collected, not just the
// first one encountered.
type UnknownQuestionsError struct {
	QuestionIDs []string
}

func (e *UnknownQuestionsError) Error() string {
	return fmt.Sprintf("unknown questions in answers: %s", strings.Join(e.QuestionIDs, ", "))
}

func (e *UnknownQuestionsError) Unwrap() error { return ErrUnknownQuestion }

// InvalidOptionError reports an answer value outside the question's declared
// option set.
type InvalidOptionError struct {
	QuestionID string
	Value      string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid answer for %q: %q", e.QuestionID, e.Value)
}

func (e *InvalidOptionError) Unwrap() error { return ErrInvalidOption }

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAnswerError(err error) bool {
	return errors.Is(err, ErrAnswersShape) ||
		errors.Is(err, ErrUnknownQuestion) ||
		errors.Is(err, ErrInvalidOption)
}
