package domain

import "errors"

var (
	// ErrCourseNotFound indicates the course record could not be loaded.
	ErrCourseNotFound = errors.New("course not found")
	// ErrQuestionNotFound indicates a question ID is not part of the active set.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrOptionNotFound indicates an option index is outside the question's options.
	ErrOptionNotFound = errors.New("option not found")
	// ErrInvalidLevel is returned for a difficulty outside easy/intermediate/advanced.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrInvalidQuestion marks question bank content that breaks its invariants.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrMalformedRecord marks persisted JSON that could not be decoded.
	ErrMalformedRecord = errors.New("malformed persisted record")
)
