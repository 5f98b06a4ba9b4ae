package util

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrQuestionNotFound     = errors.New("question not found in session")
	ErrImageNotInQuestion   = errors.New("image does not belong to question")
	ErrEmptyParticipantName = errors.New("participant name must not be empty")
	ErrNoQuestions          = errors.New("no questions found, ensure the root directory has subfolders with images")
	ErrUnknownAnswerMode    = errors.New("unknown answer mode")
)
