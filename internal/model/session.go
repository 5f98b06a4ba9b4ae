package model

import (
	"sync"
	"time"
)

// Session holds one participant's run through the study. Questions carry the
// (possibly shuffled) display order; CatalogOrder keeps the unshuffled folder
// order so exports stay stable regardless of the shuffle options.
//
// A session is the canonical record of answers: control states in the UI are
// always derived from Answers on render, never the other way around.
type Session struct {
	ID           string            `json:"id"`
	Participant  string            `json:"participant"`
	Questions    []Question        `json:"questions"`
	CatalogOrder []string          `json:"catalogOrder"`
	CurrentIndex int               `json:"currentIndex"`
	Answers      map[string]Answer `json:"answers"`
	CreatedAt    time.Time         `json:"createdAt"`

	mu sync.Mutex
}

// Lock serializes mutations of a single session. The HTTP server handles
// requests concurrently even though the study itself is single-user.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

// Question returns the question for folder, or nil when the folder is not
// part of this session.
func (s *Session) Question(folder string) *Question {
	for i := range s.Questions {
		if s.Questions[i].Folder == folder {
			return &s.Questions[i]
		}
	}
	return nil
}

// Current returns the question at CurrentIndex. Sessions are only created
// with at least one question, so Current never fails on a stored session.
func (s *Session) Current() *Question {
	return &s.Questions[s.CurrentIndex]
}

// Answered counts folders with a recorded answer.
func (s *Session) Answered() int {
	return len(s.Answers)
}
