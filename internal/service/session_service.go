package service

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"image_study_backend/internal/model"
	"image_study_backend/internal/repository"
	"image_study_backend/internal/util"

	"github.com/google/uuid"
)

// SessionService owns the session state machine: starting/refreshing a
// session, navigation between questions and recording answers. All mutations
// are serialized per session; the observable behavior is plain sequential
// single-user logic.
type SessionService struct {
	store   *repository.SessionStore
	catalog *CatalogService

	mu   sync.RWMutex
	root string
}

func NewSessionService(store *repository.SessionStore, catalog *CatalogService, root string) *SessionService {
	return &SessionService{store: store, catalog: catalog, root: root}
}

// Root returns the current study root directory.
func (s *SessionService) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// SetRoot re-points the catalog root. Called on config hot reload; running
// sessions keep the paths they were built with.
func (s *SessionService) SetRoot(root string) {
	s.mu.Lock()
	s.root = root
	s.mu.Unlock()
}

// Start builds a fresh session for the participant: loads the catalog,
// applies the seeded shuffles and discards nothing from disk. Starting again
// with the same name reproduces the same ordering but always begins with an
// empty answer set.
func (s *SessionService) Start(name string, shuffleQuestions, shuffleImages bool) (*model.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrEmptyParticipantName
	}

	root := s.Root()
	folders := s.catalog.ListFolders(root)

	display := make([]string, len(folders))
	copy(display, folders)
	if shuffleQuestions {
		SeededShuffle(display, QuestionSeed(name))
	}

	catalogOrder := make([]string, 0, len(folders))
	images := make(map[string][]string, len(folders))
	for _, folder := range folders {
		imgs := s.catalog.ListImages(filepath.Join(root, folder))
		if len(imgs) == 0 {
			continue
		}
		images[folder] = imgs
		catalogOrder = append(catalogOrder, folder)
	}

	questions := make([]model.Question, 0, len(catalogOrder))
	for _, folder := range display {
		imgs, ok := images[folder]
		if !ok {
			continue
		}
		if shuffleImages {
			shuffled := make([]string, len(imgs))
			copy(shuffled, imgs)
			SeededShuffle(shuffled, ImageSeed(name, folder))
			imgs = shuffled
		}
		questions = append(questions, model.Question{
			Folder: folder,
			Path:   filepath.Join(root, folder),
			Images: imgs,
		})
	}

	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}

	sess := &model.Session{
		ID:           uuid.NewString(),
		Participant:  name,
		Questions:    questions,
		CatalogOrder: catalogOrder,
		CurrentIndex: 0,
		Answers:      make(map[string]model.Answer),
		CreatedAt:    time.Now(),
	}
	s.store.Put(sess)
	return sess, nil
}

// Get looks up a session by ID.
func (s *SessionService) Get(id string) (*model.Session, error) {
	return s.store.Get(id)
}

// Next advances to the following question, clamped to the last one. At the
// boundary the call is a no-op.
func (s *SessionService) Next(id string) (*model.Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	if sess.CurrentIndex < len(sess.Questions)-1 {
		sess.CurrentIndex++
	}
	return sess, nil
}

// Previous moves back one question, clamped to the first one.
func (s *SessionService) Previous(id string) (*model.Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	if sess.CurrentIndex > 0 {
		sess.CurrentIndex--
	}
	return sess, nil
}

// SelectBest records image file as the preferred one for folder, replacing
// any previous answer for that folder.
func (s *SessionService) SelectBest(id, folder, file string) (*model.Session, error) {
	return s.record(id, folder, file, model.AnswerBest)
}

// SelectWorst records image file as the single worst for folder. For a
// folder holding the allowlisted pair this asserts the remaining image wins;
// with more images it asserts the rest tie for best.
func (s *SessionService) SelectWorst(id, folder, file string) (*model.Session, error) {
	return s.record(id, folder, file, model.AnswerWorstEqual)
}

// SelectNone records an explicit "no preference" for folder.
func (s *SessionService) SelectNone(id, folder string) (*model.Session, error) {
	return s.record(id, folder, "", model.AnswerNone)
}

func (s *SessionService) record(id, folder, file string, mode model.AnswerMode) (*model.Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	q := sess.Question(folder)
	if q == nil {
		return nil, util.ErrQuestionNotFound
	}

	switch mode {
	case model.AnswerBest:
		if !q.HasImage(file) {
			return nil, util.ErrImageNotInQuestion
		}
		sess.Answers[folder] = model.Answer{Mode: model.AnswerBest, Best: file}
	case model.AnswerWorstEqual:
		if !q.HasImage(file) {
			return nil, util.ErrImageNotInQuestion
		}
		sess.Answers[folder] = model.Answer{Mode: model.AnswerWorstEqual, Others: q.ImagesExcept(file)}
	case model.AnswerNone:
		sess.Answers[folder] = model.Answer{Mode: model.AnswerNone}
	default:
		return nil, util.ErrUnknownAnswerMode
	}
	return sess, nil
}
