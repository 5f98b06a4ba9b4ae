package service

import (
	"testing"

	"image_study_backend/internal/model"
	"image_study_backend/internal/repository"
	"image_study_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourFolderLayout() map[string][]string {
	return map[string][]string{
		"Set A": {"left.png", "right.png"},
		"Set B": {"left.png", "right.png"},
		"Set C": {"left.png", "right.png"},
		"Set D": {"left.png", "right.png"},
	}
}

func newSessionService(t *testing.T, layout map[string][]string) *SessionService {
	t.Helper()
	root := writeFixture(t, layout)
	catalog := NewCatalogService(testAllowlist)
	return NewSessionService(repository.NewSessionStore(), catalog, root)
}

func questionOrder(sess *model.Session) []string {
	order := make([]string, len(sess.Questions))
	for i, q := range sess.Questions {
		order[i] = q.Folder
	}
	return order
}

func TestStartRequiresName(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())

	_, err := svc.Start("   ", true, true)
	assert.ErrorIs(t, err, util.ErrEmptyParticipantName)
}

func TestStartWithEmptyCatalog(t *testing.T) {
	svc := newSessionService(t, map[string][]string{"B": {"readme.txt"}})

	_, err := svc.Start("ofek", true, true)
	assert.ErrorIs(t, err, util.ErrNoQuestions)
}

func TestStartIsDeterministicPerName(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())

	first, err := svc.Start("ofek", true, true)
	require.NoError(t, err)
	second, err := svc.Start("ofek", true, true)
	require.NoError(t, err)

	assert.Equal(t, questionOrder(first), questionOrder(second))
	for i := range first.Questions {
		assert.Equal(t, first.Questions[i].Images, second.Questions[i].Images)
	}
}

func TestStartKeepsCatalogOrderUnshuffled(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())

	sess, err := svc.Start("ofek", true, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Set A", "Set B", "Set C", "Set D"}, sess.CatalogOrder)
}

func TestStartWithoutShuffleKeepsSortedOrder(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())

	sess, err := svc.Start("ofek", false, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Set A", "Set B", "Set C", "Set D"}, questionOrder(sess))
	assert.Equal(t, []string{"left.png", "right.png"}, sess.Questions[0].Images)
}

func TestStartDiscardsPreviousAnswers(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())

	first, err := svc.Start("ofek", true, true)
	require.NoError(t, err)
	_, err = svc.SelectBest(first.ID, "Set A", "left.png")
	require.NoError(t, err)

	second, err := svc.Start("ofek", true, true)
	require.NoError(t, err)
	assert.Empty(t, second.Answers)
	assert.Equal(t, 0, second.CurrentIndex)
}

func TestSelectBestReplacesPriorAnswer(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())
	sess, err := svc.Start("ofek", false, false)
	require.NoError(t, err)

	_, err = svc.SelectBest(sess.ID, "Set A", "left.png")
	require.NoError(t, err)
	_, err = svc.SelectBest(sess.ID, "Set A", "right.png")
	require.NoError(t, err)

	require.Len(t, sess.Answers, 1)
	assert.Equal(t, model.Answer{Mode: model.AnswerBest, Best: "right.png"}, sess.Answers["Set A"])
}

func TestAnswerVariantsAreExclusive(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())
	sess, err := svc.Start("ofek", false, false)
	require.NoError(t, err)

	_, err = svc.SelectBest(sess.ID, "Set A", "left.png")
	require.NoError(t, err)
	_, err = svc.SelectWorst(sess.ID, "Set A", "left.png")
	require.NoError(t, err)

	ans := sess.Answers["Set A"]
	assert.Equal(t, model.AnswerWorstEqual, ans.Mode)
	assert.Empty(t, ans.Best)
	assert.Equal(t, []string{"right.png"}, ans.Others)

	_, err = svc.SelectNone(sess.ID, "Set A")
	require.NoError(t, err)
	assert.Equal(t, model.Answer{Mode: model.AnswerNone}, sess.Answers["Set A"])
	require.Len(t, sess.Answers, 1)
}

func TestSelectValidatesFolderAndImage(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())
	sess, err := svc.Start("ofek", false, false)
	require.NoError(t, err)

	_, err = svc.SelectBest(sess.ID, "Set Z", "left.png")
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	_, err = svc.SelectBest(sess.ID, "Set A", "extra.png")
	assert.ErrorIs(t, err, util.ErrImageNotInQuestion)

	_, err = svc.SelectBest("missing-session", "Set A", "left.png")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestNavigationClampsAtBounds(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())
	sess, err := svc.Start("ofek", false, false)
	require.NoError(t, err)

	// Previous at the first question is a no-op.
	_, err = svc.Previous(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.CurrentIndex)

	for i := 0; i < 10; i++ {
		_, err = svc.Next(sess.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, len(sess.Questions)-1, sess.CurrentIndex)

	_, err = svc.Previous(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, len(sess.Questions)-2, sess.CurrentIndex)
}

func TestWorstEqualDerivesWorstImage(t *testing.T) {
	svc := newSessionService(t, fourFolderLayout())
	sess, err := svc.Start("ofek", false, false)
	require.NoError(t, err)

	_, err = svc.SelectWorst(sess.ID, "Set A", "left.png")
	require.NoError(t, err)

	q := sess.Question("Set A")
	assert.Equal(t, "left.png", sess.Answers["Set A"].Worst(q))
}
