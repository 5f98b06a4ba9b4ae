package repository

import (
	"testing"

	"image_study_backend/internal/model"
	"image_study_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	sess := &model.Session{ID: "abc", Participant: "ofek"}
	store.Put(sess)
	assert.Equal(t, 1, store.Count())

	got, err := store.Get("abc")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	store.Delete("abc")
	assert.Equal(t, 0, store.Count())
	_, err = store.Get("abc")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
