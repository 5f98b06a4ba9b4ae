package controller

import (
	"errors"
	"fmt"
	"net/http"

	"image_study_backend/internal/model"
	"image_study_backend/internal/service"
	"image_study_backend/internal/util"
	"image_study_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessions *service.SessionService
	export   *service.ExportService
}

func NewSessionController(sessions *service.SessionService, export *service.ExportService) *SessionController {
	return &SessionController{sessions: sessions, export: export}
}

type StartSessionRequest struct {
	ParticipantName  string `json:"participantName" binding:"required"`
	ShuffleQuestions *bool  `json:"shuffleQuestions"`
	ShuffleImages    *bool  `json:"shuffleImages"`
}

type AnswerRequest struct {
	Folder string `json:"folder" binding:"required"`
	Mode   string `json:"mode" binding:"required"`
	File   string `json:"file"`
}

// SessionSnapshot is the client-facing view of a session: the current
// question plus control state derived from the canonical answer record.
type SessionSnapshot struct {
	ID            string          `json:"id"`
	Participant   string          `json:"participant"`
	Total         int             `json:"total"`
	CurrentIndex  int             `json:"currentIndex"`
	Question      *model.Question `json:"question"`
	CurrentAnswer *model.Answer   `json:"currentAnswer,omitempty"`
	CurrentWorst  string          `json:"currentWorst,omitempty"`
	Answered      int             `json:"answered"`
}

func snapshot(sess *model.Session) *SessionSnapshot {
	sess.Lock()
	defer sess.Unlock()

	q := sess.Current()
	snap := &SessionSnapshot{
		ID:           sess.ID,
		Participant:  sess.Participant,
		Total:        len(sess.Questions),
		CurrentIndex: sess.CurrentIndex,
		Question:     q,
		Answered:     sess.Answered(),
	}
	if ans, ok := sess.Answers[q.Folder]; ok {
		snap.CurrentAnswer = &ans
		snap.CurrentWorst = ans.Worst(q)
	}
	return snap
}

// StartSession godoc
// @Summary Start or refresh a study session
// @Description Loads the catalog, applies the seeded shuffles for the participant name and returns a fresh session. Prior answers for the participant are discarded.
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body StartSessionRequest true "participant name and shuffle options"
// @Success 201 {object} util.Response{data=SessionSnapshot}
// @Failure 400 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Both shuffle options default to enabled.
	shuffleQuestions := req.ShuffleQuestions == nil || *req.ShuffleQuestions
	shuffleImages := req.ShuffleImages == nil || *req.ShuffleImages

	sess, err := c.sessions.Start(req.ParticipantName, shuffleQuestions, shuffleImages)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	monitoring.SessionsStarted.Inc()
	util.Created(ctx, snapshot(sess))
}

// GetSession godoc
// @Summary Get the current session state
// @Tags sessions
// @Produce json
// @Param id path string true "session ID"
// @Success 200 {object} util.Response{data=SessionSnapshot}
// @Failure 404 {object} util.Response
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	sess, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Success(ctx, snapshot(sess))
}

// NextQuestion godoc
// @Summary Advance to the next question
// @Description Clamped to the last question; calling at the boundary is a no-op.
// @Tags sessions
// @Produce json
// @Param id path string true "session ID"
// @Success 200 {object} util.Response{data=SessionSnapshot}
// @Failure 404 {object} util.Response
// @Router /sessions/{id}/next [post]
func (c *SessionController) NextQuestion(ctx *gin.Context) {
	sess, err := c.sessions.Next(ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Success(ctx, snapshot(sess))
}

// PreviousQuestion godoc
// @Summary Go back to the previous question
// @Description Clamped to the first question; calling at the boundary is a no-op.
// @Tags sessions
// @Produce json
// @Param id path string true "session ID"
// @Success 200 {object} util.Response{data=SessionSnapshot}
// @Failure 404 {object} util.Response
// @Router /sessions/{id}/previous [post]
func (c *SessionController) PreviousQuestion(ctx *gin.Context) {
	sess, err := c.sessions.Previous(ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Success(ctx, snapshot(sess))
}

// RecordAnswer godoc
// @Summary Record an answer for a folder
// @Description Records best, worst_equal or none for the folder. Exactly one answer variant is kept per folder; a new selection replaces the old one.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session ID"
// @Param body body AnswerRequest true "folder, mode (best|worst|none) and file"
// @Success 200 {object} util.Response{data=SessionSnapshot}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /sessions/{id}/answers [post]
func (c *SessionController) RecordAnswer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := ctx.Param("id")
	var (
		sess *model.Session
		err  error
	)
	switch req.Mode {
	case "best":
		sess, err = c.sessions.SelectBest(id, req.Folder, req.File)
	case "worst", "worst_equal":
		sess, err = c.sessions.SelectWorst(id, req.Folder, req.File)
	case "none":
		sess, err = c.sessions.SelectNone(id, req.Folder)
	default:
		util.BadRequest(ctx, util.ErrUnknownAnswerMode.Error())
		return
	}
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Success(ctx, snapshot(sess))
}

// GetResults godoc
// @Summary Get result rows and progress
// @Description Returns one row per question in catalog order, with empty selected_file for unanswered folders.
// @Tags sessions
// @Produce json
// @Param id path string true "session ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /sessions/{id}/results [get]
func (c *SessionController) GetResults(ctx *gin.Context) {
	sess, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	rows := c.export.Rows(sess)
	sess.Lock()
	answered := sess.Answered()
	total := len(sess.Questions)
	sess.Unlock()

	util.Success(ctx, gin.H{
		"rows":     rows,
		"answered": answered,
		"total":    total,
	})
}

// ExportResults godoc
// @Summary Download the results CSV
// @Description Builds the CSV, best-effort saves a timestamped copy under the study root and streams the same bytes as a download. A failed disk save is reported via X-Results-Saved/X-Save-Warning headers and never blocks the download.
// @Tags sessions
// @Produce text/csv
// @Param id path string true "session ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} util.Response
// @Router /sessions/{id}/export [get]
func (c *SessionController) ExportResults(ctx *gin.Context) {
	sess, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	exp, err := c.export.Export(sess, c.sessions.Root())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	saved := exp.SaveWarning == ""
	monitoring.ResultsExported.WithLabelValues(fmt.Sprintf("%t", saved)).Inc()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	ctx.Header("X-Results-Saved", fmt.Sprintf("%t", saved))
	if !saved {
		ctx.Header("X-Save-Warning", exp.SaveWarning)
	}
	ctx.Data(http.StatusOK, "text/csv", exp.Data)
}

func (c *SessionController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrEmptyParticipantName),
		errors.Is(err, util.ErrImageNotInQuestion),
		errors.Is(err, util.ErrUnknownAnswerMode):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNoQuestions):
		util.UnprocessableEntity(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
