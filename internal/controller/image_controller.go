package controller

import (
	"net/http"
	"path/filepath"

	"image_study_backend/internal/service"
	"image_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ImageController struct {
	sessions *service.SessionService
	images   *service.ImageService
}

func NewImageController(sessions *service.SessionService, images *service.ImageService) *ImageController {
	return &ImageController{sessions: sessions, images: images}
}

// GetImage godoc
// @Summary Serve one catalog image
// @Description Serves the image after validating folder and file against the session's catalog. Unreadable or corrupt files are replaced by a neutral placeholder so the question flow continues.
// @Tags images
// @Produce image/png
// @Param id path string true "session ID"
// @Param folder path string true "question folder"
// @Param file path string true "image filename"
// @Success 200 {string} string "image bytes"
// @Failure 404 {object} util.Response
// @Router /images/{id}/{folder}/{file} [get]
func (c *ImageController) GetImage(ctx *gin.Context) {
	sess, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	folder := ctx.Param("folder")
	file := ctx.Param("file")

	sess.Lock()
	q := sess.Question(folder)
	sess.Unlock()
	if q == nil {
		util.NotFound(ctx, util.ErrQuestionNotFound.Error())
		return
	}
	// Only catalog-listed names are served; no path escapes the folder.
	if !q.HasImage(file) {
		util.NotFound(ctx, util.ErrImageNotInQuestion.Error())
		return
	}

	data, contentType := c.images.Load(filepath.Join(q.Path, file))
	ctx.Data(http.StatusOK, contentType, data)
}
