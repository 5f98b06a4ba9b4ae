package controller

import (
	"os"

	"image_study_backend/internal/service"
	"image_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	sessions *service.SessionService
}

func NewHealthController(sessions *service.SessionService) *HealthController {
	return &HealthController{sessions: sessions}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service status and whether the study root is reachable. An unreachable root is not an error; the catalog loader is fail-soft.
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	root := c.sessions.Root()
	rootStatus := "up"
	if _, err := os.Stat(root); err != nil {
		rootStatus = "unreachable"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"studyRoot": rootStatus,
		},
	})
}
