package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/analytics"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController serves the life score.
type AnalyticsController struct {
	lifeScoreUseCase *analytics.GetLifeScoreUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(lifeScoreUseCase *analytics.GetLifeScoreUseCase) *AnalyticsController {
	return &AnalyticsController{
		lifeScoreUseCase: lifeScoreUseCase,
	}
}

// Get handles GET /analytics requests. It always answers 200; read failures
// produce the neutral payload.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	output := c.lifeScoreUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}
