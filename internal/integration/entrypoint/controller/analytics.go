// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles score and analytics endpoints.
type AnalyticsController struct {
	scoreUseCase     *analytics.CalculateScoreUseCase
	analyticsUseCase *analytics.GetAnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	scoreUseCase *analytics.CalculateScoreUseCase,
	analyticsUseCase *analytics.GetAnalyticsUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		scoreUseCase:     scoreUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// Score handles GET /score requests.
func (c *AnalyticsController) Score(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.scoreUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute score",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScoreResponse(output))
}

// Analytics handles GET /analytics requests.
func (c *AnalyticsController) Analytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analytics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}
