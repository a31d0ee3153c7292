package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/controle-financeiro/backend/internal/application/usecase/dashboard"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase   *dashboard.GetSummaryUseCase
	getEvolutionUseCase *dashboard.GetEvolutionUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSummaryUseCase *dashboard.GetSummaryUseCase,
	getEvolutionUseCase *dashboard.GetEvolutionUseCase,
) *DashboardController {
	return &DashboardController{
		getSummaryUseCase:   getSummaryUseCase,
		getEvolutionUseCase: getEvolutionUseCase,
	}
}

// GetSummary handles GET /dashboard/resumo requests. The mes and ano query
// params select the reference month, defaulting to the current one.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	month, ok := parseOptionalIntQuery(ctx, "mes")
	if !ok {
		return
	}
	year, ok := parseOptionalIntQuery(ctx, "ano")
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build dashboard summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetEvolution handles GET /dashboard/evolucao requests. The meses query
// param controls how many trailing months are included.
func (c *DashboardController) GetEvolution(ctx *gin.Context) {
	months, ok := parseOptionalIntQuery(ctx, "meses")
	if !ok {
		return
	}

	output, err := c.getEvolutionUseCase.Execute(ctx.Request.Context(), dashboard.GetEvolutionInput{
		Months: months,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build evolution series",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvolutionResponse(output))
}
