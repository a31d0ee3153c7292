package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/application/usecase/contribution"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/dto"
)

// ContributionController handles contribution endpoints.
type ContributionController struct {
	createUseCase    *contribution.CreateContributionUseCase
	listUseCase      *contribution.ListContributionsUseCase
	getUseCase       *contribution.GetContributionUseCase
	updateUseCase    *contribution.UpdateContributionUseCase
	deleteUseCase    *contribution.DeleteContributionUseCase
	getTotalsUseCase *contribution.GetTotalsUseCase
}

// NewContributionController creates a new contribution controller instance.
func NewContributionController(
	createUseCase *contribution.CreateContributionUseCase,
	listUseCase *contribution.ListContributionsUseCase,
	getUseCase *contribution.GetContributionUseCase,
	updateUseCase *contribution.UpdateContributionUseCase,
	deleteUseCase *contribution.DeleteContributionUseCase,
	getTotalsUseCase *contribution.GetTotalsUseCase,
) *ContributionController {
	return &ContributionController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		getTotalsUseCase: getTotalsUseCase,
	}
}

// List handles GET /aportes requests. Supported query params: usuario_id,
// data_inicio, data_fim and busca.
func (c *ContributionController) List(ctx *gin.Context) {
	filter := adapter.ContributionFilter{Search: ctx.Query("busca")}

	if raw := ctx.Query("usuario_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid usuario_id format",
			})
			return
		}
		filter.UserID = &userID
	}
	if raw := ctx.Query("data_inicio"); raw != "" {
		from, ok := parseRequestDate(ctx, "data_inicio", raw)
		if !ok {
			return
		}
		filter.DateFrom = &from
	}
	if raw := ctx.Query("data_fim"); raw != "" {
		to, ok := parseRequestDate(ctx, "data_fim", raw)
		if !ok {
			return
		}
		filter.DateTo = &to
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), contribution.ListContributionsInput{Filter: filter})
	if err != nil {
		c.handleContributionError(ctx, err)
		return
	}

	contributions := make([]dto.ContributionResponse, len(output.Contributions))
	for i, item := range output.Contributions {
		contributions[i] = dto.ToContributionWithUserResponse(item)
	}
	ctx.JSON(http.StatusOK, contributions)
}

// Get handles GET /aportes/:id requests.
func (c *ContributionController) Get(ctx *gin.Context) {
	contributionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid contribution ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), contribution.GetContributionInput{ID: contributionID})
	if err != nil {
		c.handleContributionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContributionWithUserResponse(output.Contribution))
}

// Create handles POST /aportes requests.
func (c *ContributionController) Create(ctx *gin.Context) {
	var req dto.CreateContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingContributionFields),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid usuario_id format",
		})
		return
	}
	date, ok := parseRequestDate(ctx, "data", req.Date)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), contribution.CreateContributionInput{
		UserID: userID,
		Value:  decimal.NewFromFloat(req.Value),
		Date:   date,
		Note:   req.Note,
	})
	if err != nil {
		c.handleContributionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToContributionResponse(output.Contribution))
}

// Update handles PUT /aportes/:id requests.
func (c *ContributionController) Update(ctx *gin.Context) {
	contributionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid contribution ID format",
		})
		return
	}

	var req dto.UpdateContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := contribution.UpdateContributionInput{
		ID:   contributionID,
		Note: req.Note,
	}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid usuario_id format",
			})
			return
		}
		input.UserID = &userID
	}
	if req.Value != nil {
		value := decimal.NewFromFloat(*req.Value)
		input.Value = &value
	}
	if req.Date != nil {
		date, ok := parseRequestDate(ctx, "data", *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleContributionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContributionResponse(output.Contribution))
}

// Delete handles DELETE /aportes/:id requests.
func (c *ContributionController) Delete(ctx *gin.Context) {
	contributionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid contribution ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), contribution.DeleteContributionInput{ID: contributionID}); err != nil {
		c.handleContributionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Aporte excluído com sucesso"})
}

// GetTotals handles GET /aportes/totais requests. The ano query param selects
// the year, defaulting to the current one; usuario_id restricts the report to
// one investor.
func (c *ContributionController) GetTotals(ctx *gin.Context) {
	year, ok := parseOptionalIntQuery(ctx, "ano")
	if !ok {
		return
	}

	input := contribution.GetTotalsInput{Year: year}
	if raw := ctx.Query("usuario_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid usuario_id format",
			})
			return
		}
		input.UserID = &userID
	}

	output, err := c.getTotalsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleContributionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalsResponse(output))
}

// handleContributionError handles contribution errors and returns appropriate
// HTTP responses.
func (c *ContributionController) handleContributionError(ctx *gin.Context, err error) {
	var contributionErr *domainerror.ContributionError
	if errors.As(err, &contributionErr) {
		statusCode := c.getStatusCodeForContributionError(contributionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: contributionErr.Message,
			Code:  string(contributionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForContributionError maps contribution error codes to HTTP
// status codes.
func (c *ContributionController) getStatusCodeForContributionError(code domainerror.ContributionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidContributionValue,
		domainerror.ErrCodeMissingContributionFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeContributionNotFound,
		domainerror.ErrCodeContributionUserMissing:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
