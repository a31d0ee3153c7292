package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/usecase/card"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/dto"
)

// CardController handles credit card endpoints, including invoice queries.
type CardController struct {
	createUseCase       *card.CreateCardUseCase
	listUseCase         *card.ListCardsUseCase
	getUseCase          *card.GetCardUseCase
	updateUseCase       *card.UpdateCardUseCase
	deleteUseCase       *card.DeleteCardUseCase
	getInvoiceUseCase   *card.GetInvoiceUseCase
	nextInvoicesUseCase *card.NextInvoicesUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	createUseCase *card.CreateCardUseCase,
	listUseCase *card.ListCardsUseCase,
	getUseCase *card.GetCardUseCase,
	updateUseCase *card.UpdateCardUseCase,
	deleteUseCase *card.DeleteCardUseCase,
	getInvoiceUseCase *card.GetInvoiceUseCase,
	nextInvoicesUseCase *card.NextInvoicesUseCase,
) *CardController {
	return &CardController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		getInvoiceUseCase:   getInvoiceUseCase,
		nextInvoicesUseCase: nextInvoicesUseCase,
	}
}

// List handles GET /cartoes requests. An optional usuario_id query param
// restricts the listing to one owner.
func (c *CardController) List(ctx *gin.Context) {
	input := card.ListCardsInput{}
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	cards := make([]dto.CardResponse, len(output.Cards))
	for i, item := range output.Cards {
		cards[i] = dto.ToCardResponse(item)
	}
	ctx.JSON(http.StatusOK, cards)
}

// Get handles GET /cartoes/:id requests.
func (c *CardController) Get(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), card.GetCardInput{ID: cardID})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Create handles POST /cartoes requests.
func (c *CardController) Create(ctx *gin.Context) {
	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCardFields),
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), card.CreateCardInput{
		Name:       req.Name,
		Brand:      req.Brand,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
		Limit:      decimal.NewFromFloat(req.Limit),
		UserID:     userID,
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// Update handles PUT /cartoes/:id requests.
func (c *CardController) Update(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	var req dto.UpdateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := card.UpdateCardInput{
		ID:         cardID,
		Name:       req.Name,
		Brand:      req.Brand,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	}
	if req.Limit != nil {
		limit := decimal.NewFromFloat(*req.Limit)
		input.Limit = &limit
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Delete handles DELETE /cartoes/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), card.DeleteCardInput{ID: cardID}); err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Cartão excluído com sucesso"})
}

// GetInvoice handles GET /cartoes/:id/faturas requests. The mes and ano query
// params select the reference month, defaulting to the current one.
func (c *CardController) GetInvoice(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	month, ok := parseOptionalIntQuery(ctx, "mes")
	if !ok {
		return
	}
	year, ok := parseOptionalIntQuery(ctx, "ano")
	if !ok {
		return
	}

	output, err := c.getInvoiceUseCase.Execute(ctx.Request.Context(), card.GetInvoiceInput{
		CardID: cardID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output))
}

// NextInvoices handles GET /cartoes/:id/proximas_faturas requests. The meses
// query param controls how many invoices are projected.
func (c *CardController) NextInvoices(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	months, ok := parseOptionalIntQuery(ctx, "meses")
	if !ok {
		return
	}

	output, err := c.nextInvoicesUseCase.Execute(ctx.Request.Context(), card.NextInvoicesInput{
		CardID: cardID,
		Months: months,
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNextInvoicesResponse(output))
}

// parseOptionalIntQuery reads an optional integer query param, writing a 400
// response and returning ok=false when the value is present but malformed.
func parseOptionalIntQuery(ctx *gin.Context, name string) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return value, true
}

// handleCardError handles card errors and returns appropriate HTTP responses.
func (c *CardController) handleCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		statusCode := c.getStatusCodeForCardError(cardErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCardError maps card error codes to HTTP status codes.
func (c *CardController) getStatusCodeForCardError(code domainerror.CardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCycleDay,
		domainerror.ErrCodeCycleDayOutOfMonth,
		domainerror.ErrCodeMissingCardFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeCardNotFound,
		domainerror.ErrCodeCardUserMissing:
		return http.StatusNotFound
	case domainerror.ErrCodeCardHasExpenses:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
