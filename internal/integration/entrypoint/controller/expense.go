package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/application/usecase/expense"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// ExpenseController handles expense endpoints, including the monthly calendar
// and child generation for installment and recurring expenses.
type ExpenseController struct {
	createUseCase   *expense.CreateExpenseUseCase
	listUseCase     *expense.ListExpensesUseCase
	getUseCase      *expense.GetExpenseUseCase
	updateUseCase   *expense.UpdateExpenseUseCase
	deleteUseCase   *expense.DeleteExpenseUseCase
	calendarUseCase *expense.CalendarUseCase
	generateUseCase *expense.GenerateChildrenUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	calendarUseCase *expense.CalendarUseCase,
	generateUseCase *expense.GenerateChildrenUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		calendarUseCase: calendarUseCase,
		generateUseCase: generateUseCase,
	}
}

// List handles GET /despesas requests. Supported query params: mes, ano,
// categoria_id, tipo_despesa, status and busca.
func (c *ExpenseController) List(ctx *gin.Context) {
	filter := adapter.ExpenseFilter{Search: ctx.Query("busca")}

	month, ok := parseOptionalIntQuery(ctx, "mes")
	if !ok {
		return
	}
	year, ok := parseOptionalIntQuery(ctx, "ano")
	if !ok {
		return
	}
	filter.Month = month
	filter.Year = year

	if raw := ctx.Query("categoria_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid categoria_id format",
			})
			return
		}
		filter.CategoryID = &categoryID
	}
	if raw := ctx.Query("tipo_despesa"); raw != "" {
		kind := entity.ExpenseKind(raw)
		filter.Kind = &kind
	}
	if raw := ctx.Query("status"); raw != "" {
		status := entity.ExpenseStatus(raw)
		filter.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{Filter: filter})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i, item := range output.Expenses {
		expenses[i] = dto.ToExpenseResponse(item)
	}
	ctx.JSON(http.StatusOK, expenses)
}

// Get handles GET /despesas/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{ID: expenseID})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Create handles POST /despesas requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid categoria_id format",
		})
		return
	}
	paidByID, err := uuid.Parse(req.PaidByID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid pago_por_id format",
		})
		return
	}

	dueDate, ok := parseRequestDate(ctx, "data_vencimento", req.DueDate)
	if !ok {
		return
	}
	purchaseDate := dueDate
	if req.PurchaseDate != "" {
		purchaseDate, ok = parseRequestDate(ctx, "data_compra", req.PurchaseDate)
		if !ok {
			return
		}
	}

	input := expense.CreateExpenseInput{
		Origin:           req.Origin,
		Description:      req.Description,
		CategoryID:       categoryID,
		TotalValue:       decimal.NewFromFloat(req.TotalValue),
		PurchaseDate:     purchaseDate,
		DueDate:          dueDate,
		PaymentMethod:    req.PaymentMethod,
		PaidByID:         paidByID,
		Status:           entity.ExpenseStatus(req.Status),
		Kind:             entity.ExpenseKind(req.Kind),
		Frequency:        entity.ExpenseFrequency(req.Frequency),
		InstallmentTotal: req.InstallmentTotal,

		GenerateRecurrences: req.GenerateRecurrences,
		RecurrenceCount:     req.RecurrenceCount,
	}
	if req.CardID != nil {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid cartao_id format",
			})
			return
		}
		input.CardID = &cardID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Expense:        dto.ToExpenseResponse(output.Expense),
		GeneratedCount: output.GeneratedCount,
	})
}

// Update handles PUT /despesas/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ID:                 expenseID,
		Origin:             req.Origin,
		Description:        req.Description,
		PaymentMethod:      req.PaymentMethod,
		ClearCard:          req.ClearCard,
		InstallmentTotal:   req.InstallmentTotal,
		InstallmentCurrent: req.InstallmentCurrent,
		PropagateToFuture:  req.PropagateToFuture,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid categoria_id format",
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.TotalValue != nil {
		totalValue := decimal.NewFromFloat(*req.TotalValue)
		input.TotalValue = &totalValue
	}
	if req.PurchaseDate != nil {
		purchaseDate, ok := parseRequestDate(ctx, "data_compra", *req.PurchaseDate)
		if !ok {
			return
		}
		input.PurchaseDate = &purchaseDate
	}
	if req.DueDate != nil {
		dueDate, ok := parseRequestDate(ctx, "data_vencimento", *req.DueDate)
		if !ok {
			return
		}
		input.DueDate = &dueDate
	}
	if req.CardID != nil {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid cartao_id format",
			})
			return
		}
		input.CardID = &cardID
	}
	if req.PaidByID != nil {
		paidByID, err := uuid.Parse(*req.PaidByID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid pago_por_id format",
			})
			return
		}
		input.PaidByID = &paidByID
	}
	if req.Status != nil {
		status := entity.ExpenseStatus(*req.Status)
		input.Status = &status
	}
	if req.Frequency != nil {
		frequency := entity.ExpenseFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateExpenseResponse{
		Expense:         dto.ToExpenseResponse(output.Expense),
		PropagatedCount: output.PropagatedCount,
	})
}

// Delete handles DELETE /despesas/:id requests. The excluir_futuras query
// param extends the deletion to the children of a parent.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	cascade := ctx.Query("excluir_futuras") == "true"
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ID:      expenseID,
		Cascade: cascade,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteExpenseResponse{
		Message:      "Despesa excluída com sucesso",
		DeletedCount: output.DeletedCount,
	})
}

// GenerateChildren handles POST /despesas/:id/gerar requests.
func (c *ExpenseController) GenerateChildren(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.GenerateChildrenRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), expense.GenerateChildrenInput{
		ID:    expenseID,
		Count: req.Count,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GenerateChildrenResponse{
		GeneratedCount: output.GeneratedCount,
	})
}

// Calendar handles GET /despesas/calendario requests. The mes and ano query
// params select the reference month, defaulting to the current one.
func (c *ExpenseController) Calendar(ctx *gin.Context) {
	month, ok := parseOptionalIntQuery(ctx, "mes")
	if !ok {
		return
	}
	year, ok := parseOptionalIntQuery(ctx, "ano")
	if !ok {
		return
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), expense.CalendarInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output))
}

// parseRequestDate parses a YYYY-MM-DD body field, writing a 400 response and
// returning ok=false when the value is malformed.
func parseRequestDate(ctx *gin.Context, name, value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return time.Time{}, false
	}
	return parsed, true
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		statusCode := c.getStatusCodeForExpenseError(expenseErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExpenseKind,
		domainerror.ErrCodeInvalidExpenseStatus,
		domainerror.ErrCodeInvalidExpenseFrequency,
		domainerror.ErrCodeInvalidExpenseValue,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeExpCategoryMissing,
		domainerror.ErrCodeExpCardMissing,
		domainerror.ErrCodeExpPayerMissing:
		return http.StatusNotFound
	case domainerror.ErrCodeExpensePendingChildren,
		domainerror.ErrCodeExpenseChildrenGenerated,
		domainerror.ErrCodeExpenseNotParent:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
