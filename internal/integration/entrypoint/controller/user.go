package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/application/usecase/user"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/dto"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user endpoints.
type UserController struct {
	createUseCase   *user.CreateUserUseCase
	listUseCase     *user.ListUsersUseCase
	getUseCase      *user.GetUserUseCase
	updateUseCase   *user.UpdateUserUseCase
	deleteUseCase   *user.DeleteUserUseCase
	balancesUseCase *user.GetBalancesUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	listUseCase *user.ListUsersUseCase,
	getUseCase *user.GetUserUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
	balancesUseCase *user.GetBalancesUseCase,
) *UserController {
	return &UserController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		balancesUseCase: balancesUseCase,
	}
}

// List handles GET /usuarios requests.
func (c *UserController) List(ctx *gin.Context) {
	var filter adapter.UserFilter

	if roleStr := ctx.Query("tipo"); roleStr != "" {
		role := entity.UserRole(roleStr)
		filter.Role = &role
	}
	if activeStr := ctx.Query("ativo"); activeStr != "" {
		active := activeStr == "true"
		filter.Active = &active
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), user.ListUsersInput{Filter: filter})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve users",
		})
		return
	}

	users := make([]dto.UserResponse, len(output.Users))
	for i, u := range output.Users {
		users[i] = dto.ToUserResponse(u)
	}
	ctx.JSON(http.StatusOK, users)
}

// Get handles GET /usuarios/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{
		ID:           userID,
		ActorID:      actorID,
		ActorIsAdmin: middleware.IsAdminFromContext(ctx),
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Create handles POST /usuarios requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	input := user.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.UserRole(req.Role),
		Active:   req.Active,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Update handles PUT /usuarios/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := user.UpdateUserInput{
		ID:           userID,
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Active:       req.Active,
		ActorID:      actorID,
		ActorIsAdmin: middleware.IsAdminFromContext(ctx),
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		input.Role = &role
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Delete handles DELETE /usuarios/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		ID:      userID,
		ActorID: actorID,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	message := "Usuário excluído com sucesso"
	if output.Deactivated {
		message = "Usuário desativado por possuir registros vinculados"
	}
	ctx.JSON(http.StatusOK, dto.DeleteUserResponse{
		Message:     message,
		Deactivated: output.Deactivated,
	})
}

// Balances handles GET /usuarios/saldos requests.
func (c *UserController) Balances(ctx *gin.Context) {
	output, err := c.balancesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute balances",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalancesResponse(output))
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		statusCode := c.getStatusCodeForUserError(userErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUserError maps user error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingUserFields,
		domainerror.ErrCodeUserEmailExists,
		domainerror.ErrCodeUserInvalidRole:
		return http.StatusBadRequest
	case domainerror.ErrCodeTargetUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCannotDeleteSelf,
		domainerror.ErrCodeUserPermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
