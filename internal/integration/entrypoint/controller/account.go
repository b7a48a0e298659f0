// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/account"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/dto"
)

// AccountController handles chart-of-accounts endpoints.
type AccountController struct {
	createUseCase      *account.CreateAccountUseCase
	updateUseCase      *account.UpdateAccountUseCase
	deactivateUseCase  *account.DeactivateAccountUseCase
	listUseCase        *account.ListAccountsUseCase
	resolvePathUseCase *account.ResolvePathUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deactivateUseCase *account.DeactivateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	resolvePathUseCase *account.ResolvePathUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deactivateUseCase:  deactivateUseCase,
		listUseCase:        listUseCase,
		resolvePathUseCase: resolvePathUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	input := account.ListAccountsInput{
		ActiveOnly: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	input := account.CreateAccountInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Nature:      entity.AccountNature(req.Nature),
		SortOrder:   req.SortOrder,
	}

	if req.ParentID != nil && *req.ParentID != "" {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid parent ID format",
			})
			return
		}
		input.ParentID = &parentID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := account.UpdateAccountInput{
		ID:          accountID,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Deactivate handles DELETE /accounts/:id requests. Accounts are never
// physically removed, only marked inactive.
func (c *AccountController) Deactivate(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := account.DeactivateAccountInput{ID: accountID}
	if err := c.deactivateUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ResolvePath handles GET /accounts/:code/path requests. It returns the
// root-to-leaf ancestor chain for the account with the given code.
func (c *AccountController) ResolvePath(ctx *gin.Context) {
	input := account.ResolvePathInput{
		Code: ctx.Param("code"),
	}

	output, err := c.resolvePathUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountPathResponse(output))
}

// handleAccountError handles account errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		ctx.JSON(c.statusCodeForAccountError(accErr.Code), dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) statusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound, domainerror.ErrCodeParentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateCode:
		return http.StatusConflict
	case domainerror.ErrCodeAccountHasTransactions, domainerror.ErrCodeAccountHasChildren:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidNature, domainerror.ErrCodeMissingAccountFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeAccountInactive:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
