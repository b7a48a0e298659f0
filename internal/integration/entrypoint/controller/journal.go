// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/journal"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/dto"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/middleware"
)

// JournalController handles journal entry endpoints.
type JournalController struct {
	listUseCase         *journal.ListEntriesUseCase
	updateStatusUseCase *journal.UpdateStatusUseCase
	catchUpUseCase      *journal.GenerateUnprocessedUseCase
}

// NewJournalController creates a new journal controller instance.
func NewJournalController(
	listUseCase *journal.ListEntriesUseCase,
	updateStatusUseCase *journal.UpdateStatusUseCase,
	catchUpUseCase *journal.GenerateUnprocessedUseCase,
) *JournalController {
	return &JournalController{
		listUseCase:         listUseCase,
		updateStatusUseCase: updateStatusUseCase,
		catchUpUseCase:      catchUpUseCase,
	}
}

// List handles GET /journal-entries requests. Year is required, month is
// optional; without a month the whole year is returned.
func (c *JournalController) List(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'year' is required",
		})
		return
	}

	month := 0
	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err = strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Query parameter 'month' must be between 1 and 12",
			})
			return
		}
	}

	input := journal.ListEntriesInput{Year: year, Month: month}
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve journal entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJournalEntryListResponse(output))
}

// UpdateStatus handles PATCH /journal-entries/:id/status requests.
func (c *JournalController) UpdateStatus(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid journal entry ID format",
		})
		return
	}

	var req dto.UpdateEntryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := journal.UpdateStatusInput{
		EntryID: entryID,
		Target:  entity.JournalEntryStatus(req.Status),
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJournalEntryResponse(output.Entry))
}

// CatchUp handles POST /journal-entries/catch-up requests. It generates
// entries for transactions that were recorded without one.
func (c *JournalController) CatchUp(ctx *gin.Context) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// An empty body is fine and runs with the default limit.
	var req dto.CatchUpRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
	}

	input := journal.GenerateUnprocessedInput{
		Limit:   req.Limit,
		ActorID: actorID,
	}

	output, err := c.catchUpUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Catch-up run failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatchUpResponse(output))
}

// handleJournalError handles journal errors and returns appropriate HTTP responses.
func (c *JournalController) handleJournalError(ctx *gin.Context, err error) {
	var jrnErr *domainerror.JournalError
	if errors.As(err, &jrnErr) {
		ctx.JSON(c.statusCodeForJournalError(jrnErr.Code), dto.ErrorResponse{
			Error: jrnErr.Message,
			Code:  string(jrnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForJournalError maps journal error codes to HTTP status codes.
func (c *JournalController) statusCodeForJournalError(code domainerror.JournalErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidStatusTransition, domainerror.ErrCodeEntryPosted:
		return http.StatusConflict
	case domainerror.ErrCodeUnbalancedEntry,
		domainerror.ErrCodeEntryTooFewLines,
		domainerror.ErrCodeLineNotOneSided:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
