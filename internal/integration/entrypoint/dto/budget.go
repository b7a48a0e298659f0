// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// SaveBudgetRowRequest represents one category row of a budget matrix save.
type SaveBudgetRowRequest struct {
	CategoryID string     `json:"category_id" binding:"required"`
	Months     [12]string `json:"months" binding:"required"`
}

// SaveBudgetRequest represents the request body for saving the budget
// matrix of a year. The rows replace the year's budget as a whole.
type SaveBudgetRequest struct {
	Rows []SaveBudgetRowRequest `json:"rows" binding:"required"`
}

// SaveBudgetResponse represents the result of a budget matrix save.
type SaveBudgetResponse struct {
	Saved int `json:"saved"`
}

// ImportBudgetResponse represents the result of a successful CSV import.
type ImportBudgetResponse struct {
	Imported int `json:"imported"`
}

// CSVRowErrorResponse represents one rejected row of a CSV import.
type CSVRowErrorResponse struct {
	Row      int    `json:"row"`
	Category string `json:"category,omitempty"`
	Reason   string `json:"reason"`
}

// ToCSVRowErrorResponses converts domain CSV row errors to DTOs.
func ToCSVRowErrorResponses(rows []domainerror.CSVRowError) []CSVRowErrorResponse {
	responses := make([]CSVRowErrorResponse, len(rows))
	for i, row := range rows {
		responses[i] = CSVRowErrorResponse{
			Row:      row.Row,
			Category: row.Category,
			Reason:   row.Reason,
		}
	}
	return responses
}
