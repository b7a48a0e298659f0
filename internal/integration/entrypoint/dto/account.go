// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/account"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Code        string  `json:"code" binding:"required,min=1,max=20"`
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Level       int     `json:"level" binding:"required,min=1,max=6"`
	ParentID    *string `json:"parent_id,omitempty"`
	Nature      string  `json:"nature" binding:"required,oneof=debit credit"`
	SortOrder   int     `json:"sort_order,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
// Code, level, parent and nature are fixed once the account exists.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Level       int       `json:"level"`
	ParentID    *string   `json:"parent_id,omitempty"`
	Nature      string    `json:"nature"`
	IsActive    bool      `json:"is_active"`
	FullPath    string    `json:"full_path"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountListResponse represents the account list in API responses.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// AccountPathResponse represents the root-to-leaf ancestor chain of an account.
type AccountPathResponse struct {
	Chain []AccountResponse `json:"chain"`
}

// ToAccountResponse converts an AccountOutput to an AccountResponse DTO.
func ToAccountResponse(acc *account.AccountOutput) AccountResponse {
	response := AccountResponse{
		ID:          acc.ID.String(),
		Code:        acc.Code,
		Name:        acc.Name,
		Description: acc.Description,
		Level:       acc.Level,
		Nature:      string(acc.Nature),
		IsActive:    acc.IsActive,
		FullPath:    acc.FullPath,
		SortOrder:   acc.SortOrder,
		CreatedAt:   acc.CreatedAt,
		UpdatedAt:   acc.UpdatedAt,
	}
	if acc.ParentID != nil {
		parentID := acc.ParentID.String()
		response.ParentID = &parentID
	}
	return response
}

// ToAccountListResponse converts a ListAccountsOutput to an AccountListResponse DTO.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, acc := range output.Accounts {
		accounts[i] = ToAccountResponse(acc)
	}
	return AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	}
}

// ToAccountPathResponse converts a ResolvePathOutput to an AccountPathResponse DTO.
func ToAccountPathResponse(output *account.ResolvePathOutput) AccountPathResponse {
	chain := make([]AccountResponse, len(output.Chain))
	for i, acc := range output.Chain {
		chain[i] = ToAccountResponse(acc)
	}
	return AccountPathResponse{Chain: chain}
}
