// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	AccountID   string  `json:"account_id" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Reference   string  `json:"reference,omitempty" binding:"omitempty,max=100"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Type and category are fixed once the transaction exists.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Reference   *string  `json:"reference,omitempty" binding:"omitempty,max=100"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Amount         string    `json:"amount"`
	Date           string    `json:"date"`
	AccountID      string    `json:"account_id"`
	Description    string    `json:"description"`
	Reference      string    `json:"reference,omitempty"`
	JournalEntryID *string   `json:"journal_entry_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateTransactionResponse represents the response for transaction creation.
// EntryWarning is set when the transaction was recorded but its journal
// entry could not be generated.
type CreateTransactionResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	EntryWarning string              `json:"entry_warning,omitempty"`
}

// TransactionListResponse represents the transaction list in API responses.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		Type:        string(txn.Type),
		Amount:      txn.Amount.StringFixed(2),
		Date:        txn.Date.Format("2006-01-02"),
		AccountID:   txn.AccountID.String(),
		Description: txn.Description,
		Reference:   txn.Reference,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if txn.JournalEntryID != nil {
		entryID := txn.JournalEntryID.String()
		response.JournalEntryID = &entryID
	}
	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to a
// TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	}
}
