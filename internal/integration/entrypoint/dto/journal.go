// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/journal"
)

// UpdateEntryStatusRequest represents the request body for a journal entry
// status transition.
type UpdateEntryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved posted"`
}

// CatchUpRequest represents the request body for a catch-up generation run.
type CatchUpRequest struct {
	Limit int `json:"limit,omitempty" binding:"omitempty,min=1,max=1000"`
}

// CatchUpFailureResponse represents a single failed item of a catch-up run.
type CatchUpFailureResponse struct {
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
}

// CatchUpResponse represents the result of a catch-up generation run.
type CatchUpResponse struct {
	Processed int                      `json:"processed"`
	Failed    int                      `json:"failed"`
	Failures  []CatchUpFailureResponse `json:"failures,omitempty"`
}

// JournalEntryLineResponse represents a single journal entry line.
type JournalEntryLineResponse struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Description string `json:"description,omitempty"`
}

// JournalEntryResponse represents a journal entry with its lines.
type JournalEntryResponse struct {
	ID                  string                     `json:"id"`
	EntryNumber         string                     `json:"entry_number"`
	Date                string                     `json:"date"`
	Description         string                     `json:"description"`
	Reference           string                     `json:"reference,omitempty"`
	Status              string                     `json:"status"`
	TotalDebit          string                     `json:"total_debit"`
	TotalCredit         string                     `json:"total_credit"`
	SourceTransactionID *string                    `json:"source_transaction_id,omitempty"`
	Lines               []JournalEntryLineResponse `json:"lines"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// JournalEntryListResponse represents the journal entry list in API responses.
type JournalEntryListResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

// ToJournalEntryResponse converts an EntryOutput to a JournalEntryResponse DTO.
func ToJournalEntryResponse(entry *journal.EntryOutput) JournalEntryResponse {
	response := JournalEntryResponse{
		ID:          entry.ID.String(),
		EntryNumber: entry.EntryNumber,
		Date:        entry.Date.Format("2006-01-02"),
		Description: entry.Description,
		Reference:   entry.Reference,
		Status:      string(entry.Status),
		TotalDebit:  entry.TotalDebit.StringFixed(2),
		TotalCredit: entry.TotalCredit.StringFixed(2),
		Lines:       make([]JournalEntryLineResponse, len(entry.Lines)),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.SourceTransactionID != nil {
		sourceID := entry.SourceTransactionID.String()
		response.SourceTransactionID = &sourceID
	}
	for i, line := range entry.Lines {
		response.Lines[i] = JournalEntryLineResponse{
			ID:          line.ID.String(),
			AccountID:   line.AccountID.String(),
			Debit:       line.Debit.StringFixed(2),
			Credit:      line.Credit.StringFixed(2),
			Description: line.Description,
		}
	}
	return response
}

// ToJournalEntryListResponse converts a ListEntriesOutput to a
// JournalEntryListResponse DTO.
func ToJournalEntryListResponse(output *journal.ListEntriesOutput) JournalEntryListResponse {
	entries := make([]JournalEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = ToJournalEntryResponse(entry)
	}
	return JournalEntryListResponse{
		Entries: entries,
		Total:   len(entries),
	}
}

// ToCatchUpResponse converts a GenerateUnprocessedOutput to a CatchUpResponse DTO.
func ToCatchUpResponse(output *journal.GenerateUnprocessedOutput) CatchUpResponse {
	response := CatchUpResponse{
		Processed: output.Processed,
		Failed:    output.Failed,
	}
	for _, failure := range output.Failures {
		response.Failures = append(response.Failures, CatchUpFailureResponse{
			TransactionID: failure.TransactionID.String(),
			Reason:        failure.Reason,
		})
	}
	return response
}
