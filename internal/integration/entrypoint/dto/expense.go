// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
// Category is optional; when omitted, the server classifies it from the notes.
type CreateExpenseRequest struct {
	Amount   float64  `json:"amount" binding:"required,gte=0"`
	Category string   `json:"category"`
	Date     string   `json:"date" binding:"required"`
	Tags     []string `json:"tags"`
	Notes    string   `json:"notes"`
}

// UpdateExpenseRequest represents the request body for expense updates.
// Absent fields are left unchanged.
type UpdateExpenseRequest struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
	Tags     []string `json:"tags"`
	Notes    *string  `json:"notes"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// MonthlyTotalResponse represents the monthly spending aggregate.
type MonthlyTotalResponse struct {
	Month      string            `json:"month"`
	Total      string            `json:"total"`
	ByCategory map[string]string `json:"by_category"`
}

// ToExpenseResponse converts a use case expense output to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return ExpenseResponse{
		ID:        e.ID.String(),
		Amount:    e.Amount.StringFixed(2),
		Category:  e.Category,
		Date:      e.Date.Format("2006-01-02"),
		Tags:      tags,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list output to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: expenses,
		Total:    len(expenses),
	}
}
