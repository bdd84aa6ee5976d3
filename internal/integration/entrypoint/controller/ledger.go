// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/ledger"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles transaction ledger endpoints.
type LedgerController struct {
	reverseUseCase *ledger.ReverseLastTransactionUseCase
	historyUseCase *ledger.GetHistoryUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	reverseUseCase *ledger.ReverseLastTransactionUseCase,
	historyUseCase *ledger.GetHistoryUseCase,
) *LedgerController {
	return &LedgerController{
		reverseUseCase: reverseUseCase,
		historyUseCase: historyUseCase,
	}
}

// History handles GET /transactions requests.
func (c *LedgerController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), ledger.GetHistoryInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transaction history",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryResponse(output.Entries))
}

// Reverse handles POST /transactions/reverse requests. The endpoint takes no
// body; it always targets the caller's most recent unreversed entry.
func (c *LedgerController) Reverse(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.reverseUseCase.Execute(ctx.Request.Context(), ledger.ReverseLastTransactionInput{UserID: userID})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReversalResponse{
		Success:       output.Success,
		ReversedEntry: dto.ToLedgerEntryResponse(output.ReversedEntry),
	})
}

// handleLedgerError maps ledger errors to HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrNoTransactionToReverse):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "No transaction to reverse",
			Code:  string(domainerror.ErrCodeNoTransactionToReverse),
		})
	case errors.Is(err, domainerror.ErrEntryAlreadyReversed):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Transaction was already reversed",
			Code:  string(domainerror.ErrCodeEntryAlreadyReversed),
		})
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "The expense targeted by the reversal no longer exists",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
	case errors.Is(err, domainerror.ErrInvalidSnapshot):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Ledger entry carries an unusable snapshot",
			Code:  string(domainerror.ErrCodeInvalidSnapshot),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
