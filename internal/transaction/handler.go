package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/gastos/internal/auth"
	"github.com/ferdiebergado/gastos/internal/pkg/message"
	"github.com/ferdiebergado/gastos/internal/pkg/web"
)

type TransactionService interface {
	ListTransactions(ctx context.Context, listID, userID string) ([]Transaction, error)
	CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, error)
	DeleteTransaction(ctx context.Context, txnID, userID string) error
}

type Handler struct {
	svc TransactionService
}

type transactionData struct {
	ID          string    `json:"id"`
	ListID      string    `json:"list_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TransactionsResponse struct {
	Transactions []transactionData `json:"transactions"`
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	txns, err := h.svc.ListTransactions(r.Context(), r.PathValue("listID"), userID)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]transactionData, 0, len(txns))
	for _, t := range txns {
		data = append(data, newTransactionData(t))
	}
	web.RespondOK(w, nil, &TransactionsResponse{Transactions: data})
}

type CreateTransactionRequest struct {
	Description string  `json:"description,omitempty" validate:"required,max=255"`
	Amount      float64 `json:"amount,omitempty" validate:"required,gt=0"`
	Type        string  `json:"type,omitempty" validate:"required,oneof=income expense"`
	ListID      string  `json:"listId,omitempty" validate:"required,uuid"`
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[CreateTransactionRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := CreateTransactionParams{
		UserID:      userID,
		ListID:      req.ListID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
	}
	t, err := h.svc.CreateTransaction(r.Context(), params)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := newTransactionData(t)
	web.RespondCreated(w, nil, &data)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	if err := h.svc.DeleteTransaction(r.Context(), r.PathValue("id"), userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, "Transaction not found.", nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Transaction removed."
	web.RespondOK(w, &msg, &struct{}{})
}

func newTransactionData(t Transaction) transactionData {
	return transactionData{
		ID:          t.ID,
		ListID:      t.ListID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewHandler(svc TransactionService) *Handler {
	return &Handler{svc: svc}
}
