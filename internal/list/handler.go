package list

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/gastos/internal/auth"
	"github.com/ferdiebergado/gastos/internal/pkg/message"
	"github.com/ferdiebergado/gastos/internal/pkg/web"
)

type ListService interface {
	ListLists(ctx context.Context, userID string) ([]List, error)
	CreateList(ctx context.Context, userID, name string) (List, error)
	DeleteList(ctx context.Context, listID, userID string) error
}

type Handler struct {
	svc ListService
}

type listData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListsResponse struct {
	Lists []listData `json:"lists"`
}

func (h *Handler) ListLists(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	lists, err := h.svc.ListLists(r.Context(), userID)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]listData, 0, len(lists))
	for _, l := range lists {
		data = append(data, newListData(l))
	}
	web.RespondOK(w, nil, &ListsResponse{Lists: data})
}

type CreateListRequest struct {
	Name string `json:"name,omitempty" validate:"required,max=100"`
}

func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[CreateListRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	l, err := h.svc.CreateList(r.Context(), userID, req.Name)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := newListData(l)
	web.RespondCreated(w, nil, &data)
}

func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	if err := h.svc.DeleteList(r.Context(), r.PathValue("id"), userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, "List not found.", nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "List removed."
	web.RespondOK(w, &msg, &struct{}{})
}

func newListData(l List) listData {
	return listData{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func NewHandler(svc ListService) *Handler {
	return &Handler{svc: svc}
}
