package web

import (
	"net/http"

	"github.com/ferdiebergado/gastos/internal/pkg/message"
)

func RespondOK[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusOK, msg, data)
}

func RespondCreated[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusCreated, msg, data)
}

func RespondBadRequest(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, reason, msg, errs)
}

func RespondUnauthorized(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnauthorized, reason, msg, errs)
}

func RespondNotFound(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusNotFound, reason, msg, errs)
}

func RespondConflict(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusConflict, reason, msg, errs)
}

func RespondUnprocessableEntity(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, reason, msg, errs)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, reason, msg, errs)
}

func RespondInternalServerError(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusInternalServerError, reason, message.ServerError, nil)
}
