package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gastos/internal/pkg/message"
	"github.com/ferdiebergado/gastos/internal/pkg/web"
	"github.com/ferdiebergado/gastos/internal/user"
)

const maskChar = "*"

var errMissingToken = errors.New("missing token path value")

// AuthService is the account lifecycle contract consumed by the HTTP layer.
type AuthService interface {
	RegisterUser(ctx context.Context, params RegisterUserParams) (RegisterResult, error)
	VerifyEmail(ctx context.Context, verifyToken string) (user.User, string, error)
	LoginUser(ctx context.Context, params LoginUserParams) (user.User, string, error)
	UpdatePreferences(ctx context.Context, userID string, params user.UpdatePreferencesParams) (*user.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type Handler struct {
	svc AuthService
}

type RegisterUserRequest struct {
	FirstName       string `json:"firstname,omitempty" validate:"required,max=100"`
	LastName        string `json:"lastname,omitempty" validate:"required,max=100"`
	Email           string `json:"email,omitempty" validate:"required,email"`
	Password        string `json:"password,omitempty" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (r *RegisterUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

type RegisterUserResponse struct {
	User      *user.Summary `json:"user"`
	EmailSent bool          `json:"email_sent"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := RegisterUserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	res, err := h.svc.RegisterUser(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondConflict(w, err, MsgUserExists, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgRegisterSuccess
	if !res.EmailSent {
		msg = MsgRegisterEmailFailed
	}
	data := &RegisterUserResponse{
		User:      user.NewSummary(res.User),
		EmailSent: res.EmailSent,
	}
	web.RespondCreated(w, &msg, data)
}

// SessionResponse carries the signed session credential together with the
// user summary.
type SessionResponse struct {
	Token string        `json:"token"`
	User  *user.Summary `json:"user"`
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	verifyToken := r.PathValue("token")
	if verifyToken == "" {
		web.RespondBadRequest(w, errMissingToken, MsgInvalidToken, nil)
		return
	}

	u, sessionToken, err := h.svc.VerifyEmail(r.Context(), verifyToken)
	if err != nil {
		if errors.Is(err, ErrInvalidVerifyToken) {
			web.RespondBadRequest(w, err, MsgInvalidToken, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgVerifySuccess
	data := &SessionResponse{
		Token: sessionToken,
		User:  user.NewSummary(u),
	}
	web.RespondOK(w, &msg, data)
}

type LoginUserRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r *LoginUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := LoginUserParams(req)
	u, sessionToken, err := h.svc.LoginUser(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondBadRequest(w, err, message.InvalidCredentials, nil)
			return
		}

		if errors.Is(err, ErrUserNotVerified) {
			web.RespondUnauthorized(w, err, MsgNotVerified, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgLoggedIn
	data := &SessionResponse{
		Token: sessionToken,
		User:  user.NewSummary(u),
	}
	web.RespondOK(w, &msg, data)
}

type UpdatePreferencesRequest struct {
	PreferredCurrency       *string `json:"preferredCurrency,omitempty" validate:"omitempty,max=10"`
	PreferredCurrencySymbol *string `json:"preferredCurrencySymbol,omitempty" validate:"omitempty,max=5"`
	PreferredLanguage       *string `json:"preferredLanguage,omitempty" validate:"omitempty,max=10"`
}

type PreferencesResponse struct {
	PreferredCurrency       string `json:"preferredCurrency"`
	PreferredCurrencySymbol string `json:"preferredCurrencySymbol"`
	PreferredLanguage       string `json:"preferredLanguage"`
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdatePreferencesRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := user.UpdatePreferencesParams{}
	if req.PreferredCurrency != nil {
		params.Currency = user.Some(*req.PreferredCurrency)
	}
	if req.PreferredCurrencySymbol != nil {
		params.Symbol = user.Some(*req.PreferredCurrencySymbol)
	}
	if req.PreferredLanguage != nil {
		params.Language = user.Some(*req.PreferredLanguage)
	}

	u, err := h.svc.UpdatePreferences(r.Context(), userID, params)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, MsgUserNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	data := &PreferencesResponse{
		PreferredCurrency:       u.PreferredCurrency,
		PreferredCurrencySymbol: u.PreferredCurrencySymbol,
		PreferredLanguage:       u.PreferredLanguage,
	}
	web.RespondOK(w, nil, data)
}

type ForgotPasswordRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r *ForgotPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
	)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ForgotPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, MsgUserNotFound, nil)
			return
		}

		if errors.Is(err, ErrEmailDelivery) {
			web.Fail(w, http.StatusInternalServerError, err, MsgResetEmailFailed, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgResetSent
	web.RespondOK(w, &msg, &struct{}{})
}

type ResetPasswordRequest struct {
	Password        string `json:"password,omitempty" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (r *ResetPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	resetToken := r.PathValue("token")
	if resetToken == "" {
		web.RespondBadRequest(w, errMissingToken, MsgInvalidResetToken, nil)
		return
	}

	req, err := web.ParamsFromContext[ResetPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.ResetPassword(r.Context(), resetToken, req.Password); err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			web.RespondBadRequest(w, err, MsgInvalidResetToken, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgPasswordResetSuccess
	web.RespondOK(w, &msg, &struct{}{})
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}
