package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/gastos/internal/auth"
	"github.com/ferdiebergado/gastos/internal/pkg/web"
	"github.com/ferdiebergado/gastos/internal/user"
)

func testUser() user.User {
	u := user.User{
		FirstName:               "Juan",
		LastName:                "dela Cruz",
		Email:                   "a@x.com",
		PasswordHash:            "hashed:pw1",
		PreferredCurrency:       "USD",
		PreferredCurrencySymbol: "$",
		PreferredLanguage:       "en",
	}
	u.ID = "user-1"
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	return u
}

func assertStatus(t *testing.T, res *http.Response, want int) {
	t.Helper()

	if res.StatusCode != want {
		t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, want)
	}
}

func assertMessage(t *testing.T, body map[string]any, want string) {
	t.Helper()

	if msg, _ := body["message"].(string); msg != want {
		t.Errorf("message = %q, want: %q", msg, want)
	}
}

func TestHandler_RegisterUser(t *testing.T) {
	t.Parallel()

	registered := testUser()
	tests := []struct {
		name       string
		svc        *auth.StubService
		wantStatus int
		wantMsg    string
	}{
		{
			"Registration succeeds and the email was sent",
			&auth.StubService{
				RegisterUserFunc: func(_ context.Context, _ auth.RegisterUserParams) (auth.RegisterResult, error) {
					return auth.RegisterResult{User: registered, EmailSent: true}, nil
				},
			},
			http.StatusCreated,
			auth.MsgRegisterSuccess,
		},
		{
			"Registration succeeds but the email failed",
			&auth.StubService{
				RegisterUserFunc: func(_ context.Context, _ auth.RegisterUserParams) (auth.RegisterResult, error) {
					return auth.RegisterResult{User: registered, EmailSent: false}, nil
				},
			},
			http.StatusCreated,
			auth.MsgRegisterEmailFailed,
		},
		{
			"Email is already taken",
			&auth.StubService{
				RegisterUserFunc: func(_ context.Context, _ auth.RegisterUserParams) (auth.RegisterResult, error) {
					return auth.RegisterResult{}, auth.ErrUserExists
				},
			},
			http.StatusConflict,
			auth.MsgUserExists,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(tc.svc)
			ctx := web.NewContextWithParams(context.Background(), validRegisterRequest())
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/auth/register", nil)
			rec := httptest.NewRecorder()

			handler.RegisterUser(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			assertStatus(t, res, tc.wantStatus)
			web.AssertContentType(t, res)

			body := web.DecodeJSONResponse(t, res)
			assertMessage(t, body, tc.wantMsg)
		})
	}
}

func validRegisterRequest() auth.RegisterUserRequest {
	return auth.RegisterUserRequest{
		FirstName:       "Juan",
		LastName:        "dela Cruz",
		Email:           "a@x.com",
		Password:        "secretpw1",
		PasswordConfirm: "secretpw1",
	}
}

func TestHandler_RegisterUser_HidesSensitiveFields(t *testing.T) {
	t.Parallel()

	registered := testUser()
	svc := &auth.StubService{
		RegisterUserFunc: func(_ context.Context, _ auth.RegisterUserParams) (auth.RegisterResult, error) {
			return auth.RegisterResult{User: registered, EmailSent: true}, nil
		},
	}
	handler := auth.NewHandler(svc)

	ctx := web.NewContextWithParams(context.Background(), validRegisterRequest())
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/auth/register", nil)
	rec := httptest.NewRecorder()

	handler.RegisterUser(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	body := web.DecodeJSONResponse(t, res)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %v, want an object", body["data"])
	}
	userData, ok := data["user"].(map[string]any)
	if !ok {
		t.Fatalf("data.user = %v, want an object", data["user"])
	}

	for _, field := range []string{"password", "passwordHash", "verificationToken", "resetPasswordToken"} {
		if _, present := userData[field]; present {
			t.Errorf("response user payload leaks %q", field)
		}
	}
}

func TestHandler_VerifyEmail(t *testing.T) {
	t.Parallel()

	verified := testUser()
	verified.Verified = true

	tests := []struct {
		name       string
		token      string
		svc        *auth.StubService
		wantStatus int
		wantMsg    string
	}{
		{
			"Valid token verifies the account and returns a session",
			"tok-1",
			&auth.StubService{
				VerifyEmailFunc: func(_ context.Context, _ string) (user.User, string, error) {
					return verified, "session-token", nil
				},
			},
			http.StatusOK,
			auth.MsgVerifySuccess,
		},
		{
			"Unknown or consumed token",
			"tok-x",
			&auth.StubService{
				VerifyEmailFunc: func(_ context.Context, _ string) (user.User, string, error) {
					return user.User{}, "", auth.ErrInvalidVerifyToken
				},
			},
			http.StatusBadRequest,
			auth.MsgInvalidToken,
		},
		{
			"Missing token path value",
			"",
			&auth.StubService{},
			http.StatusBadRequest,
			auth.MsgInvalidToken,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/auth/verify-email/"+tc.token, nil)
			req.SetPathValue("token", tc.token)
			rec := httptest.NewRecorder()

			handler.VerifyEmail(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			assertStatus(t, res, tc.wantStatus)
			web.AssertContentType(t, res)

			body := web.DecodeJSONResponse(t, res)
			assertMessage(t, body, tc.wantMsg)

			if tc.wantStatus != http.StatusOK {
				return
			}

			data, ok := body["data"].(map[string]any)
			if !ok {
				t.Fatalf("data = %v, want an object", body["data"])
			}
			if token, _ := data["token"].(string); token != "session-token" {
				t.Errorf("data.token = %q, want: %q", token, "session-token")
			}
		})
	}
}

func TestHandler_LoginUser(t *testing.T) {
	t.Parallel()

	verified := testUser()
	verified.Verified = true

	tests := []struct {
		name       string
		svc        *auth.StubService
		wantStatus int
	}{
		{
			"Valid credentials on a verified account",
			&auth.StubService{
				LoginUserFunc: func(_ context.Context, _ auth.LoginUserParams) (user.User, string, error) {
					return verified, "session-token", nil
				},
			},
			http.StatusOK,
		},
		{
			"Invalid credentials",
			&auth.StubService{
				LoginUserFunc: func(_ context.Context, _ auth.LoginUserParams) (user.User, string, error) {
					return user.User{}, "", auth.ErrInvalidCredentials
				},
			},
			http.StatusBadRequest,
		},
		{
			"Unverified account",
			&auth.StubService{
				LoginUserFunc: func(_ context.Context, _ auth.LoginUserParams) (user.User, string, error) {
					return user.User{}, "", auth.ErrUserNotVerified
				},
			},
			http.StatusUnauthorized,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(tc.svc)
			params := auth.LoginUserRequest{Email: "a@x.com", Password: "secretpw1"}
			ctx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/auth/login", nil)
			rec := httptest.NewRecorder()

			handler.LoginUser(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			assertStatus(t, res, tc.wantStatus)
			web.AssertContentType(t, res)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestHandler_UpdatePreferences(t *testing.T) {
	t.Parallel()

	updated := testUser()
	updated.PreferredCurrency = "PHP"
	updated.PreferredCurrencySymbol = "₱"

	svc := &auth.StubService{
		UpdatePreferencesFunc: func(_ context.Context, userID string, params user.UpdatePreferencesParams) (*user.User, error) {
			if userID != updated.ID {
				t.Errorf("userID = %q, want: %q", userID, updated.ID)
			}
			if !params.Currency.Valid || params.Currency.Value != "PHP" {
				t.Errorf("params.Currency = %+v, want a set %q", params.Currency, "PHP")
			}
			if params.Language.Valid {
				t.Errorf("params.Language = %+v, want absent", params.Language)
			}
			return &updated, nil
		},
	}
	handler := auth.NewHandler(svc)

	params := auth.UpdatePreferencesRequest{
		PreferredCurrency:       strPtr("PHP"),
		PreferredCurrencySymbol: strPtr("₱"),
	}
	ctx := auth.ContextWithUser(context.Background(), updated.ID)
	ctx = web.NewContextWithParams(ctx, params)
	req := httptest.NewRequestWithContext(ctx, http.MethodPut, "/api/auth/preferences", nil)
	rec := httptest.NewRecorder()

	handler.UpdatePreferences(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	assertStatus(t, res, http.StatusOK)
	web.AssertContentType(t, res)

	body := web.DecodeJSONResponse(t, res)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %v, want an object", body["data"])
	}
	if currency, _ := data["preferredCurrency"].(string); currency != "PHP" {
		t.Errorf("data.preferredCurrency = %q, want: %q", currency, "PHP")
	}
}

func TestHandler_UpdatePreferences_NoUserInContext(t *testing.T) {
	t.Parallel()

	handler := auth.NewHandler(&auth.StubService{})

	ctx := web.NewContextWithParams(context.Background(), auth.UpdatePreferencesRequest{})
	req := httptest.NewRequestWithContext(ctx, http.MethodPut, "/api/auth/preferences", nil)
	rec := httptest.NewRecorder()

	handler.UpdatePreferences(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	assertStatus(t, res, http.StatusUnauthorized)
}

func TestHandler_UpdatePreferences_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := &auth.StubService{
		UpdatePreferencesFunc: func(_ context.Context, _ string, _ user.UpdatePreferencesParams) (*user.User, error) {
			return nil, user.ErrNotFound
		},
	}
	handler := auth.NewHandler(svc)

	ctx := auth.ContextWithUser(context.Background(), "gone")
	ctx = web.NewContextWithParams(ctx, auth.UpdatePreferencesRequest{})
	req := httptest.NewRequestWithContext(ctx, http.MethodPut, "/api/auth/preferences", nil)
	rec := httptest.NewRecorder()

	handler.UpdatePreferences(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	assertStatus(t, res, http.StatusNotFound)
}

func TestHandler_ForgotPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svc        *auth.StubService
		wantStatus int
		wantMsg    string
	}{
		{
			"Reset link sent",
			&auth.StubService{
				ForgotPasswordFunc: func(_ context.Context, _ string) error {
					return nil
				},
			},
			http.StatusOK,
			auth.MsgResetSent,
		},
		{
			"No account for the email",
			&auth.StubService{
				ForgotPasswordFunc: func(_ context.Context, _ string) error {
					return user.ErrNotFound
				},
			},
			http.StatusNotFound,
			auth.MsgUserNotFound,
		},
		{
			"Reset email could not be delivered",
			&auth.StubService{
				ForgotPasswordFunc: func(_ context.Context, _ string) error {
					return auth.ErrEmailDelivery
				},
			},
			http.StatusInternalServerError,
			auth.MsgResetEmailFailed,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(tc.svc)
			params := auth.ForgotPasswordRequest{Email: "a@x.com"}
			ctx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/auth/forgot-password", nil)
			rec := httptest.NewRecorder()

			handler.ForgotPassword(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			assertStatus(t, res, tc.wantStatus)
			web.AssertContentType(t, res)

			body := web.DecodeJSONResponse(t, res)
			assertMessage(t, body, tc.wantMsg)
		})
	}
}

func TestHandler_ResetPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		svc        *auth.StubService
		wantStatus int
		wantMsg    string
	}{
		{
			"Live token resets the password",
			"tok-1",
			&auth.StubService{
				ResetPasswordFunc: func(_ context.Context, _, _ string) error {
					return nil
				},
			},
			http.StatusOK,
			auth.MsgPasswordResetSuccess,
		},
		{
			"Expired or consumed token",
			"tok-x",
			&auth.StubService{
				ResetPasswordFunc: func(_ context.Context, _, _ string) error {
					return auth.ErrInvalidResetToken
				},
			},
			http.StatusBadRequest,
			auth.MsgInvalidResetToken,
		},
		{
			"Missing token path value",
			"",
			&auth.StubService{},
			http.StatusBadRequest,
			auth.MsgInvalidResetToken,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(tc.svc)
			params := auth.ResetPasswordRequest{Password: "newsecret1", PasswordConfirm: "newsecret1"}
			ctx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/auth/reset-password/"+tc.token, nil)
			req.SetPathValue("token", tc.token)
			rec := httptest.NewRecorder()

			handler.ResetPassword(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			assertStatus(t, res, tc.wantStatus)
			web.AssertContentType(t, res)

			body := web.DecodeJSONResponse(t, res)
			assertMessage(t, body, tc.wantMsg)
		})
	}
}
