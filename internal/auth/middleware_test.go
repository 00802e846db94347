package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/gastos/internal/auth"
	"github.com/ferdiebergado/gastos/internal/platform/jwt"
)

func TestRequireToken(t *testing.T) {
	t.Parallel()

	signer := &jwt.StubSigner{
		VerifyFunc: func(tokenString string) (*jwt.Claims, error) {
			if tokenString != "valid-token" {
				return nil, jwt.ErrInvalidToken
			}
			return &jwt.Claims{UserID: "user-1"}, nil
		},
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantNext   bool
	}{
		{"Valid bearer token", "Bearer valid-token", http.StatusOK, true},
		{"Expired or forged token", "Bearer bad-token", http.StatusUnauthorized, false},
		{"Missing authorization header", "", http.StatusUnauthorized, false},
		{"Wrong scheme", "Basic dXNlcjpwdw==", http.StatusUnauthorized, false},
		{"Bearer with empty token", "Bearer ", http.StatusUnauthorized, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			nextRan := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextRan = true

				userID, err := auth.UserFromContext(r.Context())
				if err != nil {
					t.Errorf("UserFromContext: %v", err)
				}
				if userID != "user-1" {
					t.Errorf("userID = %q, want: %q", userID, "user-1")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			auth.RequireToken(signer)(next).ServeHTTP(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			assertStatus(t, res, tc.wantStatus)
			if nextRan != tc.wantNext {
				t.Errorf("next handler ran = %t, want: %t", nextRan, tc.wantNext)
			}
		})
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := auth.UserFromContext(req.Context()); err == nil {
		t.Error("err = nil, want an error for a context without a user")
	}
}
