package user

import (
	"time"

	"github.com/ferdiebergado/gastos/internal/model"
)

// User is the account record. VerificationToken is non-nil only while email
// verification is pending. ResetPasswordToken and ResetPasswordExpires are
// both nil or both set; an expired token is treated as absent.
type User struct {
	model.Model

	FirstName               string
	LastName                string
	Email                   string
	PasswordHash            string
	Verified                bool
	VerificationToken       *string
	ResetPasswordToken      *string
	ResetPasswordExpires    *time.Time
	PreferredCurrency       string
	PreferredCurrencySymbol string
	PreferredLanguage       string
}

// Summary is the user payload safe to return to clients. The password hash
// and tokens never appear here.
type Summary struct {
	ID                      string `json:"id"`
	FirstName               string `json:"firstname"`
	LastName                string `json:"lastname"`
	Email                   string `json:"email"`
	PreferredCurrency       string `json:"preferredCurrency"`
	PreferredCurrencySymbol string `json:"preferredCurrencySymbol"`
	PreferredLanguage       string `json:"preferredLanguage"`
}

func NewSummary(u User) *Summary {
	return &Summary{
		ID:                      u.ID,
		FirstName:               u.FirstName,
		LastName:                u.LastName,
		Email:                   u.Email,
		PreferredCurrency:       u.PreferredCurrency,
		PreferredCurrencySymbol: u.PreferredCurrencySymbol,
		PreferredLanguage:       u.PreferredLanguage,
	}
}

// Optional tags a field value with explicit presence, so a partial update
// can tell "absent" from "set to zero value".
type Optional[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}
