package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferdiebergado/gastos/internal/config"
	"github.com/ferdiebergado/gastos/internal/platform/email"
	"github.com/ferdiebergado/gastos/internal/platform/hash"
	"github.com/ferdiebergado/gastos/internal/platform/jwt"
	"github.com/ferdiebergado/gastos/internal/platform/token"
	"github.com/ferdiebergado/gastos/internal/user"
)

var _ AuthService = (*Service)(nil)

var (
	ErrUserExists = errors.New("auth service: user already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")
	ErrUserNotVerified    = errors.New("auth service: email not verified")
	ErrInvalidVerifyToken = errors.New("auth service: invalid verification token")
	ErrInvalidResetToken  = errors.New("auth service: invalid or expired reset token")
	ErrEmailDelivery      = errors.New("auth service: email delivery failed")
)

// AuthRepository covers the token lifecycle writes on user records.
type AuthRepository interface {
	FindUserByVerificationToken(ctx context.Context, token string) (*user.User, error)
	FindUserByResetToken(ctx context.Context, token string) (*user.User, error)
	MarkUserVerified(ctx context.Context, userID string) error
	SetResetToken(ctx context.Context, userID, token string, expires time.Time) error
	ClearResetToken(ctx context.Context, userID string) error
	ChangeUserPassword(ctx context.Context, userID, newHash string) error
}

type Service struct {
	repo    AuthRepository
	userSvc user.UserService
	hasher  hash.Hasher
	signer  jwt.Signer
	mailer  email.Mailer
	tokens  token.Generator
	cfg     *config.Config
}

type RegisterUserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (p *RegisterUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// RegisterResult is the two-phase outcome of a registration: the account is
// always created, the verification email is best-effort.
type RegisterResult struct {
	User      user.User
	EmailSent bool
}

// RegisterUser creates an unverified account and mails a verification link.
// The user row is persisted before the send, so a failed send degrades to
// EmailSent=false instead of undoing the registration.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (RegisterResult, error) {
	res := RegisterResult{}

	existing, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return res, fmt.Errorf("find user by email: %w", err)
	}

	if existing != nil {
		return res, ErrUserExists
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return res, fmt.Errorf("hash password: %w", err)
	}

	verifyToken, err := s.tokens.Generate()
	if err != nil {
		return res, fmt.Errorf("generate verification token: %w", err)
	}

	newUser, err := s.userSvc.CreateUser(ctx, user.CreateUserParams{
		FirstName:         params.FirstName,
		LastName:          params.LastName,
		Email:             params.Email,
		PasswordHash:      hashed,
		VerificationToken: verifyToken,
	})
	if err != nil {
		// two registrations can race past the pre-check; the unique
		// index on email settles it.
		if errors.Is(err, user.ErrDuplicateEmail) {
			return res, ErrUserExists
		}
		return res, fmt.Errorf("create user with email %s: %w", params.Email, err)
	}

	res.User = newUser
	res.EmailSent = true
	if err := s.sendVerificationEmail(newUser.Email, verifyToken); err != nil {
		slog.Error("failed to send verification email", "reason", err)
		res.EmailSent = false
	}

	return res, nil
}

// VerifyEmail consumes a verification token, activates the account and
// issues a session so the client is logged in right away. A consumed or
// unknown token fails identically.
func (s *Service) VerifyEmail(ctx context.Context, verifyToken string) (user.User, string, error) {
	u, err := s.repo.FindUserByVerificationToken(ctx, verifyToken)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidVerifyToken
		}
		return user.User{}, "", fmt.Errorf(MsgFmtFindUser, err)
	}

	if err := s.repo.MarkUserVerified(ctx, u.ID); err != nil {
		return user.User{}, "", fmt.Errorf("verify user with id %s: %w", u.ID, err)
	}

	u.Verified = true
	u.VerificationToken = nil

	sessionToken, err := s.issueSession(u.ID)
	if err != nil {
		return user.User{}, "", err
	}

	return *u, sessionToken, nil
}

type LoginUserParams struct {
	Email    string
	Password string
}

func (p *LoginUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// LoginUser checks credentials and issues a session. Unknown email and
// wrong password return the same error; an unverified account is reported
// distinctly, and only after the password matched.
func (s *Service) LoginUser(ctx context.Context, params LoginUserParams) (user.User, string, error) {
	u, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", fmt.Errorf(MsgFmtFindUserByEmail, err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return user.User{}, "", fmt.Errorf("verify password for user %s: %w", u.ID, err)
	}

	if !ok {
		return user.User{}, "", ErrInvalidCredentials
	}

	if !u.Verified {
		return user.User{}, "", ErrUserNotVerified
	}

	sessionToken, err := s.issueSession(u.ID)
	if err != nil {
		return user.User{}, "", err
	}

	return *u, sessionToken, nil
}

// UpdatePreferences partially updates the currency/symbol/language fields;
// absent fields are left unchanged.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, params user.UpdatePreferencesParams) (*user.User, error) {
	u, err := s.userSvc.UpdatePreferences(ctx, userID, params)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("update preferences for user %s: %w", userID, err)
	}
	return u, nil
}

// ForgotPassword issues a time-boxed reset token and mails a reset link.
// Unlike registration, the token is only left live if the send succeeded;
// on a failed send it is rolled back so no usable token exists that the
// user was never told about.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	u, err := s.userSvc.FindUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf(MsgFmtFindUserByEmail, err)
	}

	resetToken, err := s.tokens.Generate()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	expires := time.Now().Add(s.cfg.Email.ResetTTL.Duration)
	if err := s.repo.SetResetToken(ctx, u.ID, resetToken, expires); err != nil {
		return fmt.Errorf("set reset token for user %s: %w", u.ID, err)
	}

	if err := s.sendResetEmail(u.Email, resetToken); err != nil {
		slog.Error("failed to send reset email", "reason", err)
		if clearErr := s.repo.ClearResetToken(ctx, u.ID); clearErr != nil {
			slog.Error("failed to roll back reset token", "reason", clearErr)
		}
		return ErrEmailDelivery
	}

	return nil
}

// ResetPassword consumes a live reset token and replaces the password
// secret. Expired, unknown and already-consumed tokens fail identically.
// No session is issued; the caller must log in again.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	u, err := s.repo.FindUserByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf(MsgFmtFindUser, err)
	}

	if u.ResetPasswordExpires == nil || !time.Now().Before(*u.ResetPasswordExpires) {
		return ErrInvalidResetToken
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password for user %s: %w", u.ID, err)
	}

	if err := s.repo.ChangeUserPassword(ctx, u.ID, newHash); err != nil {
		return fmt.Errorf("change password for user %s: %w", u.ID, err)
	}

	return nil
}

func (s *Service) issueSession(userID string) (string, error) {
	sessionToken, err := s.signer.Sign(userID, s.cfg.JWT.TTL.Duration)
	if err != nil {
		return "", fmt.Errorf("sign session token for user %s: %w", userID, err)
	}
	return sessionToken, nil
}

func (s *Service) sendVerificationEmail(to, verifyToken string) error {
	return s.sendLinkEmail(to, "Verify your email", "Email verification", "verification", "/verify-email/", verifyToken)
}

func (s *Service) sendResetEmail(to, resetToken string) error {
	return s.sendLinkEmail(to, "Reset your password", "Password reset", "reset_password", "/reset-password/", resetToken)
}

func (s *Service) sendLinkEmail(to, subject, title, tmplName, path, tok string) error {
	data := map[string]string{
		"Title":  title,
		"Header": subject,
		"Link":   s.cfg.Email.FrontendURL + path + tok,
	}
	if err := s.mailer.SendHTML([]string{to}, subject, tmplName, data); err != nil {
		return fmt.Errorf("send %s email: %w", tmplName, err)
	}
	return nil
}

func NewService(repo AuthRepository, userSvc user.UserService, provider *Provider) *Service {
	return &Service{
		repo:    repo,
		userSvc: userSvc,
		hasher:  provider.Hasher,
		signer:  provider.Signer,
		mailer:  provider.Mailer,
		tokens:  provider.Tokens,
		cfg:     provider.Cfg,
	}
}
