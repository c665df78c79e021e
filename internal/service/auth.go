package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/askhub/askhub-server/internal/apierrors"
	"github.com/askhub/askhub-server/internal/logger"
	"github.com/askhub/askhub-server/internal/mail"
	"github.com/askhub/askhub-server/internal/model"
)

const (
	// resetTokenBytes is the size of the random reset credential; rendered
	// as hex it yields a 40-character token.
	resetTokenBytes = 20

	// ResetTokenWindow is how long a reset token stays valid after issuance.
	ResetTokenWindow = time.Hour

	logoutMessage       = "Goodbye!"
	resetRequestMessage = "Thanks!"
)

// Auth implements the credential and session lifecycle: registration,
// authentication, and the password reset flow.
type Auth struct {
	userStore   model.UserStore
	hasher      model.PasswordHasher
	tokens      model.TokenManager
	mailer      model.Mailer
	frontendURL string
	logger      *logger.Logger
}

// NewAuth creates an Auth service. The frontend URL is injected here so
// operations never reach into process-wide configuration.
func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	mailer model.Mailer,
	frontendURL string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:   userStore,
		hasher:      hasher,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Register creates a user and issues a session token for it. The email is
// lowercased before storage; the password is stored only as a digest.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, string, error) {
	email := strings.ToLower(params.Email)

	a.logger.Debug("Auth service: registering user", "email", email)

	passwordHash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         params.Name,
		PasswordHash: passwordHash,
		Permissions:  []model.Permission{model.PermissionUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrDuplicate) {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, "", apierrors.NewErrDuplicateEmail(email)
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokens.GenerateSessionToken(created.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", email, "user_id", created.ID)

	return created, token, nil
}

// Authenticate verifies credentials and issues a session token.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.User, string, error) {
	email = strings.ToLower(email)

	a.logger.Debug("Auth service: authenticating user", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", apierrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: invalid password", "email", email)
		return model.User{}, "", apierrors.NewErrInvalidCredentials()
	}

	token, err := a.tokens.GenerateSessionToken(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	return user, token, nil
}

// Logout acknowledges a sign-out. Sessions are stateless: there is nothing
// to revoke server-side, the transport clears the cookie.
func (a *Auth) Logout() model.Ack {
	return model.Ack{Message: logoutMessage}
}

// RequestReset attaches a fresh reset token to the account and emails a
// reset link. The email is matched exactly as submitted here; signup and
// signin lowercase theirs before lookup.
func (a *Auth) RequestReset(ctx context.Context, email string) (model.Ack, error) {
	a.logger.Debug("Auth service: reset requested", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Ack{}, apierrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return model.Ack{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken, err := generateResetToken()
	if err != nil {
		return model.Ack{}, fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(ResetTokenWindow)
	if _, err := a.userStore.SetPasswordReset(ctx, email, resetToken, expiry); err != nil {
		return model.Ack{}, fmt.Errorf("failed to set password reset: %w", err)
	}

	m := model.Mail{
		To:       user.Email,
		Subject:  "Your Password Reset Token",
		HTMLBody: mail.ResetEmailHTML(a.frontendURL, resetToken),
	}
	if err := a.mailer.Send(ctx, m); err != nil {
		// The acknowledgement stays generic so dispatch outcome never
		// reveals which emails are registered.
		a.logger.Error("Auth service: failed to send reset email",
			"email", user.Email,
			"error", err.Error())
	}

	a.logger.Info("Auth service: reset token issued", "user_id", user.ID)

	return model.Ack{Message: resetRequestMessage}, nil
}

// ResetPassword consumes a reset token and replaces the password. The token
// must have been issued within ResetTokenWindow of now; consumption and the
// password change are a single store update.
func (a *Auth) ResetPassword(ctx context.Context, resetToken, newPassword, confirmPassword string) (model.User, string, error) {
	if newPassword != confirmPassword {
		return model.User{}, "", apierrors.NewErrPasswordMismatch()
	}

	passwordHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	issuedAfter := time.Now().Add(-ResetTokenWindow)
	user, err := a.userStore.ConsumePasswordReset(ctx, resetToken, issuedAfter, passwordHash)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", apierrors.NewErrInvalidOrExpiredToken()
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to consume password reset: %w", err)
	}

	token, err := a.tokens.GenerateSessionToken(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: password reset completed", "user_id", user.ID)

	return user, token, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
